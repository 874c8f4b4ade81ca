package util

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

const TwoPi = 2 * math.Pi

func Lerp[T constraints.Float](a T, b T, t T) T {
	return a + (b-a)*t
}

// InverseLerp is the fractional position of v between a and b.
func InverseLerp[T constraints.Float](a T, b T, v T) T {
	return (v - a) / (b - a)
}

// IsFinite reports whether none of values is NaN or infinite.
func IsFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func Clamp[T constraints.Ordered](v T, lo T, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AngleFromSlope maps a slope to the angle of its line in [0, Pi). Infinite
// slopes give Pi/2.
func AngleFromSlope(m float64) float64 {
	if math.IsInf(m, 0) {
		return math.Pi / 2
	}
	angle := math.Atan(m)
	if angle < 0 {
		return angle + math.Pi
	}
	return angle
}

// NormalizeAngle0To2Pi reduces any angle to [0, 2*Pi).
func NormalizeAngle0To2Pi(radians float64) float64 {
	normalized := math.Mod(radians, TwoPi)
	if normalized < 0 {
		normalized += TwoPi
	}
	// tiny negative inputs round up to exactly 2*Pi
	if normalized >= TwoPi {
		normalized = 0
	}
	return normalized
}

// Quadratic is y = A*x^2 + B*x + C.
type Quadratic struct {
	A float64
	B float64
	C float64

	// Vertex is only meaningful when HasVertex is set (A != 0).
	Vertex    Point
	HasVertex bool
}

func (q Quadratic) At(x float64) float64 {
	return q.A*x*x + q.B*x + q.C
}

// QuadraticInterpolation fits the parabola passing through three points with
// distinct x coordinates.
func QuadraticInterpolation(p0 Point, p1 Point, p2 Point) (Quadratic, error) {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	if x0 == x1 || x0 == x2 || x1 == x2 {
		return Quadratic{}, fmt.Errorf("%w: duplicate x coordinates %v, %v, %v", ErrDegenerateInput, x0, x1, x2)
	}

	denominator := (x1 - x0) * (x2 - x1) * (x0 - x2)
	a := (x0*(y2-y1) + x1*(y0-y2) + x2*(y1-y0)) / denominator
	b := (y1 - y0 - a*(x1*x1-x0*x0)) / (x1 - x0)
	c := y0 - a*x0*x0 - b*x0

	q := Quadratic{A: a, B: b, C: c}
	if a != 0 {
		vx := -b / (2 * a)
		q.Vertex = Point{X: vx, Y: q.At(vx)}
		q.HasVertex = true
	}
	return q, nil
}
