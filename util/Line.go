package util

import (
	"fmt"
	"math"
)

// Line holds both the slope-intercept form y = Slope*x + Intercept and the
// general form A*x + B*y + C = 0. Vertical lines have an infinite Slope,
// B == 0 and Intercept holding the x coordinate.
type Line struct {
	Slope     float64
	Intercept float64
	A         float64
	B         float64
	C         float64
}

// NormalOrientation picks which way the normal vector (A, B) of a line
// points when measuring signed distances.
type NormalOrientation int

const (
	// NormalAsGiven keeps A and B as stored in the line.
	NormalAsGiven NormalOrientation = iota
	NormalXPositive
	NormalXNegative
	NormalYPositive
	NormalYNegative
)

// PointLineDistance is the result of DistancePointToLine. Sign is +1 when the
// point lies on the side the normal vector points to (or on the line) and -1
// otherwise.
type PointLineDistance struct {
	Distance     float64
	Sign         int
	Intersection Point
	ValueAtPoint float64
}

// LineIntersection is the crossing point of two lines and the angle between
// their normals, folded into [0, Pi/2].
type LineIntersection struct {
	Intersection Point
	Radians      float64
}

// NewGeneralLine builds a line from A*x + B*y + C = 0.
func NewGeneralLine(a float64, b float64, c float64) Line {
	if b == 0 {
		return Line{Slope: math.Inf(1), Intercept: -c / a, A: a, B: b, C: c}
	}
	return Line{Slope: -a / b, Intercept: -c / b, A: a, B: b, C: c}
}

func LineFromSlopeAndPoint(m float64, p Point) Line {
	if math.IsInf(m, 0) {
		return Line{Slope: m, Intercept: p.X, A: 1, B: 0, C: -p.X}
	}
	b := p.Y - m*p.X
	return Line{Slope: m, Intercept: b, A: m, B: -1, C: b}
}

func LineFromTwoPoints(p1 Point, p2 Point) (Line, error) {
	if p1.Equals(p2) {
		return Line{}, fmt.Errorf("%w: a unique line cannot be defined through %v", ErrDegenerateInput, p1)
	}
	if p1.X == p2.X {
		return LineFromSlopeAndPoint(math.Inf(1), p1), nil
	}
	m := (p2.Y - p1.Y) / (p2.X - p1.X)
	return LineFromSlopeAndPoint(m, p1), nil
}

// IsVertical reports whether the line is parallel to the y axis.
func (l Line) IsVertical() bool {
	return l.B == 0
}

// At evaluates y for x. Vertical lines have no single y, NaN is returned.
func (l Line) At(x float64) float64 {
	if l.IsVertical() {
		return math.NaN()
	}
	return l.Slope*x + l.Intercept
}

// oriented returns the general form coefficients with the normal vector
// flipped as requested. All three are negated so the line itself stays put.
func (l Line) oriented(o NormalOrientation) (float64, float64, float64) {
	a, b, c := l.A, l.B, l.C
	flip := false
	switch o {
	case NormalXPositive:
		flip = a < 0
	case NormalXNegative:
		flip = a > 0
	case NormalYPositive:
		flip = b < 0
	case NormalYNegative:
		flip = b > 0
	}
	if flip {
		a, b, c = -a, -b, -c
	}
	return a, b, c
}

// DistancePointToLine returns the shortest distance from p to l, the foot of
// the perpendicular and the side of the line p sits on relative to the
// normal vector selected by o.
func DistancePointToLine(p Point, l Line, o NormalOrientation) (PointLineDistance, error) {
	a, b, c := l.oriented(o)
	denominator := a*a + b*b
	if denominator == 0 {
		return PointLineDistance{}, ErrDegenerateLine
	}

	value := a*p.X + b*p.Y + c
	return PointLineDistance{
		Distance:     math.Abs(value) / math.Sqrt(denominator),
		Sign:         IfThenElse(value >= 0, 1, -1),
		Intersection: Point{X: p.X - (a*value)/denominator, Y: p.Y - (b*value)/denominator},
		ValueAtPoint: value,
	}, nil
}

// IntersectLines finds where l1 and l2 cross. Lines sharing a normal
// direction fail with ErrCoincidentLines when they also share the offset and
// ErrParallelLines otherwise.
func IntersectLines(l1 Line, l2 Line) (LineIntersection, error) {
	a1, b1, c1 := l1.A, l1.B, l1.C
	a2, b2, c2 := l2.A, l2.B, l2.C

	n1 := math.Sqrt(a1*a1 + b1*b1)
	n2 := math.Sqrt(a2*a2 + b2*b2)
	if n1 == 0 || n2 == 0 {
		return LineIntersection{}, ErrDegenerateLine
	}

	determinant := a1*b2 - a2*b1
	if determinant == 0 {
		if a1*c2-a2*c1 == 0 && b1*c2-b2*c1 == 0 {
			return LineIntersection{}, ErrCoincidentLines
		}
		return LineIntersection{}, ErrParallelLines
	}

	cos := Clamp((a1*a2+b1*b2)/(n1*n2), -1.0, 1.0)
	radians := math.Acos(cos)
	radians = math.Min(radians, math.Pi-radians)

	return LineIntersection{
		Intersection: Point{
			X: (b1*c2 - b2*c1) / determinant,
			Y: (a2*c1 - a1*c2) / determinant,
		},
		Radians: radians,
	}, nil
}
