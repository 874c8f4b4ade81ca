package util

import (
	"fmt"
	"math"
)

// Point is a position on a 2D plane. The CCT code uses it for CIE 1960 UCS
// (u, v) coordinates but nothing here is colour specific.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x float64, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Polar returns the point at distance r from p in direction radians.
func (p Point) Polar(r float64, radians float64) Point {
	return Point{X: p.X + r*math.Cos(radians), Y: p.Y + r*math.Sin(radians)}
}

func (p Point) Equals(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

func (p Point) String() string {
	return fmt.Sprintf("[%v, %v]", p.X, p.Y)
}

// DistancePointToPoint is the euclidean distance between p1 and p2.
// Identical points are rejected, callers relying on a zero distance have
// a bug.
func DistancePointToPoint(p1 Point, p2 Point) (float64, error) {
	if p1.Equals(p2) {
		return 0, fmt.Errorf("%w: points %v and %v are identical", ErrDegenerateInput, p1, p2)
	}
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return math.Sqrt(dx*dx + dy*dy), nil
}
