package util

import "math"

// SectorHit describes where a point sits inside a circular sector.
type SectorHit struct {
	AngleFromStart float64
	Distance       float64
}

// PointInSector checks whether p lies inside the sector around center that
// sweeps counter clockwise from startAngle to endAngle, no further than
// radius from center. Pass math.Inf(1) for an unbounded radius. Sectors may
// wrap past 2*Pi.
func PointInSector(p Point, center Point, startAngle float64, endAngle float64, radius float64) (SectorHit, bool) {
	dx := p.X - center.X
	dy := p.Y - center.Y
	distance := math.Sqrt(dx*dx + dy*dy)
	if distance > radius {
		return SectorHit{}, false
	}

	pointAngle := NormalizeAngle0To2Pi(math.Atan2(dy, dx))
	start := NormalizeAngle0To2Pi(startAngle)
	end := NormalizeAngle0To2Pi(endAngle)

	if start <= end {
		if pointAngle < start || pointAngle > end {
			return SectorHit{}, false
		}
		return SectorHit{AngleFromStart: pointAngle - start, Distance: distance}, true
	}

	// sector crosses the 0 radian line
	switch {
	case pointAngle >= start:
		return SectorHit{AngleFromStart: pointAngle - start, Distance: distance}, true
	case pointAngle <= end:
		return SectorHit{AngleFromStart: TwoPi - start + pointAngle, Distance: distance}, true
	}
	return SectorHit{}, false
}
