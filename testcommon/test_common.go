package testcommon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TemperaturePoint is a CCT/Duv pair used to build test chromaticities.
type TemperaturePoint struct {
	CCT float64
	Duv float64
}

// CrossCheckPoints spreads 20 temperatures over the supported range, each at
// a different distance from the locus on both sides.
func CrossCheckPoints() []TemperaturePoint {
	ccts := []float64{1700, 1900, 2200, 2500, 2800, 3200, 3600, 4000, 4500, 5000,
		5500, 6000, 6500, 7500, 9000, 11000, 14000, 20000, 30000, 60000}
	duvs := []float64{-0.02, -0.005, 0, 0.005, 0.02}

	points := make([]TemperaturePoint, len(ccts))
	for i, cct := range ccts {
		points[i] = TemperaturePoint{CCT: cct, Duv: duvs[i%len(duvs)]}
	}
	return points
}

// RoundTripGrid covers [1600, 50000] K and Duv in [-0.05, 0.05].
func RoundTripGrid() []TemperaturePoint {
	var points []TemperaturePoint
	for _, cct := range []float64{1600, 1700, 2000, 2500, 3000, 4000, 5000, 6500, 8000, 10000, 20000, 30000, 50000} {
		for _, duv := range []float64{-0.05, -0.02, 0, 0.02, 0.05} {
			points = append(points, TemperaturePoint{CCT: cct, Duv: duv})
		}
	}
	return points
}

// AssertRelative checks actual is within tolerance of expected as a ratio.
func AssertRelative(t *testing.T, expected float64, actual float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	return assert.LessOrEqual(t, math.Abs(actual-expected)/math.Abs(expected), tolerance, msgAndArgs...)
}
