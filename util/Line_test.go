package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineFromSlopeAndPoint(t *testing.T) {
	l := LineFromSlopeAndPoint(2, NewPoint(1, 3))
	assert.Equal(t, 2.0, l.Slope)
	assert.Equal(t, 1.0, l.Intercept)
	assert.Equal(t, 5.0, l.At(2))
	assert.False(t, l.IsVertical())
	assert.Equal(t, 0.0, l.A*1+l.B*3+l.C)

	v := LineFromSlopeAndPoint(math.Inf(-1), NewPoint(0.5, 3))
	assert.True(t, v.IsVertical())
	assert.Equal(t, 0.0, v.B)
	assert.Equal(t, 0.5, v.Intercept)
	assert.True(t, math.IsNaN(v.At(1)))
	assert.Equal(t, 0.0, v.A*0.5+v.B*100+v.C)
}

func TestLineFromTwoPoints(t *testing.T) {
	for _, tc := range []struct {
		name      string
		p1        Point
		p2        Point
		slope     float64
		intercept float64
		vertical  bool
		expectErr bool
	}{
		{name: "diagonal", p1: NewPoint(0, 0), p2: NewPoint(1, 1), slope: 1, intercept: 0},
		{name: "descending", p1: NewPoint(0, 2), p2: NewPoint(2, 0), slope: -1, intercept: 2},
		{name: "horizontal", p1: NewPoint(-1, 3), p2: NewPoint(1, 3), slope: 0, intercept: 3},
		{name: "vertical", p1: NewPoint(2, 0), p2: NewPoint(2, 5), vertical: true, intercept: 2},
		{name: "identical", p1: NewPoint(2, 5), p2: NewPoint(2, 5), expectErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			l, err := LineFromTwoPoints(tc.p1, tc.p2)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrDegenerateInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.vertical, l.IsVertical())
			assert.InDelta(t, tc.intercept, l.Intercept, 1e-15)
			if !tc.vertical {
				assert.InDelta(t, tc.slope, l.Slope, 1e-15)
			}
			for _, p := range []Point{tc.p1, tc.p2} {
				assert.InDelta(t, 0, l.A*p.X+l.B*p.Y+l.C, 1e-15)
			}
		})
	}
}

func TestDistancePointToLine(t *testing.T) {
	// y = x, general form x - y = 0 after orientation
	diagonal := LineFromSlopeAndPoint(1, NewPoint(0, 0))
	// y = x + 1, x - y + 1 = 0
	shifted := LineFromSlopeAndPoint(1, NewPoint(0, 1))

	for _, tc := range []struct {
		name         string
		point        Point
		line         Line
		orientation  NormalOrientation
		distance     float64
		sign         int
		intersection Point
		expectErr    bool
	}{
		{
			name:         "below diagonal, normal as given (1, -1)",
			point:        NewPoint(1, 0),
			line:         diagonal,
			orientation:  NormalAsGiven,
			distance:     math.Sqrt2 / 2,
			sign:         1,
			intersection: NewPoint(0.5, 0.5),
		},
		{
			name:         "below diagonal, normal towards +y",
			point:        NewPoint(1, 0),
			line:         diagonal,
			orientation:  NormalYPositive,
			distance:     math.Sqrt2 / 2,
			sign:         -1,
			intersection: NewPoint(0.5, 0.5),
		},
		{
			name:         "below diagonal, normal towards -x",
			point:        NewPoint(1, 0),
			line:         diagonal,
			orientation:  NormalXNegative,
			distance:     math.Sqrt2 / 2,
			sign:         -1,
			intersection: NewPoint(0.5, 0.5),
		},
		{
			name:         "on the line counts as positive",
			point:        NewPoint(2, 2),
			line:         diagonal,
			orientation:  NormalYNegative,
			distance:     0,
			sign:         1,
			intersection: NewPoint(2, 2),
		},
		{
			name:         "vertical line",
			point:        NewPoint(3, 7),
			line:         LineFromSlopeAndPoint(math.Inf(1), NewPoint(1, 0)),
			orientation:  NormalXPositive,
			distance:     2,
			sign:         1,
			intersection: NewPoint(1, 7),
		},
		{
			name:         "on offset line, normal towards +y",
			point:        NewPoint(0, 1),
			line:         shifted,
			orientation:  NormalYPositive,
			distance:     0,
			sign:         1,
			intersection: NewPoint(0, 1),
		},
		{
			name:         "on offset line, normal towards -x",
			point:        NewPoint(0, 1),
			line:         shifted,
			orientation:  NormalXNegative,
			distance:     0,
			sign:         1,
			intersection: NewPoint(0, 1),
		},
		{
			name:         "below offset line, normal as given",
			point:        NewPoint(1, 0),
			line:         shifted,
			orientation:  NormalAsGiven,
			distance:     math.Sqrt2,
			sign:         1,
			intersection: NewPoint(0, 1),
		},
		{
			name:         "below offset line, normal towards +y",
			point:        NewPoint(1, 0),
			line:         shifted,
			orientation:  NormalYPositive,
			distance:     math.Sqrt2,
			sign:         -1,
			intersection: NewPoint(0, 1),
		},
		{
			name:         "left of offset vertical line, normal towards -x",
			point:        NewPoint(-1, 4),
			line:         LineFromSlopeAndPoint(math.Inf(1), NewPoint(2, 0)),
			orientation:  NormalXNegative,
			distance:     3,
			sign:         1,
			intersection: NewPoint(2, 4),
		},
		{
			name:      "degenerate",
			point:     NewPoint(3, 7),
			line:      NewGeneralLine(0, 0, 1),
			expectErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, err := DistancePointToLine(tc.point, tc.line, tc.orientation)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrDegenerateLine)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.distance, d.Distance, 1e-15)
			assert.Equal(t, tc.sign, d.Sign)
			assert.InDelta(t, tc.intersection.X, d.Intersection.X, 1e-15)
			assert.InDelta(t, tc.intersection.Y, d.Intersection.Y, 1e-15)
		})
	}
}

func TestNewGeneralLine(t *testing.T) {
	l := NewGeneralLine(-1, 2, 4)
	assert.Equal(t, 0.5, l.Slope)
	assert.Equal(t, -2.0, l.Intercept)

	v := NewGeneralLine(2, 0, -4)
	assert.True(t, v.IsVertical())
	assert.Equal(t, 2.0, v.Intercept)
}

func TestIntersectLines(t *testing.T) {
	for _, tc := range []struct {
		name         string
		l1           Line
		l2           Line
		intersection Point
		radians      float64
		expectErr    error
	}{
		{
			name:         "perpendicular",
			l1:           LineFromSlopeAndPoint(1, NewPoint(0, 0)),
			l2:           LineFromSlopeAndPoint(-1, NewPoint(0, 2)),
			intersection: NewPoint(1, 1),
			radians:      math.Pi / 2,
		},
		{
			name:         "vertical and horizontal",
			l1:           LineFromSlopeAndPoint(math.Inf(1), NewPoint(3, 0)),
			l2:           LineFromSlopeAndPoint(0, NewPoint(0, -2)),
			intersection: NewPoint(3, -2),
			radians:      math.Pi / 2,
		},
		{
			name:         "shallow angle folded",
			l1:           LineFromSlopeAndPoint(0, NewPoint(0, 0)),
			l2:           LineFromSlopeAndPoint(1, NewPoint(0, 0)),
			intersection: NewPoint(0, 0),
			radians:      math.Pi / 4,
		},
		{
			name:      "parallel",
			l1:        LineFromSlopeAndPoint(2, NewPoint(0, 0)),
			l2:        LineFromSlopeAndPoint(2, NewPoint(0, 1)),
			expectErr: ErrParallelLines,
		},
		{
			name:      "coincident",
			l1:        LineFromSlopeAndPoint(2, NewPoint(0, 1)),
			l2:        LineFromSlopeAndPoint(2, NewPoint(1, 3)),
			expectErr: ErrCoincidentLines,
		},
		{
			name:      "degenerate",
			l1:        NewGeneralLine(0, 0, 1),
			l2:        LineFromSlopeAndPoint(2, NewPoint(1, 3)),
			expectErr: ErrDegenerateLine,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			li, err := IntersectLines(tc.l1, tc.l2)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.intersection.X, li.Intersection.X, 1e-12)
			assert.InDelta(t, tc.intersection.Y, li.Intersection.Y, 1e-12)
			assert.InDelta(t, tc.radians, li.Radians, 1e-12)
			assert.LessOrEqual(t, li.Radians, math.Pi/2)
		})
	}
}
