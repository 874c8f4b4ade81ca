package cct

import (
	"testing"

	"github.com/kpfaulkner/cct-go/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSectorTableMatchesEmbedded(t *testing.T) {
	generated, err := GenerateSectorTable(ReferenceTable())
	require.NoError(t, err)

	embedded := DefaultSectorTable()
	require.Equal(t, embedded.Len(), generated.Len())
	for i, e := range embedded.Sectors {
		g := generated.Sectors[i]
		assert.Equal(t, e.RT, g.RT, "rt at %d", i)
		assert.InDelta(t, e.Angle, g.Angle, 1e-12, "angle at %d", i)
		assert.Equal(t, e.IsTerminal(), g.IsTerminal(), "terminal at %d", i)
		if e.IsTerminal() {
			continue
		}
		assert.InDelta(t, e.Center.X, g.Center.X, 1e-12, "center x at %d", i)
		assert.InDelta(t, e.Center.Y, g.Center.Y, 1e-12, "center y at %d", i)
		assert.InDelta(t, e.Radius, g.Radius, 1e-12, "radius at %d", i)
	}
}

func TestSectorTableMonotonic(t *testing.T) {
	generated, err := GenerateSectorTable(ReferenceTable())
	require.NoError(t, err)

	for name, table := range map[string]SectorTable{
		"embedded":  DefaultSectorTable(),
		"generated": generated,
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, table.Validate())
			sectors := table.Sectors
			assert.Equal(t, 64.0, sectors[0].RT)
			assert.Equal(t, 0.0, sectors[len(sectors)-1].RT)
			for i := 1; i < len(sectors); i++ {
				assert.Less(t, sectors[i].RT, sectors[i-1].RT, "rt at %d", i)
				assert.Greater(t, sectors[i].Angle, sectors[i-1].Angle, "angle at %d", i)
			}
		})
	}
}

func TestSectorRadiusReachesLocus(t *testing.T) {
	ref := ReferenceTable()
	table := DefaultSectorTable()
	for i, s := range table.Sectors {
		if s.IsTerminal() {
			continue
		}
		e := ref[int(s.RT)]
		p := s.Center.Polar(s.Radius, s.Angle)
		assert.InDelta(t, e.U, p.X, 1e-9, "u at sector %d", i)
		assert.InDelta(t, e.V, p.Y, 1e-9, "v at sector %d", i)
	}
}

func TestValidate(t *testing.T) {
	center := &util.Point{X: 0.3, Y: 0.2}

	for _, tc := range []struct {
		name      string
		sectors   []Sector
		expectErr bool
	}{
		{
			name: "valid",
			sectors: []Sector{
				{RT: 2, Angle: 1, Center: center, Radius: 0.1},
				{RT: 1, Angle: 2, Center: center, Radius: 0.1},
				{RT: 0, Angle: 3},
			},
		},
		{
			name:      "too short",
			sectors:   []Sector{{RT: 0, Angle: 3}},
			expectErr: true,
		},
		{
			name: "rt increases",
			sectors: []Sector{
				{RT: 1, Angle: 1, Center: center, Radius: 0.1},
				{RT: 2, Angle: 2, Center: center, Radius: 0.1},
				{RT: 0, Angle: 3},
			},
			expectErr: true,
		},
		{
			name: "angle repeats",
			sectors: []Sector{
				{RT: 2, Angle: 1, Center: center, Radius: 0.1},
				{RT: 1, Angle: 1, Center: center, Radius: 0.1},
				{RT: 0, Angle: 3},
			},
			expectErr: true,
		},
		{
			name: "terminal in the middle",
			sectors: []Sector{
				{RT: 2, Angle: 1, Center: center, Radius: 0.1},
				{RT: 1, Angle: 2},
				{RT: 0, Angle: 3},
			},
			expectErr: true,
		},
		{
			name: "last not terminal",
			sectors: []Sector{
				{RT: 2, Angle: 1, Center: center, Radius: 0.1},
				{RT: 1, Angle: 2, Center: center, Radius: 0.1},
				{RT: 0, Angle: 3, Center: center, Radius: 0.1},
			},
			expectErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := SectorTable{Sectors: tc.sectors}.Validate()
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrNonMonotonicTable)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGenerateSectorTableErrors(t *testing.T) {
	_, err := GenerateSectorTable(nil)
	assert.ErrorIs(t, err, ErrNonMonotonicTable)

	// identical neighbouring isotherms never meet
	ref := []ReferenceEntry{
		{U: 0.2, V: 0.3, RS: -1},
		{U: 0.2, V: 0.3, RS: -1},
		{U: 0.21, V: 0.31, RS: -0.9},
	}
	_, err = GenerateSectorTable(ref)
	assert.ErrorIs(t, err, util.ErrCoincidentLines)
}

func TestGenerateSectorTableLeavesReferenceUntouched(t *testing.T) {
	ref := ReferenceTable()
	before := make([]ReferenceEntry, len(ref))
	copy(before, ref)

	_, err := GenerateSectorTable(ref)
	require.NoError(t, err)
	assert.Equal(t, before, ref)
}

func TestDefaultSectorTableIsACopy(t *testing.T) {
	table := DefaultSectorTable()
	table.Sectors[0].Center.X = 42
	table.Sectors[1].RT = 42

	again := DefaultSectorTable()
	assert.NotEqual(t, 42.0, again.Sectors[0].Center.X)
	assert.NotEqual(t, 42.0, again.Sectors[1].RT)
}

func TestCCTRange(t *testing.T) {
	lo, hi := DefaultSectorTable().CCTRange()
	assert.Equal(t, 1562.5, lo)
	assert.True(t, hi > 1e300)
}
