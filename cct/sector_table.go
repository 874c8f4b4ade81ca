package cct

import (
	"fmt"
	"math"

	"github.com/kpfaulkner/cct-go/util"
	log "github.com/sirupsen/logrus"
)

// ReciprocalScale converts between CCT and reciprocal temperature,
// rt = ReciprocalScale / CCT.
const ReciprocalScale = 100000.0

// ReferenceEntry is one row of the blackbody locus reference table. RS is the
// reciprocal of the isotherm slope, the normal of the isotherm pointing
// towards higher temperature is (-1, RS).
type ReferenceEntry struct {
	U  float64
	V  float64
	RS float64
}

// Sector is the wedge between the isotherm through one locus point and the
// isotherm of the next entry in the table.
type Sector struct {
	// RT is the reciprocal temperature of the locus point the sector starts at.
	RT float64

	// Angle of the isotherm in [0, Pi).
	Angle float64

	// Center is where this isotherm meets the next one. nil on the terminal
	// sector.
	Center *util.Point

	// Radius is the distance from the locus point to Center.
	Radius float64
}

func (s Sector) IsTerminal() bool {
	return s.Center == nil
}

// SectorTable is ordered from the lowest temperature (highest RT) to
// infinite CCT (RT 0). Along that order RT strictly decreases and Angle
// strictly increases, both searches rely on it.
type SectorTable struct {
	Sectors []Sector
}

// DefaultSectorTable returns a copy of the precomputed table derived from
// JIS Z8725.
func DefaultSectorTable() SectorTable {
	return SectorTable{Sectors: cloneSectors(defaultSectors)}
}

// ReferenceTable returns a copy of JIS Z8725 Table B.1.
func ReferenceTable() []ReferenceEntry {
	ref := make([]ReferenceEntry, len(jisZ8725))
	copy(ref, jisZ8725)
	return ref
}

func cloneSectors(sectors []Sector) []Sector {
	res := make([]Sector, len(sectors))
	for i, s := range sectors {
		res[i] = s
		if s.Center != nil {
			c := *s.Center
			res[i].Center = &c
		}
	}
	return res
}

func (t SectorTable) Len() int {
	return len(t.Sectors)
}

// CCTRange is the span of temperatures the table can answer for.
func (t SectorTable) CCTRange() (float64, float64) {
	if len(t.Sectors) == 0 {
		return math.NaN(), math.NaN()
	}
	return rtToCCT(t.Sectors[0].RT), rtToCCT(t.Sectors[len(t.Sectors)-1].RT)
}

// Validate checks the ordering invariants the lookups depend on. A table
// that fails would make the binary searches pick the wrong sector silently.
func (t SectorTable) Validate() error {
	n := len(t.Sectors)
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 sectors, got %d", ErrNonMonotonicTable, n)
	}
	for i := 0; i < n-1; i++ {
		s0, s1 := t.Sectors[i], t.Sectors[i+1]
		if s0.IsTerminal() {
			return fmt.Errorf("%w: sector %d has no center", ErrNonMonotonicTable, i)
		}
		if !(s1.RT < s0.RT) {
			return fmt.Errorf("%w: rt %v at %d does not decrease to %v", ErrNonMonotonicTable, s0.RT, i, s1.RT)
		}
		if !(s1.Angle > s0.Angle) {
			return fmt.Errorf("%w: angle %v at %d does not increase to %v", ErrNonMonotonicTable, s0.Angle, i, s1.Angle)
		}
	}
	if !t.Sectors[n-1].IsTerminal() {
		return fmt.Errorf("%w: last sector must be terminal", ErrNonMonotonicTable)
	}
	return nil
}

// GenerateSectorTable derives the sector table from a reference table whose
// row i holds reciprocal temperature i. The reference is not modified.
func GenerateSectorTable(ref []ReferenceEntry) (SectorTable, error) {
	n := len(ref)
	sectors := make([]Sector, n)

	// walk from the lowest temperature row up to rt 0
	for i := 0; i < n; i++ {
		e0 := ref[n-1-i]
		rt := float64(n - 1 - i)
		m0 := 1 / e0.RS
		sectors[i] = Sector{RT: rt, Angle: util.AngleFromSlope(m0)}
		if i == n-1 {
			log.Debugf("sector %d rt %v angle %v terminal", i, rt, sectors[i].Angle)
			break
		}

		e1 := ref[n-2-i]
		p0 := util.NewPoint(e0.U, e0.V)
		line0 := util.LineFromSlopeAndPoint(m0, p0)
		line1 := util.LineFromSlopeAndPoint(1/e1.RS, util.NewPoint(e1.U, e1.V))
		li, err := util.IntersectLines(line0, line1)
		if err != nil {
			return SectorTable{}, fmt.Errorf("isotherms at rt %v and %v: %w", rt, rt-1, err)
		}
		r, err := util.DistancePointToPoint(p0, li.Intersection)
		if err != nil {
			return SectorTable{}, fmt.Errorf("radius at rt %v: %w", rt, err)
		}
		center := li.Intersection
		sectors[i].Center = &center
		sectors[i].Radius = r
		log.Debugf("sector %d rt %v angle %v center %v radius %v", i, rt, sectors[i].Angle, center, r)
	}

	t := SectorTable{Sectors: sectors}
	if err := t.Validate(); err != nil {
		log.Warnf("generated sector table rejected: %v", err)
		return SectorTable{}, err
	}
	return t, nil
}

func rtToCCT(rt float64) float64 {
	if rt == 0 {
		return math.Inf(1)
	}
	return ReciprocalScale / rt
}
