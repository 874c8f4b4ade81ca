package cct

import (
	"fmt"
	"math"

	"github.com/kpfaulkner/cct-go/color"
	"github.com/kpfaulkner/cct-go/util"
)

type ConverterOption func(c *Converter) error

// WithSectorTable serves the binary search lookups from t instead of the
// embedded table. The table is validated when the option is applied.
func WithSectorTable(t SectorTable) ConverterOption {
	return func(c *Converter) error {
		if err := t.Validate(); err != nil {
			return err
		}
		c.sectors = SectorTable{Sectors: cloneSectors(t.Sectors)}
		return nil
	}
}

// WithReferenceTable replaces the reference table used by the sequential
// method. Unless WithSectorTable is also given, the sector table is
// generated from it.
func WithReferenceTable(ref []ReferenceEntry) ConverterOption {
	return func(c *Converter) error {
		if len(ref) < 3 {
			return fmt.Errorf("reference table needs at least 3 rows, got %d", len(ref))
		}
		c.reference = make([]ReferenceEntry, len(ref))
		copy(c.reference, ref)
		c.customReference = true
		return nil
	}
}

// Converter converts between CIE 1960 UCS chromaticities and CCT/Duv. It
// holds no mutable state once built and is safe for concurrent use.
type Converter struct {
	sectors   SectorTable
	reference []ReferenceEntry

	customReference bool
}

// Result of a forward conversion. Duv is positive on the greenish side of the
// locus (larger v) and negative on the magenta side. Locus is the point on
// the locus approximation the CCT was resolved to.
type Result struct {
	CCT   float64
	Duv   float64
	Locus color.Chromaticity
}

var defaultConverter = &Converter{
	sectors:   SectorTable{Sectors: defaultSectors},
	reference: jisZ8725,
}

func NewConverter(opts ...ConverterOption) (*Converter, error) {
	c := &Converter{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("applying converter option: %w", err)
		}
	}

	if c.reference == nil {
		c.reference = jisZ8725
	}
	if c.sectors.Sectors == nil {
		if !c.customReference {
			c.sectors = SectorTable{Sectors: defaultSectors}
			return c, nil
		}
		t, err := GenerateSectorTable(c.reference)
		if err != nil {
			return nil, err
		}
		c.sectors = t
	}
	return c, nil
}

// SectorTable returns a copy of the table the converter searches.
func (c *Converter) SectorTable() SectorTable {
	return SectorTable{Sectors: cloneSectors(c.sectors.Sectors)}
}

// search is the binary search both directions share. probe reports whether
// the value looked for is beyond (probeBeyond), before (probeBefore) or
// inside (probeInside) sector i. probeInvalid ends the search unfound.
func (c *Converter) search(probe func(i int, s0 Sector, s1 Sector) int) (int, bool) {
	sectors := c.sectors.Sectors
	from := 0
	to := len(sectors) - 2
	for from <= to {
		mid := from + (to-from)/2
		switch probe(mid, sectors[mid], sectors[mid+1]) {
		case probeBeyond:
			from = mid + 1
		case probeBefore:
			to = mid - 1
		case probeInside:
			return mid, true
		default:
			return 0, false
		}
	}
	return 0, false
}

const (
	probeBefore  = -1
	probeInside  = 0
	probeBeyond  = 1
	probeInvalid = 2
)

// angleTolerance absorbs rounding when a point sits on an isotherm shared by
// two sectors. Without it such a point can test as beyond the end of one
// sector and before the start of the next. The same slack applies at the
// start of the first sector and the end of the last one, so a query at most
// angleTolerance outside the table is accepted and clamped onto its edge.
// That keeps the rows at 1562.5 K and infinite CCT reachable in both
// directions.
const angleTolerance = 1e-12

// angleFromCenter is the angle of uv seen from the sector's center, folded
// to [0, Pi) the same way the isotherm angles are.
func angleFromCenter(uv color.CIEUV, s Sector) float64 {
	return util.AngleFromSlope((uv.V - s.Center.Y) / (uv.U - s.Center.X))
}

func (c *Converter) locateUV(uv color.CIEUV) (int, float64, bool) {
	return c.locateAngle(func(s Sector) float64 {
		return angleFromCenter(uv, s)
	})
}

// locateAngle finds the sector whose angular range [angle0, angle1) holds
// the angle angleOf measures from that sector's center. An angle equal to
// angle1 belongs to the next sector, except on the last sector which also
// accepts angle1. Both ends of the table allow angleTolerance of slack.
func (c *Converter) locateAngle(angleOf func(s Sector) float64) (int, float64, bool) {
	last := len(c.sectors.Sectors) - 2
	var angle float64
	i, found := c.search(func(i int, s0 Sector, s1 Sector) int {
		angle = angleOf(s0)
		beyond := angle > s1.Angle || (angle == s1.Angle && i != last)
		if i == last {
			beyond = angle > s1.Angle+angleTolerance
		}
		switch {
		case math.IsNaN(angle):
			return probeInvalid
		case beyond:
			return probeBeyond
		case angle < s0.Angle-angleTolerance:
			return probeBefore
		}
		return probeInside
	})
	return i, angle, found
}

// locateRT finds the sector whose reciprocal temperature range (rt1, rt0]
// holds rt. The last sector also accepts rt1.
func (c *Converter) locateRT(rt float64) (int, bool) {
	last := len(c.sectors.Sectors) - 2
	return c.search(func(i int, s0 Sector, s1 Sector) int {
		switch {
		case rt < s1.RT || (rt == s1.RT && i != last):
			return probeBeyond
		case rt > s0.RT:
			return probeBefore
		}
		return probeInside
	})
}

// UVToCCT resolves uv to CCT and Duv by binary searching the sector table.
func (c *Converter) UVToCCT(uv color.CIEUV) (Result, error) {
	if !util.IsFinite(uv.U, uv.V) {
		return Result{}, fmt.Errorf("%w: %v", color.ErrOutOfRange, uv)
	}
	i, angle, found := c.locateUV(uv)
	if !found {
		return Result{}, fmt.Errorf("%w: %v is outside the supported temperature range", color.ErrOutOfRange, uv)
	}

	s0, s1 := c.sectors.Sectors[i], c.sectors.Sectors[i+1]
	angle = util.Clamp(angle, s0.Angle, s1.Angle)
	rt := util.Lerp(s0.RT, s1.RT, util.InverseLerp(s0.Angle, s1.Angle, angle))
	distance, err := util.DistancePointToPoint(uv.Point(), *s0.Center)
	if err != nil {
		return Result{}, fmt.Errorf("%v coincides with a sector center: %w", uv, err)
	}

	locus, err := color.FromUV(color.UVFromPoint(s0.Center.Polar(s0.Radius, angle)))
	if err != nil {
		return Result{}, err
	}
	return Result{
		CCT:   rtToCCT(rt),
		Duv:   distance - s0.Radius,
		Locus: locus,
	}, nil
}

// CCTToUV returns the chromaticity at cct Kelvin, duv away from the locus.
// An infinite cct is accepted, duv must be finite.
func (c *Converter) CCTToUV(cct float64, duv float64) (color.Chromaticity, error) {
	if math.IsNaN(cct) || cct <= 0 || !util.IsFinite(duv) {
		return color.Chromaticity{}, fmt.Errorf("%w: cct %v duv %v", color.ErrOutOfRange, cct, duv)
	}

	rt := ReciprocalScale / cct
	i, found := c.locateRT(rt)
	if !found {
		return color.Chromaticity{}, fmt.Errorf("%w: cct %v is outside the supported temperature range", color.ErrOutOfRange, cct)
	}

	s0, s1 := c.sectors.Sectors[i], c.sectors.Sectors[i+1]
	angle := util.Lerp(s0.Angle, s1.Angle, util.InverseLerp(s0.RT, s1.RT, rt))
	return color.FromUV(color.UVFromPoint(s0.Center.Polar(s0.Radius+duv, angle)))
}

func (c *Converter) XYToCCT(xy color.CIEXY) (Result, error) {
	uv, err := color.XYToUV(xy)
	if err != nil {
		return Result{}, err
	}
	return c.UVToCCT(uv)
}

func (c *Converter) XYZToCCT(xyz color.CIEXYZ) (Result, error) {
	ch, err := color.FromXYZ(xyz)
	if err != nil {
		return Result{}, err
	}
	return c.UVToCCT(ch.UV)
}

// UVToCCT converts with the embedded JIS Z8725 sector table.
func UVToCCT(uv color.CIEUV) (Result, error) {
	return defaultConverter.UVToCCT(uv)
}

// CCTToUV converts with the embedded JIS Z8725 sector table.
func CCTToUV(cct float64, duv float64) (color.Chromaticity, error) {
	return defaultConverter.CCTToUV(cct, duv)
}

func XYToCCT(xy color.CIEXY) (Result, error) {
	return defaultConverter.XYToCCT(xy)
}

func XYZToCCT(xyz color.CIEXYZ) (Result, error) {
	return defaultConverter.XYZToCCT(xyz)
}
