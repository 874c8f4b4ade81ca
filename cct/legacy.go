package cct

import (
	"fmt"
	"math"

	"github.com/kpfaulkner/cct-go/color"
	"github.com/kpfaulkner/cct-go/util"
)

// isotherm is the line through a reference row with its normal (-1, RS)
// pointing towards higher temperature.
func isotherm(e ReferenceEntry) util.Line {
	return util.NewGeneralLine(-1, e.RS, e.U-e.RS*e.V)
}

// UVToCCTLegacy resolves uv by walking the reference table's isotherms from
// the hottest row until uv lies on the hot side of one, then interpolating
// between that isotherm and the previous one. The locus point is
// reconstructed with a quadratic through the three nearest rows.
//
// It is kept alongside UVToCCT to cross check the sector table.
func (c *Converter) UVToCCTLegacy(uv color.CIEUV) (Result, error) {
	if !util.IsFinite(uv.U, uv.V) {
		return Result{}, fmt.Errorf("%w: %v", color.ErrOutOfRange, uv)
	}
	ref := c.reference
	p := uv.Point()
	distances := make([]util.PointLineDistance, len(ref))

	// TODO: binary search the isotherms, the scan is O(n) over 65 rows.
	i := 0
	for ; i < len(ref); i++ {
		d, err := util.DistancePointToLine(p, isotherm(ref[i]), util.NormalAsGiven)
		if err != nil {
			return Result{}, fmt.Errorf("isotherm %d: %w", i, err)
		}
		distances[i] = d
		if d.Sign > 0 {
			break
		}
	}

	if i == 0 {
		return Result{}, fmt.Errorf("%w: %v", ErrTemperatureTooHigh, uv)
	}
	if i == len(ref) {
		return Result{}, fmt.Errorf("%w: %v", ErrTemperatureTooLow, uv)
	}

	d0 := distances[i-1].Distance
	d1 := distances[i].Distance
	divideRatio := d1 / (d0 + d1)
	rt := float64(i) - divideRatio

	// keep rt away from the ends of the interpolation window
	n := i - 1
	if i == len(ref)-1 || (divideRatio > 0.5 && i > 1) {
		n--
	}
	uq, err := util.QuadraticInterpolation(
		util.NewPoint(float64(n), ref[n].U),
		util.NewPoint(float64(n+1), ref[n+1].U),
		util.NewPoint(float64(n+2), ref[n+2].U))
	if err != nil {
		return Result{}, err
	}
	vq, err := util.QuadraticInterpolation(
		util.NewPoint(float64(n), ref[n].V),
		util.NewPoint(float64(n+1), ref[n+1].V),
		util.NewPoint(float64(n+2), ref[n+2].V))
	if err != nil {
		return Result{}, err
	}
	ux := uq.At(rt)
	vx := vq.At(rt)

	duv := math.Sqrt((uv.U-ux)*(uv.U-ux) + (uv.V-vx)*(uv.V-vx))
	if uv.V < vx {
		duv = -duv
	}

	locus, err := color.FromUV(color.NewCIEUV(ux, vx))
	if err != nil {
		return Result{}, err
	}
	return Result{CCT: ReciprocalScale / rt, Duv: duv, Locus: locus}, nil
}

// UVToCCTLegacy runs the sequential method over JIS Z8725.
func UVToCCTLegacy(uv color.CIEUV) (Result, error) {
	return defaultConverter.UVToCCTLegacy(uv)
}
