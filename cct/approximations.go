package cct

import (
	"fmt"
	"math"

	"github.com/kpfaulkner/cct-go/color"
	"github.com/kpfaulkner/cct-go/util"
)

const (
	KangMinCCT = 1667.0
	KangMaxCCT = 25000.0
)

var (
	ansiCenter = util.NewPoint(0.292, 0.24)
	ansiK      = []float64{-0.471106, 1.925865, -2.4243787, 1.5317403, -0.5179722, 0.0893944, -0.00616793}
)

// DuvANSI approximates Duv with the ANSI C78.377-2011 polynomial, valid
// roughly between 2600 K and 7000 K.
func DuvANSI(uv color.CIEUV) (float64, error) {
	if !util.IsFinite(uv.U, uv.V) {
		return 0, fmt.Errorf("%w: %v", color.ErrOutOfRange, uv)
	}
	l0, err := util.DistancePointToPoint(uv.Point(), ansiCenter)
	if err != nil {
		return 0, err
	}
	a := math.Acos((uv.U - ansiCenter.X) / l0)

	// Horner, highest power first
	l1 := 0.0
	for i := len(ansiK) - 1; i >= 0; i-- {
		l1 = l1*a + ansiK[i]
	}
	return l0 - l1, nil
}

// XYFromCCTKang is the cubic spline of Kang et al. (2002) for the Planckian
// locus in CIE 1931 xy, defined from 1667 K to 25000 K.
func XYFromCCTKang(cct float64) (color.Chromaticity, error) {
	if math.IsNaN(cct) || cct < KangMinCCT || cct > KangMaxCCT {
		return color.Chromaticity{}, fmt.Errorf("%w: cct %v outside [%v, %v]", color.ErrOutOfRange, cct, KangMinCCT, KangMaxCCT)
	}

	t := cct
	var x float64
	if t < 4000 {
		x = -0.2661239e9/(t*t*t) - 0.2343589e6/(t*t) + 0.8776956e3/t + 0.179910
	} else {
		x = -3.0258469e9/(t*t*t) + 2.1070379e6/(t*t) + 0.2226347e3/t + 0.240390
	}

	var y float64
	switch {
	case t < 2222:
		y = -1.1063814*x*x*x - 1.34811020*x*x + 2.18555832*x - 0.20219683
	case t < 4000:
		y = -0.9549476*x*x*x - 1.37418593*x*x + 2.09137015*x - 0.16748867
	default:
		y = 3.0817580*x*x*x - 5.87338670*x*x + 3.75112997*x - 0.37001483
	}
	return color.FromXY(color.NewCIEXY(x, y))
}
