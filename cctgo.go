package cct_go

import (
	"github.com/kpfaulkner/cct-go/cct"
	"github.com/kpfaulkner/cct-go/color"
)

// CCT returns the correlated colour temperature and Duv of the CIE 1931
// chromaticity (x, y).
func CCT(x float64, y float64) (float64, float64, error) {
	res, err := cct.XYToCCT(color.NewCIEXY(x, y))
	if err != nil {
		return 0, 0, err
	}
	return res.CCT, res.Duv, nil
}

// XY returns the CIE 1931 chromaticity at cctK kelvin, duv from the locus.
func XY(cctK float64, duv float64) (float64, float64, error) {
	c, err := cct.CCTToUV(cctK, duv)
	if err != nil {
		return 0, 0, err
	}
	return c.XY.X, c.XY.Y, nil
}
