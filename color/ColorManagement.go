package color

import (
	"fmt"

	"github.com/kpfaulkner/cct-go/util"
)

// XYToXYZ is the plain [x, y, 1-x-y] expansion, no normalisation applied.
func XYToXYZ(xy CIEXY) (CIEXYZ, error) {
	if err := xy.Validate(); err != nil {
		return CIEXYZ{}, err
	}
	return xyToXYZ(xy), nil
}

func xyToXYZ(xy CIEXY) CIEXYZ {
	return CIEXYZ{X: xy.X, Y: xy.Y, Z: 1 - xy.X - xy.Y}
}

func XYZToXY(xyz CIEXYZ) (CIEXY, error) {
	if !util.IsFinite(xyz.X, xyz.Y, xyz.Z) {
		return CIEXY{}, fmt.Errorf("%w: XYZ %v", ErrOutOfRange, xyz)
	}
	sum := xyz.X + xyz.Y + xyz.Z
	if sum == 0 {
		return CIEXY{}, fmt.Errorf("%w: XYZ %v sums to zero", ErrDivisionByZero, xyz)
	}
	return CIEXY{X: xyz.X / sum, Y: xyz.Y / sum}, nil
}

// XYToUV converts to CIE 1960 UCS. The xy value is validated before any
// transform is attempted.
func XYToUV(xy CIEXY) (CIEUV, error) {
	if err := xy.Validate(); err != nil {
		return CIEUV{}, err
	}
	return xyToUV(xy)
}

func xyToUV(xy CIEXY) (CIEUV, error) {
	denominator := -2*xy.X + 12*xy.Y + 3
	if denominator == 0 {
		return CIEUV{}, fmt.Errorf("%w: xy %v", ErrDivisionByZero, xy)
	}
	return CIEUV{U: 4 * xy.X / denominator, V: 6 * xy.Y / denominator}, nil
}

func UVToXY(uv CIEUV) (CIEXY, error) {
	if !util.IsFinite(uv.U, uv.V) {
		return CIEXY{}, fmt.Errorf("%w: uv %v", ErrOutOfRange, uv)
	}
	divider := 2*uv.U - 8*uv.V + 4
	if divider == 0 {
		return CIEXY{}, fmt.Errorf("%w: cannot convert %v to xy", ErrInvalidCoordinates, uv)
	}
	return CIEXY{X: 3 * uv.U / divider, Y: 2 * uv.V / divider}, nil
}

// FromXY resolves a validated xy into all three spaces.
func FromXY(xy CIEXY) (Chromaticity, error) {
	uv, err := XYToUV(xy)
	if err != nil {
		return Chromaticity{}, err
	}
	return Chromaticity{XY: xy, XYZ: xyToXYZ(xy), UV: uv}, nil
}

// FromXYZ keeps the given XYZ and derives xy and uv from it.
func FromXYZ(xyz CIEXYZ) (Chromaticity, error) {
	xy, err := XYZToXY(xyz)
	if err != nil {
		return Chromaticity{}, err
	}
	uv, err := xyToUV(xy)
	if err != nil {
		return Chromaticity{}, err
	}
	return Chromaticity{XY: xy, XYZ: xyz, UV: uv}, nil
}

// FromUV derives xy and XYZ from uv. Points produced by CCT/Duv arithmetic
// can sit outside the spectral locus, so the derived xy is not range checked.
func FromUV(uv CIEUV) (Chromaticity, error) {
	xy, err := UVToXY(uv)
	if err != nil {
		return Chromaticity{}, err
	}
	return Chromaticity{XY: xy, XYZ: xyToXYZ(xy), UV: uv}, nil
}
