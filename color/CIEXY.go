package color

import (
	"fmt"

	"github.com/kpfaulkner/cct-go/util"
)

// CIEXY is a CIE 1931 xy chromaticity.
type CIEXY struct {
	X float64
	Y float64
}

// CIEUV is a CIE 1960 UCS uv chromaticity.
type CIEUV struct {
	U float64
	V float64
}

// CIEXYZ is a tristimulus value. XYZ values derived from xy here are not
// normalised to Y == 1.
type CIEXYZ struct {
	X float64
	Y float64
	Z float64
}

func NewCIEXY(x float64, y float64) CIEXY {
	return CIEXY{X: x, Y: y}
}

func NewCIEUV(u float64, v float64) CIEUV {
	return CIEUV{U: u, V: v}
}

func NewCIEXYZ(x float64, y float64, z float64) CIEXYZ {
	return CIEXYZ{X: x, Y: y, Z: z}
}

// Validate checks xy lies inside the chromaticity triangle
// x >= 0, y >= 0, x+y <= 1. NaN and infinite values are rejected.
func (xy CIEXY) Validate() error {
	if !util.IsFinite(xy.X, xy.Y) || xy.X < 0 || xy.Y < 0 || xy.X+xy.Y > 1 {
		return fmt.Errorf("%w: xy %v, must be in the range [0,1] and sum to <= 1", ErrOutOfRange, xy)
	}
	return nil
}

func (xy CIEXY) Matches(other CIEXY) bool {
	return xy.X == other.X && xy.Y == other.Y
}

func (xy CIEXY) String() string {
	return fmt.Sprintf("xy[%v, %v]", xy.X, xy.Y)
}

// Point exposes the uv coordinate as a plane point for the geometry helpers.
func (uv CIEUV) Point() util.Point {
	return util.NewPoint(uv.U, uv.V)
}

func UVFromPoint(p util.Point) CIEUV {
	return CIEUV{U: p.X, V: p.Y}
}

func (uv CIEUV) String() string {
	return fmt.Sprintf("uv[%v, %v]", uv.U, uv.V)
}

func (xyz CIEXYZ) String() string {
	return fmt.Sprintf("XYZ[%v, %v, %v]", xyz.X, xyz.Y, xyz.Z)
}

// Chromaticity carries one colour in all three coordinate spaces.
type Chromaticity struct {
	XY  CIEXY
	XYZ CIEXYZ
	UV  CIEUV
}
