package color

const (
	WP_D50 int32 = -1
	WP_D65 int32 = 1
	WP_E   int32 = 10
	WP_DCI int32 = 11
	WP_A   int32 = 12
)

func ValidateWhitePoint(whitePoint int32) bool {
	return whitePoint == WP_D50 || whitePoint == WP_D65 || whitePoint == WP_E || whitePoint == WP_DCI || whitePoint == WP_A
}

// GetWhitePoint returns the CIE 1931 2 degree chromaticity of a standard
// white point.
func GetWhitePoint(whitePoint int32) (CIEXY, bool) {
	switch whitePoint {
	case WP_D65:
		return NewCIEXY(0.3127, 0.3290), true
	case WP_E:
		return NewCIEXY(1.0/3, 1.0/3), true
	case WP_DCI:
		return NewCIEXY(0.314, 0.351), true
	case WP_D50:
		return NewCIEXY(0.34567, 0.35850), true
	case WP_A:
		return NewCIEXY(0.44757, 0.40745), true
	}
	return CIEXY{}, false
}

// WhitePointByName maps the usual illuminant names to their enum.
func WhitePointByName(name string) (int32, bool) {
	switch name {
	case "D50", "d50":
		return WP_D50, true
	case "D65", "d65":
		return WP_D65, true
	case "E", "e":
		return WP_E, true
	case "DCI", "dci":
		return WP_DCI, true
	case "A", "a":
		return WP_A, true
	}
	return 0, false
}
