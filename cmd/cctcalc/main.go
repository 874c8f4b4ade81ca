package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kpfaulkner/cct-go/cct"
	"github.com/kpfaulkner/cct-go/color"
	"github.com/kpfaulkner/cct-go/options"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

var (
	errUsage      = errors.New("exactly one of --xy, --uv, --xyz, --cct or --white is required")
	errDuvWithout = errors.New("--duv is only valid with --cct")
)

type input struct {
	xy    []float64
	uv    []float64
	xyz   []float64
	cct   float64
	duv   float64
	white string

	hasCCT bool
	hasDuv bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "cctcalc: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	fs := pflag.NewFlagSet("cctcalc", pflag.ContinueOnError)
	in := input{}
	fs.Float64SliceVar(&in.xy, "xy", nil, "CIE 1931 chromaticity x,y")
	fs.Float64SliceVar(&in.uv, "uv", nil, "CIE 1960 UCS chromaticity u,v")
	fs.Float64SliceVar(&in.xyz, "xyz", nil, "tristimulus X,Y,Z")
	fs.Float64Var(&in.cct, "cct", 0, "correlated colour temperature in kelvin")
	fs.Float64Var(&in.duv, "duv", 0, "distance from the locus, used with --cct")
	fs.StringVar(&in.white, "white", "", "standard white point (D50, D65, E, DCI, A)")
	configFile := fs.String("config", "", "TOML options file")
	method := fs.StringP("method", "m", options.MethodJIS, "forward method: jis, legacy or ansi")
	precision := fs.IntP("precision", "p", 6, "digits after the decimal point")
	swatch := fs.Bool("swatch", false, "print a colour swatch of the chromaticity")
	verbose := fs.BoolP("verbose", "v", false, "debug logging")
	prof := fs.String("profile", "", "write a cpu or mem profile to the current directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in.hasCCT = fs.Changed("cct")
	in.hasDuv = fs.Changed("duv")

	opts := options.NewCCTOptions(nil)
	if *configFile != "" {
		var err error
		if opts, err = options.LoadCCTOptions(*configFile); err != nil {
			return err
		}
	}
	if fs.Changed("method") {
		opts.Method = *method
	}
	if fs.Changed("precision") {
		opts.Precision = *precision
	}
	if fs.Changed("swatch") {
		opts.Swatch = *swatch
	}
	if fs.Changed("profile") {
		opts.Profile = *prof
	}
	if *verbose {
		opts.LogLevel = "debug"
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	log.SetLevel(opts.Level())

	switch opts.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	return convert(in, opts, w)
}

func convert(in input, opts *options.CCTOptions, w io.Writer) error {
	if countSet(in) != 1 {
		return errUsage
	}
	if in.hasDuv && !in.hasCCT {
		return errDuvWithout
	}
	if in.hasCCT {
		return inverse(in, opts, w)
	}

	c, err := chromaticity(in)
	if err != nil {
		return err
	}
	log.Debugf("input %v %v", c.XY, c.UV)

	res, err := forward(c, opts.Method)
	if err != nil {
		return err
	}

	p := opts.Precision
	fmt.Fprintf(w, "CCT: %.*f K\n", p, res.CCT)
	fmt.Fprintf(w, "Duv: %.*f\n", p, res.Duv)
	fmt.Fprintf(w, "xy:  %.*f, %.*f\n", p, c.XY.X, p, c.XY.Y)
	fmt.Fprintf(w, "uv:  %.*f, %.*f\n", p, c.UV.U, p, c.UV.V)
	if opts.Swatch {
		fmt.Fprintln(w, swatchLine(c.XY, w))
	}
	return nil
}

func inverse(in input, opts *options.CCTOptions, w io.Writer) error {
	if opts.Method != options.MethodJIS {
		return fmt.Errorf("method %s has no inverse conversion", opts.Method)
	}
	c, err := cct.CCTToUV(in.cct, in.duv)
	if err != nil {
		return err
	}

	p := opts.Precision
	fmt.Fprintf(w, "xy:  %.*f, %.*f\n", p, c.XY.X, p, c.XY.Y)
	fmt.Fprintf(w, "uv:  %.*f, %.*f\n", p, c.UV.U, p, c.UV.V)
	fmt.Fprintf(w, "XYZ: %.*f, %.*f, %.*f\n", p, c.XYZ.X, p, c.XYZ.Y, p, c.XYZ.Z)
	if opts.Swatch {
		fmt.Fprintln(w, swatchLine(c.XY, w))
	}
	return nil
}

func countSet(in input) int {
	n := 0
	for _, set := range []bool{in.xy != nil, in.uv != nil, in.xyz != nil, in.white != "", in.hasCCT} {
		if set {
			n++
		}
	}
	return n
}

func chromaticity(in input) (color.Chromaticity, error) {
	switch {
	case in.xy != nil:
		if len(in.xy) != 2 {
			return color.Chromaticity{}, fmt.Errorf("--xy needs 2 values, got %d", len(in.xy))
		}
		return color.FromXY(color.NewCIEXY(in.xy[0], in.xy[1]))
	case in.uv != nil:
		if len(in.uv) != 2 {
			return color.Chromaticity{}, fmt.Errorf("--uv needs 2 values, got %d", len(in.uv))
		}
		return color.FromUV(color.NewCIEUV(in.uv[0], in.uv[1]))
	case in.xyz != nil:
		if len(in.xyz) != 3 {
			return color.Chromaticity{}, fmt.Errorf("--xyz needs 3 values, got %d", len(in.xyz))
		}
		return color.FromXYZ(color.NewCIEXYZ(in.xyz[0], in.xyz[1], in.xyz[2]))
	}

	wp, ok := color.WhitePointByName(in.white)
	if !ok {
		return color.Chromaticity{}, fmt.Errorf("unknown white point %q", in.white)
	}
	xy, _ := color.GetWhitePoint(wp)
	return color.FromXY(xy)
}

// forward resolves CCT and Duv with the requested method. ansi only replaces
// Duv, the CCT still comes from the sector search.
func forward(c color.Chromaticity, method string) (cct.Result, error) {
	switch method {
	case options.MethodLegacy:
		return cct.UVToCCTLegacy(c.UV)
	case options.MethodANSI:
		res, err := cct.UVToCCT(c.UV)
		if err != nil {
			return res, err
		}
		if res.Duv, err = cct.DuvANSI(c.UV); err != nil {
			return res, err
		}
		return res, nil
	}
	return cct.UVToCCT(c.UV)
}

// swatchLine renders xy at full luminance as a block of background colour,
// plain text on terminals without colour support.
func swatchLine(xy color.CIEXY, w io.Writer) string {
	rgb := colorful.Xyy(xy.X, xy.Y, 1).Clamped()
	hex := rgb.Hex()
	out := termenv.NewOutput(w)
	return out.String("        ").Background(out.Color(hex)).String() + " " + hex
}
