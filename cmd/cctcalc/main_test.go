package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kpfaulkner/cct-go/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		name      string
		args      []string
		contains  []string
		expectErr bool
	}{
		{
			name:     "d65 xy",
			args:     []string{"--xy", "0.3127,0.3290", "-p", "2"},
			contains: []string{"CCT: 6505.59 K", "Duv: 0.00", "xy:  0.31, 0.33"},
		},
		{
			name:     "white point",
			args:     []string{"--white", "D65", "-p", "1"},
			contains: []string{"CCT: 6505.6 K"},
		},
		{
			name:     "legacy",
			args:     []string{"--uv", "0.2,0.33", "--method", "legacy", "-p", "1"},
			contains: []string{"CCT: 5213.2 K"},
		},
		{
			name:     "ansi",
			args:     []string{"--xy", "0.3127,0.3290", "-m", "ansi", "-p", "3"},
			contains: []string{"Duv: 0.003"},
		},
		{
			name:     "xyz",
			args:     []string{"--xyz", "95.047,100,108.883", "-p", "0"},
			contains: []string{"CCT: 6504 K", "Duv: 0\n"},
		},
		{
			name:     "inverse",
			args:     []string{"--cct", "6500", "--duv", "0", "-p", "4"},
			contains: []string{"xy:  0.3135, 0.3237", "XYZ:"},
		},
		{
			name:     "swatch",
			args:     []string{"--white", "E", "--swatch"},
			contains: []string{"#"},
		},
		{name: "no input", args: []string{"-p", "3"}, expectErr: true},
		{name: "duv without cct", args: []string{"--xy", "0.3127,0.3290", "--duv", "0.01"}, expectErr: true},
		{name: "negative precision", args: []string{"--white", "D65", "--precision=-1"}, expectErr: true},
		{name: "two inputs", args: []string{"--xy", "0.3,0.3", "--cct", "5000"}, expectErr: true},
		{name: "bad arity", args: []string{"--xy", "0.3"}, expectErr: true},
		{name: "bad method", args: []string{"--xy", "0.3,0.3", "-m", "mccamy"}, expectErr: true},
		{name: "inverse legacy", args: []string{"--cct", "5000", "-m", "legacy"}, expectErr: true},
		{name: "too cold", args: []string{"--cct", "1000"}, expectErr: true},
		{name: "outside gamut", args: []string{"--xy", "0.8,0.8"}, expectErr: true},
		{name: "unknown white", args: []string{"--white", "F2"}, expectErr: true},
		{name: "unknown flag", args: []string{"--kelvin", "5000"}, expectErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := run(tc.args, &buf)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, s := range tc.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestRunConfigFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cctcalc.toml")
	require.NoError(t, os.WriteFile(fn, []byte("method = \"legacy\"\nprecision = 1\n"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, run([]string{"--config", fn, "--uv", "0.2,0.33"}, &buf))
	assert.Contains(t, buf.String(), "CCT: 5213.2 K")

	// flags win over the file
	buf.Reset()
	require.NoError(t, run([]string{"--config", fn, "-p", "2", "-m", "jis", "--uv", "0.2,0.33"}, &buf))
	assert.True(t, strings.HasPrefix(buf.String(), "CCT: "))
	assert.NotContains(t, buf.String(), "CCT: 5213.2 K")
}

func TestRunDuvNeedsCCT(t *testing.T) {
	var buf bytes.Buffer
	err := run([]string{"--uv", "0.2,0.33", "--duv", "0"}, &buf)
	assert.ErrorIs(t, err, errDuvWithout)
	assert.Empty(t, buf.String())
}

func TestCountSet(t *testing.T) {
	assert.Equal(t, 0, countSet(input{}))
	assert.Equal(t, 1, countSet(input{white: "D65"}))
	assert.Equal(t, 2, countSet(input{xy: []float64{0.3, 0.3}, hasCCT: true}))
}

func TestForwardMethods(t *testing.T) {
	c, err := chromaticity(input{white: "D65"})
	require.NoError(t, err)

	jis, err := forward(c, options.MethodJIS)
	require.NoError(t, err)
	legacy, err := forward(c, options.MethodLegacy)
	require.NoError(t, err)
	ansi, err := forward(c, options.MethodANSI)
	require.NoError(t, err)

	assert.InDelta(t, jis.CCT, legacy.CCT, 0.1)
	assert.Equal(t, jis.CCT, ansi.CCT)
	assert.InDelta(t, jis.Duv, ansi.Duv, 5e-5)
}
