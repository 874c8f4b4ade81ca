package options

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
)

const (
	MethodJIS    = "jis"
	MethodLegacy = "legacy"
	MethodANSI   = "ansi"
)

// CCTOptions configures the cctcalc command. Values can come from a TOML
// file and are then overridden by flags.
type CCTOptions struct {
	Method    string `toml:"method"`
	Precision int    `toml:"precision"`
	Swatch    bool   `toml:"swatch"`
	LogLevel  string `toml:"log_level"`
	Profile   string `toml:"profile"`
}

// NewCCTOptions fills the defaults and copies the non-zero fields of
// options over them. A zero Precision means the default here, set the field
// afterwards for whole-number output.
func NewCCTOptions(options *CCTOptions) *CCTOptions {
	opt := &CCTOptions{
		Method:    MethodJIS,
		Precision: 6,
		LogLevel:  "warn",
	}
	if options != nil {
		if options.Method != "" {
			opt.Method = strings.ToLower(options.Method)
		}
		if options.Precision > 0 {
			opt.Precision = options.Precision
		}
		if options.LogLevel != "" {
			opt.LogLevel = options.LogLevel
		}
		opt.Swatch = options.Swatch
		opt.Profile = options.Profile
	}
	return opt
}

// LoadCCTOptions reads a TOML file over the defaults.
func LoadCCTOptions(filename string) (*CCTOptions, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseCCTOptions(data)
}

// ParseCCTOptions decodes TOML over the defaults, keys absent from data keep
// their default value. An explicit precision = 0 is honoured.
func ParseCCTOptions(data []byte) (*CCTOptions, error) {
	opt := NewCCTOptions(nil)
	if err := toml.Unmarshal(data, opt); err != nil {
		return nil, fmt.Errorf("parsing options: %w", err)
	}
	opt.Method = strings.ToLower(opt.Method)
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return opt, nil
}

func (o *CCTOptions) Validate() error {
	switch o.Method {
	case MethodJIS, MethodLegacy, MethodANSI:
	default:
		return fmt.Errorf("unknown method %q", o.Method)
	}
	if o.Precision < 0 || o.Precision > 17 {
		return fmt.Errorf("precision %d outside [0, 17]", o.Precision)
	}
	switch o.Profile {
	case "", "cpu", "mem":
	default:
		return fmt.Errorf("unknown profile %q", o.Profile)
	}
	if _, err := log.ParseLevel(o.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the logrus level, Validate has already checked it parses.
func (o *CCTOptions) Level() log.Level {
	level, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return level
}
