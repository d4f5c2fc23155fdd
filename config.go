package coverart

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wbrown/coverart/imageutil"
)

// Default values for the render configuration.
const (
	DefaultTargetWidth = 120
	DefaultHeightScale = 0.55
	DefaultColorize    = true
)

// Config controls a single render. The zero value is not usable; start
// from DefaultConfig or NewConfig.
type Config struct {
	// TargetWidth is the number of glyphs in every output row.
	TargetWidth int

	// HeightScale compensates for terminal cells being taller than they
	// are wide.
	HeightScale float64

	// Colorize wraps each glyph in a 24-bit foreground color sequence.
	Colorize bool

	// Interpolation selects the resampling kernel. It does not change
	// the output dimensions.
	Interpolation imageutil.Interpolation
}

// Option is a functional option for configuring a render.
type Option func(*Config)

// DefaultConfig returns width 120, height scale 0.55, color on.
func DefaultConfig() Config {
	return Config{
		TargetWidth:   DefaultTargetWidth,
		HeightScale:   DefaultHeightScale,
		Colorize:      DefaultColorize,
		Interpolation: imageutil.InterpolationCubic,
	}
}

// NewConfig returns the default configuration with opts applied.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTargetWidth sets the output width in characters.
func WithTargetWidth(width int) Option {
	return func(c *Config) {
		c.TargetWidth = width
	}
}

// WithHeightScale sets the row scale factor.
func WithHeightScale(scale float64) Option {
	return func(c *Config) {
		c.HeightScale = scale
	}
}

// WithColorize turns truecolor output on or off.
func WithColorize(colorize bool) Option {
	return func(c *Config) {
		c.Colorize = colorize
	}
}

// WithInterpolation sets the resampling kernel.
func WithInterpolation(interp imageutil.Interpolation) Option {
	return func(c *Config) {
		c.Interpolation = interp
	}
}

// Validate rejects non-positive widths and height scales, and infinite
// height scales.
func (c Config) Validate() error {
	if c.TargetWidth <= 0 {
		return &ConfigError{Field: "width", Value: c.TargetWidth, Reason: "must be positive"}
	}
	if !(c.HeightScale > 0) {
		return &ConfigError{Field: "height scale", Value: c.HeightScale, Reason: "must be positive"}
	}
	if math.IsInf(c.HeightScale, 0) {
		return &ConfigError{Field: "height scale", Value: c.HeightScale, Reason: "must be finite"}
	}
	return nil
}

// Mode returns the glyph encoding selected by Colorize.
func (c Config) Mode() GlyphMode {
	if c.Colorize {
		return TrueColor
	}
	return Plain
}

// fileConfig mirrors the YAML layout. Pointer fields distinguish keys
// that were left out from explicit zero values.
type fileConfig struct {
	Width         *int     `yaml:"width"`
	HeightScale   *float64 `yaml:"height_scale"`
	Colorize      *bool    `yaml:"colorize"`
	Interpolation *string  `yaml:"interpolation"`
}

// LoadConfig reads a YAML configuration file. Keys that are absent keep
// their defaults; the result is validated.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML configuration bytes on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := DefaultConfig()
	if fc.Width != nil {
		cfg.TargetWidth = *fc.Width
	}
	if fc.HeightScale != nil {
		cfg.HeightScale = *fc.HeightScale
	}
	if fc.Colorize != nil {
		cfg.Colorize = *fc.Colorize
	}
	if fc.Interpolation != nil {
		interp, ok := imageutil.ParseInterpolation(*fc.Interpolation)
		if !ok {
			return Config{}, &ConfigError{Field: "interpolation", Value: *fc.Interpolation, Reason: "unknown method"}
		}
		cfg.Interpolation = interp
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
