package coverart

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"testing/quick"

	"github.com/wbrown/coverart/imageutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TargetWidth != 120 {
		t.Errorf("Expected width 120, got %d", cfg.TargetWidth)
	}
	if cfg.HeightScale != 0.55 {
		t.Errorf("Expected height scale 0.55, got %f", cfg.HeightScale)
	}
	if !cfg.Colorize {
		t.Error("Expected colorize to default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestNewConfigOptions(t *testing.T) {
	cfg := NewConfig(
		WithTargetWidth(80),
		WithHeightScale(0.5),
		WithColorize(false),
		WithInterpolation(imageutil.InterpolationNearest),
	)
	if cfg.TargetWidth != 80 || cfg.HeightScale != 0.5 || cfg.Colorize ||
		cfg.Interpolation != imageutil.InterpolationNearest {
		t.Errorf("Options not applied: %+v", cfg)
	}
}

// TestValidateProperty verifies that Validate accepts exactly the configs
// with a positive width and a positive finite height scale.
func TestValidateProperty(t *testing.T) {
	property := func(width int16, scale float64) bool {
		cfg := NewConfig(WithTargetWidth(int(width)), WithHeightScale(scale))
		err := cfg.Validate()
		valid := width > 0 && scale > 0 && !math.IsInf(scale, 1)
		if valid {
			return err == nil
		}
		var cfgErr *ConfigError
		return errors.As(err, &cfgErr)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}

	for _, scale := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if err := NewConfig(WithHeightScale(scale)).Validate(); err == nil {
			t.Errorf("Expected height scale %v to be rejected", scale)
		}
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("width: 80\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.TargetWidth != 80 {
		t.Errorf("Expected width 80, got %d", cfg.TargetWidth)
	}
	if cfg.HeightScale != DefaultHeightScale || !cfg.Colorize {
		t.Errorf("Missing keys should keep defaults, got %+v", cfg)
	}

	cfg, err = ParseConfig([]byte("colorize: false\nheight_scale: 0.5\ninterpolation: nearest\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Colorize {
		t.Error("Expected colorize false")
	}
	if cfg.HeightScale != 0.5 {
		t.Errorf("Expected height scale 0.5, got %f", cfg.HeightScale)
	}
	if cfg.Interpolation != imageutil.InterpolationNearest {
		t.Errorf("Expected nearest interpolation, got %s", cfg.Interpolation)
	}
	if cfg.TargetWidth != DefaultTargetWidth {
		t.Errorf("Expected default width, got %d", cfg.TargetWidth)
	}

	cfg, err = ParseConfig(nil)
	if err != nil {
		t.Fatalf("Empty config should be valid: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Empty config should equal defaults, got %+v", cfg)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	cases := map[string]string{
		"zero width":     "width: 0\n",
		"negative scale": "height_scale: -1\n",
		"infinite scale": "height_scale: .inf\n",
		"unknown interp": "interpolation: lanczos\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(data))
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("Expected *ConfigError, got %v", err)
			}
		})
	}

	if _, err := ParseConfig([]byte("width: [\n")); err == nil {
		t.Error("Expected a parse error for malformed YAML")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverart.yaml")
	if err := os.WriteFile(path, []byte("width: 64\ncolorize: false\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.TargetWidth != 64 || cfg.Colorize {
		t.Errorf("Unexpected config %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
