// Package config loads editor settings from a YAML file.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable editor settings. The zero value is not usable;
// start from Default.
type Config struct {
	// HitMargin is the fixed slack added to half the stroke width when hit
	// testing wires.
	HitMargin float64 `yaml:"hit_margin"`

	// GridSize is the snapping cell size used by the input layer. Zero
	// disables snapping.
	GridSize float64 `yaml:"grid_size"`

	// Wire styling defaults for newly drawn wires.
	WireColor     string  `yaml:"wire_color"`
	WireLineWidth float64 `yaml:"wire_line_width"`

	// MaxHistory caps the number of undo states kept per wire. Zero means
	// unlimited.
	MaxHistory int `yaml:"max_history"`

	// Export settings.
	ExportWidth  int `yaml:"export_width"`
	ExportHeight int `yaml:"export_height"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		HitMargin:     5,
		GridSize:      10,
		WireColor:     "#000000",
		WireLineWidth: 1,
		MaxHistory:    100,
		ExportWidth:   1024,
		ExportHeight:  768,
	}
}

// Load reads settings from a YAML file, layered over the defaults. A
// missing file is not an error: the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate rejects settings that would corrupt editing behavior.
func (c Config) Validate() error {
	if c.HitMargin < 0 {
		return fmt.Errorf("config: hit_margin must not be negative, got %v", c.HitMargin)
	}
	if c.GridSize < 0 {
		return fmt.Errorf("config: grid_size must not be negative, got %v", c.GridSize)
	}
	if c.WireLineWidth < 0 {
		return fmt.Errorf("config: wire_line_width must not be negative, got %v", c.WireLineWidth)
	}
	if c.MaxHistory < 0 {
		return fmt.Errorf("config: max_history must not be negative, got %d", c.MaxHistory)
	}
	if c.ExportWidth <= 0 || c.ExportHeight <= 0 {
		return fmt.Errorf("config: export dimensions must be positive, got %dx%d",
			c.ExportWidth, c.ExportHeight)
	}
	return nil
}

// Snap rounds a raw input coordinate to the nearest grid multiple. With
// snapping disabled the coordinate passes through unchanged.
func (c Config) Snap(v float64) float64 {
	if c.GridSize <= 0 {
		return v
	}
	return math.Round(v/c.GridSize) * c.GridSize
}
