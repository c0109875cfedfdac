package app

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"dustfield/internal/field"
	"dustfield/internal/theme"

	"gopkg.in/yaml.v3"
)

// DensityPolicy picks the particle count from the viewport width: Low below
// Threshold, High at or above it.
type DensityPolicy struct {
	Threshold int `yaml:"threshold"`
	Low       int `yaml:"low"`
	High      int `yaml:"high"`
}

// For returns the density for a viewport of the given width.
func (p DensityPolicy) For(width int) int {
	if width < p.Threshold {
		return p.Low
	}
	return p.High
}

// LoadingConfig times the loading screen: fully opaque for Hold, then a fade
// of length Fade before it is removed.
type LoadingConfig struct {
	Hold time.Duration `yaml:"hold"`
	Fade time.Duration `yaml:"fade"`
}

// Config represents the command-line and file parameters for the application.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	TPS    int   `yaml:"tps"`
	Seed   int64 `yaml:"seed"`

	ReducedMotion bool   `yaml:"reduced_motion"`
	LightsOff     bool   `yaml:"lights_off"`
	LogLevel      string `yaml:"log_level"`

	Background          string `yaml:"background"`
	LightsOffBackground string `yaml:"lights_off_background"`

	Density DensityPolicy `yaml:"density"`
	Loading LoadingConfig `yaml:"loading"`
	Palette []string      `yaml:"palette"`
	Themes  []theme.Theme `yaml:"themes"`
	Field   field.Params  `yaml:"field"`

	ConfigPath string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:               1280,
		Height:              720,
		TPS:                 60,
		LogLevel:            "info",
		Background:          "#0d0612",
		LightsOffBackground: "#000000",
		Density:             DensityPolicy{Threshold: 800, Low: 180, High: 1000},
		Loading:             LoadingConfig{Hold: 300 * time.Millisecond, Fade: 1500 * time.Millisecond},
		Palette:             []string{"#270434", "#ffffff"},
		Themes:              theme.DefaultThemes(),
		Field:               field.DefaultParams(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional YAML config file")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "particle seed (the window app replaces 0 with a clock-derived seed)")
	fs.BoolVar(&c.ReducedMotion, "reduced-motion", c.ReducedMotion, "clear the background instead of animating")
	fs.BoolVar(&c.LightsOff, "lights-off", c.LightsOff, "start with the dark background")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error, off)")
	fs.IntVar(&c.Density.Threshold, "density-threshold", c.Density.Threshold, "width below which the low density is used")
	fs.IntVar(&c.Density.Low, "density-low", c.Density.Low, "particle count for narrow viewports")
	fs.IntVar(&c.Density.High, "density-high", c.Density.High, "particle count for wide viewports")
}

// Configure binds c to fs, parses args, merges the config file named by
// -config and parses args again so explicit flags win over the file.
func Configure(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.ConfigPath != "" {
		if err := c.LoadFile(c.ConfigPath); err != nil {
			return nil, err
		}
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile overlays the YAML file at path onto c. Keys missing from the file
// keep their current values. A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", c.TPS)
	}
	if c.Density.Low < 0 || c.Density.High < 0 {
		return errors.New("density counts must not be negative")
	}
	if _, ok := theme.LookupHex(c.Background); !ok {
		return fmt.Errorf("background %q is not a hex colour", c.Background)
	}
	if _, ok := theme.LookupHex(c.LightsOffBackground); !ok {
		return fmt.Errorf("lights-off background %q is not a hex colour", c.LightsOffBackground)
	}
	if len(c.Palette) == 0 {
		return errors.New("palette must not be empty")
	}
	for _, hex := range c.Palette {
		if _, ok := theme.LookupHex(hex); !ok {
			return fmt.Errorf("palette colour %q is not a hex colour", hex)
		}
	}
	if err := c.FieldParams().Validate(); err != nil {
		return fmt.Errorf("field: %w", err)
	}
	return nil
}

// FieldParams returns the field tuning with the palette resolved.
func (c *Config) FieldParams() field.Params {
	p := c.Field
	p.Palette = make([]color.NRGBA, 0, len(c.Palette))
	for _, hex := range c.Palette {
		p.Palette = append(p.Palette, theme.ParseHex(hex))
	}
	return p
}

// Ticks converts d into a tick count at the configured rate.
func (c *Config) Ticks(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d.Seconds()*float64(c.TPS) + 0.5)
}
