// Package config holds the settings shared by the viewer, the GUI and the
// CLI: canvas size, tangency tolerance and drawing style.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gocircle/pkg/geometry"
)

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("invalid config")

// Colors holds hex colors ("#rrggbb" or "#rrggbbaa") for each drawn element
type Colors struct {
	Pending      string `toml:"pending"`
	Circle       string `toml:"circle"`
	Segment      string `toml:"segment"`
	Intersection string `toml:"intersection"`
	Axes         string `toml:"axes"`
	Background   string `toml:"background"`
	Text         string `toml:"text"`
}

// Config holds all settings
type Config struct {
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	Tolerance      float64 `toml:"tolerance"`
	CircleSegments int     `toml:"circle_segments"`
	AxesLength     float64 `toml:"axes_length"`
	Colors         Colors  `toml:"colors"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Width:          700,
		Height:         700,
		Tolerance:      geometry.DefaultDiscriminantTolerance,
		CircleSegments: 120,
		AxesLength:     0.85,
		Colors: Colors{
			Pending:      "#808080",
			Circle:       "#ff00ff",
			Segment:      "#0000ff",
			Intersection: "#ffff00",
			Axes:         "#b3b3b3",
			Background:   "#1a334d",
			Text:         "#ffffff",
		},
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns the defaults when path is empty
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks that every value is usable
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: canvas size must be positive, got %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive, got %g", ErrInvalid, c.Tolerance)
	}
	if c.CircleSegments < 3 {
		return fmt.Errorf("%w: circle_segments must be at least 3, got %d", ErrInvalid, c.CircleSegments)
	}
	if c.AxesLength < 0 || c.AxesLength > 1 {
		return fmt.Errorf("%w: axes_length must be in [0, 1], got %g", ErrInvalid, c.AxesLength)
	}

	colors := map[string]string{
		"pending":      c.Colors.Pending,
		"circle":       c.Colors.Circle,
		"segment":      c.Colors.Segment,
		"intersection": c.Colors.Intersection,
		"axes":         c.Colors.Axes,
		"background":   c.Colors.Background,
		"text":         c.Colors.Text,
	}
	for name, value := range colors {
		if _, err := ParseColor(value); err != nil {
			return fmt.Errorf("%w: colors.%s: %v", ErrInvalid, name, err)
		}
	}
	return nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa"
func ParseColor(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q must be #rrggbb or #rrggbbaa", hex)
	}
	if len(s) == 6 {
		s += "ff"
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q is not hex: %w", hex, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Palette is the parsed form of Colors
type Palette struct {
	Pending      color.RGBA
	Circle       color.RGBA
	Segment      color.RGBA
	Intersection color.RGBA
	Axes         color.RGBA
	Background   color.RGBA
	Text         color.RGBA
}

// Palette parses all colors. Call Validate first; unparsable colors come back
// as opaque black.
func (c Config) Palette() Palette {
	parse := func(s string) color.RGBA {
		col, err := ParseColor(s)
		if err != nil {
			return color.RGBA{A: 255}
		}
		return col
	}
	return Palette{
		Pending:      parse(c.Colors.Pending),
		Circle:       parse(c.Colors.Circle),
		Segment:      parse(c.Colors.Segment),
		Intersection: parse(c.Colors.Intersection),
		Axes:         parse(c.Colors.Axes),
		Background:   parse(c.Colors.Background),
		Text:         parse(c.Colors.Text),
	}
}
