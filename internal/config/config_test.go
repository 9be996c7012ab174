package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gocircle.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default failed validation: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
width = 800
tolerance = 1e-4

[colors]
circle = "#00ff00"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Width != 800 {
		t.Errorf("Width failed: expected 800, got %d", cfg.Width)
	}
	if cfg.Height != 700 {
		t.Errorf("Height failed: expected default 700, got %d", cfg.Height)
	}
	if cfg.Tolerance != 1e-4 {
		t.Errorf("Tolerance failed: expected 1e-4, got %g", cfg.Tolerance)
	}
	if cfg.Colors.Circle != "#00ff00" {
		t.Errorf("Circle color failed: expected #00ff00, got %s", cfg.Colors.Circle)
	}
	if cfg.Colors.Segment != "#0000ff" {
		t.Errorf("Segment color failed: expected default #0000ff, got %s", cfg.Colors.Segment)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"negative width": "width = -1",
		"zero tolerance": "tolerance = 0.0",
		"few segments":   "circle_segments = 2",
		"bad color":      "[colors]\ncircle = \"purple\"",
		"unknown key":    "zoom = 2",
		"long axes":      "axes_length = 1.5",
	}
	for name, content := range cases {
		_, err := Load(writeConfig(t, content))
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: expected ErrInvalid, got %v", name, err)
		}
	}
}

func TestLoadParseError(t *testing.T) {
	_, err := Load(writeConfig(t, "width = "))
	if err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("Parse error failed: expected TOML error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Missing file failed: expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("LoadOrDefault failed: expected defaults, got %+v", cfg)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff00ff", color.RGBA{R: 255, B: 255, A: 255}},
		{"1a334d", color.RGBA{R: 0x1a, G: 0x33, B: 0x4d, A: 255}},
		{"#80808040", color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x40}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseColor(%q) failed: expected %v, got %v", c.in, c.want, got)
		}
	}

	for _, bad := range []string{"", "#fff", "#gggggg"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) failed: expected error", bad)
		}
	}
}

func TestPalette(t *testing.T) {
	p := Default().Palette()

	if p.Circle != (color.RGBA{R: 255, B: 255, A: 255}) {
		t.Errorf("Palette failed: expected magenta circle, got %v", p.Circle)
	}
	if p.Intersection != (color.RGBA{R: 255, G: 255, A: 255}) {
		t.Errorf("Palette failed: expected yellow intersections, got %v", p.Intersection)
	}
}
