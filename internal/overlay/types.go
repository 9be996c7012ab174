// Package overlay draws a construction snapshot in raylib screen space
package overlay

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocircle/internal/config"
	"github.com/philipparndt/gocircle/internal/construction"
	"github.com/philipparndt/gocircle/pkg/geometry"
)

// RenderContext holds everything needed to draw one frame
type RenderContext struct {
	Snapshot       construction.Snapshot
	Viewport       geometry.Viewport
	Font           rl.Font
	Palette        config.Palette
	CircleSegments int
	AxesLength     float64
	ShowAxes       bool
	ShowLabels     bool
	Mouse          rl.Vector2
}

// ToScreen converts a model-space point to a raylib screen position
func ToScreen(v geometry.Viewport, p geometry.Point2) rl.Vector2 {
	x, y := v.ToPixel(p)
	return rl.Vector2{X: float32(x), Y: float32(y)}
}

// CirclePath returns the closed screen-space polyline approximating c.
// The first point is repeated at the end.
func CirclePath(v geometry.Viewport, c geometry.Circle, segments int) []rl.Vector2 {
	outline := c.Outline(segments)
	path := make([]rl.Vector2, 0, len(outline)+1)
	for _, p := range outline {
		path = append(path, ToScreen(v, p))
	}
	if len(path) > 0 {
		path = append(path, path[0])
	}
	return path
}
