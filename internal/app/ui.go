package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocircle/internal/construction"
	"github.com/philipparndt/gocircle/version"
)

// drawUI draws the status lines, help and footer
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(20)
	fontSize20 := float32(20)
	fontSize10 := float32(10)
	text := app.View.palette.Text

	// === STATUS ===
	for _, line := range app.Session.status.Lines() {
		rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: 10, Y: y}, fontSize20, 2, text)
		y += lineHeight + 4
	}

	if app.View.showHelp {
		y += lineHeight
		rl.DrawTextEx(app.UI.font, helpFor(app.Session.engine.State()), rl.Vector2{X: 10, Y: y}, fontSize10, 1, rl.LightGray)
		y += lineHeight
		rl.DrawTextEx(app.UI.font, "C: Clear | A: Axes | L: Labels | H: Help", rl.Vector2{X: 10, Y: y}, fontSize10, 1, rl.LightGray)
	}

	// Version, state and FPS in bottom-left corner
	bottomY := float32(rl.GetScreenHeight()) - 20
	footer := fmt.Sprintf("v%s  %s  redraws: %d  FPS: %d",
		version.GetVersion(), app.Session.engine.State(), app.Session.redraws, rl.GetFPS())
	rl.DrawTextEx(app.UI.font, footer, rl.Vector2{X: 10, Y: bottomY}, fontSize10, 1, rl.Gray)
}

// helpFor returns the hint for what the next drag does
func helpFor(state construction.State) string {
	switch state {
	case construction.Idle:
		return "Left Drag: Draw circle (press at center)"
	case construction.DraggingCircle:
		return "Release to commit the circle"
	case construction.CircleCommitted:
		return "Left Drag: Draw line segment"
	case construction.DraggingSegment:
		return "Release to commit the segment"
	default:
		return "Done. C: Start over"
	}
}
