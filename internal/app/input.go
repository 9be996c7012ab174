package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput forwards left button press, drag and release to the engine
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	moved := mouse != app.Interaction.lastMousePos
	app.Interaction.lastMousePos = mouse

	engine := app.Session.engine
	x, y := float64(mouse.X), float64(mouse.Y)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.dragging = true
		engine.OnDown(x, y)
	} else if app.Interaction.dragging && moved {
		engine.OnMove(x, y)
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) && app.Interaction.dragging {
		app.Interaction.dragging = false
		engine.OnUp()
	}

	ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	if rl.IsKeyPressed(rl.KeyC) && !ctrlPressed {
		app.Interaction.dragging = false
		engine.Reset()
		app.Session.redraws = 0
	}
	if rl.IsKeyPressed(rl.KeyA) {
		app.View.showAxes = !app.View.showAxes
	}
	if rl.IsKeyPressed(rl.KeyL) {
		app.View.showLabels = !app.View.showLabels
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}
}

// updateWindowSize keeps the engine's pixel mapping in sync with the window
func (app *App) updateWindowSize() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	if w == app.Window.width && h == app.Window.height {
		return
	}
	app.Window.width, app.Window.height = w, h
	app.Session.engine.Resize(float64(w), float64(h))
}
