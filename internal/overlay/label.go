package overlay

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Label is a boxed text drawn next to a point on screen
type Label struct {
	Text      string
	ScreenPos rl.Vector2 // top-center of the text
	Color     rl.Color
	IsHovered bool
}

// Draw renders the label and returns its bounding rectangle
func (l *Label) Draw(font rl.Font, fontSize float32, padding float32) rl.Rectangle {
	borderWidth := float32(1.5)
	background := rl.NewColor(20, 20, 20, 200)
	if l.IsHovered {
		borderWidth = 2.5
		background = rl.NewColor(20, 20, 20, 240)
	}

	textSize := rl.MeasureTextEx(font, l.Text, fontSize, 1)
	rect := l.Bounds(textSize, padding)

	rl.DrawRectangleRec(rect, background)
	rl.DrawRectangleLinesEx(rect, borderWidth, l.Color)
	rl.DrawTextEx(font, l.Text, rl.Vector2{X: l.ScreenPos.X - textSize.X/2, Y: l.ScreenPos.Y}, fontSize, 1, l.Color)

	return rect
}

// Bounds returns the box drawn around text of the given size
func (l *Label) Bounds(textSize rl.Vector2, padding float32) rl.Rectangle {
	return rl.Rectangle{
		X:      l.ScreenPos.X - textSize.X/2 - padding,
		Y:      l.ScreenPos.Y - padding,
		Width:  textSize.X + 2*padding,
		Height: textSize.Y + 2*padding,
	}
}
