package geometry

// Viewport maps between canvas pixels (top-left origin, y down) and model
// space (center origin, y up, both axes in [-1, 1])
type Viewport struct {
	Width  float64
	Height float64
}

// NewViewport creates a viewport for a canvas of the given size
func NewViewport(width, height float64) Viewport {
	return Viewport{Width: width, Height: height}
}

// Valid reports whether the viewport has a usable size
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// ToModel converts pixel coordinates to model space:
//
//	x = (px / width) * 2 - 1
//	y = -((py / height) * 2 - 1)
//
// y is computed as 1 - (py/height)*2, which is the same value except that the
// canvas midline maps to +0 rather than -0.
func (v Viewport) ToModel(px, py float64) Point2 {
	return Point2{
		X: (px/v.Width)*2 - 1,
		Y: 1 - (py/v.Height)*2,
	}
}

// ToPixel converts a model-space point back to pixel coordinates
func (v Viewport) ToPixel(p Point2) (float64, float64) {
	px := (p.X + 1) / 2 * v.Width
	py := (1 - p.Y) / 2 * v.Height
	return px, py
}

// ScaleX converts a model-space length along x to pixels
func (v Viewport) ScaleX(length float64) float64 {
	return length / 2 * v.Width
}
