// Package viewer provides a fyne widget that drives a construction engine
// with the mouse and draws its snapshot.
package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gocircle/internal/config"
	"github.com/philipparndt/gocircle/internal/construction"
	"github.com/philipparndt/gocircle/pkg/geometry"
)

var (
	_ desktop.Mouseable = (*ConstructionCanvas)(nil)
	_ desktop.Hoverable = (*ConstructionCanvas)(nil)
)

// ConstructionCanvas is a widget where the first drag draws a circle and the
// second drag draws a line segment
type ConstructionCanvas struct {
	widget.BaseWidget
	engine   *construction.Engine
	cfg      config.Config
	palette  config.Palette
	snapshot construction.Snapshot
	objects  []fyne.CanvasObject
	pressed  bool
	onChange func(construction.Snapshot)
}

// NewConstructionCanvas creates the widget. opts are passed to the engine;
// the widget installs itself as the engine's redrawer.
func NewConstructionCanvas(cfg config.Config, opts ...construction.Option) *ConstructionCanvas {
	c := &ConstructionCanvas{
		cfg:     cfg,
		palette: cfg.Palette(),
	}

	all := append([]construction.Option{construction.WithTolerance(cfg.Tolerance)}, opts...)
	all = append(all, construction.WithRedrawer(construction.RedrawFunc(c.redraw)))
	c.engine = construction.New(float64(cfg.Width), float64(cfg.Height), all...)
	c.snapshot = c.engine.Snapshot()

	c.ExtendBaseWidget(c)
	return c
}

// SetOnChange sets the callback for every redraw-worthy change
func (c *ConstructionCanvas) SetOnChange(callback func(construction.Snapshot)) {
	c.onChange = callback
}

// Engine returns the engine driven by this widget
func (c *ConstructionCanvas) Engine() *construction.Engine {
	return c.engine
}

// Snapshot returns the snapshot currently drawn
func (c *ConstructionCanvas) Snapshot() construction.Snapshot {
	return c.snapshot
}

// Clear starts a new session
func (c *ConstructionCanvas) Clear() {
	c.pressed = false
	c.engine.Reset()
}

// CreateRenderer creates the renderer for the widget
func (c *ConstructionCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &canvasRenderer{canvas: c}
	c.rebuild(c.Size())
	return r
}

// MouseDown starts a drag with the primary button
func (c *ConstructionCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	c.pressed = true
	c.engine.OnDown(float64(ev.Position.X), float64(ev.Position.Y))
}

// MouseUp ends a drag
func (c *ConstructionCanvas) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || !c.pressed {
		return
	}
	c.pressed = false
	c.engine.OnUp()
}

// MouseIn is required by desktop.Hoverable
func (c *ConstructionCanvas) MouseIn(*desktop.MouseEvent) {}

// MouseMoved updates the pending shape while the button is held
func (c *ConstructionCanvas) MouseMoved(ev *desktop.MouseEvent) {
	if !c.pressed {
		return
	}
	c.engine.OnMove(float64(ev.Position.X), float64(ev.Position.Y))
}

// MouseOut is required by desktop.Hoverable
func (c *ConstructionCanvas) MouseOut() {}

// redraw is the engine's redrawer
func (c *ConstructionCanvas) redraw() {
	c.snapshot = c.engine.Snapshot()
	c.rebuild(c.Size())
	c.Refresh()
	if c.onChange != nil {
		c.onChange(c.snapshot)
	}
}

// rebuild converts the snapshot into canvas objects for the given size
func (c *ConstructionCanvas) rebuild(size fyne.Size) {
	v := geometry.NewViewport(float64(size.Width), float64(size.Height))

	background := canvas.NewRectangle(c.palette.Background)
	background.Resize(size)
	objects := []fyne.CanvasObject{background}

	if !v.Valid() {
		c.objects = objects
		return
	}

	if l := c.cfg.AxesLength; l > 0 {
		objects = append(objects,
			newLine(v, geometry.NewPoint2(-l, 0), geometry.NewPoint2(l, 0), c.palette.Axes, 1),
			newLine(v, geometry.NewPoint2(0, -l), geometry.NewPoint2(0, l), c.palette.Axes, 1),
		)
	}

	snap := c.snapshot
	if snap.Circle != nil && snap.Circle.Radius > 0 {
		objects = append(objects, circleLines(v, *snap.Circle, c.cfg.CircleSegments, c.palette.Circle)...)
	}
	if snap.PendingCircle != nil {
		objects = append(objects, circleLines(v, *snap.PendingCircle, c.cfg.CircleSegments, c.palette.Pending)...)
	}
	if snap.Segment != nil {
		objects = append(objects, newLine(v, snap.Segment.A, snap.Segment.B, c.palette.Segment, 2))
	}
	if snap.PendingSegment != nil {
		objects = append(objects, newLine(v, snap.PendingSegment.A, snap.PendingSegment.B, c.palette.Pending, 2))
	}

	for _, p := range snap.Intersections {
		x, y := v.ToPixel(p)
		marker := canvas.NewCircle(c.palette.Intersection)
		size := float32(10)
		marker.Resize(fyne.NewSize(size, size))
		marker.Move(fyne.NewPos(float32(x)-size/2, float32(y)-size/2))
		objects = append(objects, marker)
	}

	c.objects = objects
}

func newLine(v geometry.Viewport, a, b geometry.Point2, col color.Color, width float32) *canvas.Line {
	x1, y1 := v.ToPixel(a)
	x2, y2 := v.ToPixel(b)
	line := canvas.NewLine(col)
	line.StrokeWidth = width
	line.Position1 = fyne.NewPos(float32(x1), float32(y1))
	line.Position2 = fyne.NewPos(float32(x2), float32(y2))
	return line
}

// circleLines approximates c with one line per outline edge
func circleLines(v geometry.Viewport, c geometry.Circle, segments int, col color.Color) []fyne.CanvasObject {
	outline := c.Outline(segments)
	lines := make([]fyne.CanvasObject, len(outline))
	for i, p := range outline {
		lines[i] = newLine(v, p, outline[(i+1)%len(outline)], col, 2)
	}
	return lines
}

// canvasRenderer implements fyne.WidgetRenderer
type canvasRenderer struct {
	canvas *ConstructionCanvas
}

func (r *canvasRenderer) Layout(size fyne.Size) {
	r.canvas.engine.Resize(float64(size.Width), float64(size.Height))
	r.canvas.rebuild(size)
}

func (r *canvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 200)
}

func (r *canvasRenderer) Refresh() {
	canvas.Refresh(r.canvas)
}

func (r *canvasRenderer) Objects() []fyne.CanvasObject {
	return r.canvas.objects
}

func (r *canvasRenderer) Destroy() {}
