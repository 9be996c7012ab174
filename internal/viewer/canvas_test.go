package viewer

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/gocircle/internal/config"
	"github.com/philipparndt/gocircle/internal/construction"
)

func primary(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func drag(c *ConstructionCanvas, x1, y1, x2, y2 float32) {
	c.MouseDown(primary(x1, y1))
	c.MouseMoved(primary(x2, y2))
	c.MouseUp(primary(x2, y2))
}

func newTestCanvas(t *testing.T, opts ...construction.Option) *ConstructionCanvas {
	t.Helper()
	test.NewTempApp(t)

	c := NewConstructionCanvas(config.Default(), opts...)
	w := test.NewWindow(c)
	t.Cleanup(w.Close)
	w.SetPadded(false)
	w.Resize(fyne.NewSize(700, 700))
	c.Resize(fyne.NewSize(700, 700))
	return c
}

func TestCanvasDrivesEngine(t *testing.T) {
	board := &construction.StatusBoard{}
	c := newTestCanvas(t, construction.WithStatusSink(board))

	changes := 0
	c.SetOnChange(func(construction.Snapshot) { changes++ })

	drag(c, 350, 350, 400, 350)
	if got := c.Snapshot().State; got != construction.CircleCommitted {
		t.Fatalf("state after first drag failed: expected %v, got %v", construction.CircleCommitted, got)
	}

	drag(c, 0, 0, 700, 700)
	snap := c.Snapshot()
	if snap.State != construction.SegmentCommitted {
		t.Fatalf("state after second drag failed: expected %v, got %v", construction.SegmentCommitted, snap.State)
	}
	if len(snap.Intersections) != 2 {
		t.Errorf("intersections failed: expected 2, got %d", len(snap.Intersections))
	}
	if changes != 4 {
		t.Errorf("change callbacks failed: expected 4, got %d", changes)
	}

	want := "Intersection Points: 2 Point 1 (0.10,-0.10) Point 2 (-0.10,0.10)"
	if got := board.Get(construction.StatusIntersection); got != want {
		t.Errorf("status failed: expected %q, got %q", want, got)
	}
}

func TestCanvasIgnoresSecondaryButton(t *testing.T) {
	c := newTestCanvas(t)

	c.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)},
		Button:     desktop.MouseButtonSecondary,
	})
	if got := c.Snapshot().State; got != construction.Idle {
		t.Errorf("secondary button failed: expected %v, got %v", construction.Idle, got)
	}
}

func TestCanvasHoverWithoutPressIsIgnored(t *testing.T) {
	c := newTestCanvas(t)

	c.MouseIn(primary(5, 5))
	c.MouseMoved(primary(100, 100))
	c.MouseOut()
	if got := c.Engine().State(); got != construction.Idle {
		t.Errorf("hover failed: expected %v, got %v", construction.Idle, got)
	}
}

func TestCanvasObjects(t *testing.T) {
	c := newTestCanvas(t)
	segments := config.Default().CircleSegments

	objects := test.WidgetRenderer(c).Objects()
	// background and two axes
	if len(objects) != 3 {
		t.Fatalf("idle objects failed: expected 3, got %d", len(objects))
	}

	drag(c, 350, 350, 400, 350)
	drag(c, 0, 0, 700, 700)

	objects = test.WidgetRenderer(c).Objects()
	want := 3 + segments + 1 + 2
	if len(objects) != want {
		t.Errorf("committed objects failed: expected %d, got %d", want, len(objects))
	}

	markers := 0
	for _, o := range objects {
		if _, ok := o.(*canvas.Circle); ok {
			markers++
		}
	}
	if markers != 2 {
		t.Errorf("markers failed: expected 2, got %d", markers)
	}
}

func TestCanvasClear(t *testing.T) {
	c := newTestCanvas(t)
	drag(c, 350, 350, 400, 350)

	c.Clear()
	snap := c.Snapshot()
	if snap.State != construction.Idle || snap.Circle != nil {
		t.Errorf("Clear failed: expected empty idle snapshot, got %+v", snap)
	}
}

func TestCanvasResizeUpdatesMapping(t *testing.T) {
	c := newTestCanvas(t)
	c.Resize(fyne.NewSize(400, 200))

	v := c.Engine().Viewport()
	if v.Width != 400 || v.Height != 200 {
		t.Errorf("viewport failed: expected 400x200, got %vx%v", v.Width, v.Height)
	}
}
