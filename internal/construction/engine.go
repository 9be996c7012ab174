// Package construction implements the interactive circle and segment
// construction: one drag defines a circle, a second drag defines a segment,
// and the points where the segment crosses the circle are computed once.
package construction

import (
	"log/slog"

	"github.com/philipparndt/gocircle/pkg/geometry"
)

// Snapshot is a copy of the engine state for renderers. Optional shapes are
// nil when absent.
type Snapshot struct {
	State          State
	Circle         *geometry.Circle  // committed circle
	PendingCircle  *geometry.Circle  // circle being dragged
	Segment        *geometry.Segment // committed segment
	PendingSegment *geometry.Segment // segment being dragged
	Intersections  []geometry.Point2
}

// Option configures an Engine
type Option func(*Engine)

// WithTolerance sets the discriminant tolerance used to detect tangency.
// Non-positive values are ignored.
func WithTolerance(tolerance float64) Option {
	return func(e *Engine) {
		if tolerance > 0 {
			e.tolerance = tolerance
		}
	}
}

// WithStatusSink sets where status text is published
func WithStatusSink(sink StatusSink) Option {
	return func(e *Engine) { e.sink = sink }
}

// WithRedrawer sets who is told to redraw after a visible change
func WithRedrawer(r Redrawer) Option {
	return func(e *Engine) { e.redrawer = r }
}

// Engine owns one construction session. It is driven from a single event
// loop and is not safe for concurrent use.
type Engine struct {
	state     State
	viewport  geometry.Viewport
	tolerance float64

	anchor        geometry.Point2
	pendingRadius float64
	pendingEnd    geometry.Point2

	circle        *geometry.Circle
	segment       *geometry.Segment
	intersections []geometry.Point2

	sink     StatusSink
	redrawer Redrawer
}

// New creates an engine for a canvas of width x height pixels
func New(width, height float64, opts ...Option) *Engine {
	e := &Engine{
		state:     Idle,
		viewport:  geometry.NewViewport(width, height),
		tolerance: geometry.DefaultDiscriminantTolerance,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current state
func (e *Engine) State() State {
	return e.state
}

// Tolerance returns the discriminant tolerance in use
func (e *Engine) Tolerance() float64 {
	return e.tolerance
}

// Viewport returns the pixel to model mapping in use
func (e *Engine) Viewport() geometry.Viewport {
	return e.viewport
}

// Resize updates the canvas size used to map pointer coordinates.
// Non-positive sizes are ignored.
func (e *Engine) Resize(width, height float64) {
	v := geometry.NewViewport(width, height)
	if !v.Valid() {
		return
	}
	e.viewport = v
}

// OnDown handles a pointer press at pixel (x, y)
func (e *Engine) OnDown(x, y float64) (Snapshot, bool) {
	return e.Handle(Down(x, y))
}

// OnMove handles pointer motion to pixel (x, y)
func (e *Engine) OnMove(x, y float64) (Snapshot, bool) {
	return e.Handle(Move(x, y))
}

// OnUp handles a pointer release
func (e *Engine) OnUp() (Snapshot, bool) {
	return e.Handle(Up())
}

// Handle applies one pointer event and returns the resulting snapshot and
// whether it needs to be redrawn. Events that do not apply to the current
// state are ignored.
func (e *Engine) Handle(ev Event) (Snapshot, bool) {
	from := e.state
	redraw := false

	switch e.state {
	case Idle:
		if ev.Kind == PointerDown {
			e.anchor = e.viewport.ToModel(ev.X, ev.Y)
			e.pendingRadius = 0
			e.state = DraggingCircle
		}
	case DraggingCircle:
		switch ev.Kind {
		case PointerMove:
			e.pendingRadius = e.anchor.Distance(e.viewport.ToModel(ev.X, ev.Y))
			redraw = true
		case PointerUp:
			e.commitCircle()
			redraw = true
		}
	case CircleCommitted:
		if ev.Kind == PointerDown {
			e.anchor = e.viewport.ToModel(ev.X, ev.Y)
			e.pendingEnd = e.anchor
			e.state = DraggingSegment
		}
	case DraggingSegment:
		switch ev.Kind {
		case PointerMove:
			e.pendingEnd = e.viewport.ToModel(ev.X, ev.Y)
			redraw = true
		case PointerUp:
			e.commitSegment()
			redraw = true
		}
	case SegmentCommitted:
		// single circle and single segment per session
	}

	if e.state != from {
		Logger().Debug("construction: transition", "event", ev.Kind, "from", from, "to", e.state)
	}
	if redraw && e.redrawer != nil {
		e.redrawer.RequestRedraw()
	}
	return e.Snapshot(), redraw
}

func (e *Engine) commitCircle() {
	c := geometry.NewCircle(e.anchor, e.pendingRadius)
	e.circle = &c
	e.state = CircleCommitted

	Logger().Info("construction: circle committed", "center", c.Center, "radius", c.Radius)
	e.publish(StatusCircle, FormatCircle(c))
}

func (e *Engine) commitSegment() {
	s := geometry.NewSegment(e.anchor, e.pendingEnd)
	e.segment = &s
	e.state = SegmentCommitted
	e.intersections = e.ComputeIntersections()

	Logger().Info("construction: segment committed",
		"a", s.A, "b", s.B,
		slog.Int("intersections", len(e.intersections)))
	e.publish(StatusSegment, FormatSegment(s))
	e.publish(StatusIntersection, FormatIntersections(e.intersections))
}

// ComputeIntersections solves the committed circle against the committed
// segment without changing any state. It returns nil until both exist.
func (e *Engine) ComputeIntersections() []geometry.Point2 {
	if e.circle == nil || e.segment == nil {
		return nil
	}
	return geometry.IntersectCircleSegment(*e.circle, *e.segment, e.tolerance, geometry.ModelBounds)
}

// Reset ends the session and starts an empty one. Status lines are cleared.
func (e *Engine) Reset() Snapshot {
	e.state = Idle
	e.anchor = geometry.Point2{}
	e.pendingRadius = 0
	e.pendingEnd = geometry.Point2{}
	e.circle = nil
	e.segment = nil
	e.intersections = nil

	Logger().Debug("construction: reset")
	for line := StatusLine(0); line < statusLineCount; line++ {
		e.publish(line, "")
	}
	if e.redrawer != nil {
		e.redrawer.RequestRedraw()
	}
	return e.Snapshot()
}

// Snapshot returns a copy of the current state
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{State: e.state}

	if e.circle != nil {
		c := *e.circle
		snap.Circle = &c
	}
	if e.segment != nil {
		s := *e.segment
		snap.Segment = &s
	}
	if len(e.intersections) > 0 {
		snap.Intersections = append([]geometry.Point2(nil), e.intersections...)
	}

	switch e.state {
	case DraggingCircle:
		c := geometry.NewCircle(e.anchor, e.pendingRadius)
		snap.PendingCircle = &c
	case DraggingSegment:
		s := geometry.NewSegment(e.anchor, e.pendingEnd)
		snap.PendingSegment = &s
	}
	return snap
}

func (e *Engine) publish(line StatusLine, text string) {
	if e.sink != nil {
		e.sink.SetStatus(line, text)
	}
}
