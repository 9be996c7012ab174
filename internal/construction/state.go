package construction

import "fmt"

// State is the position of an Engine in the construct-circle-then-segment
// sequence
type State int

const (
	Idle             State = iota // nothing drawn yet
	DraggingCircle                // pointer held, radius follows the pointer
	CircleCommitted               // circle fixed, waiting for the segment drag
	DraggingSegment               // pointer held, segment end follows the pointer
	SegmentCommitted              // terminal: circle, segment and intersections fixed
)

var stateNames = [...]string{
	Idle:             "idle",
	DraggingCircle:   "dragging-circle",
	CircleCommitted:  "circle-committed",
	DraggingSegment:  "dragging-segment",
	SegmentCommitted: "segment-committed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Dragging reports whether a pointer drag is in progress
func (s State) Dragging() bool {
	return s == DraggingCircle || s == DraggingSegment
}

// EventKind identifies a pointer event
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
)

var eventNames = [...]string{
	PointerDown: "down",
	PointerMove: "move",
	PointerUp:   "up",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(k))
	}
	return eventNames[k]
}

// ParseEventKind converts "down", "move" or "up" to an EventKind
func ParseEventKind(name string) (EventKind, error) {
	for k, n := range eventNames {
		if n == name {
			return EventKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown pointer event %q", name)
}

// Event is a pointer event in canvas pixel coordinates. X and Y are ignored
// for PointerUp.
type Event struct {
	Kind EventKind
	X, Y float64
}

// Down creates a pointer-down event
func Down(x, y float64) Event { return Event{Kind: PointerDown, X: x, Y: y} }

// Move creates a pointer-move event
func Move(x, y float64) Event { return Event{Kind: PointerMove, X: x, Y: y} }

// Up creates a pointer-up event
func Up() Event { return Event{Kind: PointerUp} }
