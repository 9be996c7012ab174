// Package script reads pointer-event scripts and replays them through a
// construction engine without a window.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gocircle/internal/construction"
)

// ErrUnknownEvent is returned for an event kind other than down, move or up
var ErrUnknownEvent = errors.New("unknown event kind")

// rawEvent is one [[event]] table as written in the file
type rawEvent struct {
	Kind string  `toml:"kind"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
}

type rawScript struct {
	Name   string     `toml:"name"`
	Width  float64    `toml:"width"`
	Height float64    `toml:"height"`
	Events []rawEvent `toml:"event"`
}

// Script is a parsed event script. Width and Height are zero when the file
// leaves the canvas size to the caller.
type Script struct {
	Name   string
	Width  float64
	Height float64
	Events []construction.Event
}

// Load reads a script file
func Load(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer file.Close()

	s, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// Parse reads a script from r
func Parse(r io.Reader) (*Script, error) {
	var raw rawScript
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	if raw.Width < 0 || raw.Height < 0 {
		return nil, fmt.Errorf("canvas size must not be negative, got %gx%g", raw.Width, raw.Height)
	}

	s := &Script{
		Name:   raw.Name,
		Width:  raw.Width,
		Height: raw.Height,
		Events: make([]construction.Event, 0, len(raw.Events)),
	}
	for i, ev := range raw.Events {
		kind, err := construction.ParseEventKind(ev.Kind)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w: %q", i+1, ErrUnknownEvent, ev.Kind)
		}
		s.Events = append(s.Events, construction.Event{Kind: kind, X: ev.X, Y: ev.Y})
	}
	return s, nil
}

// Size returns the script's canvas size, falling back to the given defaults
// for a dimension the script does not set
func (s *Script) Size(defaultWidth, defaultHeight float64) (float64, float64) {
	w, h := s.Width, s.Height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}
	return w, h
}

// Result is the outcome of a replay
type Result struct {
	Snapshot construction.Snapshot
	Redraws  int // events that changed what is drawn
}

// Play feeds events to e in order
func Play(e *construction.Engine, events []construction.Event) Result {
	var res Result
	res.Snapshot = e.Snapshot()
	for _, ev := range events {
		snap, redraw := e.Handle(ev)
		res.Snapshot = snap
		if redraw {
			res.Redraws++
		}
	}
	return res
}
