package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gocircle/internal/construction"
)

const twoHits = `
name = "two hits"
width = 700
height = 700

[[event]]
kind = "down"
x = 350
y = 350

[[event]]
kind = "move"
x = 400
y = 350

[[event]]
kind = "up"

[[event]]
kind = "down"
x = 0
y = 0

[[event]]
kind = "move"
x = 700
y = 700

[[event]]
kind = "up"
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(twoHits))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if s.Name != "two hits" {
		t.Errorf("Name failed: expected %q, got %q", "two hits", s.Name)
	}
	if len(s.Events) != 6 {
		t.Fatalf("Events failed: expected 6, got %d", len(s.Events))
	}
	if s.Events[1] != construction.Move(400, 350) {
		t.Errorf("Event 2 failed: expected %v, got %v", construction.Move(400, 350), s.Events[1])
	}
	if s.Events[2].Kind != construction.PointerUp {
		t.Errorf("Event 3 failed: expected up, got %v", s.Events[2].Kind)
	}
}

func TestParseUnknownEvent(t *testing.T) {
	_, err := Parse(strings.NewReader("[[event]]\nkind = \"click\"\n"))
	if !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("Parse failed: expected ErrUnknownEvent, got %v", err)
	}
}

func TestParseNegativeSize(t *testing.T) {
	if _, err := Parse(strings.NewReader("width = -5\n")); err == nil {
		t.Error("Parse failed: expected error for negative width")
	}
}

func TestSize(t *testing.T) {
	s := &Script{Width: 640}

	w, h := s.Size(700, 700)
	if w != 640 || h != 700 {
		t.Errorf("Size failed: expected 640x700, got %vx%v", w, h)
	}
}

func TestLoadAndPlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two-hits.toml")
	if err := os.WriteFile(path, []byte(twoHits), 0o644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	board := &construction.StatusBoard{}
	w, h := s.Size(100, 100)
	res := Play(construction.New(w, h, construction.WithStatusSink(board)), s.Events)

	if res.Snapshot.State != construction.SegmentCommitted {
		t.Errorf("Play failed: expected %v, got %v", construction.SegmentCommitted, res.Snapshot.State)
	}
	if len(res.Snapshot.Intersections) != 2 {
		t.Errorf("Play failed: expected 2 intersections, got %d", len(res.Snapshot.Intersections))
	}
	if res.Redraws != 4 {
		t.Errorf("Redraws failed: expected 4, got %d", res.Redraws)
	}
	if got := board.Get(construction.StatusIntersection); !strings.HasPrefix(got, "Intersection Points: 2") {
		t.Errorf("Status failed: got %q", got)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load failed: expected os.ErrNotExist, got %v", err)
	}
}

func TestPlayEmpty(t *testing.T) {
	res := Play(construction.New(700, 700), nil)

	if res.Snapshot.State != construction.Idle || res.Redraws != 0 {
		t.Errorf("Play failed: expected idle with no redraws, got %v/%d", res.Snapshot.State, res.Redraws)
	}
}
