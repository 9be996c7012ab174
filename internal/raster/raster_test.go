package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gocircle/internal/config"
	"github.com/philipparndt/gocircle/internal/construction"
)

func committedSnapshot(t *testing.T) (construction.Snapshot, []string) {
	t.Helper()
	board := &construction.StatusBoard{}
	e := construction.New(700, 700, construction.WithStatusSink(board))
	e.OnDown(350, 350)
	e.OnMove(400, 350)
	e.OnUp()
	e.OnDown(0, 0)
	e.OnMove(700, 700)
	snap, _ := e.OnUp()
	return snap, board.Lines()
}

func near(a, b color.RGBA) bool {
	diff := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return diff(a.R, b.R) <= 1 && diff(a.G, b.G) <= 1 && diff(a.B, b.B) <= 1 && diff(a.A, b.A) <= 1
}

func TestRenderCommitted(t *testing.T) {
	snap, status := committedSnapshot(t)
	style := StyleFromConfig(config.Default())

	img, err := Render(snap, status, style, 200, 200)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("Bounds failed: expected 200x200, got %v", b)
	}

	bg := style.Palette.Background
	corner := img.RGBAAt(199, 0)
	if !near(corner, bg) {
		t.Errorf("Background failed: expected %v, got %v", bg, corner)
	}

	// first intersection is at model (0.10, -0.10), pixel (110.1, 110.1)
	dot := img.RGBAAt(110, 110)
	if dot.R < 200 || dot.G < 200 || dot.B > 80 {
		t.Errorf("Intersection marker failed: expected yellow, got %v", dot)
	}
}

func TestRenderStatusText(t *testing.T) {
	snap, status := committedSnapshot(t)
	style := StyleFromConfig(config.Default())

	withText, err := Render(snap, status, style, 400, 400)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	withoutText, err := Render(snap, nil, style, 400, 400)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if bytes.Equal(withText.Pix, withoutText.Pix) {
		t.Error("Status text failed: image unchanged by status lines")
	}
}

func TestRenderPending(t *testing.T) {
	e := construction.New(100, 100)
	e.OnDown(50, 50)
	snap, _ := e.OnMove(80, 50)

	if _, err := Render(snap, nil, StyleFromConfig(config.Default()), 100, 100); err != nil {
		t.Errorf("Render failed for pending circle: %v", err)
	}
}

func TestRenderInvalidSize(t *testing.T) {
	if _, err := Render(construction.Snapshot{}, nil, StyleFromConfig(config.Default()), 0, 10); err == nil {
		t.Error("Render failed: expected error for zero width")
	}
}

func TestSavePNG(t *testing.T) {
	snap, status := committedSnapshot(t)
	img, err := Render(snap, status, StyleFromConfig(config.Default()), 120, 80)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open png: %v", err)
	}
	defer file.Close()

	decoded, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("Decoded bounds failed: expected 120x80, got %v", b)
	}
}

func TestSavePNGBadPath(t *testing.T) {
	snap, _ := committedSnapshot(t)
	img, err := Render(snap, nil, StyleFromConfig(config.Default()), 10, 10)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("SavePNG failed: expected error for missing directory")
	}
}
