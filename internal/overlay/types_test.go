package overlay

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocircle/pkg/geometry"
)

func TestToScreen(t *testing.T) {
	v := geometry.NewViewport(700, 700)

	tests := []struct {
		p    geometry.Point2
		want rl.Vector2
	}{
		{geometry.NewPoint2(0, 0), rl.Vector2{X: 350, Y: 350}},
		{geometry.NewPoint2(-1, 1), rl.Vector2{X: 0, Y: 0}},
		{geometry.NewPoint2(1, -1), rl.Vector2{X: 700, Y: 700}},
	}
	for _, tt := range tests {
		got := ToScreen(v, tt.p)
		if got != tt.want {
			t.Errorf("ToScreen(%v) failed: expected %v, got %v", tt.p, tt.want, got)
		}
	}
}

func TestCirclePathIsClosed(t *testing.T) {
	v := geometry.NewViewport(200, 200)
	c := geometry.NewCircle(geometry.NewPoint2(0, 0), 0.5)

	path := CirclePath(v, c, 120)
	if len(path) != 121 {
		t.Fatalf("CirclePath failed: expected 121 points, got %d", len(path))
	}
	if path[0] != path[len(path)-1] {
		t.Errorf("CirclePath failed: expected closed path, got %v and %v", path[0], path[len(path)-1])
	}
	for _, p := range path {
		d := math.Hypot(float64(p.X-100), float64(p.Y-100))
		if math.Abs(d-50) > 1e-3 {
			t.Errorf("CirclePath failed: expected points 50px from center, got %v", d)
		}
	}
}

func TestLabelBounds(t *testing.T) {
	l := Label{ScreenPos: rl.Vector2{X: 100, Y: 50}}
	got := l.Bounds(rl.Vector2{X: 40, Y: 10}, 4)
	want := rl.Rectangle{X: 76, Y: 46, Width: 48, Height: 18}
	if got != want {
		t.Errorf("Bounds failed: expected %v, got %v", want, got)
	}
}
