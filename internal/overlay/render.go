package overlay

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gocircle/pkg/geometry"
)

// Renderer draws the axes, the construction and the intersection labels
type Renderer struct {
	lineWidth    float32
	markerRadius float32
	fontSize     float32
	labelPadding float32
	hovered      int
}

// NewRenderer creates a renderer with the default style
func NewRenderer() *Renderer {
	return &Renderer{
		lineWidth:    2,
		markerRadius: 5,
		fontSize:     14,
		labelPadding: 4,
		hovered:      -1,
	}
}

// Hovered returns the index of the intersection under the mouse, or -1
func (r *Renderer) Hovered() int {
	return r.hovered
}

// DrawAxes draws the x and y axes through the model origin
func (r *Renderer) DrawAxes(ctx RenderContext) {
	if !ctx.ShowAxes || ctx.AxesLength <= 0 {
		return
	}
	l := ctx.AxesLength
	x1 := ToScreen(ctx.Viewport, geometry.NewPoint2(-l, 0))
	x2 := ToScreen(ctx.Viewport, geometry.NewPoint2(l, 0))
	y1 := ToScreen(ctx.Viewport, geometry.NewPoint2(0, -l))
	y2 := ToScreen(ctx.Viewport, geometry.NewPoint2(0, l))

	rl.DrawLineEx(x1, x2, 1, ctx.Palette.Axes)
	rl.DrawLineEx(y1, y2, 1, ctx.Palette.Axes)
}

// DrawConstruction draws pending and committed shapes, then the
// intersection markers on top
func (r *Renderer) DrawConstruction(ctx RenderContext) {
	snap := ctx.Snapshot

	if snap.Circle != nil && snap.Circle.Radius > 0 {
		r.drawCircle(ctx, *snap.Circle, ctx.Palette.Circle)
	}
	if snap.PendingCircle != nil {
		r.drawCircle(ctx, *snap.PendingCircle, ctx.Palette.Pending)
		// anchor marker while the radius is still zero
		center := ToScreen(ctx.Viewport, snap.PendingCircle.Center)
		rl.DrawCircleV(center, 2, ctx.Palette.Pending)
	}
	if snap.Segment != nil {
		r.drawSegment(ctx, *snap.Segment, ctx.Palette.Segment)
	}
	if snap.PendingSegment != nil {
		r.drawSegment(ctx, *snap.PendingSegment, ctx.Palette.Pending)
	}

	r.drawIntersections(ctx)
}

func (r *Renderer) drawCircle(ctx RenderContext, c geometry.Circle, color rl.Color) {
	path := CirclePath(ctx.Viewport, c, ctx.CircleSegments)
	for i := 1; i < len(path); i++ {
		rl.DrawLineEx(path[i-1], path[i], r.lineWidth, color)
	}
}

func (r *Renderer) drawSegment(ctx RenderContext, s geometry.Segment, color rl.Color) {
	a := ToScreen(ctx.Viewport, s.A)
	b := ToScreen(ctx.Viewport, s.B)
	rl.DrawLineEx(a, b, r.lineWidth, color)
}

func (r *Renderer) drawIntersections(ctx RenderContext) {
	r.hovered = -1
	points := ctx.Snapshot.Intersections

	screen := make([]rl.Vector2, len(points))
	for i, p := range points {
		screen[i] = ToScreen(ctx.Viewport, p)
		if rl.CheckCollisionPointCircle(ctx.Mouse, screen[i], r.markerRadius+3) {
			r.hovered = i
		}
	}

	for i, pos := range screen {
		rl.DrawCircleV(pos, r.markerRadius, ctx.Palette.Intersection)
		if i == r.hovered {
			rl.DrawCircleLines(int32(pos.X), int32(pos.Y), r.markerRadius+3, ctx.Palette.Text)
		}
	}

	// labels last so markers never cover them
	if !ctx.ShowLabels && r.hovered < 0 {
		return
	}
	for i, p := range points {
		if !ctx.ShowLabels && i != r.hovered {
			continue
		}
		label := Label{
			Text:      fmt.Sprintf("P%d %s", i+1, p),
			ScreenPos: rl.Vector2{X: screen[i].X, Y: screen[i].Y + r.markerRadius + 6},
			Color:     ctx.Palette.Intersection,
			IsHovered: i == r.hovered,
		}
		label.Draw(ctx.Font, r.fontSize, r.labelPadding)
	}
}
