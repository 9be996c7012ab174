// Package raster draws a construction snapshot into an image without a
// window, for PNG export from the command line.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/gg"
	"github.com/philipparndt/gocircle/internal/config"
	"github.com/philipparndt/gocircle/internal/construction"
	"github.com/philipparndt/gocircle/pkg/geometry"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Style controls colors and tessellation
type Style struct {
	Palette        config.Palette
	CircleSegments int
	AxesLength     float64
	LineWidth      float64
	PointRadius    float64
}

// StyleFromConfig builds a Style from loaded settings
func StyleFromConfig(cfg config.Config) Style {
	return Style{
		Palette:        cfg.Palette(),
		CircleSegments: cfg.CircleSegments,
		AxesLength:     cfg.AxesLength,
		LineWidth:      2,
		PointRadius:    4,
	}
}

// Render draws snap on a width x height canvas with the status lines in the
// top-left corner
func Render(snap construction.Snapshot, status []string, style Style, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()

	r := &renderer{
		dc:    dc,
		view:  geometry.NewViewport(float64(width), float64(height)),
		style: style,
	}

	dc.ClearWithColor(gg.FromColor(style.Palette.Background))
	dc.SetLineWidth(style.LineWidth)

	if err := r.drawAxes(); err != nil {
		return nil, err
	}
	if snap.PendingCircle != nil {
		if err := r.drawCircle(*snap.PendingCircle, style.Palette.Pending, true); err != nil {
			return nil, err
		}
	}
	if snap.Circle != nil && snap.Circle.Radius > 0 {
		if err := r.drawCircle(*snap.Circle, style.Palette.Circle, false); err != nil {
			return nil, err
		}
	}
	if snap.Segment != nil {
		if err := r.drawSegment(*snap.Segment, style.Palette.Segment, false); err != nil {
			return nil, err
		}
	}
	if snap.PendingSegment != nil {
		if err := r.drawSegment(*snap.PendingSegment, style.Palette.Pending, true); err != nil {
			return nil, err
		}
	}
	for _, p := range snap.Intersections {
		if err := r.drawPoint(p, style.Palette.Intersection); err != nil {
			return nil, err
		}
	}

	img := toRGBA(dc.Image())
	drawStatus(img, status, style.Palette.Text)
	return img, nil
}

type renderer struct {
	dc    *gg.Context
	view  geometry.Viewport
	style Style
}

func (r *renderer) drawAxes() error {
	if r.style.AxesLength <= 0 {
		return nil
	}
	l := r.style.AxesLength
	axes := []geometry.Segment{
		geometry.NewSegment(geometry.NewPoint2(-l, 0), geometry.NewPoint2(l, 0)),
		geometry.NewSegment(geometry.NewPoint2(0, -l), geometry.NewPoint2(0, l)),
	}
	for _, axis := range axes {
		if err := r.drawSegment(axis, r.style.Palette.Axes, false); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) drawCircle(c geometry.Circle, col color.RGBA, pending bool) error {
	outline := c.Outline(r.style.CircleSegments)
	for i, p := range outline {
		x, y := r.view.ToPixel(p)
		if i == 0 {
			r.dc.MoveTo(x, y)
		} else {
			r.dc.LineTo(x, y)
		}
	}
	r.dc.ClosePath()
	return r.stroke(col, pending)
}

func (r *renderer) drawSegment(s geometry.Segment, col color.RGBA, pending bool) error {
	x1, y1 := r.view.ToPixel(s.A)
	x2, y2 := r.view.ToPixel(s.B)
	r.dc.DrawLine(x1, y1, x2, y2)
	return r.stroke(col, pending)
}

func (r *renderer) drawPoint(p geometry.Point2, col color.RGBA) error {
	x, y := r.view.ToPixel(p)
	r.dc.DrawCircle(x, y, r.style.PointRadius)
	r.dc.SetColor(col)
	if err := r.dc.Fill(); err != nil {
		return fmt.Errorf("failed to fill point: %w", err)
	}
	return nil
}

func (r *renderer) stroke(col color.RGBA, dashed bool) error {
	r.dc.SetColor(col)
	if dashed {
		r.dc.SetDash(6, 4)
		defer r.dc.ClearDash()
	}
	if err := r.dc.Stroke(); err != nil {
		return fmt.Errorf("failed to stroke path: %w", err)
	}
	return nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// drawStatus writes one status line per row using the fixed 7x13 face
func drawStatus(img *image.RGBA, lines []string, col color.RGBA) {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil() + 3
	ascent := face.Metrics().Ascent.Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.Point26_6{X: fixed.I(8), Y: fixed.I(8 + ascent + i*lineHeight)}
		d.DrawString(line)
	}
}

// Encode writes img as PNG
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path
func SavePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Encode(file, img); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
