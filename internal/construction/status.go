package construction

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gocircle/pkg/geometry"
)

// StatusLine selects one of the status texts an Engine publishes
type StatusLine int

const (
	StatusCircle StatusLine = iota
	StatusSegment
	StatusIntersection

	statusLineCount
)

// StatusSink receives status text. Notifications are fire and forget.
type StatusSink interface {
	SetStatus(line StatusLine, text string)
}

// StatusFunc adapts a function to a StatusSink
type StatusFunc func(line StatusLine, text string)

// SetStatus calls f(line, text)
func (f StatusFunc) SetStatus(line StatusLine, text string) { f(line, text) }

// Redrawer is asked to draw the current snapshot whenever it changes
type Redrawer interface {
	RequestRedraw()
}

// RedrawFunc adapts a function to a Redrawer
type RedrawFunc func()

// RequestRedraw calls f()
func (f RedrawFunc) RequestRedraw() { f() }

// StatusBoard is a StatusSink that keeps the latest text of every line
type StatusBoard struct {
	lines [statusLineCount]string
}

// SetStatus stores text for line; unknown lines are ignored
func (b *StatusBoard) SetStatus(line StatusLine, text string) {
	if line < 0 || line >= statusLineCount {
		return
	}
	b.lines[line] = text
}

// Get returns the text of one line
func (b *StatusBoard) Get(line StatusLine) string {
	if line < 0 || line >= statusLineCount {
		return ""
	}
	return b.lines[line]
}

// Lines returns the non-empty lines in display order
func (b *StatusBoard) Lines() []string {
	out := make([]string, 0, len(b.lines))
	for _, l := range b.lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

// FormatCircle renders the circle status text
func FormatCircle(c geometry.Circle) string {
	return fmt.Sprintf("Circle: center (%.2f, %.2f) radius = %.2f", c.Center.X, c.Center.Y, c.Radius)
}

// FormatSegment renders the segment status text
func FormatSegment(s geometry.Segment) string {
	return fmt.Sprintf("Line segment: (%.2f, %.2f) ~ (%.2f, %.2f)", s.A.X, s.A.Y, s.B.X, s.B.Y)
}

// FormatIntersections renders the intersection status text
func FormatIntersections(points []geometry.Point2) string {
	if len(points) == 0 {
		return "No intersection"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Intersection Points: %d", len(points))
	for i, p := range points {
		fmt.Fprintf(&sb, " Point %d (%.2f,%.2f)", i+1, p.X, p.Y)
	}
	return sb.String()
}
