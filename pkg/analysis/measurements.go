package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gocircle/pkg/geometry"
)

// Relation describes how a segment sits against a circle
type Relation string

const (
	RelationCrossing Relation = "crossing" // enters and leaves the circle
	RelationTangent  Relation = "tangent"  // touches the circle once
	RelationEntering Relation = "entering" // one end inside, one outside
	RelationInside   Relation = "inside"   // both ends inside
	RelationOutside  Relation = "outside"  // never reaches the circle
)

// MeasurementResult contains measurements of a circle and segment pair
type MeasurementResult struct {
	CircleArea     float64
	Circumference  float64
	SegmentLength  float64
	LineDistance   float64 // circle center to the infinite line through the segment
	CenterDistance float64 // circle center to the nearest point of the segment
	ChordLength    float64 // distance between two intersections, 0 otherwise
	Relation       Relation
	Intersections  int
}

// AnalyzeConstruction measures c and s. points are the intersections as
// computed for the pair.
func AnalyzeConstruction(c geometry.Circle, s geometry.Segment, points []geometry.Point2) *MeasurementResult {
	result := &MeasurementResult{
		CircleArea:    math.Pi * c.Radius * c.Radius,
		Circumference: 2 * math.Pi * c.Radius,
		SegmentLength: s.Length(),
		Intersections: len(points),
	}

	nearest := s.PointAt(clamp(projection(c.Center, s), 0, 1))
	result.CenterDistance = c.Center.Distance(nearest)
	result.LineDistance = lineDistance(c.Center, s)

	if len(points) == 2 {
		result.ChordLength = points[0].Distance(points[1])
	}

	insideA := c.Center.Distance(s.A) < c.Radius
	insideB := c.Center.Distance(s.B) < c.Radius
	switch {
	case len(points) == 2:
		result.Relation = RelationCrossing
	case len(points) == 1 && insideA != insideB:
		result.Relation = RelationEntering
	case len(points) == 1:
		result.Relation = RelationTangent
	case insideA && insideB:
		result.Relation = RelationInside
	default:
		result.Relation = RelationOutside
	}

	return result
}

// projection returns the segment parameter of the point on the line
// nearest to p. Zero-length segments project to 0.
func projection(p geometry.Point2, s geometry.Segment) float64 {
	d := s.Direction()
	lenSq := d.LengthSquared()
	if lenSq == 0 {
		return 0
	}
	return p.Sub(s.A).Dot(d) / lenSq
}

func lineDistance(p geometry.Point2, s geometry.Segment) float64 {
	d := s.Direction()
	length := d.Length()
	if length == 0 {
		return p.Distance(s.A)
	}
	v := p.Sub(s.A)
	return math.Abs(d.X*v.Y-d.Y*v.X) / length
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lines returns the measurements as display lines
func (r *MeasurementResult) Lines() []string {
	lines := []string{
		fmt.Sprintf("Circle area: %.4f", r.CircleArea),
		fmt.Sprintf("Circumference: %.4f", r.Circumference),
		fmt.Sprintf("Segment length: %.4f", r.SegmentLength),
		fmt.Sprintf("Center to line: %.4f", r.LineDistance),
		fmt.Sprintf("Center to segment: %.4f", r.CenterDistance),
		fmt.Sprintf("Relation: %s", r.Relation),
	}
	if r.Intersections == 2 {
		lines = append(lines, fmt.Sprintf("Chord length: %.4f", r.ChordLength))
	}
	return lines
}

// FormatPoint formats a point for display
func FormatPoint(p geometry.Point2) string {
	return fmt.Sprintf("(%.6f, %.6f)", p.X, p.Y)
}
