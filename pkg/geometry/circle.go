package geometry

import "math"

// DefaultDiscriminantTolerance is the band around zero inside which a
// discriminant counts as a tangency. It is applied to the raw discriminant,
// so it does not scale with the segment length.
const DefaultDiscriminantTolerance = 1e-6

// Circle represents a circle in model space
type Circle struct {
	Center Point2  // Circle center
	Radius float64 // Circle radius, never negative
}

// NewCircle creates a circle; a negative radius is stored as its magnitude
func NewCircle(center Point2, radius float64) Circle {
	return Circle{Center: center, Radius: math.Abs(radius)}
}

// PointAt returns the point on the circle at the given angle in radians
func (c Circle) PointAt(angle float64) Point2 {
	return Point2{
		X: c.Center.X + c.Radius*math.Cos(angle),
		Y: c.Center.Y + c.Radius*math.Sin(angle),
	}
}

// Outline returns n points evenly spaced around the circle, starting at angle 0
func (c Circle) Outline(n int) []Point2 {
	if n < 3 {
		n = 3
	}
	points := make([]Point2, n)
	for i := range points {
		points[i] = c.PointAt(float64(i) / float64(n) * 2 * math.Pi)
	}
	return points
}

// Segment represents a line segment from A to B
type Segment struct {
	A Point2
	B Point2
}

// NewSegment creates a new segment
func NewSegment(a, b Point2) Segment {
	return Segment{A: a, B: b}
}

// Direction returns B - A
func (s Segment) Direction() Point2 {
	return s.B.Sub(s.A)
}

// Length returns the length of the segment
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// PointAt returns A + t*(B-A)
func (s Segment) PointAt(t float64) Point2 {
	return s.A.Lerp(s.B, t)
}

// IntersectCircleSegment returns the points where segment s crosses circle c.
// The segment is parametrized as P(t) = a + t(b-a), t in [0,1], and
// |P(t) - c|² = r² is solved as the quadratic
//
//	A = |b-a|²
//	B = 2·dot(a-c, b-a)
//	C = |a-c|² - r²
//	D = B² - 4AC
//
// |D| < tolerance is a tangency (one root -B/2A), D above that yields the roots
// (-B+√D)/2A then (-B-√D)/2A, and anything below yields nothing. A root is
// kept only if t is in [0,1] and P(t) lies inside bounds. A zero-length
// segment has no intersections.
func IntersectCircleSegment(c Circle, s Segment, tolerance float64, bounds Rect) []Point2 {
	d := s.Direction()
	f := s.A.Sub(c.Center)

	a := d.LengthSquared()
	if a == 0 {
		return nil
	}
	b := 2 * f.Dot(d)
	cc := f.LengthSquared() - c.Radius*c.Radius

	disc := b*b - 4*a*cc

	var roots []float64
	switch {
	case math.Abs(disc) < tolerance:
		roots = []float64{-b / (2 * a)}
	case disc > 0:
		sqrtDisc := math.Sqrt(disc)
		roots = []float64{
			(-b + sqrtDisc) / (2 * a),
			(-b - sqrtDisc) / (2 * a),
		}
	default:
		return nil
	}

	var points []Point2
	for _, t := range roots {
		if t < 0 || t > 1 {
			continue
		}
		p := s.PointAt(t)
		if !bounds.Contains(p) {
			continue
		}
		points = append(points, p)
	}
	return points
}
