package geometry

import (
	"fmt"
	"math"
)

// Point2 represents a 2D point or vector in model space
type Point2 struct {
	X, Y float64
}

// NewPoint2 creates a new 2D point
func NewPoint2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (p Point2) Add(other Point2) Point2 {
	return Point2{
		X: p.X + other.X,
		Y: p.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (p Point2) Sub(other Point2) Point2 {
	return Point2{
		X: p.X - other.X,
		Y: p.Y - other.Y,
	}
}

// Mul multiplies the vector by a scalar
func (p Point2) Mul(scalar float64) Point2 {
	return Point2{
		X: p.X * scalar,
		Y: p.Y * scalar,
	}
}

// Dot returns the dot product of two vectors
func (p Point2) Dot(other Point2) float64 {
	return p.X*other.X + p.Y*other.Y
}

// LengthSquared returns the squared magnitude of the vector
func (p Point2) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Length returns the magnitude of the vector
func (p Point2) Length() float64 {
	return math.Sqrt(p.LengthSquared())
}

// Distance returns the distance between two points
func (p Point2) Distance(other Point2) float64 {
	return p.Sub(other).Length()
}

// Lerp returns the point a fraction t of the way from p to other
func (p Point2) Lerp(other Point2, t float64) Point2 {
	return p.Add(other.Sub(p).Mul(t))
}

// String formats the point with two decimals, e.g. "(0.10, -0.10)"
func (p Point2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle given by its inclusive corners
type Rect struct {
	Min, Max Point2
}

// ModelBounds is the normalized model space every stored coordinate lives in
var ModelBounds = Rect{
	Min: Point2{X: -1, Y: -1},
	Max: Point2{X: 1, Y: 1},
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Point2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
