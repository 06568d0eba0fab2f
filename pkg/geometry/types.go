// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"cmp"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// FromVec converts a gonum vector to a Point2D.
func FromVec(v r2.Vec) Point2D {
	return Point2D{X: v.X, Y: v.Y}
}

// Vec returns the point as a gonum vector.
func (p Point2D) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	return r2.Norm(r2.Sub(p.Vec(), other.Vec()))
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return FromVec(r2.Add(p.Vec(), other.Vec()))
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return FromVec(r2.Sub(p.Vec(), other.Vec()))
}

// Scale returns the point scaled by a factor.
func (p Point2D) Scale(factor float64) Point2D {
	return FromVec(r2.Scale(factor, p.Vec()))
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point2D) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Rect represents a rectangle with floating-point coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectFromLTRB creates a Rect from its left, top, right and bottom edges.
func RectFromLTRB(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Clamp bounds value to the closed range [lo, hi]. When lo > hi the
// upper bound wins, matching a check of the upper bound first.
func Clamp[T cmp.Ordered](lo, value, hi T) T {
	switch {
	case value > hi:
		return hi
	case value < lo:
		return lo
	default:
		return value
	}
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad / (2 * math.Pi) * 360
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg / 360 * 2 * math.Pi
}

// PointOnCircle returns the point at angle (radians, counter-clockwise from
// the positive x axis) on a circle in y-down screen coordinates.
func PointOnCircle(center Point2D, radius, angle float64) Point2D {
	sin, cos := math.Sincos(angle)
	return Point2D{
		X: center.X + radius*cos,
		Y: center.Y - radius*sin,
	}
}

// GenerateArcPoints generates n+1 evenly-spaced points along an arc in
// y-down screen coordinates. Angles are in degrees and increase clockwise,
// the convention used by canvas arc drawing.
func GenerateArcPoints(center Point2D, radius, startDeg, sweepDeg float64, n int) []Point2D {
	if n < 1 {
		n = 1
	}
	points := make([]Point2D, n+1)
	for i := 0; i <= n; i++ {
		angle := Radians(startDeg + sweepDeg*float64(i)/float64(n))
		sin, cos := math.Sincos(angle)
		points[i] = Point2D{
			X: center.X + radius*cos,
			Y: center.Y + radius*sin,
		}
	}
	return points
}
