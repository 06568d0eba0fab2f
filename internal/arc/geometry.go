// Package arc models a circular-arc slider: the circle fitted to a layout
// box, the mapping between progress and positions on that circle, and the
// pointer interaction that drives it.
//
// Angles reported in degrees follow canvas arc conventions: 0° points along
// the positive x axis and angles grow clockwise in y-down screen space, so
// 270° is straight up. Radian values use the mathematical convention.
package arc

import (
	"math"

	"arc-slider/pkg/geometry"
)

// Epsilon is the floor substituted for angles, sweeps and heights that would
// otherwise be zero or undefined.
const Epsilon = 0.0001

// Geometry describes the circle fitted to a content box and the symmetric
// arc of that circle which spans the box. It is immutable; a new value is
// built on every layout change.
type Geometry struct {
	// Offset from the widget's top-left to the content box.
	OriginOffsetX float64
	OriginOffsetY float64

	ContentWidth  float64
	ContentHeight float64

	Radius  float64
	CenterX float64
	CenterY float64

	// AlphaRadians is half of the arc's angular span.
	AlphaRadians float64

	StartAngleDeg float64
	SweepAngleDeg float64
}

// NewGeometry fits a circle to a chord of span width that sags by height.
// The radius follows the circular segment relation
// r = h/2 + w²/(8h). A zero or negative height is floored at Epsilon, which
// yields a very large but finite radius and a near-zero sweep.
func NewGeometry(dx, dy, width, height float64) Geometry {
	width = math.Max(width, 0)
	height = math.Max(height, 0)
	h := math.Max(height, Epsilon)

	r := h/2 + width*width/(8*h)
	cos := geometry.Clamp(-1, (r-h)/r, 1)
	alpha := geometry.Clamp(Epsilon, math.Acos(cos), 2*math.Pi)

	g := Geometry{
		OriginOffsetX: dx,
		OriginOffsetY: dy,
		ContentWidth:  width,
		ContentHeight: height,
		Radius:        r,
		CenterX:       width/2 + dy,
		CenterY:       r + dx,
		AlphaRadians:  alpha,
		StartAngleDeg: geometry.Clamp(180, 270-geometry.Degrees(alpha), 360),
		SweepAngleDeg: geometry.Clamp(Epsilon, geometry.Degrees(2*alpha), 180),
	}
	if width == 0 || height == 0 {
		Logger().Warn("arc: degenerate content box",
			"width", width, "height", height, "radius", r)
	}
	return g
}

// Center returns the center of the fitted circle.
func (g Geometry) Center() geometry.Point2D {
	return geometry.NewPoint2D(g.CenterX, g.CenterY)
}

// ArcRect returns the square bounding the full circle, the oval passed to
// canvas arc drawing.
func (g Geometry) ArcRect() geometry.Rect {
	return geometry.RectFromLTRB(
		g.CenterX-g.Radius, g.CenterY-g.Radius,
		g.CenterX+g.Radius, g.CenterY+g.Radius,
	)
}

// Valid reports whether every derived quantity lies in its documented range.
func (g Geometry) Valid() bool {
	return g.Radius > 0 && !math.IsInf(g.Radius, 0) && !math.IsNaN(g.Radius) &&
		g.AlphaRadians > 0 && g.AlphaRadians <= 2*math.Pi &&
		g.StartAngleDeg >= 180 && g.StartAngleDeg <= 360 &&
		g.SweepAngleDeg > 0 && g.SweepAngleDeg <= 180
}
