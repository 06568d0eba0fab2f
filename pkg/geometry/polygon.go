package geometry

import "math"

// CapStyle selects how the ends of a stroked arc are closed.
type CapStyle int

const (
	// CapSquare extends each end by half the stroke width.
	CapSquare CapStyle = iota
	// CapRound closes each end with a half circle.
	CapRound
)

// ArcStrokeOutline returns a closed polygon covering an arc of the given
// radius stroked with width. Angles are canvas degrees (clockwise in y-down
// space). segments controls the sampling of the arc itself.
func ArcStrokeOutline(center Point2D, radius, startDeg, sweepDeg, width float64, capStyle CapStyle, segments int) []Point2D {
	half := width / 2
	outer := GenerateArcPoints(center, radius+half, startDeg, sweepDeg, segments)
	inner := GenerateArcPoints(center, math.Max(radius-half, 0), startDeg, sweepDeg, segments)
	endDeg := startDeg + sweepDeg

	poly := make([]Point2D, 0, 2*len(outer)+2*capSegments+4)
	poly = append(poly, outer...)
	poly = append(poly, capPoints(center, radius, endDeg, half, capStyle, 1)...)
	poly = append(poly, ReversePoints(inner)...)
	poly = append(poly, capPoints(center, radius, startDeg, half, capStyle, -1)...)
	return poly
}

const capSegments = 12

// capPoints returns the points between the outer and inner edge (dir = 1)
// or the inner and outer edge (dir = -1) around the arc endpoint at angleDeg.
func capPoints(center Point2D, radius, angleDeg, half float64, capStyle CapStyle, dir float64) []Point2D {
	sin, cos := math.Sincos(Radians(angleDeg))
	end := Point2D{X: center.X + radius*cos, Y: center.Y + radius*sin}
	radial := Point2D{X: cos, Y: sin}
	tangent := Point2D{X: -sin * dir, Y: cos * dir}

	switch capStyle {
	case CapRound:
		points := make([]Point2D, 0, capSegments-1)
		from := angleDeg
		if dir < 0 {
			from += 180
		}
		for i := 1; i < capSegments; i++ {
			a := Radians(from + 180*float64(i)/capSegments)
			s, c := math.Sincos(a)
			points = append(points, Point2D{X: end.X + half*c, Y: end.Y + half*s})
		}
		return points
	default:
		first, second := radial, radial.Scale(-1)
		if dir < 0 {
			first, second = second, first
		}
		ext := tangent.Scale(half)
		return []Point2D{
			end.Add(first.Scale(half)).Add(ext),
			end.Add(second.Scale(half)).Add(ext),
		}
	}
}

// ReversePoints returns a reversed copy of points.
func ReversePoints(points []Point2D) []Point2D {
	out := make([]Point2D, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}
