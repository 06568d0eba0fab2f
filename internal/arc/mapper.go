package arc

import (
	"math"

	"arc-slider/pkg/geometry"
)

// Frame is everything a renderer needs to paint one frame: the geometry and
// the progress-dependent values derived from it.
type Frame struct {
	Geometry Geometry
	State    ProgressState

	ProgressSweepRadians float64
	ProgressSweepDeg     float64
	Thumb                geometry.Point2D
}

// ProgressSweep returns the angle in radians covered by progress, floored at
// Epsilon. A zero maxProgress yields Epsilon instead of dividing by zero.
func ProgressSweep(g Geometry, progress, maxProgress int) float64 {
	s := ProgressState{Progress: progress, MaxProgress: maxProgress}
	if s.MaxProgress == 0 {
		return Epsilon
	}
	return geometry.Clamp(Epsilon, s.Fraction()*2*g.AlphaRadians, 2*math.Pi)
}

// Forward maps progress to the progress arc's sweep in degrees and the thumb
// position on the circle.
func Forward(g Geometry, progress, maxProgress int) (sweepDeg float64, thumb geometry.Point2D) {
	sweep := ProgressSweep(g, progress, maxProgress)
	thumb = geometry.PointOnCircle(g.Center(), g.Radius, g.AlphaRadians+math.Pi/2-sweep)
	return geometry.Degrees(sweep), thumb
}

// Snapshot computes the frame for a geometry and progress state.
func Snapshot(g Geometry, s ProgressState) Frame {
	sweep := ProgressSweep(g, s.Progress, s.MaxProgress)
	return Frame{
		Geometry:             g,
		State:                s,
		ProgressSweepRadians: sweep,
		ProgressSweepDeg:     geometry.Degrees(sweep),
		Thumb:                geometry.PointOnCircle(g.Center(), g.Radius, g.AlphaRadians+math.Pi/2-sweep),
	}
}

// Inverse maps a pointer position back to progress. It reports false when the
// pointer lies below the arc's vertical extent or farther than tolerance from
// the arc band.
//
// The result is trunc((maxProgress+1) * fraction), clamped to
// [0, maxProgress]. The +1 lets the arc's far end reach maxProgress; it also
// means Inverse is not the exact algebraic inverse of Forward, which uses
// progress/maxProgress. Round trips agree within one step.
func Inverse(g Geometry, x, y, tolerance float64, maxProgress int) (int, bool) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, false
	}
	if y > g.ContentHeight+2*g.OriginOffsetY {
		return 0, false
	}

	pointer := geometry.NewPoint2D(x, y)
	dist := pointer.Distance(g.Center())
	if !(math.Abs(dist-g.Radius) <= tolerance) {
		return 0, false
	}

	halfWidth := g.ContentWidth / 2
	xFromCenter := geometry.Clamp(-halfWidth, x-g.CenterX, halfWidth)
	cos := geometry.Clamp(-1, xFromCenter/g.Radius, 1)
	touchAngle := math.Acos(cos) + g.AlphaRadians - math.Pi/2
	fraction := 1 - touchAngle/(2*g.AlphaRadians)

	raw := float64(maxProgress+1) * fraction
	if math.IsNaN(raw) {
		return 0, false
	}
	raw = geometry.Clamp(0, math.Trunc(raw), float64(maxProgress))
	return int(raw), true
}
