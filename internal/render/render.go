// Package render rasterises an arc slider frame: the background arc, the
// progress arc and the thumb.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"arc-slider/internal/arc"
	"arc-slider/pkg/colorutil"
	"arc-slider/pkg/geometry"
)

const (
	minSegments = 8
	maxSegments = 720
)

// Paint describes how one arc is stroked.
type Paint struct {
	Color    color.Color
	Gradient *colorutil.LinearGradient
	Width    float64
}

// Source returns the image used to fill the stroke.
func (p Paint) Source() image.Image {
	if p.Gradient != nil && len(p.Gradient.Colors) > 0 {
		return p.Gradient
	}
	if p.Color == nil {
		return image.NewUniform(colorutil.Clear)
	}
	return image.NewUniform(p.Color)
}

// Style holds everything about the look of the slider that does not depend
// on layout.
type Style struct {
	Track    Paint
	Progress Paint

	ThumbColor color.Color
	ThumbSize  float64
	// Thumb, when set, is drawn centered on the thumb point instead of a disc.
	Thumb image.Image

	RoundedEdges bool
	Background   color.Color
}

// DefaultStyle returns the stock look: a thin gray track, a thicker blue
// progress arc with rounded ends and a blue thumb.
func DefaultStyle() Style {
	return Style{
		Track:        Paint{Color: colorutil.TrackGray, Width: 2},
		Progress:     Paint{Color: colorutil.ProgressBlue, Width: 4},
		ThumbColor:   colorutil.ProgressBlue,
		ThumbSize:    24,
		RoundedEdges: true,
	}
}

// Renderer draws frames. Gradient requests made before the first layout are
// held on the port and applied once geometry is known.
type Renderer struct {
	port  *arc.Port
	style Style
}

// NewRenderer creates a renderer reading geometry from port.
func NewRenderer(port *arc.Port, style Style) *Renderer {
	return &Renderer{port: port, style: style}
}

// Style returns the current style.
func (r *Renderer) Style() Style {
	return r.style
}

// SetStyle replaces the style. Gradients already applied are kept unless the
// new style carries its own.
func (r *Renderer) SetStyle(style Style) {
	if style.Track.Gradient == nil {
		style.Track.Gradient = r.style.Track.Gradient
	}
	if style.Progress.Gradient == nil {
		style.Progress.Gradient = r.style.Progress.Gradient
	}
	r.style = style
}

// SetTrackWidth sets the background arc stroke width.
func (r *Renderer) SetTrackWidth(width float64) {
	r.style.Track.Width = math.Max(width, 0)
}

// SetProgressWidth sets the progress arc stroke width.
func (r *Renderer) SetProgressWidth(width float64) {
	r.style.Progress.Width = math.Max(width, 0)
}

// SetRoundedEdges selects round or square stroke ends.
func (r *Renderer) SetRoundedEdges(rounded bool) {
	r.style.RoundedEdges = rounded
}

// SetTrackGradient fills the background arc with a horizontal gradient
// spanning twice the content width. An empty list clears it.
func (r *Renderer) SetTrackGradient(colors ...color.Color) {
	r.port.WhenReady(func(g arc.Geometry) {
		if len(colors) == 0 {
			r.style.Track.Gradient = nil
			return
		}
		r.style.Track.Gradient = colorutil.NewLinearGradient(0, 2*g.ContentWidth, colors...)
	})
}

// SetProgressGradient fills the progress arc with a horizontal gradient
// spanning the content box. An empty list clears it.
func (r *Renderer) SetProgressGradient(colors ...color.Color) {
	r.port.WhenReady(func(g arc.Geometry) {
		if len(colors) == 0 {
			r.style.Progress.Gradient = nil
			return
		}
		r.style.Progress.Gradient = colorutil.NewLinearGradient(g.OriginOffsetX, g.ContentWidth, colors...)
	})
}

// Draw renders frame into a new w×h image. The thumb is drawn only when enabled.
func (r *Renderer) Draw(w, h int, frame arc.Frame, enabled bool) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if w <= 0 || h <= 0 {
		return dst
	}
	if r.style.Background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(r.style.Background), image.Point{}, draw.Src)
	}

	g := frame.Geometry
	if !g.Valid() {
		arc.Logger().Warn("render: skipping frame with invalid geometry", "radius", g.Radius)
		return dst
	}

	capStyle := geometry.CapSquare
	if r.style.RoundedEdges {
		capStyle = geometry.CapRound
	}

	r.strokeArc(dst, g, g.SweepAngleDeg, r.style.Track, capStyle)
	r.strokeArc(dst, g, frame.ProgressSweepDeg, r.style.Progress, capStyle)

	if enabled {
		r.drawThumb(dst, frame.Thumb)
	}
	return dst
}

// DrawCurrent renders the controller's current frame, or an empty image
// before the first layout.
func (r *Renderer) DrawCurrent(w, h int, c *arc.Controller) *image.RGBA {
	frame, ok := c.Frame()
	if !ok {
		return image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	}
	return r.Draw(w, h, frame, c.Enabled())
}

func (r *Renderer) strokeArc(dst *image.RGBA, g arc.Geometry, sweepDeg float64, paint Paint, capStyle geometry.CapStyle) {
	if paint.Width <= 0 || sweepDeg <= 0 {
		return
	}
	poly := geometry.ArcStrokeOutline(g.Center(), g.Radius, g.StartAngleDeg, sweepDeg, paint.Width, capStyle, segmentsFor(g.Radius, sweepDeg))
	fillPolygon(dst, poly, paint.Source())
}

func (r *Renderer) drawThumb(dst *image.RGBA, at geometry.Point2D) {
	if !at.IsFinite() {
		return
	}
	if r.style.Thumb != nil {
		b := r.style.Thumb.Bounds()
		origin := image.Pt(int(math.Round(at.X))-b.Dx()/2, int(math.Round(at.Y))-b.Dy()/2)
		draw.Draw(dst, image.Rectangle{Min: origin, Max: origin.Add(b.Size())}, r.style.Thumb, b.Min, draw.Over)
		return
	}
	if r.style.ThumbSize <= 0 || r.style.ThumbColor == nil {
		return
	}
	disc := geometry.GenerateArcPoints(at, r.style.ThumbSize/2, 0, 360, segmentsFor(r.style.ThumbSize/2, 360))
	fillPolygon(dst, disc, image.NewUniform(r.style.ThumbColor))
}

// segmentsFor picks roughly one segment per two pixels of arc length.
func segmentsFor(radius, sweepDeg float64) int {
	n := math.Ceil(radius * geometry.Radians(sweepDeg) / 2)
	if math.IsNaN(n) {
		return minSegments
	}
	return int(geometry.Clamp(minSegments, n, maxSegments))
}

// fillPolygon composites src over dst through the polygon's coverage mask.
func fillPolygon(dst *image.RGBA, poly []geometry.Point2D, src image.Image) {
	if len(poly) < 3 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(dst, b, src, image.Point{})
}
