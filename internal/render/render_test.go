package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arc-slider/internal/arc"
	"arc-slider/pkg/colorutil"
)

// testLayout yields a half circle of radius 136 centered at (150, 150).
var testLayout = arc.Layout{
	BoxWidth:    300,
	BoxHeight:   200,
	StrokeWidth: 4,
	ThumbWidth:  24,
	ThumbHeight: 24,
	Margin:      arc.DefaultMargin,
}

func newTestRenderer(t *testing.T, progress int) (*Renderer, *arc.Controller) {
	t.Helper()
	port := arc.NewPort()
	c := arc.NewController(port, arc.NewProgressState(progress, 100))
	c.SetGeometry(testLayout.Geometry())
	g, _ := port.Current()
	require.InDelta(t, 136, g.Radius, 1e-9)
	return NewRenderer(port, DefaultStyle()), c
}

func rgba(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestDrawTrackAndProgress(t *testing.T) {
	r, c := newTestRenderer(t, 0)
	img := r.DrawCurrent(300, 200, c)
	require.Equal(t, image.Rect(0, 0, 300, 200), img.Bounds())

	top := rgba(img, 150, 14)
	assert.InDelta(t, 0xAA, top.R, 2, "track is gray at the top when progress is zero")
	assert.InDelta(t, 0xFF, top.A, 2)
	assert.Equal(t, uint8(0), rgba(img, 150, 150).A, "circle center is empty")

	c.SetProgress(100)
	img = r.DrawCurrent(300, 200, c)
	top = rgba(img, 150, 14)
	assert.InDelta(t, colorutil.ProgressBlue.R, top.R, 2)
	assert.InDelta(t, colorutil.ProgressBlue.B, top.B, 2)
}

func TestDrawThumbOnlyWhenEnabled(t *testing.T) {
	r, c := newTestRenderer(t, 0)

	img := r.DrawCurrent(300, 200, c)
	thumb := rgba(img, 23, 155)
	assert.InDelta(t, colorutil.ProgressBlue.B, thumb.B, 2)
	assert.InDelta(t, 0xFF, thumb.A, 2)

	c.SetEnabled(false)
	img = r.DrawCurrent(300, 200, c)
	assert.Equal(t, uint8(0), rgba(img, 23, 155).A)
}

func TestDrawThumbImage(t *testing.T) {
	r, c := newTestRenderer(t, 0)
	glyph := image.NewUniform(colorutil.Magenta)
	style := r.Style()
	style.Thumb = &boundedImage{Uniform: glyph, r: image.Rect(0, 0, 10, 10)}
	r.SetStyle(style)

	img := r.DrawCurrent(300, 200, c)
	got := rgba(img, 14, 154)
	assert.Equal(t, color.RGBA{R: 255, B: 255, A: 255}, got)
}

type boundedImage struct {
	*image.Uniform
	r image.Rectangle
}

func (b *boundedImage) Bounds() image.Rectangle { return b.r }

func TestProgressGradientDeferredUntilLayout(t *testing.T) {
	port := arc.NewPort()
	c := arc.NewController(port, arc.NewProgressState(100, 100))
	r := NewRenderer(port, DefaultStyle())

	r.SetProgressGradient(color.NRGBA{R: 255, A: 255}, color.NRGBA{G: 255, A: 255})
	assert.Nil(t, r.Style().Progress.Gradient)
	assert.Equal(t, 1, port.Pending())

	c.SetGeometry(testLayout.Geometry())
	grad := r.Style().Progress.Gradient
	require.NotNil(t, grad)
	assert.Equal(t, 14.0, grad.X0)
	assert.Equal(t, 272.0, grad.X1)

	img := r.DrawCurrent(300, 200, c)
	top := rgba(img, 150, 14)
	assert.NotZero(t, top.R)
	assert.NotZero(t, top.G)
	assert.Less(t, top.B, uint8(4), "gray track is covered")
}

func TestTrackGradientAfterLayout(t *testing.T) {
	r, _ := newTestRenderer(t, 0)
	r.SetTrackGradient(colorutil.Black, colorutil.White)
	grad := r.Style().Track.Gradient
	require.NotNil(t, grad)
	assert.Equal(t, 0.0, grad.X0)
	assert.Equal(t, 544.0, grad.X1)

	r.SetTrackGradient()
	assert.Nil(t, r.Style().Track.Gradient)
}

func TestDrawBeforeLayout(t *testing.T) {
	port := arc.NewPort()
	c := arc.NewController(port, arc.NewProgressState(0, 100))
	img := NewRenderer(port, DefaultStyle()).DrawCurrent(40, 30, c)
	assert.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())
	for _, px := range img.Pix {
		require.Zero(t, px)
	}
}

func TestDrawDegenerate(t *testing.T) {
	r := NewRenderer(arc.NewPort(), DefaultStyle())
	frame := arc.Snapshot(arc.NewGeometry(0, 0, 200, 0), arc.NewProgressState(0, 0))
	assert.NotPanics(t, func() { r.Draw(200, 50, frame, true) })
	assert.NotPanics(t, func() { r.Draw(0, 0, frame, true) })
	assert.NotPanics(t, func() { r.Draw(-5, 10, frame, true) })
}

func TestSquareEdges(t *testing.T) {
	r, c := newTestRenderer(t, 0)
	r.SetRoundedEdges(false)
	r.SetTrackWidth(10)
	assert.False(t, r.Style().RoundedEdges)
	assert.Equal(t, 10.0, r.Style().Track.Width)
	r.SetProgressWidth(-1)
	assert.Equal(t, 0.0, r.Style().Progress.Width)
	assert.NotPanics(t, func() { r.DrawCurrent(300, 200, c) })
}

func TestSegmentsFor(t *testing.T) {
	assert.Equal(t, minSegments, segmentsFor(1, 10))
	assert.Equal(t, maxSegments, segmentsFor(1e7, 180))
	assert.Equal(t, 214, segmentsFor(136, 180))
}
