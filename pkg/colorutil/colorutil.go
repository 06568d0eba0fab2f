// Package colorutil provides shared color utilities for the arc slider.
package colorutil

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Default colors.
var (
	Black   = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Clear   = color.NRGBA{}
	Magenta = color.NRGBA{R: 255, G: 0, B: 255, A: 255}

	// TrackGray is the default background arc color.
	TrackGray = color.NRGBA{R: 0xAA, G: 0xAA, B: 0xAA, A: 0xFF}
	// ProgressBlue is the default progress arc and thumb color.
	ProgressBlue = color.NRGBA{R: 0x33, G: 0xB5, B: 0xE5, A: 0xFF}
)

// ParseHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (the leading '#' is optional).
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 3 && len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #RGB, #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	switch len(h) {
	case 3:
		return color.NRGBA{
			R: uint8(v>>8&0xF) * 17,
			G: uint8(v>>4&0xF) * 17,
			B: uint8(v&0xF) * 17,
			A: 0xFF,
		}, nil
	case 6:
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
	default:
		return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}
}

// Hex formats a color as "#RRGGBB", or "#RRGGBBAA" when not opaque.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// Lerp interpolates between a and b in non-premultiplied space. t is clamped to [0, 1].
func Lerp(a, b color.Color, t float64) color.NRGBA {
	t = math.Max(0, math.Min(1, t))
	ca := color.NRGBAModel.Convert(a).(color.NRGBA)
	cb := color.NRGBAModel.Convert(b).(color.NRGBA)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{
		R: mix(ca.R, cb.R),
		G: mix(ca.G, cb.G),
		B: mix(ca.B, cb.B),
		A: mix(ca.A, cb.A),
	}
}

// LinearGradient is a horizontal gradient between X0 and X1 with evenly
// spaced stops. Outside [X0, X1] the end colors are extended. It implements
// image.Image so it can be used directly as a paint source.
type LinearGradient struct {
	X0, X1 float64
	Colors []color.Color
}

// NewLinearGradient creates a horizontal gradient from x0 to x1.
func NewLinearGradient(x0, x1 float64, colors ...color.Color) *LinearGradient {
	return &LinearGradient{X0: x0, X1: x1, Colors: colors}
}

// ColorAt returns the gradient color at horizontal position x.
func (g *LinearGradient) ColorAt(x float64) color.NRGBA {
	switch len(g.Colors) {
	case 0:
		return Clear
	case 1:
		return color.NRGBAModel.Convert(g.Colors[0]).(color.NRGBA)
	}

	span := g.X1 - g.X0
	var t float64
	if span != 0 {
		t = (x - g.X0) / span
	}
	t = math.Max(0, math.Min(1, t))

	segments := float64(len(g.Colors) - 1)
	pos := t * segments
	i := int(math.Floor(pos))
	if i >= len(g.Colors)-1 {
		i = len(g.Colors) - 2
	}
	return Lerp(g.Colors[i], g.Colors[i+1], pos-float64(i))
}

// ColorModel implements image.Image.
func (g *LinearGradient) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image. The gradient is unbounded.
func (g *LinearGradient) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

// At implements image.Image, sampling at the pixel center.
func (g *LinearGradient) At(x, y int) color.Color {
	return g.ColorAt(float64(x) + 0.5)
}
