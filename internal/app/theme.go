package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"arc-slider/pkg/colorutil"
)

// ArcSliderTheme tints the demo with the slider's progress color.
type ArcSliderTheme struct{}

var _ fyne.Theme = (*ArcSliderTheme)(nil)

func (t *ArcSliderTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return colorutil.ProgressBlue
	case theme.ColorNameFocus:
		return color.NRGBA{R: 0x33, G: 0xB5, B: 0xE5, A: 0x80}
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *ArcSliderTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *ArcSliderTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *ArcSliderTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
