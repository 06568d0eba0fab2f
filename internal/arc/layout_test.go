package arc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutContent(t *testing.T) {
	l := Layout{
		BoxWidth:    300,
		BoxHeight:   200,
		StrokeWidth: 4,
		ThumbWidth:  24,
		ThumbHeight: 24,
		Margin:      DefaultMargin,
	}
	dx, dy, w, h := l.Content()
	assert.Equal(t, 14.0, dx)
	assert.Equal(t, 14.0, dy)
	assert.Equal(t, 272.0, w)
	assert.Equal(t, 136.0, h)
}

func TestLayoutContentPadding(t *testing.T) {
	l := Layout{
		BoxWidth:    300,
		BoxHeight:   100,
		Padding:     Padding{Left: 10, Top: 5, Right: 20, Bottom: 15},
		StrokeWidth: 8,
		ThumbWidth:  10,
		ThumbHeight: 30,
		Margin:      DefaultMargin,
	}
	dx, dy, w, h := l.Content()
	// dx = max(5, 8) + 2, dy = max(15, 8) + 2
	assert.Equal(t, 20.0, dx)
	assert.Equal(t, 22.0, dy)
	assert.Equal(t, 300.0-20-10-20, w)
	assert.Equal(t, 100.0-34-5-15, h)
}

func TestLayoutContentTooSmall(t *testing.T) {
	l := Layout{BoxWidth: 10, BoxHeight: 10, StrokeWidth: 4, ThumbWidth: 24, ThumbHeight: 24, Margin: 2}
	_, _, w, h := l.Content()
	assert.Equal(t, 0.0, w)
	assert.Equal(t, 0.0, h)
	assert.True(t, l.Geometry().Valid())
}
