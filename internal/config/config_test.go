package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arc-slider/internal/arc"
	"arc-slider/pkg/colorutil"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.MaxProgress)
	assert.Equal(t, "#AAAAAA", cfg.TrackColor)
	assert.Equal(t, "#33B5E5", cfg.ProgressColor)
	assert.True(t, cfg.RoundedEdges)
	assert.True(t, cfg.Enabled)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
maxProgress: 40
progress: 90
roundedEdges: false
progressGradient: ["#ff0000", "#00ff00"]
`))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.MaxProgress)
	assert.False(t, cfg.RoundedEdges)
	assert.Equal(t, 2.0, cfg.TrackWidth, "missing keys keep defaults")
	assert.Equal(t, "#33B5E5", cfg.ProgressColor)
	assert.Equal(t, arc.ProgressState{Progress: 40, MaxProgress: 40}, cfg.ProgressState())

	colors, err := cfg.ProgressGradientColors()
	require.NoError(t, err)
	assert.Len(t, colors, 2)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`
maxProgress: -1
trackWidth: -2
trackColor: "#nothex"
hitTolerance: sometimes
trackGradient: ["#fff", "bogus"]
`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	for _, want := range []string{"maxProgress", "trackWidth", "trackColor", "hitTolerance", "trackGradient"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("maxProgress: [1, 2"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "slider.yaml")
	cfg := Default()
	cfg.Progress = 12
	cfg.TrackGradient = []string{"#000000", "#FFFFFF"}
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestHitToleranceFor(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 12.0, cfg.HitToleranceFor(24))
	cfg.HitTolerance = HitFullThumb
	assert.Equal(t, 24.0, cfg.HitToleranceFor(24))
}

func TestStyle(t *testing.T) {
	style, err := Default().Style()
	require.NoError(t, err)
	assert.Equal(t, colorutil.TrackGray, style.Track.Color)
	assert.Equal(t, colorutil.ProgressBlue, style.Progress.Color)
	assert.Equal(t, 4.0, style.Progress.Width)
	assert.True(t, style.RoundedEdges)

	cfg := Default()
	cfg.ThumbColor = "nope"
	_, err = cfg.Style()
	assert.Error(t, err)
}

func TestLayout(t *testing.T) {
	cfg := Default()
	cfg.TrackWidth = 9
	l := cfg.Layout(300, 200, arc.Padding{Left: 1})
	assert.Equal(t, 9.0, l.StrokeWidth, "widest stroke wins")
	assert.Equal(t, 24.0, l.ThumbHeight)
	assert.Equal(t, 1.0, l.Padding.Left)
}
