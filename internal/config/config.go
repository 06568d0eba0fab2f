// Package config holds the arc slider's configuration: every style and
// behaviour knob with its default, loadable from YAML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"arc-slider/internal/arc"
	"arc-slider/internal/render"
	"arc-slider/pkg/colorutil"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// HitTolerance selects how far from the arc a pointer may land.
type HitTolerance string

const (
	// HitHalfThumb accepts pointers within half the thumb height of the arc.
	HitHalfThumb HitTolerance = "half"
	// HitFullThumb accepts pointers within the full thumb height.
	HitFullThumb HitTolerance = "full"
)

// Configuration lists every option of the slider. Fields absent from a YAML
// document keep the values from Default.
type Configuration struct {
	// MaxProgress is the upper bound of progress. Default 100.
	MaxProgress int `yaml:"maxProgress"`
	// Progress is the initial value. Default 0.
	Progress int `yaml:"progress"`

	// ProgressWidth is the progress arc stroke width. Default 4.
	ProgressWidth float64 `yaml:"progressWidth"`
	// TrackWidth is the background arc stroke width. Default 2.
	TrackWidth float64 `yaml:"trackWidth"`

	// TrackColor defaults to gray (#AAAAAA).
	TrackColor string `yaml:"trackColor"`
	// ProgressColor defaults to blue (#33B5E5).
	ProgressColor string `yaml:"progressColor"`
	// ThumbColor defaults to blue (#33B5E5).
	ThumbColor string `yaml:"thumbColor"`

	TrackGradient    []string `yaml:"trackGradient,omitempty"`
	ProgressGradient []string `yaml:"progressGradient,omitempty"`

	// RoundedEdges selects round stroke ends. Default true.
	RoundedEdges bool `yaml:"roundedEdges"`
	// Enabled controls whether the slider reacts to pointers. Default true.
	Enabled bool `yaml:"enabled"`

	// ThumbSize is the thumb's width and height. Default 24.
	ThumbSize float64 `yaml:"thumbSize"`
	// Margin is kept around the stroke or thumb. Default 2.
	Margin float64 `yaml:"margin"`
	// HitTolerance is "half" (default) or "full".
	HitTolerance HitTolerance `yaml:"hitTolerance"`
}

// Default returns the stock configuration.
func Default() Configuration {
	return Configuration{
		MaxProgress:   arc.DefaultMaxProgress,
		Progress:      0,
		ProgressWidth: 4,
		TrackWidth:    2,
		TrackColor:    colorutil.Hex(colorutil.TrackGray),
		ProgressColor: colorutil.Hex(colorutil.ProgressBlue),
		ThumbColor:    colorutil.Hex(colorutil.ProgressBlue),
		RoundedEdges:  true,
		Enabled:       true,
		ThumbSize:     24,
		Margin:        arc.DefaultMargin,
		HitTolerance:  HitHalfThumb,
	}
}

// Load reads a YAML configuration on top of the defaults and validates it.
func Load(path string) (Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Configuration, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c Configuration) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// Validate reports every problem found, joined into one error wrapping ErrInvalid.
func (c Configuration) Validate() error {
	var errs []error
	if c.MaxProgress < 0 {
		errs = append(errs, fmt.Errorf("%w: maxProgress %d is negative", ErrInvalid, c.MaxProgress))
	}
	if c.ProgressWidth < 0 {
		errs = append(errs, fmt.Errorf("%w: progressWidth %g is negative", ErrInvalid, c.ProgressWidth))
	}
	if c.TrackWidth < 0 {
		errs = append(errs, fmt.Errorf("%w: trackWidth %g is negative", ErrInvalid, c.TrackWidth))
	}
	if c.ThumbSize < 0 {
		errs = append(errs, fmt.Errorf("%w: thumbSize %g is negative", ErrInvalid, c.ThumbSize))
	}
	if c.Margin < 0 {
		errs = append(errs, fmt.Errorf("%w: margin %g is negative", ErrInvalid, c.Margin))
	}
	switch c.HitTolerance {
	case HitHalfThumb, HitFullThumb:
	default:
		errs = append(errs, fmt.Errorf("%w: hitTolerance %q, want %q or %q", ErrInvalid, c.HitTolerance, HitHalfThumb, HitFullThumb))
	}

	for name, s := range map[string]string{
		"trackColor":    c.TrackColor,
		"progressColor": c.ProgressColor,
		"thumbColor":    c.ThumbColor,
	} {
		if _, err := colorutil.ParseHex(s); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalid, name, err))
		}
	}
	if _, err := parseColors(c.TrackGradient); err != nil {
		errs = append(errs, fmt.Errorf("%w: trackGradient: %w", ErrInvalid, err))
	}
	if _, err := parseColors(c.ProgressGradient); err != nil {
		errs = append(errs, fmt.Errorf("%w: progressGradient: %w", ErrInvalid, err))
	}
	return errors.Join(errs...)
}

// ProgressState returns the initial progress state.
func (c Configuration) ProgressState() arc.ProgressState {
	return arc.NewProgressState(c.Progress, c.MaxProgress)
}

// HitToleranceFor returns the hit tolerance in pixels for the given thumb height.
func (c Configuration) HitToleranceFor(thumbHeight float64) float64 {
	if c.HitTolerance == HitFullThumb {
		return thumbHeight
	}
	return thumbHeight / 2
}

// Layout returns the layout inputs for a box of the given size.
func (c Configuration) Layout(width, height float64, padding arc.Padding) arc.Layout {
	return arc.Layout{
		BoxWidth:    width,
		BoxHeight:   height,
		Padding:     padding,
		StrokeWidth: max(c.ProgressWidth, c.TrackWidth),
		ThumbWidth:  c.ThumbSize,
		ThumbHeight: c.ThumbSize,
		Margin:      c.Margin,
	}
}

// Style converts the configuration into a render style. Gradients are not
// included: they depend on layout and are applied through the renderer.
func (c Configuration) Style() (render.Style, error) {
	track, err := colorutil.ParseHex(c.TrackColor)
	if err != nil {
		return render.Style{}, fmt.Errorf("trackColor: %w", err)
	}
	progress, err := colorutil.ParseHex(c.ProgressColor)
	if err != nil {
		return render.Style{}, fmt.Errorf("progressColor: %w", err)
	}
	thumb, err := colorutil.ParseHex(c.ThumbColor)
	if err != nil {
		return render.Style{}, fmt.Errorf("thumbColor: %w", err)
	}
	return render.Style{
		Track:        render.Paint{Color: track, Width: c.TrackWidth},
		Progress:     render.Paint{Color: progress, Width: c.ProgressWidth},
		ThumbColor:   thumb,
		ThumbSize:    c.ThumbSize,
		RoundedEdges: c.RoundedEdges,
	}, nil
}

// TrackGradientColors parses the track gradient stops.
func (c Configuration) TrackGradientColors() ([]color.Color, error) {
	return parseColors(c.TrackGradient)
}

// ProgressGradientColors parses the progress gradient stops.
func (c Configuration) ProgressGradientColors() ([]color.Color, error) {
	return parseColors(c.ProgressGradient)
}

func parseColors(hex []string) ([]color.Color, error) {
	colors := make([]color.Color, 0, len(hex))
	for i, s := range hex {
		c, err := colorutil.ParseHex(s)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}
