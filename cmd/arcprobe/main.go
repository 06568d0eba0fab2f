// Command arcprobe prints the arc geometry derived for a widget box and can
// render the slider to a PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"arc-slider/internal/arc"
	"arc-slider/internal/config"
	"arc-slider/internal/render"
	"arc-slider/internal/version"
)

func main() {
	width := flag.Float64("width", 300, "Widget box width")
	height := flag.Float64("height", 200, "Widget box height")
	progress := flag.Int("progress", -1, "Progress to render (default from config)")
	configPath := flag.String("config", "", "YAML style configuration")
	out := flag.String("out", "", "Write a PNG of the slider to this path")
	probeX := flag.Float64("x", -1, "Pointer x to hit-test")
	probeY := flag.Float64("y", -1, "Pointer y to hit-test")
	verbose := flag.Bool("v", false, "Log core debug output")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("arcprobe %s\n", version.String())
		return
	}
	if *verbose {
		arc.SetLogger(debugLogger())
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	if *progress >= 0 {
		cfg.Progress = *progress
	}

	layout := cfg.Layout(*width, *height, arc.Padding{})
	g := layout.Geometry()
	state := cfg.ProgressState()
	frame := arc.Snapshot(g, state)

	fmt.Printf("Box: %.0fx%.0f\n", *width, *height)
	fmt.Printf("Content: origin (%.2f, %.2f) size %.2fx%.2f\n",
		g.OriginOffsetX, g.OriginOffsetY, g.ContentWidth, g.ContentHeight)
	fmt.Printf("Circle: center (%.3f, %.3f) radius %.3f\n", g.CenterX, g.CenterY, g.Radius)
	oval := g.ArcRect()
	fmt.Printf("Oval: (%.3f, %.3f) %.3fx%.3f\n", oval.X, oval.Y, oval.Width, oval.Height)
	fmt.Printf("Arc: alpha %.5f rad, start %.3f deg, sweep %.3f deg\n",
		g.AlphaRadians, g.StartAngleDeg, g.SweepAngleDeg)
	fmt.Printf("Progress: %d/%d sweep %.3f deg, thumb (%.3f, %.3f)\n",
		state.Progress, state.MaxProgress, frame.ProgressSweepDeg, frame.Thumb.X, frame.Thumb.Y)

	if *probeX >= 0 && *probeY >= 0 {
		tolerance := cfg.HitToleranceFor(cfg.ThumbSize)
		if p, hit := arc.Inverse(g, *probeX, *probeY, tolerance, state.MaxProgress); hit {
			fmt.Printf("Hit (%.1f, %.1f): progress %d\n", *probeX, *probeY, p)
		} else {
			fmt.Printf("Hit (%.1f, %.1f): miss (tolerance %.1f)\n", *probeX, *probeY, tolerance)
		}
	}

	if *out == "" {
		return
	}

	style, err := cfg.Style()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid style: %v\n", err)
		os.Exit(1)
	}
	port := arc.NewPort()
	r := render.NewRenderer(port, style)
	if colors, err := cfg.TrackGradientColors(); err == nil && len(colors) > 0 {
		r.SetTrackGradient(colors...)
	}
	if colors, err := cfg.ProgressGradientColors(); err == nil && len(colors) > 0 {
		r.SetProgressGradient(colors...)
	}
	port.Publish(g)

	img := r.Draw(int(*width), int(*height), frame, cfg.Enabled)
	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create %s: %v\n", *out, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode PNG: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Wrote %s", *out)
}
