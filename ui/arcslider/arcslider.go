// Package arcslider provides a fyne slider whose track is a circular arc.
package arcslider

import (
	"image"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"arc-slider/internal/arc"
	"arc-slider/internal/config"
	"arc-slider/internal/render"
)

// ArcSlider is a draggable progress control drawn along a circular arc.
//
// The controller, renderer and layout state are guarded by a mutex so that
// configuration reloads from a background goroutine can race with pointer
// events. Listeners and raster refreshes run after the lock is released, so
// a listener may call back into the slider.
type ArcSlider struct {
	widget.DisableableWidget

	mu         sync.Mutex
	cfg        config.Configuration
	padding    arc.Padding
	controller *arc.Controller
	renderer   *render.Renderer
	raster     *fynecanvas.Raster
	lastPos    fyne.Position

	onProgressChanged func(progress int)
	onTrackingStarted func(progress int)
	onTrackingStopped func(progress int)

	// Collected while locked, flushed by update.
	pending []func()
	dirty   bool
}

var (
	_ fyne.Widget       = (*ArcSlider)(nil)
	_ fyne.Disableable  = (*ArcSlider)(nil)
	_ fyne.Draggable    = (*ArcSlider)(nil)
	_ desktop.Mouseable = (*ArcSlider)(nil)
	_ mobile.Touchable  = (*ArcSlider)(nil)
)

// NewArcSlider creates a slider from a configuration. Invalid colors fall
// back to the default style.
func NewArcSlider(cfg config.Configuration) *ArcSlider {
	style, err := cfg.Style()
	if err != nil {
		arc.Logger().Warn("arcslider: invalid style, using defaults", "err", err)
		style = render.DefaultStyle()
	}

	port := arc.NewPort()
	s := &ArcSlider{
		cfg:        cfg,
		controller: arc.NewController(port, cfg.ProgressState()),
		renderer:   render.NewRenderer(port, style),
	}
	s.controller.SetHitTolerance(cfg.HitToleranceFor(cfg.ThumbSize))
	s.controller.OnRedraw(func() { s.dirty = true })
	s.controller.OnProgressChanged(func(p int) { s.queue(s.onProgressChanged, p) })
	s.controller.OnTrackingStarted(func(p int) { s.queue(s.onTrackingStarted, p) })
	s.controller.OnTrackingStopped(func(p int) { s.queue(s.onTrackingStopped, p) })

	s.raster = fynecanvas.NewRaster(s.draw)
	s.raster.ScaleMode = fynecanvas.ImageScaleSmooth

	if colors, err := cfg.TrackGradientColors(); err == nil && len(colors) > 0 {
		s.renderer.SetTrackGradient(colors...)
	}
	if colors, err := cfg.ProgressGradientColors(); err == nil && len(colors) > 0 {
		s.renderer.SetProgressGradient(colors...)
	}

	s.ExtendBaseWidget(s)
	if !cfg.Enabled {
		s.Disable()
	}
	return s
}

// Frame returns the paint snapshot for the current layout and progress.
// It reports false before the slider has been laid out.
func (s *ArcSlider) Frame() (arc.Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.Frame()
}

// Progress returns the current progress.
func (s *ArcSlider) Progress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.Progress()
}

// SetProgress sets progress, clamped to [0, MaxProgress].
func (s *ArcSlider) SetProgress(progress int) {
	s.update(func() { s.controller.SetProgress(progress) })
}

// MaxProgress returns the upper bound.
func (s *ArcSlider) MaxProgress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.MaxProgress()
}

// SetMaxProgress sets the upper bound, re-clamping progress.
func (s *ArcSlider) SetMaxProgress(maxProgress int) {
	s.update(func() { s.controller.SetMaxProgress(maxProgress) })
}

// OnProgressChanged sets a callback for progress changes.
func (s *ArcSlider) OnProgressChanged(callback func(progress int)) {
	s.mu.Lock()
	s.onProgressChanged = callback
	s.mu.Unlock()
}

// OnStartTrackingTouch sets a callback raised when a pointer goes down.
func (s *ArcSlider) OnStartTrackingTouch(callback func(progress int)) {
	s.mu.Lock()
	s.onTrackingStarted = callback
	s.mu.Unlock()
}

// OnStopTrackingTouch sets a callback raised when a drag ends.
func (s *ArcSlider) OnStopTrackingTouch(callback func(progress int)) {
	s.mu.Lock()
	s.onTrackingStopped = callback
	s.mu.Unlock()
}

// Pressed reports whether a drag is in progress.
func (s *ArcSlider) Pressed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller.State() == arc.Tracking
}

// Enable enables pointer interaction and shows the thumb.
func (s *ArcSlider) Enable() {
	s.update(func() { s.controller.SetEnabled(true) })
	s.DisableableWidget.Enable()
}

// Disable ignores pointer interaction and hides the thumb.
func (s *ArcSlider) Disable() {
	s.update(func() { s.controller.SetEnabled(false) })
	s.DisableableWidget.Disable()
}

// SetTrackWidth sets the background arc stroke width.
func (s *ArcSlider) SetTrackWidth(width float64) {
	s.update(func() {
		s.cfg.TrackWidth = width
		s.renderer.SetTrackWidth(width)
		s.relayout()
	})
}

// SetProgressWidth sets the progress arc stroke width.
func (s *ArcSlider) SetProgressWidth(width float64) {
	s.update(func() {
		s.cfg.ProgressWidth = width
		s.renderer.SetProgressWidth(width)
		s.relayout()
	})
}

// SetRoundedEdges selects round or square arc ends.
func (s *ArcSlider) SetRoundedEdges(rounded bool) {
	s.update(func() {
		s.cfg.RoundedEdges = rounded
		s.renderer.SetRoundedEdges(rounded)
		s.dirty = true
	})
}

// SetTrackGradient fills the background arc with a gradient. It may be called
// before the slider has been laid out. No colors clears the gradient.
func (s *ArcSlider) SetTrackGradient(colors ...color.Color) {
	s.update(func() {
		s.renderer.SetTrackGradient(colors...)
		s.dirty = true
	})
}

// SetProgressGradient fills the progress arc with a gradient. It may be called
// before the slider has been laid out. No colors clears the gradient.
func (s *ArcSlider) SetProgressGradient(colors ...color.Color) {
	s.update(func() {
		s.renderer.SetProgressGradient(colors...)
		s.dirty = true
	})
}

// SetPadding sets the space kept free on each side.
func (s *ArcSlider) SetPadding(padding arc.Padding) {
	s.update(func() {
		s.padding = padding
		s.relayout()
	})
}

// ApplyConfig replaces style, gradients and bounds with those from cfg.
// Progress keeps its current value, clamped to the new bound. It is safe to
// call from a goroutine other than the one delivering pointer events.
func (s *ArcSlider) ApplyConfig(cfg config.Configuration) {
	style, err := cfg.Style()
	if err != nil {
		arc.Logger().Warn("arcslider: ignoring config with invalid style", "err", err)
		return
	}
	s.update(func() {
		s.cfg = cfg
		s.renderer.SetStyle(style)
		s.applyGradients(cfg)
		s.controller.SetHitTolerance(cfg.HitToleranceFor(cfg.ThumbSize))
		s.controller.SetMaxProgress(cfg.MaxProgress)
		s.controller.SetEnabled(cfg.Enabled)
		s.relayout()
	})
	if cfg.Enabled {
		s.DisableableWidget.Enable()
	} else {
		s.DisableableWidget.Disable()
	}
}

// CreateRenderer implements fyne.Widget.
func (s *ArcSlider) CreateRenderer() fyne.WidgetRenderer {
	s.ExtendBaseWidget(s)
	return &arcSliderRenderer{slider: s}
}

// MouseDown implements desktop.Mouseable.
func (s *ArcSlider) MouseDown(ev *desktop.MouseEvent) {
	s.handle(arc.PointerDown, ev.Position)
}

// MouseUp implements desktop.Mouseable.
func (s *ArcSlider) MouseUp(ev *desktop.MouseEvent) {
	s.handle(arc.PointerUp, ev.Position)
}

// Dragged implements fyne.Draggable.
func (s *ArcSlider) Dragged(ev *fyne.DragEvent) {
	s.handle(arc.PointerMove, ev.Position)
}

// DragEnd implements fyne.Draggable.
func (s *ArcSlider) DragEnd() {
	s.update(func() {
		s.controller.Handle(arc.PointerEvent{Kind: arc.PointerUp, X: float64(s.lastPos.X), Y: float64(s.lastPos.Y)})
	})
}

// TouchDown implements mobile.Touchable.
func (s *ArcSlider) TouchDown(ev *mobile.TouchEvent) {
	s.handle(arc.PointerDown, ev.Position)
}

// TouchUp implements mobile.Touchable.
func (s *ArcSlider) TouchUp(ev *mobile.TouchEvent) {
	s.handle(arc.PointerUp, ev.Position)
}

// TouchCancel implements mobile.Touchable.
func (s *ArcSlider) TouchCancel(ev *mobile.TouchEvent) {
	s.handle(arc.PointerCancel, ev.Position)
}

func (s *ArcSlider) handle(kind arc.EventKind, pos fyne.Position) {
	s.update(func() {
		s.lastPos = pos
		s.controller.Handle(arc.PointerEvent{
			Kind: kind,
			X:    float64(pos.X),
			Y:    float64(pos.Y),
		})
	})
}

// update runs f with the slider locked, then delivers the notifications it
// raised and refreshes the raster once the lock is released.
func (s *ArcSlider) update(f func()) {
	s.mu.Lock()
	f()
	pending, dirty := s.pending, s.dirty
	s.pending, s.dirty = nil, false
	s.mu.Unlock()

	for _, call := range pending {
		call()
	}
	if dirty {
		s.refreshRaster()
	}
}

// queue records a listener call for delivery after unlock. Called locked.
func (s *ArcSlider) queue(listener func(int), progress int) {
	if listener != nil {
		s.pending = append(s.pending, func() { listener(progress) })
	}
}

// applyGradients sets both gradients from cfg; an empty list clears one.
// Called locked.
func (s *ArcSlider) applyGradients(cfg config.Configuration) {
	if colors, err := cfg.TrackGradientColors(); err == nil {
		s.renderer.SetTrackGradient(colors...)
	}
	if colors, err := cfg.ProgressGradientColors(); err == nil {
		s.renderer.SetProgressGradient(colors...)
	}
}

// relayout recomputes geometry for the current size. Called locked.
func (s *ArcSlider) relayout() {
	size := s.Size()
	if size.Width <= 0 || size.Height <= 0 {
		s.dirty = true
		return
	}
	s.layout(size)
}

// layout publishes geometry for size. Called locked.
func (s *ArcSlider) layout(size fyne.Size) {
	l := s.cfg.Layout(float64(size.Width), float64(size.Height), s.padding)
	s.controller.SetGeometry(l.Geometry())
}

func (s *ArcSlider) refreshRaster() {
	if s.raster != nil {
		s.raster.Refresh()
	}
}

// draw renders at the widget's logical size; the raster scales to device pixels.
func (s *ArcSlider) draw(w, h int) image.Image {
	size := s.Size()
	lw, lh := int(size.Width), int(size.Height)
	if lw <= 0 || lh <= 0 {
		lw, lh = w, h
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderer.DrawCurrent(lw, lh, s.controller)
}

type arcSliderRenderer struct {
	slider *ArcSlider
}

func (r *arcSliderRenderer) Layout(size fyne.Size) {
	r.slider.update(func() { r.slider.layout(size) })
	r.slider.raster.Resize(size)
}

// MinSize leaves room for a shallow arc with the thumb at either end.
func (r *arcSliderRenderer) MinSize() fyne.Size {
	r.slider.mu.Lock()
	t := float32(r.slider.cfg.ThumbSize)
	m := float32(r.slider.cfg.Margin)
	r.slider.mu.Unlock()
	return fyne.NewSize(4*t+2*m, 2*t+2*m)
}

func (r *arcSliderRenderer) Refresh() {
	r.slider.raster.Refresh()
}

func (r *arcSliderRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.slider.raster}
}

func (r *arcSliderRenderer) Destroy() {}
