package arc

import "fmt"

// TrackingState is the pointer interaction state.
type TrackingState int

const (
	Idle TrackingState = iota
	Tracking
)

func (s TrackingState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Tracking:
		return "Tracking"
	default:
		return fmt.Sprintf("TrackingState(%d)", int(s))
	}
}

// EventKind identifies a pointer event primitive.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// PointerEvent is a pointer event in the widget's local coordinates.
type PointerEvent struct {
	Kind EventKind
	X, Y float64
}

// ProgressListener receives a progress value.
type ProgressListener func(progress int)

// Controller owns a slider's progress state and turns pointer events into
// progress changes using the geometry published on its port.
//
// A listener that sets progress from inside OnProgressChanged re-enters the
// controller; the last write wins and no cycle detection is done.
type Controller struct {
	port      *Port
	state     ProgressState
	tracking  TrackingState
	enabled   bool
	tolerance float64

	onProgressChanged ProgressListener
	onTrackingStarted ProgressListener
	onTrackingStopped ProgressListener
	onRedraw          func()
}

// NewController creates an enabled, idle controller reading geometry from port.
func NewController(port *Port, state ProgressState) *Controller {
	if port == nil {
		port = NewPort()
	}
	return &Controller{
		port:    port,
		state:   NewProgressState(state.Progress, state.MaxProgress),
		enabled: true,
	}
}

// Port returns the geometry port the controller reads.
func (c *Controller) Port() *Port {
	return c.port
}

// OnProgressChanged sets the callback for accepted progress updates.
func (c *Controller) OnProgressChanged(callback ProgressListener) {
	c.onProgressChanged = callback
}

// OnTrackingStarted sets the callback raised on pointer down.
func (c *Controller) OnTrackingStarted(callback ProgressListener) {
	c.onTrackingStarted = callback
}

// OnTrackingStopped sets the callback raised when a drag ends.
func (c *Controller) OnTrackingStopped(callback ProgressListener) {
	c.onTrackingStopped = callback
}

// OnRedraw sets the callback used to request a repaint.
func (c *Controller) OnRedraw(callback func()) {
	c.onRedraw = callback
}

// SetHitTolerance sets the maximum distance between a pointer and the arc
// for the pointer to count as on the arc.
func (c *Controller) SetHitTolerance(tolerance float64) {
	c.tolerance = max(tolerance, 0)
}

// HitTolerance returns the current hit tolerance.
func (c *Controller) HitTolerance() float64 {
	return c.tolerance
}

// SetGeometry publishes a new geometry and requests a repaint.
func (c *Controller) SetGeometry(g Geometry) {
	c.port.Publish(g)
	c.redraw()
}

// State returns the interaction state.
func (c *Controller) State() TrackingState {
	return c.tracking
}

// Progress returns the current progress.
func (c *Controller) Progress() int {
	return c.state.Progress
}

// MaxProgress returns the current upper bound.
func (c *Controller) MaxProgress() int {
	return c.state.MaxProgress
}

// ProgressState returns the progress state.
func (c *Controller) ProgressState() ProgressState {
	return c.state
}

// SetProgress clamps progress into range, notifies and requests a repaint.
func (c *Controller) SetProgress(progress int) {
	var n *Notification
	c.state, n = UpdateProgress(c.state, progress)
	c.deliver(n)
}

// SetMaxProgress changes the upper bound. Progress is re-clamped and a
// notification is raised if it moved.
func (c *Controller) SetMaxProgress(maxProgress int) {
	var n *Notification
	c.state, n = UpdateMaxProgress(c.state, maxProgress)
	c.deliver(n)
}

// Enabled reports whether pointer events are processed.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// SetEnabled enables or disables pointer handling. Disabling during a drag
// ends it and raises the tracking-stopped notification.
func (c *Controller) SetEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	if !enabled && c.tracking == Tracking {
		c.stopTracking()
	}
	c.redraw()
}

// Frame returns the paint snapshot for the current geometry and progress.
// It reports false before the first geometry is published.
func (c *Controller) Frame() (Frame, bool) {
	g, ok := c.port.Current()
	if !ok {
		return Frame{}, false
	}
	return Snapshot(g, c.state), true
}

// Handle processes a pointer event and reports whether it was consumed.
// Events are ignored and reported unconsumed while the controller is disabled.
func (c *Controller) Handle(ev PointerEvent) bool {
	if !c.enabled {
		return false
	}

	switch ev.Kind {
	case PointerDown:
		if c.tracking == Tracking {
			c.track(ev)
			break
		}
		if c.onTrackingStarted != nil {
			c.onTrackingStarted(c.state.Progress)
		}
		if c.track(ev) {
			c.tracking = Tracking
			c.redraw()
		}
	case PointerMove:
		if c.tracking == Tracking {
			c.track(ev)
		}
	case PointerUp, PointerCancel:
		if c.tracking == Tracking {
			c.stopTracking()
			c.redraw()
		}
	}
	return true
}

// track hit-tests the event and applies the resulting progress.
func (c *Controller) track(ev PointerEvent) bool {
	g, ok := c.port.Current()
	if !ok {
		return false
	}
	progress, hit := Inverse(g, ev.X, ev.Y, c.tolerance, c.state.MaxProgress)
	if !hit {
		Logger().Debug("arc: pointer missed arc", "event", ev.Kind, "x", ev.X, "y", ev.Y)
		return false
	}
	c.SetProgress(progress)
	return true
}

func (c *Controller) stopTracking() {
	c.tracking = Idle
	if c.onTrackingStopped != nil {
		c.onTrackingStopped(c.state.Progress)
	}
}

func (c *Controller) deliver(n *Notification) {
	if n != nil && c.onProgressChanged != nil {
		c.onProgressChanged(n.Progress)
	}
	c.redraw()
}

func (c *Controller) redraw() {
	if c.onRedraw != nil {
		c.onRedraw()
	}
}
