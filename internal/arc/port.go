package arc

// Port is a single-slot cell holding the latest published geometry.
// Callbacks registered before the first publish wait until it happens.
//
// Port is not safe for concurrent use; it belongs to the UI goroutine.
type Port struct {
	current  *Geometry
	pending  []func(Geometry)
	draining bool
}

// NewPort returns an empty port.
func NewPort() *Port {
	return &Port{}
}

// Current returns the latest geometry and whether one has been published.
func (p *Port) Current() (Geometry, bool) {
	if p.current == nil {
		return Geometry{}, false
	}
	return *p.current, true
}

// WhenReady runs f with the current geometry now if there is one, otherwise
// queues it for the next Publish. Callbacks registered from inside a drain
// are queued as well.
func (p *Port) WhenReady(f func(Geometry)) {
	if p.current != nil && !p.draining {
		f(*p.current)
		return
	}
	p.pending = append(p.pending, f)
}

// Publish replaces the current geometry and drains callbacks queued so far in
// registration order. Callbacks queued while draining wait for the next
// Publish.
func (p *Port) Publish(g Geometry) {
	first := p.current == nil
	p.current = &g

	queued := p.pending
	p.pending = nil
	if first {
		Logger().Info("arc: first geometry published", "radius", g.Radius, "sweep", g.SweepAngleDeg)
	} else {
		Logger().Debug("arc: geometry republished", "radius", g.Radius, "sweep", g.SweepAngleDeg)
	}
	p.draining = true
	defer func() { p.draining = false }()
	for _, f := range queued {
		f(g)
	}
	if len(queued) > 0 {
		Logger().Info("arc: drained deferred callbacks", "count", len(queued))
	}
}

// Pending returns the number of callbacks waiting for a publish.
func (p *Port) Pending() int {
	return len(p.pending)
}
