package arc

import "arc-slider/pkg/geometry"

// DefaultMaxProgress is the upper bound used when none is configured.
const DefaultMaxProgress = 100

// ProgressState is the slider's scalar value and its upper bound.
// Progress always lies in [0, MaxProgress].
type ProgressState struct {
	Progress    int
	MaxProgress int
}

// NewProgressState returns a state with both fields clamped.
func NewProgressState(progress, maxProgress int) ProgressState {
	maxProgress = max(maxProgress, 0)
	return ProgressState{
		Progress:    geometry.Clamp(0, progress, maxProgress),
		MaxProgress: maxProgress,
	}
}

// Fraction returns Progress/MaxProgress, or Epsilon when MaxProgress is zero.
func (s ProgressState) Fraction() float64 {
	if s.MaxProgress == 0 {
		return Epsilon
	}
	return float64(s.Progress) / float64(s.MaxProgress)
}

// Notification is raised by a progress update. The caller delivers it.
type Notification struct {
	Progress int
}

// UpdateProgress returns the state with progress clamped into range and the
// change notification to deliver. Every assignment notifies, even when the
// clamped value equals the current one.
func UpdateProgress(s ProgressState, progress int) (ProgressState, *Notification) {
	s.Progress = geometry.Clamp(0, progress, s.MaxProgress)
	return s, &Notification{Progress: s.Progress}
}

// UpdateMaxProgress changes the upper bound, re-clamping progress. A
// notification is returned only when progress had to move.
func UpdateMaxProgress(s ProgressState, maxProgress int) (ProgressState, *Notification) {
	next := NewProgressState(s.Progress, maxProgress)
	if next.Progress == s.Progress {
		return next, nil
	}
	return next, &Notification{Progress: next.Progress}
}
