package arc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestForwardEnds(t *testing.T) {
	g := NewGeometry(0, 0, 200, 60)

	sweep, thumb := Forward(g, 0, 100)
	assert.InDelta(t, 0, sweep, 0.01)
	// The Epsilon floor keeps the thumb a hair inside the left end.
	assert.InDelta(t, 0, thumb.X, 0.05)
	assert.InDelta(t, 60, thumb.Y, 0.05)

	sweep, thumb = Forward(g, 100, 100)
	assert.InDelta(t, g.SweepAngleDeg, sweep, 1e-9)
	assert.InDelta(t, 200, thumb.X, 1e-6)
	assert.InDelta(t, 60, thumb.Y, 1e-6)

	_, thumb = Forward(g, 50, 100)
	assert.InDelta(t, 100, thumb.X, 1e-9)
	assert.InDelta(t, 0, thumb.Y, 1e-9)
}

func TestForwardThumbOnCircle(t *testing.T) {
	g := NewGeometry(6, 6, 280, 90)
	for p := 0; p <= 40; p++ {
		_, thumb := Forward(g, p, 40)
		d := thumb.Distance(g.Center())
		if !scalar.EqualWithinAbs(d, g.Radius, 1e-9) {
			t.Errorf("progress %d: thumb %v is %v from center, want %v", p, thumb, d, g.Radius)
		}
	}
}

func TestProgressSweepZeroMax(t *testing.T) {
	g := NewGeometry(0, 0, 200, 60)
	sweep := ProgressSweep(g, 0, 0)
	assert.Equal(t, Epsilon, sweep)

	deg, thumb := Forward(g, 0, 0)
	assert.False(t, math.IsNaN(deg))
	assert.Greater(t, deg, 0.0)
	assert.True(t, thumb.IsFinite())
}

func TestInverseExactThumb(t *testing.T) {
	g := NewGeometry(0, 0, 200, 60)
	_, thumb := Forward(g, 50, 100)
	p, ok := Inverse(g, thumb.X, thumb.Y, 12, 100)
	require.True(t, ok)
	assert.Equal(t, 50, p)
}

func TestInverseRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name                  string
		dx, dy, width, height float64
		maxProgress           int
	}{
		{"default", 0, 0, 200, 60, 100},
		{"offset", 14, 14, 272, 136, 100},
		{"flat", 10, 10, 400, 20, 1000},
		{"coarse", 4, 4, 150, 40, 3},
		{"single step", 2, 2, 120, 30, 1},
	} {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGeometry(tt.dx, tt.dy, tt.width, tt.height)
			for p := 0; p <= tt.maxProgress; p++ {
				_, thumb := Forward(g, p, tt.maxProgress)
				got, ok := Inverse(g, thumb.X, thumb.Y, 1, tt.maxProgress)
				if !ok {
					t.Fatalf("progress %d: thumb %v not hit", p, thumb)
				}
				if d := got - p; d < -1 || d > 1 {
					t.Errorf("progress %d: round trip gave %d", p, got)
				}
			}
		})
	}
}

func TestInverseReachesEnds(t *testing.T) {
	g := NewGeometry(0, 0, 200, 60)
	_, start := Forward(g, 0, 100)
	_, end := Forward(g, 100, 100)

	p, ok := Inverse(g, start.X, start.Y, 2, 100)
	require.True(t, ok)
	assert.Equal(t, 0, p)

	p, ok = Inverse(g, end.X, end.Y, 2, 100)
	require.True(t, ok)
	assert.Equal(t, 100, p)
}

func TestInverseRejects(t *testing.T) {
	g := NewGeometry(0, 0, 200, 60)

	_, ok := Inverse(g, 100, 500, 12, 100)
	assert.False(t, ok, "below the arc")

	_, ok = Inverse(g, 100, 40, 12, 100)
	assert.False(t, ok, "inside the circle, away from the band")

	_, ok = Inverse(g, 100, -20, 12, 100)
	assert.False(t, ok, "above the band")

	_, ok = Inverse(g, 100, -10, 12, 100)
	assert.True(t, ok, "within tolerance above the band")
}

func TestInverseClampsOutsideChord(t *testing.T) {
	g := NewGeometry(0, 0, 200, 100)
	// On the circle but past the right end of the half-circle arc's chord.
	p, ok := Inverse(g, 200+1e-9, 100, 1, 100)
	require.True(t, ok)
	assert.Equal(t, 100, p)
}

func TestInverseNeverPanics(t *testing.T) {
	geometries := []Geometry{
		NewGeometry(0, 0, 200, 60),
		NewGeometry(0, 0, 200, 0),
		NewGeometry(0, 0, 0, 0),
		NewGeometry(5, 5, 1, 1e6),
	}
	coords := []float64{
		0, -1, 1, 1e-300, -1e300, 1e300, math.MaxFloat64, -math.MaxFloat64,
		math.Inf(1), math.Inf(-1), math.NaN(),
	}
	for _, g := range geometries {
		for _, x := range coords {
			for _, y := range coords {
				for _, maxProgress := range []int{0, 1, 100} {
					assert.NotPanics(t, func() {
						p, ok := Inverse(g, x, y, 1e6, maxProgress)
						if ok {
							assert.GreaterOrEqual(t, p, 0)
							assert.LessOrEqual(t, p, maxProgress)
						}
					})
				}
			}
		}
	}
}

func TestSnapshotMatchesForward(t *testing.T) {
	g := NewGeometry(3, 3, 250, 70)
	s := NewProgressState(37, 80)
	f := Snapshot(g, s)

	sweep, thumb := Forward(g, 37, 80)
	assert.Equal(t, sweep, f.ProgressSweepDeg)
	assert.Equal(t, thumb, f.Thumb)
	assert.Equal(t, g, f.Geometry)
	assert.Equal(t, s, f.State)
}
