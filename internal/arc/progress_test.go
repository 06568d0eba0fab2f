package arc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arc-slider/pkg/geometry"
)

func TestUpdateProgressClamps(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   int
		want int
	}{
		{"in range", 42, 42},
		{"above max", 150, 100},
		{"below zero", -3, 0},
		{"max", 100, 100},
	} {
		t.Run(tt.name, func(t *testing.T) {
			s, n := UpdateProgress(NewProgressState(10, 100), tt.in)
			assert.Equal(t, tt.want, s.Progress)
			require.NotNil(t, n)
			assert.Equal(t, tt.want, n.Progress)
		})
	}
}

func TestUpdateMaxProgress(t *testing.T) {
	s, n := UpdateMaxProgress(NewProgressState(80, 100), 50)
	assert.Equal(t, ProgressState{Progress: 50, MaxProgress: 50}, s)
	require.NotNil(t, n)
	assert.Equal(t, 50, n.Progress)

	s, n = UpdateMaxProgress(s, 200)
	assert.Equal(t, ProgressState{Progress: 50, MaxProgress: 200}, s)
	assert.Nil(t, n)

	s, _ = UpdateMaxProgress(s, -5)
	assert.Equal(t, ProgressState{Progress: 0, MaxProgress: 0}, s)
}

func TestProgressStateFraction(t *testing.T) {
	assert.Equal(t, Epsilon, NewProgressState(0, 0).Fraction())
	assert.Equal(t, 0.25, NewProgressState(25, 100).Fraction())
}

func TestClampIdempotent(t *testing.T) {
	for _, v := range []int{-100, -1, 0, 1, 50, 99, 100, 101, 1 << 20} {
		once := geometry.Clamp(0, v, 100)
		assert.Equal(t, once, geometry.Clamp(0, once, 100))
	}
	for _, v := range []float64{-1e9, -0.5, 0, 0.5, 3, 1e9} {
		once := geometry.Clamp(Epsilon, v, 2)
		assert.Equal(t, once, geometry.Clamp(Epsilon, once, 2))
	}
}
