package arcslider

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arc-slider/internal/app"
	"arc-slider/internal/config"
)

// Run with -race: reloads arrive on the watcher goroutine while pointer
// events arrive on the test goroutine.
func TestArcSliderConfigReloadDuringDrag(t *testing.T) {
	s := newTestSlider(t)
	path := filepath.Join(t.TempDir(), "slider.yaml")
	require.NoError(t, os.WriteFile(path, []byte("maxProgress: 100\n"), 0o644))

	state := app.NewState()
	state.On(app.EventConfigChanged, func(data interface{}) {
		if cfg, ok := data.(config.Configuration); ok {
			s.ApplyConfig(cfg)
		}
	})

	var mu sync.Mutex
	var notified []int
	s.OnProgressChanged(func(p int) {
		mu.Lock()
		notified = append(notified, p)
		mu.Unlock()
	})

	w, err := app.NewConfigWatcher(path)
	require.NoError(t, err)
	w.SetDebounce(time.Millisecond)
	w.OnChange(state.ApplyConfig)
	require.NoError(t, w.Start())
	t.Cleanup(func() { assert.NoError(t, w.Stop()) })

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 20; i++ {
			doc := fmt.Sprintf("maxProgress: %d\nprogressWidth: %d\n", 50+50*(i%2), 4+i%3)
			if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
	}()

	drag := func() {
		s.MouseDown(mouse(150, 14))
		s.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(286, 150)}})
		s.DragEnd()
		_ = s.draw(300, 200)
	}
loop:
	for {
		select {
		case <-done:
			break loop
		default:
			drag()
		}
	}

	_, err = w.Reload()
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return s.MaxProgress() == 100 }, 3*time.Second, 10*time.Millisecond)
	assert.False(t, s.Pressed())
	assert.LessOrEqual(t, s.Progress(), s.MaxProgress())

	mu.Lock()
	defer mu.Unlock()
	assert.NotEmpty(t, notified)
	for _, p := range notified {
		assert.True(t, p >= 0 && p <= 100, "progress %d out of range", p)
	}
}
