// Package main provides the arc slider demo application.
package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"arc-slider/internal/app"
	"arc-slider/internal/config"
	"arc-slider/internal/version"
	"arc-slider/pkg/colorutil"
	"arc-slider/ui/arcslider"
	"arc-slider/ui/prefs"
)

const (
	appID    = "io.github.arcslider.demo"
	appTitle = "Arc Slider"
)

var rainbow = []color.Color{
	color.NRGBA{R: 0xE5, G: 0x39, B: 0x35, A: 0xFF},
	color.NRGBA{R: 0xFD, G: 0xD8, B: 0x35, A: 0xFF},
	color.NRGBA{R: 0x43, G: 0xA0, B: 0x47, A: 0xFF},
	colorutil.ProgressBlue,
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.String())

	appState := app.NewState()
	appPrefs := prefs.Load()

	// Command line argument wins over the remembered config path.
	configPath := appPrefs.String(prefs.KeyConfigPath)
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	if configPath != "" {
		if err := appState.LoadConfig(configPath); err != nil {
			log.Printf("Config: %v", err)
		} else {
			appPrefs.SetString(prefs.KeyConfigPath, configPath)
		}
	}

	cfg := appState.Config()
	if appState.ConfigPath == "" {
		cfg.Progress = appPrefs.Int(prefs.KeyLastProgress, cfg.Progress)
		cfg.Enabled = appPrefs.Bool(prefs.KeyEnabled, cfg.Enabled)
		appState.ApplyConfig(cfg)
		appState.SetProgress(cfg.Progress)
	}

	a := fyneapp.NewWithID(appID)
	a.Settings().SetTheme(&app.ArcSliderTheme{})
	w := a.NewWindow(appTitle)

	slider := arcslider.NewArcSlider(cfg)
	valueLabel := widget.NewLabel(progressText(slider.Progress(), slider.MaxProgress()))
	statusLabel := widget.NewLabel("")

	slider.OnProgressChanged(func(progress int) {
		log.Printf("SeekBar: value is %d", progress)
		appState.SetProgress(progress)
	})
	slider.OnStartTrackingTouch(func(progress int) {
		statusLabel.SetText("Tracking")
	})
	slider.OnStopTrackingTouch(func(progress int) {
		statusLabel.SetText("")
		appPrefs.SetInt(prefs.KeyLastProgress, progress)
	})

	wireState(appState, appPrefs, slider, valueLabel, statusLabel)

	enabled := widget.NewCheck("Enabled", func(on bool) {
		if on {
			slider.Enable()
		} else {
			slider.Disable()
		}
		appPrefs.SetBool(prefs.KeyEnabled, on)
	})
	enabled.SetChecked(!slider.Disabled())

	rounded := widget.NewCheck("Rounded edges", slider.SetRoundedEdges)
	rounded.SetChecked(cfg.RoundedEdges)

	buttons := container.NewHBox(
		enabled,
		rounded,
		widget.NewButton("Rainbow", func() { slider.SetProgressGradient(rainbow...) }),
		widget.NewButton("Solid", func() { slider.SetProgressGradient() }),
		widget.NewButton("Reset", func() { slider.SetProgress(0) }),
		widget.NewButton("Save config", func() {
			path := appState.ConfigPath
			if path == "" {
				path = defaultConfigPath()
			}
			if err := appState.SaveConfig(path); err != nil {
				log.Printf("Config: %v", err)
				appState.Emit(app.EventConfigError, err)
			}
		}),
	)

	if path := appState.ConfigPath; path != "" {
		watcher, err := app.NewConfigWatcher(path)
		if err != nil {
			log.Printf("Config: %v", err)
		} else {
			watcher.OnChange(appState.ApplyConfig)
			watcher.OnError(func(err error) { appState.Emit(app.EventConfigError, err) })
			if err := watcher.Start(); err != nil {
				log.Printf("Config: %v", err)
			} else {
				defer watcher.Stop()
			}
		}
	}

	w.SetContent(container.NewBorder(nil, container.NewVBox(valueLabel, statusLabel, buttons), nil, nil, slider))
	w.Resize(fyne.NewSize(
		float32(appPrefs.FloatWithFallback(prefs.KeyWindowWidth, 420)),
		float32(appPrefs.FloatWithFallback(prefs.KeyWindowHeight, 320)),
	))
	w.SetOnClosed(func() {
		size := w.Canvas().Size()
		appPrefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
		appPrefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
		appPrefs.SetInt(prefs.KeyLastProgress, slider.Progress())
		if err := appPrefs.Save(); err != nil {
			log.Printf("Prefs: %v", err)
		}
	})
	w.ShowAndRun()
}

// wireState connects application events to the widgets that show them.
// Payloads of an unexpected type are ignored.
func wireState(appState *app.State, appPrefs *prefs.Prefs, slider *arcslider.ArcSlider, valueLabel, statusLabel *widget.Label) {
	appState.On(app.EventProgressChanged, func(data interface{}) {
		if progress, ok := data.(int); ok {
			valueLabel.SetText(progressText(progress, appState.Config().MaxProgress))
		}
	})
	// Reloads arrive on the config watcher's goroutine; ArcSlider serialises
	// them with pointer handling.
	appState.On(app.EventConfigChanged, func(data interface{}) {
		if cfg, ok := data.(config.Configuration); ok {
			slider.ApplyConfig(cfg)
			valueLabel.SetText(progressText(slider.Progress(), slider.MaxProgress()))
		}
	})
	appState.On(app.EventConfigError, func(data interface{}) {
		if err, ok := data.(error); ok {
			statusLabel.SetText(err.Error())
		}
	})
	appState.On(app.EventConfigSaved, func(data interface{}) {
		if path, ok := data.(string); ok {
			log.Printf("Config: saved %s", path)
			statusLabel.SetText("Saved " + path)
			appPrefs.SetString(prefs.KeyConfigPath, path)
		}
	})
}

// defaultConfigPath places a saved style next to the preferences file.
func defaultConfigPath() string {
	return filepath.Join(filepath.Dir(prefs.DefaultPath()), "slider.yaml")
}

func progressText(progress, maxProgress int) string {
	return fmt.Sprintf("%d / %d", progress, maxProgress)
}
