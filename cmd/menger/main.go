package main

import (
	"flag"
	"log"

	"github.com/Carmen-Shannon/menger-go/common"
	"github.com/Carmen-Shannon/menger-go/engine"
	"github.com/Carmen-Shannon/menger-go/engine/config"
	"github.com/Carmen-Shannon/menger-go/engine/interaction"
	"github.com/Carmen-Shannon/menger-go/engine/renderer"
	"github.com/Carmen-Shannon/menger-go/engine/scene"
	"github.com/Carmen-Shannon/menger-go/engine/window"
)

// spinSpeedStep is the per-keypress change the left and right arrow keys
// apply to the Y spin speed. Spin advances by speed/200 radians per tick, so
// one step changes the per-tick angle by 0.05 radians.
const spinSpeedStep = 10.0

func main() {
	configPath := flag.String("config", "menger.toml", "path to the TOML settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Menger] failed to load settings: %v", err)
	}

	w := window.NewWindow(
		window.WithTitle(settings.Window.Title),
		window.WithWidth(settings.Window.Width),
		window.WithHeight(settings.Window.Height),
	)

	eng := engine.NewEngine(
		engine.WithProfiling(settings.Render.Profiling),
		engine.WithTickRate(float64(settings.Render.TickRate)),
		engine.WithWindow(w),
	)

	r := renderer.NewRenderer(renderer.BackendTypeWGPU, w,
		renderer.WithPresentMode(presentMode(settings.Render.VSync)),
		renderer.WithMSAA(msaaSampleCount(settings.Render.MSAA)),
	)

	ctrl := interaction.NewController(
		interaction.WithDragSensitivity(settings.Input.DragSensitivity),
		interaction.WithMaxIterations(settings.Carpet.MaxIterations),
		interaction.WithIterations(settings.Carpet.Iterations),
		interaction.WithSpinSpeed(settings.Carpet.SpinSpeedX, settings.Carpet.SpinSpeedY, settings.Carpet.SpinSpeedZ),
	)

	sceneOptions := []scene.SceneBuilderOption{
		scene.WithActive(true),
		scene.WithShowHUD(settings.Render.ShowHUD),
		scene.WithProfiler(eng.Profiler()),
		scene.WithScreenSize(w.Width(), w.Height()),
	}
	if settings.Render.Workers > 0 {
		sceneOptions = append(sceneOptions, scene.WithComposeWorkers(settings.Render.Workers))
	}

	sc := scene.NewScene("menger", r, ctrl, sceneOptions...)
	eng.AddScene(0, sc)

	bindInput(w, sc, ctrl)

	watcher, err := config.Watch(*configPath)
	if err != nil {
		log.Printf("[Menger] live settings reload unavailable: %v", err)
	} else {
		defer watcher.Close()
		eng.SetTickCallback(func(_ float32) {
			select {
			case updated := <-watcher.Changes():
				sc.ApplySettings(updated)
				eng.SetTickRate(float64(updated.Render.TickRate))
				r.SetPresentMode(presentMode(updated.Render.VSync))
			default:
			}
		})
	}

	log.Printf("[Menger] starting at depth %d (%d cubes); drag to rotate, scroll to zoom", sc.Iterations(), sc.CubeCount())
	eng.Run()
}

// bindInput routes window events into the interaction controller and wires
// the keyboard shortcuts: Escape quits, R resets the view, H toggles the
// HUD, Space pauses the spin, Up/Down step the recursion depth, Left/Right
// slow or speed the Y spin, and a digit key jumps straight to that depth.
func bindInput(w window.Window, sc scene.Scene, ctrl interaction.Controller) {
	w.SetLeftMouseDownCallback(func(x, y int32) { ctrl.PointerDown(x, y) })
	w.SetLeftMouseUpCallback(func(_, _ int32) { ctrl.PointerUp() })
	w.SetMouseMoveCallback(func(x, y int32) { ctrl.PointerMove(x, y) })
	w.SetCursorLeaveCallback(ctrl.PointerLeave)
	w.SetScrollCallback(ctrl.Zoom)

	var pausedSpin [3]float32
	spinPaused := false

	w.SetKeyDownCallback(func(keyCode uint32) {
		switch {
		case keyCode == common.KeyEsc:
			if err := w.Close(); err != nil {
				log.Printf("[Menger] window close failed: %v", err)
			}
		case keyCode == common.KeyR:
			ctrl.ResetView()
		case keyCode == common.KeyH:
			sc.SetShowHUD(!sc.ShowHUD())
		case keyCode == common.KeySpace:
			if spinPaused {
				ctrl.SetSpinSpeed(pausedSpin[0], pausedSpin[1], pausedSpin[2])
			} else {
				x, y, z := ctrl.SpinSpeed()
				pausedSpin = [3]float32{x, y, z}
				ctrl.SetSpinSpeed(0, 0, 0)
			}
			spinPaused = !spinPaused
		case keyCode == common.KeyUp:
			ctrl.AdjustIterations(1)
		case keyCode == common.KeyDown:
			ctrl.AdjustIterations(-1)
		case keyCode == common.KeyLeft:
			_, y, _ := ctrl.SpinSpeed()
			ctrl.SetSpinSpeedY(y - spinSpeedStep)
		case keyCode == common.KeyRight:
			_, y, _ := ctrl.SpinSpeed()
			ctrl.SetSpinSpeedY(y + spinSpeedStep)
		case keyCode >= common.Key1 && keyCode <= common.Key9:
			ctrl.SetIterations(int(keyCode - common.Key0))
		}
	})
}

// presentMode maps the vsync setting onto a surface present mode.
func presentMode(vsync bool) renderer.PresentMode {
	if vsync {
		return renderer.PresentModeVSync
	}
	return renderer.PresentModeUncapped
}

// msaaSampleCount maps the settings value onto a supported sample count,
// falling back to 4x for unsupported values.
func msaaSampleCount(samples int) renderer.MSAASampleCount {
	switch samples {
	case 1:
		return renderer.MSAAOff
	case 8:
		return renderer.MSAA8x
	case 16:
		return renderer.MSAA16x
	default:
		return renderer.MSAA4x
	}
}
