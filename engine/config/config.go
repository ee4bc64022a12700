// package config loads and watches the viewer settings file. The TOML file
// stands in for the control-panel sliders: edit a spin speed or the iteration
// depth while the viewer runs and the change is applied at the top of the
// next tick.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the settings file the viewer looks for in its working directory.
const DefaultPath = "menger.toml"

// spinSpeedLimit bounds the per-axis spin speed settings. At the limit the
// carpet advances 5 radians per tick, which is already unwatchable.
const spinSpeedLimit = 1000.0

// Settings is the root of the viewer settings file.
type Settings struct {
	Window WindowSettings `toml:"window"`
	Render RenderSettings `toml:"render"`
	Carpet CarpetSettings `toml:"carpet"`
	Input  InputSettings  `toml:"input"`
}

// WindowSettings configures the native window. Only read at startup.
type WindowSettings struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// RenderSettings configures the frame loop and swapchain. TickRate, VSync
// and ShowHUD are live; MSAA, Profiling and Workers are only read at startup.
type RenderSettings struct {
	TickRate  int  `toml:"tick_rate"`
	VSync     bool `toml:"vsync"`
	MSAA      int  `toml:"msaa"`
	Profiling bool `toml:"profiling"`
	ShowHUD   bool `toml:"show_hud"`

	// Workers is the number of goroutines composing cube matrices each tick.
	// Zero selects one worker per CPU core minus one.
	Workers int `toml:"workers"`
}

// CarpetSettings configures the fractal itself. These fields are live: the
// watcher delivers edits to the running scene.
type CarpetSettings struct {
	Iterations    int     `toml:"iterations"`
	MaxIterations int     `toml:"max_iterations"`
	SpinSpeedX    float32 `toml:"spin_speed_x"`
	SpinSpeedY    float32 `toml:"spin_speed_y"`
	SpinSpeedZ    float32 `toml:"spin_speed_z"`
}

// InputSettings configures pointer handling. Only read at startup.
type InputSettings struct {
	DragSensitivity float32 `toml:"drag_sensitivity"`
}

// Default returns the settings used when no file exists: a 1280x720 window,
// 60 ticks per second with vsync, 4x MSAA, depth 3, and a gentle Y spin.
//
// Returns:
//   - Settings: the default settings
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Title:  "Menger Carpet",
			Width:  1280,
			Height: 720,
		},
		Render: RenderSettings{
			TickRate:  60,
			VSync:     true,
			MSAA:      4,
			Profiling: false,
			ShowHUD:   true,
			Workers:   0,
		},
		Carpet: CarpetSettings{
			Iterations:    3,
			MaxIterations: 5,
			SpinSpeedX:    0,
			SpinSpeedY:    20,
			SpinSpeedZ:    0,
		},
		Input: InputSettings{
			DragSensitivity: 0.01,
		},
	}
}

// Load reads settings from a TOML file, layered over Default. A missing file
// is not an error: the defaults are returned so the viewer runs without any
// configuration. A file that exists but fails to parse is an error, since
// silently ignoring a typo in a settings file is worse than refusing to start.
//
// Parameters:
//   - path: the settings file path
//
// Returns:
//   - Settings: the loaded (or default) settings, normalized into valid ranges
//   - error: parse or read failure
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("[Config] %s not found, using defaults", path)
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	s.normalize()
	return s, nil
}

// normalize clamps every field into its valid range, logging each repair.
// The viewer never refuses to run over an out-of-range value.
func (s *Settings) normalize() {
	if s.Window.Width < 160 {
		log.Printf("[Config] window.width %d below minimum, using 160", s.Window.Width)
		s.Window.Width = 160
	}
	if s.Window.Height < 120 {
		log.Printf("[Config] window.height %d below minimum, using 120", s.Window.Height)
		s.Window.Height = 120
	}
	if s.Window.Title == "" {
		s.Window.Title = Default().Window.Title
	}

	if s.Render.TickRate < 1 || s.Render.TickRate > 240 {
		log.Printf("[Config] render.tick_rate %d out of range [1, 240], using 60", s.Render.TickRate)
		s.Render.TickRate = 60
	}
	switch s.Render.MSAA {
	case 1, 4, 8, 16:
	default:
		log.Printf("[Config] render.msaa %d is not one of 1/4/8/16, using 4", s.Render.MSAA)
		s.Render.MSAA = 4
	}
	if s.Render.Workers < 0 {
		log.Printf("[Config] render.workers %d is negative, using automatic worker count", s.Render.Workers)
		s.Render.Workers = 0
	}

	if s.Carpet.MaxIterations < 1 {
		log.Printf("[Config] carpet.max_iterations %d below minimum, using 1", s.Carpet.MaxIterations)
		s.Carpet.MaxIterations = 1
	}
	if s.Carpet.Iterations < 1 {
		log.Printf("[Config] carpet.iterations %d below minimum, using 1", s.Carpet.Iterations)
		s.Carpet.Iterations = 1
	}
	if s.Carpet.Iterations > s.Carpet.MaxIterations {
		log.Printf("[Config] carpet.iterations %d above max_iterations, using %d", s.Carpet.Iterations, s.Carpet.MaxIterations)
		s.Carpet.Iterations = s.Carpet.MaxIterations
	}
	s.Carpet.SpinSpeedX = clampSpin("spin_speed_x", s.Carpet.SpinSpeedX)
	s.Carpet.SpinSpeedY = clampSpin("spin_speed_y", s.Carpet.SpinSpeedY)
	s.Carpet.SpinSpeedZ = clampSpin("spin_speed_z", s.Carpet.SpinSpeedZ)

	if s.Input.DragSensitivity <= 0 || s.Input.DragSensitivity > 1 {
		log.Printf("[Config] input.drag_sensitivity %v out of range (0, 1], using 0.01", s.Input.DragSensitivity)
		s.Input.DragSensitivity = 0.01
	}
}

func clampSpin(name string, v float32) float32 {
	if v > spinSpeedLimit {
		log.Printf("[Config] carpet.%s %v above limit, using %v", name, v, float32(spinSpeedLimit))
		return spinSpeedLimit
	}
	if v < -spinSpeedLimit {
		log.Printf("[Config] carpet.%s %v below limit, using %v", name, v, float32(-spinSpeedLimit))
		return -spinSpeedLimit
	}
	return v
}
