package scene

import (
	"github.com/Carmen-Shannon/menger-go/engine/camera"
	"github.com/Carmen-Shannon/menger-go/engine/light"
	"github.com/Carmen-Shannon/menger-go/engine/profiler"
	"github.com/Carmen-Shannon/menger-go/engine/renderer/material"
)

// SceneBuilderOption defines a functional option for configuring a scene
// during construction.
type SceneBuilderOption func(s *scene)

// WithActive sets the initial active state of the scene.
//
// Parameters:
//   - active: the initial active state
//
// Returns:
//   - SceneBuilderOption: the configured option
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithCamera replaces the default camera.
//
// Parameters:
//   - cam: the camera to use; ignored if nil
//
// Returns:
//   - SceneBuilderOption: the configured option
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *scene) {
		if cam != nil {
			s.cam = cam
		}
	}
}

// WithLight replaces the default directional light.
//
// Parameters:
//   - lit: the light to use; ignored if nil
//
// Returns:
//   - SceneBuilderOption: the configured option
func WithLight(lit light.Light) SceneBuilderOption {
	return func(s *scene) {
		if lit != nil {
			s.lit = lit
		}
	}
}

// WithMaterial replaces the default brick material. The material must carry
// diffuse and normal texture staging data.
//
// Parameters:
//   - mat: the material to use; ignored if nil
//
// Returns:
//   - SceneBuilderOption: the configured option
func WithMaterial(mat material.Material) SceneBuilderOption {
	return func(s *scene) {
		if mat != nil {
			s.mat = mat
		}
	}
}

// WithProfiler replaces the scene's own profiler, letting the scene share
// the engine's instance so the HUD shows the frame loop's FPS.
//
// Parameters:
//   - prof: the profiler to use; ignored if nil
//
// Returns:
//   - SceneBuilderOption: the configured option
func WithProfiler(prof *profiler.Profiler) SceneBuilderOption {
	return func(s *scene) {
		if prof != nil {
			s.prof = prof
		}
	}
}

// WithComposeWorkers sets the number of pool workers used for parallel model
// matrix composition. Defaults to NumCPU-1.
//
// Parameters:
//   - workers: the worker count, clamped to a minimum of 1
//
// Returns:
//   - SceneBuilderOption: the configured option
func WithComposeWorkers(workers int) SceneBuilderOption {
	return func(s *scene) {
		s.composeWorkers = max(workers, 1)
	}
}

// WithCullingDisabled sets the initial frustum culling bypass.
//
// Parameters:
//   - disabled: true to compose every cube regardless of visibility
//
// Returns:
//   - SceneBuilderOption: the configured option
func WithCullingDisabled(disabled bool) SceneBuilderOption {
	return func(s *scene) {
		s.cullingDisabled = disabled
	}
}

// WithShowHUD sets the initial HUD overlay visibility.
//
// Parameters:
//   - show: true to draw the overlay
//
// Returns:
//   - SceneBuilderOption: the configured option
func WithShowHUD(show bool) SceneBuilderOption {
	return func(s *scene) {
		s.showHUD = show
	}
}

// WithScreenSize sets the initial surface size used for the camera aspect
// ratio and HUD placement.
//
// Parameters:
//   - width: the surface width in pixels; ignored unless positive
//   - height: the surface height in pixels; ignored unless positive
//
// Returns:
//   - SceneBuilderOption: the configured option
func WithScreenSize(width, height int) SceneBuilderOption {
	return func(s *scene) {
		if width > 0 && height > 0 {
			s.screenWidth = width
			s.screenHeight = height
		}
	}
}
