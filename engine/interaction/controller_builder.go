package interaction

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controllerImpl)

// WithDragSensitivity sets the drag sensitivity in radians per pixel.
//
// Parameters:
//   - sensitivity: radians of rotation per pixel of pointer movement
//
// Returns:
//   - ControllerOption: functional option to set the sensitivity
func WithDragSensitivity(sensitivity float32) ControllerOption {
	return func(c *controllerImpl) {
		if sensitivity > 0 {
			c.dragSensitivity = sensitivity
		}
	}
}

// WithMaxIterations sets the recursion depth ceiling.
//
// Parameters:
//   - n: the maximum allowed depth (minimum 1)
//
// Returns:
//   - ControllerOption: functional option to set the ceiling
func WithMaxIterations(n int) ControllerOption {
	return func(c *controllerImpl) {
		if n < 1 {
			n = 1
		}
		c.maxIterations = n
	}
}

// WithIterations sets the initial recursion depth. The value is clamped to
// [1, max] after all options are applied.
//
// Parameters:
//   - n: the initial depth
//
// Returns:
//   - ControllerOption: functional option to set the depth
func WithIterations(n int) ControllerOption {
	return func(c *controllerImpl) {
		c.iterations = n
	}
}

// WithSpinSpeed sets the initial per-axis spin speeds.
//
// Parameters:
//   - x, y, z: spin speed settings
//
// Returns:
//   - ControllerOption: functional option to set the speeds
func WithSpinSpeed(x, y, z float32) ControllerOption {
	return func(c *controllerImpl) {
		c.spinSpeedX, c.spinSpeedY, c.spinSpeedZ = x, y, z
	}
}

// WithZoomScale sets the initial zoom scale. The value is clamped to
// [ZoomMin, ZoomMax] after all options are applied.
//
// Parameters:
//   - scale: the initial zoom scale
//
// Returns:
//   - ControllerOption: functional option to set the zoom
func WithZoomScale(scale float32) ControllerOption {
	return func(c *controllerImpl) {
		c.zoomScale = scale
	}
}
