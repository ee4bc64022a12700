// package interaction owns the pointer, wheel, and settings state of the
// carpet viewer and turns raw input events into view state the frame loop can
// snapshot. Input callbacks arrive on the main thread while the frame loop
// reads from an engine goroutine, so every method is mutex-guarded.
package interaction

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/menger-go/common"
	"github.com/Carmen-Shannon/menger-go/engine/transform"
)

const (
	// ZoomMin and ZoomMax bound the uniform zoom scale. Clamping assigns the
	// bound directly, so the terminal values are exact.
	ZoomMin = 0.1
	ZoomMax = 10.0

	// ZoomStep is the scale change applied per wheel event.
	ZoomStep = 0.1

	// SpinDivisor converts a spin speed setting into the per-tick angle
	// increment: angle += speed / SpinDivisor.
	SpinDivisor = 200.0

	// DefaultDragSensitivity is radians of rotation per pixel of pointer drag.
	DefaultDragSensitivity = 0.01

	// DefaultMaxIterations caps the recursion depth. Each extra level
	// multiplies the cube count by 8.
	DefaultMaxIterations = 5
)

type controllerImpl struct {
	mu *sync.Mutex

	dragRotation mgl32.Mat4

	spinAngleX, spinAngleY, spinAngleZ float32
	spinSpeedX, spinSpeedY, spinSpeedZ float32

	zoomScale  float32
	iterations int

	dragSensitivity float32
	maxIterations   int

	dragging     bool
	lastX, lastY int32
}

// Controller defines the interface for the viewer's interaction state.
// It accumulates pointer drags into a rotation matrix, steps the zoom scale
// on wheel events, holds the spin speed and iteration settings, and hands the
// frame loop an immutable snapshot once per tick.
type Controller interface {
	// PointerDown begins a drag at the given window position.
	// While a drag is already active this only moves the reference point.
	//
	// Parameters:
	//   - x, y: pointer position in window pixels
	PointerDown(x, y int32)

	// PointerMove accumulates a drag rotation from the movement since the
	// last pointer event. Ignored unless a drag is active.
	//
	// Parameters:
	//   - x, y: pointer position in window pixels
	PointerMove(x, y int32)

	// PointerUp ends the active drag. The accumulated rotation is kept.
	PointerUp()

	// PointerLeave ends the active drag when the pointer exits the window,
	// so a release outside the window cannot leave a stuck drag.
	PointerLeave()

	// Dragging reports whether a drag is active.
	//
	// Returns:
	//   - bool: true between PointerDown and PointerUp/PointerLeave
	Dragging() bool

	// Zoom steps the zoom scale by one fixed increment per wheel event.
	// Positive delta zooms in, negative zooms out; the magnitude of delta is
	// ignored. The result is clamped to [ZoomMin, ZoomMax].
	//
	// Parameters:
	//   - delta: wheel offset; only the sign is used
	Zoom(delta float32)

	// ZoomScale returns the current uniform zoom scale.
	//
	// Returns:
	//   - float32: the zoom scale in [ZoomMin, ZoomMax]
	ZoomScale() float32

	// SetSpinSpeed sets all three per-axis spin speeds at once.
	//
	// Parameters:
	//   - x, y, z: spin speed settings (angle advances by speed/SpinDivisor per tick)
	SetSpinSpeed(x, y, z float32)

	// SetSpinSpeedX sets the X-axis spin speed.
	//
	// Parameters:
	//   - v: the spin speed setting
	SetSpinSpeedX(v float32)

	// SetSpinSpeedY sets the Y-axis spin speed.
	//
	// Parameters:
	//   - v: the spin speed setting
	SetSpinSpeedY(v float32)

	// SetSpinSpeedZ sets the Z-axis spin speed.
	//
	// Parameters:
	//   - v: the spin speed setting
	SetSpinSpeedZ(v float32)

	// SpinSpeed returns the current per-axis spin speeds.
	//
	// Returns:
	//   - x, y, z: the spin speed settings
	SpinSpeed() (x, y, z float32)

	// SetIterations sets the recursion depth, clamped to [1, max].
	//
	// Parameters:
	//   - n: the requested depth
	SetIterations(n int)

	// AdjustIterations changes the recursion depth by a relative amount,
	// clamped to [1, max].
	//
	// Parameters:
	//   - delta: the depth change (typically +1 or -1)
	AdjustIterations(delta int)

	// Iterations returns the current recursion depth.
	//
	// Returns:
	//   - int: the depth in [1, max]
	Iterations() int

	// MaxIterations returns the depth ceiling.
	//
	// Returns:
	//   - int: the maximum allowed depth
	MaxIterations() int

	// AdvanceSpin advances each spin angle by its speed/SpinDivisor.
	// Called exactly once per tick by the frame loop; the increment is fixed
	// per tick, not scaled by elapsed time.
	AdvanceSpin()

	// ResetView restores the rest view: identity drag rotation, zoom 1,
	// spin angles 0. Spin speeds and iterations are kept.
	ResetView()

	// DragSensitivity returns the drag sensitivity in radians per pixel.
	//
	// Returns:
	//   - float32: the sensitivity
	DragSensitivity() float32

	// Snapshot returns an immutable copy of the view state for one frame's
	// compose phase.
	//
	// Returns:
	//   - transform.Snapshot: the current drag rotation, spin angles, and zoom
	Snapshot() transform.Snapshot
}

var _ Controller = &controllerImpl{}

// NewController creates an interaction controller at the rest view: identity
// drag rotation, zoom 1, spin speeds 0, iteration depth 1.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerOption) Controller {
	c := &controllerImpl{
		mu:              &sync.Mutex{},
		dragRotation:    mgl32.Ident4(),
		zoomScale:       1.0,
		iterations:      1,
		dragSensitivity: DefaultDragSensitivity,
		maxIterations:   DefaultMaxIterations,
	}
	for _, option := range options {
		option(c)
	}
	c.iterations = common.Clamp(c.iterations, 1, c.maxIterations)
	c.zoomScale = common.Clamp(c.zoomScale, ZoomMin, ZoomMax)
	return c
}

func (c *controllerImpl) PointerDown(x, y int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragging = true
	c.lastX, c.lastY = x, y
}

func (c *controllerImpl) PointerMove(x, y int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dragging {
		return
	}
	dx := float32(x - c.lastX)
	dy := float32(y - c.lastY)
	// Left-multiply so the newest drag increment acts in screen space on the
	// already-rotated carpet.
	c.dragRotation = transform.Drag(dx, dy, c.dragSensitivity).Mul4(c.dragRotation)
	c.lastX, c.lastY = x, y
}

func (c *controllerImpl) PointerUp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragging = false
}

func (c *controllerImpl) PointerLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragging = false
}

func (c *controllerImpl) Dragging() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dragging
}

func (c *controllerImpl) Zoom(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case delta > 0:
		c.zoomScale += ZoomStep
	case delta < 0:
		c.zoomScale -= ZoomStep
	default:
		return
	}
	c.zoomScale = common.Clamp(c.zoomScale, ZoomMin, ZoomMax)
}

func (c *controllerImpl) ZoomScale() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoomScale
}

func (c *controllerImpl) SetSpinSpeed(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spinSpeedX, c.spinSpeedY, c.spinSpeedZ = x, y, z
}

func (c *controllerImpl) SetSpinSpeedX(v float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spinSpeedX = v
}

func (c *controllerImpl) SetSpinSpeedY(v float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spinSpeedY = v
}

func (c *controllerImpl) SetSpinSpeedZ(v float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spinSpeedZ = v
}

func (c *controllerImpl) SpinSpeed() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spinSpeedX, c.spinSpeedY, c.spinSpeedZ
}

func (c *controllerImpl) SetIterations(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.iterations = common.Clamp(n, 1, c.maxIterations)
}

func (c *controllerImpl) AdjustIterations(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.iterations = common.Clamp(c.iterations+delta, 1, c.maxIterations)
}

func (c *controllerImpl) Iterations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.iterations
}

func (c *controllerImpl) MaxIterations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxIterations
}

func (c *controllerImpl) AdvanceSpin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spinAngleX += c.spinSpeedX / SpinDivisor
	c.spinAngleY += c.spinSpeedY / SpinDivisor
	c.spinAngleZ += c.spinSpeedZ / SpinDivisor
}

func (c *controllerImpl) ResetView() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dragRotation = mgl32.Ident4()
	c.spinAngleX, c.spinAngleY, c.spinAngleZ = 0, 0, 0
	c.zoomScale = 1.0
}

func (c *controllerImpl) DragSensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dragSensitivity
}

func (c *controllerImpl) Snapshot() transform.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return transform.Snapshot{
		DragRotation: c.dragRotation,
		SpinX:        c.spinAngleX,
		SpinY:        c.spinAngleY,
		SpinZ:        c.spinAngleZ,
		ZoomScale:    c.zoomScale,
	}
}
