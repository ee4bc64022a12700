package interaction

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/menger-go/engine/transform"
)

func TestZoomStepsAndClampsHigh(t *testing.T) {
	c := NewController()
	for i := 0; i < 200; i++ {
		c.Zoom(1)
	}
	// Clamping assigns the bound, so the terminal value is exact.
	assert.Equal(t, float32(ZoomMax), c.ZoomScale())
}

func TestZoomStepsAndClampsLow(t *testing.T) {
	c := NewController()
	for i := 0; i < 200; i++ {
		c.Zoom(-1)
	}
	assert.Equal(t, float32(ZoomMin), c.ZoomScale())
}

func TestZoomUsesSignOnly(t *testing.T) {
	up := NewController()
	up.Zoom(0.001)
	big := NewController()
	big.Zoom(5000)
	assert.Equal(t, up.ZoomScale(), big.ZoomScale())

	none := NewController()
	none.Zoom(0)
	assert.Equal(t, float32(1.0), none.ZoomScale())
}

func TestZoomRoundTripStaysNearStart(t *testing.T) {
	c := NewController()
	for i := 0; i < 7; i++ {
		c.Zoom(1)
	}
	for i := 0; i < 7; i++ {
		c.Zoom(-1)
	}
	assert.InDelta(t, 1.0, float64(c.ZoomScale()), 1e-5)
}

func TestAdvanceSpinIncrement(t *testing.T) {
	c := NewController()
	c.SetSpinSpeed(200, 100, -50)
	c.AdvanceSpin()

	snap := c.Snapshot()
	// speed/SpinDivisor per tick: 200 -> +1.0 exactly.
	assert.Equal(t, float32(1.0), snap.SpinX)
	assert.Equal(t, float32(0.5), snap.SpinY)
	assert.Equal(t, float32(-0.25), snap.SpinZ)

	c.AdvanceSpin()
	snap = c.Snapshot()
	assert.Equal(t, float32(2.0), snap.SpinX)
}

func TestSpinSpeedPerAxisSetters(t *testing.T) {
	c := NewController()
	c.SetSpinSpeedX(10)
	c.SetSpinSpeedY(20)
	c.SetSpinSpeedZ(30)
	x, y, z := c.SpinSpeed()
	assert.Equal(t, float32(10), x)
	assert.Equal(t, float32(20), y)
	assert.Equal(t, float32(30), z)
}

func TestDragAccumulatesInOrder(t *testing.T) {
	c := NewController()
	sens := c.DragSensitivity()

	c.PointerDown(100, 100)
	c.PointerMove(110, 100)
	c.PointerMove(110, 120)

	// Each increment is left-multiplied into the accumulator.
	want := transform.Drag(0, 20, sens).Mul4(transform.Drag(10, 0, sens))
	assert.Equal(t, want, c.Snapshot().DragRotation)
}

func TestPointerMoveIgnoredWhenIdle(t *testing.T) {
	c := NewController()
	c.PointerMove(640, 480)
	assert.Equal(t, mgl32.Ident4(), c.Snapshot().DragRotation)
	assert.False(t, c.Dragging())
}

func TestPointerUpEndsDrag(t *testing.T) {
	c := NewController()
	c.PointerDown(0, 0)
	require.True(t, c.Dragging())
	c.PointerMove(10, 0)
	c.PointerUp()
	assert.False(t, c.Dragging())

	before := c.Snapshot().DragRotation
	c.PointerMove(500, 500)
	assert.Equal(t, before, c.Snapshot().DragRotation)
}

func TestPointerLeaveEndsDrag(t *testing.T) {
	c := NewController()
	c.PointerDown(0, 0)
	c.PointerLeave()
	assert.False(t, c.Dragging())

	// Movement after the pointer left the window must not rotate.
	c.PointerMove(50, 50)
	assert.Equal(t, mgl32.Ident4(), c.Snapshot().DragRotation)
}

func TestRedownResetsReference(t *testing.T) {
	c := NewController()
	c.PointerDown(0, 0)
	c.PointerMove(10, 10)
	c.PointerUp()

	after := c.Snapshot().DragRotation
	// A new drag starting far away must not produce a jump rotation.
	c.PointerDown(400, 300)
	c.PointerMove(400, 300)
	assert.Equal(t, after, c.Snapshot().DragRotation)
}

func TestIterationsClamp(t *testing.T) {
	c := NewController(WithMaxIterations(5))

	c.SetIterations(3)
	assert.Equal(t, 3, c.Iterations())

	c.SetIterations(99)
	assert.Equal(t, 5, c.Iterations())

	c.SetIterations(-2)
	assert.Equal(t, 1, c.Iterations())

	c.AdjustIterations(+10)
	assert.Equal(t, 5, c.Iterations())
	c.AdjustIterations(-1)
	assert.Equal(t, 4, c.Iterations())
}

func TestBuilderOptionsClampAfterApply(t *testing.T) {
	c := NewController(
		WithIterations(12),
		WithMaxIterations(6),
		WithZoomScale(50),
		WithSpinSpeed(1, 2, 3),
	)
	assert.Equal(t, 6, c.Iterations())
	assert.Equal(t, 6, c.MaxIterations())
	assert.Equal(t, float32(ZoomMax), c.ZoomScale())
	x, y, z := c.SpinSpeed()
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(2), y)
	assert.Equal(t, float32(3), z)
}

func TestSnapshotIsIsolated(t *testing.T) {
	c := NewController()
	c.SetSpinSpeed(200, 0, 0)
	c.AdvanceSpin()

	snap := c.Snapshot()
	c.AdvanceSpin()
	c.Zoom(1)
	c.PointerDown(0, 0)
	c.PointerMove(25, 25)

	// The earlier snapshot must not observe later mutations.
	assert.Equal(t, float32(1.0), snap.SpinX)
	assert.Equal(t, float32(1.0), snap.ZoomScale)
	assert.Equal(t, mgl32.Ident4(), snap.DragRotation)
}

func TestResetView(t *testing.T) {
	c := NewController(WithIterations(4))
	c.SetSpinSpeed(100, 100, 100)
	c.AdvanceSpin()
	c.Zoom(1)
	c.PointerDown(0, 0)
	c.PointerMove(30, 40)
	c.PointerUp()

	c.ResetView()
	snap := c.Snapshot()
	assert.Equal(t, mgl32.Ident4(), snap.DragRotation)
	assert.Equal(t, float32(1.0), snap.ZoomScale)
	assert.Zero(t, snap.SpinX)
	assert.Zero(t, snap.SpinY)
	assert.Zero(t, snap.SpinZ)

	// Settings survive a view reset.
	x, _, _ := c.SpinSpeed()
	assert.Equal(t, float32(100), x)
	assert.Equal(t, 4, c.Iterations())
}
