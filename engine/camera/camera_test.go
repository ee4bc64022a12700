package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	x, y, z := c.Position()
	assert.Equal(t, [3]float32{0, 0, 3.2}, [3]float32{x, y, z})
	tx, ty, tz := c.Target()
	assert.Equal(t, [3]float32{0, 0, 0}, [3]float32{tx, ty, tz})
	assert.InDelta(t, mgl32.DegToRad(45.0), c.Fov(), 1e-6)
	require.NotNil(t, c.BindGroupProvider())
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	c := NewCamera(WithPosition(0, 0, 5), WithTarget(0, 0, 0))

	// The target projects onto the view-space -Z axis at distance 5.
	v := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0.0, float64(v.X()), 1e-6)
	assert.InDelta(t, 0.0, float64(v.Y()), 1e-6)
	assert.InDelta(t, -5.0, float64(v.Z()), 1e-6)
}

func TestProjectionUsesZeroToOneDepth(t *testing.T) {
	c := NewCamera(WithPosition(0, 0, 5), WithNear(1), WithFar(10))
	p := c.ProjectionMatrix()

	// A point on the near plane lands at NDC depth 0, far plane at depth 1.
	nearClip := p.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	assert.InDelta(t, 0.0, float64(nearClip.Z()/nearClip.W()), 1e-6)
	farClip := p.Mul4x1(mgl32.Vec4{0, 0, -10, 1})
	assert.InDelta(t, 1.0, float64(farClip.Z()/farClip.W()), 1e-6)
}

func TestSettersRecomputeMatrices(t *testing.T) {
	c := NewCamera()
	before := c.ViewProjectionMatrix()

	c.SetAspect(16.0 / 9.0)
	afterAspect := c.ViewProjectionMatrix()
	assert.NotEqual(t, before, afterAspect)

	c.SetPosition(1, 2, 6)
	afterMove := c.ViewProjectionMatrix()
	assert.NotEqual(t, afterAspect, afterMove)

	want := c.ProjectionMatrix().Mul4(c.ViewMatrix())
	assert.Equal(t, want, c.ViewProjectionMatrix())
}

func TestProviderLabelsAreUnique(t *testing.T) {
	a := NewCamera()
	b := NewCamera()
	assert.NotEqual(t, a.BindGroupProvider().Label(), b.BindGroupProvider().Label())
}
