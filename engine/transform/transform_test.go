package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/menger-go/engine/carpet"
)

func assertMat4InDelta(t *testing.T, want, got mgl32.Mat4, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "element %d", i)
	}
}

func assertMat3InDelta(t *testing.T, want, got mgl32.Mat3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "element %d", i)
	}
}

func TestModelIdentitySnapshot(t *testing.T) {
	p := carpet.Placement{X: 0.5, Y: -0.25, Z: 0.125, Size: 0.25}
	// With no drag, no spin, and zoom 1 the translate sandwich cancels.
	assertMat4InDelta(t, mgl32.Ident4(), Model(p, IdentitySnapshot()), 1e-6)
}

func TestModelCompositionOrder(t *testing.T) {
	p := carpet.Placement{X: 1.0 / 3.0, Y: -1.0 / 3.0, Z: 1.0 / 9.0}
	s := Snapshot{
		DragRotation: mgl32.HomogRotate3DY(0.7),
		SpinX:        0.3,
		SpinY:        -0.9,
		SpinZ:        1.5,
		ZoomScale:    2.5,
	}

	want := mgl32.Scale3D(2.5, 2.5, 2.5).
		Mul4(mgl32.HomogRotate3DY(0.7)).
		Mul4(mgl32.Translate3D(p.X, p.Y, p.Z)).
		Mul4(mgl32.HomogRotate3DX(0.3)).
		Mul4(mgl32.HomogRotate3DY(-0.9)).
		Mul4(mgl32.HomogRotate3DZ(1.5)).
		Mul4(mgl32.Translate3D(-p.X, -p.Y, -p.Z))

	// The composition must follow the documented order exactly. Any
	// reordering produces a visibly different matrix for these inputs.
	assert.Equal(t, want, Model(p, s))
}

func TestModelDeterministic(t *testing.T) {
	p := carpet.Placement{X: 0.1, Y: 0.2, Z: 0.3}
	s := Snapshot{
		DragRotation: Drag(17, -42, 0.01),
		SpinX:        1.1,
		SpinY:        2.2,
		SpinZ:        3.3,
		ZoomScale:    0.7,
	}
	assert.Equal(t, Model(p, s), Model(p, s))
}

func TestModelSpinFixedPoint(t *testing.T) {
	// A cube's own center must be a fixed point of its spin: with zoom 1 and
	// no drag, M maps the center to itself for any spin angles.
	p := carpet.Placement{X: -0.5, Y: 0.25, Z: 1.0 / 6.0}
	s := IdentitySnapshot()
	s.SpinX, s.SpinY, s.SpinZ = 0.4, 1.3, -2.1

	center := mgl32.Vec4{p.X, p.Y, p.Z, 1}
	got := Model(p, s).Mul4x1(center)
	assert.InDelta(t, float64(p.X), float64(got.X()), 1e-6)
	assert.InDelta(t, float64(p.Y), float64(got.Y()), 1e-6)
	assert.InDelta(t, float64(p.Z), float64(got.Z()), 1e-6)
}

func TestModelZoomScalesCenter(t *testing.T) {
	// With identity drag and spin the matrix reduces to the uniform scale,
	// so the cube center lands at zoom * center.
	p := carpet.Placement{X: 2.0 / 3.0, Y: -2.0 / 3.0, Z: 1.0 / 3.0}
	s := IdentitySnapshot()
	s.ZoomScale = 4.0

	got := Model(p, s).Mul4x1(mgl32.Vec4{p.X, p.Y, p.Z, 1})
	assert.InDelta(t, float64(4.0*p.X), float64(got.X()), 1e-6)
	assert.InDelta(t, float64(4.0*p.Y), float64(got.Y()), 1e-6)
	assert.InDelta(t, float64(4.0*p.Z), float64(got.Z()), 1e-6)
}

func TestDragIncrement(t *testing.T) {
	want := mgl32.HomogRotate3DX(-30 * 0.01).Mul4(mgl32.HomogRotate3DY(120 * 0.01))
	assert.Equal(t, want, Drag(120, -30, 0.01))

	// Zero delta is the identity increment.
	assertMat4InDelta(t, mgl32.Ident4(), Drag(0, 0, 0.01), 1e-6)
}

func TestDragOrderMatters(t *testing.T) {
	// X-then-Y differs from Y-then-X for combined deltas; the contract is
	// Rx(dy*s) * Ry(dx*s).
	swapped := mgl32.HomogRotate3DY(50 * 0.01).Mul4(mgl32.HomogRotate3DX(50 * 0.01))
	assert.NotEqual(t, swapped, Drag(50, 50, 0.01))
}

func TestNormalMatchesInverseTranspose(t *testing.T) {
	p := carpet.Placement{X: 0.25, Y: 0.5, Z: 0.125}
	s := Snapshot{
		DragRotation: Drag(80, -15, 0.005),
		SpinX:        0.6,
		SpinY:        -0.2,
		SpinZ:        2.8,
		ZoomScale:    3.0,
	}

	linear := Model(p, s).Mat3()
	want := linear.Inv().Transpose()
	assertMat3InDelta(t, want, Normal(s), 1e-5)
}

func TestNormalSharedAcrossPlacements(t *testing.T) {
	// The translate sandwich cancels in the linear part, so the normal
	// matrix is placement-independent.
	s := Snapshot{
		DragRotation: Drag(33, 71, 0.01),
		SpinX:        1.0,
		SpinY:        0.5,
		SpinZ:        0.25,
		ZoomScale:    0.5,
	}
	a := carpet.Placement{X: -1, Y: -1, Z: 0.1}
	b := carpet.Placement{X: 0.9, Y: 0.3, Z: 0.01}

	la := Model(a, s).Mat3()
	lb := Model(b, s).Mat3()
	assertMat3InDelta(t, la, lb, 1e-5)

	n := Normal(s)
	require.NotEqual(t, mgl32.Mat3{}, n)
}

func TestNormalPreservesNormalsUnderZoom(t *testing.T) {
	// For a rotated and zoomed carpet, transforming a surface normal by the
	// normal matrix and renormalizing must match rotating the normal alone.
	s := IdentitySnapshot()
	s.DragRotation = mgl32.HomogRotate3DY(0.9)
	s.ZoomScale = 5.0

	n := mgl32.Vec3{0, 0, 1}
	got := Normal(s).Mul3x1(n).Normalize()
	want := mgl32.HomogRotate3DY(0.9).Mat3().Mul3x1(n)
	assert.InDelta(t, float64(want.X()), float64(got.X()), 1e-6)
	assert.InDelta(t, float64(want.Y()), float64(got.Y()), 1e-6)
	assert.InDelta(t, float64(want.Z()), float64(got.Z()), 1e-6)
}
