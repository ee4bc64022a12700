// package transform composes the per-cube model matrices for the carpet
// viewer. All matrices are column-major mgl32 values using the column-vector
// convention (v' = M * v), matching the WGSL side of the renderer.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/menger-go/engine/carpet"
)

// Snapshot is an immutable copy of the view state a frame composes with.
// The interaction controller produces one per tick; the scene fans it out to
// the compose workers so every cube in a frame sees identical values.
type Snapshot struct {
	// DragRotation is the accumulated pointer-drag rotation. It is applied
	// after the spin rotations and before the uniform zoom scale.
	DragRotation mgl32.Mat4

	// SpinX, SpinY, SpinZ are the automatic spin angles in radians.
	SpinX, SpinY, SpinZ float32

	// ZoomScale is the uniform scale factor, clamped by the controller.
	ZoomScale float32
}

// IdentitySnapshot returns the rest view: no drag rotation, no spin, zoom 1.
//
// Returns:
//   - Snapshot: the identity view state
func IdentitySnapshot() Snapshot {
	return Snapshot{
		DragRotation: mgl32.Ident4(),
		ZoomScale:    1.0,
	}
}

// Model composes the full model matrix for one cube placement. The exact
// multiplication order is the contract of this package:
//
//	M = S(zoom) * R_drag * T(center) * Rx(spinX) * Ry(spinY) * Rz(spinZ) * T(-center)
//
// so each cube spins in place around its own center, the whole carpet then
// rotates by the accumulated drag, and the zoom scales the result. The same
// inputs always produce a bit-identical matrix.
//
// Parameters:
//   - p: the cube placement whose center anchors the spin
//   - s: the view state snapshot for this frame
//
// Returns:
//   - mgl32.Mat4: the composed model matrix
func Model(p carpet.Placement, s Snapshot) mgl32.Mat4 {
	m := mgl32.Scale3D(s.ZoomScale, s.ZoomScale, s.ZoomScale)
	m = m.Mul4(s.DragRotation)
	m = m.Mul4(mgl32.Translate3D(p.X, p.Y, p.Z))
	m = m.Mul4(mgl32.HomogRotate3DX(s.SpinX))
	m = m.Mul4(mgl32.HomogRotate3DY(s.SpinY))
	m = m.Mul4(mgl32.HomogRotate3DZ(s.SpinZ))
	m = m.Mul4(mgl32.Translate3D(-p.X, -p.Y, -p.Z))
	return m
}

// Normal returns the normal matrix shared by every cube in a frame. The
// translate sandwich in Model cancels in the linear part, so the linear part
// of every cube's matrix is zoom * R_drag * R_spin and the inverse-transpose
// reduces to (1/zoom) * R_drag * R_spin. Computed CPU-side since WGSL has no
// matrix inverse.
//
// Parameters:
//   - s: the view state snapshot for this frame
//
// Returns:
//   - mgl32.Mat3: the inverse-transpose of the shared linear part
func Normal(s Snapshot) mgl32.Mat3 {
	rot := s.DragRotation.
		Mul4(mgl32.HomogRotate3DX(s.SpinX)).
		Mul4(mgl32.HomogRotate3DY(s.SpinY)).
		Mul4(mgl32.HomogRotate3DZ(s.SpinZ))
	return rot.Mat3().Mul(1.0 / s.ZoomScale)
}

// Drag builds a single drag increment from a pointer delta: a rotation about
// X by dy*sensitivity composed with a rotation about Y by dx*sensitivity.
// The controller left-multiplies increments into its accumulator so the most
// recent drag is applied in screen space.
//
// Parameters:
//   - dx, dy: pointer movement in pixels since the last event
//   - sensitivity: radians of rotation per pixel
//
// Returns:
//   - mgl32.Mat4: the drag rotation increment
func Drag(dx, dy, sensitivity float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(dy * sensitivity).Mul4(mgl32.HomogRotate3DY(dx * sensitivity))
}
