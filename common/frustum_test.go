package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// testViewProj is a 60 degree, 16:9 perspective looking down -Z from (0,0,5).
// At the z=0 plane the frustum half-height is tan(30)*5, about 2.89 units.
func testViewProj() mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

func TestExtractFrustumNormalizesPlanes(t *testing.T) {
	f := ExtractFrustumFromMatrix(testViewProj())

	for i, p := range f.Planes {
		assert.InDelta(t, 1.0, float64(p.Normal.Len()), 1e-5, "plane %d normal should be unit length", i)
	}
}

func TestFrustumInteriorIsPositiveHalfSpace(t *testing.T) {
	f := ExtractFrustumFromMatrix(testViewProj())
	inside := mgl32.Vec3{0, 0, 0}

	for i, p := range f.Planes {
		assert.Greater(t, p.Normal.Dot(inside)+p.Distance, float32(0), "plane %d should face the interior point", i)
	}
}

func TestIntersectsSphereInside(t *testing.T) {
	f := ExtractFrustumFromMatrix(testViewProj())

	assert.True(t, f.IntersectsSphere(mgl32.Vec3{0, 0, 0}, 1))
}

func TestIntersectsSphereOutside(t *testing.T) {
	f := ExtractFrustumFromMatrix(testViewProj())

	cases := []struct {
		name   string
		center mgl32.Vec3
	}{
		{"far left", mgl32.Vec3{-50, 0, 0}},
		{"far right", mgl32.Vec3{50, 0, 0}},
		{"far below", mgl32.Vec3{0, -50, 0}},
		{"far above", mgl32.Vec3{0, 50, 0}},
		{"beyond far plane", mgl32.Vec3{0, 0, -200}},
		{"behind camera", mgl32.Vec3{0, 0, 100}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, f.IntersectsSphere(tc.center, 1))
		})
	}
}

func TestIntersectsSphereStraddlingPlane(t *testing.T) {
	f := ExtractFrustumFromMatrix(testViewProj())

	// (0, 4, 0) sits about 0.96 units outside the top plane, so the result
	// flips on the radius alone.
	center := mgl32.Vec3{0, 4, 0}
	assert.False(t, f.IntersectsSphere(center, 0.5))
	assert.True(t, f.IntersectsSphere(center, 2.0))
}
