package model

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/menger-go/engine/carpet"
)

const (
	// VerticesPerCube is the number of non-indexed vertices each cube
	// contributes: 6 faces × 2 triangles × 3 vertices. The vertex shader
	// recovers the cube index as vertex_index / VerticesPerCube.
	VerticesPerCube = 36

	// RegionOriginX, RegionOriginY, and RegionSize define the canonical
	// carpet region: a square from -1 to +1 on the carpet plane.
	RegionOriginX = -1.0
	RegionOriginY = -1.0
	RegionSize    = 2.0
)

// cubeFace holds the local frame of one cube face. The four corners and UVs
// derive from (normal, tangent, bitangent = normal × tangent), which makes
// the winding outward-CCW and the tangent handedness +1 by construction.
type cubeFace struct {
	normal  mgl32.Vec3
	tangent mgl32.Vec3
}

var cubeFaces = [6]cubeFace{
	{normal: mgl32.Vec3{1, 0, 0}, tangent: mgl32.Vec3{0, 0, -1}},
	{normal: mgl32.Vec3{-1, 0, 0}, tangent: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{0, 1, 0}, tangent: mgl32.Vec3{1, 0, 0}},
	{normal: mgl32.Vec3{0, -1, 0}, tangent: mgl32.Vec3{1, 0, 0}},
	{normal: mgl32.Vec3{0, 0, 1}, tangent: mgl32.Vec3{1, 0, 0}},
	{normal: mgl32.Vec3{0, 0, -1}, tangent: mgl32.Vec3{-1, 0, 0}},
}

// faceCornerUVs maps the quad corners (-t-b, t-b, t+b, -t+b) to texture space.
var faceCornerUVs = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// faceTriangles splits each quad into two outward-CCW triangles.
var faceTriangles = [6]int{0, 1, 2, 0, 2, 3}

// AppendCubeVertices appends the 36 vertices of one placed cube to dst.
// Vertices are emitted in carpet space at the placement's center and size, so
// the per-cube model matrix of the frame applies directly.
//
// Parameters:
//   - dst: destination slice, may be nil
//   - p: the cube placement to tessellate
//
// Returns:
//   - []GPUVertex: dst with the cube's vertices appended
func AppendCubeVertices(dst []GPUVertex, p carpet.Placement) []GPUVertex {
	center := mgl32.Vec3{p.X, p.Y, p.Z}
	half := p.Size / 2.0

	for _, face := range cubeFaces {
		bitangent := face.normal.Cross(face.tangent)
		faceCenter := center.Add(face.normal.Mul(half))

		var corners [4]mgl32.Vec3
		corners[0] = faceCenter.Add(face.tangent.Mul(-half)).Add(bitangent.Mul(-half))
		corners[1] = faceCenter.Add(face.tangent.Mul(half)).Add(bitangent.Mul(-half))
		corners[2] = faceCenter.Add(face.tangent.Mul(half)).Add(bitangent.Mul(half))
		corners[3] = faceCenter.Add(face.tangent.Mul(-half)).Add(bitangent.Mul(half))

		for _, ci := range faceTriangles {
			dst = append(dst, GPUVertex{
				Position: [3]float32(corners[ci]),
				Normal:   [3]float32(face.normal),
				TexCoord: faceCornerUVs[ci],
				Color:    [4]float32{1, 1, 1, 1},
				Tangent:  [4]float32{face.tangent[0], face.tangent[1], face.tangent[2], 1},
			})
		}
	}
	return dst
}

// BuildCarpetVertices tessellates the whole carpet at a recursion depth into
// one flat vertex slab for the canonical region. The cube order matches
// carpet.Generate exactly; the scene relies on that to pair vertex runs with
// model matrices by index.
//
// Parameters:
//   - iterations: recursion depth, clamped like carpet.Generate
//
// Returns:
//   - []GPUVertex: carpet.Count(iterations) × 36 vertices
func BuildCarpetVertices(iterations int) []GPUVertex {
	vertices := make([]GPUVertex, 0, carpet.Count(iterations)*VerticesPerCube)
	for p := range carpet.Generate(RegionOriginX, RegionOriginY, RegionSize, iterations) {
		vertices = AppendCubeVertices(vertices, p)
	}
	return vertices
}

// CubeBoundingRadius returns the bounding sphere radius of a placed cube:
// half the space diagonal.
//
// Parameters:
//   - p: the cube placement
//
// Returns:
//   - float32: the bounding radius in carpet space
func CubeBoundingRadius(p carpet.Placement) float32 {
	return p.Size * math32.Sqrt(3.0) / 2.0
}
