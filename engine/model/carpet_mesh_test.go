package model

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/menger-go/engine/carpet"
)

func TestBuildCarpetVerticesCount(t *testing.T) {
	for iterations := 1; iterations <= 4; iterations++ {
		verts := BuildCarpetVertices(iterations)
		assert.Len(t, verts, carpet.Count(iterations)*VerticesPerCube, "iterations=%d", iterations)
	}
}

func TestBuildCarpetVerticesFollowsGenerateOrder(t *testing.T) {
	verts := BuildCarpetVertices(2)
	var placements []carpet.Placement
	for p := range carpet.Generate(RegionOriginX, RegionOriginY, RegionSize, 2) {
		placements = append(placements, p)
	}
	require.Len(t, verts, len(placements)*VerticesPerCube)

	// Every vertex in a cube's 36-vertex run stays inside that cube's bounds.
	for i, p := range placements {
		half := p.Size / 2.0
		run := verts[i*VerticesPerCube : (i+1)*VerticesPerCube]
		for _, v := range run {
			assert.InDelta(t, float64(p.X), float64(v.Position[0]), float64(half)+1e-6)
			assert.InDelta(t, float64(p.Y), float64(v.Position[1]), float64(half)+1e-6)
			assert.InDelta(t, float64(p.Z), float64(v.Position[2]), float64(half)+1e-6)
		}
	}
}

func TestAppendCubeVerticesFaceFrames(t *testing.T) {
	p := carpet.Placement{X: 0.5, Y: -0.5, Z: 0.25, Size: 0.5}
	verts := AppendCubeVertices(nil, p)
	require.Len(t, verts, VerticesPerCube)

	for _, v := range verts {
		n := mgl32.Vec3(v.Normal)
		tan := mgl32.Vec3{v.Tangent[0], v.Tangent[1], v.Tangent[2]}

		// Axis-aligned unit normals, unit tangents, orthogonal frames,
		// +1 handedness by construction.
		assert.InDelta(t, 1.0, float64(n.Len()), 1e-6)
		assert.InDelta(t, 1.0, float64(tan.Len()), 1e-6)
		assert.InDelta(t, 0.0, float64(n.Dot(tan)), 1e-6)
		assert.Equal(t, float32(1), v.Tangent[3])

		assert.GreaterOrEqual(t, v.TexCoord[0], float32(0))
		assert.LessOrEqual(t, v.TexCoord[0], float32(1))
		assert.GreaterOrEqual(t, v.TexCoord[1], float32(0))
		assert.LessOrEqual(t, v.TexCoord[1], float32(1))
	}
}

func TestAppendCubeVerticesWindingIsOutward(t *testing.T) {
	p := carpet.Placement{X: 0, Y: 0, Z: 0.5, Size: 1}
	verts := AppendCubeVertices(nil, p)

	for tri := 0; tri < len(verts); tri += 3 {
		a := mgl32.Vec3(verts[tri].Position)
		b := mgl32.Vec3(verts[tri+1].Position)
		c := mgl32.Vec3(verts[tri+2].Position)

		// Counter-clockwise when viewed from outside: the geometric normal
		// of each triangle points the same way as the stored face normal.
		geometric := b.Sub(a).Cross(c.Sub(b))
		assert.Greater(t, float64(geometric.Dot(mgl32.Vec3(verts[tri].Normal))), 0.0, "triangle at %d", tri)
	}
}

func TestCubeBoundingRadius(t *testing.T) {
	p := carpet.Placement{X: 0.2, Y: 0.4, Z: 0.1, Size: 0.2}
	want := 0.2 * math.Sqrt(3) / 2.0
	assert.InDelta(t, want, float64(CubeBoundingRadius(p)), 1e-6)

	// The radius encloses every vertex of the cube relative to its center.
	center := mgl32.Vec3{p.X, p.Y, p.Z}
	for _, v := range AppendCubeVertices(nil, p) {
		dist := mgl32.Vec3(v.Position).Sub(center).Len()
		assert.LessOrEqual(t, float64(dist), want+1e-6)
	}
}

func TestGPUVertexLayout(t *testing.T) {
	v := GPUVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 0, 1},
		TexCoord: [2]float32{0.5, 0.25},
		Color:    [4]float32{1, 1, 1, 1},
		Tangent:  [4]float32{1, 0, 0, 1},
	}
	assert.Equal(t, 64, v.Size())

	buf := v.Marshal()
	require.Len(t, buf, 64)
	// Spot-check the two offsets the WGSL vertex layout depends on most.
	assert.Equal(t, math.Float32bits(0.5), binary.LittleEndian.Uint32(buf[24:28]), "texcoord offset")
	assert.Equal(t, math.Float32bits(1), binary.LittleEndian.Uint32(buf[48:52]), "tangent offset")
}

func TestGPUModelDataLayout(t *testing.T) {
	var g GPUModelData
	g.Model = [16]float32(mgl32.Translate3D(1, 2, 3))

	assert.Equal(t, 64, g.Size())
	buf := g.Marshal()
	require.Len(t, buf, 64)
	// Column-major: translation lands in elements 12..14.
	assert.Equal(t, math.Float32bits(1), binary.LittleEndian.Uint32(buf[48:52]))
	assert.Equal(t, math.Float32bits(2), binary.LittleEndian.Uint32(buf[52:56]))
	assert.Equal(t, math.Float32bits(3), binary.LittleEndian.Uint32(buf[56:60]))
}
