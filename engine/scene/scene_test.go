package scene

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/menger-go/engine/carpet"
	"github.com/Carmen-Shannon/menger-go/engine/transform"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUFrameUniformSize(t *testing.T) {
	u := &GPUFrameUniform{}
	assert.Equal(t, 128, u.Size())
	assert.Len(t, u.Marshal(), 128)
}

func TestGPUFrameUniformMarshalOffsets(t *testing.T) {
	u := &GPUFrameUniform{}
	for i := range 16 {
		u.ViewProj[i] = float32(i + 1)
	}
	u.SetNormalMat(mgl32.Mat3{101, 102, 103, 104, 105, 106, 107, 108, 109})
	u.CameraPos = [3]float32{201, 202, 203}

	buf := u.Marshal()
	require.Len(t, buf, 128)

	readF32 := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}

	assert.Equal(t, float32(1), readF32(0))
	assert.Equal(t, float32(16), readF32(60))

	// mat3x3 columns land on 16-byte strides with zeroed pads.
	assert.Equal(t, float32(101), readF32(64))
	assert.Equal(t, float32(103), readF32(72))
	assert.Equal(t, float32(0), readF32(76))
	assert.Equal(t, float32(104), readF32(80))
	assert.Equal(t, float32(0), readF32(92))
	assert.Equal(t, float32(107), readF32(96))
	assert.Equal(t, float32(0), readF32(108))

	assert.Equal(t, float32(201), readF32(112))
	assert.Equal(t, float32(203), readF32(120))
	assert.Equal(t, float32(0), readF32(124))
}

func TestCarpetVertexLayout(t *testing.T) {
	layouts := carpetVertexLayout()
	require.Len(t, layouts, 1)

	layout := layouts[0]
	assert.Equal(t, uint64(64), layout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, layout.StepMode)
	require.Len(t, layout.Attributes, 5)

	offsets := []uint64{0, 12, 24, 32, 48}
	for i, attr := range layout.Attributes {
		assert.Equal(t, uint32(i), attr.ShaderLocation)
		assert.Equal(t, offsets[i], attr.Offset)
	}
}

func TestBindGroupLayoutContracts(t *testing.T) {
	frame := frameBindGroupLayout()
	require.Len(t, frame.Entries, 1)
	assert.Equal(t, uint64(128), frame.Entries[0].Buffer.MinBindingSize)
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, frame.Entries[0].Visibility)

	lightLayout := lightBindGroupLayout()
	require.Len(t, lightLayout.Entries, 1)
	assert.Equal(t, uint64(48), lightLayout.Entries[0].Buffer.MinBindingSize)
	assert.Equal(t, wgpu.ShaderStageFragment, lightLayout.Entries[0].Visibility)

	models := modelBindGroupLayout()
	require.Len(t, models.Entries, 1)
	assert.Equal(t, wgpu.BufferBindingTypeReadOnlyStorage, models.Entries[0].Buffer.Type)
	assert.Equal(t, uint64(64), models.Entries[0].Buffer.MinBindingSize)
	assert.Equal(t, wgpu.ShaderStageVertex, models.Entries[0].Visibility)

	mat := materialBindGroupLayout()
	require.Len(t, mat.Entries, 4)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, mat.Entries[0].Texture.SampleType)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, mat.Entries[1].Texture.SampleType)
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, mat.Entries[2].Sampler.Type)
	assert.Equal(t, uint64(16), mat.Entries[3].Buffer.MinBindingSize)

	hudLayout := hudBindGroupLayout()
	require.Len(t, hudLayout.Entries, 3)
	assert.Equal(t, uint64(32), hudLayout.Entries[0].Buffer.MinBindingSize)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, hudLayout.Entries[1].Texture.SampleType)
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, hudLayout.Entries[2].Sampler.Type)
}

func TestShaderConstructors(t *testing.T) {
	vert := newCarpetVertexShader()
	assert.Equal(t, "vs_main", vert.EntryPoint())
	assert.NotEmpty(t, vert.BindGroupLayoutDescriptor(frameBindGroup).Entries)
	assert.NotEmpty(t, vert.BindGroupLayoutDescriptor(modelBindGroup).Entries)
	assert.NotEmpty(t, vert.VertexLayout(0))

	frag := newCarpetFragmentShader()
	assert.Equal(t, "fs_main", frag.EntryPoint())
	assert.NotEmpty(t, frag.BindGroupLayoutDescriptor(lightBindGroup).Entries)
	assert.NotEmpty(t, frag.BindGroupLayoutDescriptor(materialBindGroup).Entries)

	hudVert := newHudVertexShader()
	assert.Equal(t, "vs_main", hudVert.EntryPoint())
	assert.NotEmpty(t, hudVert.BindGroupLayoutDescriptor(0).Entries)

	hudFrag := newHudFragmentShader()
	assert.Equal(t, "fs_main", hudFrag.EntryPoint())
}

// The frustum test positions cube centers using only the zoom scale and drag
// rotation. That shortcut is exact because the spin rotations are sandwiched
// between translations to and from the cube center, leaving the center
// itself fixed. This pins the shortcut against the full model matrix.
func TestCullCenterShortcutMatchesFullModel(t *testing.T) {
	snap := transform.Snapshot{
		DragRotation: mgl32.HomogRotate3D(0.7, mgl32.Vec3{0.3, 0.8, 0.5}.Normalize()),
		SpinX:        1.3,
		SpinY:        -0.4,
		SpinZ:        2.1,
		ZoomScale:    1.7,
	}
	viewScale := mgl32.Scale3D(snap.ZoomScale, snap.ZoomScale, snap.ZoomScale).Mul4(snap.DragRotation)

	for p := range carpet.Generate(-1, -1, 2, 3) {
		center := mgl32.Vec4{p.X, p.Y, p.Z, 1}
		full := transform.Model(p, snap).Mul4x1(center)
		shortcut := viewScale.Mul4x1(center)
		for i := range 4 {
			assert.InDelta(t, full[i], shortcut[i], 1e-4)
		}
	}
}
