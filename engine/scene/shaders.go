package scene

import (
	_ "embed"

	"github.com/Carmen-Shannon/menger-go/engine/hud"
	"github.com/Carmen-Shannon/menger-go/engine/light"
	"github.com/Carmen-Shannon/menger-go/engine/model"
	"github.com/Carmen-Shannon/menger-go/engine/renderer/material"
	"github.com/Carmen-Shannon/menger-go/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// Pipeline keys registered by every scene.
const (
	carpetPipelineKey = "carpet"
	hudPipelineKey    = "hud_overlay"
)

// Bind group indices used by the carpet pipeline. The HUD pipeline only uses
// group 0.
const (
	frameBindGroup    = 0
	lightBindGroup    = 1
	materialBindGroup = 2
	modelBindGroup    = 3
)

// Binding indices within the material and HUD bind groups.
const (
	materialDiffuseBinding = 0
	materialNormalBinding  = 1
	materialSamplerBinding = 2
	materialParamsBinding  = 3

	hudParamsBinding  = 0
	hudTextureBinding = 1
	hudSamplerBinding = 2
)

//go:embed assets/carpet.wgsl
var carpetShaderSource string

//go:embed assets/hud.wgsl
var hudShaderSource string

// carpetVertexLayout describes the GPUVertex stream consumed by the carpet
// vertex shader: position, normal, uv, color and tangent packed into 64
// bytes per vertex.
func carpetVertexLayout() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: uint64((&model.GPUVertex{}).Size()),
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
				{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 3},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 4},
			},
		},
	}
}

// frameBindGroupLayout is the per-frame uniform shared by the carpet vertex
// and fragment stages. The fragment stage reads the camera position from the
// same buffer, so both visibilities are declared.
func frameBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "frame_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64((&GPUFrameUniform{}).Size()),
				},
			},
		},
	}
}

func lightBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "light_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64((&light.GPULight{}).Size()),
				},
			},
		},
	}
}

func materialBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "material_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    materialDiffuseBinding,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    materialNormalBinding,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    materialSamplerBinding,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
			{
				Binding:    materialParamsBinding,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64((&material.GPUMaterialParams{}).Size()),
				},
			},
		},
	}
}

// modelBindGroupLayout is the storage buffer of per-cube model matrices. The
// minimum binding size covers a single matrix; the scene overrides the buffer
// allocation to hold one matrix per cube at the deepest supported depth.
func modelBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "model_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeReadOnlyStorage,
					MinBindingSize: uint64((&model.GPUModelData{}).Size()),
				},
			},
		},
	}
}

// hudBindGroupLayout is the full HUD bind group: placement uniform, panel
// texture and sampler. The vertex shader declares the whole group so the
// scene can reuse the identical descriptor when rebuilding the bind group
// after a panel texture swap.
func hudBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "hud_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    hudParamsBinding,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64((&hud.GPUHudParams{}).Size()),
				},
			},
			{
				Binding:    hudTextureBinding,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    hudSamplerBinding,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	}
}

func newCarpetVertexShader() shader.Shader {
	return shader.NewShader("carpet_vert", shader.ShaderTypeVertex, carpetShaderSource,
		shader.WithBindGroupLayoutDescriptor(frameBindGroup, frameBindGroupLayout()),
		shader.WithBindGroupLayoutDescriptor(modelBindGroup, modelBindGroupLayout()),
		shader.WithVertexLayout(0, carpetVertexLayout()),
	)
}

func newCarpetFragmentShader() shader.Shader {
	return shader.NewShader("carpet_frag", shader.ShaderTypeFragment, carpetShaderSource,
		shader.WithBindGroupLayoutDescriptor(lightBindGroup, lightBindGroupLayout()),
		shader.WithBindGroupLayoutDescriptor(materialBindGroup, materialBindGroupLayout()),
	)
}

func newHudVertexShader() shader.Shader {
	return shader.NewShader("hud_vert", shader.ShaderTypeVertex, hudShaderSource,
		shader.WithBindGroupLayoutDescriptor(0, hudBindGroupLayout()),
	)
}

func newHudFragmentShader() shader.Shader {
	return shader.NewShader("hud_frag", shader.ShaderTypeFragment, hudShaderSource)
}
