package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSource = `@vertex fn vs_main() -> @builtin(position) vec4<f32> { return vec4<f32>(0.0); }`

func TestNewShaderDefaults(t *testing.T) {
	s := NewShader("test_vertex", ShaderTypeVertex, testSource)

	assert.Equal(t, "test_vertex", s.Key())
	assert.Equal(t, testSource, s.Source())
	assert.Equal(t, "vs_main", s.EntryPoint())
	assert.Equal(t, ShaderTypeVertex, s.ShaderType())

	require.NotNil(t, s.Module())
	assert.Equal(t, "test_vertex", s.Module().Label)
	assert.Equal(t, testSource, s.Module().WGSLDescriptor.Code)
}

func TestNewShaderFragmentEntryPoint(t *testing.T) {
	s := NewShader("test_fragment", ShaderTypeFragment, testSource)
	assert.Equal(t, "fs_main", s.EntryPoint())

	overridden := NewShader("test_fragment2", ShaderTypeFragment, testSource, WithEntryPoint("main"))
	assert.Equal(t, "main", overridden.EntryPoint())
}

func TestNewShaderPanicsOnEmptySource(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("empty", ShaderTypeVertex, "")
	})
}

func TestShaderLayoutOptions(t *testing.T) {
	desc := wgpu.BindGroupLayoutDescriptor{
		Label: "frame",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
			},
		},
	}
	layout := []wgpu.VertexBufferLayout{
		{
			ArrayStride: 64,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			},
		},
	}

	s := NewShader("test_layouts", ShaderTypeVertex, testSource,
		WithBindGroupLayoutDescriptor(0, desc),
		WithVertexLayout(0, layout),
	)

	assert.Equal(t, desc, s.BindGroupLayoutDescriptor(0))
	assert.Len(t, s.BindGroupLayoutDescriptors(), 1)
	assert.Equal(t, layout, s.VertexLayout(0))
	assert.Empty(t, s.BindGroupLayoutDescriptor(1).Entries)
	assert.Nil(t, s.VertexLayout(1))
}
