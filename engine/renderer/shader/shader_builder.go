package shader

import "github.com/cogentcore/webgpu/wgpu"

// ShaderBuilderOption is a functional option used to configure a Shader during construction.
type ShaderBuilderOption func(*shader)

// WithBindGroupLayoutDescriptor declares the bind group layout for a specific group
// index. The descriptor must mirror the @group declarations in the WGSL source;
// the renderer creates the GPU layout objects from these descriptors.
//
// Parameters:
//   - group: the bind group index matching the WGSL @group attribute
//   - desc: the layout descriptor for that group
//
// Returns:
//   - ShaderBuilderOption: a function that sets the descriptor for the group
func WithBindGroupLayoutDescriptor(group int, desc wgpu.BindGroupLayoutDescriptor) ShaderBuilderOption {
	return func(s *shader) {
		s.bindGroupLayoutDescriptors[group] = desc
	}
}

// WithVertexLayout declares the vertex buffer layout for a specific slot. Only
// meaningful on vertex shaders; the layout must mirror the @location attributes
// of the WGSL vertex input struct.
//
// Parameters:
//   - slot: the vertex buffer slot index
//   - layout: the vertex buffer layouts bound at that slot
//
// Returns:
//   - ShaderBuilderOption: a function that sets the vertex layout for the slot
func WithVertexLayout(slot int, layout []wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts[slot] = layout
	}
}

// WithEntryPoint overrides the default entry point name ("vs_main" for vertex
// shaders, "fs_main" for fragment shaders).
//
// Parameters:
//   - name: the entry point function name in the WGSL source
//
// Returns:
//   - ShaderBuilderOption: a function that sets the entry point name
func WithEntryPoint(name string) ShaderBuilderOption {
	return func(s *shader) {
		s.entryPoint = name
	}
}
