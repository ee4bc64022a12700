package model

import (
	"github.com/Carmen-Shannon/menger-go/engine/renderer/bind_group_provider"
)

// MeshBuilderOption is a functional option for configuring a Mesh.
type MeshBuilderOption func(*mesh)

// WithName sets the mesh identifier.
//
// Parameters:
//   - name: the mesh name
//
// Returns:
//   - MeshBuilderOption: functional option to set the name
func WithName(name string) MeshBuilderOption {
	return func(m *mesh) {
		m.name = name
	}
}

// WithProvider sets the BindGroupProvider holding the mesh's GPU resources.
//
// Parameters:
//   - provider: the mesh provider
//
// Returns:
//   - MeshBuilderOption: functional option to set the provider
func WithProvider(provider bind_group_provider.BindGroupProvider) MeshBuilderOption {
	return func(m *mesh) {
		m.provider = provider
	}
}

// WithVertexData stages initial vertex bytes and their vertex count.
//
// Parameters:
//   - data: the vertex data to stage
//   - count: the number of vertices in data
//
// Returns:
//   - MeshBuilderOption: functional option to stage vertex data
func WithVertexData(data []byte, count int) MeshBuilderOption {
	return func(m *mesh) {
		m.vertexData = data
		m.vertexCount = count
	}
}

// WithBoundingRadius sets the mesh bounding sphere radius.
//
// Parameters:
//   - radius: the bounding radius
//
// Returns:
//   - MeshBuilderOption: functional option to set the radius
func WithBoundingRadius(radius float32) MeshBuilderOption {
	return func(m *mesh) {
		m.boundingRadius = radius
	}
}
