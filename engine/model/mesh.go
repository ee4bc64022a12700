package model

import (
	"github.com/Carmen-Shannon/menger-go/engine/renderer/bind_group_provider"
)

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name           string
	provider       bind_group_provider.BindGroupProvider
	vertexData     []byte
	vertexCount    int
	boundingRadius float32
}

// Mesh defines the interface for a GPU-ready non-indexed triangle mesh.
// A Mesh pairs staged vertex bytes with the BindGroupProvider holding their
// GPU-side buffer. The carpet scene rebuilds the staged bytes whenever the
// recursion depth changes and re-initializes the provider from them.
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the name of the mesh
	Name() string

	// Provider retrieves the BindGroupProvider holding GPU mesh resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	Provider() bind_group_provider.BindGroupProvider

	// VertexData returns the staged vertex bytes for this mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// VertexCount returns the number of vertices in the staged data.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// BoundingRadius returns the bounding sphere radius of the whole mesh,
	// measured as the maximum vertex distance from the origin.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// SetVertexData replaces the staged vertex bytes and count. The GPU
	// buffer is not touched; callers re-initialize the provider afterwards.
	//
	// Parameters:
	//   - data: the vertex data to stage
	//   - count: the number of vertices in data
	SetVertexData(data []byte, count int)

	// SetBoundingRadius sets the bounding sphere radius.
	//
	// Parameters:
	//   - radius: the bounding radius to set
	SetBoundingRadius(radius float32)
}

var _ Mesh = &mesh{}

// NewMesh creates a new Mesh instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of MeshBuilderOption functions to configure the Mesh
//
// Returns:
//   - Mesh: a new instance of Mesh configured with the provided options
func NewMesh(options ...MeshBuilderOption) Mesh {
	m := &mesh{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Provider() bind_group_provider.BindGroupProvider {
	return m.provider
}

func (m *mesh) VertexData() []byte {
	return m.vertexData
}

func (m *mesh) VertexCount() int {
	return m.vertexCount
}

func (m *mesh) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *mesh) SetVertexData(data []byte, count int) {
	m.vertexData = data
	m.vertexCount = count
}

func (m *mesh) SetBoundingRadius(radius float32) {
	m.boundingRadius = radius
}
