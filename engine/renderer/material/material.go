package material

import (
	"github.com/Carmen-Shannon/menger-go/common"
	"github.com/Carmen-Shannon/menger-go/engine/renderer/bind_group_provider"
)

// material is the implementation of the Material interface.
type material struct {
	name              string
	diffuseTexture    *common.TextureStagingData
	normalTexture     *common.TextureStagingData
	sampler           *common.SamplerStagingData
	specularPower     float32
	normalStrength    float32
	pipelineKey       string
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Material defines the interface for a render material, encapsulating surface
// textures, lighting parameters, and GPU resource bindings needed for draw calls.
//
// Surface properties (name, textures, sampler, lighting parameters) are set at
// construction and are read-only through this interface. GPU resource references
// (pipeline key, bind group provider) are mutable so they can be configured after
// construction during scene GPU initialization.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// DiffuseTexture retrieves the staged diffuse/albedo texture data, or nil if none is set.
	//
	// Returns:
	//   - *common.TextureStagingData: the diffuse texture staging data, or nil
	DiffuseTexture() *common.TextureStagingData

	// NormalTexture retrieves the staged tangent-space normal map data, or nil if none is set.
	//
	// Returns:
	//   - *common.TextureStagingData: the normal map staging data, or nil
	NormalTexture() *common.TextureStagingData

	// Sampler retrieves the staged sampler configuration shared by the material's textures.
	//
	// Returns:
	//   - *common.SamplerStagingData: the sampler staging data, or nil
	Sampler() *common.SamplerStagingData

	// SpecularPower retrieves the Blinn-Phong specular exponent for the material.
	//
	// Returns:
	//   - float32: the specular exponent
	SpecularPower() float32

	// NormalStrength retrieves the scale applied to the sampled tangent-space
	// normal's XY components before renormalization. 0 disables the normal map.
	//
	// Returns:
	//   - float32: the normal map strength
	NormalStrength() float32

	// GPUParams returns the material's lighting parameters marshaled into their
	// GPU uniform representation.
	//
	// Returns:
	//   - GPUMaterialParams: the GPU-aligned material parameters
	GPUParams() GPUMaterialParams

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// BindGroupProvider retrieves the bind group provider holding GPU-side resources for this material.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider, or nil if not yet initialized
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetPipelineKey sets the render pipeline key for this material.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this material
	SetPipelineKey(key string)

	// SetBindGroupProvider sets the bind group provider for this material.
	//
	// Parameters:
	//   - provider: the bind group provider containing GPU resources for this material
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// The default sampler repeats in both axes with linear filtering, which suits the
// generated tiling textures.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		sampler:        DefaultSampler(),
		specularPower:  32.0,
		normalStrength: 1.0,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) DiffuseTexture() *common.TextureStagingData {
	return m.diffuseTexture
}

func (m *material) NormalTexture() *common.TextureStagingData {
	return m.normalTexture
}

func (m *material) Sampler() *common.SamplerStagingData {
	return m.sampler
}

func (m *material) SpecularPower() float32 {
	return m.specularPower
}

func (m *material) NormalStrength() float32 {
	return m.normalStrength
}

func (m *material) GPUParams() GPUMaterialParams {
	return GPUMaterialParams{
		SpecularPower:  m.specularPower,
		NormalStrength: m.normalStrength,
	}
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}

func (m *material) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *material) SetPipelineKey(key string) {
	m.pipelineKey = key
}

func (m *material) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	m.bindGroupProvider = provider
}
