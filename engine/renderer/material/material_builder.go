package material

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/menger-go/common"
	"github.com/Carmen-Shannon/menger-go/engine/renderer/bind_group_provider"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithDiffuseTexture is an option builder that sets the staged diffuse/albedo texture.
//
// Parameters:
//   - tex: the staged texture data for the diffuse map
//
// Returns:
//   - MaterialBuilderOption: a function that applies the diffuse texture option to a material
func WithDiffuseTexture(tex *common.TextureStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.diffuseTexture = tex
	}
}

// WithNormalTexture is an option builder that sets the staged tangent-space normal map.
//
// Parameters:
//   - tex: the staged texture data for the normal map
//
// Returns:
//   - MaterialBuilderOption: a function that applies the normal texture option to a material
func WithNormalTexture(tex *common.TextureStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.normalTexture = tex
	}
}

// WithSampler is an option builder that sets the staged sampler configuration.
//
// Parameters:
//   - sampler: the sampler staging data shared by the material's textures
//
// Returns:
//   - MaterialBuilderOption: a function that applies the sampler option to a material
func WithSampler(sampler *common.SamplerStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.sampler = sampler
	}
}

// WithSpecularPower is an option builder that sets the Blinn-Phong specular exponent.
//
// Parameters:
//   - power: the specular exponent (higher = tighter highlight)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the specular power option to a material
func WithSpecularPower(power float32) MaterialBuilderOption {
	return func(m *material) {
		m.specularPower = power
	}
}

// WithNormalStrength is an option builder that sets the normal map strength.
//
// Parameters:
//   - strength: the XY scale applied to sampled normals (0 disables the map)
//
// Returns:
//   - MaterialBuilderOption: a function that applies the normal strength option to a material
func WithNormalStrength(strength float32) MaterialBuilderOption {
	return func(m *material) {
		m.normalStrength = strength
	}
}

// WithPipelineKey is an option builder that sets the render pipeline key for the material.
//
// Parameters:
//   - key: the pipeline key to associate with the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the pipeline key option to a material
func WithPipelineKey(key string) MaterialBuilderOption {
	return func(m *material) {
		m.pipelineKey = key
	}
}

// WithBindGroupProvider is an option builder that sets the bind group provider for the material.
//
// Parameters:
//   - provider: the bind group provider containing GPU resources for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the bind group provider option to a material
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) MaterialBuilderOption {
	return func(m *material) {
		m.bindGroupProvider = provider
	}
}

// DefaultSampler returns the sampler configuration used when no WithSampler option
// is provided: repeat addressing with linear filtering in all modes.
//
// Returns:
//   - *common.SamplerStagingData: the default sampler staging data
func DefaultSampler() *common.SamplerStagingData {
	return &common.SamplerStagingData{
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeRepeat,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	}
}
