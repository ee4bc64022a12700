package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBrickTexture(t *testing.T) {
	tex := GenerateBrickTexture(64)

	require.NotNil(t, tex)
	assert.Equal(t, uint32(64), tex.Width)
	assert.Equal(t, uint32(64), tex.Height)
	assert.Len(t, tex.Pixels, 64*64*4)

	// Fully opaque everywhere.
	for i := 3; i < len(tex.Pixels); i += 4 {
		assert.Equal(t, byte(255), tex.Pixels[i])
	}
}

func TestGenerateBrickTextureDeterministic(t *testing.T) {
	a := GenerateBrickTexture(64)
	b := GenerateBrickTexture(64)
	assert.Equal(t, a.Pixels, b.Pixels)
}

func TestBrickTextureHasMortarAndBrick(t *testing.T) {
	tex := GenerateBrickTexture(256)

	// y=0 lies in a horizontal mortar joint; mortar is near-gray.
	i := (0*256 + 128) * 4
	r, g, b := tex.Pixels[i], tex.Pixels[i+1], tex.Pixels[i+2]
	assert.InDelta(t, float64(r), float64(g), 20, "mortar should be near-gray")
	assert.InDelta(t, float64(g), float64(b), 20, "mortar should be near-gray")

	// The center of the first brick face is distinctly red-dominant.
	courseH := 256 / brickCourses
	brickW := 256 / bricksPerRow
	j := ((courseH/2)*256 + brickW/2) * 4
	assert.Greater(t, tex.Pixels[j], tex.Pixels[j+1], "brick red > green")
	assert.Greater(t, tex.Pixels[j], tex.Pixels[j+2], "brick red > blue")
}

func TestGenerateBrickNormalMapFlatInterior(t *testing.T) {
	nm := GenerateBrickNormalMap(256, 2.0)

	require.Len(t, nm.Pixels, 256*256*4)

	// The brick face interior is flat, so the normal points straight out.
	courseH := 256 / brickCourses
	brickW := 256 / bricksPerRow
	i := ((courseH/2)*256 + brickW/2) * 4
	assert.InDelta(t, 128, float64(nm.Pixels[i]), 2)
	assert.InDelta(t, 128, float64(nm.Pixels[i+1]), 2)
	assert.Greater(t, nm.Pixels[i+2], byte(250))
}

func TestGenerateBrickNormalMapEncodesUnitNormals(t *testing.T) {
	nm := GenerateBrickNormalMap(64, 2.0)

	for i := 0; i < len(nm.Pixels); i += 4 {
		x := float64(nm.Pixels[i])/127.5 - 1.0
		y := float64(nm.Pixels[i+1])/127.5 - 1.0
		z := float64(nm.Pixels[i+2])/127.5 - 1.0
		length := x*x + y*y + z*z
		assert.InDelta(t, 1.0, length, 0.05, "pixel %d", i/4)
		// Tangent-space normals always face outward.
		assert.Greater(t, z, 0.0)
	}
}

func TestNewBrickMaterial(t *testing.T) {
	m := NewBrickMaterial(WithPipelineKey("carpet"))

	assert.Equal(t, "brick", m.Name())
	assert.Equal(t, "carpet", m.PipelineKey())
	require.NotNil(t, m.DiffuseTexture())
	require.NotNil(t, m.NormalTexture())
	require.NotNil(t, m.Sampler())
	assert.Equal(t, m.DiffuseTexture().Width, m.NormalTexture().Width)
}

func TestMaterialDefaults(t *testing.T) {
	m := NewMaterial(WithName("plain"))

	assert.Equal(t, float32(32.0), m.SpecularPower())
	assert.Equal(t, float32(1.0), m.NormalStrength())
	assert.Nil(t, m.DiffuseTexture())
	require.NotNil(t, m.Sampler())

	p := m.GPUParams()
	assert.Equal(t, 16, p.Size())
	assert.Len(t, p.Marshal(), 16)
}
