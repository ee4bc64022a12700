package material

import (
	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/menger-go/common"
)

// Brick pattern layout. The texture size must be a power of two so gradient
// sampling can wrap with a mask and the pattern tiles seamlessly.
const (
	// DefaultTextureSize is the edge length in pixels of the generated textures.
	DefaultTextureSize = 256

	brickCourses  = 8 // horizontal rows of bricks
	bricksPerRow  = 4 // bricks in each course
	mortarPixels  = 3 // half-width of the mortar joint in pixels
	bevelPixels   = 3 // width of the height ramp between mortar and brick face
	noiseStrength = 0.04
)

// NewBrickMaterial creates the carpet's surface material: a procedurally
// generated running-bond brick diffuse texture paired with a tangent-space
// normal map derived from the same height field.
//
// Parameters:
//   - options: additional material options applied after the textures are set
//
// Returns:
//   - Material: a material staged with the generated brick textures
func NewBrickMaterial(options ...MaterialBuilderOption) Material {
	opts := []MaterialBuilderOption{
		WithName("brick"),
		WithDiffuseTexture(GenerateBrickTexture(DefaultTextureSize)),
		WithNormalTexture(GenerateBrickNormalMap(DefaultTextureSize, 2.0)),
	}
	opts = append(opts, options...)
	return NewMaterial(opts...)
}

// GenerateBrickTexture produces an RGBA running-bond brick pattern. Each brick
// carries a deterministic per-brick tint variation plus low-amplitude per-pixel
// noise; mortar joints render in a flat gray. The same inputs always produce
// identical pixels.
//
// Parameters:
//   - size: edge length in pixels, must be a power of two
//
// Returns:
//   - *common.TextureStagingData: staged RGBA pixel data, 4 bytes per pixel
func GenerateBrickTexture(size int) *common.TextureStagingData {
	pixels := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			h := brickHeight(x, y, size)
			noise := (hash2(uint32(x), uint32(y)) - 0.5) * 2.0 * noiseStrength

			var r, g, b float32
			if h <= 0 {
				// Mortar joint.
				r, g, b = 0.62, 0.60, 0.57
			} else {
				row, col := brickCell(x, y, size)
				jitter := (hash2(uint32(col)*31, uint32(row)*17) - 0.5) * 0.14
				r = 0.58 + jitter
				g = 0.27 + jitter*0.5
				b = 0.20 + jitter*0.3
				// Darken the beveled rim slightly so edges read without lighting.
				r *= 0.85 + 0.15*h
				g *= 0.85 + 0.15*h
				b *= 0.85 + 0.15*h
			}

			i := (y*size + x) * 4
			pixels[i+0] = colorByte(r + noise)
			pixels[i+1] = colorByte(g + noise)
			pixels[i+2] = colorByte(b + noise)
			pixels[i+3] = 255
		}
	}
	return &common.TextureStagingData{
		Pixels: pixels,
		Width:  uint32(size),
		Height: uint32(size),
	}
}

// GenerateBrickNormalMap produces a tangent-space normal map from the brick
// height field using a Sobel gradient. Flat brick faces encode as the straight-up
// normal (128, 128, 255); mortar bevels tilt the normal toward the joint.
// Sampling wraps at the edges so the map tiles seamlessly with the diffuse.
// The staging data is marked RGBA8Unorm so the encoded vectors are sampled
// without gamma decoding.
//
// Parameters:
//   - size: edge length in pixels, must be a power of two
//   - strength: gradient scale, larger values exaggerate the relief
//
// Returns:
//   - *common.TextureStagingData: staged RGBA pixel data encoding XYZ normals
func GenerateBrickNormalMap(size int, strength float32) *common.TextureStagingData {
	mask := size - 1
	heightAt := func(x, y int) float32 {
		return brickHeight(x&mask, y&mask, size)
	}

	pixels := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// Sobel operator over the wrapped height field.
			tl := heightAt(x-1, y-1)
			tc := heightAt(x, y-1)
			tr := heightAt(x+1, y-1)
			ml := heightAt(x-1, y)
			mr := heightAt(x+1, y)
			bl := heightAt(x-1, y+1)
			bc := heightAt(x, y+1)
			br := heightAt(x+1, y+1)

			dx := (tr + 2*mr + br) - (tl + 2*ml + bl)
			dy := (bl + 2*bc + br) - (tl + 2*tc + tr)

			nx := -dx * strength
			ny := -dy * strength
			nz := float32(1.0)
			inv := 1.0 / math32.Sqrt(nx*nx+ny*ny+nz*nz)
			nx, ny, nz = nx*inv, ny*inv, nz*inv

			i := (y*size + x) * 4
			pixels[i+0] = colorByte(nx*0.5 + 0.5)
			pixels[i+1] = colorByte(ny*0.5 + 0.5)
			pixels[i+2] = colorByte(nz*0.5 + 0.5)
			pixels[i+3] = 255
		}
	}
	return &common.TextureStagingData{
		Pixels: pixels,
		Width:  uint32(size),
		Height: uint32(size),
		Format: wgpu.TextureFormatRGBA8Unorm,
	}
}

// brickHeight returns the height field value at a pixel: 0 in the mortar joint,
// 1 on the brick face, with a linear ramp across the bevel between them.
func brickHeight(x, y, size int) float32 {
	courseH := size / brickCourses
	brickW := size / bricksPerRow

	row := y / courseH
	xo := x
	if row%2 == 1 {
		// Running bond: odd courses shift by half a brick.
		xo = x + brickW/2
	}
	bx := xo % brickW
	by := y % courseH

	edge := bx
	if brickW-1-bx < edge {
		edge = brickW - 1 - bx
	}
	if by < edge {
		edge = by
	}
	if courseH-1-by < edge {
		edge = courseH - 1 - by
	}

	if edge < mortarPixels {
		return 0
	}
	bevel := edge - mortarPixels
	if bevel < bevelPixels {
		return float32(bevel) / float32(bevelPixels)
	}
	return 1
}

// brickCell returns the (row, column) index of the brick containing a pixel,
// accounting for the running-bond offset. Used to key per-brick color jitter.
func brickCell(x, y, size int) (row, col int) {
	courseH := size / brickCourses
	brickW := size / bricksPerRow

	row = y / courseH
	xo := x
	if row%2 == 1 {
		xo = x + brickW/2
	}
	col = xo / brickW
	return row, col
}

// hash2 maps integer coordinates to a deterministic pseudo-random value in [0, 1).
func hash2(x, y uint32) float32 {
	h := x*374761393 + y*668265263
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float32(h&0xFFFF) / 65536.0
}

// colorByte clamps a float color channel to [0, 1] and converts it to a byte.
func colorByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255.0 + 0.5)
}
