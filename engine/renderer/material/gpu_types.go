package material

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUMaterialParams is the GPU-aligned uniform for the carpet fragment shader's
// material parameters. Matches the WGSL MaterialParams struct layout exactly.
// Size: 16 bytes (std140 aligned).
type GPUMaterialParams struct {
	SpecularPower  float32 // offset  0: Blinn-Phong specular exponent
	NormalStrength float32 // offset  4: XY scale applied to sampled tangent-space normals
	_pad0          float32 // offset  8: padding to 16-byte alignment
	_pad1          float32 // offset 12: padding to 16-byte alignment
}

// Size returns the size of the GPUMaterialParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes (16)
func (g *GPUMaterialParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMaterialParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload.
func (g *GPUMaterialParams) Marshal() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.SpecularPower))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.NormalStrength))
	binary.LittleEndian.PutUint32(buf[8:12], 0)  // padding
	binary.LittleEndian.PutUint32(buf[12:16], 0) // padding
	return buf
}
