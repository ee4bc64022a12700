package light

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULight is the GPU-aligned representation of the directional light.
// Matches the WGSL Light struct layout exactly (three vec3 fields, each
// padded to 16 bytes, with the intensity packed into the color row).
// Size: 48 bytes (std140 / WGSL uniform aligned).
type GPULight struct {
	Direction [3]float32 // offset  0: normalized light direction
	_pad0     float32    // offset 12: padding to vec4 alignment
	Color     [3]float32 // offset 16: RGB light color
	Intensity float32    // offset 28: scalar multiplier
	Ambient   [3]float32 // offset 32: RGB ambient color
	_pad1     float32    // offset 44: padding to vec4 alignment
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (48)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, 48)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Direction[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Direction[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Direction[2]))
	binary.LittleEndian.PutUint32(buf[12:16], 0) // padding
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Intensity))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(g.Ambient[0]))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(g.Ambient[1]))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(g.Ambient[2]))
	binary.LittleEndian.PutUint32(buf[44:48], 0) // padding
	return buf
}
