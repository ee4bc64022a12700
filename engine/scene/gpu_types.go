package scene

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// GPUFrameUniform is the GPU-aligned per-frame uniform shared by the carpet
// vertex and fragment stages. The normal matrix is stored as three padded
// columns because WGSL aligns mat3x3 columns to 16 bytes.
//
// Layout matches WGSL:
//
//	struct FrameUniform {
//	    view_proj: mat4x4<f32>,
//	    normal_mat: mat3x3<f32>,
//	    camera_pos: vec3<f32>,
//	}
//
// Total size: 128 bytes.
type GPUFrameUniform struct {
	ViewProj   [16]float32 // offset   0: combined view-projection matrix (mat4x4<f32>)
	NormalMat0 [3]float32  // offset  64: normal matrix column 0
	_pad0      float32     // offset  76: column padding
	NormalMat1 [3]float32  // offset  80: normal matrix column 1
	_pad1      float32     // offset  92: column padding
	NormalMat2 [3]float32  // offset  96: normal matrix column 2
	_pad2      float32     // offset 108: column padding
	CameraPos  [3]float32  // offset 112: world-space camera position (vec3<f32>)
	_pad3      float32     // offset 124: padding to 128 bytes
}

// SetNormalMat splits a column-major 3x3 matrix into the uniform's padded
// column fields.
//
// Parameters:
//   - m: the normal matrix to store
func (g *GPUFrameUniform) SetNormalMat(m mgl32.Mat3) {
	g.NormalMat0 = [3]float32{m[0], m[1], m[2]}
	g.NormalMat1 = [3]float32{m[3], m[4], m[5]}
	g.NormalMat2 = [3]float32{m[6], m[7], m[8]}
}

// Size returns the size of the GPUFrameUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPUFrameUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUFrameUniform struct into a byte buffer suitable
// for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUFrameUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.NormalMat0[i]))
		binary.LittleEndian.PutUint32(buf[80+i*4:], math.Float32bits(g.NormalMat1[i]))
		binary.LittleEndian.PutUint32(buf[96+i*4:], math.Float32bits(g.NormalMat2[i]))
		binary.LittleEndian.PutUint32(buf[112+i*4:], math.Float32bits(g.CameraPos[i]))
	}
	return buf
}
