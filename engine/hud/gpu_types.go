package hud

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUHudParams is the GPU-aligned uniform describing where the overlay panel
// sits on screen. The vertex shader expands it into a two-triangle quad from
// the vertex index, so the overlay draws without a vertex buffer.
//
// Layout matches WGSL:
//
//	struct HudParams {
//	    screen_size: vec2<f32>,
//	    panel_size: vec2<f32>,
//	    origin: vec2<f32>,
//	    _pad: vec2<f32>,
//	}
//
// Total size: 32 bytes.
type GPUHudParams struct {
	// ScreenSize is the surface size in pixels.
	ScreenSize [2]float32
	// PanelSize is the panel texture size in pixels.
	PanelSize [2]float32
	// Origin is the panel's top-left corner in pixels from the window's top-left.
	Origin [2]float32
	_pad0  float32
	_pad1  float32
}

// Size returns the size of the GPUHudParams struct in bytes.
//
// Returns:
//   - int: the total byte size (32)
func (g *GPUHudParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal converts the GPUHudParams into a byte slice for GPU upload.
//
// Returns:
//   - []byte: the little-endian byte representation
func (g *GPUHudParams) Marshal() []byte {
	buf := make([]byte, g.Size())
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.ScreenSize[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.ScreenSize[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.PanelSize[0]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.PanelSize[1]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Origin[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Origin[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g._pad0))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g._pad1))
	return buf
}
