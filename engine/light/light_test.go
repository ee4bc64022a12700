package light

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight()

	d := l.Direction()
	length := math.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
	assert.InDelta(t, 1.0, length, 1e-6)
	assert.Equal(t, [3]float32{1, 1, 1}, l.Color())
	assert.Equal(t, float32(1.0), l.Intensity())
}

func TestSetDirectionNormalizes(t *testing.T) {
	l := NewLight()
	l.SetDirection(0, -3, 0)
	assert.Equal(t, [3]float32{0, -1, 0}, l.Direction())

	l.SetDirection(0, 0, 0)
	assert.Equal(t, [3]float32{0, 0, 0}, l.Direction())
}

func TestBuilderOptions(t *testing.T) {
	l := NewLight(
		WithDirection(2, 0, 0),
		WithColor(1, 0.9, 0.8),
		WithIntensity(2.5),
		WithAmbient(0.1, 0.2, 0.3),
	)

	assert.Equal(t, [3]float32{1, 0, 0}, l.Direction())
	assert.Equal(t, [3]float32{1, 0.9, 0.8}, l.Color())
	assert.Equal(t, float32(2.5), l.Intensity())
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, l.Ambient())
}

func TestGPUDataLayout(t *testing.T) {
	l := NewLight(
		WithDirection(0, -1, 0),
		WithColor(0.5, 0.25, 0.125),
		WithIntensity(1.5),
		WithAmbient(0.1, 0.1, 0.1),
	)

	g := l.GPUData()
	assert.Equal(t, 48, g.Size())

	buf := g.Marshal()
	require.Len(t, buf, 48)
	assert.Equal(t, math.Float32bits(-1), binary.LittleEndian.Uint32(buf[4:8]), "direction y")
	assert.Equal(t, math.Float32bits(0.5), binary.LittleEndian.Uint32(buf[16:20]), "color r")
	assert.Equal(t, math.Float32bits(1.5), binary.LittleEndian.Uint32(buf[28:32]), "intensity")
	assert.Equal(t, math.Float32bits(0.1), binary.LittleEndian.Uint32(buf[32:36]), "ambient r")
}
