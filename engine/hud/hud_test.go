package hud

import (
	"encoding/binary"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTextMarksDirty(t *testing.T) {
	o := NewOverlay()

	assert.False(t, o.Dirty())
	assert.Nil(t, o.Staging())

	o.SetText("depth: 3", "zoom: 1.00")
	assert.True(t, o.Dirty())
	require.NotNil(t, o.Staging())

	o.ClearDirty()
	assert.False(t, o.Dirty())

	// Same content does not re-rasterize.
	before := o.Staging()
	o.SetText("depth: 3", "zoom: 1.00")
	assert.False(t, o.Dirty())
	assert.Same(t, before, o.Staging())

	o.SetText("depth: 4", "zoom: 1.00")
	assert.True(t, o.Dirty())
}

func TestPanelDimensionsFollowScaleAndPadding(t *testing.T) {
	o := NewOverlay(WithScale(2), WithPadding(6))

	// Face7x13 advances 7 px per glyph: "abc" measures 21 px.
	o.SetText("abc")

	staging := o.Staging()
	require.NotNil(t, staging)
	assert.Equal(t, uint32((21+12)*2), staging.Width)
	assert.Equal(t, uint32((13+12)*2), staging.Height)
	assert.Equal(t, o.PanelWidth()*o.PanelHeight()*4, len(staging.Pixels))
}

func TestScaleOneKeepsBaseDimensions(t *testing.T) {
	o := NewOverlay(WithScale(1), WithPadding(4))

	o.SetText("zoom: 10.00")

	staging := o.Staging()
	require.NotNil(t, staging)
	assert.Equal(t, uint32(7*11+8), staging.Width)
	assert.Equal(t, uint32(13+8), staging.Height)
}

func TestRasterizeDrawsTextOverBackground(t *testing.T) {
	fg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	bg := color.RGBA{A: 160}
	o := NewOverlay(WithScale(1), WithPadding(4), WithForeground(fg), WithBackground(bg))

	o.SetText("fps: 60.0")
	staging := o.Staging()
	require.NotNil(t, staging)

	// Top-left corner is padding, so it carries the background color.
	assert.Equal(t, []byte{0, 0, 0, 160}, staging.Pixels[0:4])

	foundText := false
	for i := 0; i+3 < len(staging.Pixels); i += 4 {
		if staging.Pixels[i] == 255 && staging.Pixels[i+1] == 255 && staging.Pixels[i+2] == 255 && staging.Pixels[i+3] == 255 {
			foundText = true
			break
		}
	}
	assert.True(t, foundText, "expected at least one foreground glyph pixel")
}

func TestMultiLinePanelsGrowPerLine(t *testing.T) {
	o := NewOverlay(WithScale(1), WithPadding(0))

	o.SetText("a")
	oneLine := o.PanelHeight()

	o.SetText("a", "b")
	twoLines := o.PanelHeight()

	assert.Equal(t, lineHeight, oneLine)
	assert.Equal(t, 2*lineHeight+lineGap, twoLines)
}

func TestGPUHudParamsLayout(t *testing.T) {
	p := GPUHudParams{
		ScreenSize: [2]float32{1280, 720},
		PanelSize:  [2]float32{200, 80},
		Origin:     [2]float32{12, 12},
	}

	assert.Equal(t, 32, p.Size())

	buf := p.Marshal()
	assert.Len(t, buf, 32)
	assert.Equal(t, float32(1280), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])))
	assert.Equal(t, float32(200), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:12])))
	assert.Equal(t, float32(12), math.Float32frombits(binary.LittleEndian.Uint32(buf[16:20])))
}
