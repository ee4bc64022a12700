// package hud rasterizes the viewer's state readout into an RGBA texture for a
// screen-space overlay panel. The scene re-uploads the texture only when the
// text changes; the panel quad itself is generated in the vertex shader from
// the GPUHudParams uniform, so the overlay needs no vertex buffer.
package hud

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Carmen-Shannon/menger-go/common"
)

// Glyph metrics of basicfont.Face7x13, fixed for the life of the overlay.
const (
	glyphAscent = 11
	lineHeight  = 13
	lineGap     = 2
)

type overlayImpl struct {
	scale   int
	padding int
	fg      color.RGBA
	bg      color.RGBA

	text    string
	staging *common.TextureStagingData
	dirty   bool
}

// Overlay defines the interface for the HUD text panel. SetText re-rasterizes
// the panel when the content changes and marks it dirty; the scene checks Dirty
// each tick and re-uploads the staging data before clearing the flag. Not safe
// for concurrent use; the frame loop owns the overlay.
type Overlay interface {
	// SetText replaces the panel content. Lines are drawn top to bottom.
	// Rasterization is skipped when the joined text is unchanged.
	//
	// Parameters:
	//   - lines: the text lines to display
	SetText(lines ...string)

	// Dirty reports whether the panel texture changed since the last ClearDirty.
	//
	// Returns:
	//   - bool: true if the staging data needs a GPU re-upload
	Dirty() bool

	// ClearDirty marks the current staging data as uploaded.
	ClearDirty()

	// Staging returns the rasterized panel pixels for GPU upload.
	// Returns nil before the first SetText.
	//
	// Returns:
	//   - *common.TextureStagingData: the panel texture staging data
	Staging() *common.TextureStagingData

	// PanelWidth returns the current panel width in screen pixels.
	//
	// Returns:
	//   - int: the width, or 0 before the first SetText
	PanelWidth() int

	// PanelHeight returns the current panel height in screen pixels.
	//
	// Returns:
	//   - int: the height, or 0 before the first SetText
	PanelHeight() int
}

var _ Overlay = &overlayImpl{}

// NewOverlay creates a HUD overlay with the specified options.
// Defaults: 2x glyph scale, 6 px padding, white text on translucent black.
//
// Parameters:
//   - options: functional options to configure the overlay
//
// Returns:
//   - Overlay: the configured overlay with no content yet
func NewOverlay(options ...OverlayBuilderOption) Overlay {
	o := &overlayImpl{
		scale:   2,
		padding: 6,
		fg:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		bg:      color.RGBA{A: 160},
	}
	for _, option := range options {
		option(o)
	}
	if o.scale < 1 {
		o.scale = 1
	}
	return o
}

func (o *overlayImpl) SetText(lines ...string) {
	joined := strings.Join(lines, "\n")
	if joined == o.text && o.staging != nil {
		return
	}
	o.text = joined
	o.staging = o.rasterize(lines)
	o.dirty = true
}

func (o *overlayImpl) Dirty() bool {
	return o.dirty
}

func (o *overlayImpl) ClearDirty() {
	o.dirty = false
}

func (o *overlayImpl) Staging() *common.TextureStagingData {
	return o.staging
}

func (o *overlayImpl) PanelWidth() int {
	if o.staging == nil {
		return 0
	}
	return int(o.staging.Width)
}

func (o *overlayImpl) PanelHeight() int {
	if o.staging == nil {
		return 0
	}
	return int(o.staging.Height)
}

// rasterize draws the lines with basicfont.Face7x13 at 1x, then upscales by
// the integer scale factor with nearest-neighbor so the bitmap glyphs stay crisp.
func (o *overlayImpl) rasterize(lines []string) *common.TextureStagingData {
	width := 1
	for _, line := range lines {
		if w := font.MeasureString(basicfont.Face7x13, line).Ceil(); w > width {
			width = w
		}
	}
	width += 2 * o.padding
	height := len(lines)*(lineHeight+lineGap) - lineGap + 2*o.padding
	if len(lines) == 0 {
		height = 2 * o.padding
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.bg), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(o.fg),
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		d.Dot = fixed.P(o.padding, o.padding+i*(lineHeight+lineGap)+glyphAscent)
		d.DrawString(line)
	}

	if o.scale == 1 {
		return &common.TextureStagingData{
			Pixels: img.Pix,
			Width:  uint32(width),
			Height: uint32(height),
		}
	}

	outW := width * o.scale
	outH := height * o.scale
	out := make([]byte, outW*outH*4)
	for y := 0; y < outH; y++ {
		srcRow := (y / o.scale) * img.Stride
		dstRow := y * outW * 4
		for x := 0; x < outW; x++ {
			src := srcRow + (x/o.scale)*4
			dst := dstRow + x*4
			copy(out[dst:dst+4], img.Pix[src:src+4])
		}
	}
	return &common.TextureStagingData{
		Pixels: out,
		Width:  uint32(outW),
		Height: uint32(outH),
	}
}
