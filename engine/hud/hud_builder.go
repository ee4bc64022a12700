package hud

import "image/color"

// OverlayBuilderOption is a functional option for configuring an Overlay during construction via NewOverlay.
type OverlayBuilderOption func(*overlayImpl)

// WithScale sets the integer upscale factor applied to the 7x13 base glyphs.
// Values below 1 are treated as 1.
//
// Parameters:
//   - scale: the glyph scale factor
//
// Returns:
//   - OverlayBuilderOption: a function that applies the scale option to an overlay
func WithScale(scale int) OverlayBuilderOption {
	return func(o *overlayImpl) {
		o.scale = scale
	}
}

// WithPadding sets the padding around the text block in unscaled pixels.
//
// Parameters:
//   - padding: the padding in pixels
//
// Returns:
//   - OverlayBuilderOption: a function that applies the padding option to an overlay
func WithPadding(padding int) OverlayBuilderOption {
	return func(o *overlayImpl) {
		o.padding = padding
	}
}

// WithForeground sets the text color.
//
// Parameters:
//   - c: the RGBA text color
//
// Returns:
//   - OverlayBuilderOption: a function that applies the foreground option to an overlay
func WithForeground(c color.RGBA) OverlayBuilderOption {
	return func(o *overlayImpl) {
		o.fg = c
	}
}

// WithBackground sets the panel background color. The alpha channel controls
// how much of the scene shows through the panel.
//
// Parameters:
//   - c: the RGBA background color
//
// Returns:
//   - OverlayBuilderOption: a function that applies the background option to an overlay
func WithBackground(c color.RGBA) OverlayBuilderOption {
	return func(o *overlayImpl) {
		o.bg = c
	}
}
