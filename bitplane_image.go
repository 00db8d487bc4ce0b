package raster

import (
	"image"
	"image/color"
)

// newScratch returns a single-byte plane for the 1x1 blits that back
// At. It is a fresh BitPlane per call rather than a pooled value:
// memory-pool tuning is explicitly out of this module's scope.
func newScratch() *BitPlane {
	return &BitPlane{width: 1, height: 1, rowBytes: 1, store: make([]byte, 1), logger: Logger()}
}

// At implements image.Image. It reads pixel (x, y) via a single-pixel
// read-back technique: a 1x1 srcCopy blit into a one-byte scratch
// plane, with the top bit of the scratch byte giving the pixel.
// Coordinates outside the plane return black, matching image.Image's
// convention of returning the zero Color for out-of-bounds queries.
func (bp *BitPlane) At(x, y int) color.Color {
	scratch := newScratch()
	if !scratch.BitBlt2(0, 0, 1, 1, bp, x, y, SrcCopy) {
		return color.Gray{Y: 0}
	}
	if scratch.store[0]&0x80 != 0 {
		return color.Gray{Y: 255}
	}
	return color.Gray{Y: 0}
}

// Bounds implements image.Image.
func (bp *BitPlane) Bounds() image.Rectangle {
	return image.Rect(0, 0, bp.width, bp.height)
}

// ColorModel implements image.Image. A BitPlane only ever produces
// the two values color.Gray{0} (black) and color.Gray{255} (white).
// The model returned is the standard color.GrayModel, which converts
// other colours to any of its 256 grey levels, not only to those two.
func (bp *BitPlane) ColorModel() color.Model {
	return color.GrayModel
}

var _ image.Image = (*BitPlane)(nil)
