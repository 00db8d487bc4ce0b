package raster

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"
)

func TestBitPlaneImplementsImageImage(t *testing.T) {
	var _ image.Image = (*BitPlane)(nil)
}

func TestAtMatchesCheckerboard(t *testing.T) {
	pat := Wrap(2, 2, []byte{0x40, 0x80})
	img := New(8, 8)
	for y := 0; y < 8; y += 2 {
		for x := 0; x < 8; x += 2 {
			img.BitBlt2(x, y, 2, 2, pat, 0, 0, SrcCopy)
		}
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := color.Gray{Y: uint8(((x & 1) ^ (y & 1)) * 255)}
			got := img.At(x, y)
			r, _, _, _ := got.RGBA()
			wr, _, _, _ := want.RGBA()
			if r != wr {
				t.Errorf("At(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestAtOutOfBoundsIsBlack(t *testing.T) {
	bp := New(4, 4)
	c := bp.At(100, 100)
	r, g, b, a := c.RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("out-of-bounds At = %v, want opaque black", c)
	}
}

func TestBoundsAndColorModel(t *testing.T) {
	bp := New(10, 20)
	if bp.Bounds() != image.Rect(0, 0, 10, 20) {
		t.Errorf("Bounds() = %v, want (0,0)-(10,20)", bp.Bounds())
	}
	if bp.ColorModel() != color.GrayModel {
		t.Error("ColorModel() should be color.GrayModel")
	}
}

// TestDrawSrcCrossValidation draws a BitPlane through x/image/draw's
// own Src compositor and checks the result against the plane's own
// read-back, cross-validating this module's bit layout against the
// standard image ecosystem rather than only against itself.
func TestDrawSrcCrossValidation(t *testing.T) {
	src := Wrap(8, 8, []byte{
		0xF0, 0x0F, 0xF0, 0x0F,
		0xF0, 0x0F, 0xF0, 0x0F,
	})
	dst := image.NewGray(image.Rect(0, 0, 8, 8))
	draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := bitAt(src, x, y) * 255
			got := int(dst.GrayAt(x, y).Y)
			if got != want {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}
