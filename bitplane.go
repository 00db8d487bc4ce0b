// Package raster implements a 1-bit-per-pixel bitmap, BitPlane, and its
// bit-block transfer (blit) primitive.
//
// # Overview
//
// A BitPlane is a rectangular array of bits mapped one-to-one with
// pixels: 0 is black, 1 is white. Bytes pack eight horizontally
// adjacent pixels with the leftmost pixel in the most significant bit.
// BitBlt composes a source rectangle onto a destination rectangle
// under one of sixteen Boolean raster operations (see Rop2), clipping
// both rectangles against their planes and aligning source and
// destination bit phases through a carry-propagating shift pipeline
// where the two rectangles don't share a byte boundary.
//
// # Quick Start
//
//	pat := raster.Wrap(2, 2, []byte{0x40, 0x80}) // checkerboard tile
//	plane := raster.New(8, 8)
//	for y := 0; y < 8; y += 2 {
//		for x := 0; x < 8; x += 2 {
//			plane.BitBlt2(x, y, 2, 2, pat, 0, 0, raster.SrcCopy)
//		}
//	}
//
// # Architecture
//
//   - Public API: BitPlane, Rop1, Rop2 (this package).
//   - internal/phasealign: bit-level source alignment.
//   - internal/blit: per-byte fetch-logic-store dispatch over the 16
//     raster operations.
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel. X increases right, Y increases
// down. Rows are contiguous in memory with stride RowBytes =
// ceil(width/8); padding bits to the right of the last pixel in a row
// are unspecified and must not be relied upon.
//
// # Concurrency
//
// BitPlane is single-threaded and synchronous: BitBlt2 and BitBlt1 run
// to completion with no internal scheduling, and a plane's backing
// store must not be mutated concurrently with a blit that touches it.
// Source and destination must not overlap within the same plane
// except via the unary blit's documented self-aliasing.
package raster

import (
	"context"
	"log/slog"

	"github.com/royratcliffe/bit-plane/internal/blit"
	"github.com/royratcliffe/bit-plane/internal/phasealign"
)

// BitPlane is a rectangular monochrome image: storage, geometry and
// the blit entry points. The zero value is the empty plane (width and
// height both zero) and is immediately safe to use — every blit
// touching it is a no-op returning false.
type BitPlane struct {
	width    int
	height   int
	rowBytes int    // ceil(width/8); only meaningful when width, height > 0
	store    []byte // length rowBytes*height; nil for the empty plane
	logger   *slog.Logger
}

// Wrap constructs a BitPlane that borrows the caller's byte slice
// rather than owning its own storage. cx and cy are absolutised if
// negative; if either is zero the plane becomes empty and v is
// ignored. The caller must ensure len(v) >= ceil(cx/8)*cy.
func Wrap(cx, cy int, v []byte) *BitPlane {
	cx, cy = abs(cx), abs(cy)
	bp := &BitPlane{logger: Logger()}
	if cx == 0 || cy == 0 {
		return bp
	}
	bp.width = cx
	bp.height = cy
	bp.rowBytes = rowBytesFor(cx)
	bp.store = v
	return bp
}

// New allocates a new BitPlane of the given size, applying opts. It
// panics if cx or cy is zero after sign-normalisation — use CreateErr
// or Create for a fallible variant. New exists as the idiomatic
// construction entry point; the original fallible create(cx, cy) is
// exposed separately as the Create and CreateErr methods below for
// callers that want to allocate into an existing, possibly non-empty,
// BitPlane value.
func New(cx, cy int, opts ...Option) *BitPlane {
	bp := &BitPlane{logger: Logger()}
	for _, opt := range opts {
		opt(bp)
	}
	if !bp.Create(cx, cy) {
		panic("raster: New called with zero width or height")
	}
	return bp
}

// Clone deep-copies the receiver. The clone always owns its storage,
// even when the receiver borrows its storage from elsewhere — cloning
// a borrowed plane still produces an independent copy, since Go slice
// allocation either succeeds or the runtime panics, leaving no silent
// empty-plane ambiguity for callers to worry about.
func (bp *BitPlane) Clone() *BitPlane {
	clone := &BitPlane{
		width:    bp.width,
		height:   bp.height,
		rowBytes: bp.rowBytes,
		logger:   bp.logger,
	}
	if bp.store != nil {
		clone.store = make([]byte, len(bp.store))
		copy(clone.store, bp.store)
	}
	return clone
}

// Create allocates cx-by-cy storage owned by bp, discarding any
// previous contents. It returns false, leaving bp empty, if cx or cy
// is zero after sign-normalisation.
func (bp *BitPlane) Create(cx, cy int) bool {
	cx, cy = abs(cx), abs(cy)
	if cx == 0 || cy == 0 {
		bp.width, bp.height, bp.rowBytes, bp.store = 0, 0, 0, nil
		return false
	}
	bp.rowBytes = rowBytesFor(cx)
	bp.store = make([]byte, bp.rowBytes*cy)
	bp.width = cx
	bp.height = cy
	return true
}

// CreateErr is Create with an idiomatic error return instead of a
// bare boolean, for callers that prefer to propagate errors.New. It
// reports ErrInvalidDimensions rather than a silent false.
func (bp *BitPlane) CreateErr(cx, cy int) error {
	if !bp.Create(cx, cy) {
		return ErrInvalidDimensions
	}
	return nil
}

// Width returns the plane's width in pixels.
func (bp *BitPlane) Width() int { return bp.width }

// Height returns the plane's height in pixels.
func (bp *BitPlane) Height() int { return bp.height }

// RowBytes returns the number of scan bytes per row.
func (bp *BitPlane) RowBytes() int { return bp.rowBytes }

// Bits returns a slice view starting at the scan byte containing
// pixel (x, y). It performs no bounds checking; x and y must lie
// within the plane.
func (bp *BitPlane) Bits(x, y int) []byte {
	return bp.store[bp.rowBytes*y+(x>>3):]
}

// BitBlt2 performs a bit-block transfer from src into bp under the
// binary raster operation rop2, returning false without modifying bp
// if the destination and source rectangles, after clipping, do not
// intersect.
func (bp *BitPlane) BitBlt2(x, y, cx, cy int, src *BitPlane, xSrc, ySrc int, rop2 Rop2) bool {
	if cx < 0 {
		cx = -cx
		x -= cx
		xSrc -= cx
	}
	if cy < 0 {
		cy = -cy
		y -= cy
		ySrc -= cy
	}

	xOff := max3(0, -x, -xSrc)
	if xOff >= cx {
		bp.logf("blit: empty x intersection")
		return false
	}
	x += xOff
	xSrc += xOff
	cx -= xOff

	cx = minPositive(cx, bp.width-x, src.width-xSrc)
	if cx <= 0 {
		bp.logf("blit: empty x extent after clip")
		return false
	}

	yOff := max3(0, -y, -ySrc)
	if yOff >= cy {
		bp.logf("blit: empty y intersection")
		return false
	}
	y += yOff
	ySrc += yOff
	cy -= yOff

	cy = minPositive(cy, bp.height-y, src.height-ySrc)
	if cy <= 0 {
		bp.logf("blit: empty y extent after clip")
		return false
	}

	shiftCount := (x & 7) - (xSrc & 7)
	xMax := x + cx - 1
	extraBytes := (xMax >> 3) - (x >> 3)
	leftMask := byte(0xFF >> (x & 7))
	rightMask := byte(0xFF << (7 - (xMax & 7)))
	dstStride := bp.rowBytes - 1 - extraBytes
	srcStride := src.rowBytes - 1 - extraBytes

	fetcher := phasealign.New(src.Bits(xSrc, ySrc), shiftCount)
	dispatcher := blit.New(bp.Bits(x, y), fetcher, blit.Op(rop2))

	for row := 0; row < cy; row++ {
		fetcher.Prefetch()
		if extraBytes == 0 {
			dispatcher.FetchLogicStoreMasked(leftMask & rightMask)
		} else {
			dispatcher.FetchLogicStoreMasked(leftMask)
			for i := 0; i < extraBytes-1; i++ {
				dispatcher.FetchLogicStore()
			}
			dispatcher.FetchLogicStoreMasked(rightMask)
		}
		dispatcher.Advance(dstStride)
		fetcher.Advance(srcStride)
	}
	bp.logf("blit: transferred rect", slog.Int("cx", cx), slog.Int("cy", cy))
	return true
}

// BitBlt1 performs a bit-block transfer within bp under the unary
// raster operation rop1, using bp itself as the source at (x, y). It
// delegates to BitBlt2 with the equivalent binary code; the lazy
// source read contract makes this self-aliasing safe because none of
// the three unary operations ever call fetch.
func (bp *BitPlane) BitBlt1(x, y, cx, cy int, rop1 Rop1) bool {
	return bp.BitBlt2(x, y, cx, cy, bp, x, y, rop1.toRop2())
}

func (bp *BitPlane) logf(msg string, attrs ...slog.Attr) {
	l := bp.logger
	if l == nil {
		l = Logger()
	}
	l.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

func rowBytesFor(cx int) int {
	return (cx + 7) >> 3
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// minPositive returns the minimum of the three extents, used by the
// clipping steps that shrink cx/cy to fit both planes' borders.
func minPositive(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
