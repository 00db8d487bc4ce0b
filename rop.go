package raster

import "github.com/royratcliffe/bit-plane/internal/blit"

// Rop2 selects one of sixteen binary raster operations, a Boolean
// function of the destination bit D and source bit S applied
// independently across all eight lanes of a scan byte. Names follow
// reverse-Polish notation: a, n, o and x stand for AND, NOT, OR and
// XOR.
type Rop2 int

// The sixteen binary raster operations.
const (
	Rop0   Rop2 = Rop2(blit.Op0)    // 0x00 (blackness)
	DSon   Rop2 = Rop2(blit.OpDSon) // ~(D | S)
	DSna   Rop2 = Rop2(blit.OpDSna) // D & ~S
	Sn     Rop2 = Rop2(blit.OpSn)   // ~S (notSrcCopy)
	SDna   Rop2 = Rop2(blit.OpSDna) // S & ~D (srcErase)
	Dn     Rop2 = Rop2(blit.OpDn)   // ~D (dstInvert)
	DSx    Rop2 = Rop2(blit.OpDSx)  // D ^ S (srcInvert)
	DSan   Rop2 = Rop2(blit.OpDSan) // ~(D & S)
	DSa    Rop2 = Rop2(blit.OpDSa)  // D & S (srcAnd)
	DSxn   Rop2 = Rop2(blit.OpDSxn) // ~(D ^ S)
	D      Rop2 = Rop2(blit.OpD)    // D (no-op)
	DSno   Rop2 = Rop2(blit.OpDSno) // D | ~S (mergePaint)
	S      Rop2 = Rop2(blit.OpS)    // S (srcCopy)
	SDno   Rop2 = Rop2(blit.OpSDno) // S | ~D
	DSo    Rop2 = Rop2(blit.OpDSo)  // D | S (srcPaint)

	// whiteAsRop2 is the binary code for whiteness (0xFF). It has no
	// exported name of its own: the original's enumerator is named
	// "rop1", which in Go would collide with the Rop1 type below, so
	// it surfaces only through the Whiteness unary constant.
	whiteAsRop2 Rop2 = Rop2(blit.Op1)

	// Aliases for the more commonly used codes.
	NotSrcErase = DSon
	NotSrcCopy  = Sn
	SrcErase    = SDna
	SrcInvert   = DSx
	SrcAnd      = DSa
	MergePaint  = DSno
	SrcCopy     = S
	SrcPaint    = DSo
)

// Rop1 selects one of the three unary raster operations. A unary blit
// has no independent source operand; BitPlane.BitBlt1 delegates to the
// binary blit using the destination as its own source, relying on the
// lazy-source-read property of these three operations (none of them
// reference S) to make that aliasing safe.
type Rop1 int

// The three unary raster operations.
const (
	Blackness Rop1 = Rop1(Rop0)
	DstInvert Rop1 = Rop1(Dn)
	Whiteness Rop1 = Rop1(whiteAsRop2)
)

// toRop2 converts a unary code to its equivalent binary code, an
// explicit conversion in place of the original's implicit
// enum-to-enum cast.
func (r Rop1) toRop2() Rop2 { return Rop2(r) }
