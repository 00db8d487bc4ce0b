// Package phasealign fetches source scan bytes aligned to a destination's
// bit phase.
//
// Two planes tile a scan line differently whenever the destination bit
// offset x&7 and the source bit offset xSrc&7 disagree. Fetcher carries
// that offset as a shift count and reconstructs an aligned byte stream
// from the source's raw, unaligned bytes one fetch at a time, retaining
// the unshifted remainder (the carry) between calls.
package phasealign

// kind selects which of the three alignment strategies Fetch uses. The
// straight case is kept distinct from a shift of zero so the shift
// formulas below (8-k) are never instantiated with k=0, which would be
// a shift by the byte width.
type kind int

const (
	straight kind = iota
	rightShift
	leftShift
)

// Fetcher produces a stream of source scan bytes already shifted into
// the destination's bit phase. The zero value is not usable; construct
// one with New.
//
// store is held fixed and walked with cursor rather than re-sliced: a
// row's destination byte count and its source byte count can differ by
// one depending on how the two phases straddle a byte boundary, which
// can drive cursor either past the end of store (the row's last fetch
// reads past real data) or, via Advance, back below a position already
// read (the next row's starting offset lands behind where the cursor
// ended up). Both are ordinary cursor arithmetic; neither is expressible
// by re-slicing, which can't un-consume bytes already dropped.
type Fetcher struct {
	store  []byte
	cursor int
	carry  byte
	shift  int // 1..7, meaningful only for rightShift and leftShift
	kind   kind
}

// New returns a Fetcher for the given phase difference. shiftCount is
// (x&7)-(xSrc&7) as computed by the caller: negative shifts bits left,
// positive shifts bits right, zero needs no shift at all.
func New(store []byte, shiftCount int) *Fetcher {
	switch {
	case shiftCount < 0:
		return &Fetcher{store: store, shift: -shiftCount, kind: leftShift}
	case shiftCount > 0:
		return &Fetcher{store: store, shift: shiftCount, kind: rightShift}
	default:
		return &Fetcher{store: store, kind: straight}
	}
}

// peek returns the byte at the cursor without moving it. It reports
// false, reading as zero, once the cursor runs off either end of store.
func (f *Fetcher) peek() (byte, bool) {
	if f.cursor < 0 || f.cursor >= len(f.store) {
		return 0, false
	}
	return f.store[f.cursor], true
}

// Prefetch primes the fetcher at the start of a scan line. It is a
// no-op except for the left-shift variant, which loads the byte at the
// cursor into the carry without advancing; its first Fetch then steps
// to the byte after it.
func (f *Fetcher) Prefetch() {
	if f.kind == leftShift {
		f.carry, _ = f.peek()
	}
}

// Fetch returns the next phase-aligned source byte and advances the
// cursor by one source byte. A row's destination byte count can exceed
// its source byte count by one when the two phases straddle a byte
// boundary differently; the corresponding fetch reads one byte beyond
// the row's source span: the next byte of store, or zero once the
// cursor is past the end of store. That byte's bits only ever reach the
// caller's final, right-masked destination column, so they never
// surface in a stored bit.
func (f *Fetcher) Fetch() byte {
	switch f.kind {
	case straight:
		b, _ := f.peek()
		f.cursor++
		return b
	case rightShift:
		lo, _ := f.peek()
		f.cursor++
		out := (f.carry << (8 - f.shift)) | (lo >> f.shift)
		f.carry = lo
		return out
	default: // leftShift
		f.cursor++
		lo, _ := f.peek()
		out := (f.carry << f.shift) | (lo >> (8 - f.shift))
		f.carry = lo
		return out
	}
}

// Advance steps the cursor by n bytes without fetching, used to move
// to the next scan line once a row's bytes have all been consumed. n
// can be negative: when a row's fetches ran past its own real bytes,
// the next row's true start lies behind where the cursor ended up.
func (f *Fetcher) Advance(n int) {
	f.cursor += n
}
