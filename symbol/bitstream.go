package symbol

import (
	"fmt"

	"github.com/arloliu/edgebreaker/errs"
	"github.com/arloliu/edgebreaker/internal/pool"
)

// BitWriter accumulates bits most-significant-bit first into a pooled
// growable byte buffer.
type BitWriter struct {
	bb     *pool.ByteBuffer
	cur    byte
	nBits  uint
	nTotal int
}

// NewBitWriter creates a BitWriter backed by the default symbol-stream pool.
func NewBitWriter() *BitWriter {
	return &BitWriter{bb: pool.GetSymbolStreamBuffer()}
}

// WriteBits writes the low width bits of value, most-significant bit first.
// width must be in [0, 64].
func (w *BitWriter) WriteBits(value uint64, width int) {
	for i := width - 1; i >= 0; i-- {
		bit := byte((value >> uint(i)) & 1)
		w.cur = (w.cur << 1) | bit
		w.nBits++
		if w.nBits == 8 {
			w.bb.MustWrite([]byte{w.cur})
			w.cur = 0
			w.nBits = 0
		}
	}
	w.nTotal += width
}

// Len returns the total number of bits written so far.
func (w *BitWriter) Len() int { return w.nTotal }

// Finish zero-pads the final partial byte and returns the accumulated bytes
// alongside the exact number of valid bits. The writer must not be used
// afterward without a Reset.
func (w *BitWriter) Finish() ([]byte, int) {
	if w.nBits > 0 {
		w.bb.MustWrite([]byte{w.cur << (8 - w.nBits)})
		w.cur = 0
		w.nBits = 0
	}

	return w.bb.Bytes(), w.nTotal
}

// Reset clears the writer for reuse without returning its buffer to the
// pool.
func (w *BitWriter) Reset() {
	w.bb.Reset()
	w.cur = 0
	w.nBits = 0
	w.nTotal = 0
}

// Release returns the writer's backing buffer to the pool. The BitWriter
// must not be used afterward.
func (w *BitWriter) Release() {
	pool.PutSymbolStreamBuffer(w.bb)
	w.bb = nil
}

// BitReader reads bits most-significant-bit first from a fixed byte slice.
// Its position advances monotonically; it never backtracks.
type BitReader struct {
	data   []byte
	bitPos int
	bitLen int
}

// NewBitReader creates a BitReader over data, considering only the first
// bitLen bits valid (the trailing padding bits of the final byte, if any,
// are never read).
func NewBitReader(data []byte, bitLen int) *BitReader {
	return &BitReader{data: data, bitLen: bitLen}
}

// BitPos returns the reader's current bit offset from the start of the
// stream.
func (r *BitReader) BitPos() int { return r.bitPos }

// Remaining returns the number of unread valid bits.
func (r *BitReader) Remaining() int { return r.bitLen - r.bitPos }

// ReadBits reads the next width bits as a most-significant-bit-first
// unsigned integer. Fails with errs.ErrOutOfBounds if fewer than width bits
// remain.
func (r *BitReader) ReadBits(width int) (uint64, error) {
	if width < 0 || r.bitPos+width > r.bitLen {
		return 0, fmt.Errorf("%w: requested %d bits at position %d, stream holds %d valid bits",
			errs.ErrOutOfBounds, width, r.bitPos, r.bitLen)
	}

	var v uint64
	for i := 0; i < width; i++ {
		byteIdx := r.bitPos / 8
		bitIdx := 7 - (r.bitPos % 8)
		bit := (r.data[byteIdx] >> uint(bitIdx)) & 1
		v = (v << 1) | uint64(bit)
		r.bitPos++
	}

	return v, nil
}
