package buffer

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/edgebreaker/errs"
	"github.com/arloliu/edgebreaker/format"
	"github.com/arloliu/edgebreaker/internal/pool"
)

// MaybeInitBuffer is the uninitialized-mode counterpart of TypedBuffer used
// by decoders: capacity, component type, and arity are fixed at
// construction, but content is written index-by-index as symbols are
// decoded. It tracks which cells have been written and refuses to convert to
// an initialized TypedBuffer until every cell has been filled.
type MaybeInitBuffer struct {
	bb            *pool.ByteBuffer
	componentType format.ComponentScalar
	numComponents int
	length        int
	written       []bool
	writtenCount  int
}

// NewMaybeInitBuffer allocates length*numComponents*componentType.Size()
// bytes of undefined content and a per-cell written bitmap, all initially
// unset.
func NewMaybeInitBuffer(length int, componentType format.ComponentScalar, numComponents int) *MaybeInitBuffer {
	bb := pool.GetAttributeBuffer()
	bb.ExtendOrGrow(length * valueSize(componentType, numComponents))

	return &MaybeInitBuffer{
		bb:            bb,
		componentType: componentType,
		numComponents: numComponents,
		length:        length,
		written:       make([]bool, length),
	}
}

// Len returns the number of cells in the buffer.
func (b *MaybeInitBuffer) Len() int { return b.length }

// ComponentType returns the buffer's declared scalar type.
func (b *MaybeInitBuffer) ComponentType() format.ComponentScalar { return b.componentType }

// NumComponents returns the buffer's declared arity.
func (b *MaybeInitBuffer) NumComponents() int { return b.numComponents }

// IsWritten reports whether cell i has been written.
func (b *MaybeInitBuffer) IsWritten(i int) bool {
	if i < 0 || i >= b.length {
		return false
	}

	return b.written[i]
}

// WriteCount returns the number of cells written so far.
func (b *MaybeInitBuffer) WriteCount() int { return b.writtenCount }

func (b *MaybeInitBuffer) checkType(tSize int) error {
	want := valueSize(b.componentType, b.numComponents)
	if tSize != want {
		return fmt.Errorf("%w: value type is %d bytes, buffer holds %d byte values (%d x %s)",
			errs.ErrWrongComponentType, tSize, want, b.numComponents, b.componentType)
	}

	return nil
}

// WriteCell stores value at cell i and marks it written. Fails with
// errs.ErrBufferFinished if the buffer has already been converted via
// IntoInitialized.
func WriteCell[T any](b *MaybeInitBuffer, i int, value T) error {
	if b.bb == nil {
		return fmt.Errorf("%w: cannot write cell %d", errs.ErrBufferFinished, i)
	}

	var zero T
	tSize := int(unsafe.Sizeof(zero))
	if err := b.checkType(tSize); err != nil {
		return err
	}
	if i < 0 || i >= b.length {
		return fmt.Errorf("%w: index %d, length %d", errs.ErrOutOfBounds, i, b.length)
	}

	off := i * tSize
	dst := b.bb.Slice(off, off+tSize)
	copy(dst, bytesOfOne(&value))

	if !b.written[i] {
		b.written[i] = true
		b.writtenCount++
	}

	return nil
}

// ReadCell returns the value at cell i reinterpreted as T, regardless of
// whether the cell has been written; callers that need the written
// guarantee should check IsWritten first or convert via IntoInitialized.
func ReadCell[T any](b *MaybeInitBuffer, i int) (T, error) {
	var zero T
	if b.bb == nil {
		return zero, fmt.Errorf("%w: cannot read cell %d", errs.ErrBufferFinished, i)
	}

	tSize := int(unsafe.Sizeof(zero))
	if err := b.checkType(tSize); err != nil {
		return zero, err
	}
	if i < 0 || i >= b.length {
		return zero, fmt.Errorf("%w: index %d, length %d", errs.ErrOutOfBounds, i, b.length)
	}

	off := i * tSize
	raw := b.bb.Slice(off, off+tSize)

	return *(*T)(unsafe.Pointer(&raw[0])), nil
}

// IntoInitialized asserts every cell has been written and yields the
// equivalent initialized TypedBuffer. The MaybeInitBuffer must not be used
// afterward.
func (b *MaybeInitBuffer) IntoInitialized() (*TypedBuffer, error) {
	if b.bb == nil {
		return nil, fmt.Errorf("%w: buffer already converted", errs.ErrBufferFinished)
	}

	for i, w := range b.written {
		if !w {
			return nil, fmt.Errorf("%w: cell %d of %d was never written", errs.ErrUninitializedCell, i, b.length)
		}
	}

	tb := &TypedBuffer{
		bb:            b.bb,
		componentType: b.componentType,
		numComponents: b.numComponents,
		length:        b.length,
	}
	b.bb = nil

	return tb, nil
}
