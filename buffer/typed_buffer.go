// Package buffer implements the contiguous, type-erased byte store that
// backs every attribute: a TypedBuffer tags a raw byte region with a
// component scalar type and a component count, and imposes typed views on
// that region at the access site rather than carrying a generic parameter
// on the store itself.
package buffer

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/edgebreaker/endian"
	"github.com/arloliu/edgebreaker/errs"
	"github.com/arloliu/edgebreaker/format"
	"github.com/arloliu/edgebreaker/internal/pool"
)

// TypedBuffer is a contiguous byte region holding Len() values, each a fixed
// tuple of NumComponents() scalars of one ComponentScalar. Values are packed
// with no padding, in host-native byte order.
type TypedBuffer struct {
	bb            *pool.ByteBuffer
	componentType format.ComponentScalar
	numComponents int
	length        int
}

func valueSize(ct format.ComponentScalar, numComponents int) int {
	return ct.Size() * numComponents
}

func bytesOfOne[T any](value *T) []byte {
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if sz == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(value)), sz)
}

// NewTypedBuffer constructs a TypedBuffer from an ordered sequence of values
// of tuple type T. T's in-memory size must equal
// numComponents*componentType.Size(); on success Len() equals len(values).
func NewTypedBuffer[T any](values []T, componentType format.ComponentScalar, numComponents int) (*TypedBuffer, error) {
	var zero T
	tSize := int(unsafe.Sizeof(zero))
	want := valueSize(componentType, numComponents)
	if tSize != want {
		return nil, fmt.Errorf("%w: value type is %d bytes, buffer expects %d bytes (%d x %s)",
			errs.ErrWrongArity, tSize, want, numComponents, componentType)
	}

	bb := pool.GetAttributeBuffer()
	if len(values) > 0 {
		raw := unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), tSize*len(values))
		bb.MustWrite(raw)
	}

	return &TypedBuffer{
		bb:            bb,
		componentType: componentType,
		numComponents: numComponents,
		length:        len(values),
	}, nil
}

// NewUninitializedTypedBuffer allocates length*numComponents*componentType.Size()
// bytes of undefined content. Reads of a cell before it is written via Write
// are undefined and must not be performed; MaybeInitBuffer is the checked
// counterpart for callers that need that guarantee enforced.
func NewUninitializedTypedBuffer(length int, componentType format.ComponentScalar, numComponents int) *TypedBuffer {
	bb := pool.GetAttributeBuffer()
	bb.ExtendOrGrow(length * valueSize(componentType, numComponents))

	return &TypedBuffer{
		bb:            bb,
		componentType: componentType,
		numComponents: numComponents,
		length:        length,
	}
}

// Len returns the number of values in the buffer.
func (b *TypedBuffer) Len() int { return b.length }

// ComponentType returns the buffer's declared scalar type.
func (b *TypedBuffer) ComponentType() format.ComponentScalar { return b.componentType }

// NumComponents returns the buffer's declared arity.
func (b *TypedBuffer) NumComponents() int { return b.numComponents }

// Release returns the buffer's backing storage to the pool. The TypedBuffer
// must not be used afterward.
func (b *TypedBuffer) Release() {
	pool.PutAttributeBuffer(b.bb)
	b.bb = nil
}

func (b *TypedBuffer) checkType(tSize int) error {
	want := valueSize(b.componentType, b.numComponents)
	if tSize != want {
		return fmt.Errorf("%w: value type is %d bytes, buffer holds %d byte values (%d x %s)",
			errs.ErrWrongComponentType, tSize, want, b.numComponents, b.componentType)
	}

	return nil
}

// Get returns the value at index i reinterpreted as T. Fails with
// errs.ErrWrongComponentType if sizeof(T) != num_components*component_size,
// and errs.ErrOutOfBounds if i is past Len().
func Get[T any](b *TypedBuffer, i int) (T, error) {
	var zero T
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

// Write stores value at index i, reinterpreting it as raw bytes. Fails with
// errs.ErrWrongComponentType if sizeof(T) != num_components*component_size,
// and errs.ErrOutOfBounds if i is past Len().
func Write[T any](b *TypedBuffer, i int, value T) error {
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

	return nil
}

// AsSlice returns a checked typed view over the whole buffer. The view
// shares storage with the buffer and must not outlive it.
func AsSlice[T any](b *TypedBuffer) ([]T, error) {
	var zero T
	tSize := int(unsafe.Sizeof(zero))
	if err := b.checkType(tSize); err != nil {
		return nil, err
	}
	if b.length == 0 {
		return nil, nil
	}

	raw := b.bb.Slice(0, b.length*tSize)

	return unsafe.Slice((*T)(unsafe.Pointer(&raw[0])), b.length), nil
}

// UnsafeSlice returns a typed view over the whole buffer without asserting
// that sizeof(T) matches the buffer's declared tags. The caller carries that
// obligation; UnsafeSlice itself only verifies the preconditions spec.md §9
// puts on the *host* side of the view: that engine agrees with the host's
// native byte order, and that the buffer's backing address is aligned to
// alignof(T). Fails with errs.ErrUnalignedTypedView otherwise.
func UnsafeSlice[T any](b *TypedBuffer, engine endian.EndianEngine) ([]T, error) {
	if !endian.CompareNativeEndian(engine) {
		return nil, fmt.Errorf("%w: unchecked view requested in non-native byte order", errs.ErrUnalignedTypedView)
	}

	var zero T
	if b.length == 0 {
		return nil, nil
	}

	addr := uintptr(unsafe.Pointer(&b.bb.B[0]))
	align := unsafe.Alignof(zero)
	if align > 1 && addr%align != 0 {
		return nil, fmt.Errorf("%w: buffer address %#x is not aligned to %d bytes", errs.ErrUnalignedTypedView, addr, align)
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&b.bb.B[0])), b.length), nil
}

// UnsafeWrite stores value at index i without asserting type or arity. Like
// UnsafeSlice it fails with errs.ErrUnalignedTypedView when engine is not the
// host's native byte order, and it checks i against the buffer's length; it
// copies bytes rather than casting, so it performs no alignment check.
func UnsafeWrite[T any](b *TypedBuffer, i int, value T, engine endian.EndianEngine) error {
	if !endian.CompareNativeEndian(engine) {
		return fmt.Errorf("%w: unchecked write requested in non-native byte order", errs.ErrUnalignedTypedView)
	}

	var zero T
	tSize := int(unsafe.Sizeof(zero))
	if i < 0 || i >= b.length {
		return fmt.Errorf("%w: index %d, length %d", errs.ErrOutOfBounds, i, b.length)
	}

	off := i * tSize
	dst := b.bb.Slice(off, off+tSize)
	copy(dst, bytesOfOne(&value))

	return nil
}
