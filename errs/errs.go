// Package errs defines the sentinel errors returned by the edgebreaker
// packages. Call sites wrap these with additional context using
// fmt.Errorf("%w: ...", errs.ErrX, ...); callers should compare against the
// sentinels with errors.Is.
package errs

import "errors"

var (
	// ErrWrongComponentType is returned when a typed access's element type
	// does not match a buffer's declared component scalar type.
	ErrWrongComponentType = errors.New("wrong component type")

	// ErrWrongArity is returned when a typed access's element arity does not
	// match a buffer's declared number of components.
	ErrWrongArity = errors.New("wrong component arity")

	// ErrUnalignedTypedView is returned by an unchecked typed view when the
	// buffer's alignment is insufficient for the requested type.
	ErrUnalignedTypedView = errors.New("buffer alignment insufficient for typed view")

	// ErrOutOfBounds is returned by any indexed access past a buffer's or
	// attribute's length.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrUnknownParent is returned when an attribute's parent id does not
	// exist in the enclosing collection.
	ErrUnknownParent = errors.New("unknown parent attribute id")

	// ErrMissingDependency is returned when an attribute's parents do not
	// satisfy its role's minimum dependency set.
	ErrMissingDependency = errors.New("missing required dependency role")

	// ErrHoleSizeTooLarge is returned when an M(n) symbol's vertex count
	// exceeds the 20-bit payload budget.
	ErrHoleSizeTooLarge = errors.New("hole vertex count too large to encode")

	// ErrHandleSizeTooLarge is returned when an H(m) symbol's metadata index
	// exceeds the 20-bit payload budget.
	ErrHandleSizeTooLarge = errors.New("handle metadata index too large to encode")

	// ErrUnknownSymbolEncoding is returned when the symbol-encoding config
	// tag read from the bit stream is not one of the known variant ids.
	ErrUnknownSymbolEncoding = errors.New("unknown symbol encoding configuration")

	// ErrUnknownComponentTypeID is returned when a decoded ComponentScalar
	// tag is outside the valid [0, 5] range.
	ErrUnknownComponentTypeID = errors.New("unknown component type id")

	// ErrUnknownAttributeRoleID is returned when a decoded AttributeRole tag
	// is outside the valid [0, 9] range.
	ErrUnknownAttributeRoleID = errors.New("unknown attribute role id")

	// ErrUninitializedCell is returned when converting a MaybeInitAttribute
	// (or MaybeInitBuffer) to its initialized form before every cell has
	// been written.
	ErrUninitializedCell = errors.New("uninitialized cell in buffer")

	// ErrBufferFinished is returned when a write is attempted on a buffer
	// that has already been converted to its initialized form.
	ErrBufferFinished = errors.New("buffer already finished")

	// ErrNameCollision is returned when a custom attribute name is empty or
	// has already been registered. Two different names that hash to the same
	// identifier do not produce this error; the collision tracker records
	// them and reports them through its collision flag.
	ErrNameCollision = errors.New("attribute name hash collision")

	// ErrUnsupportedPredictionParents is returned when a prediction scheme
	// is constructed with a parent set that does not satisfy its own
	// requirements (e.g. delta prediction requires exactly one Connectivity
	// parent).
	ErrUnsupportedPredictionParents = errors.New("unsupported parent set for prediction scheme")

	// ErrEmptyPriorValues is returned by a prediction scheme's predict step
	// when called with no previously decoded values.
	ErrEmptyPriorValues = errors.New("no prior values to predict from")

	// ErrRansUnimplemented is returned when encoding or decoding a symbol with
	// the reserved Rans symbol encoding, whose entropy tables are not specified.
	ErrRansUnimplemented = errors.New("rans symbol encoding is not implemented")

	// ErrInvalidCompressionType is returned by compress.CreateCodec and
	// compress.GetCodec for an unrecognized format.CompressionType.
	ErrInvalidCompressionType = errors.New("invalid compression type")
)
