package format

import "github.com/arloliu/edgebreaker/errs"

// ComponentScalar is a closed enumeration of the primitive scalar types a
// TypedBuffer's components may hold. Each variant has a fixed byte size and
// a stable identifier in [0, 5] used for on-wire tagging.
type ComponentScalar uint8

const (
	F32 ComponentScalar = iota
	F64
	U8
	U16
	U32
	U64
)

// Size returns the byte size of a single scalar of this type.
func (s ComponentScalar) Size() int {
	switch s {
	case F32:
		return 4
	case F64:
		return 8
	case U8:
		return 1
	case U16:
		return 2
	case U32:
		return 4
	case U64:
		return 8
	default:
		return 0
	}
}

// ID returns the stable on-wire identifier for this scalar type.
func (s ComponentScalar) ID() uint8 {
	return uint8(s)
}

// ComponentScalarFromID reconstructs a ComponentScalar from its on-wire
// identifier. Returns errs.ErrUnknownComponentTypeID for any id outside
// [0, 5].
func ComponentScalarFromID(id uint8) (ComponentScalar, error) {
	if id > uint8(U64) {
		return 0, errs.ErrUnknownComponentTypeID
	}

	return ComponentScalar(id), nil
}

func (s ComponentScalar) String() string {
	switch s {
	case F32:
		return "F32"
	case F64:
		return "F64"
	case U8:
		return "U8"
	case U16:
		return "U16"
	case U32:
		return "U32"
	case U64:
		return "U64"
	default:
		return "Unknown"
	}
}
