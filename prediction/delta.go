package prediction

import (
	"fmt"

	"github.com/arloliu/edgebreaker/attribute"
	"github.com/arloliu/edgebreaker/buffer"
	"github.com/arloliu/edgebreaker/errs"
	"github.com/arloliu/edgebreaker/format"
	"github.com/arloliu/edgebreaker/internal/pool"
)

// DeltaSchemeID is delta prediction's stable numeric identifier.
const DeltaSchemeID uint8 = 1

// DeltaScheme classifies an index as predictable when its mesh connectivity
// co-locates it with its immediate predecessor in some face, and predicts
// every such index as the immediately preceding decoded value.
type DeltaScheme struct {
	faces [][3]int
}

// NewDeltaScheme constructs a DeltaScheme from the Connectivity parent.
// Fails with errs.ErrUnsupportedPredictionParents unless parents holds
// exactly one attribute with role Connectivity.
func NewDeltaScheme(parents []*attribute.Attribute) (*DeltaScheme, error) {
	var conn *attribute.Attribute
	count := 0
	for _, p := range parents {
		if p.Role() == format.Connectivity {
			conn = p
			count++
		}
	}
	if count != 1 {
		return nil, fmt.Errorf("%w: delta prediction requires exactly one Connectivity parent, got %d",
			errs.ErrUnsupportedPredictionParents, count)
	}

	faces, err := facesOf(conn)
	if err != nil {
		return nil, err
	}

	return &DeltaScheme{faces: faces}, nil
}

func facesOf(conn *attribute.Attribute) ([][3]int, error) {
	if conn.NumComponents() != 3 {
		return nil, fmt.Errorf("%w: connectivity attribute must have arity 3, got %d",
			errs.ErrUnsupportedPredictionParents, conn.NumComponents())
	}

	n := conn.Len()
	faces := make([][3]int, n)

	switch conn.ComponentType() {
	case format.U8:
		view, err := buffer.AsSlice[[3]uint8](conn.Buffer())
		if err != nil {
			return nil, err
		}
		for i, f := range view {
			faces[i] = [3]int{int(f[0]), int(f[1]), int(f[2])}
		}
	case format.U16:
		view, err := buffer.AsSlice[[3]uint16](conn.Buffer())
		if err != nil {
			return nil, err
		}
		for i, f := range view {
			faces[i] = [3]int{int(f[0]), int(f[1]), int(f[2])}
		}
	case format.U32:
		view, err := buffer.AsSlice[[3]uint32](conn.Buffer())
		if err != nil {
			return nil, err
		}
		for i, f := range view {
			faces[i] = [3]int{int(f[0]), int(f[1]), int(f[2])}
		}
	case format.U64:
		view, err := buffer.AsSlice[[3]uint64](conn.Buffer())
		if err != nil {
			return nil, err
		}
		for i, f := range view {
			faces[i] = [3]int{int(f[0]), int(f[1]), int(f[2])}
		}
	default:
		return nil, fmt.Errorf("%w: connectivity attribute must hold unsigned integer indices, got %s",
			errs.ErrWrongComponentType, conn.ComponentType())
	}

	return faces, nil
}

func (d *DeltaScheme) ID() uint8 { return DeltaSchemeID }

func (d *DeltaScheme) coLocated(prev, cur int) bool {
	for _, f := range d.faces {
		hasPrev, hasCur := false, false
		for _, v := range f {
			if v == prev {
				hasPrev = true
			}
			if v == cur {
				hasCur = true
			}
		}
		if hasPrev && hasCur {
			return true
		}
	}

	return false
}

// Classify implements the delta scheme's classification rule: index 0 is
// always impossible to predict; index i > 0 is predictable iff some face
// contains both i-1 and i.
func (d *DeltaScheme) Classify(valueIndices []Range) (predictable, impossible []Range) {
	scratch, cleanup := expand(valueIndices)
	defer cleanup()

	predBuf, predCleanup := pool.GetInt64Slice(len(scratch))
	defer predCleanup()
	imposBuf, imposCleanup := pool.GetInt64Slice(len(scratch))
	defer imposCleanup()

	nPred, nImpos := 0, 0
	for _, idx64 := range scratch {
		i := int(idx64)
		if i != 0 && d.coLocated(i-1, i) {
			predBuf[nPred] = idx64
			nPred++
		} else {
			imposBuf[nImpos] = idx64
			nImpos++
		}
	}

	return Coalesce(predBuf[:nPred]), Coalesce(imposBuf[:nImpos])
}
