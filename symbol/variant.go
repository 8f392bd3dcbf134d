package symbol

import (
	"fmt"

	"github.com/arloliu/edgebreaker/errs"
)

// SymbolEncodingConfigSlotBits is the fixed bit width of the tag written
// before the symbol stream identifying which Variant encoded it. 2 bits
// comfortably hold the three defined ids (0: CrLight, 1: Balanced, 2: Rans).
const SymbolEncodingConfigSlotBits = 2

// sizeThresholds and the two slot-width tables below are the format
// constants symbol_encoder.rs refers to (NUM_VERTICES_IN_HOLE_SLOTS,
// HANDLE_METADATA_SLOTS) but never defines: size is the smallest index such
// that n >> sizeThresholds[size] == 0, and the slot width for that size is
// exactly its threshold — the minimal fixed-width field that can hold every
// value below it.
var sizeThresholds = [4]int{8, 12, 16, 20}

// NumVerticesInHoleSlots gives the bit width of the n-vertices payload for
// an M(n) symbol, indexed by its 2-bit size selector.
var NumVerticesInHoleSlots = [4]int{8, 12, 16, 20}

// HandleMetadataSlots gives the bit width of the metadata-index payload for
// an H(n) symbol, indexed by its 2-bit size selector.
var HandleMetadataSlots = [4]int{8, 12, 16, 20}

func holeSize(n int) (int, error) {
	for size, threshold := range sizeThresholds {
		if n>>uint(threshold) == 0 {
			return size, nil
		}
	}

	return 0, fmt.Errorf("%w: %d vertices exceeds the 20-bit payload budget", errs.ErrHoleSizeTooLarge, n)
}

func handleSize(n int) (int, error) {
	for size, threshold := range sizeThresholds {
		if n>>uint(threshold) == 0 {
			return size, nil
		}
	}

	return 0, fmt.Errorf("%w: metadata index %d exceeds the 20-bit payload budget", errs.ErrHandleSizeTooLarge, n)
}

// decodeSizeAndPayload reads the shared M/H tail: a 2-bit size selector
// followed by slots[size] payload bits. Both variants reuse this block.
func decodeSizeAndPayload(r *BitReader, slots [4]int) (int, error) {
	size, err := r.ReadBits(2)
	if err != nil {
		return 0, err
	}

	n, err := r.ReadBits(slots[size])
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

// Variant is a CLERS symbol encoding: a bit-exact mapping between Symbol and
// a prefix-free bit pattern, plus the stable id written to
// SYMBOL_ENCODING_CONFIG_SLOT.
type Variant interface {
	// ID returns the variant's on-wire identifier.
	ID() uint8
	// Encode writes s to w. Fails with errs.ErrHoleSizeTooLarge or
	// errs.ErrHandleSizeTooLarge if an M(n)/H(n) payload does not fit the
	// 20-bit budget; no partial symbol is written on failure.
	Encode(w *BitWriter, s Symbol) error
	// Decode reads and returns the next symbol from r. The bit stream
	// position advances monotonically and never backtracks.
	Decode(r *BitReader) (Symbol, error)
}

// VariantFromID reconstructs the Variant registered under id. Fails with
// errs.ErrUnknownSymbolEncoding for any id other than 0, 1, or 2.
func VariantFromID(id uint8) (Variant, error) {
	switch id {
	case 0:
		return CrLight{}, nil
	case 1:
		return Balanced{}, nil
	case 2:
		return Rans{}, nil
	default:
		return nil, fmt.Errorf("%w: id %d", errs.ErrUnknownSymbolEncoding, id)
	}
}
