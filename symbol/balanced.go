package symbol

import "fmt"

// Balanced is the alternate CLERS prefix code, trading C's extreme skew for
// more even code lengths across R/L/E:
//
//	C: 0
//	R: 100
//	L: 110
//	E: 101
//	S: 11100
//	M: 11101 + size(2) + n(slot)
//	H: 11110 + size(2) + n(slot)
type Balanced struct{}

func (Balanced) ID() uint8 { return 1 }

func (Balanced) Encode(w *BitWriter, s Symbol) error {
	switch s.Kind {
	case KindC:
		w.WriteBits(0b0, 1)
	case KindR:
		w.WriteBits(0b100, 3)
	case KindL:
		w.WriteBits(0b110, 3)
	case KindE:
		w.WriteBits(0b101, 3)
	case KindS:
		w.WriteBits(0b11100, 5)
	case KindM:
		size, err := holeSize(s.N)
		if err != nil {
			return err
		}
		w.WriteBits(0b11101, 5)
		w.WriteBits(uint64(size), 2)
		w.WriteBits(uint64(s.N), NumVerticesInHoleSlots[size])
	case KindH:
		size, err := handleSize(s.N)
		if err != nil {
			return err
		}
		w.WriteBits(0b11110, 5)
		w.WriteBits(uint64(size), 2)
		w.WriteBits(uint64(s.N), HandleMetadataSlots[size])
	default:
		return fmt.Errorf("symbol: unknown kind %d", s.Kind)
	}

	return nil
}

// Decode walks Balanced's own prefix tree directly: bit 1 separates C; bit 2
// separates {R, E} from {L, S, M, H}; a third bit resolves R vs E on one
// side and picks out L on the other; the remaining {S, M, H} group shares
// two more bits before M/H fall into the same size+payload tail CrLight
// uses. This differs from a decoder that merely reuses CrLight's bit-count
// pattern (1, 1, 2, 1) verbatim — doing so would conflate R with E, since
// both begin "10" in this code and only diverge at the third bit.
func (Balanced) Decode(r *BitReader) (Symbol, error) {
	bit, err := r.ReadBits(1)
	if err != nil {
		return Symbol{}, err
	}
	if bit == 0 {
		return C(), nil
	}

	bit, err = r.ReadBits(1)
	if err != nil {
		return Symbol{}, err
	}
	if bit == 0 {
		bit, err = r.ReadBits(1)
		if err != nil {
			return Symbol{}, err
		}
		if bit == 0 {
			return R(), nil
		}

		return E(), nil
	}

	bit, err = r.ReadBits(1)
	if err != nil {
		return Symbol{}, err
	}
	if bit == 0 {
		return L(), nil
	}

	two, err := r.ReadBits(2)
	if err != nil {
		return Symbol{}, err
	}
	switch two {
	case 0b00:
		return S(), nil
	case 0b01:
		n, err := decodeSizeAndPayload(r, NumVerticesInHoleSlots)
		if err != nil {
			return Symbol{}, err
		}

		return M(n), nil
	case 0b10:
		n, err := decodeSizeAndPayload(r, HandleMetadataSlots)
		if err != nil {
			return Symbol{}, err
		}

		return H(n), nil
	default:
		return Symbol{}, fmt.Errorf("symbol: reserved CLERS prefix 111 11")
	}
}
