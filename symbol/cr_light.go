package symbol

import "fmt"

// CrLight is the default CLERS prefix code:
//
//	C: 0
//	R: 10
//	L: 1100
//	E: 1101
//	S: 1110
//	M: 11110 + size(2) + n(slot)
//	H: 11111 + size(2) + n(slot)
type CrLight struct{}

func (CrLight) ID() uint8 { return 0 }

func (CrLight) Encode(w *BitWriter, s Symbol) error {
	switch s.Kind {
	case KindC:
		w.WriteBits(0b0, 1)
	case KindR:
		w.WriteBits(0b10, 2)
	case KindL:
		w.WriteBits(0b1100, 4)
	case KindE:
		w.WriteBits(0b1101, 4)
	case KindS:
		w.WriteBits(0b1110, 4)
	case KindM:
		size, err := holeSize(s.N)
		if err != nil {
			return err
		}
		w.WriteBits(0b11110, 5)
		w.WriteBits(uint64(size), 2)
		w.WriteBits(uint64(s.N), NumVerticesInHoleSlots[size])
	case KindH:
		size, err := handleSize(s.N)
		if err != nil {
			return err
		}
		w.WriteBits(0b11111, 5)
		w.WriteBits(uint64(size), 2)
		w.WriteBits(uint64(s.N), HandleMetadataSlots[size])
	default:
		return fmt.Errorf("symbol: unknown kind %d", s.Kind)
	}

	return nil
}

func (CrLight) Decode(r *BitReader) (Symbol, error) {
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
		return R(), nil
	}

	two, err := r.ReadBits(2)
	if err != nil {
		return Symbol{}, err
	}
	switch two {
	case 0b00:
		return L(), nil
	case 0b01:
		return E(), nil
	case 0b10:
		return S(), nil
	}

	bit, err = r.ReadBits(1)
	if err != nil {
		return Symbol{}, err
	}
	if bit == 0 {
		n, err := decodeSizeAndPayload(r, NumVerticesInHoleSlots)
		if err != nil {
			return Symbol{}, err
		}

		return M(n), nil
	}

	n, err := decodeSizeAndPayload(r, HandleMetadataSlots)
	if err != nil {
		return Symbol{}, err
	}

	return H(n), nil
}
