package symbol

// Reader deserializes a CLERS symbol stream written by a Writer, reading the
// SYMBOL_ENCODING_CONFIG_SLOT tag to select the matching Variant
// automatically.
type Reader struct {
	br      *BitReader
	variant Variant
}

// NewReader creates a Reader over data, considering only the first bitLen
// bits valid. It immediately reads the config tag and fails with
// errs.ErrUnknownSymbolEncoding if the tag does not name a known variant.
func NewReader(data []byte, bitLen int) (*Reader, error) {
	br := NewBitReader(data, bitLen)

	id, err := br.ReadBits(SymbolEncodingConfigSlotBits)
	if err != nil {
		return nil, err
	}

	variant, err := VariantFromID(uint8(id))
	if err != nil {
		return nil, err
	}

	return &Reader{br: br, variant: variant}, nil
}

// Variant returns the Variant this Reader was configured with by the
// stream's config tag.
func (r *Reader) Variant() Variant { return r.variant }

// Read decodes and returns the next symbol. The bit stream position
// advances monotonically and never backtracks.
func (r *Reader) Read() (Symbol, error) {
	return r.variant.Decode(r.br)
}

// Remaining returns the number of unread valid bits.
func (r *Reader) Remaining() int { return r.br.Remaining() }
