package symbol

import "github.com/arloliu/edgebreaker/internal/options"

// writerConfig holds a Writer's configurable state.
type writerConfig struct {
	variant Variant
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*writerConfig]

// WithVariant selects the CLERS prefix-code variant a Writer encodes with.
// CrLight is the default.
func WithVariant(v Variant) WriterOption {
	return options.NoError(func(c *writerConfig) {
		c.variant = v
	})
}

// Writer serializes a sequence of Symbols behind a chosen Variant, preceded
// by the SYMBOL_ENCODING_CONFIG_SLOT tag identifying that variant.
type Writer struct {
	bw      *BitWriter
	variant Variant
}

// NewWriter creates a Writer. By default it encodes with CrLight; pass
// WithVariant to select Balanced (or the reserved Rans).
func NewWriter(opts ...WriterOption) (*Writer, error) {
	cfg := writerConfig{variant: CrLight{}}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	bw := NewBitWriter()
	bw.WriteBits(uint64(cfg.variant.ID()), SymbolEncodingConfigSlotBits)

	return &Writer{bw: bw, variant: cfg.variant}, nil
}

// Write encodes s. Fails with errs.ErrHoleSizeTooLarge or
// errs.ErrHandleSizeTooLarge (or errs.ErrRansUnimplemented under Rans); no
// partial symbol is written on failure.
func (w *Writer) Write(s Symbol) error {
	return w.variant.Encode(w.bw, s)
}

// Variant returns the Variant this Writer encodes with.
func (w *Writer) Variant() Variant { return w.variant }

// Finish flushes the final partial byte and returns the complete stream
// (config tag followed by every encoded symbol) along with its exact bit
// length.
func (w *Writer) Finish() ([]byte, int) {
	return w.bw.Finish()
}

// Release returns the Writer's backing buffer to the pool. The Writer must
// not be used afterward.
func (w *Writer) Release() {
	w.bw.Release()
}
