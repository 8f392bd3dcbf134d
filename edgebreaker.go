// Package edgebreaker ties together the attribute storage model, the
// prediction-scheme interface, and the CLERS symbol codec into one
// ingest → classify → predict → compress → symbol-encode pipeline. Callers
// needing finer control should use the buffer, attribute, prediction,
// symbol, and compress packages directly; this package exists for the
// common case of compressing one attribute's worth of residual data end to
// end.
//
// # Basic Usage
//
//	attrs := attribute.NewCollection()
//	connID, _ := attrs.Add(format.Connectivity, faces, nil, "")
//	posID, _ := attrs.Add(format.Position, positions, []attribute.Id{}, "")
//
//	plan, _ := edgebreaker.NewAttributePlan(attrs, posID, []attribute.Id{connID})
//	residual, raw := plan.Classify()
//
// # Symbol Encoding
//
//	w, _ := edgebreaker.NewSymbolWriter(edgebreaker.WithBalancedSymbols())
//	_ = w.Write(symbol.C())
//	data, bitLen := w.Finish()
package edgebreaker

import (
	"errors"

	"github.com/arloliu/edgebreaker/attribute"
	"github.com/arloliu/edgebreaker/compress"
	"github.com/arloliu/edgebreaker/errs"
	"github.com/arloliu/edgebreaker/format"
	"github.com/arloliu/edgebreaker/prediction"
	"github.com/arloliu/edgebreaker/symbol"
)

// AttributePlan binds one attribute to the prediction scheme that will
// classify and predict its values during compression.
type AttributePlan struct {
	attr   *attribute.Attribute
	scheme prediction.Scheme
}

// NewAttributePlan builds the delta-prediction plan for attr given its
// already-added parent attributes. parents must contain exactly one
// Connectivity attribute; see prediction.NewDeltaScheme.
func NewAttributePlan(collection *attribute.Collection, attrID attribute.Id, parentIDs []attribute.Id) (*AttributePlan, error) {
	attr, err := collection.Get(attrID)
	if err != nil {
		return nil, err
	}

	parents := make([]*attribute.Attribute, 0, len(parentIDs))
	for _, id := range parentIDs {
		p, err := collection.Get(id)
		if err != nil {
			return nil, err
		}
		parents = append(parents, p)
	}

	scheme, err := prediction.NewDeltaScheme(parents)
	if err != nil {
		return nil, err
	}

	return &AttributePlan{attr: attr, scheme: scheme}, nil
}

// Classify partitions the plan's attribute's value indices — the full
// [0, Len()) span — into predictable and impossible-to-predict ranges.
func (p *AttributePlan) Classify() (predictable, impossible []prediction.Range) {
	return p.scheme.Classify([]prediction.Range{{Lo: 0, Hi: p.attr.Len()}})
}

// Attribute returns the attribute this plan classifies.
func (p *AttributePlan) Attribute() *attribute.Attribute { return p.attr }

// CompressResidual runs the entropy stage over a residual or raw payload for
// the classified indices that didn't predict cleanly, using the given
// compression algorithm. The built-in codecs are stateless, so this looks
// up the shared instance rather than allocating a fresh one per call.
func CompressResidual(compressionType format.CompressionType, data []byte) ([]byte, error) {
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	return codec.Compress(data)
}

// DecompressResidual reverses CompressResidual.
func DecompressResidual(compressionType format.CompressionType, data []byte) ([]byte, error) {
	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	return codec.Decompress(data)
}

// SymbolWriterOption configures NewSymbolWriter.
type SymbolWriterOption = symbol.WriterOption

// WithBalancedSymbols selects the Balanced CLERS prefix code instead of the
// default CrLight.
func WithBalancedSymbols() SymbolWriterOption {
	return symbol.WithVariant(symbol.Balanced{})
}

// NewSymbolWriter creates a symbol.Writer for the connectivity traversal's
// CLERS output.
func NewSymbolWriter(opts ...SymbolWriterOption) (*symbol.Writer, error) {
	return symbol.NewWriter(opts...)
}

// NewSymbolReader creates a symbol.Reader over a previously written CLERS
// stream, auto-detecting its variant from the embedded config tag.
func NewSymbolReader(data []byte, bitLen int) (*symbol.Reader, error) {
	return symbol.NewReader(data, bitLen)
}

// ErrorKind classifies an edgebreaker error for callers that want to branch
// on category without enumerating every sentinel in errs individually.
type ErrorKind uint8

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindTypedView
	ErrorKindDependency
	ErrorKindSymbolEncoding
	ErrorKindPrediction
)

// Classify reports which broad category err falls into, or ErrorKindUnknown
// if it doesn't match any sentinel this package recognizes.
func Classify(err error) ErrorKind {
	switch {
	case isAny(err, errs.ErrWrongComponentType, errs.ErrWrongArity, errs.ErrUnalignedTypedView, errs.ErrOutOfBounds, errs.ErrUninitializedCell, errs.ErrBufferFinished):
		return ErrorKindTypedView
	case isAny(err, errs.ErrUnknownParent, errs.ErrMissingDependency, errs.ErrNameCollision):
		return ErrorKindDependency
	case isAny(err, errs.ErrHoleSizeTooLarge, errs.ErrHandleSizeTooLarge, errs.ErrUnknownSymbolEncoding, errs.ErrRansUnimplemented):
		return ErrorKindSymbolEncoding
	case isAny(err, errs.ErrUnsupportedPredictionParents, errs.ErrEmptyPriorValues):
		return ErrorKindPrediction
	default:
		return ErrorKindUnknown
	}
}

func isAny(err error, sentinels ...error) bool {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return true
		}
	}

	return false
}
