// Package format defines the small closed enumerations that are tagged onto
// the wire: compression algorithms for the entropy stage, component scalar
// types for typed attribute buffers, and attribute roles for the dependency
// DAG. Each enumeration carries a stable numeric identifier used for on-wire
// tagging, and the identifier-to-value mapping is a bijection that decoders
// validate explicitly.
package format

// CompressionType identifies the entropy-stage compression algorithm applied
// to a residual or raw attribute payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
