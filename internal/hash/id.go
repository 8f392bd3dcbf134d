// Package hash provides the stable fingerprint used to address
// Custom-role attributes by name instead of by minted AttributeId.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string. Used to derive a stable
// 64-bit identifier for a human-readable attribute name.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
