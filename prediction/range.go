// Package prediction implements the prediction-scheme interface: given a
// set of parent attributes, a scheme classifies an attribute's value
// indices into predictable and impossible-to-predict half-open ranges, and
// predicts the predictable ones from already-decoded prior values.
package prediction

import "github.com/arloliu/edgebreaker/internal/pool"

// Range is a half-open index range [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns the number of indices the range covers.
func (r Range) Len() int { return r.Hi - r.Lo }

func totalLen(ranges []Range) int {
	n := 0
	for _, r := range ranges {
		n += r.Len()
	}

	return n
}

// Coalesce normalizes a strictly ascending sequence of indices into the
// unique normal form of sorted, disjoint half-open ranges where consecutive
// integers share a range. The input must already be sorted ascending;
// callers that build indices in traversal order get this for free and
// Coalesce does not re-sort defensively.
func Coalesce(indices []int64) []Range {
	if len(indices) == 0 {
		return nil
	}

	out := make([]Range, 0, len(indices))
	start := indices[0]
	end := indices[0]
	for _, v := range indices[1:] {
		if v != end+1 {
			out = append(out, Range{Lo: int(start), Hi: int(end) + 1})
			start = v
		}
		end = v
	}
	out = append(out, Range{Lo: int(start), Hi: int(end) + 1})

	return out
}

// expand collects every index named by ranges into a pooled int64 scratch
// slice, sized exactly to ranges' total length, along with its cleanup.
func expand(ranges []Range) ([]int64, func()) {
	n := totalLen(ranges)
	scratch, cleanup := pool.GetInt64Slice(n)

	k := 0
	for _, r := range ranges {
		for i := r.Lo; i < r.Hi; i++ {
			scratch[k] = int64(i)
			k++
		}
	}

	return scratch, cleanup
}
