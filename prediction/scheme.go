package prediction

import "github.com/arloliu/edgebreaker/errs"

// Scheme classifies an attribute's value indices into predictable and
// impossible-to-predict ranges given its parent attributes. Schemes are
// identified by a stable numeric id; delta is 1, other ids are reserved for
// future parallelogram/mesh-traversal variants.
type Scheme interface {
	// ID returns the scheme's stable numeric identifier.
	ID() uint8
	// Classify partitions valueIndices (an ordered sequence of half-open
	// ranges) into predictable and impossible-to-predict ranges, each
	// returned as the sorted, coalesced, disjoint normal form.
	Classify(valueIndices []Range) (predictable, impossible []Range)
}

// Predict returns the prediction for the next value given the prefix of
// already-decoded values. Every scheme in this package shares the same
// prediction rule (the immediately preceding value), so Predict is a free
// function over the value type rather than a method on Scheme: Go methods
// cannot carry their own type parameter, and the rule does not depend on
// which Scheme produced prior. Fails with errs.ErrEmptyPriorValues if prior
// is empty.
func Predict[T any](prior []T) (T, error) {
	var zero T
	if len(prior) == 0 {
		return zero, errs.ErrEmptyPriorValues
	}

	return prior[len(prior)-1], nil
}
