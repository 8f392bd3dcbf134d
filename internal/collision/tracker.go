// Package collision tracks hash collisions between human-readable names
// that have been reduced to a stable 64-bit identifier.
package collision

import (
	"github.com/arloliu/edgebreaker/errs"
)

// Tracker tracks attribute names and detects hash collisions as Custom-role
// attributes are added to a Collection. It maintains a map of hash-to-name
// mappings and an ordered list of names for diagnostics when a collision is
// detected.
type Tracker struct {
	names        map[uint64]string // Hash → name mapping for collision detection
	namesList    []string          // Ordered list of tracked names
	hasCollision bool              // Whether a collision has been detected
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:     make(map[uint64]string),
		namesList: make([]string, 0),
	}
}

// Track records a name and its hash. Returns errs.ErrNameCollision if name
// is empty or the same name was already tracked under the same hash (a
// defect in the caller, not a hash collision); does not error on a true collision
// (two different names sharing a hash) — instead it sets the collision flag
// so the caller can decide how to disambiguate (e.g. by retaining full
// names alongside ids).
func (t *Tracker) Track(name string, hash uint64) error {
	if name == "" {
		return errs.ErrNameCollision
	}

	if existing, exists := t.names[hash]; exists {
		if existing != name {
			t.hasCollision = true
		} else {
			return errs.ErrNameCollision
		}
	}

	t.names[hash] = name
	t.namesList = append(t.namesList, name)

	return nil
}

// HasCollision returns true if two distinct names have hashed to the same
// identifier.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the ordered list of tracked names, in the order Track was
// called.
func (t *Tracker) Names() []string {
	return t.namesList
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.namesList)
}

// Reset clears all tracked names and collision state, allowing the tracker
// to be reused for a new collection.
func (t *Tracker) Reset() {
	for k := range t.names {
		delete(t.names, k)
	}
	t.namesList = t.namesList[:0]
	t.hasCollision = false
}
