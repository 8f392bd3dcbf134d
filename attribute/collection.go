package attribute

import (
	"fmt"

	"github.com/arloliu/edgebreaker/buffer"
	"github.com/arloliu/edgebreaker/errs"
	"github.com/arloliu/edgebreaker/format"
	"github.com/arloliu/edgebreaker/internal/collision"
	"github.com/arloliu/edgebreaker/internal/hash"
)

// Collection is the arena that mints attribute ids and enforces the
// dependency rules of spec.md §3: a parent must already exist in the
// collection, and the multiset of a new attribute's parent roles must be a
// superset of its own role's minimum dependency set. Child attributes hold
// parent ids, never direct references, so the arena is representable
// without cyclic ownership.
type Collection struct {
	attrs    []*Attribute
	names    *collision.Tracker
	nameToID map[string]Id
}

// NewCollection creates an empty attribute collection.
func NewCollection() *Collection {
	return &Collection{
		names:    collision.NewTracker(),
		nameToID: make(map[string]Id),
	}
}

// Len returns the number of attributes in the collection.
func (c *Collection) Len() int { return len(c.attrs) }

// Get returns the attribute with the given id.
func (c *Collection) Get(id Id) (*Attribute, error) {
	if int(id) >= len(c.attrs) {
		return nil, fmt.Errorf("%w: attribute id %d", errs.ErrOutOfBounds, id)
	}

	return c.attrs[id], nil
}

func (c *Collection) checkParents(role format.AttributeRole, parents []Id) ([]format.AttributeRole, error) {
	parentRoles := make([]format.AttributeRole, 0, len(parents))
	for _, p := range parents {
		if int(p) >= len(c.attrs) {
			return nil, fmt.Errorf("%w: parent id %d", errs.ErrUnknownParent, p)
		}
		parentRoles = append(parentRoles, c.attrs[p].role)
	}

	for _, required := range role.MinimumDependency() {
		found := false
		for _, pr := range parentRoles {
			if pr == required {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: role %s requires a %s parent", errs.ErrMissingDependency, role, required)
		}
	}

	return parentRoles, nil
}

// Add constructs an initialized Attribute from buf and appends it to the
// collection, enforcing that every parent already exists and that the
// parents' roles satisfy role.MinimumDependency(). name is only meaningful
// (and must be non-empty and not already registered) when role is
// format.Custom; a different name with an equal hash is accepted.
func (c *Collection) Add(role format.AttributeRole, buf *buffer.TypedBuffer, parents []Id, name string) (Id, error) {
	if _, err := c.checkParents(role, parents); err != nil {
		return 0, err
	}

	if role == format.Custom {
		if err := c.trackCustomName(name); err != nil {
			return 0, err
		}
	} else {
		name = ""
	}

	id := Id(len(c.attrs))
	c.attrs = append(c.attrs, &Attribute{
		id:      id,
		buf:     buf,
		role:    role,
		parents: append([]Id(nil), parents...),
		name:    name,
	})

	if role == format.Custom {
		c.nameToID[name] = id
	}

	return id, nil
}

func (c *Collection) trackCustomName(name string) error {
	h := hash.ID(name)
	if err := c.names.Track(name, h); err != nil {
		return err
	}

	return nil
}

// HasNameCollision reports whether two distinct Custom attribute names have
// hashed to the same stable identifier.
func (c *Collection) HasNameCollision() bool {
	return c.names.HasCollision()
}

// ByName returns the id of the Custom attribute registered under name.
func (c *Collection) ByName(name string) (Id, bool) {
	id, ok := c.nameToID[name]

	return id, ok
}

// BeginMaybeInit mints an id for a not-yet-filled attribute, validating its
// parents the same way Add does, and returns a MaybeInitAttribute the
// decoder fills index-by-index.
func (c *Collection) BeginMaybeInit(role format.AttributeRole, buf *buffer.MaybeInitBuffer, parents []Id, name string) (*MaybeInitAttribute, error) {
	if _, err := c.checkParents(role, parents); err != nil {
		return nil, err
	}

	if role != format.Custom {
		name = ""
	}

	return &MaybeInitAttribute{
		id:      Id(len(c.attrs)),
		buf:     buf,
		role:    role,
		parents: append([]Id(nil), parents...),
		name:    name,
	}, nil
}

// Promote converts a MaybeInitAttribute minted by BeginMaybeInit into an
// Attribute and appends it to the collection, asserting every buffer cell
// has been written (errs.ErrUninitializedCell otherwise). m's id must equal
// the collection's next id, i.e. no other attribute may have been added
// between BeginMaybeInit and Promote.
func (c *Collection) Promote(m *MaybeInitAttribute) (Id, error) {
	if int(m.id) != len(c.attrs) {
		return 0, fmt.Errorf("%w: attribute id %d is not next in collection order (expected %d)",
			errs.ErrUnknownParent, m.id, len(c.attrs))
	}

	tb, err := m.buf.IntoInitialized()
	if err != nil {
		return 0, err
	}

	if m.role == format.Custom {
		if err := c.trackCustomName(m.name); err != nil {
			return 0, err
		}
	}

	c.attrs = append(c.attrs, &Attribute{
		id:      m.id,
		buf:     tb,
		role:    m.role,
		parents: m.parents,
		name:    m.name,
	})

	if m.role == format.Custom {
		c.nameToID[m.name] = m.id
	}

	return m.id, nil
}

// TopologicalOrder returns attribute ids in an order consistent with the
// dependency DAG: since Add and Promote refuse to admit an attribute before
// all of its parents exist, the collection's insertion order already is a
// valid topological order. Ties (attributes with no dependency relation)
// break by insertion order.
func (c *Collection) TopologicalOrder() []Id {
	order := make([]Id, len(c.attrs))
	for i := range c.attrs {
		order[i] = Id(i)
	}

	return order
}
