// Package attribute implements the attribute model: a buffer wrapped with an
// identity, a semantic role, and a set of parent attribute identities
// forming a DAG of dependencies. A Collection mints identities, enforces the
// per-role minimum dependency rules, and exposes a topological ordering the
// compression pipeline consumes.
package attribute

import (
	"github.com/arloliu/edgebreaker/buffer"
	"github.com/arloliu/edgebreaker/format"
)

// Id identifies an attribute within the Collection that minted it.
type Id uint32

// Attribute is an initialized buffer tagged with identity, role, and parent
// dependencies. Attributes are immutable for the remainder of a
// compression/decompression run once added to a Collection.
type Attribute struct {
	id      Id
	buf     *buffer.TypedBuffer
	role    format.AttributeRole
	parents []Id
	name    string // non-empty only for Custom-role attributes
}

// ID returns the attribute's identity within its collection.
func (a *Attribute) ID() Id { return a.id }

// Role returns the attribute's semantic role.
func (a *Attribute) Role() format.AttributeRole { return a.role }

// Parents returns the ordered sequence of parent attribute ids.
func (a *Attribute) Parents() []Id { return a.parents }

// Name returns the attribute's human-readable name. Only Custom-role
// attributes carry one; all others return "".
func (a *Attribute) Name() string { return a.name }

// Len returns the number of values in the attribute's buffer.
func (a *Attribute) Len() int { return a.buf.Len() }

// ComponentType returns the attribute buffer's declared scalar type.
func (a *Attribute) ComponentType() format.ComponentScalar { return a.buf.ComponentType() }

// NumComponents returns the attribute buffer's declared arity.
func (a *Attribute) NumComponents() int { return a.buf.NumComponents() }

// Buffer returns the attribute's underlying typed buffer for use with the
// buffer package's generic accessors (Get, AsSlice, UnsafeSlice, ...).
func (a *Attribute) Buffer() *buffer.TypedBuffer { return a.buf }
