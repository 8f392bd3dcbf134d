package attribute

import (
	"github.com/arloliu/edgebreaker/buffer"
	"github.com/arloliu/edgebreaker/format"
)

// MaybeInitAttribute is the uninitialized-mode counterpart of Attribute:
// identity, role, and parents are fixed at construction, but the underlying
// buffer is filled index-by-index by a decoder. Promoting it to an
// Attribute via Collection.Promote asserts every cell has been written.
type MaybeInitAttribute struct {
	id      Id
	buf     *buffer.MaybeInitBuffer
	role    format.AttributeRole
	parents []Id
	name    string
}

// ID returns the attribute's identity within its collection.
func (a *MaybeInitAttribute) ID() Id { return a.id }

// Role returns the attribute's semantic role.
func (a *MaybeInitAttribute) Role() format.AttributeRole { return a.role }

// Parents returns the ordered sequence of parent attribute ids.
func (a *MaybeInitAttribute) Parents() []Id { return a.parents }

// Buffer returns the attribute's underlying uninitialized buffer for use
// with the buffer package's WriteCell/ReadCell helpers.
func (a *MaybeInitAttribute) Buffer() *buffer.MaybeInitBuffer { return a.buf }
