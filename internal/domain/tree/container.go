// Package tree implements the per-tag container tree.
//
// Containers live in a generational arena. Parents store their first and
// last child, children are chained through prev/next sibling ids, and every
// container points back to its parent. The virtual root always exists and is
// addressed by the Root ContainerID.
package tree

import (
	"fmt"

	"github.com/bnema/tagwm/internal/domain/arena"
	"github.com/bnema/tagwm/internal/domain/entity"
)

// ContainerID references either the virtual root or an arena container.
// The zero value is Root.
type ContainerID struct {
	id arena.ID
}

// Root is the ContainerID of the virtual root.
var Root = ContainerID{}

// Index wraps an arena id. A zero arena id yields Root.
func Index(id arena.ID) ContainerID {
	return ContainerID{id: id}
}

// IsRoot reports whether c refers to the virtual root.
func (c ContainerID) IsRoot() bool {
	return c.id.IsZero()
}

// Arena returns the arena id, or false for the root.
func (c ContainerID) Arena() (arena.ID, bool) {
	return c.id, !c.id.IsZero()
}

func (c ContainerID) String() string {
	if c.IsRoot() {
		return "root"
	}
	return c.id.String()
}

// Kind distinguishes split containers from client containers.
type Kind uint8

const (
	KindSplit Kind = iota
	KindClient
)

func (k Kind) String() string {
	switch k {
	case KindSplit:
		return "split"
	case KindClient:
		return "client"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Container is a node of the tag tree: a Split (inner) or a Client (leaf).
type Container[C any] struct {
	kind Kind

	// Floating containers are exempt from tiling.
	Floating bool

	// Split only.
	SplitType   entity.SplitType
	LastFocused arena.ID

	// Client only.
	Payload C

	first, last arena.ID
	parent      ContainerID
	attached    bool
	prev, next  arena.ID
}

// Kind returns the container kind.
func (c *Container[C]) Kind() Kind { return c.kind }

// IsSplit reports whether c is a split container.
func (c *Container[C]) IsSplit() bool { return c.kind == KindSplit }

// IsClient reports whether c is a client container.
func (c *Container[C]) IsClient() bool { return c.kind == KindClient }

// Parent returns the parent id. The bool is false when c is orphaned.
func (c *Container[C]) Parent() (ContainerID, bool) { return c.parent, c.attached }

// FirstChild returns the first child of a split, or the zero id.
func (c *Container[C]) FirstChild() arena.ID { return c.first }

// LastChild returns the last child of a split, or the zero id.
func (c *Container[C]) LastChild() arena.ID { return c.last }

// PrevSibling returns the previous sibling, or the zero id.
func (c *Container[C]) PrevSibling() arena.ID { return c.prev }

// NextSibling returns the next sibling, or the zero id.
func (c *Container[C]) NextSibling() arena.ID { return c.next }

// RootContainer is the virtual root of a TagTree. It is never removed.
type RootContainer struct {
	SplitType entity.SplitType

	focused  arena.ID
	selected arena.ID

	first, last arena.ID
}

// Focused returns the last focused client, or the zero id.
func (r *RootContainer) Focused() arena.ID { return r.focused }

// Selected returns the explicit selection, or the zero id.
func (r *RootContainer) Selected() arena.ID { return r.selected }

// FirstChild returns the first top-level container.
func (r *RootContainer) FirstChild() arena.ID { return r.first }

// LastChild returns the last top-level container.
func (r *RootContainer) LastChild() arena.ID { return r.last }
