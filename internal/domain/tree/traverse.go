package tree

import (
	"iter"

	"github.com/bnema/tagwm/internal/domain/arena"
)

// Preorder yields every container below start, parents before children and
// siblings in list order. start itself is not yielded and the walk never
// leaves its subtree. The tree must not be mutated while iterating.
func (t *TagTree[C]) Preorder(start ContainerID) iter.Seq2[arena.ID, *Container[C]] {
	return func(yield func(arena.ID, *Container[C]) bool) {
		first, _ := t.bounds(start)
		if first == nil {
			return
		}
		for cur := *first; !cur.IsZero(); cur = t.advance(cur, start) {
			if !yield(cur, t.node(cur)) {
				return
			}
		}
	}
}

// advance returns the preorder successor of cur inside start's subtree.
func (t *TagTree[C]) advance(cur arena.ID, start ContainerID) arena.ID {
	n := t.node(cur)
	if !n.first.IsZero() {
		return n.first
	}
	for {
		if !n.next.IsZero() {
			return n.next
		}
		if !n.attached || n.parent == start || n.parent.IsRoot() {
			return arena.ID{}
		}
		n = t.node(n.parent.id)
	}
}

// Clients yields the attached client containers in preorder.
func (t *TagTree[C]) Clients() iter.Seq2[arena.ID, *Container[C]] {
	return func(yield func(arena.ID, *Container[C]) bool) {
		for id, n := range t.Preorder(Root) {
			if n.IsClient() && !yield(id, n) {
				return
			}
		}
	}
}

// Children yields the immediate children of c in sibling order.
func (t *TagTree[C]) Children(c ContainerID) iter.Seq2[arena.ID, *Container[C]] {
	return func(yield func(arena.ID, *Container[C]) bool) {
		first, _ := t.bounds(c)
		if first == nil {
			return
		}
		for cur := *first; !cur.IsZero(); {
			n := t.node(cur)
			if !yield(cur, n) {
				return
			}
			cur = n.next
		}
	}
}

// NumChildren counts the immediate children of c.
func (t *TagTree[C]) NumChildren(c ContainerID) int {
	count := 0
	for range t.Children(c) {
		count++
	}
	return count
}

// NextInPreorder returns the container following id in a preorder walk of
// the whole tree.
func (t *TagTree[C]) NextInPreorder(id arena.ID) (arena.ID, bool) {
	if !t.IsAttached(id) {
		return arena.ID{}, false
	}
	next := t.advance(id, Root)
	return next, !next.IsZero()
}

// PrevInPreorder returns the container preceding id in a preorder walk of
// the whole tree.
func (t *TagTree[C]) PrevInPreorder(id arena.ID) (arena.ID, bool) {
	if !t.IsAttached(id) {
		return arena.ID{}, false
	}
	n := t.node(id)
	if n.prev.IsZero() {
		if n.parent.IsRoot() {
			return arena.ID{}, false
		}
		return n.parent.id, true
	}
	return t.deepestLast(n.prev), true
}

// deepestLast follows last-child links down from id.
func (t *TagTree[C]) deepestLast(id arena.ID) arena.ID {
	for {
		n := t.node(id)
		if n.last.IsZero() {
			return id
		}
		id = n.last
	}
}

// firstClient returns the first client in preorder at or below id.
func (t *TagTree[C]) firstClient(id arena.ID) (arena.ID, bool) {
	n := t.node(id)
	if n == nil {
		return arena.ID{}, false
	}
	if n.IsClient() {
		return id, true
	}
	for cur, c := range t.Preorder(Index(id)) {
		if c.IsClient() {
			return cur, true
		}
	}
	return arena.ID{}, false
}
