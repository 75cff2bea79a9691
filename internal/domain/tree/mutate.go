package tree

import (
	"fmt"

	"github.com/bnema/tagwm/internal/domain/arena"
	"github.com/bnema/tagwm/internal/domain/entity"
)

// InsertFirstClient creates a client as the sole child of an empty root.
func (t *TagTree[C]) InsertFirstClient(payload C) (arena.ID, error) {
	if !t.IsEmpty() {
		return arena.ID{}, ErrNotEmpty
	}
	id := t.nodes.Insert(Container[C]{kind: KindClient, Payload: payload})
	t.linkSole(Root, id)
	return id, nil
}

// InsertClientBefore creates a client as the previous sibling of cursor.
func (t *TagTree[C]) InsertClientBefore(cursor arena.ID, payload C) (arena.ID, error) {
	if !t.IsAttached(cursor) {
		return arena.ID{}, fmt.Errorf("insert before %s: %w", cursor, ErrOrphanedCursor)
	}
	id := t.nodes.Insert(Container[C]{kind: KindClient, Payload: payload})
	t.linkBefore(cursor, id)
	return id, nil
}

// InsertClientAfter creates a client as the next sibling of cursor.
func (t *TagTree[C]) InsertClientAfter(cursor arena.ID, payload C) (arena.ID, error) {
	if !t.IsAttached(cursor) {
		return arena.ID{}, fmt.Errorf("insert after %s: %w", cursor, ErrOrphanedCursor)
	}
	id := t.nodes.Insert(Container[C]{kind: KindClient, Payload: payload})
	t.linkAfter(cursor, id)
	return id, nil
}

// AttachFirst links an orphaned subtree as the sole child of an empty root.
func (t *TagTree[C]) AttachFirst(subtree arena.ID) error {
	n := t.node(subtree)
	if n == nil {
		return fmt.Errorf("attach %s: %w", subtree, ErrStaleID)
	}
	if !t.IsEmpty() {
		return ErrNotEmpty
	}
	if n.attached {
		t.detach(subtree)
	}
	t.linkSole(Root, subtree)
	return nil
}

// MoveSubtreeBefore relinks subtree as the previous sibling of cursor.
// It reports false, leaving the tree untouched, when cursor is subtree,
// lies inside it, or subtree already sits right before it.
func (t *TagTree[C]) MoveSubtreeBefore(cursor, subtree arena.ID) (bool, error) {
	return t.moveSubtree(cursor, subtree, t.linkBefore, (*Container[C]).PrevSibling)
}

// MoveSubtreeAfter relinks subtree as the next sibling of cursor.
// It reports false, leaving the tree untouched, when cursor is subtree,
// lies inside it, or subtree already sits right after it.
func (t *TagTree[C]) MoveSubtreeAfter(cursor, subtree arena.ID) (bool, error) {
	return t.moveSubtree(cursor, subtree, t.linkAfter, (*Container[C]).NextSibling)
}

func (t *TagTree[C]) moveSubtree(cursor, subtree arena.ID, link func(cursor, id arena.ID), adjacent func(*Container[C]) arena.ID) (bool, error) {
	if !t.IsAttached(cursor) {
		return false, fmt.Errorf("move next to %s: %w", cursor, ErrOrphanedCursor)
	}
	if !t.nodes.Contains(subtree) {
		return false, fmt.Errorf("move %s: %w", subtree, ErrStaleID)
	}
	if t.subtreeContains(subtree, cursor) || adjacent(t.node(cursor)) == subtree {
		return false, nil
	}

	oldParent, had := t.unlink(subtree)
	link(cursor, subtree)
	if had {
		t.normalize(oldParent)
	}
	return true, nil
}

// SplitContainer inserts a new split as the parent of cursor. The split
// takes cursor's place among its siblings and cursor becomes its only child.
func (t *TagTree[C]) SplitContainer(cursor arena.ID, st entity.SplitType) (arena.ID, error) {
	if !t.IsAttached(cursor) {
		return arena.ID{}, fmt.Errorf("split %s: %w", cursor, ErrOrphanedCursor)
	}
	lastFocused, _ := t.descendClient(cursor)
	id := t.nodes.Insert(Container[C]{kind: KindSplit, SplitType: st, LastFocused: lastFocused})
	t.replace(cursor, id)
	t.linkSole(Index(id), cursor)
	return id, nil
}

// SwapSubtrees exchanges the positions of two disjoint subtrees.
// It reports false when a and b are equal or one contains the other.
func (t *TagTree[C]) SwapSubtrees(a, b arena.ID) (bool, error) {
	if !t.IsAttached(a) {
		return false, fmt.Errorf("swap %s: %w", a, ErrOrphanedCursor)
	}
	if !t.IsAttached(b) {
		return false, fmt.Errorf("swap %s: %w", b, ErrOrphanedCursor)
	}
	if a == b || t.isDescendant(a, b) || t.isDescendant(b, a) {
		return false, nil
	}

	na, nb := t.node(a), t.node(b)
	switch {
	case na.next == b:
		t.unlink(a)
		t.linkAfter(b, a)
		return true, nil
	case nb.next == a:
		t.unlink(b)
		t.linkAfter(a, b)
		return true, nil
	}

	aParent, aPrev, aNext := na.parent, na.prev, na.next
	bParent, bPrev, bNext := nb.parent, nb.prev, nb.next
	t.unlink(a)
	t.unlink(b)
	t.linkAt(bParent, bPrev, bNext, a)
	t.linkAt(aParent, aPrev, aNext, b)
	return true, nil
}

// DeleteContainer removes a container and all of its descendants.
// Deleting Root clears the whole tree. Splits left with a single child are
// collapsed into that child, walking up until the root or a split that
// still holds two or more children.
func (t *TagTree[C]) DeleteContainer(c ContainerID) error {
	if c.IsRoot() {
		t.nodes.Clear()
		t.root = RootContainer{SplitType: t.root.SplitType}
		return nil
	}
	id := c.id
	if !t.nodes.Contains(id) {
		return fmt.Errorf("delete %s: %w", id, ErrStaleID)
	}

	refocus := t.refocusTarget(id)
	t.detach(id)
	t.free(id)
	t.restoreFocus(refocus)
	return nil
}

// Detach orphans a subtree without freeing it. Single-child splits left
// behind are collapsed as in DeleteContainer.
func (t *TagTree[C]) Detach(id arena.ID) error {
	n := t.node(id)
	if n == nil {
		return fmt.Errorf("detach %s: %w", id, ErrStaleID)
	}
	if !n.attached {
		return nil
	}
	refocus := t.refocusTarget(id)
	t.detach(id)
	t.restoreFocus(refocus)
	return nil
}

// Prune frees every container that is not reachable from the root and
// returns how many were freed.
func (t *TagTree[C]) Prune() int {
	live := make(map[arena.ID]struct{}, t.nodes.Len())
	for id := range t.Preorder(Root) {
		live[id] = struct{}{}
	}
	var dead []arena.ID
	for id := range t.nodes.All() {
		if _, ok := live[id]; !ok {
			dead = append(dead, id)
		}
	}
	for _, id := range dead {
		t.nodes.Remove(id)
	}
	return len(dead)
}

func (t *TagTree[C]) detach(id arena.ID) {
	parent, had := t.unlink(id)
	if had {
		t.normalize(parent)
	}
}

// free removes id and its descendants from the arena.
func (t *TagTree[C]) free(id arena.ID) {
	var ids []arena.ID
	for cur := range t.Preorder(Index(id)) {
		ids = append(ids, cur)
	}
	for _, cur := range ids {
		t.nodes.Remove(cur)
	}
	t.nodes.Remove(id)
}

// refocusTarget picks the container that should receive focus when the
// subtree at id disappears, if the focused client lives inside it.
func (t *TagTree[C]) refocusTarget(id arena.ID) arena.ID {
	if t.isDescendant(t.root.selected, id) {
		t.root.selected = arena.ID{}
	}
	if !t.isDescendant(t.root.focused, id) {
		return arena.ID{}
	}
	n := t.node(id)
	if !n.next.IsZero() {
		return n.next
	}
	return n.prev
}

func (t *TagTree[C]) restoreFocus(target arena.ID) {
	if t.root.focused.IsZero() || t.IsAttached(t.root.focused) {
		return
	}
	if !target.IsZero() && t.IsAttached(target) {
		if client, ok := t.firstClient(target); ok {
			_ = t.Focus(client)
			return
		}
	}
	for id := range t.Clients() {
		_ = t.Focus(id)
		return
	}
	t.root.focused = arena.ID{}
}

// normalize walks up from p removing empty splits and collapsing splits
// with a single child into that child.
func (t *TagTree[C]) normalize(p ContainerID) {
	for !p.IsRoot() {
		n := t.node(p.id)
		if n == nil {
			return
		}
		switch {
		case n.first.IsZero():
			parent, had := t.unlink(p.id)
			t.nodes.Remove(p.id)
			if !had {
				return
			}
			p = parent
		case n.first == n.last:
			child := n.first
			parent, had := n.parent, n.attached
			if had {
				t.replace(p.id, child)
			} else {
				c := t.node(child)
				c.attached, c.parent, c.prev, c.next = false, Root, arena.ID{}, arena.ID{}
			}
			t.nodes.Remove(p.id)
			if !had {
				return
			}
			p = parent
		default:
			return
		}
	}
}

// linkSole makes id the only child of p.
func (t *TagTree[C]) linkSole(p ContainerID, id arena.ID) {
	first, last := t.bounds(p)
	n := t.node(id)
	n.parent, n.attached = p, true
	n.prev, n.next = arena.ID{}, arena.ID{}
	*first, *last = id, id
}

// linkAfter links an unlinked id as the next sibling of cursor.
func (t *TagTree[C]) linkAfter(cursor, id arena.ID) {
	c := t.node(cursor)
	n := t.node(id)
	n.parent, n.attached = c.parent, true
	n.prev, n.next = cursor, c.next
	if c.next.IsZero() {
		_, last := t.bounds(c.parent)
		*last = id
	} else {
		t.node(c.next).prev = id
	}
	c.next = id
}

// linkBefore links an unlinked id as the previous sibling of cursor.
func (t *TagTree[C]) linkBefore(cursor, id arena.ID) {
	c := t.node(cursor)
	n := t.node(id)
	n.parent, n.attached = c.parent, true
	n.prev, n.next = c.prev, cursor
	if c.prev.IsZero() {
		first, _ := t.bounds(c.parent)
		*first = id
	} else {
		t.node(c.prev).next = id
	}
	c.prev = id
}

// linkAt links an unlinked id into parent between prev and next.
func (t *TagTree[C]) linkAt(parent ContainerID, prev, next, id arena.ID) {
	switch {
	case !prev.IsZero():
		t.linkAfter(prev, id)
	case !next.IsZero():
		t.linkBefore(next, id)
	default:
		t.linkSole(parent, id)
	}
}

// unlink removes id from its sibling list and parent. It returns the former
// parent and whether id was attached.
func (t *TagTree[C]) unlink(id arena.ID) (ContainerID, bool) {
	n := t.node(id)
	if !n.attached {
		return Root, false
	}
	parent := n.parent
	first, last := t.bounds(parent)
	if n.prev.IsZero() {
		*first = n.next
	} else {
		t.node(n.prev).next = n.next
	}
	if n.next.IsZero() {
		*last = n.prev
	} else {
		t.node(n.next).prev = n.prev
	}
	n.attached, n.parent, n.prev, n.next = false, Root, arena.ID{}, arena.ID{}
	return parent, true
}

// replace puts the unlinked-or-linked container with into old's position.
// old ends up orphaned.
func (t *TagTree[C]) replace(old, with arena.ID) {
	o := t.node(old)
	w := t.node(with)
	if w.attached {
		t.unlink(with)
	}
	w.parent, w.attached = o.parent, o.attached
	w.prev, w.next = o.prev, o.next
	if o.attached {
		first, last := t.bounds(o.parent)
		if o.prev.IsZero() {
			*first = with
		} else {
			t.node(o.prev).next = with
		}
		if o.next.IsZero() {
			*last = with
		} else {
			t.node(o.next).prev = with
		}
	}
	o.attached, o.parent, o.prev, o.next = false, Root, arena.ID{}, arena.ID{}
}
