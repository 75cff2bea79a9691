package tree

import (
	"errors"
	"fmt"

	"github.com/bnema/tagwm/internal/domain/arena"
	"github.com/bnema/tagwm/internal/domain/entity"
)

var (
	// ErrOrphanedCursor is returned when an operation anchors on a container
	// that is not reachable from the root.
	ErrOrphanedCursor = errors.New("cursor is orphaned")
	// ErrNotEmpty is returned by InsertFirstClient on a non-empty tree.
	ErrNotEmpty = errors.New("tree is not empty")
	// ErrStaleID is returned when an id does not resolve to a live container.
	ErrStaleID = errors.New("container does not exist")
	// ErrNotSplit is returned when a split-only operation targets a client.
	ErrNotSplit = errors.New("container is not a split")
	// ErrEmptySubtree is returned when copying a subtree without containers.
	ErrEmptySubtree = errors.New("subtree has no containers")
)

// TagTree owns the container arena and the virtual root.
// It is not safe for concurrent use.
type TagTree[C any] struct {
	nodes *arena.Arena[Container[C]]
	root  RootContainer
}

// New creates an empty tree whose root splits horizontally.
func New[C any]() *TagTree[C] {
	return &TagTree[C]{
		nodes: arena.New[Container[C]](),
		root:  RootContainer{SplitType: entity.HorizontalSplit(entity.DefaultSplitRatio)},
	}
}

// Root returns the virtual root.
func (t *TagTree[C]) Root() *RootContainer {
	return &t.root
}

// Get resolves id to its container.
func (t *TagTree[C]) Get(id arena.ID) (*Container[C], bool) {
	return t.nodes.Get(id)
}

// Contains reports whether id resolves to a container, orphaned or not.
func (t *TagTree[C]) Contains(id arena.ID) bool {
	return t.nodes.Contains(id)
}

// Len returns the number of containers stored, orphans included.
func (t *TagTree[C]) Len() int {
	return t.nodes.Len()
}

// IsEmpty reports whether the root has no children.
func (t *TagTree[C]) IsEmpty() bool {
	return t.root.first.IsZero()
}

// Parent returns the parent of id. The bool is false for stale or orphaned ids.
func (t *TagTree[C]) Parent(id arena.ID) (ContainerID, bool) {
	n := t.node(id)
	if n == nil {
		return Root, false
	}
	return n.Parent()
}

// IsAttached reports whether id is reachable from the root.
func (t *TagTree[C]) IsAttached(id arena.ID) bool {
	for {
		n := t.node(id)
		if n == nil || !n.attached {
			return false
		}
		if n.parent.IsRoot() {
			return true
		}
		id = n.parent.id
	}
}

// Cursor returns the canonical edit point: the selection if set, else the
// focused client, else the last top-level container. The bool is false only
// for an empty tree.
func (t *TagTree[C]) Cursor() (arena.ID, bool) {
	if t.IsAttached(t.root.selected) {
		return t.root.selected, true
	}
	if t.IsAttached(t.root.focused) {
		return t.root.focused, true
	}
	if !t.root.last.IsZero() {
		return t.root.last, true
	}
	return arena.ID{}, false
}

// Focus marks id as the focused client and records it as LastFocused on
// every ancestor split. Focusing a split focuses the client it last had
// focused, or its first client.
func (t *TagTree[C]) Focus(id arena.ID) error {
	if !t.IsAttached(id) {
		return fmt.Errorf("focus %s: %w", id, ErrOrphanedCursor)
	}
	client, ok := t.descendClient(id)
	if !ok {
		return fmt.Errorf("focus %s: %w", id, ErrEmptySubtree)
	}

	t.root.focused = client
	cur := client
	for {
		n := t.node(cur)
		if n.parent.IsRoot() {
			return nil
		}
		p := t.node(n.parent.id)
		p.LastFocused = client
		cur = n.parent.id
	}
}

// descendClient resolves a container to a client: itself, the live
// LastFocused of a split, or the first client below it.
func (t *TagTree[C]) descendClient(id arena.ID) (arena.ID, bool) {
	for {
		n := t.node(id)
		if n == nil {
			return arena.ID{}, false
		}
		if n.IsClient() {
			return id, true
		}
		if lf := n.LastFocused; !lf.IsZero() && t.isDescendant(lf, id) {
			return lf, true
		}
		id = n.first
	}
}

// Select sets an explicit selection that overrides focus as the cursor.
func (t *TagTree[C]) Select(id arena.ID) error {
	if !t.IsAttached(id) {
		return fmt.Errorf("select %s: %w", id, ErrOrphanedCursor)
	}
	t.root.selected = id
	return nil
}

// ClearSelection drops the explicit selection.
func (t *TagTree[C]) ClearSelection() {
	t.root.selected = arena.ID{}
}

// SetFloating toggles the floating flag of id.
func (t *TagTree[C]) SetFloating(id arena.ID, floating bool) error {
	n := t.node(id)
	if n == nil {
		return fmt.Errorf("set floating %s: %w", id, ErrStaleID)
	}
	n.Floating = floating
	return nil
}

// SetSplitType changes how a split container shares space.
// Root selects the root split type.
func (t *TagTree[C]) SetSplitType(c ContainerID, st entity.SplitType) error {
	if c.IsRoot() {
		t.root.SplitType = st
		return nil
	}
	n := t.node(c.id)
	if n == nil {
		return fmt.Errorf("set split type %s: %w", c, ErrStaleID)
	}
	if !n.IsSplit() {
		return fmt.Errorf("set split type %s: %w", c, ErrNotSplit)
	}
	n.SplitType = st
	return nil
}

// SplitTypeOf returns the split type of a split container or the root.
func (t *TagTree[C]) SplitTypeOf(c ContainerID) (entity.SplitType, bool) {
	if c.IsRoot() {
		return t.root.SplitType, true
	}
	n := t.node(c.id)
	if n == nil || !n.IsSplit() {
		return entity.SplitType{}, false
	}
	return n.SplitType, true
}

// FindClient returns the first attached client whose payload matches.
func (t *TagTree[C]) FindClient(match func(C) bool) (arena.ID, bool) {
	for id, n := range t.Clients() {
		if match(n.Payload) {
			return id, true
		}
	}
	return arena.ID{}, false
}

func (t *TagTree[C]) node(id arena.ID) *Container[C] {
	n, ok := t.nodes.Get(id)
	if !ok {
		return nil
	}
	return n
}

// bounds returns pointers to the first/last child fields of a parent.
func (t *TagTree[C]) bounds(p ContainerID) (first, last *arena.ID) {
	if p.IsRoot() {
		return &t.root.first, &t.root.last
	}
	n := t.node(p.id)
	if n == nil {
		return nil, nil
	}
	return &n.first, &n.last
}

// isDescendant reports whether id lies in the subtree rooted at ancestor
// (ancestor included), walking parent links up from id.
func (t *TagTree[C]) isDescendant(id, ancestor arena.ID) bool {
	if ancestor.IsZero() {
		return false
	}
	for {
		if id == ancestor {
			return t.nodes.Contains(id)
		}
		n := t.node(id)
		if n == nil || !n.attached || n.parent.IsRoot() {
			return false
		}
		id = n.parent.id
	}
}

// subtreeContains scans the subtree rooted at root for id.
func (t *TagTree[C]) subtreeContains(root, id arena.ID) bool {
	if root == id {
		return true
	}
	for cur := range t.Preorder(Index(root)) {
		if cur == id {
			return true
		}
	}
	return false
}
