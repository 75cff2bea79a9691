package tree

import (
	"fmt"

	"github.com/bnema/tagwm/internal/domain/arena"
)

// CopySubtree deep-copies the subtree rooted at srcRoot in src into t as an
// orphan and returns the id of the copy. Every internal id is remapped;
// payloads are copied by value. Copying the root of src yields its single
// top-level container, or a new split holding all of them.
func (t *TagTree[C]) CopySubtree(src *TagTree[C], srcRoot ContainerID) (arena.ID, error) {
	if srcRoot.IsRoot() {
		return t.copyRoot(src)
	}
	n := src.node(srcRoot.id)
	if n == nil {
		return arena.ID{}, fmt.Errorf("copy %s: %w", srcRoot, ErrStaleID)
	}

	remap := make(map[arena.ID]arena.ID)
	top := t.nodes.Insert(cloneUnlinked(n))
	remap[srcRoot.id] = top
	t.copyChildren(src, srcRoot, top, remap)
	t.remapFocus(top, remap)
	return top, nil
}

func (t *TagTree[C]) copyRoot(src *TagTree[C]) (arena.ID, error) {
	switch src.NumChildren(Root) {
	case 0:
		return arena.ID{}, ErrEmptySubtree
	case 1:
		return t.CopySubtree(src, Index(src.root.first))
	}

	remap := make(map[arena.ID]arena.ID)
	top := t.nodes.Insert(Container[C]{
		kind:        KindSplit,
		SplitType:   src.root.SplitType,
		LastFocused: src.root.focused,
	})
	t.copyChildren(src, Root, top, remap)
	t.remapFocus(top, remap)
	return top, nil
}

// copyChildren copies every descendant of from into the subtree at to.
// Preorder guarantees each parent is copied before its children.
func (t *TagTree[C]) copyChildren(src *TagTree[C], from ContainerID, to arena.ID, remap map[arena.ID]arena.ID) {
	for id, n := range src.Preorder(from) {
		parent := to
		if !n.parent.IsRoot() && n.parent != from {
			parent = remap[n.parent.id]
		}
		cp := t.nodes.Insert(cloneUnlinked(n))
		remap[id] = cp
		t.appendChild(parent, cp)
	}
}

// remapFocus rewrites LastFocused of copied splits to the copied clients.
func (t *TagTree[C]) remapFocus(top arena.ID, remap map[arena.ID]arena.ID) {
	fix := func(n *Container[C]) {
		if !n.IsSplit() || n.LastFocused.IsZero() {
			return
		}
		n.LastFocused = remap[n.LastFocused]
	}
	fix(t.node(top))
	for _, n := range t.Preorder(Index(top)) {
		fix(n)
	}
}

// appendChild links id as the last child of parent.
func (t *TagTree[C]) appendChild(parent, id arena.ID) {
	p := t.node(parent)
	if p.last.IsZero() {
		t.linkSole(Index(parent), id)
		return
	}
	t.linkAfter(p.last, id)
}

func cloneUnlinked[C any](n *Container[C]) Container[C] {
	return Container[C]{
		kind:        n.kind,
		Floating:    n.Floating,
		SplitType:   n.SplitType,
		LastFocused: n.LastFocused,
		Payload:     n.Payload,
	}
}

// InsertSubtreeAfter copies a foreign subtree and splices it after cursor.
// On an empty tree the copy becomes the first top-level container and
// cursor is ignored.
func (t *TagTree[C]) InsertSubtreeAfter(cursor arena.ID, src *TagTree[C], srcRoot ContainerID) (arena.ID, error) {
	if !t.IsEmpty() && !t.IsAttached(cursor) {
		return arena.ID{}, fmt.Errorf("insert subtree after %s: %w", cursor, ErrOrphanedCursor)
	}
	cp, err := t.CopySubtree(src, srcRoot)
	if err != nil {
		return arena.ID{}, err
	}
	if t.IsEmpty() {
		if err := t.AttachFirst(cp); err != nil {
			return arena.ID{}, err
		}
		return cp, nil
	}
	if _, err := t.MoveSubtreeAfter(cursor, cp); err != nil {
		return arena.ID{}, err
	}
	return cp, nil
}
