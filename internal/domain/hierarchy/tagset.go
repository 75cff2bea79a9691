package hierarchy

import (
	"slices"

	"github.com/bnema/tagwm/internal/domain/arena"
	"github.com/bnema/tagwm/internal/domain/layout"
	"github.com/bnema/tagwm/internal/domain/tree"
)

// TagSetID identifies a TagSet inside a ClientHierarchy.
type TagSetID struct {
	arena.ID
}

// TagSet is one view over the managed clients: every client carrying at
// least one of Tags appears in Tree, arranged by Layout. Two tag sets may
// show the same client; each keeps its own tree.
type TagSet[C any] struct {
	Name   string
	Tags   []string
	Tree   *tree.TagTree[C]
	Layout layout.Layout[C]
}

// Shows reports whether a client tagged with tags belongs in this set.
func (ts *TagSet[C]) Shows(tags []string) bool {
	for _, tag := range tags {
		if slices.Contains(ts.Tags, tag) {
			return true
		}
	}
	return false
}

// Focused returns the payload of the focused client, if any.
func (ts *TagSet[C]) Focused() (C, bool) {
	var zero C
	id := ts.Tree.Root().Focused()
	if !ts.Tree.IsAttached(id) {
		return zero, false
	}
	n, _ := ts.Tree.Get(id)
	return n.Payload, true
}
