package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tagwm/internal/domain/arena"
	"github.com/bnema/tagwm/internal/domain/entity"
)

func TestTagTree_InsertThreeDeleteMiddle(t *testing.T) {
	tr, ids := build(t, "a", "b", "c")
	require.Equal(t, 3, tr.NumChildren(Root))

	require.NoError(t, tr.DeleteContainer(Index(ids[1])))

	assert.Equal(t, 2, tr.NumChildren(Root))
	assert.Equal(t, ids[0], tr.Root().FirstChild())
	assert.Equal(t, ids[2], tr.Root().LastChild())

	a, _ := tr.Get(ids[0])
	c, _ := tr.Get(ids[2])
	assert.Equal(t, ids[2], a.NextSibling())
	assert.Equal(t, ids[0], c.PrevSibling())
	assert.False(t, tr.Contains(ids[1]))
	require.NoError(t, tr.Verify())
}

func TestTagTree_InsertFirstClientRequiresEmptyRoot(t *testing.T) {
	tr, _ := build(t, "a")

	_, err := tr.InsertFirstClient("b")
	assert.ErrorIs(t, err, ErrNotEmpty)
	assert.Equal(t, "[a]", shape(tr))
}

func TestTagTree_InsertBeforeAndAfter(t *testing.T) {
	tr, ids := build(t, "b")

	_, err := tr.InsertClientBefore(ids[0], "a")
	require.NoError(t, err)
	_, err = tr.InsertClientAfter(ids[0], "c")
	require.NoError(t, err)

	assert.Equal(t, "[a b c]", shape(tr))
	require.NoError(t, tr.Verify())
}

func TestTagTree_InsertOnOrphanedCursorFails(t *testing.T) {
	tr, ids := build(t, "a", "b")
	require.NoError(t, tr.Detach(ids[1]))

	_, err := tr.InsertClientAfter(ids[1], "c")
	assert.ErrorIs(t, err, ErrOrphanedCursor)

	require.NoError(t, tr.DeleteContainer(Index(ids[1])))
	_, err = tr.InsertClientBefore(ids[1], "c")
	assert.ErrorIs(t, err, ErrOrphanedCursor)

	assert.Equal(t, "[a]", shape(tr))
}

func TestTagTree_SplitContainer(t *testing.T) {
	tr, ids := build(t, "a", "b", "c")

	s := split(t, tr, ids[1], entity.Vertical)

	assert.Equal(t, "[a v[b] c]", shape(tr))
	parent, ok := tr.Parent(ids[1])
	require.True(t, ok)
	assert.Equal(t, Index(s), parent)
	require.NoError(t, tr.Verify())

	// Splitting the first and last child updates the parent's bounds.
	first := split(t, tr, ids[0], entity.Horizontal)
	last := split(t, tr, ids[2], entity.Tabbed)
	assert.Equal(t, first, tr.Root().FirstChild())
	assert.Equal(t, last, tr.Root().LastChild())
	assert.Equal(t, "[h[a] v[b] t[c]]", shape(tr))
	require.NoError(t, tr.Verify())
}

func TestTagTree_DeleteCollapsesSingleChildSplit(t *testing.T) {
	tr, ids := build(t, "a", "b")
	s := split(t, tr, ids[1], entity.Vertical)
	c, err := tr.InsertClientAfter(ids[1], "c")
	require.NoError(t, err)
	require.Equal(t, "[a v[b c]]", shape(tr))

	require.NoError(t, tr.DeleteContainer(Index(c)))

	assert.Equal(t, "[a b]", shape(tr))
	assert.False(t, tr.Contains(s), "collapsed split must be freed")
	require.NoError(t, tr.Verify())
}

func TestTagTree_DeleteRemovesEmptiedSplit(t *testing.T) {
	tr, ids := build(t, "a", "b")
	s := split(t, tr, ids[1], entity.Vertical)

	require.NoError(t, tr.DeleteContainer(Index(ids[1])))

	assert.Equal(t, "[a]", shape(tr))
	assert.False(t, tr.Contains(s))
	assert.Equal(t, 1, tr.Len())
	require.NoError(t, tr.Verify())
}

func TestTagTree_DeleteCollapsesTransitively(t *testing.T) {
	tr, ids := build(t, "a", "b")
	outer := split(t, tr, ids[1], entity.Vertical)
	c, err := tr.InsertClientAfter(ids[1], "c")
	require.NoError(t, err)
	inner := split(t, tr, c, entity.Horizontal)
	_, err = tr.InsertClientAfter(c, "d")
	require.NoError(t, err)
	require.Equal(t, "[a v[b h[c d]]]", shape(tr))

	// Deleting b leaves outer with the single child inner, which takes
	// outer's place under the root.
	require.NoError(t, tr.DeleteContainer(Index(ids[1])))

	assert.Equal(t, "[a h[c d]]", shape(tr))
	assert.False(t, tr.Contains(outer))
	assert.True(t, tr.Contains(inner))
	require.NoError(t, tr.Verify())
}

func TestTagTree_DeleteSubtree(t *testing.T) {
	tr, ids := build(t, "a", "b", "c")
	s := split(t, tr, ids[1], entity.Vertical)
	x, err := tr.InsertClientAfter(ids[1], "x")
	require.NoError(t, err)

	require.NoError(t, tr.DeleteContainer(Index(s)))

	assert.Equal(t, "[a c]", shape(tr))
	assert.False(t, tr.Contains(ids[1]))
	assert.False(t, tr.Contains(x))
	assert.Equal(t, 2, tr.Len())
}

func TestTagTree_DeleteRootClears(t *testing.T) {
	tr, ids := build(t, "a", "b")
	require.NoError(t, tr.Focus(ids[1]))
	require.NoError(t, tr.SetSplitType(Root, entity.VerticalSplit(50)))

	require.NoError(t, tr.DeleteContainer(Root))

	assert.True(t, tr.IsEmpty())
	assert.Equal(t, 0, tr.Len())
	assert.True(t, tr.Root().Focused().IsZero())
	assert.Equal(t, entity.Vertical, tr.Root().SplitType.Kind)
	for _, id := range ids {
		assert.False(t, tr.Contains(id))
	}
	_, ok := tr.Cursor()
	assert.False(t, ok)

	// The tree is reusable after clearing.
	_, err := tr.InsertFirstClient("c")
	require.NoError(t, err)
	assert.Equal(t, "[c]", shape(tr))
}

func TestTagTree_DeleteStaleID(t *testing.T) {
	tr, ids := build(t, "a", "b")
	require.NoError(t, tr.DeleteContainer(Index(ids[0])))

	err := tr.DeleteContainer(Index(ids[0]))
	assert.ErrorIs(t, err, ErrStaleID)
}

func TestTagTree_MoveRefusesCycles(t *testing.T) {
	tr, ids := build(t, "a", "b")
	s := split(t, tr, ids[1], entity.Vertical)
	c, err := tr.InsertClientAfter(ids[1], "c")
	require.NoError(t, err)
	before := shape(tr)

	cases := []struct {
		name    string
		cursor  arena.ID
		subtree arena.ID
	}{
		{"self", s, s},
		{"direct child", ids[1], s},
		{"last child", c, s},
		{"client onto itself", ids[0], ids[0]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			moved, err := tr.MoveSubtreeBefore(tc.cursor, tc.subtree)
			require.NoError(t, err)
			assert.False(t, moved)
			moved, err = tr.MoveSubtreeAfter(tc.cursor, tc.subtree)
			require.NoError(t, err)
			assert.False(t, moved)
			assert.Equal(t, before, shape(tr))
		})
	}
}

func TestTagTree_MoveSubtree(t *testing.T) {
	tr, ids := build(t, "a", "b", "c")
	split(t, tr, ids[2], entity.Vertical)
	d, err := tr.InsertClientAfter(ids[2], "d")
	require.NoError(t, err)
	require.Equal(t, "[a b v[c d]]", shape(tr))

	moved, err := tr.MoveSubtreeBefore(ids[0], d)
	require.NoError(t, err)
	assert.True(t, moved)

	// The split lost its second child and collapsed into c.
	assert.Equal(t, "[d a b c]", shape(tr))
	require.NoError(t, tr.Verify())

	moved, err = tr.MoveSubtreeAfter(ids[2], d)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "[a b c d]", shape(tr))
	require.NoError(t, tr.Verify())
}

func TestTagTree_MoveOntoCurrentPosition(t *testing.T) {
	tr, ids := build(t, "a", "b", "c")

	moved, err := tr.MoveSubtreeAfter(ids[0], ids[1])
	require.NoError(t, err)
	assert.False(t, moved, "b already follows a")

	moved, err = tr.MoveSubtreeBefore(ids[2], ids[1])
	require.NoError(t, err)
	assert.False(t, moved, "b already precedes c")
	assert.Equal(t, "[a b c]", shape(tr))

	moved, err = tr.MoveSubtreeBefore(ids[1], ids[2])
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "[a c b]", shape(tr))
	require.NoError(t, tr.Verify())
}

func TestTagTree_MoveChildNextToItsParent(t *testing.T) {
	tr, ids := build(t, "a", "b")
	s := split(t, tr, ids[1], entity.Vertical)
	c, err := tr.InsertClientAfter(ids[1], "c")
	require.NoError(t, err)

	moved, err := tr.MoveSubtreeAfter(s, c)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "[a b c]", shape(tr))
	assert.False(t, tr.Contains(s))
	require.NoError(t, tr.Verify())
}

func TestTagTree_MoveOrphanedSubtree(t *testing.T) {
	tr, ids := build(t, "a", "b", "c")
	require.NoError(t, tr.Detach(ids[0]))
	require.Equal(t, "[b c]", shape(tr))
	_, attached := tr.Parent(ids[0])
	assert.False(t, attached)

	moved, err := tr.MoveSubtreeAfter(ids[2], ids[0])
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "[b c a]", shape(tr))
}

func TestTagTree_MoveOntoOrphanedCursorFails(t *testing.T) {
	tr, ids := build(t, "a", "b", "c")
	require.NoError(t, tr.Detach(ids[0]))

	_, err := tr.MoveSubtreeAfter(ids[0], ids[1])
	assert.ErrorIs(t, err, ErrOrphanedCursor)
	assert.Equal(t, "[b c]", shape(tr))
}

func TestTagTree_Preorder(t *testing.T) {
	tr, ids := build(t, "a", "b", "e")
	s := split(t, tr, ids[1], entity.Vertical)
	c, err := tr.InsertClientAfter(ids[1], "c")
	require.NoError(t, err)
	inner := split(t, tr, c, entity.Horizontal)
	d, err := tr.InsertClientAfter(c, "d")
	require.NoError(t, err)
	require.Equal(t, "[a v[b h[c d]] e]", shape(tr))

	var order []arena.ID
	for id := range tr.Preorder(Root) {
		order = append(order, id)
	}
	assert.Equal(t, []arena.ID{ids[0], s, ids[1], inner, c, d, ids[2]}, order)

	var sub []arena.ID
	for id := range tr.Preorder(Index(s)) {
		sub = append(sub, id)
	}
	assert.Equal(t, []arena.ID{ids[1], inner, c, d}, sub, "walk must stay inside the subtree")

	var leaf []arena.ID
	for id := range tr.Preorder(Index(d)) {
		leaf = append(leaf, id)
	}
	assert.Empty(t, leaf)

	// Early stop.
	count := 0
	for range tr.Preorder(Root) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestTagTree_PreorderNeighbours(t *testing.T) {
	tr, ids := build(t, "a", "b", "d")
	s := split(t, tr, ids[1], entity.Vertical)
	c, err := tr.InsertClientAfter(ids[1], "c")
	require.NoError(t, err)
	require.Equal(t, "[a v[b c] d]", shape(tr))

	next, ok := tr.NextInPreorder(ids[0])
	require.True(t, ok)
	assert.Equal(t, s, next)

	next, ok = tr.NextInPreorder(c)
	require.True(t, ok)
	assert.Equal(t, ids[2], next)

	_, ok = tr.NextInPreorder(ids[2])
	assert.False(t, ok)

	prev, ok := tr.PrevInPreorder(ids[2])
	require.True(t, ok)
	assert.Equal(t, c, prev)

	prev, ok = tr.PrevInPreorder(ids[1])
	require.True(t, ok)
	assert.Equal(t, s, prev)

	_, ok = tr.PrevInPreorder(ids[0])
	assert.False(t, ok)
}

func TestTagTree_Cursor(t *testing.T) {
	tr := New[string]()
	_, ok := tr.Cursor()
	assert.False(t, ok, "empty tree has no cursor")

	tr, ids := build(t, "a", "b", "c")

	cur, ok := tr.Cursor()
	require.True(t, ok)
	assert.Equal(t, ids[2], cur, "falls back to the last top-level container")

	require.NoError(t, tr.Focus(ids[0]))
	cur, _ = tr.Cursor()
	assert.Equal(t, ids[0], cur)

	require.NoError(t, tr.Select(ids[1]))
	cur, _ = tr.Cursor()
	assert.Equal(t, ids[1], cur, "selection overrides focus")

	tr.ClearSelection()
	cur, _ = tr.Cursor()
	assert.Equal(t, ids[0], cur)
}

func TestTagTree_FocusRecordsLastFocused(t *testing.T) {
	tr, ids := build(t, "a", "b")
	outer := split(t, tr, ids[1], entity.Tabbed)
	c, err := tr.InsertClientAfter(ids[1], "c")
	require.NoError(t, err)
	inner := split(t, tr, c, entity.Vertical)
	d, err := tr.InsertClientAfter(c, "d")
	require.NoError(t, err)

	require.NoError(t, tr.Focus(d))

	o, _ := tr.Get(outer)
	i, _ := tr.Get(inner)
	assert.Equal(t, d, o.LastFocused)
	assert.Equal(t, d, i.LastFocused)
	assert.Equal(t, d, tr.Root().Focused())

	// Focusing a split resolves to its last focused client.
	require.NoError(t, tr.Focus(ids[0]))
	require.NoError(t, tr.Focus(outer))
	assert.Equal(t, d, tr.Root().Focused())
}

func TestTagTree_DeletingFocusedMovesFocus(t *testing.T) {
	tr, ids := build(t, "a", "b", "c")
	require.NoError(t, tr.Focus(ids[1]))

	require.NoError(t, tr.DeleteContainer(Index(ids[1])))
	assert.Equal(t, ids[2], tr.Root().Focused(), "next sibling takes focus")

	require.NoError(t, tr.DeleteContainer(Index(ids[2])))
	assert.Equal(t, ids[0], tr.Root().Focused(), "previous sibling takes focus")

	require.NoError(t, tr.DeleteContainer(Index(ids[0])))
	assert.True(t, tr.Root().Focused().IsZero())
	require.NoError(t, tr.Verify())
}

func TestTagTree_DeletingSelectedClearsSelection(t *testing.T) {
	tr, ids := build(t, "a", "b")
	require.NoError(t, tr.Select(ids[0]))

	require.NoError(t, tr.DeleteContainer(Index(ids[0])))
	assert.True(t, tr.Root().Selected().IsZero())
}

func TestTagTree_SwapSubtrees(t *testing.T) {
	t.Run("adjacent", func(t *testing.T) {
		tr, ids := build(t, "a", "b", "c")
		swapped, err := tr.SwapSubtrees(ids[0], ids[1])
		require.NoError(t, err)
		assert.True(t, swapped)
		assert.Equal(t, "[b a c]", shape(tr))

		swapped, err = tr.SwapSubtrees(ids[2], ids[0])
		require.NoError(t, err)
		assert.True(t, swapped)
		assert.Equal(t, "[b c a]", shape(tr))
		require.NoError(t, tr.Verify())
	})

	t.Run("distant and nested", func(t *testing.T) {
		tr, ids := build(t, "a", "b", "c", "d")
		split(t, tr, ids[1], entity.Vertical)
		x, err := tr.InsertClientAfter(ids[1], "x")
		require.NoError(t, err)
		require.Equal(t, "[a v[b x] c d]", shape(tr))

		swapped, err := tr.SwapSubtrees(ids[0], ids[2])
		require.NoError(t, err)
		assert.True(t, swapped)
		assert.Equal(t, "[c v[b x] a d]", shape(tr))

		swapped, err = tr.SwapSubtrees(x, ids[3])
		require.NoError(t, err)
		assert.True(t, swapped)
		assert.Equal(t, "[c v[b d] a x]", shape(tr))
		require.NoError(t, tr.Verify())
	})

	t.Run("refuses ancestor pairs", func(t *testing.T) {
		tr, ids := build(t, "a", "b")
		s := split(t, tr, ids[1], entity.Vertical)
		before := shape(tr)

		for _, pair := range [][2]arena.ID{{s, ids[1]}, {ids[1], s}, {ids[0], ids[0]}} {
			swapped, err := tr.SwapSubtrees(pair[0], pair[1])
			require.NoError(t, err)
			assert.False(t, swapped)
		}
		assert.Equal(t, before, shape(tr))
	})
}

func TestTagTree_Prune(t *testing.T) {
	tr, ids := build(t, "a", "b", "c")
	s := split(t, tr, ids[1], entity.Vertical)
	_, err := tr.InsertClientAfter(ids[1], "x")
	require.NoError(t, err)

	require.NoError(t, tr.Detach(s))
	assert.Equal(t, 5, tr.Len(), "detached containers keep their slots")

	freed := tr.Prune()
	assert.Equal(t, 3, freed)
	assert.Equal(t, 2, tr.Len())
	assert.False(t, tr.Contains(ids[1]))
}

func TestTagTree_FindClient(t *testing.T) {
	tr, ids := build(t, "a", "b")

	id, ok := tr.FindClient(func(p string) bool { return p == "b" })
	require.True(t, ok)
	assert.Equal(t, ids[1], id)

	_, ok = tr.FindClient(func(p string) bool { return p == "z" })
	assert.False(t, ok)
}

func TestTagTree_SetSplitType(t *testing.T) {
	tr, ids := build(t, "a", "b")
	s := split(t, tr, ids[1], entity.Vertical)

	require.NoError(t, tr.SetSplitType(Index(s), entity.TabbedSplit()))
	st, ok := tr.SplitTypeOf(Index(s))
	require.True(t, ok)
	assert.True(t, st.IsTabbed())

	err := tr.SetSplitType(Index(ids[0]), entity.TabbedSplit())
	assert.ErrorIs(t, err, ErrNotSplit)
}
