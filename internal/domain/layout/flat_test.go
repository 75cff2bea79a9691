package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tagwm/internal/domain/entity"
	"github.com/bnema/tagwm/internal/domain/tree"
)

func newHStack() *Flat[string] {
	return NewFlat[string](&HStack{StackParams: StackParams{MasterFactor: 50}})
}

func insertAll(t *testing.T, l Layout[string], tr *tree.TagTree[string], payloads ...string) {
	t.Helper()
	for _, p := range payloads {
		changed, err := l.InsertClient(tr, p)
		require.NoError(t, err)
		require.True(t, changed)
	}
}

func TestFlat_HStackScenario(t *testing.T) {
	tr := tree.New[string]()
	l := newHStack()
	insertAll(t, l, tr, "a", "b", "c")

	assert.Equal(t, []string{"a", "b", "c"}, order(tr), "slaves are appended")
	got := byPayload(t, tr, l.Render(tr, screen))
	want := map[string]entity.Geometry{
		"a": geo(0, 0, 100, 50),
		"b": geo(0, 50, 50, 50),
		"c": geo(50, 50, 50, 50),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestFlat_MonocleInsertsAsMaster(t *testing.T) {
	tr := tree.New[string]()
	l := NewFlat[string](&Monocle{})
	insertAll(t, l, tr, "a", "b")

	assert.Equal(t, []string{"b", "a"}, order(tr))
	got := byPayload(t, tr, l.Render(tr, screen))
	assert.Equal(t, map[string]entity.Geometry{"b": screen}, got)

	n, ok := tr.Get(tr.Root().Focused())
	require.True(t, ok)
	assert.Equal(t, "b", n.Payload)
}

func TestFlat_FixupTreeFlattensInPreorder(t *testing.T) {
	tr, _, _, _, _ := nestedTree(t)
	l := newHStack()

	require.False(t, l.CheckTree(tr))
	l.FixupTree(tr)
	assert.True(t, l.CheckTree(tr))
	assert.Equal(t, []string{"a", "b", "c"}, order(tr))
	require.NoError(t, tr.Verify())
}

func TestFlat_RenderFloating(t *testing.T) {
	tr, ids := flatTree(t, "a", "b", "c")
	l := newHStack()
	require.NoError(t, tr.SetFloating(ids[2], true))

	got := byPayload(t, tr, l.Render(tr, screen))
	assert.Equal(t, map[string]entity.Geometry{
		"a": geo(0, 0, 100, 50),
		"b": geo(0, 50, 100, 50),
		"c": geo(25, 25, 50, 50),
	}, got)
}

func TestFlat_FindContainer(t *testing.T) {
	tr, ids := flatTree(t, "a", "b", "c")
	l := newHStack()

	got, ok := l.FindContainer(tr, ids[0], Down)
	require.True(t, ok)
	assert.Equal(t, ids[1], got)

	got, ok = l.FindContainer(tr, ids[2], Left)
	require.True(t, ok)
	assert.Equal(t, ids[1], got)

	got, ok = l.FindContainer(tr, ids[1], Up)
	require.True(t, ok)
	assert.Equal(t, ids[0], got)

	_, ok = l.FindContainer(tr, ids[0], Left)
	assert.False(t, ok)

	got, ok = l.FindContainer(tr, ids[2], NextSibling)
	require.True(t, ok)
	assert.Equal(t, ids[0], got, "sibling cycling wraps")

	require.NoError(t, tr.SetFloating(ids[1], true))
	_, ok = l.FindContainer(tr, ids[1], Down)
	assert.False(t, ok, "floating windows are not in the arrangement")
}

func TestFlat_DeleteSwapMove(t *testing.T) {
	tr, ids := flatTree(t, "a", "b", "c", "d")
	l := newHStack()

	swapped, err := l.SwapContainers(tr, ids[0], ids[2])
	require.NoError(t, err)
	require.True(t, swapped)
	assert.Equal(t, []string{"c", "b", "a", "d"}, order(tr))

	moved, err := l.MoveContainer(tr, ids[2], ids[3])
	require.NoError(t, err)
	require.True(t, moved)
	assert.Equal(t, []string{"b", "a", "d", "c"}, order(tr))

	changed, err := l.DeleteContainer(tr, ids[0])
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"b", "d", "c"}, order(tr))

	_, err = l.DeleteContainer(tr, ids[0])
	assert.ErrorIs(t, err, tree.ErrStaleID)
	require.NoError(t, tr.Verify())
}

func TestFlat_MoveContainerBackward(t *testing.T) {
	tr, ids := flatTree(t, "a", "b", "c")
	l := NewFlat[string](&VStack{StackParams: StackParams{MasterFactor: 50}})

	target, ok := l.FindContainer(tr, ids[2], Up)
	require.True(t, ok)
	require.Equal(t, ids[1], target)

	moved, err := l.MoveContainer(tr, ids[2], target)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, []string{"a", "c", "b"}, order(tr))

	target, ok = l.FindContainer(tr, ids[2], Left)
	require.True(t, ok)
	moved, err = l.MoveContainer(tr, ids[2], target)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, []string{"c", "a", "b"}, order(tr))
	require.NoError(t, tr.Verify())
}

func TestFlat_MoveContainerOntoOwnSlot(t *testing.T) {
	tr, ids := flatTree(t, "a", "b", "c")
	l := newHStack()

	moved, err := l.MoveContainer(tr, ids[1], ids[1])
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, []string{"a", "b", "c"}, order(tr))
}

func TestFlat_InsertContainerFlattensCopy(t *testing.T) {
	dst, _ := flatTree(t, "a")
	src, srcIDs := flatTree(t, "x", "y")
	_, err := src.SplitContainer(srcIDs[1], entity.VerticalSplit(entity.DefaultSplitRatio))
	require.NoError(t, err)
	_, err = src.InsertClientAfter(srcIDs[1], "z")
	require.NoError(t, err)

	l := newHStack()
	changed, err := l.InsertContainer(dst, src, tree.Root)
	require.NoError(t, err)
	require.True(t, changed)

	assert.True(t, l.CheckTree(dst))
	assert.Equal(t, []string{"a", "x", "y", "z"}, order(dst))
	require.NoError(t, dst.Verify())
}

func TestFlat_ProcessMsg(t *testing.T) {
	tr, ids := flatTree(t, "a", "b")
	l := newHStack()

	require.True(t, l.ProcessMsg(Add(ParamMasterFactor, 10)))
	got := l.Render(tr, screen)
	assert.Equal(t, geo(0, 0, 100, 60), got[ids[0]])
	assert.Equal(t, geo(0, 60, 100, 40), got[ids[1]])

	assert.False(t, l.ProcessMsg(Add(ParamOffset, 10)), "hstack has no offset")
}
