package layout

import (
	"github.com/bnema/tagwm/internal/domain/arena"
	"github.com/bnema/tagwm/internal/domain/entity"
	"github.com/bnema/tagwm/internal/domain/tree"
)

// Arranger places an ordered list of windows. Index 0 is the master window.
type Arranger interface {
	Name() string

	// Arrange returns n entries; a nil entry hides window i.
	Arrange(n int, area entity.Geometry) []*entity.Geometry

	LeftWindow(index, maxIndex int) (int, bool)
	RightWindow(index, maxIndex int) (int, bool)
	TopWindow(index, maxIndex int) (int, bool)
	BottomWindow(index, maxIndex int) (int, bool)

	// NewWindowAsMaster reports whether new windows take index 0.
	NewWindowAsMaster() bool

	// EditLayout applies msg and reports whether a parameter changed.
	EditLayout(msg Message) bool
}

// Flat runs an Arranger over a single-level tag tree: every top-level
// container is a client and their sibling order is the window order.
type Flat[C any] struct {
	arranger Arranger
}

// NewFlat wraps arranger as a Layout.
func NewFlat[C any](arranger Arranger) *Flat[C] {
	return &Flat[C]{arranger: arranger}
}

// Arranger returns the wrapped arranger.
func (f *Flat[C]) Arranger() Arranger { return f.arranger }

func (f *Flat[C]) Name() string { return f.arranger.Name() }

// tiled lists the non-floating clients in window order.
func tiled[C any](t *tree.TagTree[C]) []arena.ID {
	var ids []arena.ID
	for id, n := range t.Clients() {
		if !n.Floating {
			ids = append(ids, id)
		}
	}
	return ids
}

// Render arranges the tiled clients and centers floating ones at half the
// target size.
func (f *Flat[C]) Render(t *tree.TagTree[C], target entity.Geometry) map[arena.ID]entity.Geometry {
	ids := tiled(t)
	out := make(map[arena.ID]entity.Geometry, len(ids))
	for i, g := range f.arranger.Arrange(len(ids), target) {
		if g != nil {
			out[ids[i]] = *g
		}
	}
	for id, n := range t.Clients() {
		if n.Floating {
			g := entity.Geometry{W: target.W / 2, H: target.H / 2}
			g.Center(target)
			out[id] = g
		}
	}
	return out
}

// CheckTree holds when no split is attached.
func (f *Flat[C]) CheckTree(t *tree.TagTree[C]) bool {
	for _, n := range t.Children(tree.Root) {
		if n.IsSplit() {
			return false
		}
	}
	return true
}

// FixupTree lifts every client to the top level, keeping preorder order.
// Splits emptied along the way are removed by the tree itself.
func (f *Flat[C]) FixupTree(t *tree.TagTree[C]) {
	if f.CheckTree(t) {
		return
	}
	var ids []arena.ID
	for id := range t.Clients() {
		ids = append(ids, id)
	}
	for i, id := range ids {
		if i == 0 {
			if first := t.Root().FirstChild(); first != id {
				_, _ = t.MoveSubtreeBefore(first, id)
			}
			continue
		}
		_, _ = t.MoveSubtreeAfter(ids[i-1], id)
	}
}

// InsertClient places the client at the master slot or at the end of the
// list depending on the arranger, then focuses it.
func (f *Flat[C]) InsertClient(t *tree.TagTree[C], payload C) (bool, error) {
	f.FixupTree(t)

	var id arena.ID
	var err error
	switch {
	case t.IsEmpty():
		id, err = t.InsertFirstClient(payload)
	case f.arranger.NewWindowAsMaster():
		id, err = t.InsertClientBefore(t.Root().FirstChild(), payload)
	default:
		id, err = t.InsertClientAfter(t.Root().LastChild(), payload)
	}
	if err != nil {
		return false, err
	}
	return true, t.Focus(id)
}

// InsertContainer appends a copy of the foreign subtree and flattens it.
func (f *Flat[C]) InsertContainer(t *tree.TagTree[C], src *tree.TagTree[C], srcRoot tree.ContainerID) (bool, error) {
	if _, err := t.InsertSubtreeAfter(t.Root().LastChild(), src, srcRoot); err != nil {
		return false, err
	}
	f.FixupTree(t)
	return true, nil
}

func (f *Flat[C]) DeleteContainer(t *tree.TagTree[C], id arena.ID) (bool, error) {
	if err := deleteContainer(t, id); err != nil {
		return false, err
	}
	f.FixupTree(t)
	return true, nil
}

// FindContainer maps geometric directions through the arranger's
// neighbour functions. Structural directions walk the list.
func (f *Flat[C]) FindContainer(t *tree.TagTree[C], id arena.ID, dir Direction) (arena.ID, bool) {
	if !t.IsAttached(id) {
		return arena.ID{}, false
	}
	if !dir.IsGeometric() {
		return findStructural(t, id, dir)
	}

	ids := tiled(t)
	index := -1
	for i, cid := range ids {
		if cid == id {
			index = i
			break
		}
	}
	if index < 0 {
		return arena.ID{}, false
	}

	var next int
	var ok bool
	maxIndex := len(ids) - 1
	switch dir {
	case Left:
		next, ok = f.arranger.LeftWindow(index, maxIndex)
	case Right:
		next, ok = f.arranger.RightWindow(index, maxIndex)
	case Up:
		next, ok = f.arranger.TopWindow(index, maxIndex)
	case Down:
		next, ok = f.arranger.BottomWindow(index, maxIndex)
	}
	if !ok || next < 0 || next > maxIndex || next == index {
		return arena.ID{}, false
	}
	return ids[next], true
}

func (f *Flat[C]) SwapContainers(t *tree.TagTree[C], a, b arena.ID) (bool, error) {
	return t.SwapSubtrees(a, b)
}

// MoveContainer places cursor past target in the window list: after it when
// cursor came from earlier in the list, before it otherwise.
func (f *Flat[C]) MoveContainer(t *tree.TagTree[C], cursor, target arena.ID) (bool, error) {
	moved, err := moveNextTo(t, cursor, target)
	if err != nil || !moved {
		return false, err
	}
	f.FixupTree(t)
	return true, nil
}

func (f *Flat[C]) ProcessMsg(msg Message) bool {
	return f.arranger.EditLayout(msg)
}

// equalSlices cuts area into n equal parts along st. The truncation
// remainder goes to the last part.
func equalSlices(area entity.Geometry, n int, st entity.SplitType) []entity.Geometry {
	if n < 1 {
		return nil
	}
	var first entity.Geometry
	var offset, total int
	if st.Kind == entity.Horizontal {
		first, offset = area.SplitHorizontalEq(n)
		total = area.W
	} else {
		first, offset = area.SplitVerticalEq(n)
		total = area.H
	}
	out := make([]entity.Geometry, n)
	for i := range out {
		out[i] = first.Offset(st, offset*i)
	}
	out[n-1] = out[n-1].Extend(st, total-offset*n)
	return out
}

// visible insets g by border and returns nil for an empty rectangle.
func visible(g entity.Geometry, border int) *entity.Geometry {
	if g.IsEmpty() {
		return nil
	}
	g = g.Inset(border)
	return &g
}

var (
	columns = entity.SplitType{Kind: entity.Horizontal}
	rows    = entity.SplitType{Kind: entity.Vertical}
)
