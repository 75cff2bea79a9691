package layout

import (
	"github.com/bnema/tagwm/internal/domain/arena"
	"github.com/bnema/tagwm/internal/domain/entity"
	"github.com/bnema/tagwm/internal/domain/tree"
)

// NameManual is the registry name of the Manual layout.
const NameManual = "manual"

// Manual renders the tag tree exactly as it is shaped. Every split shares
// its rectangle equally between its children; tabbed splits show only the
// child holding their last focused client. Any tree shape is accepted.
type Manual[C any] struct {
	lastTarget entity.Geometry
}

// NewManual creates a Manual layout.
func NewManual[C any]() *Manual[C] {
	return &Manual[C]{}
}

func (m *Manual[C]) Name() string { return NameManual }

// placement is the rectangle computed for a container and whether it will
// actually be drawn.
type placement struct {
	geometry entity.Geometry
	visible  bool
}

// Render walks the tree once in preorder. Hidden tabbed siblings still get a
// geometry so that floating ones can be drawn.
func (m *Manual[C]) Render(t *tree.TagTree[C], target entity.Geometry) map[arena.ID]entity.Geometry {
	m.lastTarget = target
	table := m.place(t, target)

	out := make(map[arena.ID]entity.Geometry)
	for id := range t.Clients() {
		if p := table[id]; p.visible {
			out[id] = p.geometry
		}
	}
	return out
}

// place computes the side table of placements for every attached container.
// A floating container is centered on target once its base geometry is
// known, before its children are placed inside it.
func (m *Manual[C]) place(t *tree.TagTree[C], target entity.Geometry) map[arena.ID]placement {
	table := make(map[arena.ID]placement, t.Len())
	m.placeChildren(t, tree.Root, t.Root().SplitType, t.Root().Focused(), placement{geometry: target, visible: true}, table)
	for id, n := range t.Preorder(tree.Root) {
		if n.Floating {
			p := table[id]
			p.geometry.Center(target)
			p.visible = true
			table[id] = p
		}
		if n.IsSplit() {
			m.placeChildren(t, tree.Index(id), n.SplitType, n.LastFocused, table[id], table)
		}
	}
	return table
}

func (m *Manual[C]) placeChildren(t *tree.TagTree[C], parent tree.ContainerID, st entity.SplitType, lastFocused arena.ID, self placement, table map[arena.ID]placement) {
	count := t.NumChildren(parent)
	if count == 0 {
		return
	}

	if st.IsTabbed() {
		shown := tabOnPath(t, parent, lastFocused)
		for id := range t.Children(parent) {
			table[id] = placement{geometry: self.geometry, visible: self.visible && id == shown}
		}
		return
	}

	i := 0
	pieces := equalSlices(self.geometry, count, st)
	for id := range t.Children(parent) {
		table[id] = placement{geometry: pieces[i], visible: self.visible}
		i++
	}
}

// tabOnPath returns the child of parent whose subtree holds lastFocused,
// or the first child.
func tabOnPath[C any](t *tree.TagTree[C], parent tree.ContainerID, lastFocused arena.ID) arena.ID {
	cur := lastFocused
	for !cur.IsZero() {
		p, ok := t.Parent(cur)
		if !ok {
			break
		}
		if p == parent {
			return cur
		}
		next, ok := p.Arena()
		if !ok {
			break
		}
		cur = next
	}
	return firstChild(t, parent)
}

func (m *Manual[C]) CheckTree(*tree.TagTree[C]) bool { return true }

func (m *Manual[C]) FixupTree(*tree.TagTree[C]) {}

// InsertClient inserts after the cursor and focuses the new client.
func (m *Manual[C]) InsertClient(t *tree.TagTree[C], payload C) (bool, error) {
	if _, err := insertAtCursor(t, payload); err != nil {
		return false, err
	}
	return true, nil
}

// InsertContainer copies srcRoot from src and splices it after the cursor.
func (m *Manual[C]) InsertContainer(t *tree.TagTree[C], src *tree.TagTree[C], srcRoot tree.ContainerID) (bool, error) {
	cursor, _ := t.Cursor()
	if _, err := t.InsertSubtreeAfter(cursor, src, srcRoot); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Manual[C]) DeleteContainer(t *tree.TagTree[C], id arena.ID) (bool, error) {
	if err := deleteContainer(t, id); err != nil {
		return false, err
	}
	return true, nil
}

// FindContainer answers geometric directions against the last render target
// and structural directions on the tree itself.
func (m *Manual[C]) FindContainer(t *tree.TagTree[C], id arena.ID, dir Direction) (arena.ID, bool) {
	if !t.IsAttached(id) {
		return arena.ID{}, false
	}
	if !dir.IsGeometric() {
		return findStructural(t, id, dir)
	}

	target := m.lastTarget
	if target.IsEmpty() {
		target = navigationCanvas
	}
	table := m.place(t, target)
	from, ok := table[id]
	if !ok {
		return arena.ID{}, false
	}

	// Windows in the same floating subtree come first; tiled ones are the
	// fallback.
	layer := floatingRoot(t, id)
	same := make(map[arena.ID]entity.Geometry)
	base := make(map[arena.ID]entity.Geometry)
	for cid := range t.Clients() {
		p := table[cid]
		if !p.visible {
			continue
		}
		switch l := floatingRoot(t, cid); {
		case l == layer:
			same[cid] = p.geometry
		case l.IsZero():
			base[cid] = p.geometry
		}
	}
	skip := func(cid arena.ID) bool {
		return cid == id || isInside(t, cid, id)
	}
	if found, ok := nearestInDirection(from.geometry, same, dir, skip); ok {
		return found, true
	}
	return nearestInDirection(from.geometry, base, dir, skip)
}

// floatingRoot returns the outermost floating container holding id, id
// itself included, or the zero id when id is tiled.
func floatingRoot[C any](t *tree.TagTree[C], id arena.ID) arena.ID {
	var root arena.ID
	for {
		if n, ok := t.Get(id); ok && n.Floating {
			root = id
		}
		p, ok := t.Parent(id)
		if !ok {
			return root
		}
		if id, ok = p.Arena(); !ok {
			return root
		}
	}
}

// isInside reports whether id lies strictly below ancestor.
func isInside[C any](t *tree.TagTree[C], id, ancestor arena.ID) bool {
	for {
		p, ok := t.Parent(id)
		if !ok {
			return false
		}
		pid, ok := p.Arena()
		if !ok {
			return false
		}
		if pid == ancestor {
			return true
		}
		id = pid
	}
}

func (m *Manual[C]) SwapContainers(t *tree.TagTree[C], a, b arena.ID) (bool, error) {
	return t.SwapSubtrees(a, b)
}

// MoveContainer relinks cursor as a sibling of target, past it in the
// direction of travel.
func (m *Manual[C]) MoveContainer(t *tree.TagTree[C], cursor, target arena.ID) (bool, error) {
	return moveNextTo(t, cursor, target)
}

// ProcessMsg reports no change: Manual has no tunable parameters.
func (m *Manual[C]) ProcessMsg(Message) bool { return false }
