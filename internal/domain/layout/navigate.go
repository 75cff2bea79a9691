package layout

import (
	"fmt"
	"slices"

	"github.com/bnema/tagwm/internal/domain/arena"
	"github.com/bnema/tagwm/internal/domain/entity"
	"github.com/bnema/tagwm/internal/domain/tree"
)

// navigationCanvas is the render target used for geometric lookups when a
// layout has not been rendered yet.
var navigationCanvas = entity.Geometry{W: 10000, H: 10000}

// navCandidate is a container reachable in a direction, scored by distance.
type navCandidate struct {
	id    arena.ID
	score int
}

// nearestInDirection picks the visible rectangle closest to from in dir.
// Rectangles sharing a row (left/right) or a column (up/down) with from are
// always preferred.
func nearestInDirection(from entity.Geometry, rects map[arena.ID]entity.Geometry, dir Direction, skip func(arena.ID) bool) (arena.ID, bool) {
	// Large penalty for rectangles without perpendicular overlap.
	const noOverlapPenalty = 10_000_000

	acx, acy := from.Midpoint()
	var candidates []navCandidate
	for id, rect := range rects {
		if skip(id) {
			continue
		}
		cx, cy := rect.Midpoint()
		inDirection, primary, perp, overlap := evalDirection(from, rect, cx-acx, cy-acy, dir)
		if !inDirection {
			continue
		}
		score := primary*1000 + perp
		if !overlap {
			score += noOverlapPenalty
		}
		candidates = append(candidates, navCandidate{id: id, score: score})
	}
	if len(candidates) == 0 {
		return arena.ID{}, false
	}

	// Ties are broken by id so map iteration order never leaks into results.
	slices.SortFunc(candidates, func(a, b navCandidate) int {
		if a.score != b.score {
			return a.score - b.score
		}
		return a.id.Compare(b.id)
	})
	return candidates[0].id, true
}

func evalDirection(from, rect entity.Geometry, dx, dy int, dir Direction) (inDirection bool, primary, perp int, overlap bool) {
	switch dir {
	case Left:
		return dx < 0, abs(dx), abs(dy), from.OverlapsVertically(rect)
	case Right:
		return dx > 0, abs(dx), abs(dy), from.OverlapsVertically(rect)
	case Up:
		return dy < 0, abs(dy), abs(dx), from.OverlapsHorizontally(rect)
	case Down:
		return dy > 0, abs(dy), abs(dx), from.OverlapsHorizontally(rect)
	default:
		return false, 0, 0, false
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// findStructural answers the non-geometric directions on the raw tree.
func findStructural[C any](t *tree.TagTree[C], id arena.ID, dir Direction) (arena.ID, bool) {
	switch dir {
	case PreorderNext:
		return t.NextInPreorder(id)
	case PreorderPrev:
		return t.PrevInPreorder(id)
	case InorderNext:
		return nextClient(t, id, t.NextInPreorder)
	case InorderPrev:
		return nextClient(t, id, t.PrevInPreorder)
	case NextSibling, PrevSibling:
		return cycleSibling(t, id, dir == NextSibling)
	default:
		return arena.ID{}, false
	}
}

// nextClient steps with step until it lands on a client container.
func nextClient[C any](t *tree.TagTree[C], id arena.ID, step func(arena.ID) (arena.ID, bool)) (arena.ID, bool) {
	for {
		next, ok := step(id)
		if !ok {
			return arena.ID{}, false
		}
		if n, _ := t.Get(next); n.IsClient() {
			return next, true
		}
		id = next
	}
}

// cycleSibling returns the next or previous sibling, wrapping around the
// parent's child list.
func cycleSibling[C any](t *tree.TagTree[C], id arena.ID, forward bool) (arena.ID, bool) {
	n, ok := t.Get(id)
	if !ok || !t.IsAttached(id) {
		return arena.ID{}, false
	}
	parent, _ := n.Parent()

	var target arena.ID
	if forward {
		target = n.NextSibling()
		if target.IsZero() {
			target = firstChild(t, parent)
		}
	} else {
		target = n.PrevSibling()
		if target.IsZero() {
			target = lastChild(t, parent)
		}
	}
	if target == id {
		return arena.ID{}, false
	}
	return target, true
}

func firstChild[C any](t *tree.TagTree[C], c tree.ContainerID) arena.ID {
	if id, ok := c.Arena(); ok {
		n, _ := t.Get(id)
		return n.FirstChild()
	}
	return t.Root().FirstChild()
}

func lastChild[C any](t *tree.TagTree[C], c tree.ContainerID) arena.ID {
	if id, ok := c.Arena(); ok {
		n, _ := t.Get(id)
		return n.LastChild()
	}
	return t.Root().LastChild()
}

// insertAtCursor inserts payload after the tree cursor, or as the first
// client of an empty tree, and focuses it.
func insertAtCursor[C any](t *tree.TagTree[C], payload C) (arena.ID, error) {
	var id arena.ID
	var err error
	if cursor, ok := t.Cursor(); ok {
		id, err = t.InsertClientAfter(cursor, payload)
	} else {
		id, err = t.InsertFirstClient(payload)
	}
	if err != nil {
		return arena.ID{}, err
	}
	return id, t.Focus(id)
}

// deleteContainer removes id from t. The zero id never addresses the root
// here; clearing a whole tree goes through TagTree.DeleteContainer.
func deleteContainer[C any](t *tree.TagTree[C], id arena.ID) error {
	if id.IsZero() {
		return fmt.Errorf("delete %s: %w", id, tree.ErrStaleID)
	}
	return t.DeleteContainer(tree.Index(id))
}

// moveNextTo relinks cursor beside target, on the side it came from: a
// cursor that precedes target in preorder lands after it, one that follows
// lands before it.
func moveNextTo[C any](t *tree.TagTree[C], cursor, target arena.ID) (bool, error) {
	for id := range t.Preorder(tree.Root) {
		switch id {
		case cursor:
			return t.MoveSubtreeAfter(target, cursor)
		case target:
			return t.MoveSubtreeBefore(target, cursor)
		}
	}
	return t.MoveSubtreeAfter(target, cursor)
}
