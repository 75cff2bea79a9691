package tree

import (
	"errors"
	"fmt"

	"github.com/bnema/tagwm/internal/domain/arena"
)

// Verify checks the structural invariants of the attached tree: sibling
// lists are consistent in both directions, every child points back to its
// parent, no attached split is empty, and focus refers to an attached client.
func (t *TagTree[C]) Verify() error {
	var errs []error
	budget := t.nodes.Len()

	var check func(p ContainerID)
	check = func(p ContainerID) {
		first, last := t.bounds(p)
		if first.IsZero() != last.IsZero() {
			errs = append(errs, fmt.Errorf("%s: first=%s last=%s", p, *first, *last))
			return
		}

		var prev arena.ID
		for cur := *first; !cur.IsZero(); {
			if budget--; budget < 0 {
				errs = append(errs, fmt.Errorf("%s: sibling list does not terminate", p))
				return
			}
			n := t.node(cur)
			if n == nil {
				errs = append(errs, fmt.Errorf("%s: child %s does not exist", p, cur))
				return
			}
			if !n.attached || n.parent != p {
				errs = append(errs, fmt.Errorf("%s: child %s points to parent %s", p, cur, n.parent))
			}
			if n.prev != prev {
				errs = append(errs, fmt.Errorf("%s: child %s prev=%s, want %s", p, cur, n.prev, prev))
			}
			if n.IsSplit() {
				if n.first.IsZero() {
					errs = append(errs, fmt.Errorf("split %s has no children", cur))
				}
				check(Index(cur))
			} else if !n.first.IsZero() {
				errs = append(errs, fmt.Errorf("client %s has children", cur))
			}
			prev = cur
			cur = n.next
		}
		if prev != *last {
			errs = append(errs, fmt.Errorf("%s: sibling walk ends at %s, last=%s", p, prev, *last))
		}
	}
	check(Root)

	if f := t.root.focused; !f.IsZero() {
		n := t.node(f)
		switch {
		case n == nil || !t.IsAttached(f):
			errs = append(errs, fmt.Errorf("focused %s is not attached", f))
		case !n.IsClient():
			errs = append(errs, fmt.Errorf("focused %s is not a client", f))
		}
	}
	return errors.Join(errs...)
}
