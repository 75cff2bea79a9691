// Package layout turns tag trees into window geometries.
//
// A Layout owns the rules for how a tag tree is shaped, rendered and
// navigated. Manual mirrors the tree as-is; the flat layouts (stacks, grid,
// spiral, monocle) treat the tree as a single ordered list of clients.
package layout

import (
	"github.com/bnema/tagwm/internal/domain/arena"
	"github.com/bnema/tagwm/internal/domain/entity"
	"github.com/bnema/tagwm/internal/domain/tree"
)

// Layout interprets and edits a tag tree.
//
// Every method that returns a bool reports whether the geometry of the tree
// must be recomputed. Returning false means nothing changed, which is always
// a valid outcome.
type Layout[C any] interface {
	// Name returns the registry name of the layout.
	Name() string

	// Render computes a geometry for every visible client container.
	Render(t *tree.TagTree[C], target entity.Geometry) map[arena.ID]entity.Geometry

	// CheckTree reports whether the tree has a shape this layout accepts.
	CheckTree(t *tree.TagTree[C]) bool

	// FixupTree reshapes the tree until CheckTree holds, keeping every client.
	FixupTree(t *tree.TagTree[C])

	// InsertClient adds a client relative to the tree cursor.
	InsertClient(t *tree.TagTree[C], payload C) (bool, error)

	// InsertContainer splices a copy of a foreign subtree.
	InsertContainer(t *tree.TagTree[C], src *tree.TagTree[C], srcRoot tree.ContainerID) (bool, error)

	// DeleteContainer removes a container and its descendants.
	DeleteContainer(t *tree.TagTree[C], id arena.ID) (bool, error)

	// FindContainer resolves a directional query from id. Callers acting on
	// the result must call FixupTree afterwards.
	FindContainer(t *tree.TagTree[C], id arena.ID, dir Direction) (arena.ID, bool)

	// SwapContainers exchanges the positions of a and b.
	SwapContainers(t *tree.TagTree[C], a, b arena.ID) (bool, error)

	// MoveContainer moves cursor next to target.
	MoveContainer(t *tree.TagTree[C], cursor, target arena.ID) (bool, error)

	// ProcessMsg applies a parameter change. Unknown parameters are ignored.
	ProcessMsg(msg Message) bool
}
