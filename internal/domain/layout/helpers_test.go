package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/tagwm/internal/domain/arena"
	"github.com/bnema/tagwm/internal/domain/entity"
	"github.com/bnema/tagwm/internal/domain/tree"
)

// flatTree inserts payloads as root-level clients in order.
func flatTree(t *testing.T, payloads ...string) (*tree.TagTree[string], []arena.ID) {
	t.Helper()
	tr := tree.New[string]()
	ids := make([]arena.ID, 0, len(payloads))
	for i, p := range payloads {
		var id arena.ID
		var err error
		if i == 0 {
			id, err = tr.InsertFirstClient(p)
		} else {
			id, err = tr.InsertClientAfter(ids[i-1], p)
		}
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return tr, ids
}

// byPayload re-keys a render result by client payload.
func byPayload(t *testing.T, tr *tree.TagTree[string], geoms map[arena.ID]entity.Geometry) map[string]entity.Geometry {
	t.Helper()
	out := make(map[string]entity.Geometry, len(geoms))
	for id, g := range geoms {
		n, ok := tr.Get(id)
		require.True(t, ok, "rendered container %s should exist", id)
		out[n.Payload] = g
	}
	return out
}

// order lists the payloads of the top-level clients.
func order(tr *tree.TagTree[string]) []string {
	var out []string
	for _, n := range tr.Children(tree.Root) {
		if n.IsClient() {
			out = append(out, n.Payload)
		}
	}
	return out
}

// deref turns an arrangement into values, keeping nil entries as empty
// rectangles flagged by the returned mask.
func deref(geoms []*entity.Geometry) ([]entity.Geometry, []bool) {
	vals := make([]entity.Geometry, len(geoms))
	shown := make([]bool, len(geoms))
	for i, g := range geoms {
		if g != nil {
			vals[i] = *g
			shown[i] = true
		}
	}
	return vals, shown
}

func geo(x, y, w, h int) entity.Geometry {
	return entity.NewGeometry(x, y, w, h)
}

var screen = geo(0, 0, 100, 100)
