package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/tagwm/internal/domain/arena"
	"github.com/bnema/tagwm/internal/domain/entity"
)

// shape renders the attached tree compactly: clients by payload, splits by
// the first letter of their kind followed by their children.
func shape(tr *TagTree[string]) string {
	var b strings.Builder
	var walk func(c ContainerID)
	walk = func(c ContainerID) {
		b.WriteString("[")
		i := 0
		for id, n := range tr.Children(c) {
			if i > 0 {
				b.WriteString(" ")
			}
			i++
			if n.IsClient() {
				b.WriteString(n.Payload)
				continue
			}
			b.WriteString(n.SplitType.Kind.String()[:1])
			walk(Index(id))
		}
		b.WriteString("]")
	}
	walk(Root)
	return b.String()
}

// build inserts the given payloads as root-level clients in order.
func build(t *testing.T, payloads ...string) (*TagTree[string], []arena.ID) {
	t.Helper()
	tr := New[string]()
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

func split(t *testing.T, tr *TagTree[string], cursor arena.ID, kind entity.SplitKind) arena.ID {
	t.Helper()
	id, err := tr.SplitContainer(cursor, entity.SplitType{Kind: kind, Ratio: entity.DefaultSplitRatio})
	require.NoError(t, err)
	return id
}

func payload(t *testing.T, tr *TagTree[string], id arena.ID) string {
	t.Helper()
	n, ok := tr.Get(id)
	require.True(t, ok, "container %s should exist", id)
	return n.Payload
}
