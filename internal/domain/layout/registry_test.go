package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			l, err := New[string](name, DefaultParams())
			require.NoError(t, err)
			assert.Equal(t, name, l.Name())
		})
	}

	_, err := New[string]("bogus", DefaultParams())
	assert.ErrorIs(t, err, ErrUnknownLayout)
	_, err = NewArranger(NameManual, DefaultParams())
	assert.ErrorIs(t, err, ErrUnknownLayout, "manual is not a flat arranger")
}

func TestNew_ClampsParams(t *testing.T) {
	p := DefaultParams()
	p.Columns = -3
	p.Offset = -1

	a, err := NewArranger(NameGrid, p)
	require.NoError(t, err)
	assert.Equal(t, 1, a.(*Grid).Columns)

	a, err = NewArranger(NameMonocle, p)
	require.NoError(t, err)
	assert.Equal(t, 0, a.(*Monocle).Offset)
}

func TestNext(t *testing.T) {
	names := Names()
	assert.Equal(t, names[1], Next(names[0]))
	assert.Equal(t, names[0], Next(names[len(names)-1]))
	assert.Equal(t, names[0], Next("bogus"))

	names[0] = "mutated"
	assert.Equal(t, NameManual, Names()[0], "Names returns a copy")
}
