package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tagwm/internal/domain/entity"
	"github.com/bnema/tagwm/internal/domain/layout"
)

func TestBuildHierarchy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tags = []string{"a", "b", "c"}
	cfg.Screens = []ScreenConfig{
		{Name: "left", Width: 800, Height: 600},
		{Name: "middle", X: 800, Width: 800, Height: 600, Tags: []string{"b", "c"}, Layout: layout.NameMonocle},
		{Name: "right", X: 1600, Width: 800, Height: 600, Layout: layout.NameGrid},
	}

	h, err := BuildHierarchy[string](cfg)
	require.NoError(t, err)

	require.Len(t, h.Screens(), 3)
	assert.Equal(t, "left", h.FocusedScreen().Name)

	tests := []struct {
		screen string
		view   string
		tags   []string
		layout string
	}{
		{screen: "left", view: "a", tags: []string{"a"}, layout: layout.NameHStack},
		{screen: "middle", view: "middle", tags: []string{"b", "c"}, layout: layout.NameMonocle},
		{screen: "right", view: "c", tags: []string{"c"}, layout: layout.NameGrid},
	}
	for _, tt := range tests {
		t.Run(tt.screen, func(t *testing.T) {
			s, ok := h.Screen(tt.screen)
			require.True(t, ok)
			ts, ok := h.TagSet(s.TagSet)
			require.True(t, ok)
			assert.Equal(t, tt.view, ts.Name)
			assert.Equal(t, tt.tags, ts.Tags)
			assert.Equal(t, tt.layout, ts.Layout.Name())
		})
	}

	right, _ := h.Screen("right")
	assert.Equal(t, entity.NewGeometry(1600, 0, 800, 600), right.Geometry)

	_, ok := h.FindTagSet("b")
	assert.True(t, ok)
}

func TestBuildHierarchy_WrapsTags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tags = []string{"only"}
	cfg.Screens = []ScreenConfig{
		{Name: "one", Width: 10, Height: 10},
		{Name: "two", Width: 10, Height: 10},
	}

	h, err := BuildHierarchy[int](cfg)
	require.NoError(t, err)

	one, _ := h.Screen("one")
	two, _ := h.Screen("two")
	assert.Equal(t, one.TagSet, two.TagSet)
}

func TestBuildHierarchy_Errors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.Default = "bogus"
	_, err := BuildHierarchy[string](cfg)
	require.ErrorIs(t, err, layout.ErrUnknownLayout)

	cfg = DefaultConfig()
	cfg.Tags = nil
	_, err = BuildHierarchy[string](cfg)
	require.Error(t, err)

	cfg = DefaultConfig()
	cfg.Screens = append(cfg.Screens, cfg.Screens[0])
	_, err = BuildHierarchy[string](cfg)
	require.Error(t, err)
}
