package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tagwm/internal/domain/entity"
)

func TestLayoutRenderer_RenderTable(t *testing.T) {
	r := NewLayoutRenderer(NewTheme())

	assert.Contains(t, r.RenderTable(nil), "No windows")

	out := r.RenderTable([]WindowRow{
		{Name: "w1", Geometry: entity.NewGeometry(0, 0, 960, 1080), Visible: true, Focused: true},
		{Name: "w2", Geometry: entity.NewGeometry(960, 0, 960, 1080), Visible: true, Floating: true},
		{Name: "w3"},
	})
	for _, want := range []string{"Window", "w1", "w2", "w3", "960", "1080", "tiled", "floating", "hidden"} {
		assert.Contains(t, out, want)
	}
}

func TestLayoutRenderer_RenderHeader(t *testing.T) {
	r := NewLayoutRenderer(NewTheme())

	out := r.RenderHeader("hstack", 3, entity.NewGeometry(0, 0, 1920, 1080))
	assert.Contains(t, out, "hstack")
	assert.Contains(t, out, "3 windows")
	assert.Contains(t, out, "1920x1080")
}

func TestScaleRect(t *testing.T) {
	area := entity.NewGeometry(0, 0, 100, 50)

	tests := []struct {
		name string
		g    entity.Geometry
		want cell
	}{
		{"full", area, cell{0, 0, 19, 9}},
		{"left half", entity.NewGeometry(0, 0, 50, 50), cell{0, 0, 9, 9}},
		{"right half", entity.NewGeometry(50, 0, 50, 50), cell{10, 0, 19, 9}},
		{"clamped", entity.NewGeometry(-10, 40, 500, 500), cell{0, 8, 19, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scaleRect(tt.g, area, 20, 10))
		})
	}
}

func TestLayoutRenderer_RenderCanvas(t *testing.T) {
	r := NewLayoutRenderer(NewTheme())
	area := entity.NewGeometry(0, 0, 100, 50)

	assert.Empty(t, r.RenderCanvas(area, nil, 1, 1))

	out := r.RenderCanvas(area, []WindowRow{
		{Name: "left", Geometry: entity.NewGeometry(0, 0, 50, 50), Visible: true, Focused: true},
		{Name: "right", Geometry: entity.NewGeometry(50, 0, 50, 50), Visible: true},
		{Name: "gone", Geometry: area},
	}, 20, 10)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "┌────────┐┌────────┐", lines[0])
	assert.Equal(t, "└────────┘└────────┘", lines[9])
	assert.Contains(t, out, "left")
	assert.Contains(t, out, "right")
	assert.NotContains(t, out, "gone")
}

func TestLayoutRenderer_RenderCanvasFocusedOnTop(t *testing.T) {
	r := NewLayoutRenderer(NewTheme())
	area := entity.NewGeometry(0, 0, 100, 50)

	out := r.RenderCanvas(area, []WindowRow{
		{Name: "front", Geometry: entity.NewGeometry(0, 0, 100, 50), Visible: true, Focused: true},
		{Name: "back", Geometry: entity.NewGeometry(0, 0, 100, 50), Visible: true, Floating: true},
	}, 20, 10)

	assert.Contains(t, out, "front")
	assert.NotContains(t, out, "back")
}
