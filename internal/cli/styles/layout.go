package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/tagwm/internal/domain/entity"
)

// WindowRow is one client as shown by the layout renderers.
type WindowRow struct {
	Name     string
	Geometry entity.Geometry
	Visible  bool
	Focused  bool
	Floating bool
}

// LayoutRenderer renders layout results as tables and character canvases.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a new layout renderer with the given theme.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// RenderHeader renders the layout name, window count and screen size line.
func (r *LayoutRenderer) RenderHeader(layoutName string, windows int, area entity.Geometry) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf(
		"%s %s  %s  %s",
		iconStyle.Render(IconLayout),
		r.theme.Title.Render(layoutName),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d windows", windows)),
		r.theme.Subtle.Render(fmt.Sprintf("%dx%d", area.W, area.H)),
	)
}

// RenderTable renders one row per window with its geometry.
func (r *LayoutRenderer) RenderTable(rows []WindowRow) string {
	if len(rows) == 0 {
		return r.theme.Subtle.Render("No windows")
	}

	data := make([][]string, 0, len(rows))
	for _, w := range rows {
		state := "hidden"
		switch {
		case w.Visible && w.Floating:
			state = "floating"
		case w.Visible:
			state = "tiled"
		}
		cursor := " "
		if w.Focused {
			cursor = IconCursor
		}
		g := w.Geometry
		data = append(data, []string{
			cursor,
			w.Name,
			fmt.Sprint(g.X),
			fmt.Sprint(g.Y),
			fmt.Sprint(g.W),
			fmt.Sprint(g.H),
			state,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(r.theme.Muted).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("", "Window", "X", "Y", "W", "H", "State").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(rows) {
				return base
			}
			w := rows[row]
			switch {
			case w.Focused:
				return base.Foreground(r.theme.Accent).Bold(true)
			case !w.Visible:
				return base.Foreground(r.theme.Muted)
			case w.Floating && col == 6:
				return base.Foreground(r.theme.Warning)
			}
			return base.Foreground(r.theme.Text)
		})

	return t.Render()
}

// RenderCanvas draws the visible windows of area scaled into a cols x lines
// character grid. Floating windows are drawn over tiled ones and the focused
// window is drawn last.
func (r *LayoutRenderer) RenderCanvas(area entity.Geometry, rows []WindowRow, cols, lines int) string {
	if cols < 2 || lines < 2 || area.W <= 0 || area.H <= 0 {
		return ""
	}
	c := newCanvas(cols, lines)

	var focused *WindowRow
	draw := func(w WindowRow) {
		style := r.theme.Window
		switch {
		case w.Focused:
			style = r.theme.WindowFocused
		case w.Floating:
			style = r.theme.WindowFloat
		}
		c.box(scaleRect(w.Geometry, area, cols, lines), w.Name, style)
	}
	for _, floating := range []bool{false, true} {
		for i := range rows {
			w := rows[i]
			if !w.Visible || w.Floating != floating {
				continue
			}
			if w.Focused {
				focused = &rows[i]
				continue
			}
			draw(w)
		}
	}
	if focused != nil {
		draw(*focused)
	}

	return c.render(r.theme.Subtle)
}

// cell is a rect in canvas coordinates, inclusive of both corners.
type cell struct {
	x0, y0, x1, y1 int
}

func scaleRect(g, area entity.Geometry, cols, lines int) cell {
	scale := func(v, origin, size, n int) int {
		p := (v - origin) * n / size
		return min(max(p, 0), n-1)
	}
	return cell{
		x0: scale(g.X, area.X, area.W, cols),
		y0: scale(g.Y, area.Y, area.H, lines),
		x1: scale(g.X+g.W-1, area.X, area.W, cols),
		y1: scale(g.Y+g.H-1, area.Y, area.H, lines),
	}
}

type canvas struct {
	cols, lines int
	runes       [][]rune
	styles      [][]*lipgloss.Style
}

func newCanvas(cols, lines int) *canvas {
	c := &canvas{cols: cols, lines: lines}
	c.runes = make([][]rune, lines)
	c.styles = make([][]*lipgloss.Style, lines)
	for y := range lines {
		c.runes[y] = []rune(strings.Repeat("·", cols))
		c.styles[y] = make([]*lipgloss.Style, cols)
	}
	return c
}

func (c *canvas) set(x, y int, r rune, style *lipgloss.Style) {
	c.runes[y][x] = r
	c.styles[y][x] = style
}

func (c *canvas) box(rc cell, label string, style lipgloss.Style) {
	for y := rc.y0; y <= rc.y1; y++ {
		for x := rc.x0; x <= rc.x1; x++ {
			ch := ' '
			switch {
			case y == rc.y0 && x == rc.x0:
				ch = '┌'
			case y == rc.y0 && x == rc.x1:
				ch = '┐'
			case y == rc.y1 && x == rc.x0:
				ch = '└'
			case y == rc.y1 && x == rc.x1:
				ch = '┘'
			case y == rc.y0 || y == rc.y1:
				ch = '─'
			case x == rc.x0 || x == rc.x1:
				ch = '│'
			}
			c.set(x, y, ch, &style)
		}
	}

	inner := rc.x1 - rc.x0 - 1
	if inner <= 0 || rc.y1-rc.y0 < 2 {
		return
	}
	text := []rune(label)
	if len(text) > inner {
		text = text[:inner]
	}
	y := (rc.y0 + rc.y1) / 2
	x := rc.x0 + 1 + (inner-len(text))/2
	for i, ch := range text {
		c.set(x+i, y, ch, &style)
	}
}

// render joins runs of equally styled cells so each run is styled once.
func (c *canvas) render(background lipgloss.Style) string {
	var b strings.Builder
	for y := range c.lines {
		start := 0
		for x := 1; x <= c.cols; x++ {
			if x < c.cols && c.styles[y][x] == c.styles[y][start] {
				continue
			}
			style := background
			if s := c.styles[y][start]; s != nil {
				style = *s
			}
			b.WriteString(style.Render(string(c.runes[y][start:x])))
			start = x
		}
		if y < c.lines-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
