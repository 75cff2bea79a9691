package layout

import "github.com/bnema/tagwm/internal/domain/entity"

const NameGrid = "grid"

// Grid lays windows out row by row in uniform cells, Columns per row.
type Grid struct {
	Columns int
	Border  int
}

func (g *Grid) Name() string { return NameGrid }

func (g *Grid) cols() int { return max(g.Columns, 1) }

func (g *Grid) Arrange(n int, area entity.Geometry) []*entity.Geometry {
	out := make([]*entity.Geometry, n)
	if n == 0 {
		return out
	}
	cols := g.cols()
	rowCount := (n + cols - 1) / cols
	w, h := area.W/cols, area.H/rowCount
	for i := range out {
		cell := entity.Geometry{
			X: area.X + (i%cols)*w,
			Y: area.Y + (i/cols)*h,
			W: w,
			H: h,
		}
		out[i] = visible(cell, g.Border)
	}
	return out
}

func (g *Grid) LeftWindow(index, maxIndex int) (int, bool) {
	if index%g.cols() > 0 {
		return index - 1, true
	}
	return 0, false
}

func (g *Grid) RightWindow(index, maxIndex int) (int, bool) {
	if index%g.cols() < g.cols()-1 && index < maxIndex {
		return index + 1, true
	}
	return 0, false
}

func (g *Grid) TopWindow(index, maxIndex int) (int, bool) {
	if index >= g.cols() {
		return index - g.cols(), true
	}
	return 0, false
}

func (g *Grid) BottomWindow(index, maxIndex int) (int, bool) {
	if index+g.cols() <= maxIndex {
		return index + g.cols(), true
	}
	return 0, false
}

func (g *Grid) NewWindowAsMaster() bool { return false }

func (g *Grid) EditLayout(msg Message) bool {
	switch msg.Param {
	case ParamColumns:
		return editInt(msg, &g.Columns, 1)
	case ParamBorder:
		return editInt(msg, &g.Border, 0)
	default:
		return false
	}
}
