package layout

import "github.com/bnema/tagwm/internal/domain/entity"

const NameDualStack = "dualstack"

// DualStack keeps the master column between two stacks. Window 1 through L
// fill the left stack top to bottom and the rest fill the right stack.
// Two windows put the master on the left with the single slave beside it.
type DualStack struct {
	MasterFactor entity.SplitRatio
	Fixed        bool
	NewAsMaster  bool
	Border       int
}

// DualStackCounts returns how many of n windows sit in the left and right
// stacks. The left stack never outgrows the right one.
func DualStackCounts(n int) (left, right int) {
	if n < 2 {
		return 0, 0
	}
	left = (n - 1) / 2
	return left, n - 1 - left
}

func (d *DualStack) Name() string { return NameDualStack }

func (d *DualStack) Arrange(n int, area entity.Geometry) []*entity.Geometry {
	out := make([]*entity.Geometry, n)
	if n == 0 {
		return out
	}

	if n == 1 {
		if !d.Fixed {
			out[0] = visible(area, d.Border)
			return out
		}
		master, _ := area.SplitHorizontal(d.MasterFactor)
		master.Center(area)
		out[0] = visible(master, d.Border)
		return out
	}

	left, right := DualStackCounts(n)
	master, rest := area.SplitHorizontal(d.MasterFactor)
	var leftArea, rightArea entity.Geometry
	if left == 0 {
		rightArea = rest
	} else {
		side := rest.W
		lw := side / 2
		leftArea = entity.Geometry{X: area.X, Y: area.Y, W: lw, H: area.H}
		master.X = area.X + lw
		rightArea = entity.Geometry{X: master.X + master.W, Y: area.Y, W: side - lw, H: area.H}
	}

	out[0] = visible(master, d.Border)
	for i, g := range equalSlices(leftArea, left, rows) {
		out[1+i] = visible(g, d.Border)
	}
	for i, g := range equalSlices(rightArea, right, rows) {
		out[1+left+i] = visible(g, d.Border)
	}
	return out
}

func (d *DualStack) LeftWindow(index, maxIndex int) (int, bool) {
	left, _ := DualStackCounts(maxIndex + 1)
	switch {
	case index == 0 && left > 0:
		return 1, true
	case index > left:
		return 0, true
	}
	return 0, false
}

func (d *DualStack) RightWindow(index, maxIndex int) (int, bool) {
	left, right := DualStackCounts(maxIndex + 1)
	switch {
	case index == 0 && right > 0:
		return left + 1, true
	case index >= 1 && index <= left:
		return 0, true
	}
	return 0, false
}

func (d *DualStack) TopWindow(index, maxIndex int) (int, bool) {
	left, _ := DualStackCounts(maxIndex + 1)
	if index > 1 && index != left+1 {
		return index - 1, true
	}
	return 0, false
}

func (d *DualStack) BottomWindow(index, maxIndex int) (int, bool) {
	left, _ := DualStackCounts(maxIndex + 1)
	if index >= 1 && index != left && index < maxIndex {
		return index + 1, true
	}
	return 0, false
}

func (d *DualStack) NewWindowAsMaster() bool { return d.NewAsMaster }

func (d *DualStack) EditLayout(msg Message) bool {
	switch msg.Param {
	case ParamMasterFactor:
		return editRatio(msg, &d.MasterFactor)
	case ParamFixed:
		return editBool(msg, &d.Fixed)
	case ParamNewAsMaster:
		return editBool(msg, &d.NewAsMaster)
	case ParamBorder:
		return editInt(msg, &d.Border, 0)
	default:
		return false
	}
}
