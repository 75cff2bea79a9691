package layout

import "github.com/bnema/tagwm/internal/domain/entity"

const (
	NameHStack = "hstack"
	NameVStack = "vstack"
)

// StackParams are the tunables shared by the stack layouts.
type StackParams struct {
	MasterFactor entity.SplitRatio
	Inverted     bool
	Fixed        bool
	NewAsMaster  bool
	Border       int
}

func (p *StackParams) edit(msg Message) bool {
	switch msg.Param {
	case ParamMasterFactor:
		return editRatio(msg, &p.MasterFactor)
	case ParamInverted:
		return editBool(msg, &p.Inverted)
	case ParamFixed:
		return editBool(msg, &p.Fixed)
	case ParamNewAsMaster:
		return editBool(msg, &p.NewAsMaster)
	case ParamBorder:
		return editInt(msg, &p.Border, 0)
	default:
		return false
	}
}

// arrangeStack puts the master on one side of axis and the remaining
// windows in equal slices across the other side.
func arrangeStack(p StackParams, n int, area entity.Geometry, vertical bool) []*entity.Geometry {
	out := make([]*entity.Geometry, n)
	if n == 0 {
		return out
	}
	if n == 1 && !p.Fixed {
		out[0] = visible(area, p.Border)
		return out
	}

	cut := area.SplitHorizontal
	stackAxis := rows
	if vertical {
		cut = area.SplitVertical
		stackAxis = columns
	}
	var master, stack entity.Geometry
	if p.Inverted {
		stack, master = cut(entity.NewSplitRatio(100 - p.MasterFactor.Percent()))
	} else {
		master, stack = cut(p.MasterFactor)
	}

	out[0] = visible(master, p.Border)
	if n == 1 {
		return out
	}
	for i, g := range equalSlices(stack, n-1, stackAxis) {
		out[i+1] = visible(g, p.Border)
	}
	return out
}

// HStack puts the master window across the top of the screen and the other
// windows side by side below it. Inverted moves the master to the bottom.
type HStack struct {
	StackParams
}

func (s *HStack) Name() string { return NameHStack }

func (s *HStack) Arrange(n int, area entity.Geometry) []*entity.Geometry {
	return arrangeStack(s.StackParams, n, area, true)
}

func (s *HStack) masterAbove() bool { return !s.Inverted }

func (s *HStack) LeftWindow(index, maxIndex int) (int, bool) {
	if index > 1 {
		return index - 1, true
	}
	return 0, false
}

func (s *HStack) RightWindow(index, maxIndex int) (int, bool) {
	if index >= 1 && index < maxIndex {
		return index + 1, true
	}
	return 0, false
}

func (s *HStack) TopWindow(index, maxIndex int) (int, bool) {
	if s.masterAbove() {
		return toMaster(index)
	}
	return fromMaster(index, maxIndex)
}

func (s *HStack) BottomWindow(index, maxIndex int) (int, bool) {
	if s.masterAbove() {
		return fromMaster(index, maxIndex)
	}
	return toMaster(index)
}

func (s *HStack) NewWindowAsMaster() bool { return s.NewAsMaster }

func (s *HStack) EditLayout(msg Message) bool { return s.edit(msg) }

// VStack puts the master window on the left and stacks the other windows
// on the right. Inverted moves the master to the right.
type VStack struct {
	StackParams
}

func (s *VStack) Name() string { return NameVStack }

func (s *VStack) Arrange(n int, area entity.Geometry) []*entity.Geometry {
	return arrangeStack(s.StackParams, n, area, false)
}

func (s *VStack) LeftWindow(index, maxIndex int) (int, bool) {
	if s.Inverted {
		return fromMaster(index, maxIndex)
	}
	return toMaster(index)
}

func (s *VStack) RightWindow(index, maxIndex int) (int, bool) {
	if s.Inverted {
		return toMaster(index)
	}
	return fromMaster(index, maxIndex)
}

func (s *VStack) TopWindow(index, maxIndex int) (int, bool) {
	if index > 1 {
		return index - 1, true
	}
	return 0, false
}

func (s *VStack) BottomWindow(index, maxIndex int) (int, bool) {
	if index >= 1 && index < maxIndex {
		return index + 1, true
	}
	return 0, false
}

func (s *VStack) NewWindowAsMaster() bool { return s.NewAsMaster }

func (s *VStack) EditLayout(msg Message) bool { return s.edit(msg) }

// toMaster steps from a stack window to the master.
func toMaster(index int) (int, bool) {
	if index > 0 {
		return 0, true
	}
	return 0, false
}

// fromMaster steps from the master to the first stack window.
func fromMaster(index, maxIndex int) (int, bool) {
	if index == 0 && maxIndex >= 1 {
		return 1, true
	}
	return 0, false
}
