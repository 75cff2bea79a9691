package layout

import "github.com/bnema/tagwm/internal/domain/entity"

const NameMonocle = "monocle"

// Monocle shows only the master window, inset by Offset on every side.
// New windows always become master.
type Monocle struct {
	Offset int
}

func (m *Monocle) Name() string { return NameMonocle }

func (m *Monocle) Arrange(n int, area entity.Geometry) []*entity.Geometry {
	out := make([]*entity.Geometry, n)
	if n > 0 {
		g := area.Inset(m.Offset)
		out[0] = &g
	}
	return out
}

func (m *Monocle) LeftWindow(index, maxIndex int) (int, bool) {
	return m.previous(index)
}

func (m *Monocle) RightWindow(index, maxIndex int) (int, bool) {
	return m.next(index, maxIndex)
}

func (m *Monocle) TopWindow(index, maxIndex int) (int, bool) {
	return m.previous(index)
}

func (m *Monocle) BottomWindow(index, maxIndex int) (int, bool) {
	return m.next(index, maxIndex)
}

func (m *Monocle) previous(index int) (int, bool) {
	if index > 0 {
		return index - 1, true
	}
	return 0, false
}

func (m *Monocle) next(index, maxIndex int) (int, bool) {
	if index < maxIndex {
		return index + 1, true
	}
	return 0, false
}

func (m *Monocle) NewWindowAsMaster() bool { return true }

func (m *Monocle) EditLayout(msg Message) bool {
	if msg.Param != ParamOffset {
		return false
	}
	return editInt(msg, &m.Offset, 0)
}
