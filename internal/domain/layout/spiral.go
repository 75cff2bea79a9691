package layout

import "github.com/bnema/tagwm/internal/domain/entity"

const NameSpiral = "spiral"

// Spiral halves the free area for each window, turning clockwise. Window i
// takes one half and the rest of the list continues in spiralTurn(i).
type Spiral struct {
	NewAsMaster bool
	Border      int
}

// spiralTurns is the direction in which the free area moves after each cut.
var spiralTurns = [...]Direction{Right, Down, Left, Up}

func spiralTurn(index int) Direction {
	return spiralTurns[index%len(spiralTurns)]
}

func opposite(d Direction) Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

func (s *Spiral) Name() string { return NameSpiral }

func (s *Spiral) Arrange(n int, area entity.Geometry) []*entity.Geometry {
	out := make([]*entity.Geometry, n)
	free := area
	for i := range out {
		if i == n-1 {
			out[i] = visible(free, s.Border)
			break
		}
		var placed entity.Geometry
		switch spiralTurn(i) {
		case Right:
			placed = entity.Geometry{X: free.X, Y: free.Y, W: free.W / 2, H: free.H}
			free.X += placed.W
			free.W -= placed.W
		case Down:
			placed = entity.Geometry{X: free.X, Y: free.Y, W: free.W, H: free.H / 2}
			free.Y += placed.H
			free.H -= placed.H
		case Left:
			placed = entity.Geometry{X: free.X + free.W - free.W/2, Y: free.Y, W: free.W / 2, H: free.H}
			free.W -= placed.W
		case Up:
			placed = entity.Geometry{X: free.X, Y: free.Y + free.H - free.H/2, W: free.W, H: free.H / 2}
			free.H -= placed.H
		}
		out[i] = visible(placed, s.Border)
	}
	return out
}

// neighbour steps to the next window if it lies in dir, or back to the
// previous one if that lies in dir.
func (s *Spiral) neighbour(index, maxIndex int, dir Direction) (int, bool) {
	if index < maxIndex && spiralTurn(index) == dir {
		return index + 1, true
	}
	if index > 0 && opposite(spiralTurn(index-1)) == dir {
		return index - 1, true
	}
	return 0, false
}

func (s *Spiral) LeftWindow(index, maxIndex int) (int, bool) {
	return s.neighbour(index, maxIndex, Left)
}

func (s *Spiral) RightWindow(index, maxIndex int) (int, bool) {
	return s.neighbour(index, maxIndex, Right)
}

func (s *Spiral) TopWindow(index, maxIndex int) (int, bool) {
	return s.neighbour(index, maxIndex, Up)
}

func (s *Spiral) BottomWindow(index, maxIndex int) (int, bool) {
	return s.neighbour(index, maxIndex, Down)
}

func (s *Spiral) NewWindowAsMaster() bool { return s.NewAsMaster }

func (s *Spiral) EditLayout(msg Message) bool {
	switch msg.Param {
	case ParamNewAsMaster:
		return editBool(msg, &s.NewAsMaster)
	case ParamBorder:
		return editInt(msg, &s.Border, 0)
	default:
		return false
	}
}
