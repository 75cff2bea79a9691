package layout

import (
	"fmt"
	"strings"
)

// Direction selects the neighbour returned by FindContainer.
type Direction uint8

const (
	Left Direction = iota
	Up
	Right
	Down
	PreorderNext
	PreorderPrev
	InorderNext
	InorderPrev
	NextSibling
	PrevSibling
)

var directionNames = [...]string{
	Left:         "left",
	Up:           "up",
	Right:        "right",
	Down:         "down",
	PreorderNext: "preorder-next",
	PreorderPrev: "preorder-prev",
	InorderNext:  "inorder-next",
	InorderPrev:  "inorder-prev",
	NextSibling:  "next-sibling",
	PrevSibling:  "prev-sibling",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// IsGeometric reports whether d is a screen-relative direction.
func (d Direction) IsGeometric() bool {
	return d <= Down
}

// ParseDirection maps a name such as "left" or "next-sibling" to a Direction.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
