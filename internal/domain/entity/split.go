package entity

import "fmt"

// SplitRatio is a percentage clamped to 0..100.
type SplitRatio uint8

// DefaultSplitRatio splits a rectangle in half.
const DefaultSplitRatio SplitRatio = 50

// NewSplitRatio clamps v into 0..100.
func NewSplitRatio(v int) SplitRatio {
	return SplitRatio(min(max(v, 0), 100))
}

// Percent returns the ratio as an int percentage.
func (r SplitRatio) Percent() int {
	return int(r)
}

// Add returns the ratio shifted by delta, saturating at 0 and 100.
func (r SplitRatio) Add(delta int) SplitRatio {
	delta = min(max(delta, -100), 100)
	return NewSplitRatio(int(r) + delta)
}

// SplitKind selects how a split container shares space between children.
type SplitKind uint8

const (
	Horizontal SplitKind = iota // Children side by side, left to right
	Vertical                    // Children stacked top to bottom
	Tabbed                      // Children share one rectangle, one visible
)

func (k SplitKind) String() string {
	switch k {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Tabbed:
		return "tabbed"
	default:
		return fmt.Sprintf("SplitKind(%d)", uint8(k))
	}
}

// SplitType is the tagged choice of Horizontal(ratio), Vertical(ratio) or Tabbed.
// Ratio is meaningless for Tabbed.
type SplitType struct {
	Kind  SplitKind
	Ratio SplitRatio
}

// HorizontalSplit creates a horizontal split type.
func HorizontalSplit(ratio SplitRatio) SplitType {
	return SplitType{Kind: Horizontal, Ratio: ratio}
}

// VerticalSplit creates a vertical split type.
func VerticalSplit(ratio SplitRatio) SplitType {
	return SplitType{Kind: Vertical, Ratio: ratio}
}

// TabbedSplit creates a tabbed split type.
func TabbedSplit() SplitType {
	return SplitType{Kind: Tabbed}
}

// IsTabbed reports whether children share a single rectangle.
func (s SplitType) IsTabbed() bool {
	return s.Kind == Tabbed
}

func (s SplitType) String() string {
	if s.Kind == Tabbed {
		return s.Kind.String()
	}
	return fmt.Sprintf("%s(%d%%)", s.Kind, s.Ratio)
}
