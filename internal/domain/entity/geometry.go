// Package entity defines the value types shared by the layout engine.
package entity

import "fmt"

// Geometry is an axis-aligned rectangle in screen coordinates.
// X, Y is the top-left corner.
type Geometry struct {
	X, Y int
	W, H int
}

// NewGeometry creates a rectangle from its position and size.
func NewGeometry(x, y, w, h int) Geometry {
	return Geometry{X: x, Y: y, W: w, H: h}
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", g.W, g.H, g.X, g.Y)
}

// Midpoint returns the center point of the rectangle.
func (g Geometry) Midpoint() (cx, cy int) {
	return g.X + g.W/2, g.Y + g.H/2
}

// IsEmpty reports whether the rectangle has no area.
func (g Geometry) IsEmpty() bool {
	return g.W <= 0 || g.H <= 0
}

// OverlapsVertically reports whether the two rectangles share a row range.
func (g Geometry) OverlapsVertically(other Geometry) bool {
	return g.Y < other.Y+other.H && other.Y < g.Y+g.H
}

// OverlapsHorizontally reports whether the two rectangles share a column range.
func (g Geometry) OverlapsHorizontally(other Geometry) bool {
	return g.X < other.X+other.W && other.X < g.X+g.W
}

// SplitHorizontal divides the width by ratio and returns the left and right parts.
// The truncation remainder goes to the right part.
func (g Geometry) SplitHorizontal(ratio SplitRatio) (Geometry, Geometry) {
	w := g.W * ratio.Percent() / 100
	return Geometry{X: g.X, Y: g.Y, W: w, H: g.H},
		Geometry{X: g.X + w, Y: g.Y, W: g.W - w, H: g.H}
}

// SplitVertical divides the height by ratio and returns the top and bottom parts.
// The truncation remainder goes to the bottom part.
func (g Geometry) SplitVertical(ratio SplitRatio) (Geometry, Geometry) {
	h := g.H * ratio.Percent() / 100
	return Geometry{X: g.X, Y: g.Y, W: g.W, H: h},
		Geometry{X: g.X, Y: g.Y + h, W: g.W, H: g.H - h}
}

// SplitHorizontalEq divides the width into n equal columns. It returns the
// first column and the x offset between consecutive columns. Panics if n < 1.
func (g Geometry) SplitHorizontalEq(n int) (Geometry, int) {
	if n < 1 {
		panic(fmt.Sprintf("entity: equal split into %d parts", n))
	}
	w := g.W / n
	return Geometry{X: g.X, Y: g.Y, W: w, H: g.H}, w
}

// SplitVerticalEq divides the height into n equal rows. It returns the
// first row and the y offset between consecutive rows. Panics if n < 1.
func (g Geometry) SplitVerticalEq(n int) (Geometry, int) {
	if n < 1 {
		panic(fmt.Sprintf("entity: equal split into %d parts", n))
	}
	h := g.H / n
	return Geometry{X: g.X, Y: g.Y, W: g.W, H: h}, h
}

// Offset translates the rectangle along the axis of a horizontal or vertical
// split. Tabbed children share one rectangle, so offsetting along a tabbed
// split panics.
func (g Geometry) Offset(st SplitType, delta int) Geometry {
	switch st.Kind {
	case Horizontal:
		g.X += delta
	case Vertical:
		g.Y += delta
	default:
		panic("entity: offset along a tabbed split")
	}
	return g
}

// Extend grows the rectangle along the axis of a horizontal or vertical split.
// Used to hand the truncation remainder of an equal split to the last part.
func (g Geometry) Extend(st SplitType, delta int) Geometry {
	switch st.Kind {
	case Horizontal:
		g.W += delta
	case Vertical:
		g.H += delta
	default:
		panic("entity: extend along a tabbed split")
	}
	return g
}

// Inset shrinks the rectangle by n on every side. Size never drops below zero.
func (g Geometry) Inset(n int) Geometry {
	if n <= 0 {
		return g
	}
	g.X += n
	g.Y += n
	g.W = max(g.W-2*n, 0)
	g.H = max(g.H-2*n, 0)
	return g
}

// Center moves the rectangle so it is centered inside reference. Size is kept.
func (g *Geometry) Center(reference Geometry) {
	g.X = reference.X + (reference.W-g.W)/2
	g.Y = reference.Y + (reference.H-g.H)/2
}
