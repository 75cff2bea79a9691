package entity

import "testing"

func TestGeometry_SplitVerticalEq(t *testing.T) {
	g := Geometry{X: 0, Y: 0, W: 100, H: 50}

	first, offset := g.SplitVerticalEq(2)
	if want := (Geometry{X: 0, Y: 0, W: 100, H: 25}); first != want {
		t.Fatalf("first = %v, want %v", first, want)
	}
	if offset != 25 {
		t.Fatalf("offset = %d, want 25", offset)
	}
}

func TestGeometry_EqualSplitTilesRectangle(t *testing.T) {
	rects := []Geometry{
		{X: 0, Y: 0, W: 100, H: 50},
		{X: 13, Y: 7, W: 1919, H: 1079},
		{X: -5, Y: 3, W: 7, H: 3},
	}

	for _, g := range rects {
		for n := 1; n <= 9; n++ {
			for _, st := range []SplitType{HorizontalSplit(DefaultSplitRatio), VerticalSplit(DefaultSplitRatio)} {
				var first Geometry
				var offset, total int
				if st.Kind == Horizontal {
					first, offset = g.SplitHorizontalEq(n)
					total = g.W
				} else {
					first, offset = g.SplitVerticalEq(n)
					total = g.H
				}
				remainder := total - offset*n

				cur := first
				sum := 0
				for i := 0; i < n; i++ {
					piece := cur
					if i == n-1 {
						piece = piece.Extend(st, remainder)
					}
					if st.Kind == Horizontal {
						if piece.X != g.X+sum {
							t.Fatalf("%v n=%d piece %d starts at x=%d, want %d", g, n, i, piece.X, g.X+sum)
						}
						sum += piece.W
					} else {
						if piece.Y != g.Y+sum {
							t.Fatalf("%v n=%d piece %d starts at y=%d, want %d", g, n, i, piece.Y, g.Y+sum)
						}
						sum += piece.H
					}
					cur = cur.Offset(st, offset)
				}
				if sum != total {
					t.Fatalf("%v n=%d %s pieces sum to %d, want %d", g, n, st.Kind, sum, total)
				}
			}
		}
	}
}

func TestGeometry_SplitWithRatio(t *testing.T) {
	g := Geometry{X: 10, Y: 20, W: 101, H: 33}

	left, right := g.SplitHorizontal(NewSplitRatio(50))
	if left != (Geometry{X: 10, Y: 20, W: 50, H: 33}) {
		t.Fatalf("left = %v", left)
	}
	if right != (Geometry{X: 60, Y: 20, W: 51, H: 33}) {
		t.Fatalf("right = %v", right)
	}

	top, bottom := g.SplitVertical(NewSplitRatio(30))
	if top != (Geometry{X: 10, Y: 20, W: 101, H: 9}) {
		t.Fatalf("top = %v", top)
	}
	if bottom != (Geometry{X: 10, Y: 29, W: 101, H: 24}) {
		t.Fatalf("bottom = %v", bottom)
	}
}

func TestGeometry_OffsetTabbedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when offsetting along a tabbed split")
		}
	}()
	Geometry{W: 10, H: 10}.Offset(TabbedSplit(), 5)
}

func TestGeometry_EqualSplitZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on zero-way split")
		}
	}()
	Geometry{W: 10, H: 10}.SplitHorizontalEq(0)
}

func TestGeometry_Center(t *testing.T) {
	g := Geometry{X: 0, Y: 0, W: 40, H: 20}
	g.Center(Geometry{X: 100, Y: 50, W: 200, H: 100})

	if want := (Geometry{X: 180, Y: 90, W: 40, H: 20}); g != want {
		t.Fatalf("centered = %v, want %v", g, want)
	}
}

func TestGeometry_Inset(t *testing.T) {
	tests := []struct {
		name string
		in   Geometry
		n    int
		want Geometry
	}{
		{"zero inset", Geometry{W: 10, H: 10}, 0, Geometry{W: 10, H: 10}},
		{"regular", Geometry{X: 1, Y: 1, W: 10, H: 8}, 2, Geometry{X: 3, Y: 3, W: 6, H: 4}},
		{"clamped", Geometry{W: 3, H: 3}, 5, Geometry{X: 5, Y: 5, W: 0, H: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Inset(tt.n); got != tt.want {
				t.Errorf("Inset(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestGeometry_Overlaps(t *testing.T) {
	a := Geometry{X: 0, Y: 0, W: 50, H: 50}
	b := Geometry{X: 50, Y: 25, W: 50, H: 50}
	c := Geometry{X: 0, Y: 50, W: 50, H: 50}

	if !a.OverlapsVertically(b) {
		t.Errorf("expected a and b to share rows")
	}
	if a.OverlapsHorizontally(b) {
		t.Errorf("expected a and b not to share columns")
	}
	if a.OverlapsVertically(c) {
		t.Errorf("expected a and c not to share rows")
	}
}
