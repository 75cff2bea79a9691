package entity

import "testing"

func TestSplitRatio_Clamps(t *testing.T) {
	tests := []struct {
		in   int
		want SplitRatio
	}{
		{-20, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{250, 100},
	}

	for _, tt := range tests {
		if got := NewSplitRatio(tt.in); got != tt.want {
			t.Errorf("NewSplitRatio(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSplitRatio_AddSaturates(t *testing.T) {
	if got := NewSplitRatio(95).Add(10); got != 100 {
		t.Errorf("95+10 = %d, want 100", got)
	}
	if got := NewSplitRatio(5).Add(-10); got != 0 {
		t.Errorf("5-10 = %d, want 0", got)
	}
	if got := NewSplitRatio(40).Add(5); got != 45 {
		t.Errorf("40+5 = %d, want 45", got)
	}
}

func TestSplitType_String(t *testing.T) {
	if got := HorizontalSplit(30).String(); got != "horizontal(30%)" {
		t.Errorf("got %q", got)
	}
	if got := TabbedSplit().String(); got != "tabbed" {
		t.Errorf("got %q", got)
	}
}
