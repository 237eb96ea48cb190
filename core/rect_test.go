package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := RectAt(2, 3, 10, 5)

	if r.Left() != 2 || r.Right() != 12 || r.Top() != 3 || r.Bottom() != 8 {
		t.Errorf("unexpected edges: left=%d right=%d top=%d bottom=%d",
			r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	if r.Area() != 50 {
		t.Errorf("expected area 50, got %d", r.Area())
	}
}

func TestRectNegativeDimensionsClamp(t *testing.T) {
	r := NewRect(-5, -3)
	if !r.IsEmpty() {
		t.Errorf("negative dimensions should clamp to empty, got %v", r)
	}
}

func TestRectInner(t *testing.T) {
	tests := []struct {
		name       string
		rect       Rect
		horizontal int
		vertical   int
		want       Rect
	}{
		{"normal margin", RectAt(0, 0, 10, 10), 2, 2, RectAt(2, 2, 6, 6)},
		{"zero margin", RectAt(1, 1, 4, 4), 0, 0, RectAt(1, 1, 4, 4)},
		{"margin exceeds width", RectAt(0, 0, 3, 10), 2, 0, Rect{}},
		{"margin exceeds height", RectAt(0, 0, 10, 3), 0, 2, Rect{}},
		{"margin equals half", RectAt(0, 0, 4, 4), 2, 2, Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rect.Inner(tt.horizontal, tt.vertical)
			if !got.Equals(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if got.Width < 0 || got.Height < 0 {
				t.Errorf("inner produced negative dimensions: %v", got)
			}
		})
	}
}

func TestRectIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", RectAt(0, 0, 10, 10), RectAt(5, 5, 10, 10), RectAt(5, 5, 5, 5)},
		{"contained", RectAt(0, 0, 10, 10), RectAt(2, 2, 3, 3), RectAt(2, 2, 3, 3)},
		{"disjoint", RectAt(0, 0, 5, 5), RectAt(10, 10, 5, 5), Rect{}},
		{"touching edges", RectAt(0, 0, 5, 5), RectAt(5, 0, 5, 5), Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersection(tt.b)
			if !got.Equals(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := RectAt(0, 0, 5, 5)
	b := RectAt(10, 10, 5, 5)

	got := a.Union(b)
	want := RectAt(0, 0, 15, 15)
	if !got.Equals(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Union with an empty rect returns the other side unchanged.
	if !a.Union(Rect{}).Equals(a) {
		t.Error("union with empty rect should return the non-empty rect")
	}
}

func TestRectContains(t *testing.T) {
	r := RectAt(2, 2, 4, 4)

	if !r.Contains(2, 2) {
		t.Error("top-left corner should be contained")
	}
	if r.Contains(6, 6) {
		t.Error("exclusive bottom-right corner should not be contained")
	}
	if r.Contains(1, 3) {
		t.Error("point left of rect should not be contained")
	}
}

func TestRectClamp(t *testing.T) {
	r := RectAt(2, 2, 4, 4)

	x, y := r.Clamp(0, 0)
	if x != 2 || y != 2 {
		t.Errorf("expected (2, 2), got (%d, %d)", x, y)
	}
	x, y = r.Clamp(100, 100)
	if x != 5 || y != 5 {
		t.Errorf("expected (5, 5), got (%d, %d)", x, y)
	}
}
