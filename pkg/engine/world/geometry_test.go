package world

import "testing"

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 5, 3)
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", NewRect(4, 2, 3, 3), true},
		{"touching right edge", NewRect(5, 0, 3, 3), false},
		{"touching bottom edge", NewRect(0, 3, 5, 2), false},
		{"far away", NewRect(10, 10, 2, 2), false},
		{"contained", NewRect(1, 1, 1, 1), true},
		{"empty", NewRect(1, 1, 0, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %v, want %v", a, tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("%v.Intersects(%v) = %v, want %v", tt.b, a, got, tt.want)
			}
		})
	}
}

func TestRectCenterAndContains(t *testing.T) {
	r := NewRect(2, 4, 5, 4)
	if got, want := r.Center(), Pos(4, 5); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
	if !r.Contains(Pos(2, 4)) {
		t.Error("Contains(top-left) = false, want true")
	}
	if r.Contains(Pos(7, 4)) {
		t.Error("Contains(X2) = true, want false")
	}
	if got := len(r.Cells()); got != 20 {
		t.Errorf("len(Cells()) = %d, want 20", got)
	}
}

func TestSpanIntersect(t *testing.T) {
	s := Span{1, 4}.Intersect(Span{2, 9})
	if s.Start != 2 || s.End != 4 {
		t.Errorf("Intersect = %+v, want {2 4}", s)
	}
	if got := (Span{5, 3}).Len(); got != 0 {
		t.Errorf("Len of inverted span = %d, want 0", got)
	}
	if got := (Span{1, 2}).Intersect(Span{3, 5}); !got.Empty() {
		t.Errorf("disjoint Intersect = %+v, want empty", got)
	}
}

func TestOrientation(t *testing.T) {
	if Horizontal.Perpendicular() != Vertical || Vertical.Perpendicular() != Horizontal {
		t.Error("Perpendicular is not symmetric")
	}
	if Horizontal.Forward() != East || Vertical.Forward() != South {
		t.Error("Forward directions are wrong")
	}
	if d := South.Delta(); d != Pos(0, 1) {
		t.Errorf("South.Delta() = %v, want (0,1)", d)
	}
}
