package world

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(3, 4, 6, 8)
	if r.X1 != 3 || r.Y1 != 4 || r.X2 != 9 || r.Y2 != 12 {
		t.Errorf("NewRect(3,4,6,8) = %+v", r)
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(10, 10, 5, 5) // (10,10)-(15,15)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", NewRect(12, 12, 5, 5), true},
		{"contained", NewRect(11, 11, 2, 2), true},
		{"shared right edge", NewRect(15, 10, 5, 5), true},
		{"shared bottom edge", NewRect(10, 15, 5, 5), true},
		{"shared corner", NewRect(15, 15, 3, 3), true},
		{"gap right", NewRect(16, 10, 5, 5), false},
		{"gap above", NewRect(10, 2, 5, 7), false},
		{"diagonal apart", NewRect(20, 20, 3, 3), false},
	}

	for _, tt := range tests {
		if got := base.Intersects(tt.other); got != tt.want {
			t.Errorf("%s: Intersects = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.other.Intersects(base); got != tt.want {
			t.Errorf("%s: symmetric Intersects = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRectCenter(t *testing.T) {
	tests := []struct {
		r      Rect
		cx, cy int
	}{
		{NewRect(0, 0, 6, 6), 3, 3},
		{NewRect(1, 1, 7, 9), 4, 5},     // (1+8)/2=4, (1+10)/2=5
		{NewRect(10, 20, 9, 7), 14, 23}, // (10+19)/2=14, (20+27)/2=23
	}
	for _, tt := range tests {
		x, y := tt.r.Center()
		if x != tt.cx || y != tt.cy {
			t.Errorf("%+v.Center() = (%d,%d), want (%d,%d)", tt.r, x, y, tt.cx, tt.cy)
		}
	}
}

func TestRectContainsInterior(t *testing.T) {
	r := NewRect(2, 2, 4, 4) // carved (3..6, 3..6)
	if r.Contains(2, 3) {
		t.Error("defining edge X1 should not be part of the interior")
	}
	if !r.Contains(3, 3) || !r.Contains(6, 6) {
		t.Error("interior corners should be contained")
	}
	if r.Contains(7, 6) {
		t.Error("beyond X2 should not be contained")
	}
}
