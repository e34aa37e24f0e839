// internal/engine/geometry_test.go
package engine

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.Right() != 40 {
		t.Errorf("Right = %d, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom = %d, want 60", r.Bottom())
	}
}

func TestIntersects(t *testing.T) {
	base := NewRect(0, 0, 100, 100)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(50, 50, 100, 100), true},
		{"contained", NewRect(25, 25, 10, 10), true},
		{"containing", NewRect(-10, -10, 200, 200), true},
		{"touching right edge", NewRect(100, 0, 50, 50), false},
		{"touching bottom edge", NewRect(0, 100, 50, 50), false},
		{"disjoint", NewRect(500, 500, 10, 10), false},
		{"zero width", NewRect(50, 50, 0, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImageScrollsWithBoundingBox(t *testing.T) {
	img := NewSizedImage(nil, Point{X: 100, Y: 0}, 600, 600)
	img.MoveHorizontally(-30)
	if box := img.BoundingBox(); box.X != 70 {
		t.Errorf("box.X = %d, want 70", box.X)
	}
	if img.Right() != 670 {
		t.Errorf("Right = %d, want 670", img.Right())
	}
	img.SetX(700)
	if box := img.BoundingBox(); box.X != 700 {
		t.Errorf("box.X = %d, want 700 after SetX", box.X)
	}
}
