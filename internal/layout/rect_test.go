package layout

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.X != 5 {
		t.Errorf("NewRect().X = %d, want 5", r.X)
	}
	if r.Y != 10 {
		t.Errorf("NewRect().Y = %d, want 10", r.Y)
	}
	if r.Width != 20 {
		t.Errorf("NewRect().Width = %d, want 20", r.Width)
	}
	if r.Height != 15 {
		t.Errorf("NewRect().Height = %d, want 15", r.Height)
	}
}

func TestRect_RightTop(t *testing.T) {
	type tc struct {
		rect  Rect
		right int
		top   int
	}

	tests := map[string]tc{
		"standard rect": {
			rect:  NewRect(5, 10, 20, 15),
			right: 25,
			top:   25,
		},
		"negative position": {
			rect:  NewRect(-5, -5, 10, 10),
			right: 5,
			top:   5,
		},
		"zero size": {
			rect:  NewRect(5, 5, 0, 0),
			right: 5,
			top:   5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.rect.Top(); got != tt.top {
				t.Errorf("Top() = %d, want %d", got, tt.top)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		x, y     int
		contains bool
	}

	r := NewRect(10, 20, 30, 40)

	tests := map[string]tc{
		"point inside":               {x: 20, y: 30, contains: true},
		"bottom-left corner inside":  {x: 10, y: 20, contains: true},
		"right edge outside":         {x: 40, y: 30, contains: false},
		"top edge outside":           {x: 20, y: 60, contains: false},
		"top-right corner outside":   {x: 40, y: 60, contains: false},
		"last column and row inside": {x: 39, y: 59, contains: true},
		"left of rect":               {x: 9, y: 30, contains: false},
		"below rect":                 {x: 20, y: 19, contains: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.contains {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.contains)
			}
			if got := (Point{X: tt.x, Y: tt.y}).In(r); got != tt.contains {
				t.Errorf("Point.In() = %v, want %v", got, tt.contains)
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 10, 10)
	if !outer.ContainsRect(NewRect(2, 2, 8, 8)) {
		t.Error("ContainsRect() = false for rect touching the far edges, want true")
	}
	if outer.ContainsRect(NewRect(2, 2, 9, 8)) {
		t.Error("ContainsRect() = true for overflowing rect, want false")
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
	}

	tests := map[string]tc{
		"overlapping": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: NewRect(5, 5, 5, 5),
		},
		"contained": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(2, 3, 4, 5),
			expected: NewRect(2, 3, 4, 5),
		},
		"touching edges": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: Rect{},
		},
		"disjoint": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(20, 20, 5, 5),
			expected: Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.expected {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.expected)
			}
			if got := tt.b.Intersects(tt.a); got != !tt.expected.IsEmpty() {
				t.Errorf("Intersects() (reversed) = %v, want %v", got, !tt.expected.IsEmpty())
			}
		})
	}
}

func TestRect_Mutators(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	r.SetPosition(10, 20)
	r.SetSize(30, 40)
	if r != NewRect(10, 20, 30, 40) {
		t.Errorf("after SetPosition/SetSize = %+v, want {10 20 30 40}", r)
	}
	if got := r.Translate(-10, 5); got != NewRect(0, 25, 30, 40) {
		t.Errorf("Translate(-10, 5) = %+v, want {0 25 30 40}", got)
	}
	if got := r.Size(); got != (Size{Width: 30, Height: 40}) {
		t.Errorf("Size() = %+v, want {30 40}", got)
	}
}

func TestPoint(t *testing.T) {
	p1 := Point{X: 10, Y: 20}
	p2 := Point{X: 5, Y: 15}

	if sum := p1.Add(p2); sum != (Point{X: 15, Y: 35}) {
		t.Errorf("Add() = %+v, want {15 35}", sum)
	}
	if diff := p1.Sub(p2); diff != (Point{X: 5, Y: 5}) {
		t.Errorf("Sub() = %+v, want {5 5}", diff)
	}
}
