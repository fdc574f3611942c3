package vm

import "testing"

// planeOf abstracts over the two implementations for shared tests.
func planes() map[string]func(width, height int) Plane[int8] {
	return map[string]func(width, height int) Plane[int8]{
		"slice": func(w, h int) Plane[int8] { return NewSlicePlane[int8](w, h) },
		"fixed": func(w, h int) Plane[int8] { return NewFixedPlane[int8](w, h) },
	}
}

func TestPlaneSetGet(t *testing.T) {
	for name, newPlane := range planes() {
		t.Run(name, func(t *testing.T) {
			pl := newPlane(4, 4)

			if v, ok := pl.Get(Pointer{}); !ok || v != 0 {
				t.Errorf("Get(0,0) on fresh plane = %d, %t, want 0, true", v, ok)
			}

			*pl.At(Pointer{X: 0, Y: 0}) = 5
			*pl.At(Pointer{X: 1, Y: 1}) = 7

			if v, _ := pl.Get(Pointer{X: 0, Y: 0}); v != 5 {
				t.Errorf("Get(0,0) = %d, want 5", v)
			}
			if v, _ := pl.Get(Pointer{X: 1, Y: 1}); v != 7 {
				t.Errorf("Get(1,1) = %d, want 7", v)
			}
			if v, _ := pl.Get(Pointer{X: 2, Y: 2}); v != 0 {
				t.Errorf("Get(2,2) = %d, want 0", v)
			}
		})
	}
}

func TestPlaneOutOfRange(t *testing.T) {
	outside := []Pointer{
		{X: 4, Y: 0},
		{X: 5, Y: 0},
		{X: 0, Y: 4},
		{X: 0, Y: 5},
		{X: 4, Y: 4},
		{X: maxUint, Y: 0},
		{X: 0, Y: maxUint},
	}

	for name, newPlane := range planes() {
		t.Run(name, func(t *testing.T) {
			pl := newPlane(4, 4)
			for _, p := range outside {
				if _, ok := pl.Get(p); ok {
					t.Errorf("Get(%d, %d) in range, want absent", p.X, p.Y)
				}
				if pl.At(p) != nil {
					t.Errorf("At(%d, %d) != nil, want nil", p.X, p.Y)
				}
			}
		})
	}
}

func TestPlaneDimensions(t *testing.T) {
	for name, newPlane := range planes() {
		t.Run(name, func(t *testing.T) {
			pl := newPlane(3, 7)
			if pl.Width() != 3 || pl.Height() != 7 {
				t.Errorf("dimensions = %d x %d, want 3 x 7", pl.Width(), pl.Height())
			}
		})
	}
}

func TestSlicePlaneRaggedRows(t *testing.T) {
	pl := SlicePlaneOf([][]int8{
		{1, 2, 3},
		{4},
		nil,
	})

	if pl.Width() != 3 || pl.Height() != 3 {
		t.Fatalf("dimensions = %d x %d, want 3 x 3", pl.Width(), pl.Height())
	}

	// In-bounds reads beyond a short row yield the default, not absent.
	if v, ok := pl.Get(Pointer{X: 2, Y: 1}); !ok || v != 0 {
		t.Errorf("Get(2,1) = %d, %t, want 0, true", v, ok)
	}
	if v, ok := pl.Get(Pointer{X: 0, Y: 2}); !ok || v != 0 {
		t.Errorf("Get(0,2) = %d, %t, want 0, true", v, ok)
	}

	// Writing into the ragged tail sticks.
	*pl.At(Pointer{X: 2, Y: 1}) = 9
	if v, _ := pl.Get(Pointer{X: 2, Y: 1}); v != 9 {
		t.Errorf("Get(2,1) after write = %d, want 9", v)
	}
}
