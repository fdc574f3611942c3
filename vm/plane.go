package vm

// ---------------------------------------------------------------------------
// Plane: 2D addressable surface
// ---------------------------------------------------------------------------

// Plane is a rectangular container mapping pointers to values. Access outside
// [0,width)x[0,height) is absent: Get reports false and At returns nil. An
// in-bounds cell always holds a value (the zero value until written).
type Plane[T any] interface {
	Width() int
	Height() int

	// Get returns a copy of the cell at p.
	Get(p Pointer) (T, bool)
	// At returns a reference to the cell at p, or nil if p is out of
	// bounds.
	At(p Pointer) *T
}

// SlicePlane is a growable, heap-backed Plane. Rows may be ragged; reading a
// cell beyond a short row yields the zero value, and writing through At
// extends the row first.
type SlicePlane[T any] struct {
	width  int
	height int
	rows   [][]T
}

// NewSlicePlane creates a plane of the given dimensions with every cell set
// to the zero value.
func NewSlicePlane[T any](width, height int) *SlicePlane[T] {
	rows := make([][]T, height)
	for i := range rows {
		rows[i] = make([]T, width)
	}
	return &SlicePlane[T]{width: width, height: height, rows: rows}
}

// SlicePlaneOf creates a plane from ragged rows. The width is the longest
// row; shorter rows stay ragged and read as the zero value.
func SlicePlaneOf[T any](rows [][]T) *SlicePlane[T] {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return &SlicePlane[T]{width: width, height: len(rows), rows: rows}
}

func (pl *SlicePlane[T]) Width() int  { return pl.width }
func (pl *SlicePlane[T]) Height() int { return pl.height }

func (pl *SlicePlane[T]) Get(p Pointer) (T, bool) {
	var zero T
	if p.X >= uint(pl.width) || p.Y >= uint(pl.height) {
		return zero, false
	}
	row := pl.rows[p.Y]
	if p.X >= uint(len(row)) {
		return zero, true
	}
	return row[p.X], true
}

func (pl *SlicePlane[T]) At(p Pointer) *T {
	if p.X >= uint(pl.width) || p.Y >= uint(pl.height) {
		return nil
	}
	row := pl.rows[p.Y]
	if p.X >= uint(len(row)) {
		// Materialize the ragged tail so the reference is stable.
		grown := make([]T, pl.width)
		copy(grown, row)
		pl.rows[p.Y] = grown
		row = grown
	}
	return &row[p.X]
}

// FixedPlane is a Plane whose full backing array is allocated once at
// construction and never grows. It stands in for environments that cannot
// allocate during execution.
type FixedPlane[T any] struct {
	width  int
	height int
	cells  []T
}

// NewFixedPlane creates a fixed plane of the given dimensions with every
// cell set to the zero value. Both dimensions must be non-negative.
func NewFixedPlane[T any](width, height int) *FixedPlane[T] {
	if width < 0 || height < 0 {
		panic("vm: fixed plane dimensions must be non-negative")
	}
	return &FixedPlane[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
}

func (pl *FixedPlane[T]) Width() int  { return pl.width }
func (pl *FixedPlane[T]) Height() int { return pl.height }

func (pl *FixedPlane[T]) Get(p Pointer) (T, bool) {
	if p.X >= uint(pl.width) || p.Y >= uint(pl.height) {
		var zero T
		return zero, false
	}
	return pl.cells[int(p.Y)*pl.width+int(p.X)], true
}

func (pl *FixedPlane[T]) At(p Pointer) *T {
	if p.X >= uint(pl.width) || p.Y >= uint(pl.height) {
		return nil
	}
	return &pl.cells[int(p.Y)*pl.width+int(p.X)]
}
