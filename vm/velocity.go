package vm

// ---------------------------------------------------------------------------
// Cursor addressing: Pointer and Velocity
// ---------------------------------------------------------------------------

// Pointer addresses a cell in a plane. Coordinates are unsigned so that
// decrementing past zero wraps to the maximum representable value, which a
// plane then reports as out of bounds.
type Pointer struct {
	X uint
	Y uint
}

// Velocity is the cursor's 2-bit compass heading. Bit 1 selects the axis
// (0 horizontal, 1 vertical) and bit 0 the sign along it (0 increasing,
// 1 decreasing).
type Velocity byte

const (
	VelRight Velocity = 0b00 // increasing x
	VelLeft  Velocity = 0b01 // decreasing x
	VelDown  Velocity = 0b10 // increasing y
	VelUp    Velocity = 0b11 // decreasing y
)

const (
	velSign Velocity = 0b01
	velAxis Velocity = 0b10
)

// Advance moves p one cell along v. The addition wraps at the integer
// boundary rather than the grid boundary; there is no toroidal wraparound.
func (v Velocity) Advance(p Pointer) Pointer {
	a := &p.X
	if v&velAxis != 0 {
		a = &p.Y
	}
	if v&velSign == 0 {
		*a++
	} else {
		*a--
	}
	return p
}

func (v Velocity) String() string {
	switch v {
	case VelRight:
		return "right"
	case VelLeft:
		return "left"
	case VelDown:
		return "down"
	case VelUp:
		return "up"
	}
	return "invalid"
}
