package vm

// Deflector is an instruction that changes the cursor's velocity and touches
// nothing else.
type Deflector byte

const (
	RightArrow    Deflector = iota // > set velocity right
	LeftArrow                      // < set velocity left
	DownArrow                      // v set velocity down
	UpArrow                        // ^ set velocity up
	OmniMirror                     // o reverse (flip the sign bit)
	ForwardMirror                  // / right<->up, left<->down (flip both bits)
	BackMirror                     // \ right<->down, left<->up (flip the axis bit)
)

// Apply returns the velocity after deflection.
func (d Deflector) Apply(v Velocity) Velocity {
	switch d {
	case RightArrow:
		return VelRight
	case LeftArrow:
		return VelLeft
	case DownArrow:
		return VelDown
	case UpArrow:
		return VelUp
	case OmniMirror:
		return v ^ velSign
	case BackMirror:
		return v ^ velAxis
	case ForwardMirror:
		return v ^ velAxis ^ velSign
	}
	return v
}

// Char returns the source character for the deflector.
func (d Deflector) Char() rune {
	switch d {
	case RightArrow:
		return '>'
	case LeftArrow:
		return '<'
	case DownArrow:
		return 'v'
	case UpArrow:
		return '^'
	case OmniMirror:
		return 'o'
	case ForwardMirror:
		return '/'
	case BackMirror:
		return '\\'
	}
	return '?'
}
