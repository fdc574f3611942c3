package vm

// Comparator is an instruction that rotates the cursor's velocity based on
// comparing the register to a reference value.
type Comparator byte

const (
	CmpZero  Comparator = iota // z compare register with ZERO
	CmpStack                   // c compare register with a popped value (ZERO if empty)
)

// ApplyComparator returns the velocity after comparison. A register below the
// reference rotates the velocity 90 degrees clockwise
// (right->down->left->up), above rotates counter-clockwise, and equality
// leaves it unchanged. The Stack variant pops its reference from stack.
func ApplyComparator[N Number](c Comparator, register N, stack Stack[N], v Velocity) Velocity {
	var reference N
	if c == CmpStack {
		reference, _ = stack.Pop()
	}
	switch {
	case register < reference:
		return v ^ velAxis ^ ((v >> 1) & velSign)
	case register > reference:
		return v ^ velAxis ^ velSign ^ ((v >> 1) & velSign)
	}
	return v
}

// Char returns the source character for the comparator.
func (c Comparator) Char() rune {
	switch c {
	case CmpZero:
		return 'z'
	case CmpStack:
		return 'c'
	}
	return '?'
}
