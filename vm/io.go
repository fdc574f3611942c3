package vm

// IOOp is an instruction that moves a value across the machine boundary.
// Print emits the register as the step's output; Input parks the machine in
// the InputWaiting state until Input is called on it.
type IOOp byte

const (
	IOPrint IOOp = iota // p emit register
	IOInput             // i await input
)

// Char returns the source character for the I/O instruction.
func (io IOOp) Char() rune {
	switch io {
	case IOPrint:
		return 'p'
	case IOInput:
		return 'i'
	}
	return '?'
}
