package vm

import "fmt"

// ---------------------------------------------------------------------------
// Machine: single-step MSCode interpreter
// ---------------------------------------------------------------------------

// State is the machine's run state.
type State byte

const (
	StateRunning      State = iota // executing steps
	StateStopped                   // terminal; the cursor left the grid
	StateInputWaiting              // parked until Input is called
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	case StateInputWaiting:
		return "input-waiting"
	}
	return "invalid"
}

// coarse is the edge length of the instruction block sharing one stack.
const coarse = 4

// StackPlaneSize returns the stack plane dimensions derived from instruction
// plane dimensions: one stack per 4x4 block, rounding up.
func StackPlaneSize(width, height int) (int, int) {
	return (width + coarse - 1) / coarse, (height + coarse - 1) / coarse
}

// Machine executes an MSCode program. It owns its grid pair exclusively and
// is not safe for concurrent use. The stack plane must be sized by
// StackPlaneSize from the instruction plane, with every cell populated;
// Machine panics if an operator or comparator lands on a missing stack.
type Machine[N Number] struct {
	state        State
	instructions Plane[Instruction]
	stacks       Plane[Stack[N]]
	register     N
	pointer      Pointer
	velocity     Velocity
}

// NewMachine creates a machine over a completed grid pair, with the cursor
// at the origin heading right, the register ZERO, and the state Running.
func NewMachine[N Number](instructions Plane[Instruction], stacks Plane[Stack[N]]) *Machine[N] {
	return &Machine[N]{
		instructions: instructions,
		stacks:       stacks,
	}
}

// Step executes one instruction and advances the cursor. It reports an
// output value only when the instruction was a Print. A cursor outside the
// instruction plane stops the machine; in any state but Running, Step does
// nothing.
func (m *Machine[N]) Step() (N, bool) {
	var zero N
	if m.state != StateRunning {
		return zero, false
	}

	instruction, ok := m.instructions.Get(m.pointer)
	if !ok {
		m.state = StateStopped
		return zero, false
	}

	var output N
	var emitted bool
	switch instruction.Kind {
	case KindBlank:
	case KindDeflector:
		m.velocity = instruction.Deflector.Apply(m.velocity)
	case KindOperator:
		m.register = ApplyOperator(instruction.Operator, m.register, m.stack())
	case KindComparator:
		m.velocity = ApplyComparator(instruction.Comparator, m.register, m.stack(), m.velocity)
	case KindIO:
		switch instruction.IO {
		case IOPrint:
			output, emitted = m.register, true
		case IOInput:
			m.state = StateInputWaiting
		}
	}

	m.pointer = m.velocity.Advance(m.pointer)
	return output, emitted
}

// Input delivers a value to a machine in the InputWaiting state, setting the
// register and resuming execution. In any other state it does nothing.
func (m *Machine[N]) Input(value N) {
	if m.state == StateInputWaiting {
		m.register = value
		m.state = StateRunning
	}
}

// State returns the machine's run state.
func (m *Machine[N]) State() State {
	return m.state
}

// Pointer returns the cursor position.
func (m *Machine[N]) Pointer() Pointer {
	return m.pointer
}

// Velocity returns the cursor heading.
func (m *Machine[N]) Velocity() Velocity {
	return m.velocity
}

// Register returns the register value.
func (m *Machine[N]) Register() N {
	return m.register
}

// stack returns the stack under the cursor's coarse cell. The sizing
// invariant guarantees it exists while the cursor is in bounds; a miss is a
// construction bug, not a runtime condition.
func (m *Machine[N]) stack() Stack[N] {
	p := Pointer{X: m.pointer.X / coarse, Y: m.pointer.Y / coarse}
	stack, ok := m.stacks.Get(p)
	if !ok || stack == nil {
		panic(fmt.Sprintf("vm: no stack at coarse cell (%d, %d)", p.X, p.Y))
	}
	return stack
}
