package vm

// Operator is an instruction that transforms the register and/or the stack
// under the cursor's coarse cell.
type Operator byte

const (
	OpPush      Operator = iota // , push register
	OpPop                       // . pop into register (ZERO if empty)
	OpDuplicate                 // d duplicate top of stack (a single ZERO if empty)
	OpAdd                       // + register + popped (ZERO if empty)
	OpSubtract                  // - register - popped (ZERO if empty)
	OpMultiply                  // * register * popped (ONE if empty)
	OpDivide                    // ~ register / popped (ONE if empty or zero)
	OpNot                       // ! bitwise complement of register
	OpOr                        // | register | popped (ZERO if empty)
	OpAnd                       // & register & popped (ZERO if empty)
	OpXor                       // : register ^ popped (ZERO if empty)
)

// ApplyOperator returns the new register value after applying op, popping
// from and pushing to stack as the operator requires. An empty pop defaults
// to ZERO, except for Multiply and Divide where it defaults to ONE; a popped
// zero divisor is also treated as ONE so division never faults.
func ApplyOperator[N Number](op Operator, register N, stack Stack[N]) N {
	switch op {
	case OpPush:
		stack.Push(register)
		return register
	case OpPop:
		value, _ := stack.Pop()
		return value
	case OpDuplicate:
		if value, ok := stack.Pop(); ok {
			stack.Push(value)
			stack.Push(value)
		} else {
			var zero N
			stack.Push(zero)
		}
		return register
	case OpAdd:
		value, _ := stack.Pop()
		return register + value
	case OpSubtract:
		value, _ := stack.Pop()
		return register - value
	case OpMultiply:
		return register * popOr(stack, N(1))
	case OpDivide:
		rhs := popOr(stack, N(1))
		if rhs == 0 {
			rhs = 1
		}
		return register / rhs
	case OpNot:
		return ^register
	case OpOr:
		value, _ := stack.Pop()
		return register | value
	case OpAnd:
		value, _ := stack.Pop()
		return register & value
	case OpXor:
		value, _ := stack.Pop()
		return register ^ value
	}
	return register
}

func popOr[N Number](stack Stack[N], fallback N) N {
	if value, ok := stack.Pop(); ok {
		return value
	}
	return fallback
}

// Char returns the source character for the operator.
func (op Operator) Char() rune {
	switch op {
	case OpPush:
		return ','
	case OpPop:
		return '.'
	case OpDuplicate:
		return 'd'
	case OpAdd:
		return '+'
	case OpSubtract:
		return '-'
	case OpMultiply:
		return '*'
	case OpDivide:
		return '~'
	case OpNot:
		return '!'
	case OpOr:
		return '|'
	case OpAnd:
		return '&'
	case OpXor:
		return ':'
	}
	return '?'
}
