package vm

import "fmt"

// ---------------------------------------------------------------------------
// Instruction: closed variant over the five families
// ---------------------------------------------------------------------------

// Kind discriminates the instruction families.
type Kind byte

const (
	KindBlank      Kind = iota // no-op
	KindDeflector              // velocity change
	KindOperator               // register/stack transform
	KindComparator             // conditional velocity rotation
	KindIO                     // print / input
)

// Instruction is one grid cell. Only the field selected by Kind is
// meaningful; the zero value is a blank cell.
type Instruction struct {
	Kind       Kind
	Deflector  Deflector
	Operator   Operator
	Comparator Comparator
	IO         IOOp
}

// UnknownInstructionError reports a character with no instruction assigned.
type UnknownInstructionError struct {
	Char rune
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("vm: unknown instruction %q", e.Char)
}

// Decode maps a source character to its instruction.
func Decode(char rune) (Instruction, error) {
	switch char {
	case ' ':
		return Instruction{}, nil

	case '>':
		return Instruction{Kind: KindDeflector, Deflector: RightArrow}, nil
	case '<':
		return Instruction{Kind: KindDeflector, Deflector: LeftArrow}, nil
	case 'v':
		return Instruction{Kind: KindDeflector, Deflector: DownArrow}, nil
	case '^':
		return Instruction{Kind: KindDeflector, Deflector: UpArrow}, nil
	case 'o':
		return Instruction{Kind: KindDeflector, Deflector: OmniMirror}, nil
	case '/':
		return Instruction{Kind: KindDeflector, Deflector: ForwardMirror}, nil
	case '\\':
		return Instruction{Kind: KindDeflector, Deflector: BackMirror}, nil

	case ',':
		return Instruction{Kind: KindOperator, Operator: OpPush}, nil
	case '.':
		return Instruction{Kind: KindOperator, Operator: OpPop}, nil
	case 'd':
		return Instruction{Kind: KindOperator, Operator: OpDuplicate}, nil
	case '+':
		return Instruction{Kind: KindOperator, Operator: OpAdd}, nil
	case '-':
		return Instruction{Kind: KindOperator, Operator: OpSubtract}, nil
	case '*':
		return Instruction{Kind: KindOperator, Operator: OpMultiply}, nil
	case '~':
		return Instruction{Kind: KindOperator, Operator: OpDivide}, nil
	case '!':
		return Instruction{Kind: KindOperator, Operator: OpNot}, nil
	case '|':
		return Instruction{Kind: KindOperator, Operator: OpOr}, nil
	case '&':
		return Instruction{Kind: KindOperator, Operator: OpAnd}, nil
	case ':':
		return Instruction{Kind: KindOperator, Operator: OpXor}, nil

	case 'z':
		return Instruction{Kind: KindComparator, Comparator: CmpZero}, nil
	case 'c':
		return Instruction{Kind: KindComparator, Comparator: CmpStack}, nil

	case 'p':
		return Instruction{Kind: KindIO, IO: IOPrint}, nil
	case 'i':
		return Instruction{Kind: KindIO, IO: IOInput}, nil
	}
	return Instruction{}, &UnknownInstructionError{Char: char}
}

// Char returns the source character for the instruction, inverting Decode.
func (in Instruction) Char() rune {
	switch in.Kind {
	case KindBlank:
		return ' '
	case KindDeflector:
		return in.Deflector.Char()
	case KindOperator:
		return in.Operator.Char()
	case KindComparator:
		return in.Comparator.Char()
	case KindIO:
		return in.IO.Char()
	}
	return '?'
}
