package loader

import (
	"fmt"

	"github.com/tomBoddaert/msc/vm"
)

// ---------------------------------------------------------------------------
// Construction error kinds
// ---------------------------------------------------------------------------

// NumberError reports a token that failed to parse in the register type.
type NumberError struct {
	Token string
	Err   error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("loader: invalid number %q: %v", e.Token, e.Err)
}

func (e *NumberError) Unwrap() error { return e.Err }

// CoordinateError reports a stack coordinate token that failed to parse or
// convert to an index.
type CoordinateError struct {
	Token string
	Err   error
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("loader: invalid coordinate %q: %v", e.Token, e.Err)
}

func (e *CoordinateError) Unwrap() error { return e.Err }

// StackRangeError reports a stack initializer addressing a coarse cell
// outside the derived stack plane.
type StackRangeError struct {
	Pointer vm.Pointer
}

func (e *StackRangeError) Error() string {
	return fmt.Sprintf("loader: stack pointer out of range: (%d, %d)", e.Pointer.X, e.Pointer.Y)
}

// MissingCoordinatesError reports a stack initializer line with fewer than
// two coordinate tokens.
type MissingCoordinatesError struct {
	Line string
}

func (e *MissingCoordinatesError) Error() string {
	return fmt.Sprintf("loader: stack line missing coordinates: %q", e.Line)
}

// RangeError reports an instruction placed outside a fixed grid.
type RangeError struct {
	Pointer vm.Pointer
	Char    rune
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("loader: instruction %q out of range at (%d, %d)", e.Char, e.Pointer.X, e.Pointer.Y)
}
