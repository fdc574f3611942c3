package loader

import (
	"fmt"
	"strings"

	"github.com/tomBoddaert/msc/vm"
)

// Config sizes the fixed planes used by Build. The stack plane dimensions
// are always derived from Width and Height by the 4x4 block rule; only the
// per-stack capacity is chosen here.
type Config struct {
	Width         int // instruction plane width
	Height        int // instruction plane height
	StackCapacity int // ring stack capacity, at least 1
}

func (c Config) validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("loader: negative grid dimensions (%d x %d)", c.Width, c.Height)
	}
	if c.StackCapacity < 1 {
		return fmt.Errorf("loader: stack capacity must be at least 1, got %d", c.StackCapacity)
	}
	return nil
}

// Build parses program text into a machine over fixed-size planes, with one
// ring stack per coarse cell. Instructions that do not fit the configured
// grid are an error rather than a resize. All numbers, including stack
// coordinates, are parsed with parse; toIndex converts a coordinate value to
// a plane index. This keeps Build free of any default integer parser, for
// callers that bring their own numeric type.
func Build[N vm.Number](source string, cfg Config, parse ParseFunc[N], toIndex IndexFunc[N]) (*vm.Machine[N], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	instructions := vm.NewFixedPlane[vm.Instruction](cfg.Width, cfg.Height)

	stackWidth, stackHeight := vm.StackPlaneSize(cfg.Width, cfg.Height)
	stacks := vm.NewFixedPlane[vm.Stack[N]](stackWidth, stackHeight)
	for y := 0; y < stackHeight; y++ {
		for x := 0; x < stackWidth; x++ {
			*stacks.At(vm.Pointer{X: uint(x), Y: uint(y)}) = vm.NewRingStack[N](cfg.StackCapacity)
		}
	}

	lines := strings.Split(source, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	y := 0
	for _, line := range lines {
		switch {
		case line == "":
			y++

		case line[0] == '#':

		case line[0] == 's':
			if err := buildStackLine(line, stacks, parse, toIndex); err != nil {
				return nil, err
			}

		default:
			for x, char := range line {
				if char == '#' {
					break
				}
				instruction, err := vm.Decode(char)
				if err != nil {
					return nil, fmt.Errorf("loader: row %d, column %d: %w", y, x+1, err)
				}
				p := vm.Pointer{X: uint(x), Y: uint(y)}
				cell := instructions.At(p)
				if cell == nil {
					return nil, &RangeError{Pointer: p, Char: char}
				}
				*cell = instruction
			}
			y++
		}
	}

	return vm.NewMachine(instructions, stacks), nil
}

// buildStackLine seeds one ring stack from an "s" line. Tokens are handled
// one at a time: the first two select the stack, the rest are pushed as they
// are parsed, and a '#' inside a token ends the line.
func buildStackLine[N vm.Number](line string, stacks vm.Plane[vm.Stack[N]], parse ParseFunc[N], toIndex IndexFunc[N]) error {
	var (
		stack vm.Stack[N]
		x     int
		haveX bool
	)

	for _, token := range strings.Fields(line[1:]) {
		comment := false
		if i := strings.IndexByte(token, '#'); i >= 0 {
			token = token[:i]
			if token == "" {
				break
			}
			comment = true
		}

		value, err := parse(token)
		if err != nil {
			return &NumberError{Token: token, Err: err}
		}

		switch {
		case stack != nil:
			stack.Push(value)
		case haveX:
			yIdx, err := toIndex(value)
			if err != nil {
				return &CoordinateError{Token: token, Err: err}
			}
			p := vm.Pointer{X: uint(x), Y: uint(yIdx)}
			cell, ok := stacks.Get(p)
			if !ok {
				return &StackRangeError{Pointer: p}
			}
			stack = cell
		default:
			xIdx, err := toIndex(value)
			if err != nil {
				return &CoordinateError{Token: token, Err: err}
			}
			x, haveX = xIdx, true
		}

		if comment {
			break
		}
	}

	if stack == nil {
		return &MissingCoordinatesError{Line: line}
	}
	return nil
}
