package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tomBoddaert/msc/vm"
)

// ParseFunc parses a token in the register type's textual format.
type ParseFunc[N vm.Number] func(token string) (N, error)

// IndexFunc converts a register value to a plane index. Build uses it for
// stack coordinates, which the fixed-size grammar writes in the register
// type.
type IndexFunc[N vm.Number] func(value N) (int, error)

type stackInit[N vm.Number] struct {
	pointer vm.Pointer
	values  []N
}

// Load parses program text into a machine over growable planes. The
// instruction plane's width is the longest row in the source; shorter rows
// read as blanks. Load cannot overflow; it fails only on malformed source.
func Load[N vm.Number](source string, parse ParseFunc[N]) (*vm.Machine[N], error) {
	return Read(strings.NewReader(source), parse)
}

// Read is Load over an io.Reader, consuming it line by line.
func Read[N vm.Number](r io.Reader, parse ParseFunc[N]) (*vm.Machine[N], error) {
	var (
		rows  [][]vm.Instruction
		inits []stackInit[N]
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		switch {
		case line == "":
			// A blank line is an empty instruction row; it still
			// consumes a row index.
			rows = append(rows, nil)

		case line[0] == '#':
			// Comment line.

		case line[0] == 's':
			init, err := parseStackLine(line, parse)
			if err != nil {
				return nil, err
			}
			inits = append(inits, init)

		default:
			row, err := parseInstructionRow(lineNo, line)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: read source: %w", err)
	}

	instructions := vm.SlicePlaneOf(rows)
	stacks, err := buildStacks[N](instructions, inits)
	if err != nil {
		return nil, err
	}
	return vm.NewMachine(instructions, stacks), nil
}

// parseStackLine parses "s <x> <y> <n0> <n1> ...". Coordinates are plain
// unsigned integers; the values are in the register type's format. A '#'
// truncates the token list.
func parseStackLine[N vm.Number](line string, parse ParseFunc[N]) (stackInit[N], error) {
	rest := line[1:]
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		rest = rest[:i]
	}

	tokens := strings.Fields(rest)
	if len(tokens) < 2 {
		return stackInit[N]{}, &MissingCoordinatesError{Line: line}
	}

	x, err := strconv.ParseUint(tokens[0], 10, strconv.IntSize)
	if err != nil {
		return stackInit[N]{}, &CoordinateError{Token: tokens[0], Err: err}
	}
	y, err := strconv.ParseUint(tokens[1], 10, strconv.IntSize)
	if err != nil {
		return stackInit[N]{}, &CoordinateError{Token: tokens[1], Err: err}
	}

	values := make([]N, 0, len(tokens)-2)
	for _, token := range tokens[2:] {
		value, err := parse(token)
		if err != nil {
			return stackInit[N]{}, &NumberError{Token: token, Err: err}
		}
		values = append(values, value)
	}

	return stackInit[N]{
		pointer: vm.Pointer{X: uint(x), Y: uint(y)},
		values:  values,
	}, nil
}

func parseInstructionRow(lineNo int, line string) ([]vm.Instruction, error) {
	var row []vm.Instruction
	for column, char := range line {
		if char == '#' {
			break
		}
		instruction, err := vm.Decode(char)
		if err != nil {
			return nil, fmt.Errorf("loader: line %d, column %d: %w", lineNo, column+1, err)
		}
		row = append(row, instruction)
	}
	return row, nil
}

// buildStacks creates the derived stack plane, one growable stack per coarse
// cell, and seeds it from the stack initializer lines.
func buildStacks[N vm.Number](instructions vm.Plane[vm.Instruction], inits []stackInit[N]) (vm.Plane[vm.Stack[N]], error) {
	width, height := vm.StackPlaneSize(instructions.Width(), instructions.Height())

	cells := make([][]vm.Stack[N], height)
	for y := range cells {
		row := make([]vm.Stack[N], width)
		for x := range row {
			row[x] = vm.NewSliceStack[N]()
		}
		cells[y] = row
	}

	for _, init := range inits {
		if init.pointer.X >= uint(width) || init.pointer.Y >= uint(height) {
			return nil, &StackRangeError{Pointer: init.pointer}
		}
		stack := cells[init.pointer.Y][init.pointer.X]
		for _, value := range init.values {
			stack.Push(value)
		}
	}

	return vm.SlicePlaneOf(cells), nil
}
