package vm

import "testing"

// testMachine builds a machine from instruction rows, with growable stacks
// sized by the coarse-cell rule and seeded from stacks (coarse pointers,
// values bottom to top).
func testMachine(t *testing.T, rows []string, stacks map[Pointer][]int8) *Machine[int8] {
	t.Helper()

	grid := make([][]Instruction, len(rows))
	for y, row := range rows {
		for _, char := range row {
			instruction, err := Decode(char)
			if err != nil {
				t.Fatalf("Decode(%q): %v", char, err)
			}
			grid[y] = append(grid[y], instruction)
		}
	}
	instructions := SlicePlaneOf(grid)

	width, height := StackPlaneSize(instructions.Width(), instructions.Height())
	cells := make([][]Stack[int8], height)
	for y := range cells {
		cells[y] = make([]Stack[int8], width)
		for x := range cells[y] {
			cells[y][x] = NewSliceStack[int8]()
		}
	}
	for p, values := range stacks {
		for _, v := range values {
			cells[p.Y][p.X].Push(v)
		}
	}

	return NewMachine[int8](instructions, SlicePlaneOf(cells))
}

func TestMachinePrintThenHalt(t *testing.T) {
	m := testMachine(t, []string{"p"}, nil)

	out, emitted := m.Step()
	if !emitted || out != 0 {
		t.Errorf("Step = %d, %t, want 0, true", out, emitted)
	}
	if m.State() != StateRunning {
		t.Fatalf("state after print = %s, want running", m.State())
	}

	// The cursor has left the 1-wide grid; the next step halts.
	if _, emitted := m.Step(); emitted {
		t.Error("halting step emitted output")
	}
	if m.State() != StateStopped {
		t.Errorf("state = %s, want stopped", m.State())
	}
}

func TestMachinePushThenPrint(t *testing.T) {
	m := testMachine(t, []string{",p"}, nil)

	if _, emitted := m.Step(); emitted {
		t.Error("push emitted output")
	}
	out, emitted := m.Step()
	if !emitted || out != 0 {
		t.Errorf("print = %d, %t, want 0, true", out, emitted)
	}
}

func TestMachinePopFromSeededStack(t *testing.T) {
	m := testMachine(t, []string{"."}, map[Pointer][]int8{
		{X: 0, Y: 0}: {5, 10},
	})

	m.Step()
	if got := m.Register(); got != 10 {
		t.Errorf("register after pop = %d, want 10 (top of stack)", got)
	}
}

func TestMachineCoarseCellSelection(t *testing.T) {
	// Column 4 belongs to coarse cell (1, 0).
	m := testMachine(t, []string{"    ,"}, nil)
	for i := 0; i < 5; i++ {
		m.Step()
	}

	stack, ok := m.stacks.Get(Pointer{X: 1, Y: 0})
	if !ok {
		t.Fatal("stack plane missing cell (1, 0)")
	}
	if v, ok := stack.Pop(); !ok || v != 0 {
		t.Errorf("stack (1,0) top = %d, %t, want pushed register 0", v, ok)
	}

	left, _ := m.stacks.Get(Pointer{X: 0, Y: 0})
	if _, ok := left.Pop(); ok {
		t.Error("stack (0,0) non-empty; push went to the wrong coarse cell")
	}
}

func TestMachineInputFlow(t *testing.T) {
	m := testMachine(t, []string{"ip"}, nil)

	// Input before the machine asks is ignored.
	m.Input(9)
	if m.Register() != 0 {
		t.Fatalf("register = %d after premature input, want 0", m.Register())
	}

	if _, emitted := m.Step(); emitted {
		t.Error("input instruction emitted output")
	}
	if m.State() != StateInputWaiting {
		t.Fatalf("state = %s, want input-waiting", m.State())
	}

	// Steps do nothing while waiting.
	m.Step()
	if got := m.Pointer(); got != (Pointer{X: 1, Y: 0}) {
		t.Errorf("pointer moved while waiting: %v", got)
	}

	m.Input(42)
	if m.State() != StateRunning {
		t.Fatalf("state after input = %s, want running", m.State())
	}

	out, emitted := m.Step()
	if !emitted || out != 42 {
		t.Errorf("print after input = %d, %t, want 42, true", out, emitted)
	}
}

func TestMachineLeftExitWrapsThenStops(t *testing.T) {
	m := testMachine(t, []string{"<"}, nil)

	m.Step()
	if got := m.Pointer(); got != (Pointer{X: maxUint, Y: 0}) {
		t.Fatalf("pointer after left exit = %v, want wrapped to maximum", got)
	}
	if m.State() != StateRunning {
		t.Fatalf("state = %s, want running until the next fetch", m.State())
	}

	m.Step()
	if m.State() != StateStopped {
		t.Errorf("state = %s, want stopped", m.State())
	}
}

func TestMachineStoppedIsTerminal(t *testing.T) {
	m := testMachine(t, []string{"p"}, nil)
	m.Step()
	m.Step()
	if m.State() != StateStopped {
		t.Fatalf("state = %s, want stopped", m.State())
	}

	m.Input(5)
	if _, emitted := m.Step(); emitted {
		t.Error("stopped machine emitted output")
	}
	if m.Register() != 0 || m.State() != StateStopped {
		t.Errorf("stopped machine changed: register %d, state %s", m.Register(), m.State())
	}
}

func TestMachineDeflectorLoop(t *testing.T) {
	// >p< bounces between the arrows, printing every pass.
	m := testMachine(t, []string{">p<"}, nil)

	outputs := 0
	for i := 0; i < 20; i++ {
		if _, emitted := m.Step(); emitted {
			outputs++
		}
	}
	if m.State() != StateRunning {
		t.Fatalf("state = %s, want running (program loops forever)", m.State())
	}
	if outputs < 5 {
		t.Errorf("outputs in 20 steps = %d, want repeated prints", outputs)
	}
}

func TestMachineMissingStackPanics(t *testing.T) {
	instruction, _ := Decode(',')
	instructions := SlicePlaneOf([][]Instruction{{instruction}})
	// An empty stack plane violates the sizing invariant.
	stacks := NewSlicePlane[Stack[int8]](0, 0)
	m := NewMachine[int8](instructions, stacks)

	defer func() {
		if recover() == nil {
			t.Error("Step with a missing coarse stack did not panic")
		}
	}()
	m.Step()
}
