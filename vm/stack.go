package vm

// ---------------------------------------------------------------------------
// Stack: LIFO container for register values
// ---------------------------------------------------------------------------

// Stack is a LIFO container of register values. Pop reports false when
// nothing is present.
type Stack[N Number] interface {
	Push(item N)
	Pop() (N, bool)
}

// SliceStack is a growable, slice-backed Stack with no capacity limit.
type SliceStack[N Number] struct {
	items []N
}

// NewSliceStack creates an empty growable stack.
func NewSliceStack[N Number]() *SliceStack[N] {
	return &SliceStack[N]{}
}

func (s *SliceStack[N]) Push(item N) {
	s.items = append(s.items, item)
}

func (s *SliceStack[N]) Pop() (N, bool) {
	if len(s.items) == 0 {
		var zero N
		return zero, false
	}
	item := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return item, true
}

// Len returns the number of values currently on the stack.
func (s *SliceStack[N]) Len() int {
	return len(s.items)
}

// RingStack is a fixed-capacity Stack backed by a ring buffer. Once full,
// a push silently overwrites the oldest unpopped entry; popping past what is
// still present reports false. Overflow never grows the stack or panics.
type RingStack[N Number] struct {
	slots   []N
	present []bool
	top     int
}

// NewRingStack creates an empty ring stack with the given capacity.
// The capacity must be at least one.
func NewRingStack[N Number](capacity int) *RingStack[N] {
	if capacity < 1 {
		panic("vm: ring stack capacity must be at least 1")
	}
	return &RingStack[N]{
		slots:   make([]N, capacity),
		present: make([]bool, capacity),
	}
}

func (s *RingStack[N]) Push(item N) {
	s.slots[s.top] = item
	s.present[s.top] = true
	s.top = (s.top + 1) % len(s.slots)
}

func (s *RingStack[N]) Pop() (N, bool) {
	s.top = (s.top + len(s.slots) - 1) % len(s.slots)
	item, ok := s.slots[s.top], s.present[s.top]
	var zero N
	s.slots[s.top] = zero
	s.present[s.top] = false
	return item, ok
}

// Capacity returns the fixed capacity of the ring.
func (s *RingStack[N]) Capacity() int {
	return len(s.slots)
}
