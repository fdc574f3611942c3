// Package trace records machine execution as a CBOR event stream, one event
// per step. A trace is observability output for debugging programs; it
// cannot seed a machine.
package trace

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/tomBoddaert/msc/vm"
)

// encMode holds CBOR encoding options with canonical mode for deterministic
// encoding.
var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("trace: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

// Event is the machine's observable state after one step.
type Event[N vm.Number] struct {
	Step     uint64 `cbor:"0,keyasint"`
	X        uint64 `cbor:"1,keyasint"`
	Y        uint64 `cbor:"2,keyasint"`
	Velocity byte   `cbor:"3,keyasint"`
	State    byte   `cbor:"4,keyasint"`
	Register N      `cbor:"5,keyasint"`
	Output   *N     `cbor:"6,keyasint,omitempty"`
}

// Recorder appends step events to a CBOR stream.
type Recorder[N vm.Number] struct {
	enc  *cbor.Encoder
	step uint64
}

// NewRecorder creates a recorder writing to w.
func NewRecorder[N vm.Number](w io.Writer) *Recorder[N] {
	return &Recorder[N]{enc: encMode.NewEncoder(w)}
}

// Record captures the machine's state after a step. output is non-nil only
// when the step printed a value.
func (r *Recorder[N]) Record(m *vm.Machine[N], output *N) error {
	p := m.Pointer()
	e := Event[N]{
		Step:     r.step,
		X:        uint64(p.X),
		Y:        uint64(p.Y),
		Velocity: byte(m.Velocity()),
		State:    byte(m.State()),
		Register: m.Register(),
		Output:   output,
	}
	r.step++
	if err := r.enc.Encode(e); err != nil {
		return fmt.Errorf("trace: encode event %d: %w", e.Step, err)
	}
	return nil
}

// ReadAll decodes a full trace stream.
func ReadAll[N vm.Number](r io.Reader) ([]Event[N], error) {
	dec := cbor.NewDecoder(r)
	var events []Event[N]
	for {
		var e Event[N]
		if err := dec.Decode(&e); err != nil {
			if errors.Is(err, io.EOF) {
				return events, nil
			}
			return nil, fmt.Errorf("trace: decode event %d: %w", len(events), err)
		}
		events = append(events, e)
	}
}
