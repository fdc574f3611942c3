package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/danswartzendruber/liner"

	"github.com/tomBoddaert/msc/loader"
	"github.com/tomBoddaert/msc/manifest"
	"github.com/tomBoddaert/msc/trace"
	"github.com/tomBoddaert/msc/vm"
)

type options struct {
	files     []string
	useStdin  bool
	suppress  bool
	limit     uint64
	tracePath string
}

// errPipedInput reports an input instruction reached by a program that was
// itself piped in on stdin.
var errPipedInput = errors.New(
	"inputs cannot be used when the program is piped into the interpreter; " +
		"run the program by passing the file path as an argument")

// dispatch instantiates the run loop for the register type the manifest
// selects. Go generics are resolved at compile time, so each of the eight
// register types gets its own instantiation here.
func dispatch(reg manifest.Register, opts options) error {
	if reg.Unsigned {
		switch reg.Bits {
		case 8:
			return run[uint8](opts, reg)
		case 16:
			return run[uint16](opts, reg)
		case 32:
			return run[uint32](opts, reg)
		case 64:
			return run[uint64](opts, reg)
		}
	} else {
		switch reg.Bits {
		case 8:
			return run[int8](opts, reg)
		case 16:
			return run[int16](opts, reg)
		case 32:
			return run[int32](opts, reg)
		case 64:
			return run[int64](opts, reg)
		}
	}
	return fmt.Errorf("unsupported register type: %d bits", reg.Bits)
}

// numberParser returns the text-to-register parser for the selected type.
func numberParser[N vm.Number](reg manifest.Register) loader.ParseFunc[N] {
	if reg.Unsigned {
		return func(token string) (N, error) {
			v, err := strconv.ParseUint(token, 10, reg.Bits)
			return N(v), err
		}
	}
	return func(token string) (N, error) {
		v, err := strconv.ParseInt(token, 10, reg.Bits)
		return N(v), err
	}
}

func run[N vm.Number](opts options, reg manifest.Register) error {
	parse := numberParser[N](reg)

	if len(opts.files) == 0 || opts.useStdin {
		// Reading the program from stdin, like when the file is
		// piped in.
		machine, err := loader.Read(os.Stdin, parse)
		if err != nil {
			return err
		}
		return runMachine(machine, parse, true, opts)
	}

	// If file paths were provided, like when executing files with
	// shebangs, run each in turn.
	for _, path := range opts.files {
		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		machine, err := loader.Load(string(source), parse)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		log.Infof("running %s", path)
		if err := runMachine(machine, parse, false, opts); err != nil {
			return err
		}
	}
	return nil
}

func runMachine[N vm.Number](machine *vm.Machine[N], parse loader.ParseFunc[N], fromStdin bool, opts options) error {
	var recorder *trace.Recorder[N]
	if opts.tracePath != "" {
		file, err := os.Create(opts.tracePath)
		if err != nil {
			return err
		}
		defer file.Close()
		recorder = trace.NewRecorder[N](file)
	}

	in := newInputSource(fromStdin, opts.suppress)
	defer in.close()

	steps := uint64(0)
	for {
		switch machine.State() {
		case vm.StateStopped:
			log.Infof("machine stopped after %d steps", steps)
			return nil

		case vm.StateRunning:
			if opts.limit != 0 && steps >= opts.limit {
				log.Noticef("step limit reached (%d)", opts.limit)
				return nil
			}
			output, emitted := machine.Step()
			steps++
			if emitted {
				fmt.Println(output)
			}
			if recorder != nil {
				var out *N
				if emitted {
					out = &output
				}
				if err := recorder.Record(machine, out); err != nil {
					return err
				}
			}

		case vm.StateInputWaiting:
			value, err := readInput(in, parse, fromStdin)
			if err != nil {
				return err
			}
			machine.Input(value)
		}
	}
}

// inputSource reads interactive input lines, with line editing when the
// prompt is enabled.
type inputSource struct {
	prompt  *liner.State
	scanner *bufio.Scanner
}

func newInputSource(fromStdin, suppress bool) *inputSource {
	if fromStdin || suppress {
		return &inputSource{scanner: bufio.NewScanner(os.Stdin)}
	}
	return &inputSource{prompt: liner.NewLiner()}
}

func (in *inputSource) line() (string, error) {
	if in.prompt != nil {
		text, err := in.prompt.Prompt("> ")
		if err != nil {
			return "", err
		}
		in.prompt.AppendHistory(text)
		return text, nil
	}
	if !in.scanner.Scan() {
		if err := in.scanner.Err(); err != nil {
			return "", err
		}
		return "", nil
	}
	return in.scanner.Text(), nil
}

func (in *inputSource) close() {
	if in.prompt != nil {
		in.prompt.Close()
	}
}

func readInput[N vm.Number](in *inputSource, parse loader.ParseFunc[N], fromStdin bool) (N, error) {
	for {
		text, err := in.line()
		if err != nil {
			var zero N
			return zero, err
		}
		text = strings.TrimSpace(text)

		// An empty read from stdin means the program arrived through
		// a pipe and cannot take interactive input.
		if text == "" && fromStdin {
			var zero N
			return zero, errPipedInput
		}

		value, err := parse(text)
		if err != nil {
			fmt.Printf("%q\n%v\n", text, err)
			continue
		}
		return value, nil
	}
}
