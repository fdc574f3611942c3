package vm

import (
	"errors"
	"testing"
)

func TestInstructionCodecRoundTrips(t *testing.T) {
	chars := []rune{
		' ',
		'>', '<', 'v', '^', 'o', '/', '\\',
		',', '.', 'd', '+', '-', '*', '~', '!', '|', '&', ':',
		'z', 'c',
		'p', 'i',
	}

	for _, char := range chars {
		instruction, err := Decode(char)
		if err != nil {
			t.Errorf("Decode(%q) failed: %v", char, err)
			continue
		}
		if got := instruction.Char(); got != char {
			t.Errorf("Decode(%q).Char() = %q", char, got)
		}
	}
}

func TestDecodeKinds(t *testing.T) {
	tests := []struct {
		char rune
		kind Kind
	}{
		{' ', KindBlank},
		{'>', KindDeflector},
		{'o', KindDeflector},
		{',', KindOperator},
		{'~', KindOperator},
		{'z', KindComparator},
		{'c', KindComparator},
		{'p', KindIO},
		{'i', KindIO},
	}

	for _, tt := range tests {
		instruction, err := Decode(tt.char)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", tt.char, err)
		}
		if instruction.Kind != tt.kind {
			t.Errorf("Decode(%q).Kind = %d, want %d", tt.char, instruction.Kind, tt.kind)
		}
	}
}

func TestDecodeUnknown(t *testing.T) {
	for _, char := range []rune{'q', '0', '#', 'P'} {
		_, err := Decode(char)
		if err == nil {
			t.Errorf("Decode(%q) succeeded, want error", char)
			continue
		}
		var unknown *UnknownInstructionError
		if !errors.As(err, &unknown) {
			t.Errorf("Decode(%q) error type = %T", char, err)
		} else if unknown.Char != char {
			t.Errorf("error char = %q, want %q", unknown.Char, char)
		}
	}
}

func TestZeroInstructionIsBlank(t *testing.T) {
	var instruction Instruction
	if instruction.Kind != KindBlank || instruction.Char() != ' ' {
		t.Errorf("zero Instruction = kind %d, char %q, want blank", instruction.Kind, instruction.Char())
	}
}
