// Package manifest handles msc.toml run configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest represents an msc.toml run configuration. Command-line flags
// override anything set here.
type Manifest struct {
	Register Register `toml:"register"`
	Run      Run      `toml:"run"`
	Trace    Trace    `toml:"trace"`

	// Dir is the directory containing the msc.toml file (set at load time).
	Dir string `toml:"-"`
}

// Register selects the machine's register type.
type Register struct {
	Bits     int  `toml:"bits"`     // 8, 16, 32 or 64
	Unsigned bool `toml:"unsigned"` // unsigned instead of signed
}

// Run configures the driver loop.
type Run struct {
	Suppress bool   `toml:"suppress"` // quiet errors and input prompts
	Limit    uint64 `toml:"limit"`    // step limit, 0 = unlimited
}

// Trace configures execution-trace recording.
type Trace struct {
	Output string `toml:"output"` // trace file path, empty = no trace
}

// Default returns the manifest used when no msc.toml exists: a signed 32-bit
// register, no step limit, no trace.
func Default() *Manifest {
	return &Manifest{Register: Register{Bits: 32}}
}

// Load parses an msc.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "msc.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	m := Default()
	if err := toml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return m, nil
}

// FindAndLoad walks up from startDir to find an msc.toml file, then loads
// and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "msc.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

func (m *Manifest) validate() error {
	switch m.Register.Bits {
	case 8, 16, 32, 64:
	default:
		return fmt.Errorf("register bits must be 8, 16, 32 or 64, got %d", m.Register.Bits)
	}
	return nil
}
