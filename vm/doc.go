// Package vm implements the MSCode virtual machine.
//
// This package contains:
//   - The Number constraint for register and stack values
//   - Pointer and Velocity, the cursor addressing model
//   - The instruction set and its character codec
//   - Plane and Stack containers (growable and fixed-capacity)
//   - The Machine, a single-step interpreter over a grid pair
package vm
