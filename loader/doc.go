// Package loader parses MSCode program text into runnable machines.
//
// Two flavors exist: Load builds growable, source-sized planes, and Build
// fills fixed-size planes from a Config, rejecting programs that do not fit.
// Both recognize '#' as starting a comment anywhere in a line.
package loader
