package vm

// Number constrains the types usable as the machine's register and stack
// values. Any fixed-width integer kind qualifies; arithmetic on it follows
// Go's two's-complement wraparound, which supplies the machine's overflow
// policy. Code in this package relies only on ordering, the four arithmetic
// operators, the three binary bitwise operators, bitwise complement, and the
// constants N(0) and N(1).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
