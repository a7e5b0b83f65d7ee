/*
Package muldiv computes floor(a * b / c) for unsigned fixed-width integers
without ever materializing a value wider than the operands.

The full-width product a * b may need up to twice the bits of the operand
type; MulDiv keeps it as a pair of single-width limbs and interleaves the
multiply with a restoring division, one bit at a time, so the result is
exact wherever it is representable:

	fmt.Println(muldiv.MulDiv[uint8](200, 200, 157))
	// Output: 254

MulDiv works for any unsigned integer type (uint8, uint16, uint32, uint64,
uint, uintptr):

	MulDiv[T constraints.Unsigned](a, b, c T) T
	MulDivRem[T constraints.Unsigned](a, b, c T) (q, r T)
	MulDivChecked[T constraints.Unsigned](a, b, c T) (T, error)

The quotient must fit the operand width and c must be nonzero; MulDiv
performs no validation. c == 0 saturates the result to the maximum value
of the type, and a quotient too large for the type produces an
unspecified value. MulDivChecked reports both conditions as errors.

All operations are pure value functions: no allocation, no shared state,
safe to call from any number of goroutines.
*/
package muldiv
