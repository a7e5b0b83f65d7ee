package muldiv

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// mulHi returns the top limb of the full 2W-bit product a * b, using the
// same shift-add accumulation as MulDiv's first phase but without the
// interleaved division. The quotient a*b/c fits in T exactly when
// mulHi(a, b) < c.
func mulHi[T constraints.Unsigned](a, b T) T {
	var st, sb T

	w := uint(bits.Len64(uint64(^T(0))))
	top := T(1) << (w - 1)

	for i := uint(0); i < w; i++ {
		st <<= 1
		if sb&top != 0 {
			st |= 1
		}
		sb <<= 1

		if b&top != 0 {
			j := sb
			sb += a
			if sb < j { // carry into the top limb
				st++
			}
		}

		b <<= 1
	}

	return st
}
