package muldiv

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// MulDiv returns floor(a * b / c), exact even when a * b overflows T. The
// double-width product is held as two single-width limbs and divided
// bit-serially, so no value wider than T is ever created.
//
// Preconditions: c != 0 and the true quotient fits in T. Neither is
// checked: c == 0 returns the maximum value of T, and an unrepresentable
// quotient returns an unspecified value. Use MulDivChecked to have both
// reported as errors.
func MulDiv[T constraints.Unsigned](a, b, c T) T {
	var (
		st, sb T    // running product, top and bottom limb
		d      T    // quotient, built one bit per step
		e      uint // steps elapsed since division began
	)

	w := uint(bits.Len64(uint64(^T(0))))
	top := T(1) << (w - 1)

	// Phase 1: consume b from its top bit down, folding a into the limb
	// pair while dividing whatever magnitude has reached st.
	for i := uint(0); i < w; i++ {
		// 2W-bit left shift of (st:sb). The bit leaving st must not be
		// dropped: it forces the quotient bit below.
		hi := st&top != 0
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
				if st == 0 {
					hi = true
				}
			}
		}

		d <<= 1
		if hi || st >= c {
			// With hi set the true partial value is 2^W + st, which
			// exceeds any c; the wrapped subtraction stays exact.
			d |= 1
			st -= c
			e++
		} else if e != 0 {
			e++
		}

		b <<= 1
	}

	// Phase 2: b is spent; drain the accumulator for the remaining W-e
	// low-order quotient bits.
	for i := e; i < w; i++ {
		hi := st&top != 0
		st <<= 1
		if sb&top != 0 {
			st |= 1
		}
		sb <<= 1

		d <<= 1
		if hi || st >= c {
			d |= 1
			st -= c
		}
	}

	return d
}

// MulDivRem returns floor(a * b / c) and the remainder a*b - q*c. The
// remainder is recovered through the wraparound identity r = a*b - q*c,
// exact whenever the MulDiv preconditions hold: the true remainder is
// less than c and so fits in T.
func MulDivRem[T constraints.Unsigned](a, b, c T) (q, r T) {
	q = MulDiv(a, b, c)
	return q, a*b - q*c
}
