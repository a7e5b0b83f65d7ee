package muldiv

import (
	"github.com/zeebo/errs"
	"golang.org/x/exp/constraints"
)

// Error classes returned by MulDivChecked. Discriminate with Has:
//
//	if _, err := muldiv.MulDivChecked(a, b, c); muldiv.ErrOverflow.Has(err) {
//		...
//	}
var (
	ErrDivideByZero = errs.Class("muldiv: divide by zero")
	ErrOverflow     = errs.Class("muldiv: quotient overflow")
)

// MulDivChecked is MulDiv with the preconditions enforced: ErrDivideByZero
// when c == 0, ErrOverflow when floor(a*b/c) does not fit in T. The
// overflow test is exact; the quotient fits iff the top limb of the
// product is less than c.
func MulDivChecked[T constraints.Unsigned](a, b, c T) (T, error) {
	if c == 0 {
		return 0, ErrDivideByZero.New("c == 0")
	}
	if mulHi(a, b) >= c {
		return 0, ErrOverflow.New("%v * %v / %v", a, b, c)
	}
	return MulDiv(a, b, c), nil
}
