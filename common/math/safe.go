// Package math provides overflow-checked unsigned integer arithmetic for
// financial quantities. Amounts in custody state are uint64 and must never
// wrap: callers reject the whole operation when a bool result reports
// overflow or ErrOverflow is returned.
package math

import (
	"errors"
	"math/bits"
)

// BpsDenominator is the scale of basis-point rates: 10000 bps == 100%.
const BpsDenominator = 10_000

// ErrOverflow is returned when a checked operation would exceed uint64 range.
var ErrOverflow = errors.New("math: uint64 overflow")

// SafeAdd returns x+y and a flag reporting whether the sum overflowed.
func SafeAdd(x, y uint64) (uint64, bool) {
	sum, carry := bits.Add64(x, y, 0)
	return sum, carry != 0
}

// SafeSub returns x-y and a flag reporting whether the difference underflowed.
func SafeSub(x, y uint64) (uint64, bool) {
	diff, borrow := bits.Sub64(x, y, 0)
	return diff, borrow != 0
}

// SafeMul returns x*y and a flag reporting whether the product overflowed.
func SafeMul(x, y uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)
	return lo, hi != 0
}

// CheckedAdd is the error form of SafeAdd.
func CheckedAdd(x, y uint64) (uint64, error) {
	sum, overflow := SafeAdd(x, y)
	if overflow {
		return 0, ErrOverflow
	}
	return sum, nil
}

// CheckedSub is the error form of SafeSub. Underflow is reported as
// ErrOverflow; custody amounts are unsigned and may never go negative.
func CheckedSub(x, y uint64) (uint64, error) {
	diff, underflow := SafeSub(x, y)
	if underflow {
		return 0, ErrOverflow
	}
	return diff, nil
}

// BpsOf returns amount*bps/BpsDenominator using a 128-bit intermediate so the
// product never wraps. The quotient itself can only exceed uint64 range when
// bps > BpsDenominator, which is reported as ErrOverflow rather than clamped.
func BpsOf(amount, bps uint64) (uint64, error) {
	hi, lo := bits.Mul64(amount, bps)
	if hi >= BpsDenominator {
		return 0, ErrOverflow
	}
	quo, _ := bits.Div64(hi, lo, BpsDenominator)
	return quo, nil
}
