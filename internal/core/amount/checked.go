package amount

import (
	"math/bits"

	"github.com/kohla-sky/sample-program/internal/common"
)

// Add returns a + b.
func Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, common.ErrInvalidCalculation
	}
	return sum, nil
}

// Sub returns a - b.
func Sub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, common.ErrInvalidCalculation
	}
	return diff, nil
}

// Mul returns a * b.
func Mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, common.ErrInvalidCalculation
	}
	return lo, nil
}

// Div returns a / b, truncated toward zero.
func Div(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, common.ErrInvalidCalculation
	}
	return a / b, nil
}

// IsSafeForMultiplication reports whether a * b fits in 64 bits.
func IsSafeForMultiplication(a, b uint64) bool {
	if a == 0 || b == 0 {
		return true
	}
	return a <= ^uint64(0)/b
}

// ValidateMultiplication fails with a MultiplicationOverflow error when a * b
// would not fit in 64 bits.
func ValidateMultiplication(a, b uint64) error {
	if !IsSafeForMultiplication(a, b) {
		return common.NewCustom(common.CodeMultiplicationOverflow, a, b)
	}
	return nil
}
