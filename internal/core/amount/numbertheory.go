package amount

import (
	"math/bits"

	"github.com/kohla-sky/sample-program/internal/common"
)

// SqrtMaxU64 is floor(sqrt(2^64 - 1)).
const SqrtMaxU64 uint64 = 4294967295

// GCD returns the greatest common divisor of a and b. GCD(0, 0) is 0.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
func LCM(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	return Mul(a, b/GCD(a, b))
}

// ISqrt returns floor(sqrt(n)) by Newton iteration. Inputs above
// SqrtMaxU64^2 are rejected so the result squared always fits.
func ISqrt(n uint64) (uint64, error) {
	if n > SqrtMaxU64*SqrtMaxU64 {
		return 0, common.ErrInvalidCalculation
	}
	if n == 0 {
		return 0, nil
	}
	x := n
	y := (n + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x, nil
}

// IsPerfectSquare reports whether n is the square of an integer.
func IsPerfectSquare(n uint64) (bool, error) {
	root, err := ISqrt(n)
	if err != nil {
		return false, err
	}
	return root*root == n, nil
}

// ModPow returns base^exp mod modulus using 128-bit intermediate products.
func ModPow(base, exp, modulus uint64) (uint64, error) {
	if modulus == 0 {
		return 0, common.ErrInvalidCalculation
	}
	if modulus == 1 {
		return 0, nil
	}
	result := uint64(1)
	base %= modulus
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, modulus)
		}
		exp >>= 1
		base = mulMod(base, base, modulus)
	}
	return result, nil
}

// mulMod requires a, b < m.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}
