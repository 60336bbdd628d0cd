// Package amount implements the checked fixed-point arithmetic used for
// token supplies, balances and fees. Every operation either returns the exact
// result or fails with common.ErrInvalidCalculation; nothing wraps or
// saturates.
package amount

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
)

// Amount is a token quantity in base units.
type Amount uint64

// Uint64 returns the raw base-unit value.
func (a Amount) Uint64() uint64 {
	return uint64(a)
}

// Add returns a + other or an InvalidCalculation error on overflow.
func (a Amount) Add(other Amount) (Amount, error) {
	v, err := Add(uint64(a), uint64(other))
	return Amount(v), err
}

// Sub returns a - other or an InvalidCalculation error on underflow.
func (a Amount) Sub(other Amount) (Amount, error) {
	v, err := Sub(uint64(a), uint64(other))
	return Amount(v), err
}

// Decimal renders the amount with the given number of fractional digits,
// e.g. Amount(5_000_000).Decimal(6) == "5.000000".
func (a Amount) Decimal(decimals uint8) string {
	if decimals == 0 {
		return fmt.Sprintf("%d", uint64(a))
	}
	s := fmt.Sprintf("%0*d", int(decimals)+1, uint64(a))
	cut := len(s) - int(decimals)
	return s[:cut] + "." + s[cut:]
}

// Humanize renders the amount with thousands separators in the whole part.
func (a Amount) Humanize(decimals uint8) string {
	whole, frac, _ := strings.Cut(a.Decimal(decimals), ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return a.Decimal(decimals)
	}
	out := humanize.BigComma(n)
	if frac != "" {
		out += "." + frac
	}
	return out
}

func (a Amount) String() string {
	return fmt.Sprintf("%d", uint64(a))
}
