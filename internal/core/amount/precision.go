package amount

import (
	"github.com/kohla-sky/sample-program/internal/common"
)

// MaxDecimals is the largest supported decimal precision; 10^19 is the last
// power of ten that fits in a uint64.
const MaxDecimals = 19

// Common decimal precisions.
const (
	Precision6  uint8 = 6
	Precision8  uint8 = 8
	Precision9  uint8 = 9
	Precision18 uint8 = 18
)

var powersOfTen = [MaxDecimals + 1]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// Pow10 returns 10^exp for exp in [0, 19].
func Pow10(exp uint32) (uint64, error) {
	if exp > MaxDecimals {
		return 0, common.ErrInvalidCalculation
	}
	return powersOfTen[exp], nil
}

// PrecisionMultiplier returns the base-unit multiplier for decimals.
func PrecisionMultiplier(decimals uint8) (uint64, error) {
	return Pow10(uint32(decimals))
}

// ScaleByDecimals converts a whole-token amount to base units.
func ScaleByDecimals(amount uint64, decimals uint8) (uint64, error) {
	multiplier, err := PrecisionMultiplier(decimals)
	if err != nil {
		return 0, err
	}
	return Mul(amount, multiplier)
}

// ScaleDefault scales amount by common.DefaultDecimals.
func ScaleDefault(amount uint64) (uint64, error) {
	return ScaleByDecimals(amount, common.DefaultDecimals)
}

// ToBaseUnits converts a base-unit amount back to whole tokens. The
// fractional part is discarded.
func ToBaseUnits(amount uint64, decimals uint8) (uint64, error) {
	divisor, err := PrecisionMultiplier(decimals)
	if err != nil {
		return 0, err
	}
	return Div(amount, divisor)
}

// ValidatePrecision fails with PrecisionOutOfRange for decimals above 19.
func ValidatePrecision(decimals uint8) error {
	if decimals > MaxDecimals {
		return common.NewCustom(common.CodePrecisionOutOfRange, uint64(decimals), MaxDecimals)
	}
	return nil
}
