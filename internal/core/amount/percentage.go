package amount

import (
	"math"
	"math/bits"

	"github.com/kohla-sky/sample-program/internal/common"
)

const basisPointsDenominator = 10000

// BasisPointsOf returns floor(amount * bp / 10000). The product is formed in
// 128 bits, so the only failure is bp above 10000.
//
// Rounding is toward zero; a caller that needs to round a fee up has to add
// the remainder itself.
func BasisPointsOf(amount uint64, bp uint16) (uint64, error) {
	if bp > common.MaxBasisPoints {
		return 0, common.ErrInvalidCalculation
	}
	hi, lo := bits.Mul64(amount, uint64(bp))
	// hi < 10000 because bp <= 10000, so Div64 cannot panic.
	quo, _ := bits.Div64(hi, lo, basisPointsDenominator)
	return quo, nil
}

// ValidateBasisPoints fails with BasisPointsOutOfRange above 10000.
func ValidateBasisPoints(bp uint16) error {
	if bp > common.MaxBasisPoints {
		return common.NewCustom(common.CodeBasisPointsOutOfRange, uint64(bp), uint64(common.MaxBasisPoints))
	}
	return nil
}

// ValidatePercentage fails unless 0 <= percentage <= 100.
func ValidatePercentage(percentage float64) error {
	if math.IsNaN(percentage) || percentage < 0 || percentage > 100 {
		return common.ErrPercentageOutOfRange
	}
	return nil
}

// Compound returns principal * (1 + rateBP/10000)^periods.
//
// This is the one approximate operation in the package: it is evaluated in
// float64 and truncated. It still fails instead of saturating when the
// result is not finite, does not fit in a uint64, or falls below principal.
func Compound(principal uint64, rateBP uint16, periods uint32) (uint64, error) {
	if rateBP > common.MaxBasisPoints {
		return 0, common.ErrInvalidCalculation
	}
	rate := float64(rateBP) / basisPointsDenominator
	factor := math.Pow(1+rate, float64(periods))
	value := float64(principal) * factor
	if math.IsNaN(value) || math.IsInf(value, 0) || value >= math.Exp2(64) {
		return 0, common.ErrInvalidCalculation
	}
	result := uint64(value)
	if result < principal {
		return 0, common.ErrInvalidCalculation
	}
	return result, nil
}
