package amount

import (
	"math"
	"math/rand"
	"testing"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasisPointsOf(t *testing.T) {
	tests := []struct {
		name   string
		amount uint64
		bp     uint16
		want   uint64
	}{
		{"five percent", 100, 500, 5},
		{"truncates", 99, 500, 4},
		{"zero bp", 12345, 0, 0},
		{"full", 12345, 10000, 12345},
		{"max amount full", math.MaxUint64, 10000, math.MaxUint64},
		{"max amount half", math.MaxUint64, 5000, math.MaxUint64 / 2},
		{"one bp", 1_000_000, 1, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BasisPointsOf(tc.amount, tc.bp)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := BasisPointsOf(100, 10001)
	assert.ErrorIs(t, err, common.ErrInvalidCalculation)
}

func TestBasisPointsOfNeverExceedsAmount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		amount := rng.Uint64()
		bp := uint16(rng.Intn(int(common.MaxBasisPoints) + 1))

		got, err := BasisPointsOf(amount, bp)
		require.NoError(t, err)
		require.LessOrEqual(t, got, amount)
	}
}

func TestValidateBasisPoints(t *testing.T) {
	assert.NoError(t, ValidateBasisPoints(10000))
	assert.ErrorIs(t, ValidateBasisPoints(10001), common.ErrBasisPointsOutOfRange)
}

func TestValidatePercentage(t *testing.T) {
	assert.NoError(t, ValidatePercentage(0))
	assert.NoError(t, ValidatePercentage(100))
	assert.ErrorIs(t, ValidatePercentage(-0.1), common.ErrPercentageOutOfRange)
	assert.ErrorIs(t, ValidatePercentage(100.5), common.ErrPercentageOutOfRange)
	assert.ErrorIs(t, ValidatePercentage(math.NaN()), common.ErrPercentageOutOfRange)
}

func TestCompound(t *testing.T) {
	got, err := Compound(1000, 1000, 2)
	require.NoError(t, err)
	// 1000 * 1.1^2 = 1210, float evaluation may land just below.
	assert.InDelta(t, 1210, got, 1)

	got, err = Compound(1000, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), got)

	got, err = Compound(1000, 500, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), got)

	_, err = Compound(1000, 10001, 1)
	assert.ErrorIs(t, err, common.ErrInvalidCalculation)

	_, err = Compound(math.MaxUint64/2, 10000, 2)
	assert.ErrorIs(t, err, common.ErrInvalidCalculation, "result beyond 64 bits must fail")
}
