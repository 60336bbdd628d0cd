package amount

import (
	"math"
	"testing"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCDAndLCM(t *testing.T) {
	assert.Equal(t, uint64(6), GCD(54, 24))
	assert.Equal(t, uint64(7), GCD(0, 7))
	assert.Equal(t, uint64(0), GCD(0, 0))

	lcm, err := LCM(4, 6)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), lcm)

	lcm, err = LCM(0, 6)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), lcm)

	_, err = LCM(math.MaxUint64, math.MaxUint64-1)
	assert.ErrorIs(t, err, common.ErrInvalidCalculation)
}

func TestISqrt(t *testing.T) {
	tests := []struct {
		n    uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{15, 3},
		{16, 4},
		{1 << 40, 1 << 20},
		{SqrtMaxU64 * SqrtMaxU64, SqrtMaxU64},
	}
	for _, tc := range tests {
		got, err := ISqrt(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "isqrt(%d)", tc.n)
	}

	_, err := ISqrt(SqrtMaxU64*SqrtMaxU64 + 1)
	assert.ErrorIs(t, err, common.ErrInvalidCalculation)
}

func TestIsPerfectSquare(t *testing.T) {
	ok, err := IsPerfectSquare(144)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsPerfectSquare(145)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestModPow(t *testing.T) {
	tests := []struct {
		base, exp, mod, want uint64
	}{
		{2, 10, 1000, 24},
		{3, 0, 7, 1},
		{5, 3, 1, 0},
		{4, 13, 497, 445},
		// Operands near 2^64 exercise the 128-bit intermediate.
		{math.MaxUint64 - 1, 2, math.MaxUint64, 1},
	}
	for _, tc := range tests {
		got, err := ModPow(tc.base, tc.exp, tc.mod)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%d^%d mod %d", tc.base, tc.exp, tc.mod)
	}

	_, err := ModPow(2, 2, 0)
	assert.ErrorIs(t, err, common.ErrInvalidCalculation)
}
