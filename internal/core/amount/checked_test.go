package amount

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecked(t *testing.T) {
	tests := []struct {
		name    string
		op      func(a, b uint64) (uint64, error)
		a, b    uint64
		want    uint64
		wantErr bool
	}{
		{"add", Add, 2, 3, 5, false},
		{"add overflow", Add, math.MaxUint64, 1, 0, true},
		{"add max", Add, math.MaxUint64 - 1, 1, math.MaxUint64, false},
		{"sub", Sub, 5, 3, 2, false},
		{"sub underflow", Sub, 3, 5, 0, true},
		{"mul", Mul, 1 << 31, 1 << 32, 1 << 63, false},
		{"mul overflow", Mul, 1 << 32, 1 << 32, 0, true},
		{"mul zero", Mul, 0, math.MaxUint64, 0, false},
		{"div", Div, 7, 2, 3, false},
		{"div by zero", Div, 7, 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(tc.a, tc.b)
			if tc.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidCalculation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestMulMatchesExactProduct compares Mul with arbitrary-precision
// multiplication over random operands of mixed magnitude.
func TestMulMatchesExactProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	limit := new(big.Int).SetUint64(math.MaxUint64)

	for i := 0; i < 5000; i++ {
		a := rng.Uint64() >> uint(rng.Intn(64))
		b := rng.Uint64() >> uint(rng.Intn(64))

		exact := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
		got, err := Mul(a, b)

		if exact.Cmp(limit) > 0 {
			require.Error(t, err, "a=%d b=%d", a, b)
			continue
		}
		require.NoError(t, err, "a=%d b=%d", a, b)
		require.Equal(t, exact.Uint64(), got)
		require.True(t, IsSafeForMultiplication(a, b))
	}
}

func TestValidateMultiplication(t *testing.T) {
	assert.NoError(t, ValidateMultiplication(1<<32-1, 1<<32-1))
	assert.ErrorIs(t, ValidateMultiplication(1<<32, 1<<32), common.ErrMultiplicationOverflow)
}

func TestAmount_Render(t *testing.T) {
	a := Amount(5_000_000)
	assert.Equal(t, "5.000000", a.Decimal(6))
	assert.Equal(t, "0.000042", Amount(42).Decimal(6))
	assert.Equal(t, "42", Amount(42).Decimal(0))
	assert.Equal(t, "1,234,567.890000", Amount(1_234_567_890_000).Humanize(6))

	sum, err := a.Add(Amount(1))
	require.NoError(t, err)
	assert.Equal(t, Amount(5_000_001), sum)

	_, err = Amount(0).Sub(Amount(1))
	assert.ErrorIs(t, err, common.ErrInvalidCalculation)
}
