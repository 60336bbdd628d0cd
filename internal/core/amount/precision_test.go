package amount

import (
	"testing"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPow10Table(t *testing.T) {
	want := uint64(1)
	for exp := uint32(0); exp <= MaxDecimals; exp++ {
		got, err := Pow10(exp)
		require.NoError(t, err)
		assert.Equal(t, want, got, "10^%d", exp)
		want *= 10
	}

	_, err := Pow10(20)
	assert.ErrorIs(t, err, common.ErrInvalidCalculation)
}

func TestScaleByDecimals(t *testing.T) {
	tests := []struct {
		name     string
		amount   uint64
		decimals uint8
		want     uint64
		wantErr  bool
	}{
		{"default precision", 5, 6, 5_000_000, false},
		{"zero decimals", 5, 0, 5, false},
		{"nineteen decimals", 1, 19, 10_000_000_000_000_000_000, false},
		{"precision ceiling", 1, 20, 0, true},
		{"overflow", 2, 19, 0, true},
		{"zero amount", 0, 18, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ScaleByDecimals(tc.amount, tc.decimals)
			if tc.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidCalculation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScaleDefault(t *testing.T) {
	got, err := ScaleDefault(5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5_000_000), got)
}

func TestToBaseUnits(t *testing.T) {
	got, err := ToBaseUnits(5_999_999, 6)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got)

	_, err = ToBaseUnits(1, 20)
	assert.ErrorIs(t, err, common.ErrInvalidCalculation)
}

func TestValidatePrecision(t *testing.T) {
	assert.NoError(t, ValidatePrecision(19))

	err := ValidatePrecision(20)
	assert.ErrorIs(t, err, common.ErrPrecisionOutOfRange)
	assert.Equal(t, "decimal precision out of range: 20 exceeds maximum 19", err.Error())
}
