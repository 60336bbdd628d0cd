package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("initialize: %w", ErrInvalidCalculation)
	assert.ErrorIs(t, err, ErrInvalidCalculation)
	assert.NotErrorIs(t, err, ErrAccountValidationFailed)
}

func TestError_IsMatchesCustomCode(t *testing.T) {
	err := SeedTooLong(40, MaxSeedLength)

	assert.ErrorIs(t, err, ErrSeedTooLong)
	assert.ErrorIs(t, err, ErrCustom)
	assert.NotErrorIs(t, err, ErrEntropyTooLow)
	assert.NotErrorIs(t, err, ErrInvalidCalculation)
}

func TestError_FieldsThroughAs(t *testing.T) {
	wrapped := fmt.Errorf("transfer: %w", InsufficientFunds(100, 105))

	var e *Error
	require.True(t, errors.As(wrapped, &e))
	assert.Equal(t, KindCustom, e.Kind)
	assert.Equal(t, CodeInsufficientFunds, e.Code)
	assert.Equal(t, uint64(100), e.Got)
	assert.Equal(t, uint64(105), e.Limit)
}

func TestError_Messages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidCalculation, "InvalidCalculation"},
		{ErrInsufficientPermissions, "InsufficientPermissions"},
		{SeedTooLong(33, 32), "seed too long: 33 exceeds 32"},
		{EntropyTooLow(1, 16), "account entropy too low: 1 below required 16"},
		{TokenExpired(61, 60), "security token expired: age 61s exceeds 60s"},
		{InsufficientFunds(100, 105), "insufficient funds: have 100, need 105"},
		{ErrClockUnavailable, "clock unavailable"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestAddress_RoundTrip(t *testing.T) {
	var a Address
	for i := range a {
		a[i] = byte(i + 1)
	}

	parsed, err := ParseAddress(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, parsed)

	_, err = ParseAddress("")
	assert.Error(t, err)

	_, err = AddressFromBytes([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestValidateNotDefault(t *testing.T) {
	assert.ErrorIs(t, ValidateNotDefault(ZeroAddress), ErrAccountValidationFailed)
	assert.NoError(t, ValidateNotDefault(Address{1}))
	assert.False(t, IsValidAddress(ZeroAddress))
}

func TestValidateOwner(t *testing.T) {
	assert.NoError(t, ValidateOwner(Address{1}, Address{1}))
	assert.ErrorIs(t, ValidateOwner(Address{1}, Address{2}), ErrInsufficientPermissions)
}
