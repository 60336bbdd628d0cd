package testing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kohla-sky/sample-program/internal/core/tx"
)

// RequireSuccess asserts that an instruction was applied.
func RequireSuccess(t *testing.T, r Result) {
	t.Helper()
	require.NoError(t, r.Err)
	require.NotNil(t, r.ApplyResult)
	require.Equal(t, tx.TesSUCCESS, r.Result,
		"Expected tesSUCCESS, got %s: %s", r.Result, r.Message)
}

// RequireFailure asserts that an instruction was rejected with code.
func RequireFailure(t *testing.T, r Result, code tx.Result) {
	t.Helper()
	require.Error(t, r.Err, "Expected failure with code %s, but instruction succeeded", code)
	require.NotNil(t, r.ApplyResult)
	require.Equal(t, code, r.Result,
		"Expected failure code %s, got %s: %v", code, r.Result, r.Err)
}

// RequireErrorIs asserts that an instruction failed with an error matching target.
func RequireErrorIs(t *testing.T, r Result, target error) {
	t.Helper()
	require.ErrorIs(t, r.Err, target)
}

// RequireBalance asserts the balance of acc's user account.
func RequireBalance(t *testing.T, env *TestEnv, acc *Account, expected uint64) {
	t.Helper()
	actual := env.Balance(acc)
	require.Equal(t, expected, actual,
		"Account %s balance mismatch: expected %d, got %d", acc.Name, expected, actual)
}

// RequireTotalSupply asserts the program's total supply in base units.
func RequireTotalSupply(t *testing.T, env *TestEnv, expected uint64) {
	t.Helper()
	actual := env.ProgramState().TotalSupply
	require.Equal(t, expected, actual,
		"Total supply mismatch: expected %d, got %d", expected, actual)
}

// RequireUserExists asserts that acc's user account has been created.
func RequireUserExists(t *testing.T, env *TestEnv, acc *Account) {
	t.Helper()
	require.NotNil(t, env.UserAccount(acc),
		"Expected user account for %s to exist, but it does not", acc.Name)
}

// RequireUserNotExists asserts that acc has no user account record.
func RequireUserNotExists(t *testing.T, env *TestEnv, acc *Account) {
	t.Helper()
	require.Nil(t, env.UserAccount(acc),
		"Expected no user account for %s, but one exists", acc.Name)
}
