// Package testing provides test infrastructure for the ledger program.
//
// # Overview
//
// The testing package provides:
//   - Env: a host backed by an in-memory store and a SQLite journal
//   - Account: deterministic wallet addresses derived from a name
//   - ManualClock: a controllable clock for token expiry and journal times
//   - Assertions: require-style helpers for results and balances
//
// Generated gomock doubles for the journal store and the validation clock
// live in the mocks subpackage.
//
// # Basic Usage
//
//	func TestTransfer(t *testing.T) {
//	    env := lt.NewEnv(t)
//
//	    alice := env.Wallet("alice")
//	    bob := env.Wallet("bob")
//
//	    lt.RequireSuccess(t, env.Initialize(alice, 5))
//	    lt.RequireSuccess(t, env.CreateUser(alice, 1))
//	    lt.RequireSuccess(t, env.CreateUser(bob, 0))
//
//	    lt.RequireSuccess(t, env.Transfer(alice, bob, 100, 500))
//	    lt.RequireBalance(t, env, bob, 100)
//	}
package testing
