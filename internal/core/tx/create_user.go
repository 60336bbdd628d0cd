package tx

import (
	"fmt"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/account"
	"github.com/kohla-sky/sample-program/internal/core/amount"
	"github.com/kohla-sky/sample-program/internal/core/ledger/entry/entries"
	"github.com/kohla-sky/sample-program/internal/core/ledger/keylet"
	"github.com/kohla-sky/sample-program/internal/core/tx/handler"
	"github.com/kohla-sky/sample-program/internal/core/tx/validation"
)

// createUserAccount expects accounts [user_account, user, program_state].
// The program state address embedded in the record is re-derived and
// compared; a caller cannot link a user account to an arbitrary address.
func (e *Engine) createUserAccount(ins *CreateUserAccount, accounts []*account.Info) (*handler.Outcome, error) {
	if err := requireAccounts(accounts, 3); err != nil {
		return nil, err
	}
	userInfo, user, stateInfo := accounts[0], accounts[1], accounts[2]

	if err := validation.Signer().Run(user); err != nil {
		return nil, fmt.Errorf("user: %w", err)
	}

	expected, err := e.UserKeylet(user.Key)
	if err != nil {
		return nil, err
	}
	if err := keylet.Verify(userInfo.Key, expected); err != nil {
		return nil, fmt.Errorf("user account: %w", err)
	}
	// A zero owner marks storage that was allocated but never created.
	if current, err := entries.DecodeUserAccount(userInfo.Data); err == nil && !current.Owner.IsZero() {
		return nil, fmt.Errorf("user account: %w", common.ErrAlreadyInitialized)
	}

	balance, err := amount.Mul(ins.InitialBalance, e.config.UserScale)
	if err != nil {
		return nil, err
	}

	state, err := e.ProgramStateKeylet()
	if err != nil {
		return nil, err
	}
	if err := keylet.Verify(stateInfo.Key, state); err != nil {
		return nil, fmt.Errorf("program state: %w", err)
	}

	record := &entries.UserAccount{
		Owner:        user.Key,
		Balance:      balance,
		ProgramState: stateInfo.Key,
	}

	if err := validation.Writable().Run(userInfo); err != nil {
		return nil, fmt.Errorf("user account: %w", err)
	}
	if err := account.Store(userInfo, record); err != nil {
		return nil, fmt.Errorf("user account: %w", err)
	}
	return &handler.Outcome{Modified: []common.Address{userInfo.Key}}, nil
}
