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

// transferWithFee expects accounts [from, to, owner].
//
// Both records must be program-owned and sit at the user address derived
// from the owner they name. Both records are decoded and both new balances computed before the first
// write. The fee is debited from the sender and credited nowhere.
func (e *Engine) transferWithFee(ins *TransferWithFee, accounts []*account.Info) (*handler.Outcome, error) {
	if err := requireAccounts(accounts, 3); err != nil {
		return nil, err
	}
	fromInfo, toInfo, owner := accounts[0], accounts[1], accounts[2]

	if err := validation.Signer().Run(owner); err != nil {
		return nil, fmt.Errorf("owner: %w", err)
	}
	// A self transfer would write the credit over the debit.
	if fromInfo.Key == toInfo.Key {
		return nil, fmt.Errorf("to: %w", common.ErrAccountValidationFailed)
	}

	// Existence first, so a missing record reports as a bad account.
	owned := validation.Chain{validation.Exists(), validation.OwnerIs(e.config.ProgramID)}
	if err := owned.Run(fromInfo); err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	if err := owned.Run(toInfo); err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}

	from, err := account.UserAccount(fromInfo)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	to, err := account.UserAccount(toInfo)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	if err := e.verifyUserKey(fromInfo.Key, from.Owner); err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	if err := e.verifyUserKey(toInfo.Key, to.Owner); err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}

	if err := common.ValidateOwner(from.Owner, owner.Key); err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	if from.ProgramState != to.ProgramState {
		return nil, fmt.Errorf("to: %w", common.ErrAccountValidationFailed)
	}

	fee, err := amount.BasisPointsOf(ins.Amount, ins.FeeBasisPoints)
	if err != nil {
		return nil, err
	}
	total, err := amount.Add(ins.Amount, fee)
	if err != nil {
		return nil, err
	}
	if from.Balance < total {
		return nil, common.InsufficientFunds(from.Balance, total)
	}

	fromBalance, err := amount.Sub(from.Balance, total)
	if err != nil {
		return nil, err
	}
	toBalance, err := amount.Add(to.Balance, ins.Amount)
	if err != nil {
		return nil, err
	}
	from.Balance = fromBalance
	to.Balance = toBalance

	for _, a := range []*account.Info{fromInfo, toInfo} {
		if err := validation.IsWritable().Check(a); err != nil {
			return nil, fmt.Errorf("%s: %w", a.Key, err)
		}
	}
	if err := account.ValidateSpace(fromInfo, entries.UserAccountSize); err != nil {
		return nil, err
	}
	if err := account.ValidateSpace(toInfo, entries.UserAccountSize); err != nil {
		return nil, err
	}
	if err := account.Store(fromInfo, from); err != nil {
		return nil, err
	}
	if err := account.Store(toInfo, to); err != nil {
		return nil, err
	}
	return &handler.Outcome{
		Modified:  []common.Address{fromInfo.Key, toInfo.Key},
		FeeBurned: fee,
	}, nil
}

// verifyUserKey fails unless key is the user address derived for owner.
func (e *Engine) verifyUserKey(key, owner common.Address) error {
	expected, err := e.UserKeylet(owner)
	if err != nil {
		return err
	}
	return keylet.Verify(key, expected)
}
