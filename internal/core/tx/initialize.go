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

// initialize expects accounts [program_state, payer]. The program state is
// written once; the authority is fixed by the first successful Initialize.
func (e *Engine) initialize(ins *Initialize, accounts []*account.Info) (*handler.Outcome, error) {
	if err := requireAccounts(accounts, 2); err != nil {
		return nil, err
	}
	stateInfo, payer := accounts[0], accounts[1]

	expected, err := e.ProgramStateKeylet()
	if err != nil {
		return nil, err
	}
	if err := keylet.Verify(stateInfo.Key, expected); err != nil {
		return nil, fmt.Errorf("program state: %w", err)
	}
	if err := validation.Signer().Run(payer); err != nil {
		return nil, fmt.Errorf("payer: %w", err)
	}
	if current, err := entries.DecodeProgramState(stateInfo.Data); err == nil && current.IsInitialized {
		return nil, fmt.Errorf("program state: %w", common.ErrAlreadyInitialized)
	}

	supply, err := amount.ScaleByDecimals(ins.InitialAmount, e.config.Decimals)
	if err != nil {
		return nil, err
	}
	state := &entries.ProgramState{
		Authority:     payer.Key,
		TotalSupply:   supply,
		IsInitialized: true,
	}

	if err := validation.Writable().Run(stateInfo); err != nil {
		return nil, fmt.Errorf("program state: %w", err)
	}
	if err := account.Store(stateInfo, state); err != nil {
		return nil, fmt.Errorf("program state: %w", err)
	}
	return &handler.Outcome{Modified: []common.Address{stateInfo.Key}}, nil
}
