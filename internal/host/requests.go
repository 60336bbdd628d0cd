package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/ledger/entry/entries"
	"github.com/kohla-sky/sample-program/internal/core/tx"
	"github.com/kohla-sky/sample-program/internal/storage/accounts"
)

// InitializeRequest builds the request that initializes the program state,
// paid for by payer.
func (h *Host) InitializeRequest(payer common.Address, initialAmount uint64) (Request, error) {
	k, err := h.Engine().ProgramStateKeylet()
	if err != nil {
		return Request{}, err
	}
	buf, err := (&tx.Initialize{InitialAmount: initialAmount}).MarshalBinary()
	if err != nil {
		return Request{}, err
	}
	return Request{
		Accounts: []AccountMeta{
			{Key: k.Key, IsWritable: true},
			{Key: payer, IsSigner: true},
		},
		Instruction: buf,
	}, nil
}

// CreateUserRequest builds the request that opens user's account.
func (h *Host) CreateUserRequest(user common.Address, initialBalance uint64) (Request, error) {
	state, err := h.Engine().ProgramStateKeylet()
	if err != nil {
		return Request{}, err
	}
	k, err := h.Engine().UserKeylet(user)
	if err != nil {
		return Request{}, err
	}
	buf, err := (&tx.CreateUserAccount{InitialBalance: initialBalance}).MarshalBinary()
	if err != nil {
		return Request{}, err
	}
	return Request{
		Accounts: []AccountMeta{
			{Key: k.Key, IsWritable: true},
			{Key: user, IsSigner: true},
			{Key: state.Key},
		},
		Instruction: buf,
	}, nil
}

// TransferRequest builds a transfer from the user account of from to the
// user account of to, signed by from.
func (h *Host) TransferRequest(from, to common.Address, amt uint64, feeBasisPoints uint16) (Request, error) {
	src, err := h.Engine().UserKeylet(from)
	if err != nil {
		return Request{}, err
	}
	dst, err := h.Engine().UserKeylet(to)
	if err != nil {
		return Request{}, err
	}
	buf, err := (&tx.TransferWithFee{Amount: amt, FeeBasisPoints: feeBasisPoints}).MarshalBinary()
	if err != nil {
		return Request{}, err
	}
	return Request{
		Accounts: []AccountMeta{
			{Key: src.Key, IsWritable: true},
			{Key: dst.Key, IsWritable: true},
			{Key: from, IsSigner: true},
		},
		Instruction: buf,
	}, nil
}

// Initialize allocates the program state account when missing and applies
// Initialize.
func (h *Host) Initialize(ctx context.Context, payer common.Address, initialAmount uint64) (*tx.ApplyResult, error) {
	k, err := h.Engine().ProgramStateKeylet()
	if err != nil {
		return nil, err
	}
	if err := h.ensureAllocated(ctx, k.Key, entries.ProgramStateSize); err != nil {
		return nil, err
	}
	req, err := h.InitializeRequest(payer, initialAmount)
	if err != nil {
		return nil, err
	}
	return h.Execute(ctx, req)
}

// CreateUser allocates the user account of user when missing and applies
// CreateUserAccount.
func (h *Host) CreateUser(ctx context.Context, user common.Address, initialBalance uint64) (*tx.ApplyResult, error) {
	k, err := h.Engine().UserKeylet(user)
	if err != nil {
		return nil, err
	}
	if err := h.ensureAllocated(ctx, k.Key, entries.UserAccountSize); err != nil {
		return nil, err
	}
	req, err := h.CreateUserRequest(user, initialBalance)
	if err != nil {
		return nil, err
	}
	return h.Execute(ctx, req)
}

// Transfer applies TransferWithFee between two existing user accounts.
func (h *Host) Transfer(ctx context.Context, from, to common.Address, amt uint64, feeBasisPoints uint16) (*tx.ApplyResult, error) {
	req, err := h.TransferRequest(from, to, amt, feeBasisPoints)
	if err != nil {
		return nil, err
	}
	return h.Execute(ctx, req)
}

func (h *Host) ensureAllocated(ctx context.Context, k common.Address, size int) error {
	err := h.Allocate(ctx, k, size)
	if errors.Is(err, accounts.ErrExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("allocate %s: %w", k, err)
	}
	return nil
}
