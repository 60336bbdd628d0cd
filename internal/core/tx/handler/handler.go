// Package handler provides the instruction handler interface and registry
// used by the dispatcher to route decoded instructions.
package handler

import (
	"context"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/account"
)

// Handler processes one instruction type.
type Handler interface {
	// Tag is the leading byte that selects this handler.
	Tag() uint8

	// Name returns the instruction name used in logs.
	Name() string

	// Preflight checks the instruction arguments without touching accounts.
	Preflight(args []byte) error

	// Apply runs the instruction against accounts.
	Apply(ctx context.Context, args []byte, accounts []*account.Info) (*Outcome, error)
}

// Outcome describes the effect of a successfully applied instruction.
type Outcome struct {
	// Modified lists the accounts whose buffers were written, in write order.
	Modified []common.Address

	// FeeBurned is the fee debited from the sender and credited nowhere.
	FeeBurned uint64
}
