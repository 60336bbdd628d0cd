// Package tx applies ledger instructions to validated account handles.
//
// Every transition re-derives the addresses it depends on, runs the
// validation chains for each account, computes all new records, and only
// then writes. A failure at any step leaves every account buffer untouched.
package tx

import (
	"context"
	"fmt"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/account"
	"github.com/kohla-sky/sample-program/internal/core/amount"
	"github.com/kohla-sky/sample-program/internal/core/ledger/keylet"
	"github.com/kohla-sky/sample-program/internal/core/tx/handler"
	"github.com/kohla-sky/sample-program/internal/logging"
)

// DefaultKeyletCacheSize is used when no derivation cache is supplied.
const DefaultKeyletCacheSize = 1024

// EngineConfig holds configuration for the transition engine
type EngineConfig struct {
	// ProgramID is the authority every derived address is bound to
	ProgramID common.Address

	// Decimals scales Initialize's whole-token amount to base units
	Decimals uint8

	// UserScale multiplies CreateUserAccount's initial balance
	UserScale uint64
}

// DefaultEngineConfig returns the configuration used by the program.
func DefaultEngineConfig(programID common.Address) EngineConfig {
	return EngineConfig{
		ProgramID: programID,
		Decimals:  common.DefaultDecimals,
		UserScale: common.UserBalanceScale,
	}
}

// Validate rejects configurations the engine cannot run with.
func (c EngineConfig) Validate() error {
	if err := common.ValidateNotDefault(c.ProgramID); err != nil {
		return fmt.Errorf("program id: %w", err)
	}
	if err := amount.ValidatePrecision(c.Decimals); err != nil {
		return fmt.Errorf("decimals: %w", err)
	}
	if c.UserScale == 0 {
		return fmt.Errorf("user scale: %w", common.ErrInvalidCalculation)
	}
	return nil
}

// ApplyResult contains the result of applying an instruction
type ApplyResult struct {
	handler.Outcome

	// Instruction is the type that was applied
	Instruction InstructionType

	// Result is the result code
	Result Result

	// Message is a human-readable result message
	Message string
}

// Applied reports whether account buffers were written.
func (r *ApplyResult) Applied() bool {
	return r.Result.IsSuccess()
}

// Engine applies instructions against account handles
type Engine struct {
	config  EngineConfig
	keylets *keylet.Cache
	logger  logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithKeyletCache shares a derivation cache with the engine.
func WithKeyletCache(c *keylet.Cache) Option {
	return func(e *Engine) { e.keylets = c }
}

// NewEngine creates an engine for config.
func NewEngine(config EngineConfig, opts ...Option) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{config: config}
	for _, opt := range opts {
		opt(e)
	}
	if e.keylets == nil {
		c, err := keylet.NewCache(DefaultKeyletCacheSize)
		if err != nil {
			return nil, err
		}
		e.keylets = c
	}
	if e.logger == nil {
		e.logger = logging.Discard()
	}
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() EngineConfig {
	return e.config
}

// ProgramStateKeylet returns the derived program state address.
func (e *Engine) ProgramStateKeylet() (keylet.Keylet, error) {
	return e.keylets.ProgramState(e.config.ProgramID)
}

// UserKeylet returns the derived user account address for owner.
func (e *Engine) UserKeylet(owner common.Address) (keylet.Keylet, error) {
	return e.keylets.User(owner, e.config.ProgramID)
}

// Apply runs ins against accounts. The returned result is never nil; on
// failure it carries the result code for the error and no account has been
// written.
func (e *Engine) Apply(ctx context.Context, ins Instruction, accounts []*account.Info) (*ApplyResult, error) {
	res := &ApplyResult{Instruction: ins.Type()}
	if err := ctx.Err(); err != nil {
		res.Result = TefFAILURE
		res.Message = err.Error()
		return res, err
	}

	var (
		out *handler.Outcome
		err error
	)
	switch ins := ins.(type) {
	case *Initialize:
		out, err = e.initialize(ins, accounts)
	case *CreateUserAccount:
		out, err = e.createUserAccount(ins, accounts)
	case *TransferWithFee:
		out, err = e.transferWithFee(ins, accounts)
	default:
		err = common.NewCustom(common.CodeUnknownInstruction, uint64(ins.Type()), 0)
	}

	res.Result = ResultFromError(err)
	res.Message = res.Result.Message()
	log := e.logger.With("instruction", res.Instruction.String())
	if err != nil {
		log.Warn(ctx, "instruction rejected", "result", res.Result.String(), "error", err)
		return res, fmt.Errorf("%s: %w", res.Instruction, err)
	}
	res.Outcome = *out
	log.Info(ctx, "instruction applied", "modified", len(out.Modified), "fee_burned", out.FeeBurned)
	return res, nil
}

// requireAccounts fails unless at least n accounts were supplied.
func requireAccounts(accounts []*account.Info, n int) error {
	if len(accounts) < n {
		return common.NewCustom(common.CodeNotEnoughAccounts, uint64(len(accounts)), uint64(n))
	}
	for _, a := range accounts[:n] {
		if a == nil {
			return common.ErrAccountValidationFailed
		}
	}
	return nil
}
