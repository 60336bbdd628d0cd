package tx

import (
	"context"
	"fmt"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/account"
	"github.com/kohla-sky/sample-program/internal/core/tx/handler"
)

// Processor decodes encoded instructions and routes them through a handler
// registry to the engine.
type Processor struct {
	engine   *Engine
	registry *handler.Registry
}

// NewProcessor registers handlers for every instruction type the engine
// applies.
func NewProcessor(engine *Engine) *Processor {
	r := handler.NewRegistry()
	for _, t := range []InstructionType{TypeInitialize, TypeCreateUserAccount, TypeTransferWithFee} {
		r.MustRegister(engineHandler{engine: engine, typ: t})
	}
	return &Processor{engine: engine, registry: r}
}

// Registry exposes the handler registry.
func (p *Processor) Registry() *handler.Registry {
	return p.registry
}

// Engine returns the engine behind the processor.
func (p *Processor) Engine() *Engine {
	return p.engine
}

// Process decodes buf and applies it. programID must be the engine's program.
func (p *Processor) Process(ctx context.Context, programID common.Address, accounts []*account.Info, buf []byte) (*ApplyResult, error) {
	if programID != p.engine.config.ProgramID {
		err := fmt.Errorf("program id %s: %w", programID, common.ErrInsufficientPermissions)
		return &ApplyResult{Result: TefNO_PERMISSION, Message: TefNO_PERMISSION.Message()}, err
	}
	if len(buf) == 0 {
		return failed(0, common.ErrMalformedInstruction)
	}

	typ := InstructionType(buf[0])
	h := p.registry.Get(buf[0])
	if h == nil {
		return failed(typ, common.NewCustom(common.CodeUnknownInstruction, uint64(buf[0]), 0))
	}
	if err := h.Preflight(buf[1:]); err != nil {
		return failed(typ, err)
	}

	out, err := h.Apply(ctx, buf[1:], accounts)
	res := &ApplyResult{Instruction: typ, Result: ResultFromError(err)}
	res.Message = res.Result.Message()
	if err != nil {
		return res, err
	}
	res.Outcome = *out
	return res, nil
}

func failed(typ InstructionType, err error) (*ApplyResult, error) {
	r := ResultFromError(err)
	return &ApplyResult{Instruction: typ, Result: r, Message: r.Message()}, err
}

// engineHandler adapts one engine transition to handler.Handler.
type engineHandler struct {
	engine *Engine
	typ    InstructionType
}

func (h engineHandler) Tag() uint8 {
	return uint8(h.typ)
}

func (h engineHandler) Name() string {
	return h.typ.String()
}

func (h engineHandler) Preflight(args []byte) error {
	_, err := decodeArgs(h.typ, args)
	return err
}

func (h engineHandler) Apply(ctx context.Context, args []byte, accounts []*account.Info) (*handler.Outcome, error) {
	ins, err := decodeArgs(h.typ, args)
	if err != nil {
		return nil, err
	}
	res, err := h.engine.Apply(ctx, ins, accounts)
	if err != nil {
		return nil, err
	}
	return &res.Outcome, nil
}
