// Package host runs instructions against persisted accounts.
//
// Accounts named by a request are loaded concurrently, the instruction is
// applied under the host lock, and every modified buffer is committed in a
// single batch. Each request, applied or rejected, is written to the
// journal when one is configured.
package host

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/account"
	"github.com/kohla-sky/sample-program/internal/core/ledger/entry/entries"
	"github.com/kohla-sky/sample-program/internal/core/tx"
	crypto "github.com/kohla-sky/sample-program/internal/crypto/common"
	"github.com/kohla-sky/sample-program/internal/logging"
	"github.com/kohla-sky/sample-program/internal/storage/accounts"
	"github.com/kohla-sky/sample-program/internal/storage/journal"
)

// DefaultLoadConcurrency bounds parallel account reads per request.
const DefaultLoadConcurrency = 8

// AccountMeta names an account in a request together with the capabilities
// the caller grants it.
type AccountMeta struct {
	Key        common.Address
	IsSigner   bool
	IsWritable bool
}

// Request is one encoded instruction with its accounts, in the order the
// instruction expects them.
type Request struct {
	Accounts    []AccountMeta
	Instruction []byte
}

type Host struct {
	mu        sync.Mutex
	store     *accounts.Store
	processor *tx.Processor
	journal   journal.Store
	logger    logging.Logger
	now       func() time.Time
	loadLimit int
}

type Option func(*Host)

func WithJournal(j journal.Store) Option {
	return func(h *Host) { h.journal = j }
}

func WithLogger(l logging.Logger) Option {
	return func(h *Host) { h.logger = l }
}

// WithNow sets the time source for journal timestamps.
func WithNow(now func() time.Time) Option {
	return func(h *Host) { h.now = now }
}

func WithLoadConcurrency(n int) Option {
	return func(h *Host) { h.loadLimit = n }
}

func New(store *accounts.Store, processor *tx.Processor, opts ...Option) *Host {
	h := &Host{
		store:     store,
		processor: processor,
		logger:    logging.Discard(),
		now:       time.Now,
		loadLimit: DefaultLoadConcurrency,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ProgramID returns the program the host executes for.
func (h *Host) ProgramID() common.Address {
	return h.processor.Engine().Config().ProgramID
}

// Engine returns the engine behind the host.
func (h *Host) Engine() *tx.Engine {
	return h.processor.Engine()
}

// Execute applies req. The returned result is nil only when the request
// could not be run at all, e.g. a storage failure while loading.
func (h *Host) Execute(ctx context.Context, req Request) (*tx.ApplyResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	infos, err := h.load(ctx, req.Accounts)
	if err != nil {
		return nil, err
	}

	res, applyErr := h.processor.Process(ctx, h.ProgramID(), infos, req.Instruction)
	log := h.logger.With("instruction", res.Instruction.String(), "result", res.Result.String())

	if applyErr == nil {
		if err := h.commit(ctx, infos, res.Modified); err != nil {
			log.Error(ctx, "commit failed", "error", err)
			return res, fmt.Errorf("commit: %w", err)
		}
		log.Info(ctx, "committed", "accounts", len(res.Modified))
	} else {
		log.Warn(ctx, "rejected", "error", applyErr)
	}

	h.record(ctx, req, res, applyErr)
	return res, applyErr
}

// load reads every account in metas. Accounts with no stored record are
// returned with an empty buffer, which the validation chains reject.
func (h *Host) load(ctx context.Context, metas []AccountMeta) ([]*account.Info, error) {
	infos := make([]*account.Info, len(metas))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.loadLimit)

	for i, m := range metas {
		g.Go(func() error {
			info := &account.Info{Key: m.Key, IsSigner: m.IsSigner, IsWritable: m.IsWritable}
			rec, err := h.store.Get(gctx, m.Key)
			switch {
			case errors.Is(err, accounts.ErrNotFound):
			case err != nil:
				return fmt.Errorf("load %s: %w", m.Key, err)
			default:
				info.Owner = rec.Owner
				info.Data = rec.Data
			}
			infos[i] = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The same key listed twice must share one buffer.
	seen := make(map[common.Address]*account.Info, len(infos))
	for i, info := range infos {
		if first, ok := seen[info.Key]; ok {
			infos[i] = &account.Info{
				Key:        info.Key,
				Owner:      first.Owner,
				IsSigner:   info.IsSigner,
				IsWritable: info.IsWritable,
				Data:       first.Data,
			}
			continue
		}
		seen[info.Key] = info
	}
	return infos, nil
}

func (h *Host) commit(ctx context.Context, infos []*account.Info, modified []common.Address) error {
	if len(modified) == 0 {
		return nil
	}
	byKey := make(map[common.Address]*account.Info, len(infos))
	for _, info := range infos {
		if _, ok := byKey[info.Key]; !ok {
			byKey[info.Key] = info
		}
	}
	records := make([]*accounts.Record, 0, len(modified))
	for _, k := range modified {
		info, ok := byKey[k]
		if !ok {
			return fmt.Errorf("modified account %s was not loaded", k)
		}
		records = append(records, &accounts.Record{Key: k, Owner: info.Owner, Data: info.Data})
	}
	return h.store.Put(ctx, records...)
}

// record writes a journal entry. Journal failures are logged and do not
// affect the result of an already committed instruction.
func (h *Host) record(ctx context.Context, req Request, res *tx.ApplyResult, applyErr error) {
	if h.journal == nil {
		return
	}
	e := journal.NewEntry(res.Instruction.String(), res.Result.String(), h.now())
	for _, m := range req.Accounts {
		e.Accounts = append(e.Accounts, m.Key.String())
	}
	e.FeeBurned = res.FeeBurned
	digest := crypto.Sha512Half(req.Instruction)
	e.Digest = fmt.Sprintf("%x", digest[:])
	if applyErr != nil {
		e.Error = applyErr.Error()
	}
	if err := h.journal.Record(ctx, e); err != nil {
		h.logger.Error(ctx, "journal write failed", "id", e.ID.String(), "error", err)
	}
}

// Allocate creates a zeroed, program-owned account of size bytes at k.
func (h *Host) Allocate(ctx context.Context, k common.Address, size int) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.store.Allocate(ctx, k, h.ProgramID(), size)
	return err
}

// OpenWallet registers a signer account for k. Wallet data holds the
// address itself so that it is never empty.
func (h *Host) OpenWallet(ctx context.Context, k common.Address) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	ok, err := h.store.Has(ctx, k)
	if err != nil || ok {
		return err
	}
	if err := common.ValidateNotDefault(k); err != nil {
		return err
	}
	return h.store.Put(ctx, &accounts.Record{Key: k, Data: append([]byte(nil), k[:]...)})
}

// Account returns the stored record for k.
func (h *Host) Account(ctx context.Context, k common.Address) (*accounts.Record, error) {
	return h.store.Get(ctx, k)
}

// ProgramState loads and decodes the program state.
func (h *Host) ProgramState(ctx context.Context) (*entries.ProgramState, error) {
	k, err := h.Engine().ProgramStateKeylet()
	if err != nil {
		return nil, err
	}
	rec, err := h.store.Get(ctx, k.Key)
	if err != nil {
		return nil, err
	}
	return account.ProgramState(&account.Info{Key: k.Key, Data: rec.Data})
}

// UserAccount loads and decodes the user account of owner.
func (h *Host) UserAccount(ctx context.Context, owner common.Address) (*entries.UserAccount, error) {
	k, err := h.Engine().UserKeylet(owner)
	if err != nil {
		return nil, err
	}
	rec, err := h.store.Get(ctx, k.Key)
	if err != nil {
		return nil, err
	}
	return account.UserAccount(&account.Info{Key: k.Key, Data: rec.Data})
}
