package testing

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/ledger/entry/entries"
	"github.com/kohla-sky/sample-program/internal/core/tx"
	"github.com/kohla-sky/sample-program/internal/host"
	"github.com/kohla-sky/sample-program/internal/storage/accounts"
	"github.com/kohla-sky/sample-program/internal/storage/journal"
)

// Result is the outcome of an instruction submitted through an Env.
type Result struct {
	*tx.ApplyResult
	Err error
}

// TestEnv wires a host to an in-memory account store and a SQLite journal.
type TestEnv struct {
	t       *testing.T
	ctx     context.Context
	clock   *ManualClock
	store   *accounts.Store
	journal journal.Store
	host    *host.Host

	accounts map[string]*Account
}

// EnvOption configures NewEnv.
type EnvOption func(*envConfig)

type envConfig struct {
	engine  tx.EngineConfig
	storage accounts.Config
	journal journal.Store
}

// WithEngineConfig adjusts the engine configuration.
func WithEngineConfig(fn func(*tx.EngineConfig)) EnvOption {
	return func(c *envConfig) { fn(&c.engine) }
}

// WithStorage replaces the default in-memory account store.
func WithStorage(cfg accounts.Config) EnvOption {
	return func(c *envConfig) { c.storage = cfg }
}

// WithJournal replaces the default SQLite journal.
func WithJournal(j journal.Store) EnvOption {
	return func(c *envConfig) { c.journal = j }
}

// NewEnv creates a test environment. Resources are released through t.Cleanup.
func NewEnv(t *testing.T, opts ...EnvOption) *TestEnv {
	t.Helper()
	ctx := context.Background()

	cfg := envConfig{
		engine:  tx.DefaultEngineConfig(ProgramID()),
		storage: accounts.Config{Backend: "memory", Compressor: "lz4"},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	store, err := accounts.Open(cfg.storage)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	j := cfg.journal
	if j == nil {
		sj, err := journal.Open(ctx, journal.DriverSQLite, filepath.Join(t.TempDir(), "journal.db"))
		require.NoError(t, err)
		t.Cleanup(func() { _ = sj.Close() })
		j = sj
	}

	engine, err := tx.NewEngine(cfg.engine)
	require.NoError(t, err)

	clock := NewManualClock()
	h := host.New(store, tx.NewProcessor(engine), host.WithJournal(j), host.WithNow(clock.Now))

	return &TestEnv{
		t:        t,
		ctx:      ctx,
		clock:    clock,
		store:    store,
		journal:  j,
		host:     h,
		accounts: make(map[string]*Account),
	}
}

func (e *TestEnv) Host() *host.Host { return e.host }
func (e *TestEnv) Store() *accounts.Store { return e.store }
func (e *TestEnv) Clock() *ManualClock { return e.clock }
func (e *TestEnv) Context() context.Context { return e.ctx }
func (e *TestEnv) Journal() journal.Store { return e.journal }
func (e *TestEnv) ProgramID() common.Address { return e.host.ProgramID() }

// Wallet returns the named account, registering its wallet on first use.
func (e *TestEnv) Wallet(name string) *Account {
	e.t.Helper()
	if acc, ok := e.accounts[name]; ok {
		return acc
	}
	acc := NewAccount(name)
	require.NoError(e.t, e.host.OpenWallet(e.ctx, acc.Address))
	e.accounts[name] = acc
	return acc
}

// Initialize submits Initialize paid for by payer.
func (e *TestEnv) Initialize(payer *Account, initialAmount uint64) Result {
	res, err := e.host.Initialize(e.ctx, payer.Address, initialAmount)
	return Result{ApplyResult: res, Err: err}
}

// CreateUser submits CreateUserAccount for user.
func (e *TestEnv) CreateUser(user *Account, initialBalance uint64) Result {
	res, err := e.host.CreateUser(e.ctx, user.Address, initialBalance)
	return Result{ApplyResult: res, Err: err}
}

// Transfer submits TransferWithFee from one user account to another.
func (e *TestEnv) Transfer(from, to *Account, amt uint64, feeBasisPoints uint16) Result {
	res, err := e.host.Transfer(e.ctx, from.Address, to.Address, amt, feeBasisPoints)
	return Result{ApplyResult: res, Err: err}
}

// Submit runs a prepared request.
func (e *TestEnv) Submit(req host.Request) Result {
	res, err := e.host.Execute(e.ctx, req)
	return Result{ApplyResult: res, Err: err}
}

// UserAccount returns the decoded user account of acc, or nil when it has
// not been created. An allocated but never written buffer counts as not
// created.
func (e *TestEnv) UserAccount(acc *Account) *entries.UserAccount {
	e.t.Helper()
	ua, err := e.host.UserAccount(e.ctx, acc.Address)
	if errors.Is(err, accounts.ErrNotFound) {
		return nil
	}
	require.NoError(e.t, err)
	if ua.Owner.IsZero() {
		return nil
	}
	return ua
}

// Balance returns the balance of acc's user account, or 0 when it has not
// been created.
func (e *TestEnv) Balance(acc *Account) uint64 {
	e.t.Helper()
	ua := e.UserAccount(acc)
	if ua == nil {
		return 0
	}
	return ua.Balance
}

// ProgramState returns the decoded program state.
func (e *TestEnv) ProgramState() *entries.ProgramState {
	e.t.Helper()
	ps, err := e.host.ProgramState(e.ctx)
	require.NoError(e.t, err)
	return ps
}

// JournalEntries returns up to limit journal entries, newest first.
func (e *TestEnv) JournalEntries(limit int) []*journal.Entry {
	e.t.Helper()
	out, err := e.journal.Recent(e.ctx, limit)
	require.NoError(e.t, err)
	return out
}
