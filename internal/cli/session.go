package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/config"
	"github.com/kohla-sky/sample-program/internal/core/amount"
	"github.com/kohla-sky/sample-program/internal/core/ledger/keylet"
	"github.com/kohla-sky/sample-program/internal/core/tx"
	"github.com/kohla-sky/sample-program/internal/host"
	"github.com/kohla-sky/sample-program/internal/logging"
	"github.com/kohla-sky/sample-program/internal/storage/accounts"
	"github.com/kohla-sky/sample-program/internal/storage/journal"
)

// session holds everything a command needs to run instructions.
type session struct {
	cfg     *config.Config
	logger  logging.Logger
	store   *accounts.Store
	journal journal.Store
	host    *host.Host
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (logging.Logger, error) {
	return logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
}

// openSession loads the configuration and opens the account store, the
// journal and the host.
func openSession(ctx context.Context, cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, err
	}

	engineCfg, err := cfg.EngineConfig()
	if err != nil {
		return nil, err
	}
	cache, err := keylet.NewCache(cfg.DerivationCacheSize)
	if err != nil {
		return nil, err
	}
	engine, err := tx.NewEngine(engineCfg, tx.WithKeyletCache(cache), tx.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	store, err := accounts.Open(cfg.AccountsConfig())
	if err != nil {
		return nil, fmt.Errorf("open account store: %w", err)
	}
	s := &session{cfg: cfg, logger: logger, store: store}

	opts := []host.Option{host.WithLogger(logger)}
	if cfg.Journal.Driver != "" {
		j, err := journal.Open(ctx, cfg.Journal.Driver, cfg.Journal.DSN)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("open journal: %w", err)
		}
		s.journal = j
		opts = append(opts, host.WithJournal(j))
	}
	s.host = host.New(store, tx.NewProcessor(engine), opts...)
	return s, nil
}

func (s *session) Close() error {
	var errs []error
	if s.journal != nil {
		errs = append(errs, s.journal.Close())
	}
	errs = append(errs, s.store.Close())
	return errors.Join(errs...)
}

// humanize renders base units with the configured decimals.
func (s *session) humanize(v uint64) string {
	return amount.Amount(v).Humanize(s.cfg.Decimals)
}

// report prints the result line for an applied or rejected instruction.
func report(cmd *cobra.Command, res *tx.ApplyResult, err error) error {
	if res != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", res.Instruction, res.Result, res.Message)
	}
	return err
}

func parseAddress(arg string) (common.Address, error) {
	a, err := common.ParseAddress(arg)
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid address %q: %w", arg, err)
	}
	return a, nil
}

func parseUint(arg, name string) (uint64, error) {
	v, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, arg, err)
	}
	return v, nil
}
