package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/tx"
	"github.com/kohla-sky/sample-program/internal/storage/accounts"
)

// Config represents the complete ledgerd configuration
type Config struct {
	// ProgramID is the base58 address every derived account is bound to
	ProgramID string `toml:"program_id" mapstructure:"program_id"`

	Decimals  uint8  `toml:"decimals" mapstructure:"decimals"`
	UserScale uint64 `toml:"user_scale" mapstructure:"user_scale"`

	// EntropyThreshold is the minimum distinct byte count accepted by the
	// account security check
	EntropyThreshold int `toml:"entropy_threshold" mapstructure:"entropy_threshold"`

	// TokenMaxAge is the security token lifetime in seconds
	TokenMaxAge int64 `toml:"token_max_age" mapstructure:"token_max_age"`

	DerivationCacheSize int `toml:"derivation_cache_size" mapstructure:"derivation_cache_size"`

	Storage StorageConfig `toml:"storage" mapstructure:"storage"`
	Journal JournalConfig `toml:"journal" mapstructure:"journal"`
	Log     LogConfig     `toml:"log" mapstructure:"log"`

	// Internal field for tracking the loaded file
	configPath string
}

// StorageConfig selects the account store backend
type StorageConfig struct {
	Backend    string `toml:"backend" mapstructure:"backend"`
	Path       string `toml:"path" mapstructure:"path"`
	Compressor string `toml:"compressor" mapstructure:"compressor"`
}

// JournalConfig selects the journal database. An empty driver disables
// the journal.
type JournalConfig struct {
	Driver string `toml:"driver" mapstructure:"driver"`
	DSN    string `toml:"dsn" mapstructure:"dsn"`
}

type LogConfig struct {
	Level  string `toml:"level" mapstructure:"level"`
	Format string `toml:"format" mapstructure:"format"`
}

// GetConfigPath returns the path of the loaded file, or "" when none was read.
func (c *Config) GetConfigPath() string {
	return c.configPath
}

// ProgramAddress parses ProgramID.
func (c *Config) ProgramAddress() (common.Address, error) {
	a, err := common.ParseAddress(c.ProgramID)
	if err != nil {
		return common.Address{}, fmt.Errorf("program_id: %w", err)
	}
	return a, nil
}

// EngineConfig returns the transition engine configuration.
func (c *Config) EngineConfig() (tx.EngineConfig, error) {
	id, err := c.ProgramAddress()
	if err != nil {
		return tx.EngineConfig{}, err
	}
	return tx.EngineConfig{ProgramID: id, Decimals: c.Decimals, UserScale: c.UserScale}, nil
}

// AccountsConfig returns the account store configuration.
func (c *Config) AccountsConfig() accounts.Config {
	return accounts.Config{
		Backend:    c.Storage.Backend,
		Path:       c.Storage.Path,
		Compressor: c.Storage.Compressor,
	}
}

// DefaultConfigPath returns the config file looked up when none is given:
// $LEDGERD_CONFIG, then ./ledgerd.toml, then ~/.ledgerd/ledgerd.toml.
func DefaultConfigPath() string {
	if p := os.Getenv("LEDGERD_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat("ledgerd.toml"); err == nil {
		return "ledgerd.toml"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, ".ledgerd", "ledgerd.toml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}
