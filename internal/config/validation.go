package config

import (
	"fmt"
	"strings"

	"github.com/kohla-sky/sample-program/internal/core/amount"
	"github.com/kohla-sky/sample-program/internal/logging"
	"github.com/kohla-sky/sample-program/internal/storage/compression"
	"github.com/kohla-sky/sample-program/internal/storage/journal"
)

// ValidateConfig performs validation on the complete configuration
func ValidateConfig(config *Config) error {
	if err := validateProgram(config); err != nil {
		return fmt.Errorf("program config validation failed: %w", err)
	}
	if err := config.Storage.Validate(); err != nil {
		return fmt.Errorf("storage validation failed: %w", err)
	}
	if err := config.Journal.Validate(); err != nil {
		return fmt.Errorf("journal validation failed: %w", err)
	}
	if err := config.Log.Validate(); err != nil {
		return fmt.Errorf("log validation failed: %w", err)
	}
	return nil
}

func validateProgram(config *Config) error {
	if config.ProgramID == "" {
		return fmt.Errorf("program_id is required")
	}
	if _, err := config.ProgramAddress(); err != nil {
		return err
	}
	if err := amount.ValidatePrecision(config.Decimals); err != nil {
		return fmt.Errorf("decimals: %w", err)
	}
	if config.UserScale == 0 {
		return fmt.Errorf("user_scale must be positive")
	}
	if config.EntropyThreshold < 1 || config.EntropyThreshold > 256 {
		return fmt.Errorf("entropy_threshold must be between 1 and 256, got %d", config.EntropyThreshold)
	}
	if config.TokenMaxAge < 0 {
		return fmt.Errorf("token_max_age cannot be negative")
	}
	if config.DerivationCacheSize < 1 {
		return fmt.Errorf("derivation_cache_size must be positive")
	}
	return nil
}

// Validate validates the storage configuration
func (s *StorageConfig) Validate() error {
	switch s.Backend {
	case "memory":
	case "pebble", "leveldb":
		if s.Path == "" {
			return fmt.Errorf("path is required for the %s backend", s.Backend)
		}
	default:
		return fmt.Errorf("backend must be one of memory, pebble, leveldb; got %q", s.Backend)
	}
	if !compression.IsAvailable(s.Compressor) {
		return fmt.Errorf("compressor must be one of %s; got %q",
			strings.Join(compression.Available(), ", "), s.Compressor)
	}
	return nil
}

// Validate validates the journal configuration
func (j *JournalConfig) Validate() error {
	switch j.Driver {
	case "":
		return nil
	case journal.DriverSQLite, journal.DriverPostgres, journal.DriverPgx:
		if j.DSN == "" {
			return fmt.Errorf("dsn is required for the %s driver", j.Driver)
		}
		return nil
	default:
		return fmt.Errorf("driver must be sqlite, postgres or pgx; got %q", j.Driver)
	}
}

// Validate validates the log configuration
func (l *LogConfig) Validate() error {
	if _, err := logging.ParseLevel(l.Level); err != nil {
		return err
	}
	if l.Format != "text" && l.Format != "json" {
		return fmt.Errorf("format must be text or json; got %q", l.Format)
	}
	return nil
}
