package config

import (
	"github.com/spf13/viper"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/tx"
)

const (
	DefaultTokenMaxAge = 300
	DefaultStoragePath = "ledgerd-data"
)

// setDefaults sets all default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("program_id", "")
	v.SetDefault("decimals", common.DefaultDecimals)
	v.SetDefault("user_scale", common.UserBalanceScale)
	v.SetDefault("entropy_threshold", common.DefaultEntropyThreshold)
	v.SetDefault("token_max_age", DefaultTokenMaxAge)
	v.SetDefault("derivation_cache_size", tx.DefaultKeyletCacheSize)

	v.SetDefault("storage.backend", "pebble")
	v.SetDefault("storage.path", DefaultStoragePath)
	v.SetDefault("storage.compressor", "lz4")

	v.SetDefault("journal.driver", "sqlite")
	v.SetDefault("journal.dsn", "ledgerd-journal.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
