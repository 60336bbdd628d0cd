package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kohla-sky/sample-program/internal/config"
)

var (
	// Global flags
	configFile string
	quiet      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ledgerd",
	Short: "ledgerd - token ledger program host",
	Long: `ledgerd runs the token ledger program against a local account store.

It derives program addresses, initializes the program state, opens user
accounts and applies fee-charging transfers. Every instruction is recorded
in the journal.`,
	Version:       "0.1.0-dev",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flagKeys maps persistent flags onto configuration keys.
var flagKeys = map[string]string{
	"program-id": "program_id",
	"log-level":  "log.level",
	"log-format": "log.format",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "conf", "", "configuration file path (default $LEDGERD_CONFIG or ./ledgerd.toml)")
	pf.String("program-id", "", "program address, base58")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text or json")
	pf.BoolVarP(&quiet, "quiet", "q", false, "print results only")
}

// loadConfig reads the configuration with flags taking precedence over
// environment, file and defaults.
func loadConfig() (*config.Config, error) {
	v := viper.New()
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			return nil, err
		}
	}
	path := configFile
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.LoadWith(v, path)
}

// infof prints progress output unless --quiet is set.
func infof(cmd *cobra.Command, format string, args ...any) {
	if quiet {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
