package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/kohla-sky/sample-program/internal/core/tx/validation"
)

var tokenTimestamp int64

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Generate and verify time-bound security tokens",
}

var tokenGenerateCmd = &cobra.Command{
	Use:   "generate <account> <operation>",
	Short: "Generate a security token",
	Args:  cobra.ExactArgs(2),
	RunE:  runTokenGenerate,
}

var tokenVerifyCmd = &cobra.Command{
	Use:   "verify <token> <account> <operation> <timestamp>",
	Short: "Verify a security token against the configured maximum age",
	Args:  cobra.ExactArgs(4),
	RunE:  runTokenVerify,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenGenerateCmd, tokenVerifyCmd)

	tokenGenerateCmd.Flags().Int64Var(&tokenTimestamp, "timestamp", 0, "unix timestamp to bind (default now)")
}

func runTokenGenerate(cmd *cobra.Command, args []string) error {
	acct, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	ts := tokenTimestamp
	if ts == 0 {
		ts = time.Now().Unix()
	}
	token := validation.GenerateSecurityToken(acct, args[1], ts)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", hex.EncodeToString(token[:]), ts)
	return nil
}

func runTokenVerify(cmd *cobra.Command, args []string) error {
	raw, err := hex.DecodeString(args[0])
	if err != nil || len(raw) != 32 {
		return fmt.Errorf("invalid token %q: want 64 hex characters", args[0])
	}
	var token [32]byte
	copy(token[:], raw)

	acct, err := parseAddress(args[1])
	if err != nil {
		return err
	}
	ts, err := strconv.ParseInt(args[3], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", args[3], err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := validation.VerifySecurityToken(token, acct, args[2], ts, cfg.TokenMaxAge, validation.SystemClock{}); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return nil
}
