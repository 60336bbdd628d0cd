package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kohla-sky/sample-program/internal/core/tx/validation"
	"github.com/kohla-sky/sample-program/internal/storage/accounts"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Inspect stored accounts",
}

var accountStateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the program state",
	Args:  cobra.NoArgs,
	RunE:  runAccountState,
}

var accountUserCmd = &cobra.Command{
	Use:   "user <owner>",
	Short: "Show the user account of owner",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountUser,
}

var accountShowCmd = &cobra.Command{
	Use:   "show <address>",
	Short: "Show a raw account record and its security level",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountShow,
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every stored account",
	Args:  cobra.NoArgs,
	RunE:  runAccountList,
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountStateCmd, accountUserCmd, accountShowCmd, accountListCmd)
}

func runAccountState(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ps, err := s.host.ProgramState(ctx)
	if errors.Is(err, accounts.ErrNotFound) {
		return errNotInitialized
	}
	if err != nil {
		return err
	}
	if !ps.IsInitialized {
		return errNotInitialized
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "authority:    %s\n", ps.Authority)
	fmt.Fprintf(out, "total supply: %s\n", s.humanize(ps.TotalSupply))
	return nil
}

func runAccountUser(cmd *cobra.Command, args []string) error {
	owner, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ua, err := s.host.UserAccount(ctx, owner)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "owner:         %s\n", ua.Owner)
	fmt.Fprintf(out, "balance:       %s\n", s.humanize(ua.Balance))
	fmt.Fprintf(out, "program state: %s\n", ua.ProgramState)
	return nil
}

func runAccountShow(cmd *cobra.Command, args []string) error {
	k, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	rec, err := s.host.Account(ctx, k)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "key:   %s\n", rec.Key)
	fmt.Fprintf(out, "owner: %s\n", rec.Owner)
	fmt.Fprintf(out, "size:  %d\n", len(rec.Data))
	if err := validation.ValidateSecurityLevel(rec.Data, s.cfg.EntropyThreshold); err != nil {
		fmt.Fprintf(out, "security: %v\n", err)
	} else {
		fmt.Fprintln(out, "security: ok")
	}
	return nil
}

func runAccountList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, r := range records {
		fmt.Fprintf(out, "%s owner=%s size=%d\n", r.Key, r.Owner, len(r.Data))
	}
	infof(cmd, "%d accounts\n", len(records))
	return nil
}
