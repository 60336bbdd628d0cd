package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var transferFeeBP uint16

var initializeCmd = &cobra.Command{
	Use:   "initialize <payer> <initial-amount>",
	Short: "Initialize the program state",
	Long: `Allocate the program state account and initialize it with payer as the
authority. initial-amount is in whole tokens and is scaled by the configured
decimals.`,
	Args: cobra.ExactArgs(2),
	RunE: runInitialize,
}

var createUserCmd = &cobra.Command{
	Use:   "create-user <user> <initial-balance>",
	Short: "Open a user account",
	Long: `Allocate and initialize the user account derived for user. The stored
balance is initial-balance multiplied by the configured user scale.`,
	Args: cobra.ExactArgs(2),
	RunE: runCreateUser,
}

var transferCmd = &cobra.Command{
	Use:   "transfer <from> <to> <amount>",
	Short: "Transfer between user accounts",
	Long: `Move amount base units from the user account of from to the user account
of to. The fee, in basis points of amount, is debited from the sender and
burned.`,
	Args: cobra.ExactArgs(3),
	RunE: runTransfer,
}

func init() {
	rootCmd.AddCommand(initializeCmd)
	rootCmd.AddCommand(createUserCmd)
	rootCmd.AddCommand(transferCmd)

	transferCmd.Flags().Uint16Var(&transferFeeBP, "fee-bp", 0, "fee in basis points of the amount (0-10000)")
}

func runInitialize(cmd *cobra.Command, args []string) error {
	payer, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	initial, err := parseUint(args[1], "initial amount")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	s, err := openSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	// The CLI acts as the payer's wallet.
	if err := s.host.OpenWallet(ctx, payer); err != nil {
		return err
	}
	res, err := s.host.Initialize(ctx, payer, initial)
	if err := report(cmd, res, err); err != nil {
		return err
	}

	ps, err := s.host.ProgramState(ctx)
	if err != nil {
		return err
	}
	infof(cmd, "authority:    %s\n", ps.Authority)
	infof(cmd, "total supply: %s\n", s.humanize(ps.TotalSupply))
	return nil
}

func runCreateUser(cmd *cobra.Command, args []string) error {
	user, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	balance, err := parseUint(args[1], "initial balance")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	s, err := openSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.host.OpenWallet(ctx, user); err != nil {
		return err
	}
	res, err := s.host.CreateUser(ctx, user, balance)
	if err := report(cmd, res, err); err != nil {
		return err
	}

	ua, err := s.host.UserAccount(ctx, user)
	if err != nil {
		return err
	}
	k, err := s.host.Engine().UserKeylet(user)
	if err != nil {
		return err
	}
	infof(cmd, "account: %s\n", k.Key)
	infof(cmd, "balance: %s\n", s.humanize(ua.Balance))
	return nil
}

func runTransfer(cmd *cobra.Command, args []string) error {
	from, err := parseAddress(args[0])
	if err != nil {
		return err
	}
	to, err := parseAddress(args[1])
	if err != nil {
		return err
	}
	amt, err := parseUint(args[2], "amount")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	s, err := openSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.host.Transfer(ctx, from, to, amt, transferFeeBP)
	if err := report(cmd, res, err); err != nil {
		return err
	}

	src, err := s.host.UserAccount(ctx, from)
	if err != nil {
		return err
	}
	dst, err := s.host.UserAccount(ctx, to)
	if err != nil {
		return err
	}
	infof(cmd, "fee burned: %s\n", s.humanize(res.FeeBurned))
	infof(cmd, "%s balance: %s\n", from, s.humanize(src.Balance))
	infof(cmd, "%s balance: %s\n", to, s.humanize(dst.Balance))
	return nil
}

// errNotInitialized is returned by read commands before Initialize ran.
var errNotInitialized = fmt.Errorf("program state is not initialized")
