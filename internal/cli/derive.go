package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/ledger/keylet"
)

var deriveHexSeeds bool

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive program addresses",
	Long:  `Derive the program-owned addresses used by the ledger program.`,
}

var deriveStateCmd = &cobra.Command{
	Use:   "state",
	Short: "Derive the program state address",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return deriveWith(cmd, func(d deriver) (keylet.Keylet, error) {
			return keylet.ProgramState(d.program)
		})
	},
}

var deriveUserCmd = &cobra.Command{
	Use:   "user <owner>",
	Short: "Derive the user account address of owner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		return deriveWith(cmd, func(d deriver) (keylet.Keylet, error) {
			return keylet.User(owner, d.program)
		})
	},
}

var deriveVaultCmd = &cobra.Command{
	Use:   "vault <owner> <vault-id>",
	Short: "Derive a vault address",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		id, err := parseUint(args[1], "vault id")
		if err != nil {
			return err
		}
		return deriveWith(cmd, func(d deriver) (keylet.Keylet, error) {
			return keylet.Vault(owner, id, d.program)
		})
	},
}

var deriveMetadataCmd = &cobra.Command{
	Use:   "metadata <account> <type>",
	Short: "Derive a metadata address",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		return deriveWith(cmd, func(d deriver) (keylet.Keylet, error) {
			return keylet.Metadata(acct, args[1], d.program)
		})
	},
}

var deriveSeedsCmd = &cobra.Command{
	Use:   "seeds <seed>...",
	Short: "Hash raw seeds into an address without a bump search",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDeriveSeeds,
}

func init() {
	rootCmd.AddCommand(deriveCmd)
	deriveCmd.AddCommand(deriveStateCmd, deriveUserCmd, deriveVaultCmd, deriveMetadataCmd, deriveSeedsCmd)

	deriveSeedsCmd.Flags().BoolVar(&deriveHexSeeds, "hex", false, "seeds are hex encoded")
}

type deriver struct {
	program common.Address
}

func deriveWith(cmd *cobra.Command, fn func(d deriver) (keylet.Keylet, error)) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	program, err := cfg.ProgramAddress()
	if err != nil {
		return err
	}
	k, err := fn(deriver{program: program})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s bump=%d\n", k.Key, k.Bump)
	return nil
}

func runDeriveSeeds(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	program, err := cfg.ProgramAddress()
	if err != nil {
		return err
	}
	seeds := make([][]byte, len(args))
	for i, a := range args {
		if !deriveHexSeeds {
			seeds[i] = []byte(a)
			continue
		}
		if seeds[i], err = hex.DecodeString(a); err != nil {
			return fmt.Errorf("seed %d: %w", i, err)
		}
	}
	addr, err := keylet.CreateAddress(seeds, program)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), addr)
	return nil
}
