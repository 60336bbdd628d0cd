package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var journalLimit int

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show recent journal entries",
	Args:  cobra.NoArgs,
	RunE:  runJournal,
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "number of entries to show")
}

func runJournal(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.journal == nil {
		return fmt.Errorf("journal is disabled")
	}
	entries, err := s.journal.Recent(ctx, journalLimit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintf(out, "%s %s %s %s fee=%s",
			e.CreatedAt.Format(time.RFC3339), e.ID, e.Instruction, e.Result, s.humanize(e.FeeBurned))
		if e.Error != "" {
			fmt.Fprintf(out, " error=%q", e.Error)
		}
		fmt.Fprintf(out, " accounts=%s\n", strings.Join(e.Accounts, ","))
	}
	return nil
}
