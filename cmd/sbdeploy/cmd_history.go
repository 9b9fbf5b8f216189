package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shiftbase/sbdeploy/journal"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past provisioning runs from the local journal",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	jnl, err := journal.Open(journalDir)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() { _ = jnl.Close() }()

	entries, err := jnl.Runs()
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tRUN\tOUTCOME\tWHEN")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Sequence, e.RunID, e.Outcome, e.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return tw.Flush()
}
