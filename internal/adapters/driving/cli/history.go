package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently opened files",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	viewer, err := requireViewer()
	if err != nil {
		return err
	}

	events, err := viewer.History(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("history failed: %w", err)
	}

	if len(events) == 0 {
		cmd.Println("No files opened yet.")
		return nil
	}

	for i := range events {
		handler := events[i].HandlerID
		if handler == "" {
			handler = "(download)"
		}
		cmd.Printf("%s  %-16s %s\n", events[i].OpenedAt.Local().Format(time.DateTime), handler, events[i].Path)
	}
	return nil
}
