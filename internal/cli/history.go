package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ComputerCraftr/SecureMacOS/internal/config"
	"github.com/ComputerCraftr/SecureMacOS/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded install and uninstall runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		settings := config.Load()
		db, err := history.Open(settings.HistoryDB)
		if err != nil {
			return err
		}
		defer db.Close()

		entries, err := db.List(limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No operations recorded")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-10s %s\n", "WHEN", "ACTION", "RESULT")
		for _, entry := range entries {
			result := "ok"
			if !entry.Succeeded {
				result = "failed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-10s %s\n",
				entry.CreatedAt.Format(time.DateTime), entry.Action, result)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of entries to show")
}
