package main

import (
	"github.com/spf13/cobra"

	"github.com/sadopc/clicksnitch/internal/runner"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear the recent-scan list",
		Long: `Print the five most recent scans, most recent first.

--search narrows the list with a fuzzy match on the URL. --clear removes
every stored scan.`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}

	cmd.Flags().Bool("clear", false, "Remove every stored scan")
	cmd.Flags().StringP("search", "s", "", "Fuzzy filter on URL")
	cmd.Flags().StringP("output", "o", runner.FormatText, "Output format: text, json")
	cmd.MarkFlagsMutuallyExclusive("clear", "search")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig(cmd)
	format, _ := cmd.Flags().GetString("output")
	clearAll, _ := cmd.Flags().GetBool("clear")
	query, _ := cmd.Flags().GetString("search")

	log, closeLog := newLogger(cfg, false)
	defer closeLog.Close()

	hist, closeStore, err := openHistory(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore.Close()

	r, err := runner.New(nil, hist, runner.Config{Format: format, Logger: log})
	if err != nil {
		return err
	}

	if clearAll {
		return r.ClearHistory(cmd.OutOrStdout())
	}
	return r.History(cmd.OutOrStdout(), query)
}
