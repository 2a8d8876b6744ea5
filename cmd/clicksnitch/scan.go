package main

import (
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sadopc/clicksnitch/internal/runner"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <url>",
		Short: "Classify one URL and print the verdict",
		Long: `Send a URL to the classification endpoint, record the verdict in the
recent-scan list and print the result.

Exit codes:
  0  legitimate
  1  phishing
  2  backend error or empty URL
  3  unrecognized verdict`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScan,
	}

	cmd.Flags().StringP("output", "o", runner.FormatText, "Output format: text, json")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	format, _ := cmd.Flags().GetString("output")

	log, closeLog := newLogger(cfg, false)
	defer closeLog.Close()

	hist, closeStore, err := openHistory(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore.Close()

	r, err := runner.New(newClassifier(cfg), hist, runner.Config{Format: format, Logger: log})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	code, err := r.Scan(ctx, cmd.OutOrStdout(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	if code != runner.ExitLegitimate {
		return exitCodeError{code: code}
	}
	return nil
}
