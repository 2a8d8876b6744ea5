package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sadopc/clicksnitch/pkg/version"
)

// exitCodeError carries a process exit code out of a command without an
// error message of its own.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// NewRootCmd creates the root command. Without a subcommand it starts the TUI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clicksnitch",
		Short: "Check URLs against a phishing classifier",
		Long: `ClickSnitch sends a URL to a phishing classification backend and shows
the verdict along with the five most recent scans.

Run without arguments for the interactive terminal UI, or use the scan
and history subcommands from scripts.`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd)
		},
	}

	cmd.PersistentFlags().String("config", "", "Config file (default ~/.config/clicksnitch/config.yaml)")
	cmd.PersistentFlags().StringP("endpoint", "e", "", "Classification endpoint URL")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().String("theme", "", "Color theme for the TUI")
	cmd.Flags().Bool("no-dashboard", false, "Hide the dashboard list")

	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewMockCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and exits with its status.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Args[1:]))
}

func run(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var ec exitCodeError
	if errors.As(err, &ec) {
		return ec.code
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	return 2
}
