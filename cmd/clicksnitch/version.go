package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/sadopc/clicksnitch/pkg/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "clicksnitch %s (%s) built %s\n", version.Version, version.Commit, version.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "  go:       %s\n", runtime.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
