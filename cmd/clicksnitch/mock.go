package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/sadopc/clicksnitch/internal/mock"
)

// NewMockCmd creates the mock command.
func NewMockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Run a local stand-in for the classification backend",
		Long: `Start an HTTP server that answers POST /predict like the real backend.

Verdicts come from a yaml rules file: the first rule whose match string
appears in the URL wins, otherwise the default verdict applies.

  default: legitimate
  rules:
    - match: paypa1
      result: phishing

GET /metrics exposes request and verdict counters.`,
		Example: `  clicksnitch mock
  clicksnitch mock --port 5050 --latency 300ms
  clicksnitch mock --rules rules.yaml --error-rate 0.1`,
		Args: cobra.NoArgs,
		RunE: runMock,
	}

	cmd.Flags().StringP("rules", "r", "", "Rules file (default: built-in rules)")
	cmd.Flags().IntP("port", "p", mock.DefaultPort, "Port to listen on")
	cmd.Flags().Duration("latency", 0, "Artificial response latency (e.g. 200ms)")
	cmd.Flags().Float64("error-rate", 0, "Fraction of requests answered with 500 (0.0-1.0)")
	cmd.Flags().String("cors-origin", "*", "Access-Control-Allow-Origin header value")

	return cmd
}

func runMock(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig(cmd)
	rulesPath, _ := cmd.Flags().GetString("rules")
	port, _ := cmd.Flags().GetInt("port")
	latency, _ := cmd.Flags().GetDuration("latency")
	errorRate, _ := cmd.Flags().GetFloat64("error-rate")
	corsOrigin, _ := cmd.Flags().GetString("cors-origin")

	if errorRate < 0 || errorRate > 1 {
		return fmt.Errorf("error-rate must be between 0.0 and 1.0")
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}

	rules := mock.DefaultRules()
	if rulesPath != "" {
		r, err := mock.LoadRules(rulesPath)
		if err != nil {
			return err
		}
		rules = r
	}

	log, closeLog := newLogger(cfg, false)
	defer closeLog.Close()

	srv := mock.New(rules,
		mock.WithPort(port),
		mock.WithLatency(latency),
		mock.WithErrorRate(errorRate),
		mock.WithCORSOrigin(corsOrigin),
		mock.WithLogger(log),
	)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	fmt.Fprintf(cmd.ErrOrStderr(), "Serving %d rules on http://127.0.0.1:%d (Ctrl+C to stop)\n", len(rules.Rules), port)
	return srv.Start(ctx)
}
