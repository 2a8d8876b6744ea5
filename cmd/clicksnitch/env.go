package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sadopc/clicksnitch/internal/classify"
	"github.com/sadopc/clicksnitch/internal/config"
	"github.com/sadopc/clicksnitch/internal/core/history"
	"github.com/sadopc/clicksnitch/internal/core/storage"
	"github.com/sadopc/clicksnitch/internal/logging"
)

// loadConfig reads the config file named by --config (or the default path),
// applies .env and environment overrides, then the command-line flags.
func loadConfig(cmd *cobra.Command) config.Config {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.Path()
	}
	cfg := config.ApplyEnv(config.LoadFile(path), ".env")

	if v, _ := cmd.Flags().GetString("endpoint"); v != "" {
		cfg.Endpoint = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

// newLogger logs to the rotating file for the TUI and to stderr otherwise.
func newLogger(cfg config.Config, tui bool) (*logrus.Logger, io.Closer) {
	lc := logging.Config{Level: cfg.LogLevel}
	if tui {
		lc.File = cfg.LogFile
	} else {
		lc.Console = true
	}
	return logging.New(lc)
}

func newClassifier(cfg config.Config) *classify.Client {
	c := classify.New(cfg.Endpoint)
	c.SetTimeout(cfg.Timeout)
	c.SetProxy(cfg.Proxy, cfg.NoProxy)
	c.SetTLS(cfg.TLS)
	return c
}

// openHistory opens the storage database and the recent-scan list on top of it.
func openHistory(cfg config.Config, log logrus.FieldLogger) (*history.Store, io.Closer, error) {
	kv, err := storage.Open(cfg.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening history: %w", err)
	}
	return history.NewStore(kv, log), kv, nil
}
