package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sadopc/clicksnitch/internal/app"
	"github.com/sadopc/clicksnitch/internal/ui/theme"
)

func runTUI(cmd *cobra.Command) error {
	cfg := loadConfig(cmd)
	if v, _ := cmd.Flags().GetString("theme"); v != "" {
		cfg.Theme = v
	}
	hide, _ := cmd.Flags().GetBool("no-dashboard")

	log, closeLog := newLogger(cfg, true)
	defer closeLog.Close()

	hist, closeStore, err := openHistory(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore.Close()

	log.WithField("endpoint", cfg.Endpoint).Info("starting tui")

	model := app.New(app.Deps{
		Classifier:    newClassifier(cfg),
		History:       hist,
		Endpoint:      cfg.Endpoint,
		Theme:         theme.Resolve(cfg.Theme),
		Logger:        log,
		HideDashboard: hide,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
