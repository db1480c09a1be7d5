// Package cmd implements the cnchist CLI commands.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cnchist/internal/config"
	"github.com/theirongolddev/cnchist/internal/source"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		RunE:  runConfig,
	})
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	status := "using defaults (no config file)"
	if config.Exists() {
		status = "loaded"
	}
	fmt.Printf("  Config file: %s\n  Status: %s\n\n", config.ConfigPath(), status)

	logPath := cfg.Log.Path
	if logPath == "" {
		logPath = "not set (searches " + strings.Join(source.DefaultCandidates, ", ") + ")"
	}
	orNotSet := func(s string) string {
		if s == "" {
			return "not set"
		}
		return s
	}

	sections := []struct {
		head string
		rows []string
	}{
		{"[log]", []string{"Path: " + logPath}},
		{"[clock]", []string{
			fmt.Sprintf("Adjust hours:   %d", cfg.Clock.AdjustHours),
			fmt.Sprintf("Adjust minutes: %d", cfg.Clock.AdjustMinutes),
		}},
		{"[appearance]", []string{"Theme: " + cfg.Appearance.Theme}},
		{"[tui]", []string{fmt.Sprintf("Auto refresh: %v", cfg.TUI.AutoRefresh)}},
		{"[breaks]", []string{
			"Morning: " + orNotSet(cfg.Breaks.Morning),
			"Lunch:   " + orNotSet(cfg.Breaks.Lunch),
		}},
	}
	for _, s := range sections {
		fmt.Println("  " + s.head)
		for _, row := range s.rows {
			fmt.Println("    " + row)
		}
		fmt.Println()
	}

	fmt.Println("  Run `cnchist setup` to reconfigure.")
	return nil
}
