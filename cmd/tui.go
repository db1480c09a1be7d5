package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/cnchist/internal/tui"
	"github.com/theirongolddev/cnchist/internal/tui/theme"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		RunE:  runTUI,
	})
}

func runTUI(cmd *cobra.Command, _ []string) error {
	lr, err := resolve(cmd)
	if err != nil {
		return err
	}
	theme.SetActive(lr.cfg.Appearance.Theme)

	// Surface highlights and bar backgrounds need a real color profile;
	// under some TERM values lipgloss would otherwise pick plain Ascii.
	if !flagNoColor {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	app := tui.NewApp(lr.path, lr.adjust, lr.cfg)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
