package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/cnchist/internal/config"
	"github.com/theirongolddev/cnchist/internal/tui/theme"
)

// setupValues collects the first-run form answers. The form binds
// directly to these fields; saveSetupConfig reads them on completion.
type setupValues struct {
	logPath     string
	theme       string
	autoRefresh bool
}

// newSetupForm builds the first-run wizard shown when no config file
// exists yet. sessions and path describe the log that was just parsed.
func newSetupForm(sessions int, path string, vals *setupValues) *huh.Form {
	cfg := loadConfigOrDefault()
	vals.theme = cfg.Appearance.Theme
	vals.autoRefresh = cfg.TUI.AutoRefresh

	themeNames := theme.Names()

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to cnchist!").
				Description(fmt.Sprintf("Found %d sessions in %s.\nA few questions and you're in.", sessions, path)),

			huh.NewInput().
				Title("Activity log").
				Description("Leave empty to keep searching the standard WinCNC locations.").
				Placeholder(path).
				Value(&vals.logPath),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(themeNames...)...).
				Value(&vals.theme),

			huh.NewConfirm().
				Title("Reload automatically when the log changes?").
				Affirmative("Yes").
				Negative("No").
				Value(&vals.autoRefresh),
		),
	).WithShowHelp(true)
}

// saveSetupConfig persists the wizard answers and applies them to the
// running app.
func (a *App) saveSetupConfig() error {
	cfg := loadConfigOrDefault()

	if v := strings.TrimSpace(a.setupVals.logPath); v != "" {
		cfg.Log.Path = v
	}
	if a.setupVals.theme != "" {
		cfg.Appearance.Theme = a.setupVals.theme
		theme.SetActive(a.setupVals.theme)
	}
	cfg.TUI.AutoRefresh = a.setupVals.autoRefresh
	a.autoRefresh = a.setupVals.autoRefresh

	return config.Save(cfg)
}
