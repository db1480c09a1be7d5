package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cnchist/internal/cli"
	"github.com/theirongolddev/cnchist/internal/config"
	"github.com/theirongolddev/cnchist/internal/timeutil"
	"github.com/theirongolddev/cnchist/internal/tui/components"
	"github.com/theirongolddev/cnchist/internal/tui/theme"
)

const (
	settingsFieldLogPath = iota
	settingsFieldAdjustHours
	settingsFieldAdjustMinutes
	settingsFieldTheme
	settingsFieldAutoRefresh
	settingsFieldMorningBreak
	settingsFieldLunchBreak
	settingsFieldCount
)

// settingsState tracks the settings tab: the list cursor, the edit box
// when a field is open, and the outcome of the last save.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool
	saveErr error
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()

	type seed struct{ placeholder, value string }
	seeds := map[int]seed{
		settingsFieldLogPath:       {`C:\WinCNC\WINCNC.CSV (empty searches defaults)`, cfg.Log.Path},
		settingsFieldAdjustHours:   {"0", strconv.Itoa(cfg.Clock.AdjustHours)},
		settingsFieldAdjustMinutes: {"0", strconv.Itoa(cfg.Clock.AdjustMinutes)},
		settingsFieldTheme:         {strings.Join(theme.Names(), ", "), cfg.Appearance.Theme},
		settingsFieldAutoRefresh:   {"true or false", strconv.FormatBool(a.autoRefresh)},
		settingsFieldMorningBreak:  {"09:30-09:45 (empty clears)", cfg.Breaks.Morning},
		settingsFieldLunchBreak:    {"12:00-12:30 (empty clears)", cfg.Breaks.Lunch},
	}

	ti := newSettingsInput()
	if s, ok := seeds[a.settings.cursor]; ok {
		ti.Placeholder = s.placeholder
		ti.SetValue(s.value)
	}
	ti.Focus()

	a.settings.editing = true
	a.settings.saved = false
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		cmd := a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, cmd
	case "esc":
		a.settings.editing = false
		return a, nil
	default:
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}
}

// settingsSave applies the edited field to config and to the live app.
// Changing the log path or clock correction triggers a reparse so the
// viewer never shows data from stale settings.
func (a *App) settingsSave() tea.Cmd {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())

	var cmds []tea.Cmd

	switch a.settings.cursor {
	case settingsFieldLogPath:
		cfg.Log.Path = val
		cmds = append(cmds, a.retargetCmds(cfg)...)
	case settingsFieldAdjustHours:
		if h, err := strconv.Atoi(val); err == nil {
			cfg.Clock.AdjustHours = h
		}
	case settingsFieldAdjustMinutes:
		if m, err := strconv.Atoi(val); err == nil {
			cfg.Clock.AdjustMinutes = m
		}
	case settingsFieldTheme:
		if theme.SetActive(val) {
			cfg.Appearance.Theme = val
		}
	case settingsFieldAutoRefresh:
		cfg.TUI.AutoRefresh = val == "true" || val == "1" || val == "yes"
		a.autoRefresh = cfg.TUI.AutoRefresh
	case settingsFieldMorningBreak:
		if val == "" {
			cfg.Breaks.Morning = ""
		} else if _, err := timeutil.ParseWindow(val); err == nil {
			cfg.Breaks.Morning = val
		}
	case settingsFieldLunchBreak:
		if val == "" {
			cfg.Breaks.Lunch = ""
		} else if _, err := timeutil.ParseWindow(val); err == nil {
			cfg.Breaks.Lunch = val
		}
	}

	// A changed correction invalidates every parsed timestamp
	switch a.settings.cursor {
	case settingsFieldAdjustHours, settingsFieldAdjustMinutes:
		if newAdjust := cfg.Clock.AdjustDuration(); newAdjust != a.adjust {
			a.adjust = newAdjust
			a.refreshing = true
			cmds = append(cmds, refreshDataCmd(a.logPath, a.adjust))
		}
	}

	a.settings.saveErr = config.Save(cfg)
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	surface := lipgloss.NewStyle().Background(t.Surface)
	highlight := lipgloss.NewStyle().Background(t.SurfaceBright)
	label := surface.Foreground(t.TextMuted)
	value := surface.Foreground(t.TextPrimary)

	orNotSet := func(v string) string {
		if v == "" {
			return "(not set)"
		}
		return v
	}

	type field struct{ label, value string }
	fields := []field{
		{"Log Path", orNotSet(cfg.Log.Path)},
		{"Adjust Hours", strconv.Itoa(cfg.Clock.AdjustHours)},
		{"Adjust Minutes", strconv.Itoa(cfg.Clock.AdjustMinutes)},
		{"Theme", cfg.Appearance.Theme},
		{"Auto Refresh", strconv.FormatBool(a.autoRefresh)},
		{"Morning Break", orNotSet(cfg.Breaks.Morning)},
		{"Lunch Break", orNotSet(cfg.Breaks.Lunch)},
	}

	innerW := components.CardInnerWidth(cw)
	rows := make([]string, 0, len(fields))
	for i, f := range fields {
		switch {
		case a.settings.editing && i == a.settings.cursor:
			rows = append(rows, highlight.Foreground(t.AccentBright).Render("▸ ")+
				surface.Foreground(t.AccentBright).Render(fmt.Sprintf("%-16s ", f.label))+
				a.settings.input.View())
		case i == a.settings.cursor:
			row := highlight.Foreground(t.AccentBright).Render("▸ ") +
				highlight.Foreground(t.Accent).Bold(true).Render(fmt.Sprintf("%-16s ", f.label+":")) +
				highlight.Foreground(t.TextPrimary).Bold(true).Render(f.value)
			// Stretch the highlight across the card
			if pad := innerW - lipgloss.Width(row); pad > 0 {
				row += highlight.Render(strings.Repeat(" ", pad))
			}
			rows = append(rows, row)
		default:
			rows = append(rows, surface.Render("  ")+
				label.Render(fmt.Sprintf("%-16s ", f.label+":"))+
				value.Render(f.value))
		}
	}
	formBody := strings.Join(rows, "\n") + "\n"

	switch {
	case a.settings.saveErr != nil:
		formBody += "\n" + surface.Foreground(t.Orange).Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr))
	case a.settings.saved:
		formBody += "\n" + surface.Foreground(t.GreenBright).Render("Saved!")
	}
	formBody += "\n" + label.Render("[j/k] navigate  [Enter] edit  [Esc] cancel")

	info := [][2]string{
		{"Log file", a.logPath},
		{"Sessions loaded", cli.FormatCount(len(a.sessions))},
		{"Parse time", fmt.Sprintf("%.2fs", a.loadTime.Seconds())},
		{"Config file", config.ConfigPath()},
	}
	infoRows := make([]string, 0, len(info))
	for _, kv := range info {
		infoRows = append(infoRows, label.Render(fmt.Sprintf("%-17s", kv[0]+":"))+value.Render(kv[1]))
	}

	return components.ContentCard("Settings", formBody, cw) + "\n" +
		components.ContentCard("General", strings.Join(infoRows, "\n"), cw)
}
