// Package tui provides the interactive Bubble Tea viewer for cnchist.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/theirongolddev/cnchist/internal/config"
	"github.com/theirongolddev/cnchist/internal/model"
	"github.com/theirongolddev/cnchist/internal/pipeline"
	"github.com/theirongolddev/cnchist/internal/source"
	"github.com/theirongolddev/cnchist/internal/tui/components"
	"github.com/theirongolddev/cnchist/internal/tui/theme"
	"github.com/theirongolddev/cnchist/internal/watch"
)

// DataLoadedMsg is sent when the initial parse finishes.
type DataLoadedMsg struct {
	History  model.History
	Err      error
	LoadTime time.Duration
}

// RefreshedMsg is sent when a background reparse completes.
type RefreshedMsg struct {
	History  model.History
	Err      error
	LoadTime time.Duration
}

// FileChangedMsg reports a settled change to the watched log. The
// watcher pointer lets Update drop ticks from a watcher that has been
// replaced since the wait began.
type FileChangedMsg struct {
	From *watch.Watcher
	At   time.Time
}

type watchStartedMsg struct{ w *watch.Watcher }

type watchFailedMsg struct{ err error }

// App is the root Bubble Tea model.
type App struct {
	// Where the data comes from
	logPath string
	adjust  time.Duration

	// Parse result plus the aggregates every tab reads
	history    model.History
	loaded     bool
	loadErr    error
	loadTime   time.Duration
	stats      model.SummaryStats
	dailyStats []model.DailyStats
	hourly     []model.HourlyStats
	sessions   model.History // newest first for the sessions tab

	// Live reload
	autoRefresh bool
	refreshing  bool
	lastRefresh time.Time
	watcher     *watch.Watcher
	watching    bool

	// Chrome
	width     int
	height    int
	activeTab int
	showHelp  bool
	spinner   spinner.Model

	// Per-tab state
	sessState sessionsState
	daily     dailyState
	settings  settingsState

	// First-run setup wizard
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	scrollOverhead    = 10 // header and status bar rows excluded from half-page math
	minHalfPageScroll = 1
	minContentHeight  = 5
)

// loadConfigOrDefault falls back to defaults when the config file is
// missing or unreadable, so the TUI can always start.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model.
func NewApp(logPath string, adjust time.Duration, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3AA99F")).Background(theme.Active.Surface)

	return App{
		logPath:     logPath,
		adjust:      adjust,
		needSetup:   !config.Exists(),
		autoRefresh: cfg.TUI.AutoRefresh,
		spinner:     sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion, // Enable mouse support
		loadDataCmd(a.logPath, a.adjust),
		a.spinner.Tick,
		startWatchCmd(a.logPath),
	)
}

func (a *App) recompute() {
	a.stats = pipeline.Summarize(a.history)
	a.dailyStats = pipeline.AggregateDaily(a.history)
	a.hourly = pipeline.AggregateHourly(a.history)

	// The sessions tab reads newest first; the parse order is oldest
	// first.
	a.sessions = make(model.History, len(a.history))
	for i, s := range a.history {
		a.sessions[len(a.history)-1-i] = s
	}

	// Clamp cursors to the new data bounds
	a.sessState.cursor = clampIndex(a.sessState.cursor, len(a.sessions))
	a.sessState.detailScroll = 0
	a.daily.cursor = clampIndex(a.daily.cursor, len(a.dailyStats))
}

// clampIndex clamps i into the valid index range for a list of n items.
func clampIndex(i, n int) int {
	if i > n-1 {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// moveSessionCursor nudges the sessions cursor by step, resetting the
// detail scroll only when the cursor actually lands somewhere new.
func (a *App) moveSessionCursor(step int) {
	visible := a.getSearchFilteredSessions()
	next := clampIndex(a.sessState.cursor+step, len(visible))
	if next != a.sessState.cursor {
		a.sessState.cursor = next
		a.sessState.detailScroll = 0
	}
}

// halfPage is the ctrl+d / ctrl+u scroll distance for the current
// terminal height.
func (a App) halfPage() int {
	hp := (a.height - scrollOverhead) / 2
	if hp < minHalfPageScroll {
		hp = minHalfPageScroll
	}
	return hp
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		return a.updateMouse(msg)

	case tea.KeyMsg:
		return a.updateKey(msg)

	case DataLoadedMsg:
		a.history = msg.History
		a.loadErr = msg.Err
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.lastRefresh = time.Now()
		a.recompute()

		if a.loadErr == nil && a.needSetup {
			// First run: open the setup wizard over the loaded data
			form := newSetupForm(len(a.history), a.logPath, &a.setupVals)
			if a.width > 0 {
				form = form.WithWidth(a.width).WithHeight(a.height)
			}
			a.setupForm = form
			return a, form.Init()
		}
		return a, nil

	case RefreshedMsg:
		a.refreshing = false
		a.lastRefresh = time.Now()
		if msg.Err == nil {
			a.history = msg.History
			a.loadTime = msg.LoadTime
			a.recompute()
		}
		return a, nil

	case FileChangedMsg:
		if msg.From != a.watcher {
			return a, nil
		}
		cmds := []tea.Cmd{waitForChangeCmd(a.watcher)}
		if a.loaded && a.autoRefresh && !a.refreshing {
			a.refreshing = true
			cmds = append(cmds, refreshDataCmd(a.logPath, a.adjust))
		}
		return a, tea.Batch(cmds...)

	case watchStartedMsg:
		a.watcher = msg.w
		a.watching = true
		return a, waitForChangeCmd(a.watcher)

	case watchFailedMsg:
		a.watching = false
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

// updateMouse handles wheel scrolling on the sessions list and clicks
// on the tab bar. Modal surfaces ignore the mouse.
func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.loaded || a.showHelp || (a.needSetup && a.setupForm != nil) {
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if a.activeTab == 1 && !a.sessState.searching {
			step := 1
			if msg.Button == tea.MouseButtonWheelUp {
				step = -1
			}
			a.moveSessionCursor(step)
		}
	case tea.MouseButtonLeft:
		// The tab bar occupies the first line
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

// updateKey handles keyboard input. Modal surfaces (setup, text
// inputs, the help overlay) claim keys first, then the active tab,
// then the bindings every tab shares.
func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return a, tea.Quit
	}
	if !a.loaded {
		return a, nil
	}

	if a.loadErr != nil {
		switch key {
		case "q":
			return a, tea.Quit
		case "r":
			a.loaded = false
			a.loadErr = nil
			return a, tea.Batch(loadDataCmd(a.logPath, a.adjust), a.spinner.Tick)
		default:
			return a, nil
		}
	}

	switch {
	case a.needSetup && a.setupForm != nil:
		return a.updateSetupForm(msg)
	case a.activeTab == 3 && a.settings.editing:
		return a.updateSettingsInput(msg)
	case a.activeTab == 1 && a.sessState.searching:
		return a.updateSessionsSearch(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch a.activeTab {
	case 1:
		if cmd, ok := a.updateSessionKeys(key); ok {
			return a, cmd
		}
	case 2:
		if a.updateDailyKeys(key) {
			return a, nil
		}
	case 3:
		switch key {
		case "j", "down":
			a.settings.cursor = clampIndex(a.settings.cursor+1, settingsFieldCount)
			return a, nil
		case "k", "up":
			a.settings.cursor = clampIndex(a.settings.cursor-1, settingsFieldCount)
			return a, nil
		case "enter":
			return a.settingsStartEdit()
		}
	}

	return a.updateSharedKeys(key)
}

// updateSessionKeys owns the sessions tab bindings. ok reports whether
// the key was claimed; unclaimed keys fall through to the shared set.
func (a *App) updateSessionKeys(key string) (cmd tea.Cmd, ok bool) {
	switch key {
	case "/":
		a.sessState.searching = true
		a.sessState.searchInput = newSearchInput()
		a.sessState.searchInput.Focus()
		return a.sessState.searchInput.Cursor.BlinkCmd(), true
	case "q":
		if a.sessState.viewMode == sessViewDetail {
			a.sessState.viewMode = sessViewSplit
			return nil, true
		}
		return tea.Quit, true
	case "enter", "f":
		if a.sessState.viewMode == sessViewSplit {
			a.sessState.viewMode = sessViewDetail
		}
		return nil, true
	case "esc":
		// A pending filter clears first, then detail collapses
		switch {
		case a.sessState.searchQuery != "":
			a.sessState.searchQuery = ""
			a.sessState.cursor = 0
			a.sessState.offset = 0
		case a.sessState.viewMode == sessViewDetail:
			a.sessState.viewMode = sessViewSplit
		}
		return nil, true
	case "j", "down":
		a.moveSessionCursor(1)
		return nil, true
	case "k", "up":
		a.moveSessionCursor(-1)
		return nil, true
	case "g":
		a.sessState.cursor = 0
		a.sessState.offset = 0
		a.sessState.detailScroll = 0
		return nil, true
	case "G":
		visible := a.getSearchFilteredSessions()
		a.sessState.cursor = clampIndex(len(visible)-1, len(visible))
		a.sessState.detailScroll = 0
		return nil, true
	case "J":
		a.sessState.detailScroll++
		return nil, true
	case "K":
		if a.sessState.detailScroll > 0 {
			a.sessState.detailScroll--
		}
		return nil, true
	case "ctrl+d":
		a.sessState.detailScroll += a.halfPage()
		return nil, true
	case "ctrl+u":
		a.sessState.detailScroll -= a.halfPage()
		if a.sessState.detailScroll < 0 {
			a.sessState.detailScroll = 0
		}
		return nil, true
	}
	return nil, false
}

// updateDailyKeys owns the daily tab list navigation.
func (a *App) updateDailyKeys(key string) bool {
	switch key {
	case "j", "down":
		a.daily.cursor = clampIndex(a.daily.cursor+1, len(a.dailyStats))
	case "k", "up":
		a.daily.cursor = clampIndex(a.daily.cursor-1, len(a.dailyStats))
	case "g":
		a.daily.cursor = 0
		a.daily.offset = 0
	case "G":
		a.daily.cursor = clampIndex(len(a.dailyStats)-1, len(a.dailyStats))
	default:
		return false
	}
	return true
}

// updateSharedKeys handles the bindings available on every tab.
func (a App) updateSharedKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		return a, tea.Quit
	case "r":
		if !a.refreshing {
			a.refreshing = true
			return a, refreshDataCmd(a.logPath, a.adjust)
		}
	case "R":
		// Keep the toggle across restarts, ignoring save errors
		a.autoRefresh = !a.autoRefresh
		cfg := loadConfigOrDefault()
		cfg.TUI.AutoRefresh = a.autoRefresh
		_ = config.Save(cfg)
	case "o":
		a.activeTab = 0
	case "s":
		a.activeTab = 1
	case "d":
		a.activeTab = 2
	case "x":
		a.activeTab = 3
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		_ = a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		// A path picked during setup replaces the one we started with
		if cmds := a.retargetCmds(loadConfigOrDefault()); len(cmds) > 0 {
			return a, tea.Batch(cmds...)
		}
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	if a.width > maxContentWidth {
		return maxContentWidth
	}
	return a.width
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	switch {
	case a.width == 0:
		return ""
	case a.width < minTerminalWidth:
		return a.viewTooNarrow()
	case !a.loaded:
		return a.viewLoading()
	case a.loadErr != nil:
		return a.viewLoadError()
	case a.needSetup && a.setupForm != nil:
		// First-run setup wizard
		return a.setupForm.View()
	case a.showHelp:
		return a.viewHelp()
	default:
		return a.viewMain()
	}
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  cnchist needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return fitHeight(msg, h)
}

func (a App) viewLoading() string {
	t := theme.Active

	surface := lipgloss.NewStyle().Background(t.Surface)
	muted := surface.Foreground(t.TextMuted)

	body := surface.Foreground(t.AccentBright).Bold(true).Render("◈ cnchist") +
		muted.Render(" · WinCNC Activity History") +
		"\n\n" +
		surface.Foreground(t.Accent).Render(a.spinner.View()) +
		muted.Render(" Parsing "+filepath.Base(a.logPath)+"...")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4).
		Render(body)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewLoadError() string {
	t := theme.Active

	surface := lipgloss.NewStyle().Background(t.Surface)

	body := surface.Foreground(t.Red).Bold(true).Render("Could not read the activity log") +
		"\n\n" +
		surface.Foreground(t.TextPrimary).Render(truncStr(a.loadErr.Error(), 70)) +
		"\n\n" +
		surface.Foreground(t.TextMuted).Render("[r] retry   [q] quit")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Background(t.Surface).
		Padding(1, 3).
		Render(body)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	surface := lipgloss.NewStyle().Background(t.Surface)
	titleStyle := surface.Foreground(t.AccentBright).Bold(true)
	sectionStyle := surface.Foreground(t.Accent).Bold(true)
	keyStyle := surface.Foreground(t.Cyan).Bold(true)
	descStyle := surface.Foreground(t.TextMuted)
	dimStyle := surface.Foreground(t.TextDim)

	sections := []struct {
		name string
		rows [][2]string
	}{
		{"Navigation", [][2]string{
			{"o s d x", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Navigate lists"},
			{"J K", "Scroll detail pane"},
			{"^d ^u", "Half-page scroll"},
		}},
		{"Actions", [][2]string{
			{"/", "Search sessions by filename"},
			{"Enter", "Expand / Confirm"},
			{"Esc", "Back / Cancel"},
			{"r", "Reparse the log"},
			{"R", "Toggle live reload"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.name))
		b.WriteString("\n")
		for _, row := range sec.rows {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", row[0])),
				descStyle.Render(row[1]))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w, h := a.width, a.height
	cw := a.contentWidth()

	header := a.renderHeader(w)
	dataAge := fmt.Sprintf("%.2fs", a.loadTime.Seconds())
	statusBar := components.RenderStatusBar(w, dataAge, a.refreshing, a.autoRefresh, a.watching)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderSessionsContent(a.getSearchFilteredSessions(), cw, contentH)
	case 2:
		content = a.renderDailyTab(cw, contentH)
	case 3:
		content = a.renderSettingsTab(cw)
	}

	// Tab renderers return ragged heights and widths. Square the block
	// off before centering so gaps between cards keep the theme
	// background rather than the terminal default.
	content = fillLinesWithBackground(fitHeight(content, contentH), cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	out := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, out,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// renderHeader draws the tab bar with the source pill under it: log
// file name, clock correction when one is active, and session count.
func (a App) renderHeader(w int) string {
	t := theme.Active

	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	parts := []string{filepath.Base(a.logPath)}
	if a.adjust != 0 {
		parts = append(parts, "clock "+formatAdjust(a.adjust))
	}
	parts = append(parts, fmt.Sprintf("%d sessions", a.stats.Sessions))

	pill := dim.Render(" ")
	for i, p := range parts {
		if i > 0 {
			pill += dim.Render(" │ ")
		}
		pill += accent.Render(p)
	}
	pill += dim.Render(" ")

	row := lipgloss.NewStyle().Background(t.Surface).Width(w)
	return components.RenderTabBar(a.activeTab, w) + "\n" + row.Render(pill)
}

// ─── Helpers ────────────────────────────────────────────────────

// formatAdjust renders a clock correction like "+1h30m" or "-45m".
func formatAdjust(d time.Duration) string {
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%s%dh%dm", sign, h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%s%dh", sign, h)
	}
	return fmt.Sprintf("%s%dm", sign, m)
}

// loadDataCmd parses the activity log in a background goroutine.
func loadDataCmd(path string, adjust time.Duration) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		h, err := source.ParseFile(path, source.WithClockAdjust(adjust))
		return DataLoadedMsg{History: h, Err: err, LoadTime: time.Since(start)}
	}
}

// refreshDataCmd reparses the log after a change (no loading UI).
func refreshDataCmd(path string, adjust time.Duration) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		h, err := source.ParseFile(path, source.WithClockAdjust(adjust))
		return RefreshedMsg{History: h, Err: err, LoadTime: time.Since(start)}
	}
}

// startWatchCmd starts a file system watcher on the log so edits
// trigger a reparse without polling.
func startWatchCmd(path string) tea.Cmd {
	return func() tea.Msg {
		w, err := watch.New(path, zap.NewNop())
		if err != nil {
			return watchFailedMsg{err: err}
		}
		go w.Run(context.Background())
		return watchStartedMsg{w: w}
	}
}

// waitForChangeCmd blocks until the watcher reports a settled change.
func waitForChangeCmd(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		return FileChangedMsg{From: w, At: <-w.Events()}
	}
}

// retargetCmds re-resolves the log location after a config change and
// returns the reload and re-watch commands when it moved.
func (a *App) retargetCmds(cfg config.Config) []tea.Cmd {
	path, err := source.LocateLog(config.LogPath(cfg))
	if err != nil || path == a.logPath {
		return nil
	}
	a.logPath = path
	a.refreshing = true
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
		a.watching = false
	}
	return []tea.Cmd{refreshDataCmd(a.logPath, a.adjust), startWatchCmd(a.logPath)}
}

// chartDateLabels labels a day series for the daily chart: the oldest
// slot and each month change carry the month name, every other slot
// carries the day of month. days arrives newest first, labels read
// oldest to newest.
func chartDateLabels(days []model.DailyStats) []string {
	n := len(days)
	labels := make([]string, n)
	for i := range labels {
		dt := days[n-1-i].Date // walk oldest to newest
		newMonth := i > 0 && i < n-1 && dt.Month() != days[n-i].Date.Month()
		if i == 0 || newMonth {
			labels[i] = dt.Format("Jan")
		} else {
			labels[i] = strconv.Itoa(dt.Day())
		}
	}
	return labels
}

// truncStr caps s at limit runes, ending in an ellipsis when it cuts.
func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) > limit {
		return string(r[:limit-1]) + "…"
	}
	return s
}

// fitHeight trims or pads s to exactly h lines.
func fitHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	switch {
	case len(lines) > h:
		lines = lines[:h]
	case len(lines) < h:
		lines = append(lines, make([]string, h-len(lines))...)
	}
	return strings.Join(lines, "\n")
}

// fillLinesWithBackground pads every line out to width w so the gaps
// between cards pick up the theme background instead of the terminal
// default.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX maps a click column to a tab index, -1 for misses. Hitboxes
// mirror the widths RenderTabBar draws with.
func (a App) tabAtX(x int) int {
	start := 1 // leading space in the bar
	for i, tab := range components.Tabs {
		end := start + components.TabVisualWidth(tab, i == a.activeTab)
		if x >= start && x < end {
			return i
		}
		start = end + 2 // two-column separator
	}
	return -1
}

// ─── Session Search ─────────────────────────────────────────────

// updateSessionsSearch routes keys while the filename filter is open.
func (a App) updateSessionsSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Apply and close
		a.sessState.searchQuery = strings.TrimSpace(a.sessState.searchInput.Value())
		a.sessState.searching = false
		a.sessState.cursor = 0
		a.sessState.offset = 0
		a.sessState.detailScroll = 0
		return a, nil
	case "esc":
		// Close without applying
		a.sessState.searching = false
		return a, nil
	default:
		var cmd tea.Cmd
		a.sessState.searchInput, cmd = a.sessState.searchInput.Update(msg)
		return a, cmd
	}
}

// getSearchFilteredSessions applies the active filename filter.
func (a App) getSearchFilteredSessions() model.History {
	if a.sessState.searchQuery == "" {
		return a.sessions
	}
	return filterSessionsBySearch(a.sessions, a.sessState.searchQuery)
}
