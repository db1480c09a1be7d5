package cmd

import (
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/cnchist/internal/config"
	"github.com/theirongolddev/cnchist/internal/logging"
	"github.com/theirongolddev/cnchist/internal/model"
	"github.com/theirongolddev/cnchist/internal/source"
)

var (
	flagFile    string
	flagAdjH    int
	flagAdjM    int
	flagDebug   bool
	flagNoColor bool
)

// logger is rebuilt in the persistent pre-run so --debug takes effect
// before any command body runs.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "cnchist",
	Short: "WinCNC activity history CLI",
	Long:  "Browse and summarize WinCNC machine activity: sessions, runs, files, errors, and idle time.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger = logging.New(flagDebug)
		if flagNoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
	RunE: runStats,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", `Activity log path (default: config, then C:\WinCNC\WINCNC.CSV)`)
	rootCmd.PersistentFlags().IntVar(&flagAdjH, "adjust-hours", 0, "Add this many hours to every log timestamp")
	rootCmd.PersistentFlags().IntVar(&flagAdjM, "adjust-minutes", 0, "Add this many minutes to every log timestamp")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose debug logging to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable color output")
}

// loadResult carries everything the shared parse path produced, so
// commands that re-parse (watch) or need settings (show) have it all.
type loadResult struct {
	history model.History
	cfg     config.Config
	path    string
	adjust  time.Duration
}

// resolve finds the log and settings without reading any data. The TUI
// uses it directly so parsing happens behind its spinner.
func resolve(cmd *cobra.Command) (loadResult, error) {
	var lr loadResult

	cfg, err := config.Load()
	if err != nil {
		return lr, err
	}
	lr.cfg = cfg

	configured := flagFile
	if configured == "" {
		configured = config.LogPath(cfg)
	}
	path, err := source.LocateLog(configured)
	if err != nil {
		return lr, err
	}
	lr.path = path

	// Flags replace the configured correction rather than stack on it.
	lr.adjust = cfg.Clock.AdjustDuration()
	if cmd.Flags().Changed("adjust-hours") || cmd.Flags().Changed("adjust-minutes") {
		lr.adjust = time.Duration(flagAdjH)*time.Hour + time.Duration(flagAdjM)*time.Minute
	}
	return lr, nil
}

// load is the shared parse path used by all commands: resolve the log
// location, apply the clock correction, and read the whole file.
func load(cmd *cobra.Command) (loadResult, error) {
	lr, err := resolve(cmd)
	if err != nil {
		return lr, err
	}

	started := time.Now()
	lr.history, err = source.ParseFile(lr.path, source.WithClockAdjust(lr.adjust))
	if err != nil {
		return lr, err
	}

	logger.Debug("parsed activity log",
		zap.String("path", lr.path),
		zap.Duration("adjust", lr.adjust),
		zap.Int("sessions", len(lr.history)),
		zap.Int("commands", lr.history.Commands()),
		zap.Duration("elapsed", time.Since(started)))

	return lr, nil
}
