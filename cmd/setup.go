package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cnchist/internal/config"
	"github.com/theirongolddev/cnchist/internal/source"
	"github.com/theirongolddev/cnchist/internal/timeutil"
	"github.com/theirongolddev/cnchist/internal/tui/theme"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "setup",
		Short: "Interactive first-run configuration",
		RunE:  runSetup,
	})
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)
	cfg, _ := config.Load()

	fmt.Println("\n  Welcome to cnchist!")
	fmt.Println()
	if found, err := source.LocateLog(config.LogPath(cfg)); err == nil {
		fmt.Printf("  Found activity log at %s\n\n", found)
	}

	section(1, "Activity log path",
		"Where WinCNC writes WINCNC.CSV. Empty keeps the current setting.")
	if cfg.Log.Path != "" {
		fmt.Printf("     Current: %s\n", cfg.Log.Path)
	}
	if p := readLine(reader, ""); p != "" {
		cfg.Log.Path = p
	}
	fmt.Println()

	section(2, "Controller clock correction",
		"Added to every timestamp when the machine's clock is set wrong.")
	fmt.Printf("     Current: %+dh %+dm\n", cfg.Clock.AdjustHours, cfg.Clock.AdjustMinutes)
	if n, ok := readInt(reader, "Hours "); ok {
		cfg.Clock.AdjustHours = n
	}
	if n, ok := readInt(reader, "Minutes "); ok {
		cfg.Clock.AdjustMinutes = n
	}
	fmt.Println()

	section(3, "Color theme")
	names := theme.Names()
	for i, name := range names {
		tag := ""
		if name == cfg.Appearance.Theme {
			tag = " [current]"
		}
		fmt.Printf("     (%d) %s%s\n", i+1, name, tag)
	}
	if n, ok := readInt(reader, ""); ok && n >= 1 && n <= len(names) {
		cfg.Appearance.Theme = names[n-1]
	}
	fmt.Println()

	section(4, "Shop break windows (HH:MM-HH:MM)",
		"Gaps inside these are labelled as breaks, not idle time.",
		`Empty keeps the current value, "-" clears it.`)
	cfg.Breaks.Morning = readWindow(reader, "Morning", cfg.Breaks.Morning)
	cfg.Breaks.Lunch = readWindow(reader, "Lunch", cfg.Breaks.Lunch)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\n  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `cnchist setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

// section prints a numbered wizard heading with its explanation lines.
func section(n int, title string, lines ...string) {
	fmt.Printf("  %d. %s\n", n, title)
	for _, l := range lines {
		fmt.Println("     " + l)
	}
}

func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Printf("     %s> ", prompt)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// readInt prompts for one integer. ok is false on empty or junk input,
// which keeps the caller's current value.
func readInt(reader *bufio.Reader, prompt string) (int, bool) {
	line := readLine(reader, prompt)
	if line == "" {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Println("     Not a number, keeping current value.")
		return 0, false
	}
	return n, true
}

func readWindow(reader *bufio.Reader, label, current string) string {
	prompt := label + " "
	if current != "" {
		prompt = fmt.Sprintf("%s (current %s) ", label, current)
	}
	line := readLine(reader, prompt)
	switch line {
	case "":
		return current
	case "-":
		return ""
	}
	if _, err := timeutil.ParseWindow(line); err != nil {
		fmt.Printf("     %v, keeping current value.\n", err)
		return current
	}
	return line
}
