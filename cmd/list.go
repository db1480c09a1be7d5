package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/theirongolddev/cnchist/internal/cli"
	"github.com/theirongolddev/cnchist/internal/model"
	"github.com/theirongolddev/cnchist/internal/pipeline"
	"github.com/theirongolddev/cnchist/internal/timeutil"
)

var (
	listLimit  int
	listDay    string
	listErrors bool
	listFiles  bool
	listMatch  string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"sessions"},
	Short:   "List sessions, most recent first",
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVarP(&listLimit, "limit", "l", 20, "max sessions to show (0 = all)")
	listCmd.Flags().StringVar(&listDay, "day", "", "only sessions on this date (MM-DD-YY)")
	listCmd.Flags().BoolVar(&listErrors, "errors", false, "only sessions containing an error")
	listCmd.Flags().BoolVar(&listFiles, "files", false, "only sessions that ran a user file")
	listCmd.Flags().StringVar(&listMatch, "match", "", "only sessions that ran a matching filename")
}

func runList(cmd *cobra.Command, _ []string) error {
	lr, err := load(cmd)
	if err != nil {
		return err
	}

	h := lr.history
	if listDay != "" {
		day, err := time.Parse(timeutil.DateStamp, listDay)
		if err != nil {
			return fmt.Errorf("bad --day %q, want MM-DD-YY", listDay)
		}
		h = pipeline.FilterByDay(h, day)
	}
	if listErrors {
		h = pipeline.FilterErrors(h)
	}
	if listFiles {
		h = pipeline.FilterFiles(h)
	}
	if listMatch != "" {
		h = pipeline.FilterByName(h, listMatch)
	}

	if len(h) == 0 {
		fmt.Println("\n  No matching sessions.")
		return nil
	}

	// History is oldest first; show newest at the top.
	shown := make(model.History, len(h))
	for i, s := range h {
		shown[len(h)-1-i] = s
	}
	if listLimit > 0 && len(shown) > listLimit {
		shown = shown[:listLimit]
	}

	statusW := 32
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		statusW = w - 88
	}
	if statusW < 12 {
		statusW = 12
	}

	rows := make([][]string, 0, len(shown))
	for _, s := range shown {
		end := "open"
		if e, ok := s.End(); ok {
			end = timeutil.Clock12(e)
		}
		rows = append(rows, []string{
			s.ID.String(),
			cli.FormatTime(startOf(s)),
			end,
			cli.FormatCount(len(s.Commands)),
			cli.FormatCount(s.Totals.CommandFiles + s.Totals.UserFiles),
			timeutil.FormatShort(s.Totals.Total),
			truncate(s.LastStatus(), statusW),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SESSIONS"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Start", "End", "Cmds", "Files", "Run Time", "Last Status"},
		Rows:    rows,
	}))
	if listLimit > 0 && len(h) > listLimit {
		fmt.Printf("  ... and %d more (raise --limit to see them)\n", len(h)-listLimit)
	}

	return nil
}

// startOf returns a displayable start for a session, falling back to the
// first command when the log opened mid-session.
func startOf(s *model.Session) time.Time {
	if !s.StartTime.IsZero() {
		return s.StartTime
	}
	if len(s.Commands) > 0 {
		return s.Commands[0].Start
	}
	return time.Time{}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
