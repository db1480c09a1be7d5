package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cnchist/internal/cli"
	"github.com/theirongolddev/cnchist/internal/pipeline"
	"github.com/theirongolddev/cnchist/internal/timeutil"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Whole-history summary",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	lr, err := load(cmd)
	if err != nil {
		return err
	}

	stats := pipeline.Summarize(lr.history)
	if stats.Sessions == 0 {
		fmt.Println("\n  No sessions in the log.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MACHINE HISTORY"))
	fmt.Println()

	rows := [][]string{
		{"Sessions", cli.FormatCount(stats.Sessions)},
		{"Open Sessions", cli.FormatCount(stats.OpenSessions)},
		{"Active Days", cli.FormatCount(stats.ActiveDays)},
		{"---"},
		{"Commands", cli.FormatCount(stats.Commands)},
		{"System Commands", cli.FormatCount(stats.PlainCommands)},
		{"Command Files", cli.FormatCount(stats.CommandFiles)},
		{"User Files", cli.FormatCount(stats.UserFiles)},
		{"---"},
		{"Errors", cli.FormatCount(stats.Errors)},
		{"Sessions with Errors", cli.FormatCount(stats.ErrorSessions)},
	}

	if stats.Commands > 0 {
		rate := float64(stats.Errors) / float64(stats.Commands)
		rows = append(rows, []string{"Error Rate", cli.FormatPercent(rate)})
	}

	rows = append(rows,
		[]string{"---"},
		[]string{"Run Time", timeutil.FormatShort(stats.TotalRun)},
		[]string{"Session Time", timeutil.FormatShort(stats.TotalActual)},
		[]string{"Time Between", timeutil.FormatShort(stats.TotalBetween)},
		[]string{"Average Run Time", timeutil.FormatShort(stats.AvgRun)},
		[]string{"---"},
		[]string{"First Activity", cli.FormatTime(stats.FirstStart)},
		[]string{"Last Activity", cli.FormatTime(stats.LastEnd)},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	return nil
}
