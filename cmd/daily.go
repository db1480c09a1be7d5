package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cnchist/internal/cli"
	"github.com/theirongolddev/cnchist/internal/pipeline"
	"github.com/theirongolddev/cnchist/internal/timeutil"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "daily",
		Short: "Per-day activity table",
		RunE:  runDaily,
	})
}

func runDaily(cmd *cobra.Command, _ []string) error {
	lr, err := load(cmd)
	if err != nil {
		return err
	}

	days := pipeline.AggregateDaily(lr.history)
	if len(days) == 0 {
		fmt.Println("\n  No sessions in the log.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY ACTIVITY  %d days", len(days))))
	fmt.Println()

	tbl := cli.Table{Headers: []string{"Date", "Day", "Sessions", "Cmds", "Files", "Errs", "Run Time"}}
	for _, d := range days {
		tbl.Rows = append(tbl.Rows, []string{
			timeutil.DateShort(d.Date),
			d.Date.Format("Mon"),
			cli.FormatCount(d.Sessions),
			cli.FormatCount(d.Commands),
			cli.FormatCount(d.UserFiles),
			cli.FormatCount(d.Errors),
			timeutil.FormatShort(d.Run),
		})
	}
	fmt.Print(cli.RenderTable(tbl))

	// Days arrive newest first; the sparkline reads left to right in
	// calendar order.
	values := make([]float64, len(days))
	for i, d := range days {
		values[len(days)-1-i] = d.Run.Seconds()
	}
	fmt.Printf("\n  Run time trend: %s\n\n", cli.RenderSparkline(values))

	return nil
}
