package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cnchist/internal/cli"
	"github.com/theirongolddev/cnchist/internal/pipeline"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "hourly",
		Short: "Command counts by hour of day",
		RunE:  runHourly,
	})
}

func runHourly(cmd *cobra.Command, _ []string) error {
	lr, err := load(cmd)
	if err != nil {
		return err
	}
	if len(lr.history) == 0 {
		fmt.Println("\n  No sessions in the log.")
		return nil
	}

	hours := pipeline.AggregateHourly(lr.history)

	// The peak hour doubles as the bar scale.
	peak := 0
	for i, h := range hours {
		if h.Commands > hours[peak].Commands {
			peak = i
		}
	}
	top := float64(hours[peak].Commands)

	fmt.Println()
	fmt.Println(cli.RenderTitle("ACTIVITY BY HOUR"))
	fmt.Println()
	for _, h := range hours {
		bar := cli.RenderHorizontalBar(float64(h.Commands), top, 40)
		fmt.Printf("  %02d:00 │ %6s │ %s\n", h.Hour, cli.FormatCount(h.Commands), bar)
	}
	fmt.Printf("\n  Peak: %02d:00 (%s commands)\n\n",
		hours[peak].Hour, cli.FormatCount(hours[peak].Commands))

	return nil
}
