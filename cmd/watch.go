package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/cnchist/internal/model"
	"github.com/theirongolddev/cnchist/internal/pipeline"
	"github.com/theirongolddev/cnchist/internal/source"
	"github.com/theirongolddev/cnchist/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the log and report activity as it lands",
	Long: `Follow the log and report activity as it lands.

Reparses the file whenever the controller writes to it and prints a
one-line summary per change. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	lr, err := load(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(lr.path, logger)
	if err != nil {
		return err
	}
	defer w.Close()
	go w.Run(ctx)

	fmt.Printf("  Watching %s (Ctrl-C to stop)\n", lr.path)
	fmt.Printf("  %s  %s\n", time.Now().Format("15:04:05"), activityLine(lr.history))

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\n  Stopped.")
			return nil
		case at := <-w.Events():
			h, err := source.ParseFile(lr.path, source.WithClockAdjust(lr.adjust))
			if err != nil {
				logger.Warn("reparse failed", zap.Error(err))
				fmt.Printf("  %s  reparse failed: %v\n", at.Format("15:04:05"), err)
				continue
			}
			fmt.Printf("  %s  %s\n", at.Format("15:04:05"), activityLine(h))
		}
	}
}

func activityLine(h model.History) string {
	stats := pipeline.Summarize(h)
	line := fmt.Sprintf("%d sessions, %d commands, %d errors",
		stats.Sessions, stats.Commands, stats.Errors)
	if stats.OpenSessions > 0 {
		last := h[len(h)-1]
		if n := len(last.Commands); n > 0 {
			line += fmt.Sprintf("; open session, last ran %s", last.Commands[n-1].Filename)
		} else {
			line += "; session open"
		}
	}
	return line
}
