package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cnchist/internal/cli"
	"github.com/theirongolddev/cnchist/internal/store"
)

var exportDB string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Archive the parsed history to a SQLite database",
	Long: `Archive the parsed history to a SQLite database.

The archive holds every session and command with timings and machine
state, ready for ad-hoc SQL. Exporting again replaces the previous
contents, so the database always mirrors the current log.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportDB, "db", store.DefaultPath(), "database file to write")
}

func runExport(cmd *cobra.Command, _ []string) error {
	lr, err := load(cmd)
	if err != nil {
		return err
	}

	a, err := store.Open(exportDB)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Export(lr.history); err != nil {
		return err
	}

	sessions, commands, err := a.Counts()
	if err != nil {
		return err
	}
	fmt.Printf("  Archived %s sessions (%s commands) to %s\n",
		cli.FormatCount(sessions), cli.FormatCount(commands), exportDB)

	return nil
}
