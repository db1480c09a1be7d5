package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/cnchist/internal/cli"
	"github.com/theirongolddev/cnchist/internal/model"
	"github.com/theirongolddev/cnchist/internal/timeutil"
)

var showFull bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one session or command in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showFull, "full", false, "include axis, output, input, and tool-changer state")
}

func runShow(cmd *cobra.Command, args []string) error {
	lr, err := load(cmd)
	if err != nil {
		return err
	}

	id, err := model.ParseID(args[0])
	if err != nil {
		return err
	}

	if s, err := lr.history.Session(id); err == nil {
		printSession(s)
		return nil
	} else if !errors.Is(err, model.ErrNotFound) {
		return err
	}

	c, s, err := lr.history.CommandSession(id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("no session or command with id %s", id)
		}
		return err
	}

	breaks, err := lr.cfg.Breaks.Windows()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("COMMAND " + id.String()))
	fmt.Println()
	fmt.Print(cli.RenderFields(cli.CommandFields(s, c, breaks)))
	if showFull {
		fmt.Println()
		fmt.Print(cli.RenderFields(cli.StateFields(c)))
	}

	return nil
}

func printSession(s *model.Session) {
	fmt.Println()
	fmt.Println(cli.RenderTitle("SESSION " + s.ID.String()))
	fmt.Println()
	fmt.Print(cli.RenderFields(cli.SessionFields(s)))

	if len(s.Commands) == 0 {
		return
	}

	rows := make([][]string, 0, len(s.Commands))
	for i, c := range s.Commands {
		rows = append(rows, []string{
			cli.FormatCount(i + 1),
			c.ID.String(),
			c.Filename,
			truncate(c.Status, 32),
			timeutil.Clock12(c.Start),
			timeutil.FormatShort(c.Duration),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "ID", "File", "Status", "Start", "Run Time"},
		Rows:    rows,
	}))
	fmt.Println("  Pass a command ID to `cnchist show` for its timing and state.")
}
