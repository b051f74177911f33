package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagLimit  int
	flagPlain  bool
	flagDelete int64
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded games",
	Long: `List recorded games, newest first. In a terminal the list is
interactive and enter replays the selected run; otherwise (or with
--plain) the table is printed.

Examples:
  breakout runs
  breakout runs --limit 5 --plain
  breakout runs --delete 12`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of runs to list")
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the table instead of opening the browser")
	runsCmd.Flags().Int64Var(&flagDelete, "delete", 0, "Delete the run with this id and exit")
}

func runRuns(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		fatal("%v", err)
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("%v", err)
	}
	defer store.Close()

	if flagDelete != 0 {
		if err := store.DeleteRun(flagDelete); err != nil {
			store.Close()
			fatal("%v", err)
		}
		logger.Info("run deleted", "run", flagDelete)
		return
	}

	runs, err := store.ListRuns(flagLimit)
	if err != nil {
		store.Close()
		fatal("%v", err)
	}

	fd := int(os.Stdout.Fd())
	if flagPlain || !term.IsTerminal(fd) {
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			fmt.Println()
			fmt.Println("Play 'breakout play' or 'breakout sim --save' to record one.")
			return
		}
		fmt.Println(headingStyle.Render("Recorded runs"))
		fmt.Println(tui.NewRunsTable(runs, len(runs)).View())
		if best, err := store.BestScore(); err == nil {
			fmt.Printf("\nBest: %d\n", best)
		}
		return
	}

	_, height, err := term.GetSize(fd)
	if err != nil {
		height = 24
	}
	id, err := tui.BrowseRuns(runs, height)
	if err != nil {
		store.Close()
		fatal("%v", err)
	}
	if id == 0 {
		return
	}
	if err := replayRun(store, id, logger); err != nil {
		store.Close()
		fatal("%v", err)
	}
}
