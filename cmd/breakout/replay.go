package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// errReplayMismatch means a replay did not end in the recorded state.
var errReplayMismatch = errors.New("replay diverged from the recording")

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a recorded game and check it",
	Long: `Rebuild a recorded game from its seed and settings, feed it every
recorded input, and compare the final state with the stored one.
Exits with status 1 when they differ.

Examples:
  breakout replay 3
  breakout replay 3 --render`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame")
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fatal("invalid run id %q", args[0])
	}

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

	if err := replayRun(store, id, logger); err != nil {
		store.Close()
		fatal("%v", err)
	}
}

// replayRun loads, replays and reports one recording.
func replayRun(store *storage.Store, id int64, logger *log.Logger) error {
	rec, err := store.GetRun(id)
	if err != nil {
		return err
	}

	snap, ok, err := breakout.Verify(rec)
	if err != nil {
		return err
	}

	fmt.Println(headingStyle.Render(fmt.Sprintf("Run %d", id)))
	printOutcome(rec)

	if flagRender {
		screen := core.NewScreen(rec.Arena.X, rec.Arena.Y)
		breakout.Render(snap, screen)
		fmt.Println()
		fmt.Println(tui.RenderScreen(screen))
	}

	if !ok {
		logger.Error("replay mismatch", "run", id,
			"score", snap.Score, "recorded_score", rec.Score,
			"ticks", snap.Tick, "recorded_ticks", rec.Ticks)
		return fmt.Errorf("run %d: %w", id, errReplayMismatch)
	}
	fmt.Println()
	fmt.Println("Replay matches the recording.")
	return nil
}
