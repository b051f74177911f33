package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagTicks  int
	flagWidth  int
	flagHeight int
	flagSave   bool
	flagRender bool
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game",
	Long: `Play a game without a terminal UI: the paddle follows the ball.
The game stops when it ends or after --ticks ticks.

Examples:
  breakout sim
  breakout sim --seed 7 --ticks 2000 --render
  breakout sim --width 60 --height 30 --save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum number of ticks")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Arena width when the config leaves it unset")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Arena height when the config leaves it unset")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Save the game to the database")
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Print the final frame")
}

func runSim(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		fatal("%v", err)
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		fatal("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	arena := cfg.ArenaSize(core.V(flagWidth, flagHeight))
	settings := cfg.Settings()

	s, err := breakout.NewSeeded(arena, settings, seed)
	if err != nil {
		fatal("%v", err)
	}
	rec := breakout.NewRecorder(seed, arena, settings)

	logger.Info("simulation started", "arena", fmt.Sprintf("%dx%d", arena.X, arena.Y), "seed", seed)
	for range flagTicks {
		if s.Phase().Terminal() {
			break
		}
		intent := breakout.Autopilot(s)
		rec.Record(intent)
		if res := s.Tick(intent); res.Missed {
			logger.Debug("ball missed", "tick", res.Tick, "misses", s.Misses())
		}
	}
	run := rec.Finish(s)

	fmt.Println(headingStyle.Render("Simulation"))
	printOutcome(run)

	if flagRender {
		screen := core.NewScreen(arena.X, arena.Y)
		breakout.Render(s.Snapshot(), screen)
		fmt.Println()
		fmt.Println(tui.RenderScreen(screen))
	}

	if !flagSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("%v", err)
	}
	defer store.Close()

	id, err := store.SaveRun(run)
	if err != nil {
		fatal("%v", err)
	}
	logger.Info("recording saved", "run", id)
	fmt.Printf("Saved as run %d\n", id)
}

// printOutcome prints the summary lines shared by sim and replay.
func printOutcome(run breakout.Recording) {
	fmt.Printf("  Seed:    %d\n", run.Seed)
	fmt.Printf("  Arena:   %dx%d\n", run.Arena.X, run.Arena.Y)
	fmt.Printf("  Ticks:   %d\n", run.Ticks)
	fmt.Printf("  Score:   %d\n", run.Score)
	fmt.Printf("  Misses:  %d/%d\n", run.Misses, run.Settings.MaxMisses)
	fmt.Printf("  Result:  %s\n", run.Phase)
	fmt.Printf("  Hash:    %016x\n", run.FinalHash)
}
