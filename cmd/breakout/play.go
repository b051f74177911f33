package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var flagNoRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start an interactive game sized to the terminal.

Controls:
  Left/A/H    - Move left
  Right/D/L   - Move right
  P/Esc       - Pause
  R           - Restart (after the game ends)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 5 misses, starts at lowest speed
  normal - 3 misses, starts at 30% difficulty
  hard   - 2 misses, starts at 70% difficulty
  fixed  - No progression, stays at the base tick rate

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --config ./my-breakout.toml --log-file /tmp/breakout.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not save the game to the database")
}

func runPlay(cmd *cobra.Command, args []string) {
	// The terminal belongs to the UI, so logs only go to --log-file.
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		fatal("%v", err)
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		fatal("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	// Leave the last line for the help bar.
	arena := cfg.ArenaSize(core.V(width, height-1))

	var store *storage.Store
	if !flagNoRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			// Continue without storage - game still works
			logger.Warn("recording disabled", "error", err)
			store = nil
		}
	}

	runErr := tui.Run(tui.Options{
		Arena:      arena,
		Settings:   cfg.Settings(),
		Seed:       flagSeed,
		FPS:        flagFPS,
		Difficulty: config.NewDifficultyManager(cfg.Difficulty),
		Store:      store,
		Logger:     logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal("%v", runErr)
	}
}
