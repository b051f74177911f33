package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration play and sim would use, after the config
search path and --difficulty are applied. The output can be saved to
~/.breakout/breakout.yaml (or .toml) and edited.

Examples:
  breakout config
  breakout config --difficulty hard --format toml > ~/.breakout/breakout.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) {
	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		fatal("%v", err)
	}
	defer closer.Close()

	format := config.Format(flagFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		fatal("unknown format %q (want yaml or toml)", flagFormat)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		fatal("%v", err)
	}

	out, err := config.Marshal(cfg, format)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Print(string(out))
}
