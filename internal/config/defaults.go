package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the hardcoded breakout configuration. It
// matches the embedded defaults/breakout.yaml.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Bricks: BricksConfig{
			Rows:   breakout.DefaultRows,
			Cols:   breakout.DefaultCols,
			Height: breakout.DefaultBrickHeight,
			Top:    breakout.DefaultBrickTop,
		},
		Gameplay: GameplayConfig{
			MaxMisses:     breakout.DefaultMaxMisses,
			MissMargin:    breakout.DefaultMissMargin,
			ClearEndsGame: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
