// Package config provides YAML (or TOML) game configuration loading and
// difficulty management for breakout.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BreakoutConfig contains all configuration for a breakout session.
type BreakoutConfig struct {
	Arena      ArenaConfig      `yaml:"arena" toml:"arena"`
	Bricks     BricksConfig     `yaml:"bricks" toml:"bricks"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// ArenaConfig fixes the arena size. Zero means "use the terminal size".
type ArenaConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// BricksConfig defines the brick field.
type BricksConfig struct {
	Rows   int `yaml:"rows" toml:"rows"`
	Cols   int `yaml:"cols" toml:"cols"`
	Height int `yaml:"height" toml:"height"`
	Top    int `yaml:"top" toml:"top"` // First brick row, below the HUD
}

// GameplayConfig defines rules of a session.
type GameplayConfig struct {
	MaxMisses     int  `yaml:"max_misses" toml:"max_misses"`
	MissMargin    int  `yaml:"miss_margin" toml:"miss_margin"`
	ClearEndsGame bool `yaml:"clear_ends_game" toml:"clear_ends_game"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Added to the tick rate multiplier at max difficulty
}

// Settings converts the configuration into simulation settings.
func (c BreakoutConfig) Settings() breakout.Settings {
	return breakout.Settings{
		MaxMisses:     c.Gameplay.MaxMisses,
		Rows:          c.Bricks.Rows,
		Cols:          c.Bricks.Cols,
		BrickHeight:   c.Bricks.Height,
		BrickTop:      c.Bricks.Top,
		MissMargin:    c.Gameplay.MissMargin,
		ClearEndsGame: c.Gameplay.ClearEndsGame,
	}
}

// ArenaSize returns the configured arena, filling unset dimensions from
// the fallback (usually the terminal size).
func (c BreakoutConfig) ArenaSize(fallback core.Vec2) core.Vec2 {
	arena := core.V(c.Arena.Width, c.Arena.Height)
	if arena.X <= 0 {
		arena.X = fallback.X
	}
	if arena.Y <= 0 {
		arena.Y = fallback.Y
	}
	return arena
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.MaxMisses = 5
	case DifficultyHard:
		cfg.Gameplay.MaxMisses = 2
	}
}
