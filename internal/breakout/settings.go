package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Default gameplay settings
const (
	DefaultMaxMisses   = 3
	DefaultRows        = 3
	DefaultCols        = 10
	DefaultBrickHeight = 2
	DefaultBrickTop    = 2  // HUD owns rows 0 and 1
	DefaultMissMargin  = 10 // Rows below the arena before a ball counts as lost
)

// Settings are the tunables fixed for a session's lifetime.
type Settings struct {
	MaxMisses     int  `yaml:"max_misses"`
	Rows          int  `yaml:"rows"`
	Cols          int  `yaml:"cols"`
	BrickHeight   int  `yaml:"brick_height"`
	BrickTop      int  `yaml:"brick_top"`
	MissMargin    int  `yaml:"miss_margin"`
	ClearEndsGame bool `yaml:"clear_ends_game"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		MaxMisses:     DefaultMaxMisses,
		Rows:          DefaultRows,
		Cols:          DefaultCols,
		BrickHeight:   DefaultBrickHeight,
		BrickTop:      DefaultBrickTop,
		MissMargin:    DefaultMissMargin,
		ClearEndsGame: true,
	}
}

// layout is the arena geometry derived once at construction.
type layout struct {
	paddleWidth int
	paddleStart core.Vec2
	speed       int
	ballStart   core.Vec2
	brickWidth  int
	fieldOrigin core.Vec2
}

// Validate reports whether the settings are usable on their own.
func (s Settings) Validate() error {
	switch {
	case s.MaxMisses < 1:
		return invalid("max_misses", "must be at least 1, got %d", s.MaxMisses)
	case s.Rows < 1:
		return invalid("rows", "must be at least 1, got %d", s.Rows)
	case s.Cols < 1:
		return invalid("cols", "must be at least 1, got %d", s.Cols)
	case s.BrickHeight < 1:
		return invalid("brick_height", "must be at least 1, got %d", s.BrickHeight)
	case s.BrickTop < 0:
		return invalid("brick_top", "must not be negative, got %d", s.BrickTop)
	case s.MissMargin < 0:
		return invalid("miss_margin", "must not be negative, got %d", s.MissMargin)
	}
	return nil
}

// computeLayout places every entity for the given arena, failing when they
// cannot coexist. Bricks sit above the ball spawn row with at least one
// clear row between them, and the paddle sits below it.
func computeLayout(arena core.Vec2, s Settings) (layout, error) {
	if err := s.Validate(); err != nil {
		return layout{}, err
	}
	if arena.X <= 0 || arena.Y <= 0 {
		return layout{}, tooSmall("arena", "dimension %v must be positive", arena)
	}

	l := layout{
		paddleWidth: max(2, arena.X/10),
		speed:       max(1, arena.X/50),
		ballStart:   core.V(arena.X/2, arena.Y/2),
		brickWidth:  arena.X / (s.Cols + 2),
	}
	l.paddleStart = core.V(arena.X/2, arena.Y-2)

	if l.brickWidth < 1 {
		return layout{}, tooSmall("cols", "%d columns need an arena at least %d wide, got %d",
			s.Cols, s.Cols+2, arena.X)
	}
	if l.paddleStart.Y <= l.ballStart.Y {
		return layout{}, tooSmall("arena", "height %d leaves no room between ball and paddle", arena.Y)
	}
	// The first serve step must land clear of the lowest brick row's band.
	fieldBottom := s.BrickTop + s.Rows*s.BrickHeight
	if fieldBottom+HitTolerance >= l.ballStart.Y {
		return layout{}, tooSmall("rows", "brick field ends at row %d, too close to ball spawn row %d",
			fieldBottom, l.ballStart.Y)
	}

	l.fieldOrigin = core.V((arena.X-s.Cols*l.brickWidth)/2, s.BrickTop)
	return l, nil
}
