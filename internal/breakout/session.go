package breakout

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Phase is the session's position in its life cycle.
type Phase int

const (
	PhasePlaying  Phase = iota
	PhaseGameOver       // Out of balls
	PhaseCleared        // Every brick removed (when Settings.ClearEndsGame)
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	case PhaseCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// ParsePhase is the inverse of Phase.String.
func ParsePhase(name string) (Phase, error) {
	for _, p := range []Phase{PhasePlaying, PhaseGameOver, PhaseCleared} {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("breakout: unknown phase %q", name)
}

// Terminal reports whether no further ticks will change the session.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseCleared
}

// TickResult reports what happened during one Session.Tick.
type TickResult struct {
	Tick         uint64
	BrickHit     bool
	Brick        Brick
	Missed       bool
	Phase        Phase
	PhaseChanged bool
}

// Session is the complete mutable state of one game. It is owned by a
// single driver and is not safe for concurrent use.
type Session struct {
	arena    core.Vec2
	settings Settings
	speed    int

	paddle *Paddle
	ball   *Ball
	bricks *BrickField

	score int
	phase Phase
	tick  uint64
}

// NewSession lays out a fresh session for the arena. The ball's serve
// direction is drawn from coin; everything else is deterministic.
func NewSession(arena core.Vec2, settings Settings, coin Coin) (*Session, error) {
	l, err := computeLayout(arena, settings)
	if err != nil {
		return nil, err
	}
	if coin == nil {
		return nil, invalid("coin", "random source is required")
	}

	return &Session{
		arena:    arena,
		settings: settings,
		speed:    l.speed,
		paddle:   newPaddle(l, arena.X),
		ball:     newBall(l.ballStart, coin),
		bricks:   newBrickField(l, settings),
		phase:    PhasePlaying,
	}, nil
}

// New creates a session with default settings and the given miss limit.
func New(arena core.Vec2, maxMisses int, coin Coin) (*Session, error) {
	s := DefaultSettings()
	s.MaxMisses = maxMisses
	return NewSession(arena, s, coin)
}

// NewSeeded creates a session whose randomness comes from seed, so that
// the same seed and inputs always reproduce the same game.
func NewSeeded(arena core.Vec2, settings Settings, seed int64) (*Session, error) {
	return NewSession(arena, settings, rand.New(rand.NewSource(seed))) //#nosec G404 -- gameplay randomness
}

// Arena returns the playable area dimensions.
func (s *Session) Arena() core.Vec2 { return s.arena }

// Settings returns the settings the session was built with.
func (s *Session) Settings() Settings { return s.settings }

// Speed returns how many cells one directional intent moves the paddle.
func (s *Session) Speed() int { return s.speed }

// Paddle returns the paddle.
func (s *Session) Paddle() *Paddle { return s.paddle }

// Ball returns the ball.
func (s *Session) Ball() *Ball { return s.ball }

// Bricks returns the brick field.
func (s *Session) Bricks() *BrickField { return s.bricks }

// Score returns the number of bricks removed.
func (s *Session) Score() int { return s.score }

// Misses returns how many balls were lost.
func (s *Session) Misses() int { return s.paddle.misses }

// MaxMisses returns the miss limit.
func (s *Session) MaxMisses() int { return s.settings.MaxMisses }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// TickCount returns how many ticks have been simulated.
func (s *Session) TickCount() uint64 { return s.tick }

// Tick runs one full frame: the intent is applied to the paddle, the world
// advances, and a lost ball is charged against the miss limit. Ticking a
// terminal session changes nothing.
func (s *Session) Tick(intent int) TickResult {
	if s.phase.Terminal() {
		return TickResult{Tick: s.tick, Phase: s.phase}
	}
	before := s.phase

	s.paddle.SetDirection(intent)
	brick, hit := s.AdvanceTick()
	res := TickResult{
		Tick:     s.tick,
		BrickHit: hit,
		Brick:    brick,
	}

	if !s.phase.Terminal() && s.BallLost() {
		res.Missed = true
		s.HandleMiss()
	}

	res.Phase = s.phase
	res.PhaseChanged = s.phase != before
	return res
}

// AdvanceTick moves the paddle and ball and resolves collisions, in this
// order: paddle move, wall bounce, ball move, paddle bounce, brick hit.
// At most one brick is removed per tick. It reports the removed brick.
// Walls only reflect a ball heading into them and the paddle only reflects
// a falling ball, so a ball sitting on a surface cannot oscillate there.
func (s *Session) AdvanceTick() (Brick, bool) {
	if s.phase.Terminal() {
		return Brick{}, false
	}
	s.tick++

	s.paddle.Advance()
	s.bounceWalls()
	s.ball.Advance()

	pos := s.ball.Position()
	if s.ball.direction.Y > 0 && s.paddle.Surface().Hit(pos) {
		s.ball.BounceVertical()
	}

	brick, hit := s.bricks.FirstHit(pos)
	if !hit {
		return Brick{}, false
	}
	s.bricks.Remove(brick.ID)
	s.ball.BounceVertical()
	s.score++

	if s.bricks.Remaining() == 0 && s.settings.ClearEndsGame {
		s.phase = PhaseCleared
	}
	return brick, true
}

// bounceWalls reflects the ball off the side walls or the ceiling. Only one
// bounce fires per tick, side walls first, and only toward the wall the
// ball is heading into.
func (s *Session) bounceWalls() {
	pos, dir := s.ball.position, s.ball.direction
	switch {
	case pos.X <= 1 && dir.X < 0, pos.X > s.arena.X-1 && dir.X > 0:
		s.ball.BounceHorizontal()
	case pos.Y <= 1 && dir.Y < 0:
		s.ball.BounceVertical()
	}
}

// BallLost reports whether the ball has fallen past the bottom margin.
func (s *Session) BallLost() bool {
	return s.ball.position.Y > s.arena.Y+s.settings.MissMargin
}

// HandleMiss charges a lost ball. Reaching the miss limit ends the game;
// otherwise the ball is served again.
func (s *Session) HandleMiss() Phase {
	if s.phase.Terminal() {
		return s.phase
	}
	s.paddle.misses++
	if s.paddle.misses >= s.settings.MaxMisses {
		s.phase = PhaseGameOver
		return s.phase
	}
	s.ball.Reset()
	return s.phase
}
