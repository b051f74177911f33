package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// BrickView is a present brick as the renderer sees it.
type BrickView struct {
	ID   BrickID
	Row  int // Color tier
	Rect core.Rect
}

// Snapshot is a read-only copy of everything a renderer or HUD needs.
// It shares no memory with the session.
type Snapshot struct {
	Tick      uint64
	Arena     core.Vec2
	Paddle    core.Rect
	Ball      *core.Vec2 // nil once the session is over
	BallDir   core.Vec2
	Bricks    []BrickView
	Score     int
	Misses    int
	MaxMisses int
	Phase     Phase
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		Arena:     s.arena,
		Paddle:    s.paddle.Rect(),
		BallDir:   s.ball.Direction(),
		Bricks:    make([]BrickView, 0, s.bricks.Remaining()),
		Score:     s.score,
		Misses:    s.paddle.misses,
		MaxMisses: s.settings.MaxMisses,
		Phase:     s.phase,
	}
	if !s.phase.Terminal() {
		pos := s.ball.Position()
		snap.Ball = &pos
	}
	for b := range s.bricks.All() {
		snap.Bricks = append(snap.Bricks, BrickView{ID: b.ID, Row: b.Row, Rect: b.Rect()})
	}
	return snap
}

// Hash folds the snapshot into a single value for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	mix(snap.Paddle.X)
	mix(snap.Paddle.Y)
	mix(snap.Paddle.W)
	if snap.Ball != nil {
		mix(snap.Ball.X)
		mix(snap.Ball.Y)
	} else {
		mix(-1)
	}
	mix(snap.BallDir.X)
	mix(snap.BallDir.Y)
	mix(snap.Score)
	mix(snap.Misses)
	mix(int(snap.Phase))
	mix(len(snap.Bricks))
	for _, b := range snap.Bricks {
		mix(int(b.ID))
	}
	return h
}
