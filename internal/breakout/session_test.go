package breakout

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestNewSessionLayout(t *testing.T) {
	s := newTestSession(t, DefaultSettings())

	assert.Equal(t, core.V(20, 18), s.Paddle().Position())
	assert.Equal(t, 4, s.Paddle().Width())
	assert.Equal(t, 1, s.Speed())
	assert.Equal(t, core.V(20, 10), s.Ball().Position())
	assert.Equal(t, core.V(1, -1), s.Ball().Direction())
	assert.Equal(t, 30, s.Bricks().Remaining())
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Misses())
	assert.Equal(t, DefaultMaxMisses, s.MaxMisses())
}

func TestNewSessionErrors(t *testing.T) {
	tests := []struct {
		name   string
		arena  core.Vec2
		mutate func(*Settings)
		want   error
		field  string
	}{
		{"zero width", core.V(0, 20), nil, ErrArenaTooSmall, "arena"},
		{"negative height", core.V(40, -1), nil, ErrArenaTooSmall, "arena"},
		{"too narrow for columns", core.V(11, 20), nil, ErrArenaTooSmall, "cols"},
		{"field reaches spawn row", core.V(40, 19), nil, ErrArenaTooSmall, "rows"},
		{"field touches first serve step", arena40x20, func(s *Settings) { s.Rows = 4 }, ErrArenaTooSmall, "rows"},
		{"no room for paddle", core.V(40, 3), func(s *Settings) { s.Rows = 1; s.BrickTop = 0; s.BrickHeight = 1 }, ErrArenaTooSmall, "arena"},
		{"zero misses", arena40x20, func(s *Settings) { s.MaxMisses = 0 }, ErrInvalidSettings, "max_misses"},
		{"zero rows", arena40x20, func(s *Settings) { s.Rows = 0 }, ErrInvalidSettings, "rows"},
		{"zero brick height", arena40x20, func(s *Settings) { s.BrickHeight = 0 }, ErrInvalidSettings, "brick_height"},
		{"negative margin", arena40x20, func(s *Settings) { s.MissMargin = -1 }, ErrInvalidSettings, "miss_margin"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			settings := DefaultSettings()
			if tc.mutate != nil {
				tc.mutate(&settings)
			}

			s, err := NewSession(tc.arena, settings, fixedCoin(0))
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

func TestNewSessionRequiresCoin(t *testing.T) {
	_, err := NewSession(arena40x20, DefaultSettings(), nil)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestFirstTickScenario(t *testing.T) {
	s := newTestSession(t, DefaultSettings())
	paddle := s.Paddle().Position()

	res := s.Tick(0)

	assert.Equal(t, core.V(21, 9), s.Ball().Position())
	assert.Equal(t, paddle, s.Paddle().Position())
	assert.Equal(t, uint64(1), res.Tick)
	assert.False(t, res.BrickHit)
	assert.Zero(t, s.Score())
	assert.Equal(t, core.V(1, -1), s.Ball().Direction())

	// The ball climbs clear of the spawn area before reaching the lowest
	// row (top 6).
	res = s.Tick(0)
	assert.False(t, res.BrickHit)
	assert.Equal(t, core.V(22, 8), s.Ball().Position())

	res = s.Tick(0)
	require.True(t, res.BrickHit)
	assert.Equal(t, core.V(23, 7), s.Ball().Position())
	assert.Equal(t, BrickID(26), res.Brick.ID)
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, core.V(1, 1), s.Ball().Direction())
}

func TestServeNeverScoresImmediately(t *testing.T) {
	for face := range 2 {
		s, err := NewSession(arena40x20, DefaultSettings(), fixedCoin(face))
		require.NoError(t, err)

		for serve := range DefaultMaxMisses {
			res := s.Tick(0)
			assert.False(t, res.BrickHit, "coin %d serve %d", face, serve)
			assert.Equal(t, -1, s.Ball().Direction().Y, "coin %d serve %d", face, serve)
			assert.Zero(t, s.Score())
			s.HandleMiss()
		}
	}
}

func TestBrickHitScenario(t *testing.T) {
	settings := DefaultSettings()
	settings.Rows = 1
	settings.BrickTop = 3
	s := newTestSession(t, settings)
	require.Equal(t, core.V(5, 3), s.Bricks().Brick(0).Position)

	place(s, core.V(3, 6), core.V(1, -1))

	res := s.Tick(0)
	require.False(t, res.BrickHit)
	assert.Equal(t, core.V(4, 5), s.Ball().Position())
	assert.Zero(t, s.Score())

	res = s.Tick(0)
	require.True(t, res.BrickHit)
	assert.Equal(t, BrickID(0), res.Brick.ID)
	assert.False(t, s.Bricks().Present(0))
	assert.Equal(t, 9, s.Bricks().Remaining())
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, core.V(1, 1), s.Ball().Direction())
}

func TestOneBrickPerTick(t *testing.T) {
	s := newTestSession(t, DefaultSettings())
	// Lands on (6,3), touching row 0 and row 1.
	place(s, core.V(5, 4), core.V(1, -1))

	res := s.Tick(0)
	require.True(t, res.BrickHit)
	assert.Equal(t, BrickID(0), res.Brick.ID)
	assert.True(t, s.Bricks().Present(10))
	assert.Equal(t, 1, s.Score())
}

func TestMissScenario(t *testing.T) {
	s := newTestSession(t, DefaultSettings())
	for b := range s.Bricks().All() {
		s.Bricks().Remove(b.ID)
	}
	settings := s.settings
	settings.ClearEndsGame = false
	s.settings = settings

	place(s, core.V(30, 15), core.V(1, 1))

	var missedAt uint64
	for range 100 {
		res := s.Tick(0)
		if res.Missed {
			missedAt = res.Tick
			break
		}
	}

	require.NotZero(t, missedAt, "ball should have been lost")
	assert.Equal(t, uint64(16), missedAt)
	assert.Equal(t, 1, s.Misses())
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, s.Ball().InitialPosition(), s.Ball().Position())
	assert.Equal(t, core.V(20, 10), s.Ball().Position())
	assert.Equal(t, -1, s.Ball().Direction().Y)
}

func TestGameOverFreezesSession(t *testing.T) {
	s, err := New(arena40x20, 1, fixedCoin(0))
	require.NoError(t, err)

	place(s, core.V(30, 31), core.V(1, 1))
	res := s.Tick(0)

	require.True(t, res.Missed)
	assert.True(t, res.PhaseChanged)
	assert.Equal(t, PhaseGameOver, res.Phase)
	assert.Equal(t, 1, s.Misses())

	before := s.Snapshot()
	assert.Nil(t, before.Ball)

	for range 10 {
		res = s.Tick(1)
		assert.False(t, res.PhaseChanged)
		_, hit := s.AdvanceTick()
		assert.False(t, hit)
	}
	assert.Equal(t, PhaseGameOver, s.HandleMiss())

	after := s.Snapshot()
	assert.Equal(t, before, after)
	assert.Equal(t, 1, s.Misses())
}

func TestHandleMiss(t *testing.T) {
	s := newTestSession(t, DefaultSettings())
	place(s, core.V(7, 33), core.V(-1, 1))

	assert.Equal(t, PhasePlaying, s.HandleMiss())
	assert.Equal(t, 1, s.Misses())
	assert.Equal(t, core.V(20, 10), s.Ball().Position())

	assert.Equal(t, PhasePlaying, s.HandleMiss())
	assert.Equal(t, PhaseGameOver, s.HandleMiss())
	assert.Equal(t, 3, s.Misses())
}

func TestClearEndsGame(t *testing.T) {
	settings := DefaultSettings()
	settings.Rows = 1
	settings.Cols = 1
	s := newTestSession(t, settings)
	require.Equal(t, core.V(13, 2), s.Bricks().Brick(0).Position)

	place(s, core.V(19, 4), core.V(1, -1))
	res := s.Tick(0)

	require.True(t, res.BrickHit)
	assert.True(t, res.PhaseChanged)
	assert.Equal(t, PhaseCleared, s.Phase())
	assert.Nil(t, s.Snapshot().Ball)

	tick := s.TickCount()
	s.Tick(0)
	assert.Equal(t, tick, s.TickCount())
}

func TestClearKeepsPlayingWhenDisabled(t *testing.T) {
	settings := DefaultSettings()
	settings.Rows = 1
	settings.Cols = 1
	settings.ClearEndsGame = false
	s := newTestSession(t, settings)

	place(s, core.V(19, 4), core.V(1, -1))
	res := s.Tick(0)

	require.True(t, res.BrickHit)
	assert.Zero(t, s.Bricks().Remaining())
	assert.Equal(t, PhasePlaying, s.Phase())

	pos := s.Ball().Position()
	s.Tick(0)
	assert.NotEqual(t, pos, s.Ball().Position())
}

func TestWallBounces(t *testing.T) {
	tests := []struct {
		name    string
		pos     core.Vec2
		dir     core.Vec2
		wantPos core.Vec2
		wantDir core.Vec2
	}{
		{"left wall", core.V(1, 12), core.V(-1, -1), core.V(2, 11), core.V(1, -1)},
		{"right wall", core.V(40, 12), core.V(1, 1), core.V(39, 13), core.V(-1, 1)},
		{"ceiling", core.V(2, 1), core.V(1, -1), core.V(3, 2), core.V(1, 1)},
		{"leaving left wall", core.V(1, 12), core.V(1, -1), core.V(2, 11), core.V(1, -1)},
		{"leaving ceiling", core.V(2, 1), core.V(1, 1), core.V(3, 2), core.V(1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, DefaultSettings())
			place(s, tc.pos, tc.dir)

			_, hit := s.AdvanceTick()

			assert.False(t, hit)
			assert.Equal(t, tc.wantPos, s.Ball().Position())
			assert.Equal(t, tc.wantDir, s.Ball().Direction())
		})
	}
}

func TestCornerDoesNotTrapBall(t *testing.T) {
	s := newTestSession(t, DefaultSettings())
	place(s, core.V(1, 1), core.V(-1, -1))

	s.AdvanceTick()
	assert.Equal(t, core.V(2, 0), s.Ball().Position())
	s.AdvanceTick()
	assert.Equal(t, core.V(3, 1), s.Ball().Position())
	s.AdvanceTick()
	assert.Equal(t, core.V(4, 2), s.Ball().Position())
	assert.Equal(t, core.V(1, 1), s.Ball().Direction())
}

func TestPaddleBounce(t *testing.T) {
	s := newTestSession(t, DefaultSettings())
	place(s, core.V(18, 16), core.V(1, 1))

	s.Tick(0)
	assert.Equal(t, core.V(19, 17), s.Ball().Position())
	assert.Equal(t, core.V(1, -1), s.Ball().Direction())

	// Rising through the paddle band does not bounce again.
	place(s, core.V(18, 19), core.V(1, -1))
	s.Tick(0)
	assert.Equal(t, core.V(1, -1), s.Ball().Direction())
}

func TestScoreAndMissesAreMonotonic(t *testing.T) {
	s, err := NewSeeded(arena40x20, DefaultSettings(), 42)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(7))

	score, misses := 0, 0
	for range 5000 {
		s.Tick(rng.Intn(3) - 1)

		require.GreaterOrEqual(t, s.Score(), score)
		require.LessOrEqual(t, s.Score()-score, 1, "at most one brick per tick")
		require.GreaterOrEqual(t, s.Misses(), misses)
		require.LessOrEqual(t, s.Misses(), s.MaxMisses())
		require.GreaterOrEqual(t, s.Paddle().Left(), 0)
		require.LessOrEqual(t, s.Paddle().Right(), s.Arena().X)
		require.Equal(t, s.Bricks().Len()-s.Bricks().Remaining(), s.Score())

		score, misses = s.Score(), s.Misses()
	}
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "playing", PhasePlaying.String())
	assert.Equal(t, "gameover", PhaseGameOver.String())
	assert.Equal(t, "cleared", PhaseCleared.String())
	assert.Equal(t, "unknown", Phase(9).String())
	assert.False(t, PhasePlaying.Terminal())
	assert.True(t, PhaseGameOver.Terminal())
}

func TestParsePhase(t *testing.T) {
	for _, p := range []Phase{PhasePlaying, PhaseGameOver, PhaseCleared} {
		got, err := ParsePhase(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePhase("paused")
	assert.Error(t, err)
}
