package breakout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// fixedCoin always lands on the same face.
type fixedCoin int

func (c fixedCoin) Intn(int) int { return int(c) }

var arena40x20 = core.V(40, 20)

func newTestSession(t *testing.T, settings Settings) *Session {
	t.Helper()
	s, err := NewSession(arena40x20, settings, fixedCoin(1))
	require.NoError(t, err)
	return s
}

// place puts the ball at pos heading in dir.
func place(s *Session, pos, dir core.Vec2) {
	s.ball.position = pos
	s.ball.direction = dir
}
