package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// IntentFromInput turns the held directions into a paddle move of the given
// speed. Holding both directions cancels out.
func IntentFromInput(in core.InputFrame, speed int) int {
	intent := 0
	if in.Has(core.ActionLeft) {
		intent -= speed
	}
	if in.Has(core.ActionRight) {
		intent += speed
	}
	return intent
}

// Autopilot returns the intent that steers the paddle under the ball.
func Autopilot(s *Session) int {
	if s.Phase().Terminal() {
		return 0
	}
	gap := s.Ball().Position().X - s.Paddle().Position().X
	if core.Abs(gap) < s.Speed() {
		return 0
	}
	return core.Sign(gap) * s.Speed()
}
