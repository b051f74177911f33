package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Coin is the randomness a session draws on. *rand.Rand satisfies it.
type Coin interface {
	Intn(n int) int
}

// Ball moves one cell diagonally per tick.
type Ball struct {
	position  core.Vec2
	direction core.Vec2 // Each component is -1 or +1
	initial   core.Vec2
	coin      Coin
}

func newBall(start core.Vec2, coin Coin) *Ball {
	b := &Ball{initial: start, coin: coin}
	b.Reset()
	return b
}

// Position returns the cell the ball occupies.
func (b *Ball) Position() core.Vec2 {
	return b.position
}

// Direction returns the per-tick step.
func (b *Ball) Direction() core.Vec2 {
	return b.direction
}

// InitialPosition returns the serve point.
func (b *Ball) InitialPosition() core.Vec2 {
	return b.initial
}

// Advance moves the ball one step.
func (b *Ball) Advance() {
	b.position = b.position.Add(b.direction)
}

// BounceHorizontal reverses the x component.
func (b *Ball) BounceHorizontal() {
	b.direction.X = -b.direction.X
}

// BounceVertical reverses the y component.
func (b *Ball) BounceVertical() {
	b.direction.Y = -b.direction.Y
}

// Reset puts the ball back on the serve point heading up, leaning left or
// right with equal probability.
func (b *Ball) Reset() {
	b.position = b.initial
	b.direction = core.V(serveLean(b.coin), -1)
}

func serveLean(coin Coin) int {
	if coin.Intn(2) == 0 {
		return -1
	}
	return 1
}
