package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Paddle is the player's bat. Position is the center cell of its top row.
type Paddle struct {
	position  core.Vec2
	width     int
	arenaW    int
	direction int // Pending horizontal move, consumed by Advance
	misses    int
}

func newPaddle(l layout, arenaW int) *Paddle {
	return &Paddle{
		position: l.paddleStart,
		width:    l.paddleWidth,
		arenaW:   arenaW,
	}
}

// Position returns the paddle's reference cell.
func (p *Paddle) Position() core.Vec2 {
	return p.position
}

// Width returns the paddle width in cells.
func (p *Paddle) Width() int {
	return p.width
}

// HalfWidth returns the distance from the reference cell to the left edge.
func (p *Paddle) HalfWidth() int {
	return p.width / 2
}

// Direction returns the move pending for this tick.
func (p *Paddle) Direction() int {
	return p.direction
}

// Misses returns how many balls were lost this session.
func (p *Paddle) Misses() int {
	return p.misses
}

// Left returns the x-coordinate of the leftmost paddle cell.
func (p *Paddle) Left() int {
	return p.position.X - p.HalfWidth()
}

// Right returns the x-coordinate just past the rightmost paddle cell.
func (p *Paddle) Right() int {
	return p.Left() + p.width
}

// Rect returns the cells the paddle covers.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.Left(), p.position.Y, p.width, 1)
}

// Surface returns the paddle's top edge.
func (p *Paddle) Surface() Surface {
	return TopEdge(p.Rect())
}

// SetDirection stores the move for this tick. A move that would carry an
// edge past the arena boundary is dropped to zero instead of being shortened.
func (p *Paddle) SetDirection(intent int) {
	left := p.Left() + intent
	switch {
	case intent < 0 && left < 0:
		intent = 0
	case intent > 0 && left+p.width > p.arenaW:
		intent = 0
	}
	p.direction = intent
}

// Advance applies the pending move and clears it.
func (p *Paddle) Advance() {
	p.position.X += p.direction
	p.direction = 0
}
