package breakout

import (
	"iter"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BrickID indexes a brick in row-major order: row*cols + col.
type BrickID int

// Brick is one cell of the brick field. It carries only geometry; whether
// it still exists is tracked by the field.
type Brick struct {
	ID       BrickID
	Row      int
	Col      int
	Position core.Vec2 // Top-left corner
	Width    int
	Height   int
}

// Rect returns the cells the brick covers.
func (b Brick) Rect() core.Rect {
	return core.NewRect(b.Position.X, b.Position.Y, b.Width, b.Height)
}

// Surface returns the brick's top edge.
func (b Brick) Surface() Surface {
	return TopEdge(b.Rect())
}

// BrickField is a fixed rows x cols arrangement of bricks. Removal flips a
// presence flag, so iteration order never changes during a session.
type BrickField struct {
	rows, cols    int
	width, height int
	origin        core.Vec2
	present       []bool
	remaining     int
}

func newBrickField(l layout, s Settings) *BrickField {
	n := s.Rows * s.Cols
	f := &BrickField{
		rows:      s.Rows,
		cols:      s.Cols,
		width:     l.brickWidth,
		height:    s.BrickHeight,
		origin:    l.fieldOrigin,
		present:   make([]bool, n),
		remaining: n,
	}
	for i := range f.present {
		f.present[i] = true
	}
	return f
}

// Rows returns the number of brick rows.
func (f *BrickField) Rows() int { return f.rows }

// Cols returns the number of brick columns.
func (f *BrickField) Cols() int { return f.cols }

// Len returns the number of slots, present or not.
func (f *BrickField) Len() int { return len(f.present) }

// Remaining returns how many bricks are still present.
func (f *BrickField) Remaining() int { return f.remaining }

// Brick returns the geometry of slot id.
func (f *BrickField) Brick(id BrickID) Brick {
	row, col := int(id)/f.cols, int(id)%f.cols
	return Brick{
		ID:       id,
		Row:      row,
		Col:      col,
		Position: f.origin.Add(core.V(col*f.width, row*f.height)),
		Width:    f.width,
		Height:   f.height,
	}
}

// Present reports whether slot id still holds a brick.
func (f *BrickField) Present(id BrickID) bool {
	return id >= 0 && int(id) < len(f.present) && f.present[id]
}

// Remove takes the brick out of the field. It returns false when the slot
// was already empty.
func (f *BrickField) Remove(id BrickID) bool {
	if !f.Present(id) {
		return false
	}
	f.present[id] = false
	f.remaining--
	return true
}

// All yields present bricks top row first, left to right.
func (f *BrickField) All() iter.Seq[Brick] {
	return func(yield func(Brick) bool) {
		for i, ok := range f.present {
			if !ok {
				continue
			}
			if !yield(f.Brick(BrickID(i))) {
				return
			}
		}
	}
}

// FirstHit returns the first present brick, in iteration order, whose top
// edge the ball touches.
func (f *BrickField) FirstHit(pos core.Vec2) (Brick, bool) {
	for b := range f.All() {
		if b.Surface().Hit(pos) {
			return b, true
		}
	}
	return Brick{}, false
}
