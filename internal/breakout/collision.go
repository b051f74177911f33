package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// HitTolerance is how many cells off a surface's row the ball may be and
// still count as touching it. Motion is one cell per tick, so the ball is
// "at" a surface on the tick it arrives next to it.
const HitTolerance = 1

// Axis is the direction a surface runs along.
type Axis int

const (
	AxisHorizontal Axis = iota // Surface lies on a single row
	AxisVertical               // Surface lies on a single column
)

// Surface is a line segment used as a collision target. Start and End are
// the exclusive fence posts: only cells strictly between them belong to it.
type Surface struct {
	Start core.Vec2
	End   core.Vec2
	Axis  Axis
}

// TopEdge returns the horizontal surface along the top row of r.
func TopEdge(r core.Rect) Surface {
	return Surface{
		Start: core.V(r.X-1, r.Y),
		End:   core.V(r.Right(), r.Y),
		Axis:  AxisHorizontal,
	}
}

// Hit reports whether the ball at pos touches the surface.
func (s Surface) Hit(pos core.Vec2) bool {
	return Hits(pos, s.Start, s.End, s.Axis)
}

// Hits reports whether a ball at pos touches the segment start..end lying
// along axis. The ball's coordinate along the segment must be strictly
// between the endpoints, and its coordinate across the segment must be
// within HitTolerance of the segment's fixed coordinate. Hits has no side
// effects.
func Hits(pos, start, end core.Vec2, axis Axis) bool {
	var along, lo, hi, across int
	switch axis {
	case AxisVertical:
		along, lo, hi = pos.Y, min(start.Y, end.Y), max(start.Y, end.Y)
		across = pos.X - start.X
	default:
		along, lo, hi = pos.X, min(start.X, end.X), max(start.X, end.X)
		across = pos.Y - start.Y
	}
	return lo < along && along < hi && core.Abs(across) <= HitTolerance
}
