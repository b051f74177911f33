package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestHits(t *testing.T) {
	start, end := core.V(4, 3), core.V(8, 3)

	tests := []struct {
		name string
		pos  core.Vec2
		want bool
	}{
		{"on the row", core.V(6, 3), true},
		{"one row above", core.V(6, 2), true},
		{"one row below", core.V(6, 4), true},
		{"two rows below", core.V(6, 5), false},
		{"first inner cell", core.V(5, 3), true},
		{"last inner cell", core.V(7, 3), true},
		{"on start post", core.V(4, 3), false},
		{"on end post", core.V(8, 3), false},
		{"outside", core.V(12, 3), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Hits(tc.pos, start, end, AxisHorizontal))
			assert.Equal(t, tc.want, Hits(tc.pos, end, start, AxisHorizontal), "endpoint order should not matter")
		})
	}
}

func TestHitsVerticalAxis(t *testing.T) {
	start, end := core.V(10, 2), core.V(10, 6)

	assert.True(t, Hits(core.V(10, 4), start, end, AxisVertical))
	assert.True(t, Hits(core.V(11, 3), start, end, AxisVertical))
	assert.False(t, Hits(core.V(12, 3), start, end, AxisVertical))
	assert.False(t, Hits(core.V(10, 6), start, end, AxisVertical))
}

func TestTopEdgeCoversRectCells(t *testing.T) {
	r := core.NewRect(5, 3, 3, 2)
	s := TopEdge(r)

	for x := r.X; x < r.Right(); x++ {
		assert.True(t, s.Hit(core.V(x, r.Y)), "cell x=%d should be on the edge", x)
	}
	assert.False(t, s.Hit(core.V(r.X-1, r.Y)))
	assert.False(t, s.Hit(core.V(r.Right(), r.Y)))
}
