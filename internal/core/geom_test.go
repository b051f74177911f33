package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V(3, -2)
	b := V(-1, 5)

	assert.Equal(t, V(2, 3), a.Add(b))
	assert.Equal(t, V(4, -7), a.Sub(b))
	assert.Equal(t, V(-3, 2), a.Neg())
	assert.Equal(t, a, a.Neg().Neg())
	assert.Equal(t, V(4, 7), a.AbsDiff(b))
	assert.Equal(t, V(4, 7), b.AbsDiff(a), "AbsDiff should be symmetric")
	assert.Equal(t, "(3,-2)", a.String())
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(15, 15), true},
		{"top-left corner", V(10, 10), true},
		{"bottom-right edge (exclusive)", V(30, 25), false},
		{"outside left", V(5, 15), false},
		{"outside bottom", V(15, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(tc.p), "Contains(%v)", tc.p)
		})
	}

	assert.Equal(t, 30, r.Right())
	assert.Equal(t, 25, r.Bottom())
}

func TestAbsSign(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Zero(t, Abs(0))

	assert.Equal(t, -1, Sign(-7))
	assert.Equal(t, 1, Sign(7))
	assert.Zero(t, Sign(0))
}
