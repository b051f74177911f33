// Package core provides the grid primitives shared by the simulation and the
// terminal driver. It has no external dependencies (especially no Bubble Tea)
// so game logic stays pure and testable.
package core

import "fmt"

// Vec2 is an integer point or displacement on the character grid.
// X grows to the right, Y grows downward (screen coordinates).
type Vec2 struct {
	X, Y int
}

// V is a convenience constructor for Vec2.
func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Neg flips the sign of both components.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// AbsDiff returns the per-axis absolute distance to o.
func (v Vec2) AbsDiff(o Vec2) Vec2 {
	return Vec2{X: Abs(v.X - o.X), Y: Abs(v.Y - o.Y)}
}

// String returns a string representation of the vector.
func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Rect represents an axis-aligned block of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point p is inside this rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
