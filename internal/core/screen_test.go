package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	require.Equal(t, 80, s.Width())
	require.Equal(t, 24, s.Height())

	for y := range s.Height() {
		for x := range s.Width() {
			require.Equal(t, ' ', s.Get(x, y), "new screen should be blank at (%d, %d)", x, y)
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	assert.Equal(t, 'X', s.Get(5, 5))

	// Out of bounds writes are dropped
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
	assert.Equal(t, ' ', s.Get(0, 0))
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(1, 1, '#', ColorRed)
	assert.Equal(t, Cell{Rune: '#', Color: ColorRed}, s.GetCell(1, 1))

	s.DrawTextColored(0, 0, "ab", ColorCyan)
	assert.Equal(t, ColorCyan, s.GetCell(1, 0).Color, "every rune should be colored")

	s.Clear()
	assert.Equal(t, Cell{Rune: ' ', Color: ColorDefault}, s.GetCell(1, 1))
}

func TestTierColorCycles(t *testing.T) {
	assert.Equal(t, TierColor(0), TierColor(len(TierColors)))
	assert.Equal(t, ColorDefault, TierColor(-1))
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")
	assert.True(t, strings.HasPrefix(s.Row(1), "  Hello"), "row 1 = %q", s.Row(1))

	s.DrawText(18, 0, "Hello")
	assert.Equal(t, 'H', s.Get(18, 0))
	assert.Equal(t, 'e', s.Get(19, 0), "text should be clipped at the right edge")
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	assert.Equal(t, 'H', s.Get(x, 2))
	assert.Equal(t, 'i', s.Get(x+1, 2))
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorGreen)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			assert.Equal(t, Cell{Rune: '#', Color: ColorGreen}, s.GetCell(x, y), "cell (%d, %d)", x, y)
		}
	}
	assert.Equal(t, ' ', s.Get(1, 1))
	assert.Equal(t, ' ', s.Get(5, 5))
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		assert.Equal(t, want, s.Get(pos[0], pos[1]), "corner at %v", pos)
	}
	for x := 2; x < 5; x++ {
		assert.Equal(t, '─', s.Get(x, 1), "top edge x=%d", x)
		assert.Equal(t, '─', s.Get(x, 4), "bottom edge x=%d", x)
	}
	for y := 2; y < 4; y++ {
		assert.Equal(t, '│', s.Get(1, y), "left edge y=%d", y)
		assert.Equal(t, '│', s.Get(5, y), "right edge y=%d", y)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 2, 5, '-')

	assert.Equal(t, "  -----   ", s.Row(2))
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	require.Equal(t, 8, s.Width())
	require.Equal(t, 4, s.Height())
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"), "row 0 = %q", s.Row(0))

	s.Resize(15, 8)
	assert.True(t, strings.HasPrefix(s.Row(0), "Hello"), "row 0 after enlarging = %q", s.Row(0))
	assert.Len(t, s.Row(7), 15, "new rows should be padded to width")
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	assert.Equal(t, "Test      ", s.Row(2))
	assert.Equal(t, "          ", s.Row(-1))
}
