package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillRectScalesToPixels(t *testing.T) {
	// 200x150 terminal = 200x300 sub-pixels for an 800x600 logical space.
	c := NewScaledCanvas(200, 150, 800, 600)

	c.FillRect(100, 100, 40, 30, ColorRed)

	assert.Equal(t, ColorRed, c.PixelAt(25, 50))
	assert.Equal(t, ColorRed, c.PixelAt(34, 64))
	assert.Equal(t, ColorNone, c.PixelAt(35, 50))
	assert.Equal(t, ColorNone, c.PixelAt(25, 65))
}

func TestFillRectKeepsTinyShapesVisible(t *testing.T) {
	c := NewScaledCanvas(200, 150, 800, 600)

	c.FillRect(401, 300, 3, 5, ColorSky)

	assert.Equal(t, ColorSky, c.PixelAt(100, 150))
}

func TestFillRectIgnoresEmptyAndOffCanvas(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)

	c.FillRect(1, 1, 0, 5, ColorRed)
	c.FillRect(-500, -500, 20, 20, ColorRed)
	c.FillRect(9.5, 9.5, 5, 5, ColorRed)

	assert.Equal(t, ColorNone, c.PixelAt(1, 1))
	assert.Equal(t, ColorRed, c.PixelAt(9, 9))
}

func TestFillPolygonFillsInterior(t *testing.T) {
	c := NewScaledCanvas(100, 50, 100, 100)

	c.FillPolygon([]Point{{50, 10}, {10, 90}, {90, 90}}, ColorSky)

	assert.Equal(t, ColorSky, c.PixelAt(50, 60))
	assert.Equal(t, ColorNone, c.PixelAt(5, 5))
}

func TestRenderOnlyEmitsChangedCells(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.Dot(1, 0, ColorRed)

	var first bytes.Buffer
	c.Render(&first)
	// Forced first frame repaints all 8 cells.
	moves := strings.Count(first.String(), "\033[1;") + strings.Count(first.String(), "\033[2;")
	require.Equal(t, 8, moves)
	assert.Contains(t, first.String(), string(BlockUpperHalf))

	var second bytes.Buffer
	c.Render(&second)
	assert.Empty(t, second.String())

	c.Clear()
	var third bytes.Buffer
	c.Render(&third)
	assert.Equal(t, "\033[1;2H ", third.String())
}

func TestMarkTextDirtyRepaintsCells(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	var buf bytes.Buffer
	c.Render(&buf)

	c.MarkTextDirty(2, 2, 2)
	buf.Reset()
	c.Render(&buf)

	assert.Equal(t, "\033[2;2H \033[2;3H ", buf.String())
}

func TestCellForCombinesHalves(t *testing.T) {
	assert.Equal(t, BlockFull, cellFor(ColorRed, ColorRed).ch)
	assert.Equal(t, BlockUpperHalf, cellFor(ColorRed, ColorNone).ch)
	assert.Equal(t, BlockLowerHalf, cellFor(ColorNone, ColorSky).ch)

	mixed := cellFor(ColorRed, ColorSky)
	assert.Equal(t, BlockUpperHalf, mixed.ch)
	assert.Equal(t, ColorRed, mixed.fg)
	assert.Equal(t, ColorSky, mixed.bg)
}
