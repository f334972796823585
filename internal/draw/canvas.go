package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
//
// Render only emits cells that differ from the previous frame. Text written on
// top of the canvas must be reported with MarkTextDirty so those cells are
// repainted once the text goes away.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x], ColorNone if unset
	prev           []cell  // Last rendered content per terminal cell
	forceRedraw    bool    // Repaint every cell on next Render

	// Scaling from logical to pixel coordinates
	logicalWidth  float64 // Target/logical width
	logicalHeight float64 // Target/logical height
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder // Buffer for batching render output
	scaledBuf       []Point         // Reusable buffer for fillPolygon scaled points
	intersectionBuf []float64       // Reusable buffer for scanline intersections
}

// cell is what a terminal cell displayed after the last Render.
type cell struct {
	ch     rune
	fg, bg Color
	valid  bool
}

// Ensure Canvas satisfies Surface.
var _ Surface = (*Canvas)(nil)

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	// Reallocate if size changed
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.prev = make([]cell, termHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
		c.forceRedraw = true
	}

	// Update scale factors
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.forceRedraw = true
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// ForceRedraw makes the next Render repaint every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	c.forceRedraw = true
}

// MarkTextDirty invalidates n cells starting at the 1-based canvas position
// (col, row) so the next Render repaints them over any overlaid text.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	y := row - 1
	if y < 0 || y >= c.termHeight {
		return
	}
	for x := col - 1; x < col-1+n; x++ {
		if x >= 0 && x < c.termWidth {
			c.prev[y*c.termWidth+x].valid = false
		}
	}
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// PixelAt returns the color of a sub-pixel, or ColorNone outside the canvas.
func (c *Canvas) PixelAt(x, y int) Color {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		return c.pixels[y*c.termWidth+x]
	}
	return ColorNone
}

// Dot sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) Dot(x, y float64, col Color) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	c.setPixel(px, py, col)
}

// FillRect fills a logical rectangle. Anything with a positive size covers
// at least one pixel so small shots stay visible at low resolutions.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Floor(x * c.scaleX))
	y0 := int(math.Floor(y * c.scaleY))
	x1 := int(math.Ceil((x+w)*c.scaleX)) - 1
	y1 := int(math.Ceil((y+h)*c.scaleY)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// drawLine strokes a logical-space segment one pixel wide.
func (c *Canvas) drawLine(p1, p2 Point, col Color) {
	x1, y1 := p1.X*c.scaleX, p1.Y*c.scaleY
	x2, y2 := p2.X*c.scaleX, p2.Y*c.scaleY

	steps := int(math.Ceil(math.Max(math.Abs(x2-x1), math.Abs(y2-y1))))
	if steps == 0 {
		c.setPixel(int(math.Round(x1)), int(math.Round(y1)), col)
		return
	}
	dx := (x2 - x1) / float64(steps)
	dy := (y2 - y1) / float64(steps)
	for i := 0; i <= steps; i++ {
		c.setPixel(int(math.Round(x1+dx*float64(i))), int(math.Round(y1+dy*float64(i))), col)
	}
}

// FillPolygon fills a polygon and draws its outline.
func (c *Canvas) FillPolygon(points []Point, col Color) {
	if len(points) < 3 {
		return
	}

	c.fillPolygon(points, col)

	n := len(points)
	for i := 0; i < n; i++ {
		c.drawLine(points[i], points[(i+1)%n], col)
	}
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point, col Color) {
	// Reuse or grow scaled points buffer
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{
			X: p.X * c.scaleX,
			Y: p.Y * c.scaleY,
		}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				x := p1.X + t*(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}

		// Store back in case it grew
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, col)
			}
		}
	}
}

// cellFor combines the two sub-pixels of a terminal cell into a glyph.
func cellFor(top, bottom Color) cell {
	switch {
	case top == ColorNone && bottom == ColorNone:
		return cell{ch: BlockEmpty, valid: true}
	case top == bottom:
		return cell{ch: BlockFull, fg: top, valid: true}
	case bottom == ColorNone:
		return cell{ch: BlockUpperHalf, fg: top, valid: true}
	case top == ColorNone:
		return cell{ch: BlockLowerHalf, fg: bottom, valid: true}
	default:
		return cell{ch: BlockUpperHalf, fg: top, bg: bottom, valid: true}
	}
}

// Render outputs the cells that changed since the previous frame using
// half-block characters and 256-color escape sequences.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	curFg, curBg := ColorNone, ColorNone
	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			next := cellFor(c.pixels[topOffset+col], c.pixels[bottomOffset+col])
			idx := row*c.termWidth + col
			if !c.forceRedraw && c.prev[idx] == next {
				continue
			}
			c.prev[idx] = next

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, col+1+c.offsetCol)
			if next.fg != curFg {
				c.renderBuf.WriteString(next.fg.Foreground())
				curFg = next.fg
			}
			if next.bg != curBg {
				c.renderBuf.WriteString(next.bg.Background())
				curBg = next.bg
			}
			c.renderBuf.WriteRune(next.ch)
		}
	}
	if curFg != ColorNone || curBg != ColorNone {
		c.renderBuf.WriteString(ColorReset)
	}
	c.forceRedraw = false

	_ = writeChunked(w, c.renderBuf.String())
}

// RenderBorder frames the render area when the terminal is larger than the
// max render size. Each side is drawn only if there is room for it.
func (c *Canvas) RenderBorder(w io.Writer) {
	sides := c.offsetCol >= 1
	ends := c.offsetRow >= 1
	if !sides && !ends {
		return
	}

	var buf strings.Builder
	at := func(row, col int, s string) {
		fmt.Fprintf(&buf, "\033[%d;%dH%s", row, col, s)
	}
	bar := strings.Repeat("─", c.termWidth)
	top, bottom := c.offsetRow, c.offsetRow+c.termHeight+1
	left, right := c.offsetCol, c.offsetCol+c.termWidth+1

	switch {
	case ends && sides:
		at(top, left, "┌"+bar+"┐")
		at(bottom, left, "└"+bar+"┘")
	case ends:
		at(top, left+1, bar)
		at(bottom, left+1, bar)
	}
	if sides {
		for row := top + 1; row < bottom; row++ {
			at(row, left, "│")
			at(row, right, "│")
		}
	}

	_ = writeChunked(w, buf.String())
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}
