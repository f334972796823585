// Package draw renders game objects to terminals using half-block characters.
package draw

import (
	"fmt"
	"image/color"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a palette entry. The zero value means "nothing drawn".
type Color uint8

const (
	ColorNone   Color = iota
	ColorWhite        // Stars, text
	ColorDim          // Faint stars
	ColorSky          // Player ship and shots (#87ceeb)
	ColorRed          // Enemies and enemy shots
	ColorYellow       // Enemy eyes
)

// ColorReset restores the default terminal colors.
const ColorReset = "\033[0m"

// ColorBrightCyan is used for highlighted HUD text.
const ColorBrightCyan = "\033[96m"

// xterm 256-color indices for each palette entry.
var ansiIndex = [...]int{
	ColorNone:   0,
	ColorWhite:  255,
	ColorDim:    244,
	ColorSky:    117,
	ColorRed:    196,
	ColorYellow: 226,
}

// rgba values for each palette entry, used by non-terminal renderers.
var rgba = [...]color.RGBA{
	ColorNone:   {0, 0, 0, 0},
	ColorWhite:  {255, 255, 255, 255},
	ColorDim:    {128, 128, 128, 255},
	ColorSky:    {0x87, 0xce, 0xeb, 255},
	ColorRed:    {255, 0, 0, 255},
	ColorYellow: {255, 255, 0, 255},
}

// RGBA returns the color as an image/color value.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(rgba) {
		return rgba[ColorWhite]
	}
	return rgba[c]
}

// Foreground returns the ANSI escape sequence selecting c as text color.
func (c Color) Foreground() string {
	if c == ColorNone || int(c) >= len(ansiIndex) {
		return "\033[39m"
	}
	return fmt.Sprintf("\033[38;5;%dm", ansiIndex[c])
}

// Background returns the ANSI escape sequence selecting c as cell background.
func (c Color) Background() string {
	if c == ColorNone || int(c) >= len(ansiIndex) {
		return "\033[49m"
	}
	return fmt.Sprintf("\033[48;5;%dm", ansiIndex[c])
}

// Surface is anything game objects can be drawn onto. Coordinates are in
// logical game units; implementations scale them to their own pixels.
type Surface interface {
	FillRect(x, y, w, h float64, c Color)
	FillPolygon(points []Point, c Color)
	Dot(x, y float64, c Color)
}
