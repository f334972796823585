package gui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/invaders/internal/draw"
)

// newWhitePixel returns the texture used for solid-colored triangles.
func newWhitePixel() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(draw.ColorWhite.RGBA())
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// surface draws entities onto an ebiten image in logical coordinates.
type surface struct {
	dst   *ebiten.Image
	white *ebiten.Image
}

var _ draw.Surface = surface{}

func (s surface) FillRect(x, y, w, h float64, c draw.Color) {
	if c == draw.ColorNone {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c.RGBA(), false)
}

func (s surface) Dot(x, y float64, c draw.Color) {
	if c == draw.ColorNone {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), 1, c.RGBA(), true)
}

func (s surface) FillPolygon(points []draw.Point, c draw.Color) {
	if c == draw.ColorNone || len(points) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	rgba := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(rgba.R) / 0xff
		vs[i].ColorG = float32(rgba.G) / 0xff
		vs[i].ColorB = float32(rgba.B) / 0xff
		vs[i].ColorA = float32(rgba.A) / 0xff
	}
	s.dst.DrawTriangles(vs, is, s.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
