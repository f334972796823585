package object

import (
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/physics"
)

// Player ship dimensions and movement.
const (
	PlayerWidth        = 50.0
	PlayerHeight       = 30.0
	PlayerSpeed        = 5.0  // Pixels per frame
	playerBottomMargin = 50.0 // Distance from the bottom edge to the ship's top
)

// Player is the ship at the bottom of the screen.
type Player struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64
}

// NewPlayer creates a player ship with its top-left corner at (x, y).
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Width:  PlayerWidth,
		Height: PlayerHeight,
		Speed:  PlayerSpeed,
	}
}

// SpawnPlayer creates a player centered horizontally near the bottom of screen.
func SpawnPlayer(screen Screen) *Player {
	return NewPlayer(screen.Width/2-PlayerWidth/2, screen.Height-playerBottomMargin)
}

// Update moves the ship. Left and right are applied independently, so holding
// both moves left then right and ends where it started (unless an edge stops
// one of them).
func (p *Player) Update(ctx UpdateContext) {
	if ctx.Controls.Left && p.X > 0 {
		p.X -= p.Speed
	}
	if ctx.Controls.Right && p.X < ctx.Screen.Width-p.Width {
		p.X += p.Speed
	}
}

// Shoot fires a projectile upward from the center of the ship's top edge.
func (p *Player) Shoot(spawner Spawner) {
	if spawner == nil {
		return
	}
	spawner.Spawn(NewProjectile(p.X+p.Width/2, p.Y, PlayerShotSpeed, draw.ColorSky))
}

// Bounds returns the ship's bounding box.
func (p *Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Draw renders the ship as a triangle pointing up.
func (p *Player) Draw(ctx DrawContext) error {
	ctx.Surface.FillPolygon([]draw.Point{
		{X: p.X + p.Width/2, Y: p.Y},
		{X: p.X, Y: p.Y + p.Height},
		{X: p.X + p.Width, Y: p.Y + p.Height},
	}, draw.ColorSky)
	return nil
}
