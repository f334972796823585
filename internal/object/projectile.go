package object

import (
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/physics"
)

// Projectile dimensions and the player's shot speed.
const (
	ProjectileWidth  = 3.0
	ProjectileHeight = 10.0
	PlayerShotSpeed  = -5.0 // Negative moves up
)

// Projectile is a shot fired by the player or an enemy.
type Projectile struct {
	X, Y          float64 // Collision origin
	Width, Height float64
	Speed         float64    // Vertical pixels per frame, signed
	Color         draw.Color // Rendering only
}

// NewProjectile creates a projectile at (x, y) moving vertically at speed.
func NewProjectile(x, y, speed float64, color draw.Color) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		Width:  ProjectileWidth,
		Height: ProjectileHeight,
		Speed:  speed,
		Color:  color,
	}
}

// Update moves the projectile.
func (p *Projectile) Update() {
	p.Y += p.Speed
}

// IsOffScreen reports whether the projectile has left the top or bottom.
func (p *Projectile) IsOffScreen(screen Screen) bool {
	return p.Y < 0 || p.Y > screen.Height
}

// Bounds returns the projectile's collision box.
func (p *Projectile) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Draw renders the projectile centered on X.
func (p *Projectile) Draw(ctx DrawContext) error {
	ctx.Surface.FillRect(p.X-p.Width/2, p.Y, p.Width, p.Height, p.Color)
	return nil
}
