package object

import (
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/physics"
)

// Enemy movement and firing.
const (
	EnemySpeed       = 1.0   // Pixels per frame
	EnemyShootChance = 0.001 // Probability of firing each frame
	EnemyDropStep    = 20.0  // How far the roster drops on every bounce
)

// Enemy is one invader in a formation.
type Enemy struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64 // Horizontal pixels per frame
	Direction     float64 // +1 moving right, -1 moving left
	ShootChance   float64 // Per-frame firing probability
	BulletSpeed   float64 // Downward speed of this enemy's shots
}

// NewEnemy creates an enemy moving right.
func NewEnemy(x, y, width, height, bulletSpeed float64) *Enemy {
	return &Enemy{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Speed:       EnemySpeed,
		Direction:   1,
		ShootChance: EnemyShootChance,
		BulletSpeed: bulletSpeed,
	}
}

// Update moves the enemy horizontally and, with probability ShootChance,
// fires a projectile down from the center of its bottom edge.
// Exactly one random draw is made per call.
func (e *Enemy) Update(ctx UpdateContext) {
	e.X += e.Speed * e.Direction

	if ctx.randFloat() < e.ShootChance && ctx.Spawner != nil {
		ctx.Spawner.Spawn(NewProjectile(e.X+e.Width/2, e.Y+e.Height, e.BulletSpeed, draw.ColorRed))
	}
}

// ChangeDirection reverses horizontal movement and steps down one row.
func (e *Enemy) ChangeDirection() {
	e.Direction = -e.Direction
	e.Y += EnemyDropStep
}

// HitsEdge reports whether the enemy has reached either side of the screen.
func (e *Enemy) HitsEdge(screen Screen) bool {
	return e.X <= 0 || e.X+e.Width >= screen.Width
}

// Breaches reports whether the enemy's bottom edge has reached lineY.
func (e *Enemy) Breaches(lineY float64) bool {
	return e.Y+e.Height >= lineY
}

// Bounds returns the enemy's bounding box.
func (e *Enemy) Bounds() physics.Rect {
	return physics.Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// Draw renders the enemy as a block with two eyes.
func (e *Enemy) Draw(ctx DrawContext) error {
	ctx.Surface.FillRect(e.X, e.Y, e.Width, e.Height, draw.ColorRed)
	ctx.Surface.FillRect(e.X+5, e.Y+5, 8, 8, draw.ColorYellow)
	ctx.Surface.FillRect(e.X+e.Width-13, e.Y+5, 8, 8, draw.ColorYellow)
	return nil
}
