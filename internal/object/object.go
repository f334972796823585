// Package object defines the game entities and their per-frame update rules.
// Updating never draws and drawing never changes simulation state, so the
// simulation runs unchanged when nothing is rendered.
package object

import (
	"math/rand"

	"github.com/tomz197/invaders/internal/draw"
)

// Spawner receives projectiles created during an update.
type Spawner interface {
	Spawn(p *Projectile)
}

// Controls is the held movement state for the player this frame.
type Controls struct {
	Left  bool
	Right bool
}

// UpdateContext provides all the information an entity needs during update.
type UpdateContext struct {
	Controls Controls
	Screen   Screen     // Current canvas bounds
	Spawner  Spawner    // Where newly fired projectiles go
	Rand     *rand.Rand // Source for stochastic behaviour; nil uses math/rand
}

// randFloat draws from the context's random source.
func (ctx UpdateContext) randFloat() float64 {
	if ctx.Rand == nil {
		return rand.Float64()
	}
	return ctx.Rand.Float64()
}

// DrawContext provides drawing resources for entities.
type DrawContext struct {
	Surface draw.Surface
}

// Screen represents the canvas bounds in logical units.
type Screen struct {
	Width  float64
	Height float64
}

// Drawable is anything the renderer can draw.
type Drawable interface {
	Draw(ctx DrawContext) error
}

// SpawnFunc adapts a function to the Spawner interface.
type SpawnFunc func(p *Projectile)

// Spawn calls f(p).
func (f SpawnFunc) Spawn(p *Projectile) {
	f(p)
}
