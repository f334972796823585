package game

import (
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
)

// Step advances the world by one frame. It is a no-op unless the game is
// playing and not paused. At most one lifecycle transition happens per step.
func (g *Game) Step(controls object.Controls) {
	if g.state != StatePlaying || g.paused {
		return
	}

	g.screen = g.bounds()
	ctx := object.UpdateContext{
		Controls: controls,
		Screen:   g.screen,
		Spawner:  object.SpawnFunc(g.spawnEnemyShot),
		Rand:     g.rng,
	}

	g.Player.Update(ctx)

	if g.updateEnemies(ctx) {
		g.gameOver()
		return
	}

	g.resolvePlayerShots()

	if g.resolveEnemyShots() {
		g.gameOver()
		return
	}

	if len(g.Enemies) == 0 {
		g.levelComplete()
	}
}

func (g *Game) spawnEnemyShot(p *object.Projectile) {
	g.EnemyShots = append(g.EnemyShots, p)
}

// updateEnemies moves the roster and bounces it off the side walls.
// It reports whether an enemy reached the player's line.
func (g *Game) updateEnemies(ctx object.UpdateContext) (breached bool) {
	hitEdge := false
	for _, e := range g.Enemies {
		e.Update(ctx)
		if e.HitsEdge(g.screen) {
			hitEdge = true
		}
		if e.Breaches(g.Player.Y) {
			return true
		}
	}

	// The whole roster turns together, even if several enemies touched a wall.
	if hitEdge {
		for _, e := range g.Enemies {
			e.ChangeDirection()
		}
	}
	return false
}

// resolvePlayerShots moves player shots and removes the enemies they hit.
// A shot overlapping several enemies destroys the one latest in the roster.
func (g *Game) resolvePlayerShots() {
	g.grid.Reset(g.screen.Width, g.screen.Height)
	g.hit = g.hit[:0]
	for i, e := range g.Enemies {
		g.grid.Insert(e.Bounds(), i)
		g.hit = append(g.hit, false)
	}

	survivors := make([]*object.Projectile, 0, len(g.PlayerShots))
	removed := 0
	for _, shot := range g.PlayerShots {
		shot.Update()

		if target := g.shotTarget(shot.Bounds()); target >= 0 {
			g.hit[target] = true
			removed++
			g.score += PointsPerEnemy
			g.notify()
			continue
		}
		if !shot.IsOffScreen(g.screen) {
			survivors = append(survivors, shot)
		}
	}
	g.PlayerShots = survivors

	if removed == 0 {
		return
	}
	roster := make([]*object.Enemy, 0, len(g.Enemies)-removed)
	for i, e := range g.Enemies {
		if !g.hit[i] {
			roster = append(roster, e)
		}
	}
	g.Enemies = roster
}

// shotTarget returns the roster index of the live enemy with the highest
// index overlapping r, or -1.
func (g *Game) shotTarget(r physics.Rect) int {
	target := -1
	g.grid.QueryRect(r, func(i int) bool {
		if i > target && !g.hit[i] && physics.Overlaps(r, g.Enemies[i].Bounds()) {
			target = i
		}
		return false
	})
	return target
}

// resolveEnemyShots moves enemy shots and applies hits on the player.
// It reports whether the player ran out of lives; shots after the fatal one
// are kept as they were.
func (g *Game) resolveEnemyShots() (dead bool) {
	survivors := make([]*object.Projectile, 0, len(g.EnemyShots))
	for i, shot := range g.EnemyShots {
		shot.Update()

		if physics.Overlaps(shot.Bounds(), g.Player.Bounds()) {
			if g.lives > 0 {
				g.lives--
			}
			g.notify()
			if g.lives <= 0 {
				g.EnemyShots = append(survivors, g.EnemyShots[i+1:]...)
				return true
			}
			continue
		}
		if !shot.IsOffScreen(g.screen) {
			survivors = append(survivors, shot)
		}
	}
	g.EnemyShots = survivors
	return false
}
