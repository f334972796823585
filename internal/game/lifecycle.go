package game

import (
	"github.com/tomz197/invaders/internal/formation"
	"github.com/tomz197/invaders/internal/object"
)

// Begin starts a new game from the start or game-over screen.
// Score, lives and level are reset and the name is normalized.
func (g *Game) Begin(name string) {
	if g.state != StateStart && g.state != StateGameOver {
		return
	}

	g.playerName = NormalizeName(name)
	g.score = 0
	g.lives = InitialLives
	g.level = 1
	g.lastBonus = 0

	g.logger.Debug("game started", "player", g.playerName)
	g.startLevel()
}

// Restart starts over after a game over, re-reading the player's name.
func (g *Game) Restart(name string) {
	if g.state != StateGameOver {
		return
	}
	g.Begin(name)
}

// Advance moves from the level-complete screen to the next level.
// Score and lives carry over.
func (g *Game) Advance() {
	if g.state != StateLevelComplete {
		return
	}
	g.level++
	g.logger.Debug("advancing", "level", g.level)
	g.startLevel()
}

// TogglePause pauses or resumes a running game. It has no effect in any
// other state.
func (g *Game) TogglePause() {
	if g.state != StatePlaying {
		return
	}

	g.paused = !g.paused
	if g.paused {
		g.music.Stop()
	} else if g.musicEnabled {
		g.music.Start()
	}
	g.logger.Debug("pause toggled", "paused", g.paused)
	g.notify()
}

// ToggleMusic flips the music preference. The preference survives restarts;
// the track only plays while a level is running.
func (g *Game) ToggleMusic() {
	g.musicEnabled = !g.musicEnabled
	if g.musicEnabled && g.state == StatePlaying && !g.paused {
		g.music.Start()
	} else {
		g.music.Stop()
	}
	g.notify()
}

// startLevel lays out the current level and enters play.
func (g *Game) startLevel() {
	g.screen = g.bounds()
	if g.Stars.Screen != g.screen {
		g.Stars = object.NewStarField(object.DefaultStarCount, g.screen, g.starRng)
	}
	g.Player = object.SpawnPlayer(g.screen)
	g.Enemies = formation.Generate(g.level, g.screen)
	g.PlayerShots = nil
	g.EnemyShots = nil
	g.state = StatePlaying
	g.paused = false

	if g.musicEnabled {
		g.music.Start()
	}
	g.logger.Debug("level started", "level", g.level, "layout", formation.LayoutFor(g.level), "enemies", len(g.Enemies))
	g.notify()
}

func (g *Game) levelComplete() {
	if g.state != StatePlaying {
		return
	}

	g.state = StateLevelComplete
	g.paused = false
	g.lastBonus = LevelBonus(g.level)
	g.score += g.lastBonus
	g.music.Stop()

	g.logger.Debug("level complete", "level", g.level, "bonus", g.lastBonus, "score", g.score)
	g.notify()
}

func (g *Game) gameOver() {
	if g.state == StateGameOver {
		return
	}

	g.state = StateGameOver
	g.paused = false
	g.music.Stop()

	g.logger.Info("game over", "player", g.playerName, "score", g.score, "level", g.level)
	g.notify()
}

// Pause pauses a running game and does nothing otherwise. Frontends call it
// when the session is going away.
func (g *Game) Pause() {
	if g.state == StatePlaying && !g.paused {
		g.TogglePause()
	}
}
