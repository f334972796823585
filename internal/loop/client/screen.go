package client

import (
	"fmt"
	"time"

	"github.com/tomz197/invaders/internal/game"
	"github.com/tomz197/invaders/internal/loop/config"
)

var titleArt = []string{
	` ___ _  ___   ___   ___  ___ ___  ___ `,
	`|_ _| \| \ \ / /_\ |   \| __| _ \/ __|`,
	` | || .' |\ V / _ \| |) | _||   /\__ \`,
	`|___|_|\_| \_/_/ \_\___/|___|_|_\|___/`,
}

var gameOverArt = []string{
	`  ___   _   __  __ ___    _____   _____ ___ `,
	` / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \`,
	`| (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   /`,
	` \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\`,
}

// currentScreen returns the overlay to show this frame.
func (c *Client) currentScreen() screen {
	switch {
	case c.state.shuttingDown:
		return screenShutdown
	case c.state.isInactive:
		return screenInactive
	}

	switch c.game.State() {
	case game.StatePlaying:
		return screenPlaying
	case game.StatePaused:
		return screenPaused
	case game.StateLevelComplete:
		return screenLevelComplete
	case game.StateGameOver:
		return screenGameOver
	default:
		return screenStart
	}
}

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On screen transitions, do a full terminal clear so text from the
	// previous screen doesn't persist.
	current := c.currentScreen()
	if !c.state.hasPrev || current != c.state.prevScreen {
		c.chunkWriter.Clear()
		c.canvas.ForceRedraw()
		c.state.prevScreen = current
		c.state.hasPrev = true
	}

	c.canvas.Clear()
	if err := c.game.Draw(c.canvas); err != nil {
		return err
	}

	c.canvas.Render(c.chunkWriter)
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI(current)

	return c.chunkWriter.Flush()
}

// drawUI draws the text overlay for screen s.
func (c *Client) drawUI(s screen) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	switch s {
	case screenShutdown:
		c.drawShutdownScreen(centerX, centerY)
	case screenInactive:
		c.drawInactivityScreen(centerX, centerY)
	case screenStart:
		c.drawStartScreen(centerX, centerY)
	case screenPlaying:
		c.drawPlayingHUD(termWidth, termHeight)
	case screenPaused:
		c.drawPlayingHUD(termWidth, termHeight)
		c.drawPausedScreen(centerX, centerY)
	case screenLevelComplete:
		c.drawLevelCompleteScreen(centerX, centerY)
	case screenGameOver:
		c.drawGameOverScreen(centerX, centerY)
	}
}

// text writes s at (col, row) and marks the cells so the canvas repaints
// them once the text goes away.
func (c *Client) text(col, row int, s string) {
	c.chunkWriter.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row, len([]rune(s)))
}

// centered writes s centered on centerX.
func (c *Client) centered(centerX, row int, s string) {
	col, width := c.chunkWriter.WriteCentered(centerX, row, s)
	c.canvas.MarkTextDirty(col, row, width)
}

func (c *Client) art(centerX, top int, lines []string) {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	for i, line := range lines {
		c.text(centerX-width/2, top+i, line)
	}
}

func blinkOn() bool {
	return time.Now().UnixMilli()/config.BlinkPeriodMillis%2 == 0
}

// drawStartScreen draws the title screen with the name prompt.
func (c *Client) drawStartScreen(centerX, centerY int) {
	top := centerY - 9
	c.art(centerX, top, titleArt)

	c.centered(centerX, top+len(titleArt)+1, "~ Defend the planet from your terminal ~")

	nameY := top + len(titleArt) + 3
	cursor := " "
	if blinkOn() {
		cursor = "_"
	}
	c.centered(centerX, nameY, fmt.Sprintf("Your name: %-*s", config.MaxUsernameLength+1, string(c.state.Name)+cursor))

	controlsY := nameY + 2
	c.centered(centerX, controlsY, "Controls")
	controlLines := []string{
		"A D / < >  . . . . Move",
		"SPACE  . . . . . . Shoot",
		"P  . . . . . . . . Pause",
		"M  . . . . . . . . Music",
		"Q  . . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		c.centered(centerX, controlsY+1+i, line)
	}

	if blinkOn() {
		c.centered(centerX, controlsY+len(controlLines)+2, ">>  Press ENTER to Start  <<")
	}
}

// drawPlayingHUD draws the in-game HUD.
// Fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int) {
	hud := c.state.HUD

	c.text(2, 1, fmt.Sprintf("Score: %-8d", hud.Score))
	c.centered(termWidth/2, 1, fmt.Sprintf("Level: %-3d", hud.Level))

	livesText := fmt.Sprintf("Lives: %-2d", hud.Lives)
	c.text(termWidth-len(livesText)-1, 1, livesText)

	c.text(2, termHeight, hud.PlayerName)

	music := "Music: off"
	if hud.MusicEnabled {
		music = "Music: on "
	}
	c.text(termWidth-len(music)-1, termHeight, music)
}

// drawPausedScreen draws the pause overlay.
func (c *Client) drawPausedScreen(centerX, centerY int) {
	c.centered(centerX, centerY-1, "PAUSED")
	c.centered(centerX, centerY+1, "Press P to resume")
}

// drawLevelCompleteScreen shows the bonus and a message for the finished level.
func (c *Client) drawLevelCompleteScreen(centerX, centerY int) {
	hud := c.state.HUD

	c.centered(centerX, centerY-4, fmt.Sprintf("LEVEL %d COMPLETE!", hud.Level))
	c.centered(centerX, centerY-2, game.LevelMessage(hud.Level))
	c.centered(centerX, centerY, fmt.Sprintf("Bonus: +%d", hud.LastBonus))
	c.centered(centerX, centerY+1, fmt.Sprintf("Score: %d", hud.Score))

	if blinkOn() {
		c.centered(centerX, centerY+3, ">>  Press ENTER for the next level  <<")
	}
}

// drawGameOverScreen shows the final results.
func (c *Client) drawGameOverScreen(centerX, centerY int) {
	hud := c.state.HUD

	top := centerY - 6
	c.art(centerX, top, gameOverArt)

	infoY := top + len(gameOverArt) + 1
	c.centered(centerX, infoY, fmt.Sprintf("Pilot: %s", hud.PlayerName))
	c.centered(centerX, infoY+1, fmt.Sprintf("Final score: %d", hud.Score))
	c.centered(centerX, infoY+2, fmt.Sprintf("Level reached: %d", hud.Level))

	if blinkOn() {
		c.centered(centerX, infoY+4, ">>  Press ENTER to Play Again  <<")
	}
	c.centered(centerX, infoY+5, "Q to quit")
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.centered(centerX, centerY-2, "INACTIVITY WARNING")

	remaining := int(config.InactivityDisconnectUser - time.Since(c.lastInput).Seconds())
	c.centered(centerX, centerY, fmt.Sprintf("You will be disconnected in %3d seconds.", max(remaining, 0)))

	c.centered(centerX, centerY+2, "Press any key to continue")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.centered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	c.centered(centerX, centerY-1, "The server is restarting for maintenance.")
	c.centered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.centered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %2d seconds...", remaining))
	c.centered(centerX, centerY+4, "Press Q to disconnect now")
}
