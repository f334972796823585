package client

import (
	"time"

	"github.com/tomz197/invaders/internal/game"
	"github.com/tomz197/invaders/internal/input"
)

// ClientState holds the per-connection state that lives outside the game:
// the name being typed, the last HUD snapshot and session housekeeping.
type ClientState struct {
	Input         input.Input
	HUD           game.Snapshot // Latest snapshot from the game
	Name          []rune        // Name typed on the start screen
	Running       bool          // Client loop running
	delta         time.Duration // Frame delta time
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	shuttingDown  bool
	isInactive    bool // Whether the client is in inactive warning state
	prevScreen    screen
	hasPrev       bool
}

// NewClientState creates a new initialized client state.
func NewClientState(name string) *ClientState {
	return &ClientState{
		HUD:     game.Snapshot{State: game.StateStart},
		Name:    []rune(name),
		Running: true,
	}
}

// screen identifies what the UI overlay currently shows.
type screen int

const (
	screenStart screen = iota
	screenPlaying
	screenPaused
	screenLevelComplete
	screenGameOver
	screenInactive
	screenShutdown
)
