// Package config centralizes the tunables of the terminal frontends.
package config

import "time"

// Logical resolution - game objects use these dimensions.
// Actual rendering scales to fit the terminal.
const (
	LogicalWidth  = 800
	LogicalHeight = 600
)

// Max render resolution in terminal cells. Larger terminals get a centered,
// bordered play area.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Player
const (
	MaxUsernameLength = 16 // Maximum display length for player names
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
	ShutdownGracePeriod    = ShutdownDisplaySeconds*time.Second + 2*time.Second
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// BlinkPeriodMillis is the on/off period of blinking prompts.
const BlinkPeriodMillis = 600
