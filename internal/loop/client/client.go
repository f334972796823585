// Package client drives one terminal session: it reads keys, steps the game
// once per frame and renders it with ANSI half-blocks.
package client

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/game"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/loop/server"
	"github.com/tomz197/invaders/internal/object"
)

// Client handles rendering and input for a single connection.
type Client struct {
	game         *game.Game
	hub          *server.Hub
	handle       *server.Handle
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	inactivity   bool
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string      // Pre-fills the name prompt
	Music        game.Music  // Nil plays nothing
	MusicEnabled bool        // Initial music preference
	Rand         *rand.Rand  // Nil seeds from the clock
	Hub          *server.Hub // Nil for a standalone terminal
	Inactivity   bool        // Disconnect idle sessions
	Logger       *log.Logger
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	name := []rune(opts.Username)
	if len(name) > config.MaxUsernameLength {
		name = name[:config.MaxUsernameLength]
	}

	c := &Client{
		hub:          opts.Hub,
		state:        NewClientState(string(name)),
		writer:       w,
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		inactivity:   opts.Inactivity,
		logger:       logger,
	}

	c.game = game.New(game.Options{
		Bounds:       game.FixedBounds(object.Screen{Width: config.LogicalWidth, Height: config.LogicalHeight}),
		Music:        opts.Music,
		Observer:     c,
		Logger:       logger,
		Rand:         opts.Rand,
		MusicEnabled: opts.MusicEnabled,
	})
	c.state.HUD = c.game.Snapshot()

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	c.canvas = draw.NewScaledCanvas(renderWidth, renderHeight, config.LogicalWidth, config.LogicalHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter = draw.NewChunkWriter(w, offsetCol, offsetRow)

	if c.hub != nil {
		c.handle = c.hub.Register(string(name))
	}
	return c
}

// GameChanged records the latest game snapshot for the HUD.
func (c *Client) GameChanged(s game.Snapshot) {
	c.state.HUD = s
}

// Run starts the client loop. Blocks until the player quits, the input
// closes or the host shuts down.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)
	defer c.inputStream.Close()

	if c.handle != nil {
		defer c.hub.Unregister(c.handle.ID)
	}
	defer c.game.Pause()

	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput()
		c.processServerEvents()
		c.updateScreen()
		c.update()

		if err := c.drawFrame(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads this frame's keys.
func (c *Client) processInput() {
	c.handleInput(input.ReadInput(c.inputStream))
}

// handleInput records in for this frame and handles session-level keys.
func (c *Client) handleInput(in input.Input) {
	c.state.Input = in

	if in.Closed || in.Interrupt {
		c.state.Running = false
		return
	}

	if len(in.Pressed) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if c.inactivity {
		idle := time.Since(c.lastInput).Seconds()
		if idle > config.InactivityDisconnectUser {
			c.logger.Info("disconnecting idle session", "player", c.game.PlayerName())
			c.state.Running = false
		} else if idle > config.InactivityWarnUser {
			c.state.isInactive = true
		}
	}

	// Letters are text on the start screen.
	if c.game.State() == game.StateStart && !c.state.shuttingDown {
		return
	}
	if in.Quit {
		c.state.Running = false
	}
	if in.Music {
		c.game.ToggleMusic()
	}
}

// processServerEvents handles events from the hub.
func (c *Client) processServerEvents() {
	if c.handle == nil {
		return
	}
	for {
		select {
		case event, ok := <-c.handle.Events:
			if !ok {
				c.state.Running = false
				return
			}
			if event.Type == server.EventServerShutdown && !c.state.shuttingDown {
				c.state.shuttingDown = true
				c.state.shutdownTimer = config.ShutdownDisplaySeconds
				c.game.Pause()
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// update advances the session by one frame.
func (c *Client) update() {
	if c.state.shuttingDown {
		c.state.shutdownTimer -= c.state.delta.Seconds()
		if c.state.shutdownTimer <= 0 {
			c.state.Running = false
		}
		return
	}

	in := c.state.Input
	switch c.game.State() {
	case game.StateStart:
		c.updateNameEntry(in)
	case game.StatePlaying, game.StatePaused:
		c.game.Frame(game.Input{
			Left:  in.Left,
			Right: in.Right,
			Shoot: in.Shoot,
			Pause: in.Pause,
		})
	case game.StateLevelComplete:
		if in.Enter || in.Shoot {
			c.game.Advance()
		}
	case game.StateGameOver:
		if in.Enter {
			c.game.Restart(string(c.state.Name))
		}
	}
}

// updateNameEntry edits the name on the start screen and begins on Enter.
func (c *Client) updateNameEntry(in input.Input) {
	for _, b := range in.Printable() {
		if len(c.state.Name) < config.MaxUsernameLength {
			c.state.Name = append(c.state.Name, rune(b))
		}
	}
	if in.Backspace && len(c.state.Name) > 0 {
		c.state.Name = c.state.Name[:len(c.state.Name)-1]
	}
	if in.Enter {
		c.game.Begin(string(c.state.Name))
		c.state.Name = []rune(c.game.PlayerName())
	}
}
