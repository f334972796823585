package client

import (
	"bufio"
	"bytes"
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/invaders/internal/game"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop/server"
)

func newTestClient(t *testing.T, opts ClientOptions) (*Client, *bytes.Buffer) {
	t.Helper()

	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	out := &bytes.Buffer{}
	opts.TermSizeFunc = func() (int, int, error) { return 80, 24, nil }
	opts.Rand = rand.New(rand.NewSource(1))
	return NewClient(bufio.NewReader(pr), out, opts), out
}

func TestNameEntryBeginsGame(t *testing.T) {
	c, _ := newTestClient(t, ClientOptions{})

	c.handleInput(input.Input{Pressed: []byte("Adaq")})
	c.update()
	assert.Equal(t, "Adaq", string(c.state.Name))
	assert.True(t, c.state.Running, "q is text on the start screen")

	c.handleInput(input.Input{Backspace: true, Pressed: []byte{0x7f}})
	c.update()
	assert.Equal(t, "Ada", string(c.state.Name))

	c.handleInput(input.Input{Enter: true, Pressed: []byte{'\r'}})
	c.update()
	assert.Equal(t, game.StatePlaying, c.game.State())
	assert.Equal(t, "Ada", c.game.PlayerName())
	assert.Equal(t, game.StatePlaying, c.state.HUD.State)
}

func TestNameIsPrefilledAndCapped(t *testing.T) {
	c, _ := newTestClient(t, ClientOptions{Username: "a-very-long-ssh-username"})
	assert.Len(t, c.state.Name, 16)

	c.handleInput(input.Input{Pressed: []byte("zz")})
	c.update()
	assert.Len(t, c.state.Name, 16)
}

func TestEmptyNameBecomesGuest(t *testing.T) {
	c, _ := newTestClient(t, ClientOptions{})

	c.handleInput(input.Input{Enter: true})
	c.update()

	assert.Equal(t, game.DefaultPlayerName, c.game.PlayerName())
	assert.Equal(t, game.DefaultPlayerName, string(c.state.Name))
}

func TestSessionKeysDuringPlay(t *testing.T) {
	c, _ := newTestClient(t, ClientOptions{Username: "ada"})
	c.handleInput(input.Input{Enter: true})
	c.update()

	c.handleInput(input.Input{Music: true})
	assert.True(t, c.game.MusicEnabled())
	assert.True(t, c.state.HUD.MusicEnabled)

	c.handleInput(input.Input{Pause: true})
	c.update()
	assert.Equal(t, game.StatePaused, c.game.State())

	c.handleInput(input.Input{Quit: true})
	assert.False(t, c.state.Running)
}

func TestInterruptAndClosedInputStop(t *testing.T) {
	c, _ := newTestClient(t, ClientOptions{})
	c.handleInput(input.Input{Interrupt: true})
	assert.False(t, c.state.Running)

	c, _ = newTestClient(t, ClientOptions{})
	c.handleInput(input.Input{Closed: true})
	assert.False(t, c.state.Running)
}

func TestLevelCompleteAdvances(t *testing.T) {
	c, _ := newTestClient(t, ClientOptions{})
	c.handleInput(input.Input{Enter: true})
	c.update()

	c.game.Enemies = nil
	c.handleInput(input.Input{})
	c.update()
	require.Equal(t, game.StateLevelComplete, c.game.State())
	assert.Equal(t, 100, c.state.HUD.LastBonus)

	c.handleInput(input.Input{Shoot: true})
	c.update()
	assert.Equal(t, game.StatePlaying, c.game.State())
	assert.Equal(t, 2, c.game.Level())
}

func TestShutdownCountsDown(t *testing.T) {
	hub := server.NewHub()
	c, _ := newTestClient(t, ClientOptions{Hub: hub, Username: "ada"})
	require.Equal(t, 1, hub.Count())

	c.handleInput(input.Input{Enter: true})
	c.update()

	c.handle.Events <- server.Event{Type: server.EventServerShutdown}
	c.processServerEvents()
	assert.True(t, c.state.shuttingDown)
	assert.Equal(t, game.StatePaused, c.game.State())
	assert.Equal(t, screenShutdown, c.currentScreen())

	c.state.delta = 5 * time.Second
	c.update()
	assert.True(t, c.state.Running)

	c.state.delta = 6 * time.Second
	c.update()
	assert.False(t, c.state.Running)
}

func TestQuitDuringShutdownOnStartScreen(t *testing.T) {
	hub := server.NewHub()
	c, _ := newTestClient(t, ClientOptions{Hub: hub})

	c.handle.Events <- server.Event{Type: server.EventServerShutdown}
	c.processServerEvents()
	c.handleInput(input.Input{Quit: true, Pressed: []byte("q")})

	assert.False(t, c.state.Running)
}

func TestDrawFrameShowsScreens(t *testing.T) {
	c, out := newTestClient(t, ClientOptions{Username: "ada"})

	require.NoError(t, c.drawFrame())
	assert.Contains(t, out.String(), "\033[H\033[2J")
	assert.Contains(t, out.String(), "Your name: ada")

	out.Reset()
	c.handleInput(input.Input{Enter: true})
	c.update()
	require.NoError(t, c.drawFrame())
	assert.Contains(t, out.String(), "Score: 0")
	assert.Contains(t, out.String(), "Lives: 3")
	assert.Contains(t, out.String(), "Level: 1")

	out.Reset()
	c.game.Enemies = nil
	c.update()
	require.NoError(t, c.drawFrame())
	assert.Contains(t, out.String(), "LEVEL 1 COMPLETE!")
	assert.Contains(t, out.String(), "Bonus: +100")
	assert.Contains(t, out.String(), game.LevelMessage(1))
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		w, h                       int
		wantW, wantH, wantC, wantR int
	}{
		{80, 24, 80, 24, 0, 0},
		{160, 60, 160, 60, 0, 0},
		{200, 70, 160, 60, 20, 5},
		{100, 100, 100, 60, 0, 20},
	}

	for _, tt := range tests {
		w, h, col, row := clampTermSize(tt.w, tt.h)
		assert.Equal(t, []int{tt.wantW, tt.wantH, tt.wantC, tt.wantR}, []int{w, h, col, row})
	}
}
