// Package game holds the simulation core: the per-frame step, collision
// resolution and the game lifecycle. A Game is owned by a single goroutine.
package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
)

// gridCellSize is the broad-phase cell size, a little over one enemy plus spacing.
const gridCellSize = 64.0

// BoundsFunc reports the current canvas size.
type BoundsFunc func() object.Screen

// FixedBounds returns a BoundsFunc that always reports screen.
func FixedBounds(screen object.Screen) BoundsFunc {
	return func() object.Screen { return screen }
}

// Options configures a Game. Zero values select sensible defaults.
type Options struct {
	Bounds       BoundsFunc  // Defaults to 800x600
	Music        Music       // Defaults to silence
	Observer     Observer    // Defaults to no-op
	Logger       *log.Logger // Defaults to discarding
	Rand         *rand.Rand  // Drives enemy fire; defaults to a time-seeded source
	MusicEnabled bool        // Initial music toggle
}

// Game is one player's game. Exported entity fields may be read by renderers
// between frames; they are mutated only by Step and the lifecycle methods.
type Game struct {
	Player      *object.Player
	Enemies     []*object.Enemy
	PlayerShots []*object.Projectile
	EnemyShots  []*object.Projectile
	Stars       *object.StarField

	state        State
	paused       bool
	score        int
	lives        int
	level        int
	playerName   string
	lastBonus    int
	musicEnabled bool

	screen   object.Screen
	bounds   BoundsFunc
	rng      *rand.Rand
	starRng  *rand.Rand // Kept apart from rng so stars never shift enemy fire
	music    Music
	observer Observer
	logger   *log.Logger

	grid *physics.SpatialGrid
	hit  []bool // Enemies removed during the current step, by roster index
}

// New creates a game on the start screen.
func New(opts Options) *Game {
	if opts.Bounds == nil {
		opts.Bounds = FixedBounds(object.Screen{Width: 800, Height: 600})
	}
	if opts.Music == nil {
		opts.Music = nopMusic{}
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	screen := opts.Bounds()
	starRng := rand.New(rand.NewSource(opts.Rand.Int63()))
	return &Game{
		Stars:        object.NewStarField(object.DefaultStarCount, screen, starRng),
		state:        StateStart,
		lives:        InitialLives,
		level:        1,
		playerName:   DefaultPlayerName,
		musicEnabled: opts.MusicEnabled,
		screen:       screen,
		bounds:       opts.Bounds,
		rng:          opts.Rand,
		starRng:      starRng,
		music:        opts.Music,
		observer:     opts.Observer,
		logger:       opts.Logger,
		grid:         physics.NewSpatialGrid(screen.Width, screen.Height, gridCellSize),
	}
}

// State returns the current phase. A paused game reports StatePaused.
func (g *Game) State() State {
	if g.state == StatePlaying && g.paused {
		return StatePaused
	}
	return g.state
}

func (g *Game) Paused() bool       { return g.paused }
func (g *Game) Score() int         { return g.score }
func (g *Game) Lives() int         { return g.lives }
func (g *Game) Level() int         { return g.level }
func (g *Game) PlayerName() string { return g.playerName }
func (g *Game) LastBonus() int     { return g.lastBonus }
func (g *Game) MusicEnabled() bool { return g.musicEnabled }

// Screen returns the bounds used by the most recent step.
func (g *Game) Screen() object.Screen { return g.screen }

// Snapshot returns the externally visible state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:        g.State(),
		Score:        g.score,
		Lives:        g.lives,
		Level:        g.level,
		PlayerName:   g.playerName,
		LastBonus:    g.lastBonus,
		EnemiesLeft:  len(g.Enemies),
		MusicEnabled: g.musicEnabled,
	}
}

func (g *Game) notify() {
	g.observer.GameChanged(g.Snapshot())
}

// Frame runs one frame of input and simulation: a pause press toggles pause,
// a shoot press fires, then the world is stepped.
func (g *Game) Frame(in Input) {
	if in.Pause {
		g.TogglePause()
	}
	if g.state != StatePlaying || g.paused {
		return
	}
	if in.Shoot {
		g.Shoot()
	}
	g.Step(object.Controls{Left: in.Left, Right: in.Right})
}

// Shoot fires a player projectile. It does nothing unless the game is
// running.
func (g *Game) Shoot() {
	if g.state != StatePlaying || g.paused || g.Player == nil {
		return
	}
	g.Player.Shoot(object.SpawnFunc(func(p *object.Projectile) {
		g.PlayerShots = append(g.PlayerShots, p)
	}))
}

// Draw renders the world back to front.
func (g *Game) Draw(surface draw.Surface) error {
	ctx := object.DrawContext{Surface: surface}

	if err := g.Stars.Draw(ctx); err != nil {
		return err
	}
	if g.state != StatePlaying || g.Player == nil {
		return nil
	}

	if err := g.Player.Draw(ctx); err != nil {
		return err
	}
	for _, e := range g.Enemies {
		if err := e.Draw(ctx); err != nil {
			return err
		}
	}
	for _, p := range g.PlayerShots {
		if err := p.Draw(ctx); err != nil {
			return err
		}
	}
	for _, p := range g.EnemyShots {
		if err := p.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}
