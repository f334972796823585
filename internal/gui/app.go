// Package gui runs the game in a desktop window.
package gui

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/game"
	"github.com/tomz197/invaders/internal/object"
)

// Window size in logical units; ebiten scales it to the real window.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

var (
	background = color.RGBA{0, 0, 16, 255}
	dimOverlay = color.RGBA{0, 0, 0, 170}
	hudColor   = color.RGBA{135, 206, 235, 255}
)

// controls is one frame of keyboard state.
type controls struct {
	Left, Right bool
	Shoot       bool
	Pause       bool
	Music       bool
	Enter       bool
	Backspace   bool
	Quit        bool
	Chars       []rune // Text typed this frame
}

// Options configures the window app.
type Options struct {
	Music        game.Music
	MusicEnabled bool
	Rand         *rand.Rand
	Logger       *log.Logger
}

// App adapts a game.Game to ebiten.Game.
type App struct {
	game  *game.Game
	hud   game.Snapshot
	name  []rune
	face  font.Face
	white *ebiten.Image
}

var _ ebiten.Game = (*App)(nil)

// NewApp creates the window app on the start screen.
func NewApp(opts Options) *App {
	a := &App{face: basicfont.Face7x13}
	a.game = game.New(game.Options{
		Bounds:       game.FixedBounds(object.Screen{Width: ScreenWidth, Height: ScreenHeight}),
		Music:        opts.Music,
		Observer:     game.ObserverFunc(func(s game.Snapshot) { a.hud = s }),
		Logger:       opts.Logger,
		Rand:         opts.Rand,
		MusicEnabled: opts.MusicEnabled,
	})
	a.hud = a.game.Snapshot()
	return a
}

// Update reads the keyboard and advances one frame.
func (a *App) Update() error {
	return a.apply(readControls())
}

func readControls() controls {
	return controls{
		Left:      ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:     ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Shoot:     inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause:     inpututil.IsKeyJustPressed(ebiten.KeyP),
		Music:     inpututil.IsKeyJustPressed(ebiten.KeyM),
		Enter:     inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		Backspace: inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
		Quit:      inpututil.IsKeyJustPressed(ebiten.KeyQ),
		Chars:     ebiten.AppendInputChars(nil),
	}
}

// apply runs one frame for the given controls. It returns
// ebiten.Termination when the player quits.
func (a *App) apply(c controls) error {
	g := a.game

	if g.State() == game.StateStart {
		for _, r := range c.Chars {
			if unicode.IsPrint(r) && len(a.name) < game.MaxNameLength {
				a.name = append(a.name, r)
			}
		}
		if c.Backspace && len(a.name) > 0 {
			a.name = a.name[:len(a.name)-1]
		}
		if c.Enter {
			g.Begin(string(a.name))
			a.name = []rune(g.PlayerName())
		}
		return nil
	}

	if c.Quit {
		g.Pause()
		return ebiten.Termination
	}
	if c.Music {
		g.ToggleMusic()
	}

	switch g.State() {
	case game.StatePlaying, game.StatePaused:
		g.Frame(game.Input{Left: c.Left, Right: c.Right, Shoot: c.Shoot, Pause: c.Pause})
	case game.StateLevelComplete:
		if c.Enter || c.Shoot {
			g.Advance()
		}
	case game.StateGameOver:
		if c.Enter {
			g.Restart(string(a.name))
		}
	}
	return nil
}

// Draw renders the world and the overlay for the current state.
func (a *App) Draw(screen *ebiten.Image) {
	if a.white == nil {
		a.white = newWhitePixel()
	}
	screen.Fill(background)

	// Drawing onto an image cannot fail.
	_ = a.game.Draw(surface{dst: screen, white: a.white})

	switch a.hud.State {
	case game.StateStart:
		a.drawStart(screen)
	case game.StatePlaying:
		a.drawHUD(screen)
	case game.StatePaused:
		a.drawHUD(screen)
		a.dim(screen)
		a.centered(screen, ScreenHeight/2-10, "PAUSED", color.White)
		a.centered(screen, ScreenHeight/2+10, "Press P to resume", color.White)
	case game.StateLevelComplete:
		a.dim(screen)
		a.centered(screen, 220, fmt.Sprintf("LEVEL %d COMPLETE!", a.hud.Level), hudColor)
		a.centered(screen, 260, game.LevelMessage(a.hud.Level), color.White)
		a.centered(screen, 300, fmt.Sprintf("Bonus: +%d", a.hud.LastBonus), draw.ColorYellow.RGBA())
		a.centered(screen, 320, fmt.Sprintf("Score: %d", a.hud.Score), color.White)
		a.centered(screen, 360, "Press ENTER for the next level", color.White)
	case game.StateGameOver:
		a.dim(screen)
		a.centered(screen, 220, "GAME OVER", draw.ColorRed.RGBA())
		a.centered(screen, 260, fmt.Sprintf("Pilot: %s", a.hud.PlayerName), color.White)
		a.centered(screen, 280, fmt.Sprintf("Final score: %d", a.hud.Score), color.White)
		a.centered(screen, 300, fmt.Sprintf("Level reached: %d", a.hud.Level), color.White)
		a.centered(screen, 340, "Press ENTER to play again, Q to quit", color.White)
	}
}

func (a *App) drawStart(screen *ebiten.Image) {
	a.centered(screen, 180, "I N V A D E R S", hudColor)
	a.centered(screen, 210, "Defend the planet!", color.White)

	cursor := " "
	if time.Now().UnixMilli()/600%2 == 0 {
		cursor = "_"
	}
	a.centered(screen, 260, "Your name: "+string(a.name)+cursor, draw.ColorYellow.RGBA())

	lines := []string{
		"A D / Arrows  Move",
		"SPACE         Shoot",
		"P             Pause",
		"M             Music",
		"Q             Quit",
	}
	for i, line := range lines {
		a.centered(screen, 310+i*18, line, color.White)
	}
	a.centered(screen, 420, "Press ENTER to start", hudColor)
}

func (a *App) drawHUD(screen *ebiten.Image) {
	text.Draw(screen, fmt.Sprintf("Score: %d", a.hud.Score), a.face, 10, 20, hudColor)
	a.centered(screen, 20, fmt.Sprintf("Level: %d", a.hud.Level), hudColor)

	lives := fmt.Sprintf("Lives: %d", a.hud.Lives)
	text.Draw(screen, lives, a.face, ScreenWidth-10-text.BoundString(a.face, lives).Dx(), 20, hudColor)

	text.Draw(screen, a.hud.PlayerName, a.face, 10, ScreenHeight-8, hudColor)
	music := "Music: off"
	if a.hud.MusicEnabled {
		music = "Music: on"
	}
	text.Draw(screen, music, a.face, ScreenWidth-10-text.BoundString(a.face, music).Dx(), ScreenHeight-8, hudColor)
}

func (a *App) dim(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, ScreenHeight, dimOverlay, false)
}

func (a *App) centered(screen *ebiten.Image, y int, s string, clr color.Color) {
	bounds := text.BoundString(a.face, s)
	text.Draw(screen, s, a.face, (ScreenWidth-bounds.Dx())/2, y, clr)
}

// Layout keeps the logical resolution regardless of window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
