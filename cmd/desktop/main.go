package main

import (
	"errors"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/invaders/internal/audio"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/gui"
)

func main() {
	logger := config.NewLogger(os.Stderr, "desktop")

	music := audio.NewPlayer(logger)
	if err := music.Init(); err != nil {
		logger.Warn("music disabled", "err", err)
	}
	defer music.Close()

	var rng *rand.Rand
	if seed := config.GetEnvInt64("INVADERS_SEED", 0); seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}

	app := gui.NewApp(gui.Options{
		Music:        music,
		MusicEnabled: config.GetEnvBool("INVADERS_MUSIC", true),
		Rand:         rng,
		Logger:       logger,
	})

	ebiten.SetWindowSize(gui.ScreenWidth, gui.ScreenHeight)
	ebiten.SetWindowTitle("Invaders")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game error", "err", err)
		music.Close()
		os.Exit(1)
	}
}
