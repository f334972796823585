// Package loop runs a single game in a local terminal.
package loop

import (
	"bufio"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/game"
	"github.com/tomz197/invaders/internal/loop/client"
)

// Options configures a local run.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string     // Pre-fills the name prompt
	Music        game.Music // Nil plays nothing
	MusicEnabled bool
	Seed         int64 // Non-zero makes enemy fire repeatable
	Logger       *log.Logger
}

// Run starts the Input → Update → Draw loop on r and w. It returns when the
// player quits or input ends.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	c := client.NewClient(r, w, client.ClientOptions{
		TermSizeFunc: opts.TermSizeFunc,
		Username:     opts.Username,
		Music:        opts.Music,
		MusicEnabled: opts.MusicEnabled,
		Rand:         rng,
		Logger:       opts.Logger,
	})
	return c.Run()
}
