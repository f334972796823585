package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/invaders/internal/draw"
)

// DefaultStarCount is the number of stars in the background.
const DefaultStarCount = 100

// Star is a twinkling background point. Stars are decoration only.
type Star struct {
	X, Y         float64
	Size         float64 // Radius, 0.5 to 2.5
	Brightness   float64 // Twinkle phase in [0, 1)
	TwinkleSpeed float64 // Phase advance per frame
}

// StarField is the twinkling background of the play area.
type StarField struct {
	Stars  []Star
	Screen Screen // Area the stars were scattered over
}

// NewStarField scatters count stars across screen.
func NewStarField(count int, screen Screen, rng *rand.Rand) *StarField {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	stars := make([]Star, count)
	for i := range stars {
		stars[i] = Star{
			X:            rng.Float64() * screen.Width,
			Y:            rng.Float64() * screen.Height,
			Size:         rng.Float64()*2 + 0.5,
			Brightness:   rng.Float64(),
			TwinkleSpeed: rng.Float64()*0.02 + 0.01,
		}
	}
	return &StarField{Stars: stars, Screen: screen}
}

// Twinkle advances every star's brightness phase, wrapping past 1.
func (s *StarField) Twinkle() {
	for i := range s.Stars {
		st := &s.Stars[i]
		st.Brightness += st.TwinkleSpeed
		if st.Brightness > 1 {
			st.Brightness = 0
		}
	}
}

// Alpha returns the star's current opacity in [0, 1].
func (st Star) Alpha() float64 {
	return 0.5 + math.Sin(st.Brightness*math.Pi*2)*0.5
}

// Draw twinkles the field and renders the visible stars.
// Bright stars are white, fading ones dim, nearly invisible ones skipped.
func (s *StarField) Draw(ctx DrawContext) error {
	s.Twinkle()
	for _, st := range s.Stars {
		alpha := st.Alpha()
		var c draw.Color
		switch {
		case alpha > 0.6:
			c = draw.ColorWhite
		case alpha > 0.2:
			c = draw.ColorDim
		default:
			continue
		}
		ctx.Surface.FillRect(st.X-st.Size/2, st.Y-st.Size/2, st.Size, st.Size, c)
	}
	return nil
}
