package object

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/physics"
)

var testScreen = Screen{Width: 800, Height: 600}

type shotRecorder struct {
	shots []*Projectile
}

func (r *shotRecorder) Spawn(p *Projectile) {
	r.shots = append(r.shots, p)
}

func TestSpawnPlayerCentersNearBottom(t *testing.T) {
	p := SpawnPlayer(testScreen)

	assert.Equal(t, 375.0, p.X)
	assert.Equal(t, 550.0, p.Y)
	assert.Equal(t, PlayerWidth, p.Width)
	assert.Equal(t, PlayerHeight, p.Height)
	assert.Equal(t, PlayerSpeed, p.Speed)
}

func TestPlayerUpdate(t *testing.T) {
	tests := []struct {
		name     string
		startX   float64
		controls Controls
		wantX    float64
	}{
		{"idle", 100, Controls{}, 100},
		{"left", 100, Controls{Left: true}, 95},
		{"right", 100, Controls{Right: true}, 105},
		{"both cancel", 100, Controls{Left: true, Right: true}, 100},
		{"left blocked at edge", 0, Controls{Left: true}, 0},
		{"right blocked at edge", 750, Controls{Right: true}, 750},
		// Left moves off the edge first, which unblocks right.
		{"both at right edge", 750, Controls{Left: true, Right: true}, 750},
		// At x=0 only right applies.
		{"both at left edge", 0, Controls{Left: true, Right: true}, 5},
		// Just inside the edge the step may overshoot; only the start is checked.
		{"left overshoots", 2, Controls{Left: true}, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(tt.startX, 550)
			p.Update(UpdateContext{Controls: tt.controls, Screen: testScreen})
			assert.Equal(t, tt.wantX, p.X)
			assert.Equal(t, 550.0, p.Y)
		})
	}
}

func TestPlayerShoot(t *testing.T) {
	p := NewPlayer(100, 550)
	rec := &shotRecorder{}

	p.Shoot(rec)

	require.Len(t, rec.shots, 1)
	shot := rec.shots[0]
	assert.Equal(t, 125.0, shot.X)
	assert.Equal(t, 550.0, shot.Y)
	assert.Equal(t, PlayerShotSpeed, shot.Speed)
	assert.Equal(t, draw.ColorSky, shot.Color)

	assert.NotPanics(t, func() { p.Shoot(nil) })
}

func TestEnemyUpdateMovesAndFires(t *testing.T) {
	e := NewEnemy(100, 50, 40, 30, 4.5)
	e.ShootChance = 1
	rec := &shotRecorder{}

	e.Update(UpdateContext{Screen: testScreen, Spawner: rec, Rand: rand.New(rand.NewSource(1))})

	assert.Equal(t, 101.0, e.X)
	require.Len(t, rec.shots, 1)
	assert.Equal(t, 121.0, rec.shots[0].X)
	assert.Equal(t, 80.0, rec.shots[0].Y)
	assert.Equal(t, 4.5, rec.shots[0].Speed)
	assert.Equal(t, draw.ColorRed, rec.shots[0].Color)
}

func TestEnemyNeverFiresWithZeroChance(t *testing.T) {
	e := NewEnemy(100, 50, 40, 30, 3.5)
	e.ShootChance = 0
	e.Direction = -1
	rec := &shotRecorder{}
	ctx := UpdateContext{Screen: testScreen, Spawner: rec, Rand: rand.New(rand.NewSource(1))}

	for i := 0; i < 100; i++ {
		e.Update(ctx)
	}

	assert.Equal(t, 0.0, e.X)
	assert.Empty(t, rec.shots)
}

func TestEnemyFiringRateMatchesChance(t *testing.T) {
	e := NewEnemy(0, 0, 40, 30, 3)
	e.ShootChance = 0.1
	rec := &shotRecorder{}
	ctx := UpdateContext{Screen: testScreen, Spawner: rec, Rand: rand.New(rand.NewSource(99))}

	for i := 0; i < 10000; i++ {
		e.Update(ctx)
	}

	assert.InDelta(t, 1000, len(rec.shots), 150)
}

func TestEnemyChangeDirection(t *testing.T) {
	e := NewEnemy(10, 50, 40, 30, 3)

	e.ChangeDirection()
	assert.Equal(t, -1.0, e.Direction)
	assert.Equal(t, 70.0, e.Y)

	e.ChangeDirection()
	assert.Equal(t, 1.0, e.Direction)
	assert.Equal(t, 90.0, e.Y)
}

func TestEnemyEdgesAndBreach(t *testing.T) {
	assert.True(t, NewEnemy(0, 0, 40, 30, 3).HitsEdge(testScreen))
	assert.True(t, NewEnemy(-1, 0, 40, 30, 3).HitsEdge(testScreen))
	assert.True(t, NewEnemy(760, 0, 40, 30, 3).HitsEdge(testScreen))
	assert.False(t, NewEnemy(1, 0, 40, 30, 3).HitsEdge(testScreen))
	assert.False(t, NewEnemy(759, 0, 40, 30, 3).HitsEdge(testScreen))

	assert.True(t, NewEnemy(0, 520, 40, 30, 3).Breaches(550))
	assert.False(t, NewEnemy(0, 519, 40, 30, 3).Breaches(550))
}

func TestProjectile(t *testing.T) {
	up := NewProjectile(10, 5, PlayerShotSpeed, draw.ColorSky)
	up.Update()
	assert.Equal(t, 0.0, up.Y)
	assert.False(t, up.IsOffScreen(testScreen))
	up.Update()
	assert.True(t, up.IsOffScreen(testScreen))

	down := NewProjectile(10, 596, 4, draw.ColorRed)
	down.Update()
	assert.False(t, down.IsOffScreen(testScreen))
	down.Update()
	assert.True(t, down.IsOffScreen(testScreen))

	assert.Equal(t, physics.Rect{X: 10, Y: 604, W: ProjectileWidth, H: ProjectileHeight}, down.Bounds())
}

func TestStarFieldTwinkleWraps(t *testing.T) {
	sf := NewStarField(DefaultStarCount, testScreen, rand.New(rand.NewSource(3)))
	require.Len(t, sf.Stars, DefaultStarCount)

	for _, st := range sf.Stars {
		assert.GreaterOrEqual(t, st.X, 0.0)
		assert.Less(t, st.X, testScreen.Width)
		assert.GreaterOrEqual(t, st.Size, 0.5)
		assert.Less(t, st.Size, 2.5)
		assert.GreaterOrEqual(t, st.TwinkleSpeed, 0.01)
		assert.Less(t, st.TwinkleSpeed, 0.03)
	}

	sf.Stars[0].Brightness = 0.99
	sf.Stars[0].TwinkleSpeed = 0.02
	sf.Twinkle()
	assert.Equal(t, 0.0, sf.Stars[0].Brightness)
}

type recordingSurface struct {
	rects    int
	polygons int
	colors   map[draw.Color]int
}

func (s *recordingSurface) FillRect(_, _, _, _ float64, c draw.Color) {
	s.rects++
	s.colors[c]++
}

func (s *recordingSurface) FillPolygon(_ []draw.Point, c draw.Color) {
	s.polygons++
	s.colors[c]++
}

func (s *recordingSurface) Dot(_, _ float64, c draw.Color) {
	s.colors[c]++
}

func TestDrawUsesEntityColors(t *testing.T) {
	surface := &recordingSurface{colors: map[draw.Color]int{}}
	ctx := DrawContext{Surface: surface}

	require.NoError(t, NewPlayer(0, 0).Draw(ctx))
	require.NoError(t, NewEnemy(0, 0, 40, 30, 3).Draw(ctx))
	require.NoError(t, NewProjectile(0, 0, 4, draw.ColorRed).Draw(ctx))

	assert.Equal(t, 1, surface.polygons)
	assert.Equal(t, 4, surface.rects)
	assert.Equal(t, 1, surface.colors[draw.ColorSky])
	assert.Equal(t, 2, surface.colors[draw.ColorRed])
	assert.Equal(t, 2, surface.colors[draw.ColorYellow])
}
