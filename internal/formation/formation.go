// Package formation builds the enemy roster for a level.
package formation

import "github.com/tomz197/invaders/internal/object"

// Enemy size and layout spacing shared by every formation.
const (
	EnemyWidth  = 40.0
	EnemyHeight = 30.0
	Spacing     = 10.0
	StartY      = 50.0 // Top of the first row
	gridStartX  = 50.0
)

// Bullet speed grows by BulletSpeedStep per level with no upper limit.
const (
	BaseBulletSpeed = 3.0
	BulletSpeedStep = 0.5
)

// Layout identifies one of the formation shapes.
type Layout int

const (
	LayoutGrid       Layout = iota // 5 rows of 10
	LayoutV                        // Rows of 1 to 5, centered
	LayoutDiamond                  // Rows of 1, 3, 5, 3, 1, centered
	LayoutTwoColumns               // 8 rows at a quarter and three quarters of the width
	LayoutPyramid                  // Rows of 6 down to 1, centered
	layoutCount
)

func (l Layout) String() string {
	switch l {
	case LayoutGrid:
		return "grid"
	case LayoutV:
		return "v"
	case LayoutDiamond:
		return "diamond"
	case LayoutTwoColumns:
		return "two-columns"
	case LayoutPyramid:
		return "pyramid"
	}
	return "unknown"
}

// LayoutFor returns the layout used on level. Layouts repeat every five
// levels; levels below 1 use the first layout.
func LayoutFor(level int) Layout {
	if level < 1 {
		level = 1
	}
	return Layout((level - 1) % int(layoutCount))
}

// BulletSpeed returns the downward speed of enemy shots on level.
func BulletSpeed(level int) float64 {
	return BaseBulletSpeed + float64(level)*BulletSpeedStep
}

// Generate returns a fresh roster for level laid out across screen.
// The result depends only on level and screen width.
func Generate(level int, screen object.Screen) []*object.Enemy {
	b := builder{
		centerX:     screen.Width / 2,
		bulletSpeed: BulletSpeed(level),
	}

	switch LayoutFor(level) {
	case LayoutGrid:
		for row := 0; row < 5; row++ {
			for col := 0; col < 10; col++ {
				b.add(gridStartX+float64(col)*(EnemyWidth+Spacing), row)
			}
		}
	case LayoutV:
		for row := 0; row < 5; row++ {
			b.centeredRow(row, row+1)
		}
	case LayoutDiamond:
		for row, count := range []int{1, 3, 5, 3, 1} {
			b.centeredRow(row, count)
		}
	case LayoutTwoColumns:
		left := screen.Width/4 - EnemyWidth/2
		right := 3*screen.Width/4 - EnemyWidth/2
		for row := 0; row < 8; row++ {
			b.add(left, row)
			b.add(right, row)
		}
	case LayoutPyramid:
		for row := 0; row < 6; row++ {
			b.centeredRow(row, 6-row)
		}
	}

	return b.enemies
}

type builder struct {
	centerX     float64
	bulletSpeed float64
	enemies     []*object.Enemy
}

func (b *builder) add(x float64, row int) {
	y := StartY + float64(row)*(EnemyHeight+Spacing)
	b.enemies = append(b.enemies, object.NewEnemy(x, y, EnemyWidth, EnemyHeight, b.bulletSpeed))
}

// centeredRow adds count enemies whose combined span is centered on centerX.
func (b *builder) centeredRow(row, count int) {
	startX := b.centerX - float64(count-1)*(EnemyWidth+Spacing)/2 - EnemyWidth/2
	for i := 0; i < count; i++ {
		b.add(startX+float64(i)*(EnemyWidth+Spacing), row)
	}
}
