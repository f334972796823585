package game

import (
	"strings"
	"unicode/utf8"
)

// Scoring and lives.
const (
	InitialLives     = 3
	PointsPerEnemy   = 10
	LevelBonusFactor = 100 // Bonus for clearing a level is LevelBonusFactor * level
)

// Player names.
const (
	DefaultPlayerName = "Guest"
	MaxNameLength     = 16 // In runes
)

// NormalizeName trims name, substitutes DefaultPlayerName when nothing is
// left and truncates it to MaxNameLength runes.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultPlayerName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = string([]rune(name)[:MaxNameLength])
	}
	return name
}

// LevelBonus returns the points awarded for clearing level.
func LevelBonus(level int) int {
	return LevelBonusFactor * level
}

var levelMessages = [...]string{
	"You survived your first space battle! The aliens are NOT impressed.",
	"Two levels down! Your ship is still in one piece... mostly.",
	"Level 3 complete! The space invaders are starting to take you seriously.",
	"You're still alive! The aliens are calling their friends now.",
	"Halfway to legend! Your piloting skills are... adequate.",
	"Level 6 conquered! The aliens are writing angry space letters.",
	"Seven levels of survival! You're like a space cockroach, unkillable!",
	"Level 8 done! The aliens are considering early retirement.",
	"Nine levels of glory! You're making space look easy.",
	"Double digits! The aliens have formed a support group.",

	// Levels past 10 cycle through these.
	"Another level down! You're basically a space legend now.",
	"Still going! The aliens are questioning their life choices.",
	"Unstoppable! The space invaders are filing complaints.",
	"Level after level! You're the reason aliens have nightmares.",
	"Incredible! The aliens are updating their resumes.",
	"Amazing! You're single-handedly solving the alien problem.",
	"Outstanding! The space invaders are considering a career change.",
	"Phenomenal! You're making space look like a walk in the park.",
	"Legendary! The aliens are starting to respect you... and fear you.",
	"Unbelievable! You're the stuff of space legends!",
}

// LevelMessage returns the congratulation shown after completing level.
func LevelMessage(level int) string {
	switch {
	case level < 1:
		return levelMessages[0]
	case level <= 10:
		return levelMessages[level-1]
	default:
		return levelMessages[10+(level-11)%10]
	}
}
