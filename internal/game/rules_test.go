package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ada", "Ada"},
		{"  Ada Lovelace \t", "Ada Lovelace"},
		{"", DefaultPlayerName},
		{"   ", DefaultPlayerName},
		{strings.Repeat("x", 20), strings.Repeat("x", MaxNameLength)},
		{strings.Repeat("é", 17), strings.Repeat("é", MaxNameLength)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in), "input %q", tt.in)
	}
}

func TestLevelBonus(t *testing.T) {
	assert.Equal(t, 100, LevelBonus(1))
	assert.Equal(t, 1200, LevelBonus(12))
}

func TestLevelMessage(t *testing.T) {
	assert.Contains(t, LevelMessage(1), "first space battle")
	assert.Contains(t, LevelMessage(10), "support group")
	assert.Equal(t, levelMessages[10], LevelMessage(11))
	assert.Equal(t, levelMessages[19], LevelMessage(20))
	assert.Equal(t, levelMessages[10], LevelMessage(21))
	assert.Equal(t, levelMessages[13], LevelMessage(34))
	assert.Equal(t, levelMessages[0], LevelMessage(0))

	for level := 1; level <= 40; level++ {
		assert.NotEmpty(t, LevelMessage(level))
	}
}
