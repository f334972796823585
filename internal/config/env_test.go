package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("INVADERS_TEST_VALUE", "hello")
	assert.Equal(t, "hello", GetEnv("INVADERS_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("INVADERS_TEST_MISSING", "fallback"))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("INVADERS_TEST_ON", "true")
	t.Setenv("INVADERS_TEST_OFF", "0")
	t.Setenv("INVADERS_TEST_BAD", "maybe")

	assert.True(t, GetEnvBool("INVADERS_TEST_ON", false))
	assert.False(t, GetEnvBool("INVADERS_TEST_OFF", true))
	assert.True(t, GetEnvBool("INVADERS_TEST_BAD", true))
	assert.False(t, GetEnvBool("INVADERS_TEST_MISSING", false))
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("INVADERS_TEST_SEED", "42")
	t.Setenv("INVADERS_TEST_BAD_SEED", "forty-two")

	assert.Equal(t, int64(42), GetEnvInt64("INVADERS_TEST_SEED", 0))
	assert.Equal(t, int64(7), GetEnvInt64("INVADERS_TEST_BAD_SEED", 7))
	assert.Equal(t, int64(7), GetEnvInt64("INVADERS_TEST_MISSING", 7))
}
