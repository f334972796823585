package config

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, log.DebugLevel, NewLogger(&bytes.Buffer{}, "").GetLevel())

	t.Setenv("LOG_LEVEL", "shouting")
	assert.Equal(t, log.InfoLevel, NewLogger(&bytes.Buffer{}, "").GetLevel())
}

func TestNewLoggerWrites(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	var buf bytes.Buffer
	logger := NewLogger(&buf, "ssh")

	logger.Debug("hidden")
	logger.Info("session started", "user", "ada")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "ssh")
	assert.Contains(t, buf.String(), "session started")
	assert.Contains(t, buf.String(), "user=ada")
}
