package core

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogLevel(t *testing.T) {
	prev := LogLevel()
	t.Cleanup(func() { _ = SetLogLevel(prev) })

	require.NoError(t, SetLogLevel("warn"))
	assert.Equal(t, "warn", LogLevel())

	err := SetLogLevel("verbose")
	assert.ErrorIs(t, err, ErrUnknownLogLevel)
	assert.Equal(t, "warn", LogLevel())
}

func TestLogOutput(t *testing.T) {
	prev := LogLevel()
	var buf bytes.Buffer
	SetLogOutput(&buf)
	t.Cleanup(func() {
		SetLogOutput(os.Stderr)
		_ = SetLogLevel(prev)
	})

	require.NoError(t, SetLogLevel("info"))
	LogDebug("hidden %d", 1)
	LogInfo("visible %d", 2)
	LogWarn("warned %s", "here")

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "visible 2")
	assert.Contains(t, out, "warned here")
	assert.Contains(t, out, "Rotor")
}
