package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerWritesPrefixAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Enabled: true, Level: "DEBUG", Output: &buf}, "App")

	logger.WithPrefix("CALC").Info("Run finished", "points", 120)

	out := buf.String()
	require.Contains(t, out, "[App] [CALC] Run finished")
	require.Contains(t, out, "points=120")
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Enabled: true, Level: "WARN", Output: &buf}, "")

	logger.Info("hidden")
	logger.Warn("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
	require.False(t, logger.ShouldLog("DEBUG"))
	require.True(t, logger.ShouldLog("ERROR"))
}

func TestDisabledLoggerIsSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{Enabled: false, Output: &buf}, "App")

	logger.Error("nothing")

	require.Empty(t, buf.String())
}
