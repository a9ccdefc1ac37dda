package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/gjallar/internal/config"
)

func Test_NewLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Logging
		expected zerolog.Level
	}{
		{name: "Default", cfg: config.DefaultConfig().Logging, expected: zerolog.InfoLevel},
		{name: "Debug level", cfg: config.Logging{Level: DebugLevel}, expected: zerolog.DebugLevel},
		{name: "Warn level and json format", cfg: config.Logging{Level: WarnLevel, Format: JSONFormat}, expected: zerolog.WarnLevel},
		{name: "Error level", cfg: config.Logging{Level: ErrorLevel}, expected: zerolog.ErrorLevel},
		{name: "Trace level", cfg: config.Logging{Level: TraceLevel}, expected: zerolog.TraceLevel},
		{name: "Empty level (defaults)", cfg: config.Logging{}, expected: zerolog.InfoLevel},
		{name: "Unknown level (defaults to info)", cfg: config.Logging{Level: "verbose"}, expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := NewLogger(tt.cfg)
			require.NotNil(t, log)

			appLogger, ok := log.(*AppLogger)
			require.True(t, ok)
			assert.Equal(t, tt.expected, appLogger.log.GetLevel())
		})
	}
}

func Test_WithComponent(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerWithOutput(config.Logging{Level: InfoLevel, Format: JSONFormat}, &buf)
	log.WithComponent("BUILD").Info().Str("entry", "landing").Msg("bundled")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "BUILD", line["component"])
	assert.Equal(t, "landing", line["entry"])
	assert.Equal(t, "bundled", line["message"])
	assert.Equal(t, "info", line["level"])
}

func Test_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	log := NewLoggerWithOutput(config.Logging{Level: WarnLevel}, &buf)
	log.Info().Msg("hidden")
	log.Debug().Msg("hidden")

	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
