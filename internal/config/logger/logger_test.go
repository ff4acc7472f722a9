package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"lookout/internal/config"
)

func Test_NewLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		format   string
		expected zerolog.Level
	}{
		{name: "Default", level: config.DefaultLogLevel, format: config.DefaultLogFormat, expected: zerolog.InfoLevel},
		{name: "Debug level", level: DebugLevel, format: ConsoleFormat, expected: zerolog.DebugLevel},
		{name: "Warn level and json format", level: WarnLevel, format: JSONFormat, expected: zerolog.WarnLevel},
		{name: "Empty level and format (defaults)", level: "", format: "", expected: zerolog.InfoLevel},
		{name: "Trace level", level: TraceLevel, format: ConsoleFormat, expected: zerolog.TraceLevel},
		{name: "Unknown format (defaults to console)", level: InfoLevel, format: "unknown", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Logging.Level = tt.level
			cfg.Logging.Format = tt.format

			logger := NewLogger(cfg)
			assert.NotNil(t, logger)

			appLogger, ok := logger.(*AppLogger)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, appLogger.log.GetLevel())
			assert.NotEmpty(t, cfg.Logging.Level)
			assert.NotEmpty(t, cfg.Logging.Format)
		})
	}
}

func Test_NewLoggerWithOutput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.Format = JSONFormat

	var buf bytes.Buffer

	logger := NewLoggerWithOutput(cfg, &buf)
	logger.WithComponent("LOGS").Info().Msg("buffer trimmed")

	assert.Contains(t, buf.String(), `"component":"LOGS"`)
	assert.Contains(t, buf.String(), `"message":"buffer trimmed"`)
	assert.Contains(t, buf.String(), `"version":"`+config.Version+`"`)
}

func Test_NewFileLogger(t *testing.T) {
	t.Run("Writes to rotating file", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Logging.Format = JSONFormat
		cfg.Logging.File = filepath.Join(t.TempDir(), "lookout.log")

		logger := NewFileLogger(cfg)
		logger.Warn().Msg("poll failed")

		data, err := os.ReadFile(cfg.Logging.File)
		assert.NoError(t, err)
		assert.Contains(t, string(data), "poll failed")
	})

	t.Run("Empty path discards output", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Logging.File = ""

		logger := NewFileLogger(cfg)
		assert.NotNil(t, logger)
		logger.Error().Msg("dropped")
	})
}

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "Debug", level: DebugLevel, expected: zerolog.DebugLevel},
		{name: "Info", level: InfoLevel, expected: zerolog.InfoLevel},
		{name: "Warn", level: WarnLevel, expected: zerolog.WarnLevel},
		{name: "Error", level: ErrorLevel, expected: zerolog.ErrorLevel},
		{name: "Fatal", level: FatalLevel, expected: zerolog.FatalLevel},
		{name: "Panic", level: PanicLevel, expected: zerolog.PanicLevel},
		{name: "Trace", level: TraceLevel, expected: zerolog.TraceLevel},
		{name: "Unknown", level: "unknown", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.level))
		})
	}
}

func Test_Module(t *testing.T) {
	assert.NotNil(t, Module)
}

func Test_zerologEvent(t *testing.T) {
	logger := NewLoggerWithOutput(config.DefaultConfig(), &bytes.Buffer{})

	event := logger.Debug()
	event.Str("key", "value").Int("count", 42).Dur("duration", time.Second).Err(errors.New("test error"))
	event.Msg("test message")

	assert.NotNil(t, logger.Info())
	assert.NotNil(t, logger.Warn())
	assert.NotNil(t, logger.Error())
}
