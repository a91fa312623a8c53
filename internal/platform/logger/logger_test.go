package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clientbook/clientbook/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		enabled  slog.Level
		disabled slog.Level
	}{
		{name: "debug", level: "debug", enabled: slog.LevelDebug, disabled: slog.LevelDebug - 4},
		{name: "info", level: "info", enabled: slog.LevelInfo, disabled: slog.LevelDebug},
		{name: "warn", level: "warn", enabled: slog.LevelWarn, disabled: slog.LevelInfo},
		{name: "error", level: "error", enabled: slog.LevelError, disabled: slog.LevelWarn},
		{name: "mixed_case", level: "WARN", enabled: slog.LevelWarn, disabled: slog.LevelInfo},
		{name: "invalid_falls_back_to_info", level: "verbose", enabled: slog.LevelInfo, disabled: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.level})

			require.NoError(t, err)
			require.NotNil(t, log)
			assert.True(t, log.Enabled(context.Background(), tt.enabled))
			assert.False(t, log.Enabled(context.Background(), tt.disabled))
		})
	}

	t.Run("becomes_default_logger", func(t *testing.T) {
		log, err := Setup(config.ServerConfig{Port: 8080, LogLevel: "info"})

		require.NoError(t, err)
		assert.Equal(t, log, slog.Default())
	})
}

func TestLoggerContext(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		stored := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx := WithLogger(context.Background(), stored)

		assert.Same(t, stored, FromContext(ctx))
		assert.Same(t, stored, FromContextOrDefault(ctx, nil))
	})

	t.Run("with_nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			WithLogger(context.Background(), nil)
		})
	})

	t.Run("from_context_falls_back_to_default", func(t *testing.T) {
		assert.Equal(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("from_context_or_default_prefers_given_fallback", func(t *testing.T) {
		fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

		assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
	})

	t.Run("context_logger_wins_over_fallback", func(t *testing.T) {
		stored := slog.New(slog.NewTextHandler(io.Discard, nil))
		fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx := WithLogger(context.Background(), stored)

		assert.Same(t, stored, FromContextOrDefault(ctx, fallback))
	})
}
