package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskvault/taskvault-api/internal/config"
	"github.com/taskvault/taskvault-api/internal/platform/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"mixed case", "DEBUG"},
		{"invalid level falls back to info", "verbose"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{LogLevel: tc.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.Equal(t, log, slog.Default(), "Setup installs the default logger")
		})
	}
}

func TestLoggerContext(t *testing.T) {
	t.Parallel()

	stored := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		ctx := logger.WithLogger(context.Background(), stored)
		assert.Equal(t, stored, logger.FromContext(ctx))
		assert.Equal(t, stored, logger.FromContextOrDefault(ctx, nil))
	})

	t.Run("missing logger falls back to default", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, slog.Default(), logger.FromContext(context.Background()))
	})

	t.Run("missing logger uses provided fallback", func(t *testing.T) {
		t.Parallel()

		fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
		got := logger.FromContextOrDefault(context.Background(), fallback)
		assert.Equal(t, fallback, got)
	})
}
