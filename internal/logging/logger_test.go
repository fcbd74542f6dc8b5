package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	ctx := context.Background()

	assert.False(t, New(false).Enabled(ctx, slog.LevelDebug))
	assert.True(t, New(false).Enabled(ctx, slog.LevelInfo))
	assert.True(t, New(true).Enabled(ctx, slog.LevelDebug))
}

func TestErrorKeyShortened(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(handler(&buf, slog.LevelInfo))

	logger.Info("render failed", "error", "boom")

	assert.Contains(t, buf.String(), "err=boom")
	assert.NotContains(t, buf.String(), "error=boom")
}

func TestNopLoggerStaysQuiet(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNop().Error("ignored", "error", assert.AnError)
	})
}
