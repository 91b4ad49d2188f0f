package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"go-workerconnect-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("info"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel(""))
}

func TestInitRespectsLevel(t *testing.T) {
	logger.Init("warn")
	assert.NotNil(t, logger.Log)
	assert.False(t, logger.Log.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Log.Enabled(context.Background(), slog.LevelWarn))
}
