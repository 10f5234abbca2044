// Package tools provides the tool registry, the YouTube URL tools and their
// MCP binding.
package tools

import (
	"log/slog"

	"github.com/raphaelgruber/ytmcp-go/internal/config"
	"github.com/raphaelgruber/ytmcp-go/internal/youtube"
)

// Dependencies holds shared settings for tool handlers.
// Passed to handler factories via closure capture.
type Dependencies struct {
	Logger *slog.Logger

	// NullPairCompat makes get_normalized_url answer [null, null] instead of
	// failing when no video ID can be extracted.
	NullPairCompat bool

	// DefaultQuality is the thumbnail quality used when the caller omits one.
	DefaultQuality youtube.Quality
}

// DependenciesFromConfig builds handler dependencies from loaded configuration.
func DependenciesFromConfig(cfg config.Config, logger *slog.Logger) *Dependencies {
	return &Dependencies{
		Logger:         logger,
		NullPairCompat: cfg.NullPairCompat,
		DefaultQuality: cfg.ThumbnailQuality,
	}
}

func (d *Dependencies) logger() *slog.Logger {
	if d == nil || d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}
