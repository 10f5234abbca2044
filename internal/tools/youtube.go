package tools

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/raphaelgruber/ytmcp-go/internal/youtube"
)

// Tool names.
const (
	ToolWatchURL      = "get_watch_url"
	ToolThumbnailURL  = "get_thumbnail_url"
	ToolNormalizedURL = "get_normalized_url"
)

// WatchURLInput defines the arguments of get_watch_url.
type WatchURLInput struct {
	VideoID   string             `json:"video_id"`
	StartTime *youtube.StartTime `json:"start_time,omitempty"`
}

// ThumbnailURLInput defines the arguments of get_thumbnail_url.
type ThumbnailURLInput struct {
	VideoID string `json:"video_id"`
	Quality string `json:"quality,omitempty"`
}

// NormalizedURLInput defines the arguments of get_normalized_url.
type NormalizedURLInput struct {
	URL string `json:"url"`
}

// RegisterAll registers the YouTube URL tools with the registry.
func RegisterAll(reg *Registry, deps *Dependencies) error {
	tools := []Tool{
		{
			Name:        ToolWatchURL,
			Description: "Returns the YouTube watch URL for a given video ID, optionally starting at a specific time.",
			InputSchema: watchURLSchema(),
			Handler:     Typed(NewWatchURLHandler(deps)),
		},
		{
			Name:        ToolThumbnailURL,
			Description: "Returns the thumbnail URL for a given YouTube video ID.",
			InputSchema: thumbnailURLSchema(),
			Handler:     Typed(NewThumbnailURLHandler(deps)),
		},
		{
			Name:        ToolNormalizedURL,
			Description: "Returns the normalized YouTube watch URL and video ID for a given URL, or [null, null] if no video ID can be found.",
			InputSchema: normalizedURLSchema(),
			Handler:     Typed(NewNormalizedURLHandler(deps)),
		},
	}

	for _, t := range tools {
		if err := reg.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// NewWatchURLHandler creates the get_watch_url handler.
func NewWatchURLHandler(deps *Dependencies) func(context.Context, WatchURLInput) (Envelope, error) {
	return func(ctx context.Context, input WatchURLInput) (Envelope, error) {
		return URLEnvelope(youtube.WatchURL(input.VideoID, input.StartTime)), nil
	}
}

// NewThumbnailURLHandler creates the get_thumbnail_url handler.
func NewThumbnailURLHandler(deps *Dependencies) func(context.Context, ThumbnailURLInput) (Envelope, error) {
	return func(ctx context.Context, input ThumbnailURLInput) (Envelope, error) {
		quality := youtube.QualityMaxRes
		if deps != nil && deps.DefaultQuality != "" {
			quality = deps.DefaultQuality
		}
		if input.Quality != "" {
			q, err := youtube.ParseQuality(input.Quality)
			if err != nil {
				return nil, &InvalidArgumentError{Err: err}
			}
			quality = q
		}
		return URLEnvelope(youtube.ThumbnailURL(input.VideoID, quality)), nil
	}
}

// NewNormalizedURLHandler creates the get_normalized_url handler.
// The pair is flattened to [null, null] here, at the serialization boundary,
// only when NullPairCompat is set.
func NewNormalizedURLHandler(deps *Dependencies) func(context.Context, NormalizedURLInput) (Envelope, error) {
	return func(ctx context.Context, input NormalizedURLInput) (Envelope, error) {
		n, err := youtube.Normalize(input.URL)
		if err != nil {
			if deps != nil && deps.NullPairCompat {
				deps.logger().Debug("normalize failed, returning null pair", "error", err)
				return URLEnvelope([]any{nil, nil}), nil
			}
			return nil, fmt.Errorf("normalize url: %w", err)
		}
		return URLEnvelope([]any{n.URL, n.VideoID}), nil
	}
}

func watchURLSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"video_id": videoIDSchema(),
			"start_time": {
				Types:       []string{"integer", "string", "null"},
				Minimum:     ptr(0.0),
				Description: "The start time in seconds, or a duration such as 1h2m3s",
			},
		},
		Required: []string{"video_id"},
	}
}

func thumbnailURLSchema() *jsonschema.Schema {
	qualities := make([]any, 0, len(youtube.Qualities()))
	for _, q := range youtube.Qualities() {
		qualities = append(qualities, string(q))
	}
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"video_id": videoIDSchema(),
			"quality": {
				Type:        "string",
				Enum:        qualities,
				Description: "Thumbnail quality, default maxresdefault",
			},
		},
		Required: []string{"video_id"},
	}
}

func normalizedURLSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"url": {
				Type:        "string",
				Description: "The YouTube URL to normalize",
			},
		},
		Required: []string{"url"},
	}
}

func videoIDSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		MinLength:   ptr(1),
		Description: "The YouTube video ID",
	}
}

func ptr[T any](v T) *T {
	return &v
}
