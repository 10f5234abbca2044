package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphaelgruber/ytmcp-go/internal/youtube"
)

func newYouTubeRegistry(t *testing.T, deps *Dependencies) *Registry {
	t.Helper()
	reg := NewRegistry(testLogger(), nil)
	require.NoError(t, RegisterAll(reg, deps))
	return reg
}

func compatDeps() *Dependencies {
	return &Dependencies{Logger: testLogger(), NullPairCompat: true, DefaultQuality: youtube.QualityMaxRes}
}

func TestRegisterAll_Twice(t *testing.T) {
	reg := newYouTubeRegistry(t, compatDeps())
	assert.Len(t, reg.Tools(), 3)

	err := RegisterAll(reg, compatDeps())
	assert.ErrorIs(t, err, ErrDuplicateTool)
}

func TestWatchURLTool(t *testing.T) {
	reg := newYouTubeRegistry(t, compatDeps())

	tests := []struct {
		name string
		args string
		want string
	}{
		{"no start time", `{"video_id":"abc123"}`, "https://www.youtube.com/watch?v=abc123"},
		{"null start time", `{"video_id":"abc123","start_time":null}`, "https://www.youtube.com/watch?v=abc123"},
		{"seconds", `{"video_id":"abc123","start_time":90}`, "https://www.youtube.com/watch?v=abc123&t=90s"},
		{"zero seconds", `{"video_id":"abc123","start_time":0}`, "https://www.youtube.com/watch?v=abc123&t=0s"},
		{"duration string", `{"video_id":"abc123","start_time":"1h2m3s"}`, "https://www.youtube.com/watch?v=abc123&t=1h2m3s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := reg.Invoke(context.Background(), ToolWatchURL, json.RawMessage(tt.args))
			require.NoError(t, err)
			assert.Equal(t, URLEnvelope(tt.want), env)
		})
	}
}

func TestWatchURLTool_InvalidArguments(t *testing.T) {
	reg := newYouTubeRegistry(t, compatDeps())

	for _, args := range []string{
		`{}`,
		`{"video_id":""}`,
		`{"video_id":42}`,
		`{"video_id":"abc123","start_time":-1}`,
		`{"video_id":"abc123","start_time":1.5}`,
		`{"video_id":"abc123","start_time":true}`,
	} {
		t.Run(args, func(t *testing.T) {
			_, err := reg.Invoke(context.Background(), ToolWatchURL, json.RawMessage(args))
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestThumbnailURLTool(t *testing.T) {
	reg := newYouTubeRegistry(t, compatDeps())

	env, err := reg.Invoke(context.Background(), ToolThumbnailURL, json.RawMessage(`{"video_id":"abc123"}`))
	require.NoError(t, err)
	assert.Equal(t, URLEnvelope("https://img.youtube.com/vi/abc123/maxresdefault.jpg"), env)

	env, err = reg.Invoke(context.Background(), ToolThumbnailURL, json.RawMessage(`{"video_id":"abc123","quality":"mqdefault"}`))
	require.NoError(t, err)
	assert.Equal(t, URLEnvelope("https://img.youtube.com/vi/abc123/mqdefault.jpg"), env)

	_, err = reg.Invoke(context.Background(), ToolThumbnailURL, json.RawMessage(`{"video_id":"abc123","quality":"ultra"}`))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = reg.Invoke(context.Background(), ToolThumbnailURL, json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestThumbnailURLTool_ConfiguredDefault(t *testing.T) {
	deps := compatDeps()
	deps.DefaultQuality = youtube.QualityHigh
	reg := newYouTubeRegistry(t, deps)

	env, err := reg.Invoke(context.Background(), ToolThumbnailURL, json.RawMessage(`{"video_id":"abc123"}`))
	require.NoError(t, err)
	assert.Equal(t, URLEnvelope("https://img.youtube.com/vi/abc123/hqdefault.jpg"), env)
}

func TestNormalizedURLTool(t *testing.T) {
	reg := newYouTubeRegistry(t, compatDeps())

	env, err := reg.Invoke(context.Background(), ToolNormalizedURL, json.RawMessage(`{"url":"https://youtu.be/abc123"}`))
	require.NoError(t, err)
	data, err := env.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":["https://www.youtube.com/watch?v=abc123","abc123"]}`, string(data))

	_, err = reg.Invoke(context.Background(), ToolNormalizedURL, json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNormalizedURLTool_NullPairCompat(t *testing.T) {
	reg := newYouTubeRegistry(t, compatDeps())

	for _, input := range []string{"", "not a url", "https://www.youtube.com/watch", "https://vimeo.com/1"} {
		t.Run(input, func(t *testing.T) {
			args, err := json.Marshal(NormalizedURLInput{URL: input})
			require.NoError(t, err)

			env, err := reg.Invoke(context.Background(), ToolNormalizedURL, args)
			require.NoError(t, err)
			data, err := env.JSON()
			require.NoError(t, err)
			assert.JSONEq(t, `{"url":[null,null]}`, string(data))
		})
	}
}

func TestNormalizedURLTool_Strict(t *testing.T) {
	deps := compatDeps()
	deps.NullPairCompat = false
	reg := newYouTubeRegistry(t, deps)

	_, err := reg.Invoke(context.Background(), ToolNormalizedURL, json.RawMessage(`{"url":"not a url"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, youtube.ErrExtraction)
	assert.NotErrorIs(t, err, ErrInvalidArgument)

	env, err := reg.Invoke(context.Background(), ToolNormalizedURL, json.RawMessage(`{"url":"https://youtu.be/abc123"}`))
	require.NoError(t, err)
	assert.Equal(t, URLEnvelope([]any{"https://www.youtube.com/watch?v=abc123", "abc123"}), env)
}
