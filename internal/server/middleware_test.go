package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Len(t, truncate(strings.Repeat("x", 500), maxArgLogLen), maxArgLogLen)
}

func TestLoggingMiddleware(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var seenID string
	handler := LoggingMiddleware(logger)(func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		seenID = RequestID(ctx)
		return &mcp.CallToolResult{}, nil
	})

	req := &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{Name: "get_watch_url"}}
	_, err := handler(context.Background(), "tools/call", req)
	require.NoError(t, err)

	assert.Len(t, seenID, 36, "request id should be a UUID")
	assert.Contains(t, logs.String(), "request completed")
	assert.Contains(t, logs.String(), "request_id="+seenID)
	assert.Contains(t, logs.String(), "get_watch_url")
}

func TestLoggingMiddleware_Error(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	handler := LoggingMiddleware(logger)(func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		return nil, errors.New("unknown tool")
	})

	_, err := handler(context.Background(), "tools/call", &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{Name: "nope"}})
	require.Error(t, err)
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "unknown tool")
}

func TestRequestID_Missing(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))
}
