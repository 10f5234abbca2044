package tools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/raphaelgruber/ytmcp-go/internal/youtube"
)

// Bind exposes every tool in reg on the MCP server.
// This is called from main after registration but before Run().
func Bind(server *mcp.Server, reg *Registry) {
	for _, t := range reg.Tools() {
		server.AddTool(&mcp.Tool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
			Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
		}, newMCPHandler(reg, t.Name))
	}
}

func newMCPHandler(reg *Registry, name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		env, err := reg.Invoke(ctx, name, req.Params.Arguments)
		if err != nil {
			return toolError(err)
		}

		data, err := env.JSON()
		if err != nil {
			return nil, err
		}
		result := TextResult(string(data))
		result.StructuredContent = map[string]any(env)
		return result, nil
	}
}

// toolError turns caller mistakes into tool error results the client can act
// on. Anything else is a protocol error.
func toolError(err error) (*mcp.CallToolResult, error) {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return ErrorResult(KindInvalidArgument, err.Error(), "Check the tool's input schema"), nil
	case errors.Is(err, youtube.ErrExtraction):
		return ErrorResult(KindExtractionFailed, err.Error(), "Provide a youtube.com or youtu.be video link"), nil
	default:
		return nil, err
	}
}
