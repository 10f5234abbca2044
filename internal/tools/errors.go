package tools

import (
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Sentinel errors for dispatch failures.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrUnknownTool indicates Invoke was called with a name nothing registered.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrDuplicateTool indicates Register was called twice with the same name.
	ErrDuplicateTool = errors.New("tool already registered")

	// ErrInvalidArgument indicates arguments that do not match the tool's input schema.
	ErrInvalidArgument = errors.New("invalid argument")
)

// UnknownToolError is returned by Invoke for an unregistered tool name.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownTool, e.Name)
}

func (e *UnknownToolError) Unwrap() error { return ErrUnknownTool }

// DuplicateToolError is returned by Register when the name is taken.
type DuplicateToolError struct {
	Name string
}

func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("%s: %q", ErrDuplicateTool, e.Name)
}

func (e *DuplicateToolError) Unwrap() error { return ErrDuplicateTool }

// InvalidArgumentError wraps the validation or decoding failure for a tool call.
type InvalidArgumentError struct {
	Tool string
	Err  error
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s for tool %q: %v", ErrInvalidArgument, e.Tool, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *InvalidArgumentError) Unwrap() []error {
	return []error{ErrInvalidArgument, e.Err}
}

// Error kinds reported in structured tool error results.
const (
	KindInvalidArgument  = "invalid_argument"
	KindExtractionFailed = "extraction_failed"
)

// ErrorResult creates a tool error result with optional recovery hint.
// If hint is non-empty, formats as "{msg}. {hint}".
// Returns IsError=true so the client can see the error and self-correct.
func ErrorResult(kind, msg, hint string) *mcp.CallToolResult {
	text := msg
	if hint != "" {
		text = msg + ". " + hint
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
		StructuredContent: map[string]any{
			"error": map[string]any{
				"kind":    kind,
				"message": text,
			},
		},
		IsError: true,
	}
}

// TextResult creates a success result with text content.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}
