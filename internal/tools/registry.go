package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/raphaelgruber/ytmcp-go/internal/metrics"
)

// Handler runs a tool with arguments already validated against its input schema.
type Handler func(ctx context.Context, args json.RawMessage) (Envelope, error)

// Tool is a named operation exposed through the registry.
type Tool struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
	Handler     Handler
}

type entry struct {
	tool     Tool
	resolved *jsonschema.Resolved
}

// Registry maps tool names to handlers and dispatches invocations.
// Tools are registered at startup; Invoke is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	order   []string

	logger    *slog.Logger
	collector *metrics.Collector
}

// NewRegistry creates an empty registry. collector may be nil.
func NewRegistry(logger *slog.Logger, collector *metrics.Collector) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		entries:   make(map[string]*entry),
		logger:    logger,
		collector: collector,
	}
}

// Register adds a tool. The name must be unique and the schema must resolve.
func (r *Registry) Register(tool Tool) error {
	if tool.Name == "" {
		return errors.New("register tool: name is required")
	}
	if tool.Handler == nil {
		return fmt.Errorf("register tool %q: handler is required", tool.Name)
	}
	if tool.InputSchema == nil {
		return fmt.Errorf("register tool %q: input schema is required", tool.Name)
	}

	resolved, err := tool.InputSchema.Resolve(nil)
	if err != nil {
		return fmt.Errorf("register tool %q: resolve input schema: %w", tool.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[tool.Name]; exists {
		return &DuplicateToolError{Name: tool.Name}
	}
	r.entries[tool.Name] = &entry{tool: tool, resolved: resolved}
	r.order = append(r.order, tool.Name)
	return nil
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name].tool)
	}
	return out
}

// Invoke validates args against the named tool's schema and runs its handler.
// Empty args are treated as {}.
func (r *Registry) Invoke(ctx context.Context, name string, args json.RawMessage) (Envelope, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}

	start := time.Now()
	env, err := r.dispatch(ctx, e, args)
	duration := time.Since(start)

	if r.collector != nil {
		r.collector.RecordTiming(name, duration)
		if err != nil {
			r.collector.RecordError(name)
		}
	}

	if err != nil {
		r.logger.Debug("tool failed", "tool", name, "duration_ms", duration.Milliseconds(), "error", err)
		return nil, err
	}
	r.logger.Debug("tool completed", "tool", name, "duration_ms", duration.Milliseconds())
	return env, nil
}

func (r *Registry) dispatch(ctx context.Context, e *entry, args json.RawMessage) (Envelope, error) {
	args = bytes.TrimSpace(args)
	if len(args) == 0 || bytes.Equal(args, []byte("null")) {
		args = json.RawMessage("{}")
	}

	var instance any
	if err := json.Unmarshal(args, &instance); err != nil {
		return nil, &InvalidArgumentError{Tool: e.tool.Name, Err: fmt.Errorf("arguments are not valid JSON: %w", err)}
	}
	if _, isObject := instance.(map[string]any); !isObject {
		return nil, &InvalidArgumentError{Tool: e.tool.Name, Err: errors.New("arguments must be a JSON object")}
	}
	if err := e.resolved.Validate(instance); err != nil {
		return nil, &InvalidArgumentError{Tool: e.tool.Name, Err: err}
	}

	// Nothing has run yet, so a cancelled call has nothing to unwind.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	env, err := e.tool.Handler(ctx, args)
	if err != nil {
		var argErr *InvalidArgumentError
		if errors.As(err, &argErr) && argErr.Tool == "" {
			argErr.Tool = e.tool.Name
		}
		return nil, err
	}
	return env, nil
}

// Typed adapts a function taking a decoded input struct into a Handler.
// Decoding failures are reported as InvalidArgumentError.
func Typed[T any](fn func(ctx context.Context, input T) (Envelope, error)) Handler {
	return func(ctx context.Context, args json.RawMessage) (Envelope, error) {
		var input T
		if err := json.Unmarshal(args, &input); err != nil {
			return nil, &InvalidArgumentError{Err: err}
		}
		return fn(ctx, input)
	}
}
