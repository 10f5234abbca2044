package tools

import (
	"encoding/json"
	"fmt"
)

// Envelope is the JSON object wrapping a tool's return value.
// Values are limited to strings, numbers, nulls, lists and nested objects.
type Envelope map[string]any

// URLEnvelope wraps v as {"url": v}.
func URLEnvelope(v any) Envelope {
	return Envelope{"url": v}
}

// JSON serializes the envelope.
func (e Envelope) JSON() ([]byte, error) {
	data, err := json.Marshal(map[string]any(e))
	if err != nil {
		return nil, fmt.Errorf("serialize envelope: %w", err)
	}
	return data, nil
}
