package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ToolCall is the normalized form of a tool invocation. By the time a
// call reaches the dispatcher, Name is a plain identifier matching one
// of the known tool definitions and Input is never nil.
type ToolCall struct {
	ID    string         `json:"id,omitempty"`
	Name  string         `json:"name"`
	Input map[string]any `json:"input,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t ToolCall) String() string {
	return types.Stringify(t)
}
