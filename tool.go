package mcp

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Tool is a named remote operation with a declared argument schema.
// Implementations run on the server side of the tool endpoints; the
// client side only ever sees their definitions.
type Tool interface {
	// Return the name of the tool
	Name() string

	// Return the description of the tool
	Description() string

	// Return the JSON schema for the tool input
	Schema() (*jsonschema.Schema, error)

	// Run the tool with the given input as JSON (may be nil)
	Run(ctx context.Context, input json.RawMessage) (any, error)
}
