/*
toolkit is a collection of tools with unique names, executed by name
with schema-validated JSON input. It backs the tool endpoint server.
*/
package toolkit

import (
	"context"
	"encoding/json"

	// Packages
	mcp "github.com/NageshMuniraja/MCP-Project"
	schema "github.com/NageshMuniraja/MCP-Project/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Toolkit is a collection of tools with unique names
type Toolkit struct {
	tools map[string]mcp.Tool
	names []string
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new toolkit with the given tools.
// Returns an error if any tool has an invalid or duplicate name.
func New(tools ...mcp.Tool) (*Toolkit, error) {
	tk := &Toolkit{
		tools: make(map[string]mcp.Tool),
	}
	if err := tk.Register(tools...); err != nil {
		return nil, err
	}
	return tk, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Register adds one or more tools to the toolkit.
// Returns an error if any tool has an invalid or duplicate name.
func (tk *Toolkit) Register(tools ...mcp.Tool) error {
	for _, t := range tools {
		name := t.Name()
		if !types.IsIdentifier(name) {
			return mcp.ErrBadParameter.Withf("invalid tool name: %q", name)
		}
		if _, exists := tk.tools[name]; exists {
			return mcp.ErrBadParameter.Withf("duplicate tool name: %q", name)
		}
		tk.tools[name] = t
		tk.names = append(tk.names, name)
	}
	return nil
}

// Tools returns all tools in the toolkit, in registration order
func (tk *Toolkit) Tools() []mcp.Tool {
	result := make([]mcp.Tool, 0, len(tk.names))
	for _, name := range tk.names {
		result = append(result, tk.tools[name])
	}
	return result
}

// Lookup returns a tool by name, or nil if not found
func (tk *Toolkit) Lookup(name string) mcp.Tool {
	return tk.tools[name]
}

// Definitions returns the definitions of all tools in the toolkit
func (tk *Toolkit) Definitions() ([]schema.ToolDefinition, error) {
	result := make([]schema.ToolDefinition, 0, len(tk.names))
	for _, t := range tk.Tools() {
		s, err := t.Schema()
		if err != nil {
			return nil, err
		}
		result = append(result, schema.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: s,
		})
	}
	return result, nil
}

// Run executes a tool by name with the given input, which may be nil.
// Returns an error if the tool is not found, the input does not match
// the tool schema, or the tool execution fails.
func (tk *Toolkit) Run(ctx context.Context, name string, input json.RawMessage) (any, error) {
	// Lookup the tool
	tool := tk.Lookup(name)
	if tool == nil {
		return nil, mcp.ErrNotFound.Withf("tool not found: %q", name)
	}

	// Validate input against schema if provided
	if len(input) > 0 {
		schema, err := tool.Schema()
		if err != nil {
			return nil, mcp.ErrInternalServerError.Withf("schema generation failed: %v", err)
		}
		if schema != nil {
			var mapInput map[string]any
			if err := json.Unmarshal(input, &mapInput); err != nil {
				return nil, mcp.ErrBadParameter.Withf("failed to unmarshal JSON input: %v", err)
			}
			resolved, err := schema.Resolve(nil)
			if err != nil {
				return nil, mcp.ErrInternalServerError.Withf("schema resolution failed: %v", err)
			}
			if err := resolved.Validate(mapInput); err != nil {
				return nil, mcp.ErrBadParameter.Withf("input validation failed: %v", err)
			}
		}
	}

	// Run the tool with raw JSON
	return tool.Run(ctx, input)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (tk *Toolkit) String() string {
	return types.Stringify(tk.Tools())
}
