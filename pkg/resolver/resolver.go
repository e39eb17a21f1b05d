/*
resolver normalizes the shape-unstable tool-call value produced by the
reasoning step into a (name, arguments) pair that can be dispatched.
*/
package resolver

import (
	"encoding/json"
	"fmt"

	// Packages
	mcp "github.com/NageshMuniraja/MCP-Project"
	schema "github.com/NageshMuniraja/MCP-Project/pkg/schema"
	uuid "github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Resolver normalizes tool-call signals against a fixed set of tool
// definitions
type Resolver struct {
	known map[string]schema.ToolDefinition
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// namePaths is the ordered list of locations probed for the tool name.
// Kept as a data table so a new SDK shape is a new entry, not a new
// branch.
var namePaths = [][]string{
	{"name"},
	{"tool"},
	{"function", "name"},
	{"function"},
	{"tool_name"},
}

// argPaths is the ordered list of locations probed for the arguments
var argPaths = [][]string{
	{"arguments"},
	{"args"},
	{"function", "arguments"},
	{"arguments_json"},
	{"input"},
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a resolver for the given tool definitions
func New(tools ...schema.ToolDefinition) *Resolver {
	known := make(map[string]schema.ToolDefinition, len(tools))
	for _, tool := range tools {
		known[tool.Name] = tool
	}
	return &Resolver{known: known}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Resolve probes the signal for a tool name and arguments and returns a
// normalized call. When the signal carries no arguments, per-tool
// defaults are synthesized from the question text. Returns ErrNoTool
// when no known tool name can be extracted, and ErrMissingArgument
// when a required argument cannot be defaulted; malformed values in
// the signal degrade to "absent" rather than propagating.
func (r *Resolver) Resolve(signal schema.Signal, question string) (*schema.ToolCall, error) {
	name := extractName(signal)
	if name == "" {
		return nil, mcp.ErrNoTool.With("signal does not carry a tool name")
	}
	if _, exists := r.known[name]; !exists {
		return nil, mcp.ErrNoTool.Withf("unknown tool %q", name)
	}

	input := extractArguments(signal)
	if len(input) == 0 {
		var err error
		if input, err = defaultArguments(name, question); err != nil {
			return nil, err
		}
	}

	return &schema.ToolCall{
		ID:    callId(signal),
		Name:  name,
		Input: input,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// extractName probes the name locations in order and returns the first
// present, non-empty value, sanitized into a plain identifier. Returns
// an empty string when no location yields a name.
func extractName(signal schema.Signal) string {
	for _, path := range namePaths {
		value, exists := lookup(signal, path)
		if !exists || value == nil {
			continue
		}
		if name := nameOf(value); name != "" {
			return name
		}
	}
	return ""
}

// nameOf coerces a probed value into a tool name. Strings are used
// directly; objects are probed for a name-like field; anything else
// falls back to its textual representation.
func nameOf(value any) string {
	switch value := value.(type) {
	case string:
		return sanitizeName(value)
	case map[string]any:
		for _, key := range []string{"name", "tool"} {
			if name, ok := value[key].(string); ok && name != "" {
				return sanitizeName(name)
			}
		}
		return ""
	default:
		return sanitizeName(fmt.Sprint(value))
	}
}

// extractArguments probes the argument locations in order. A mapping is
// accepted as-is, a string is parsed as JSON, and anything else (or a
// parse failure) is treated as absent.
func extractArguments(signal schema.Signal) map[string]any {
	for _, path := range argPaths {
		value, exists := lookup(signal, path)
		if !exists || value == nil {
			continue
		}
		switch value := value.(type) {
		case map[string]any:
			if len(value) > 0 {
				return value
			}
		case string:
			var input map[string]any
			if err := json.Unmarshal([]byte(value), &input); err == nil && len(input) > 0 {
				return input
			}
		}
	}
	return nil
}

// lookup walks a field path one level at a time. Intermediate values
// must be objects; a missing or mistyped step means the path is absent.
func lookup(signal schema.Signal, path []string) (any, bool) {
	var value any = map[string]any(signal)
	for _, field := range path {
		parent, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		if value, ok = parent[field]; !ok {
			return nil, false
		}
	}
	return value, true
}

// callId returns the call identifier carried by the signal, or a fresh
// one when absent
func callId(signal schema.Signal) string {
	if id, ok := signal["id"].(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
