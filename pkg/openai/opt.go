package openai

import (
	// Packages
	schema "github.com/NageshMuniraja/MCP-Project/pkg/schema"
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt modifies a completion request before it is sent
type Opt func(*reqCompletion) error

// toolDef is the wire shape of a tool definition
type toolDef struct {
	Type     string       `json:"type"`
	Function toolFunction `json:"function"`
}

type toolFunction struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithMaxTokens caps the size of the completion
func WithMaxTokens(v uint64) Opt {
	return func(req *reqCompletion) error {
		req.MaxTokens = v
		return nil
	}
}

// WithTools offers tool definitions the model may invoke
func WithTools(tools ...schema.ToolDefinition) Opt {
	return func(req *reqCompletion) error {
		for _, tool := range tools {
			req.Tools = append(req.Tools, toolDef{
				Type: "function",
				Function: toolFunction{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  tool.InputSchema,
				},
			})
		}
		return nil
	}
}

// WithToolChoice sets the tool-choice policy, e.g. "auto" or "none"
func WithToolChoice(v string) Opt {
	return func(req *reqCompletion) error {
		req.ToolChoice = v
		return nil
	}
}
