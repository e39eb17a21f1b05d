package openai

import (
	// Packages
	schema "github.com/NageshMuniraja/MCP-Project/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Message with text content and any tool calls requested by the model
type Message struct {
	RoleContent
	Calls ToolCalls `json:"tool_calls,omitempty"`
}

type RoleContent struct {
	Role    string `json:"role,omitempty"`    // assistant, user, tool, system
	Content any    `json:"content,omitempty"` // string or array of content parts
}

// ToolCalls is the wire shape of the model's tool invocations
type ToolCalls []ToolCall

type ToolCall struct {
	Id       string   `json:"id,omitempty"`
	Type     string   `json:"type,omitempty"`
	Function Function `json:"function,omitempty"`
}

// Function carries the tool name and the JSON-encoded arguments
type Function struct {
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewUserMessage creates a user message with text content
func NewUserMessage(text string) Message {
	return Message{RoleContent: RoleContent{Role: "user", Content: text}}
}

// NewSystemMessage creates a system message with text content
func NewSystemMessage(text string) Message {
	return Message{RoleContent: RoleContent{Role: "system", Content: text}}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Return the text content, or an empty string when the content is not
// plain text
func (message Message) Text() string {
	if text, ok := message.Content.(string); ok {
		return text
	}
	return ""
}

// Signal converts the first tool call into the untyped form consumed
// by the resolver. Returns nil when the message carries no tool calls.
func (message Message) Signal() schema.Signal {
	if len(message.Calls) == 0 {
		return nil
	}
	return schema.SignalFrom(message.Calls[0])
}
