package schema

import (
	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Names of the mail tools
const (
	ToolUnread = "get_unread_emails"
	ToolSearch = "search_emails"
	ToolFull   = "get_email_full"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// MailTools returns the static definitions of the mail tools. The
// table is defined once and immutable for the process lifetime; both
// the reasoning step and the tool endpoint server describe their tools
// from it.
func MailTools() []ToolDefinition {
	return []ToolDefinition{
		{
			Name:        ToolUnread,
			Description: "Return a short list of unread emails (id, headers, snippet).",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"max_results": {Type: "integer", Description: "Maximum number of emails to return"},
				},
			},
		},
		{
			Name:        ToolSearch,
			Description: "Search emails using Gmail query language. Parameters: query (string), max_results (int).",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"query":       {Type: "string", Description: "Search query in Gmail query language"},
					"max_results": {Type: "integer", Description: "Maximum number of results to return"},
				},
			},
		},
		{
			Name:        ToolFull,
			Description: "Return full email content (body + attachments preview) for a given message id.",
			InputSchema: &jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"message_id": {Type: "string", Description: "Identifier of the message to fetch"},
				},
			},
		},
	}
}

// MailTool returns the definition of a single mail tool by name, or
// nil if the name is not one of the mail tools.
func MailTool(name string) *ToolDefinition {
	for _, tool := range MailTools() {
		if tool.Name == name {
			return &tool
		}
	}
	return nil
}
