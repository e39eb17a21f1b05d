package gmail

import (
	"context"
	"encoding/json"

	// Packages
	mcp "github.com/NageshMuniraja/MCP-Project"
	schema "github.com/NageshMuniraja/MCP-Project/pkg/schema"
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// UnreadTool lists unread messages
type UnreadTool struct {
	service Service
}

// SearchTool searches messages with the provider query language
type SearchTool struct {
	service Service
}

// FullTool fetches the full content of a single message
type FullTool struct {
	service Service
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Server-side result caps applied when the request omits one
	defaultUnreadResults int64 = 5
	defaultSearchResults int64 = 10
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Tools returns the mail tools backed by the given service
func Tools(service Service) []mcp.Tool {
	return []mcp.Tool{
		&UnreadTool{service},
		&SearchTool{service},
		&FullTool{service},
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - UNREAD

func (t *UnreadTool) Name() string {
	return schema.ToolUnread
}

func (t *UnreadTool) Description() string {
	return schema.MailTool(schema.ToolUnread).Description
}

func (t *UnreadTool) Schema() (*jsonschema.Schema, error) {
	return schema.MailTool(schema.ToolUnread).InputSchema, nil
}

func (t *UnreadTool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req schema.UnreadRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, mcp.ErrBadParameter.Wrap(err)
		}
	}
	if req.MaxResults <= 0 {
		req.MaxResults = defaultUnreadResults
	}
	emails, err := t.service.Unread(ctx, req.MaxResults)
	if err != nil {
		return nil, err
	}
	return schema.UnreadResponse{Count: len(emails), Emails: emails}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - SEARCH

func (t *SearchTool) Name() string {
	return schema.ToolSearch
}

func (t *SearchTool) Description() string {
	return schema.MailTool(schema.ToolSearch).Description
}

func (t *SearchTool) Schema() (*jsonschema.Schema, error) {
	return schema.MailTool(schema.ToolSearch).InputSchema, nil
}

func (t *SearchTool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req schema.SearchRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, mcp.ErrBadParameter.Wrap(err)
		}
	}
	if req.Query == "" {
		return nil, mcp.ErrBadParameter.With("query is required")
	}
	if req.MaxResults <= 0 {
		req.MaxResults = defaultSearchResults
	}
	results, err := t.service.Search(ctx, req.Query, req.MaxResults)
	if err != nil {
		return nil, err
	}
	return schema.SearchResponse{Count: len(results), Results: results}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - FULL

func (t *FullTool) Name() string {
	return schema.ToolFull
}

func (t *FullTool) Description() string {
	return schema.MailTool(schema.ToolFull).Description
}

func (t *FullTool) Schema() (*jsonschema.Schema, error) {
	return schema.MailTool(schema.ToolFull).InputSchema, nil
}

func (t *FullTool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req schema.MessageRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, mcp.ErrBadParameter.Wrap(err)
		}
	}
	if req.MessageID == "" {
		return nil, mcp.ErrBadParameter.With("message_id is required")
	}
	return t.service.Full(ctx, req.MessageID)
}
