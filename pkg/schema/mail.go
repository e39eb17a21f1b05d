package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// UnreadRequest is the body for the get_unread_emails operation
type UnreadRequest struct {
	MaxResults int64 `json:"max_results,omitempty"`
}

// UnreadResponse is the result of the get_unread_emails operation
type UnreadResponse struct {
	Count  int     `json:"count"`
	Emails []Email `json:"emails"`
}

// SearchRequest is the body for the search_emails operation. The query
// uses the mail provider's query language, e.g. `from:"alice"`.
type SearchRequest struct {
	Query      string `json:"query"`
	MaxResults int64  `json:"max_results,omitempty"`
}

// SearchResponse is the result of the search_emails operation
type SearchResponse struct {
	Count   int     `json:"count"`
	Results []Email `json:"results"`
}

// MessageRequest is the body for the get_email_full operation
type MessageRequest struct {
	MessageID string `json:"message_id"`
}

// Email is a mail message, either as a short summary (headers and
// snippet only) or in full (body and attachments included)
type Email struct {
	ID          string            `json:"id"`
	ThreadID    string            `json:"threadId,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Snippet     string            `json:"snippet,omitempty"`
	Body        string            `json:"body,omitempty"`
	Attachments []Attachment      `json:"attachments,omitempty"`
}

// Attachment is a mail attachment with an optional short text preview
type Attachment struct {
	Filename       string  `json:"filename"`
	MimeType       string  `json:"mimeType,omitempty"`
	AttachmentID   string  `json:"attachmentId,omitempty"`
	Size           int64   `json:"size,omitempty"`
	ContentPreview *string `json:"content_preview"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (e Email) String() string {
	return types.Stringify(e)
}
