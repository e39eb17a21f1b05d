/*
gmail implements the mail-provider side of the tool endpoints using the
Gmail REST API.
*/
package gmail

import (
	"context"
	"errors"

	// Packages
	mcp "github.com/NageshMuniraja/MCP-Project"
	schema "github.com/NageshMuniraja/MCP-Project/pkg/schema"
	gmail "google.golang.org/api/gmail/v1"
	googleapi "google.golang.org/api/googleapi"
	option "google.golang.org/api/option"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Service is the surface of the mail provider the tools depend on
type Service interface {
	// Return summaries of unread messages
	Unread(ctx context.Context, maxResults int64) ([]schema.Email, error)

	// Return summaries of messages matching a query
	Search(ctx context.Context, query string, maxResults int64) ([]schema.Email, error)

	// Return the full content of a single message
	Full(ctx context.Context, id string) (*schema.Email, error)
}

// Client wraps the Gmail service for the authenticated user
type Client struct {
	service *gmail.Service
}

var _ Service = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Messages are always read for the authenticated user
	userId = "me"

	// Attachment previews are capped to keep tool results small
	previewSize = 1000
)

var metadataHeaders = []string{"From", "To", "Subject", "Date"}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client for the authenticated user
func New(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	service, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{service: service}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Unread returns short summaries of unread messages: id, headers
// (From, To, Subject, Date) and a snippet
func (c *Client) Unread(ctx context.Context, maxResults int64) ([]schema.Email, error) {
	list, err := c.service.Users.Messages.List(userId).LabelIds("UNREAD").MaxResults(maxResults).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return c.summaries(ctx, list.Messages)
}

// Search returns short summaries of messages matching a query in the
// Gmail query language
func (c *Client) Search(ctx context.Context, query string, maxResults int64) ([]schema.Email, error) {
	list, err := c.service.Users.Messages.List(userId).Q(query).MaxResults(maxResults).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return c.summaries(ctx, list.Messages)
}

// Full returns the full content of a message: headers, the text body
// and attachment metadata with short previews of text-like attachments
func (c *Client) Full(ctx context.Context, id string) (*schema.Email, error) {
	data, err := c.service.Users.Messages.Get(userId, id).Format("full").Context(ctx).Do()
	if err != nil {
		var apierr *googleapi.Error
		if errors.As(err, &apierr) && apierr.Code == 404 {
			return nil, mcp.ErrNotFound.Withf("message %q", id)
		}
		return nil, err
	}

	email := schema.Email{
		ID:       data.Id,
		ThreadID: data.ThreadId,
		Headers:  headerMap(data.Payload),
		Snippet:  data.Snippet,
		Body:     textFromPayload(data.Payload),
	}

	// Collect attachments and fetch previews for those stored
	// separately from the message body
	if data.Payload != nil {
		email.Attachments = collectAttachments(data.Payload.Parts)
	}
	for i, attachment := range email.Attachments {
		if attachment.AttachmentID == "" {
			continue
		}
		body, err := c.service.Users.Messages.Attachments.Get(userId, id, attachment.AttachmentID).Context(ctx).Do()
		if err != nil {
			continue
		}
		if text, ok := decodeBody(body.Data); ok {
			email.Attachments[i].ContentPreview = preview(text, previewSize)
		}
	}

	return &email, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// summaries fetches metadata for each listed message
func (c *Client) summaries(ctx context.Context, messages []*gmail.Message) ([]schema.Email, error) {
	result := make([]schema.Email, 0, len(messages))
	for _, message := range messages {
		data, err := c.service.Users.Messages.Get(userId, message.Id).Format("metadata").MetadataHeaders(metadataHeaders...).Context(ctx).Do()
		if err != nil {
			return nil, err
		}
		result = append(result, schema.Email{
			ID:       data.Id,
			ThreadID: data.ThreadId,
			Headers:  headerMap(data.Payload),
			Snippet:  data.Snippet,
		})
	}
	return result, nil
}
