/*
dispatch performs the network call for a resolved tool invocation. The
tool namespace is small and flat, so a call maps to an endpoint by
appending the tool name to a fixed base path.
*/
package dispatch

import (
	"context"
	"errors"
	"net/http"

	// Packages
	mcp "github.com/NageshMuniraja/MCP-Project"
	schema "github.com/NageshMuniraja/MCP-Project/pkg/schema"
	client "github.com/mutablelogic/go-client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a dispatcher for the tool endpoints rooted at the given
// URL, e.g. "http://localhost:8000/tools"
func New(url string, opts ...client.ClientOpt) (*Client, error) {
	c := new(Client)
	if client, err := client.New(append(opts, client.OptEndpoint(url))...); err != nil {
		return nil, err
	} else {
		c.Client = client
	}
	return c, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run dispatches a normalized tool call and returns the result decoded
// as JSON. The result is opaque: it is passed through to the caller
// unchanged. Any failure - unreachable endpoint, non-success status or
// an undecodable body - is returned as ErrDispatch and is terminal for
// the current question.
func (c *Client) Run(ctx context.Context, call *schema.ToolCall) (any, error) {
	// The arguments are the request body when present, otherwise the
	// request is bodiless
	var req client.Payload
	if len(call.Input) > 0 {
		var err error
		if req, err = client.NewJSONRequest(call.Input); err != nil {
			return nil, mcp.ErrBadParameter.Wrap(err)
		}
	} else {
		req = client.NewRequestEx(http.MethodPost, client.ContentTypeJson)
	}

	// Response
	var result any
	if err := c.DoWithContext(ctx, req, &result, client.OptPath(call.Name)); err != nil {
		return nil, mcp.ErrDispatch.Wrap(err)
	}

	// Return success
	return result, nil
}

// Status returns the HTTP status carried by a dispatch error, or zero
// when the failure happened before a status was received
func Status(err error) int {
	var status httpresponse.Err
	if errors.As(err, &status) {
		return int(status)
	}
	return 0
}
