/*
httphandler exposes the tool endpoints over HTTP. Each tool is a flat
POST endpoint under the tools prefix, with a listing endpoint alongside.
*/
package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	// Packages
	mcp "github.com/NageshMuniraja/MCP-Project"
	schema "github.com/NageshMuniraja/MCP-Project/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Runner runs a named tool with raw JSON input and describes the tools
// it can run
type Runner interface {
	Run(ctx context.Context, name string, input json.RawMessage) (any, error)
	Definitions() ([]schema.ToolDefinition, error)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RegisterHandlers registers the tool endpoints on a mux
func RegisterHandlers(mux *http.ServeMux, runner Runner) {
	mux.HandleFunc(ToolListHandler(runner))
	mux.HandleFunc(ToolRunHandler(runner))
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// httpErr converts an mcp.Err to an httpresponse.Err, preserving the
// original error message. Unknown error codes map to 500.
func httpErr(err error) error {
	var mcpErr mcp.Err
	if !errors.As(err, &mcpErr) {
		return err
	}
	switch mcpErr {
	case mcp.ErrNotFound:
		return httpresponse.ErrNotFound.With(err)
	case mcp.ErrBadParameter:
		return httpresponse.ErrBadRequest.With(err)
	default:
		return httpresponse.ErrInternalError.With(err)
	}
}
