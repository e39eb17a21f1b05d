/*
openai implements a client for the OpenAI chat completions API, trimmed
to what the mail agent uses: text completions with tool definitions.
https://platform.openai.com/docs/api-reference
*/
package openai

import (
	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint    = "https://api.openai.com/v1"
	defaultName = "openai"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client
func New(apiKey string, opts ...client.ClientOpt) (*Client, error) {
	return NewWithEndpoint(endPoint, apiKey, opts...)
}

// NewWithEndpoint creates a client against an alternate endpoint, for
// OpenAI-compatible services and for testing
func NewWithEndpoint(endpoint, apiKey string, opts ...client.ClientOpt) (*Client, error) {
	opts = append(opts, client.OptEndpoint(endpoint))
	if apiKey != "" {
		opts = append(opts, client.OptReqToken(client.Token{
			Scheme: client.Bearer,
			Value:  apiKey,
		}))
	}
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{client}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Return the name of the client
func (*Client) Name() string {
	return defaultName
}
