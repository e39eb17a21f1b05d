package openai

import (
	"context"
	"encoding/json"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Completion Response
type Response struct {
	Id          string `json:"id"`
	Type        string `json:"object"`
	Created     uint64 `json:"created"`
	Model       string `json:"model"`
	Completions `json:"choices"`
	Metrics     `json:"usage,omitempty"`
}

// Completion choices
type Completions []Completion

// Completion Variation
type Completion struct {
	Index   uint64   `json:"index"`
	Message *Message `json:"message"`
	Reason  string   `json:"finish_reason,omitempty"`
}

// Metrics
type Metrics struct {
	PromptTokens     uint64 `json:"prompt_tokens,omitempty"`
	CompletionTokens uint64 `json:"completion_tokens,omitempty"`
	TotalTokens      uint64 `json:"total_tokens,omitempty"`
}

type reqCompletion struct {
	Model      string    `json:"model"`
	MaxTokens  uint64    `json:"max_completion_tokens,omitempty"`
	Tools      []toolDef `json:"tools,omitempty"`
	ToolChoice any       `json:"tool_choice,omitempty"`
	Messages   []Message `json:"messages"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Response) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Completion sends the messages to a model and returns the completion
// response. Use WithTools to offer tool definitions the model may
// invoke instead of answering directly.
func (c *Client) Completion(ctx context.Context, model string, messages []Message, opts ...Opt) (*Response, error) {
	request := reqCompletion{
		Model:    model,
		Messages: messages,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(&request); err != nil {
			return nil, err
		}
	}

	// Request
	req, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	// Response
	var response Response
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("chat", "completions")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// COMPLETIONS

// Return the number of completions
func (c Completions) Num() int {
	return len(c)
}

// Return message for a specific completion
func (c Completions) Message(index int) *Message {
	if index < 0 || index >= len(c) {
		return nil
	}
	return c[index].Message
}

// Return the text content for a specific completion
func (c Completions) Text(index int) string {
	if message := c.Message(index); message != nil {
		return message.Text()
	}
	return ""
}

// Return the tool calls for a specific completion. Will return nil if
// no tool calls were returned.
func (c Completions) ToolCalls(index int) ToolCalls {
	if message := c.Message(index); message != nil {
		return message.Calls
	}
	return nil
}
