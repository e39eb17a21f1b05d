/*
agent answers a single question per turn: one completion to decide
whether a tool is needed, an optional tool round-trip, and a final
completion over the tool output.
*/
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	// Packages
	mcp "github.com/NageshMuniraja/MCP-Project"
	dispatch "github.com/NageshMuniraja/MCP-Project/pkg/dispatch"
	openai "github.com/NageshMuniraja/MCP-Project/pkg/openai"
	resolver "github.com/NageshMuniraja/MCP-Project/pkg/resolver"
	schema "github.com/NageshMuniraja/MCP-Project/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Agent wires the reasoning step, the resolver and the dispatcher
// together for one question per turn
type Agent struct {
	model      string
	llm        *openai.Client
	resolver   *resolver.Resolver
	dispatcher *dispatch.Client
	tools      []schema.ToolDefinition
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Token caps for the decision and answer completions
	decisionMaxTokens = 1000
	answerMaxTokens   = 1500
)

const (
	decisionPrompt = "You are an assistant that can call tools to access the user's Gmail. " +
		"If you need email data to answer, call exactly one of the available tools: " +
		"get_unread_emails, search_emails, or get_email_full."
	answerPrompt = "You are an assistant that answers the user's question using the provided " +
		"tool output. Be concise and include summaries when appropriate."
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates an agent for a model, with the mail tool definitions and
// a dispatcher bound to the tool endpoint base URL
func New(model string, llm *openai.Client, dispatcher *dispatch.Client) *Agent {
	tools := schema.MailTools()
	return &Agent{
		model:      model,
		llm:        llm,
		resolver:   resolver.New(tools...),
		dispatcher: dispatcher,
		tools:      tools,
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Ask answers one question. When the model requests a tool, the call is
// resolved and dispatched and a second completion produces the final
// answer from the tool output. Resolution and dispatch failures are
// returned as errors; the question is never retried.
func (agent *Agent) Ask(ctx context.Context, question string) (string, error) {
	// Ask the model whether a tool is required and which one
	response, err := agent.llm.Completion(ctx, agent.model, []openai.Message{
		openai.NewSystemMessage(decisionPrompt),
		openai.NewUserMessage(question),
	}, openai.WithTools(agent.tools...), openai.WithMaxTokens(decisionMaxTokens))
	if err != nil {
		return "", err
	} else if response.Num() == 0 {
		return "", mcp.ErrInternalServerError.With("no completion returned")
	}

	// No tool call means the model answered directly
	message := response.Message(0)
	if message == nil {
		return "", mcp.ErrInternalServerError.With("no message returned")
	}
	signal := message.Signal()
	if signal == nil {
		return message.Text(), nil
	}

	// Normalize the tool call and run the tool
	call, err := agent.resolver.Resolve(signal, question)
	if err != nil {
		return "", err
	}
	result, err := agent.dispatcher.Run(ctx, call)
	if err != nil {
		return "", err
	}

	// Ask the model to answer the original question using the tool output
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	final, err := agent.llm.Completion(ctx, agent.model, []openai.Message{
		openai.NewSystemMessage(answerPrompt),
		openai.NewUserMessage(fmt.Sprintf("User question: %s", question)),
		openai.NewUserMessage(fmt.Sprintf("Tool (%s) output:\n%s", call.Name, string(output))),
	}, openai.WithMaxTokens(answerMaxTokens))
	if err != nil {
		return "", err
	} else if final.Num() == 0 {
		return "", mcp.ErrInternalServerError.With("no completion returned")
	}

	// Return the final answer
	return final.Text(0), nil
}
