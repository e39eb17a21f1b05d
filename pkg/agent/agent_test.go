package agent_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	// Packages
	mcp "github.com/NageshMuniraja/MCP-Project"
	agent "github.com/NageshMuniraja/MCP-Project/pkg/agent"
	dispatch "github.com/NageshMuniraja/MCP-Project/pkg/dispatch"
	openai "github.com/NageshMuniraja/MCP-Project/pkg/openai"
	assert "github.com/stretchr/testify/assert"
)

const toolCallResponse = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"model": "gpt-4o-mini",
	"choices": [{
		"index": 0,
		"finish_reason": "tool_calls",
		"message": {
			"role": "assistant",
			"tool_calls": [{
				"id": "call_1",
				"type": "function",
				"function": {
					"name": "search_emails",
					"arguments": "{\"query\": \"from:\\\"Alice\\\"\", \"max_results\": 5}"
				}
			}]
		}
	}]
}`

const directResponse = `{
	"id": "chatcmpl-2",
	"object": "chat.completion",
	"model": "gpt-4o-mini",
	"choices": [{
		"index": 0,
		"finish_reason": "stop",
		"message": {"role": "assistant", "content": "Hello there."}
	}]
}`

const finalResponse = `{
	"id": "chatcmpl-3",
	"object": "chat.completion",
	"model": "gpt-4o-mini",
	"choices": [{
		"index": 0,
		"finish_reason": "stop",
		"message": {"role": "assistant", "content": "Alice sent you one email."}
	}]
}`

// llmServer is a completions stub. The decision step (tools offered)
// answers per the decision field; the answer step returns finalResponse
// and records the messages it was given.
type llmServer struct {
	*httptest.Server
	decision string
	calls    int
	answered []string
}

func newLLMServer(t *testing.T, decision string) *llmServer {
	t.Helper()
	stub := &llmServer{decision: decision}
	mux := http.NewServeMux()
	mux.HandleFunc("/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		stub.calls++
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Error(err)
		}
		var req struct {
			Tools    []any `json:"tools"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		if len(req.Tools) > 0 {
			_, _ = w.Write([]byte(stub.decision))
		} else {
			for _, message := range req.Messages {
				stub.answered = append(stub.answered, message.Content)
			}
			_, _ = w.Write([]byte(finalResponse))
		}
	})
	stub.Server = httptest.NewServer(mux)
	t.Cleanup(stub.Close)
	return stub
}

// toolServer answers the search tool and records the query it was sent
func toolServer(t *testing.T) (*httptest.Server, *string) {
	t.Helper()
	var query string
	mux := http.NewServeMux()
	mux.HandleFunc("/tools/search_emails", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query string `json:"query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Error(err)
		}
		query = req.Query
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count": 1, "results": [{"id": "m1", "snippet": "hi"}]}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &query
}

func newAgent(t *testing.T, llm *llmServer, endpoint string) *agent.Agent {
	t.Helper()
	client, err := openai.NewWithEndpoint(llm.URL, "test-key")
	if err != nil {
		t.Fatal(err)
	}
	dispatcher, err := dispatch.New(endpoint)
	if err != nil {
		t.Fatal(err)
	}
	return agent.New("gpt-4o-mini", client, dispatcher)
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_agent_001(t *testing.T) {
	assert := assert.New(t)

	// The model answers directly, so no tool endpoint is contacted
	llm := newLLMServer(t, directResponse)
	a := newAgent(t, llm, "http://127.0.0.1:1/tools")

	answer, err := a.Ask(context.TODO(), "Say hello")
	assert.NoError(err)
	assert.Equal("Hello there.", answer)
	assert.Equal(1, llm.calls)
}

func Test_agent_002(t *testing.T) {
	assert := assert.New(t)

	llm := newLLMServer(t, toolCallResponse)
	tools, query := toolServer(t)
	a := newAgent(t, llm, tools.URL+"/tools")

	answer, err := a.Ask(context.TODO(), "Any emails from Alice?")
	assert.NoError(err)
	assert.Equal("Alice sent you one email.", answer)
	assert.Equal(2, llm.calls)
	assert.Equal(`from:"Alice"`, *query)

	// The answer step is fed the question and the tool output
	joined := strings.Join(llm.answered, "\n")
	assert.Contains(joined, "User question: Any emails from Alice?")
	assert.Contains(joined, "Tool (search_emails) output:")
	assert.Contains(joined, `"count": 1`)
}

func Test_agent_003(t *testing.T) {
	assert := assert.New(t)

	t.Run("DispatchFailure", func(t *testing.T) {
		// The tool endpoint is unreachable, so the answer step never runs
		llm := newLLMServer(t, toolCallResponse)
		a := newAgent(t, llm, "http://127.0.0.1:1/tools")

		_, err := a.Ask(context.TODO(), "Any emails from Alice?")
		assert.ErrorIs(err, mcp.ErrDispatch)
		assert.Equal(1, llm.calls)
	})

	t.Run("MissingMessage", func(t *testing.T) {
		// A choice without a message is reported, never dereferenced
		llm := newLLMServer(t, `{
			"id": "chatcmpl-4",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "finish_reason": "stop"}]
		}`)
		a := newAgent(t, llm, "http://127.0.0.1:1/tools")

		_, err := a.Ask(context.TODO(), "hello")
		assert.ErrorIs(err, mcp.ErrInternalServerError)
		assert.Equal(1, llm.calls)
	})

	t.Run("UnknownTool", func(t *testing.T) {
		decision := strings.ReplaceAll(toolCallResponse, "search_emails", "delete_emails")
		llm := newLLMServer(t, decision)
		a := newAgent(t, llm, "http://127.0.0.1:1/tools")

		_, err := a.Ask(context.TODO(), "Delete everything")
		assert.ErrorIs(err, mcp.ErrNoTool)
		assert.Equal(1, llm.calls)
	})
}
