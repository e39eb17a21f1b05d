package dispatch_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	mcp "github.com/NageshMuniraja/MCP-Project"
	dispatch "github.com/NageshMuniraja/MCP-Project/pkg/dispatch"
	schema "github.com/NageshMuniraja/MCP-Project/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

// toolServer mounts stub tool endpoints under the flat namespace the
// dispatcher expects
func toolServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	// Echoes the request body back as the result
	mux.HandleFunc("/search_emails", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Error(err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	})

	// Accepts a bodiless request
	mux.HandleFunc("/get_unread_emails", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if len(body) > 0 {
			t.Errorf("expected bodiless request, got %q", string(body))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"count": 0, "emails": []any{}})
	})

	// Returns a body which is not valid JSON
	mux.HandleFunc("/get_email_full", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("not json"))
	})

	// Anything else is not found
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"code": http.StatusNotFound, "reason": "tool not found"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func Test_dispatch_001(t *testing.T) {
	assert := assert.New(t)
	server := toolServer(t)

	client, err := dispatch.New(server.URL)
	if !assert.NoError(err) {
		t.FailNow()
	}

	t.Run("RoundTrip", func(t *testing.T) {
		result, err := client.Run(context.TODO(), &schema.ToolCall{
			Name:  "search_emails",
			Input: map[string]any{"query": "x", "max_results": 2},
		})
		if assert.NoError(err) {
			assert.Equal(map[string]any{"query": "x", "max_results": float64(2)}, result)
		}
	})

	t.Run("Bodiless", func(t *testing.T) {
		result, err := client.Run(context.TODO(), &schema.ToolCall{
			Name:  "get_unread_emails",
			Input: map[string]any{},
		})
		if assert.NoError(err) {
			assert.Equal(map[string]any{"count": float64(0), "emails": []any{}}, result)
		}
	})
}

func Test_dispatch_002(t *testing.T) {
	assert := assert.New(t)
	server := toolServer(t)

	client, err := dispatch.New(server.URL)
	if !assert.NoError(err) {
		t.FailNow()
	}

	t.Run("NotFound", func(t *testing.T) {
		_, err := client.Run(context.TODO(), &schema.ToolCall{
			Name:  "send_emails",
			Input: map[string]any{"to": "alice@example.com"},
		})
		if assert.ErrorIs(err, mcp.ErrDispatch) {
			assert.Equal(http.StatusNotFound, dispatch.Status(err))
		}
	})

	t.Run("DecodeError", func(t *testing.T) {
		_, err := client.Run(context.TODO(), &schema.ToolCall{
			Name:  "get_email_full",
			Input: map[string]any{"message_id": "abc"},
		})
		assert.ErrorIs(err, mcp.ErrDispatch)
	})

	t.Run("Transport", func(t *testing.T) {
		unreachable, err := dispatch.New("http://127.0.0.1:1/tools")
		if !assert.NoError(err) {
			t.FailNow()
		}
		_, err = unreachable.Run(context.TODO(), &schema.ToolCall{
			Name:  "get_unread_emails",
			Input: map[string]any{},
		})
		if assert.ErrorIs(err, mcp.ErrDispatch) {
			assert.Equal(0, dispatch.Status(err))
		}
	})
}
