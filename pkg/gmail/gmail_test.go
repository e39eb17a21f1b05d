package gmail_test

import (
	"context"
	"encoding/json"
	"testing"

	// Packages
	mcp "github.com/NageshMuniraja/MCP-Project"
	pkg "github.com/NageshMuniraja/MCP-Project/pkg/gmail"
	schema "github.com/NageshMuniraja/MCP-Project/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// MOCK SERVICE

type mockService struct {
	unread func(maxResults int64) ([]schema.Email, error)
	search func(query string, maxResults int64) ([]schema.Email, error)
	full   func(id string) (*schema.Email, error)
}

func (m *mockService) Unread(_ context.Context, maxResults int64) ([]schema.Email, error) {
	return m.unread(maxResults)
}

func (m *mockService) Search(_ context.Context, query string, maxResults int64) ([]schema.Email, error) {
	return m.search(query, maxResults)
}

func (m *mockService) Full(_ context.Context, id string) (*schema.Email, error) {
	return m.full(id)
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_gmail_001(t *testing.T) {
	assert := assert.New(t)
	service := &mockService{
		unread: func(maxResults int64) ([]schema.Email, error) {
			assert.Equal(int64(5), maxResults)
			return []schema.Email{{ID: "m1"}, {ID: "m2"}}, nil
		},
	}
	tool := pkg.Tools(service)[0]
	assert.Equal(schema.ToolUnread, tool.Name())

	t.Run("Defaults", func(t *testing.T) {
		result, err := tool.Run(context.TODO(), nil)
		assert.NoError(err)
		response, ok := result.(schema.UnreadResponse)
		assert.True(ok)
		assert.Equal(2, response.Count)
		assert.Len(response.Emails, 2)
	})

	t.Run("Explicit", func(t *testing.T) {
		service.unread = func(maxResults int64) ([]schema.Email, error) {
			assert.Equal(int64(3), maxResults)
			return nil, nil
		}
		result, err := tool.Run(context.TODO(), json.RawMessage(`{"max_results": 3}`))
		assert.NoError(err)
		response, ok := result.(schema.UnreadResponse)
		assert.True(ok)
		assert.Equal(0, response.Count)
	})
}

func Test_gmail_002(t *testing.T) {
	assert := assert.New(t)
	service := &mockService{
		search: func(query string, maxResults int64) ([]schema.Email, error) {
			assert.Equal(`from:"Alice"`, query)
			assert.Equal(int64(10), maxResults)
			return []schema.Email{{ID: "m1"}}, nil
		},
	}
	tool := pkg.Tools(service)[1]
	assert.Equal(schema.ToolSearch, tool.Name())

	t.Run("Query", func(t *testing.T) {
		result, err := tool.Run(context.TODO(), json.RawMessage(`{"query": "from:\"Alice\""}`))
		assert.NoError(err)
		response, ok := result.(schema.SearchResponse)
		assert.True(ok)
		assert.Equal(1, response.Count)
	})

	t.Run("MissingQuery", func(t *testing.T) {
		_, err := tool.Run(context.TODO(), json.RawMessage(`{}`))
		assert.ErrorIs(err, mcp.ErrBadParameter)
	})
}

func Test_gmail_003(t *testing.T) {
	assert := assert.New(t)
	service := &mockService{
		full: func(id string) (*schema.Email, error) {
			if id != "m1" {
				return nil, mcp.ErrNotFound.Withf("message %q", id)
			}
			return &schema.Email{ID: "m1", Body: "hello"}, nil
		},
	}
	tool := pkg.Tools(service)[2]
	assert.Equal(schema.ToolFull, tool.Name())

	t.Run("Found", func(t *testing.T) {
		result, err := tool.Run(context.TODO(), json.RawMessage(`{"message_id": "m1"}`))
		assert.NoError(err)
		email, ok := result.(*schema.Email)
		assert.True(ok)
		assert.Equal("hello", email.Body)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := tool.Run(context.TODO(), json.RawMessage(`{"message_id": "m2"}`))
		assert.ErrorIs(err, mcp.ErrNotFound)
	})

	t.Run("MissingMessageId", func(t *testing.T) {
		_, err := tool.Run(context.TODO(), nil)
		assert.ErrorIs(err, mcp.ErrBadParameter)
	})
}

func Test_gmail_004(t *testing.T) {
	assert := assert.New(t)
	for _, tool := range pkg.Tools(&mockService{}) {
		definition := schema.MailTool(tool.Name())
		assert.NotNil(definition)
		assert.Equal(definition.Description, tool.Description())
		toolSchema, err := tool.Schema()
		assert.NoError(err)
		assert.Equal(definition.InputSchema, toolSchema)
	}
}
