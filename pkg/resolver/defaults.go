package resolver

import (
	"fmt"
	"regexp"
	"strings"

	// Packages
	mcp "github.com/NageshMuniraja/MCP-Project"
	schema "github.com/NageshMuniraja/MCP-Project/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// synthesizer builds default arguments for a tool from the question
// text, or fails when a required argument cannot be defaulted
type synthesizer func(question string) (map[string]any, error)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// defaultMaxResults caps the number of results when the reasoning step
// did not specify one
const defaultMaxResults = 5

// senderPattern is the heuristic used to scope a default search query
// to a sender mentioned in the question, e.g. "emails from Alice"
var senderPattern = regexp.MustCompile(`(?i)from\s+([\w\s.\-@]+)`)

// synthesizers maps a tool name to its default-argument policy. Adding
// a tool is a table entry, not a code change.
var synthesizers = map[string]synthesizer{
	schema.ToolSearch: searchDefaults,
	schema.ToolUnread: unreadDefaults,
	schema.ToolFull:   fullDefaults,
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// defaultArguments applies the per-tool default policy. Tools without
// a policy get an empty argument set.
func defaultArguments(name, question string) (map[string]any, error) {
	if synthesize, exists := synthesizers[name]; exists {
		return synthesize(question)
	}
	return map[string]any{}, nil
}

// searchDefaults scopes the query to a "from <name>" sender when the
// question contains one, and falls back to the raw question text
func searchDefaults(question string) (map[string]any, error) {
	query := question
	if match := senderPattern.FindStringSubmatch(question); match != nil {
		sender := strings.Trim(strings.TrimSpace(match[1]), `"'?.`)
		query = fmt.Sprintf("from:%q", sender)
	}
	return map[string]any{
		"query":       query,
		"max_results": defaultMaxResults,
	}, nil
}

func unreadDefaults(string) (map[string]any, error) {
	return map[string]any{
		"max_results": defaultMaxResults,
	}, nil
}

// fullDefaults always fails: a message id cannot be synthesized from
// the question text
func fullDefaults(string) (map[string]any, error) {
	return nil, mcp.ErrMissingArgument.Withf("%s requires a message_id; open a specific email or search first", schema.ToolFull)
}
