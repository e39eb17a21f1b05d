package resolver

import (
	"regexp"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	// reprPattern matches textual names that are really a debug
	// rendering of the call object rather than a structured field
	reprPattern = regexp.MustCompile(`\bFunction\(|\bfunction\(|\bToolCall\(|\bChatCompletion`)

	// reprNamePattern extracts the name=... value embedded in a debug
	// rendering
	reprNamePattern = regexp.MustCompile(`name=['"]?([A-Za-z0-9_\-]+)['"]?`)

	// reprTailPattern is the last-resort fallback: the final
	// identifier-like token before a closing parenthesis
	reprTailPattern = regexp.MustCompile(`([A-Za-z0-9_\-]+)\)\s*$`)
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// sanitizeName recovers a plain tool name from a textual value. When
// the text looks like a serialized call object, the embedded name is
// extracted by pattern matching; otherwise the text is returned as-is.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if !reprPattern.MatchString(name) {
		return name
	}
	if match := reprNamePattern.FindStringSubmatch(name); match != nil {
		return match[1]
	}
	if match := reprTailPattern.FindStringSubmatch(name); match != nil {
		return match[1]
	}
	return name
}
