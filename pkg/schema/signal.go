package schema

import (
	"encoding/json"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Signal is the raw, shape-unstable value produced by the reasoning
// step when it wants a tool invoked. Different SDK versions expose the
// tool name and arguments under different fields, sometimes nested one
// level deep, so the signal is kept untyped and probed by the resolver.
type Signal map[string]any

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// SignalFrom converts any JSON-encodable value into a signal by
// round-tripping it through JSON. Returns nil if the value cannot be
// represented as a JSON object.
func SignalFrom(v any) Signal {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var signal Signal
	if err := json.Unmarshal(data, &signal); err != nil {
		return nil
	}
	return signal
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s Signal) String() string {
	return types.Stringify(s)
}
