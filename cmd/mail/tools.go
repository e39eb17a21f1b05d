package main

import (
	"fmt"

	// Packages
	schema "github.com/NageshMuniraja/MCP-Project/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolsCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (*ToolsCmd) Run(globals *Globals) error {
	for _, tool := range schema.MailTools() {
		fmt.Printf("%s\n  %s\n", tool.Name, tool.Description)
	}
	return nil
}
