package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	agent "github.com/NageshMuniraja/MCP-Project/pkg/agent"
	dispatch "github.com/NageshMuniraja/MCP-Project/pkg/dispatch"
	openai "github.com/NageshMuniraja/MCP-Project/pkg/openai"
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Reasoning step and tool endpoints
	OpenAIKey string `env:"OPENAI_API_KEY" help:"OpenAI API Key"`
	Endpoint  string `env:"MCP_BASE" default:"http://localhost:8000/tools" help:"Tool endpoint base URL"`
	Model     string `default:"gpt-4o-mini" help:"Model for the reasoning step"`

	// Context
	ctx context.Context
}

type CLI struct {
	Globals

	Ask   AskCmd   `cmd:"" help:"Answer a single question"`
	Chat  ChatCmd  `cmd:"" help:"Answer questions interactively"`
	Tools ToolsCmd `cmd:"" help:"List the mail tools"`
	Serve ServeCmd `cmd:"" help:"Serve the mail tool endpoints"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Mail question-answering agent"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

func clientOpts(globals *Globals) []client.ClientOpt {
	result := []client.ClientOpt{}
	if globals.Debug || globals.Verbose {
		result = append(result, client.OptTrace(os.Stderr, globals.Verbose))
	}
	return result
}

// newAgent wires the reasoning-step client and the tool dispatcher
// together from the global options
func newAgent(globals *Globals) (*agent.Agent, error) {
	llm, err := openai.New(globals.OpenAIKey, clientOpts(globals)...)
	if err != nil {
		return nil, err
	}
	dispatcher, err := dispatch.New(globals.Endpoint, clientOpts(globals)...)
	if err != nil {
		return nil, err
	}
	return agent.New(globals.Model, llm, dispatcher), nil
}
