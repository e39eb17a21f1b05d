package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type AskCmd struct {
	Question []string `arg:"" optional:"" help:"Question to answer (reads stdin when omitted)"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *AskCmd) Run(globals *Globals) error {
	question := strings.Join(cmd.Question, " ")
	if question == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		question = strings.TrimSpace(string(data))
	}
	if question == "" {
		return fmt.Errorf("no question given")
	}

	agent, err := newAgent(globals)
	if err != nil {
		return err
	}
	answer, err := agent.Ask(globals.ctx, question)
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}
