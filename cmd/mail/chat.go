package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	// Packages
	term "golang.org/x/term"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ChatCmd) Run(globals *Globals) error {
	agent, err := newAgent(globals)
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	scanner := bufio.NewScanner(os.Stdin)

	// Continue looping until end of input. Failures are reported and
	// the loop continues; each question is independent.
	for {
		if interactive {
			fmt.Print("mail> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			return nil
		}
		answer, err := agent.Ask(globals.ctx, input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}
		fmt.Println(answer)
	}
}
