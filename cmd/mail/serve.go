package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	// Packages
	gmail "github.com/NageshMuniraja/MCP-Project/pkg/gmail"
	httphandler "github.com/NageshMuniraja/MCP-Project/pkg/httphandler"
	toolkit "github.com/NageshMuniraja/MCP-Project/pkg/toolkit"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ServeCmd struct {
	Addr        string `default:":8000" help:"Listen address"`
	Credentials string `env:"GMAIL_CREDENTIALS" help:"Path to the service account key file"`
	Subject     string `env:"GMAIL_SUBJECT" help:"Mailbox to impersonate"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ServeCmd) Run(globals *Globals) error {
	// Create the mail provider
	opts, err := gmail.ServiceAccountOptions(globals.ctx, cmd.Credentials, cmd.Subject)
	if err != nil {
		return err
	}
	provider, err := gmail.New(globals.ctx, opts...)
	if err != nil {
		return err
	}

	// Register the tool endpoints
	tk, err := toolkit.New(gmail.Tools(provider)...)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	httphandler.RegisterHandlers(mux, tk)

	// Serve until the context is cancelled
	server := &http.Server{Addr: cmd.Addr, Handler: mux}
	go func() {
		<-globals.ctx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}()
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
