package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"clock-watch/internal/cli"
	"clock-watch/internal/config"
)

func main() {
	// Load configuration: defaults, then environment, validated
	loader := config.NewLoader()
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	app := cli.NewApp(cfg)

	// Ctrl-C triggers the same graceful shutdown path as end-of-input.
	// Per-command timeouts are applied inside the commands; the watch
	// loop runs until the user ends it.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
