// Package main is the entry point for the envoluntary CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/envoluntary/envoluntary/cmd/envoluntary/commands"
	"github.com/envoluntary/envoluntary/internal/wiring"
)

func main() {
	if err := run(); err != nil {
		// zerr prints a pretty error report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	container := wiring.New()
	cli := commands.New(container)

	return cli.Execute(ctx)
}
