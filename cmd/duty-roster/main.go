// Command duty-roster generates a duty roster from a YAML configuration, or
// serves the HTTP API for viewing and editing rosters.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Thomblin/duty-roster/internal/cli"
)

func main() {
	cfg, err := cli.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, cfg, os.Stderr); err != nil {
		stop()
		exitf("Error: %v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
