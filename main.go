package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kedare/dryspot/cmd"
	"github.com/kedare/dryspot/internal/logger"
)

func main() {
	// Diagnostics go to stderr so stdout stays clean for results and JSON.
	logger.InitPterm()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
