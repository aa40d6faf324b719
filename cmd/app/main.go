package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
)

// main serves the summarize proxy route and the session API until SIGINT or
// SIGTERM.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("news-summarizer: wire application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("news-summarizer: server stopped: %v", err)
	}
}
