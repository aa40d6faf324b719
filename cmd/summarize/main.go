package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
	"github.com/yanqian/news-summarizer/internal/infra/clipboard"
	"github.com/yanqian/news-summarizer/internal/infra/config"
	"github.com/yanqian/news-summarizer/internal/infra/inference"
	"github.com/yanqian/news-summarizer/internal/interface/cli"
	"github.com/yanqian/news-summarizer/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Outcomes are rendered on stdout; keep session logs quiet unless asked.
	if os.Getenv("LOG_LEVEL") == "" {
		_ = os.Setenv("LOG_LEVEL", "error")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	cmd := cli.NewRootCommand(cli.Dependencies{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewService: func(endpoint, apiKey string) summarizer.Service {
			return inference.NewClient(endpoint, apiKey, cfg.Inference.Timeout)
		},
		Clipboard:       clipboard.NewSystem(),
		Logger:          logger.NewWithWriter(os.Stderr),
		DefaultEndpoint: cfg.Client.Endpoint,
	})

	err = cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return cli.ExitCode(err)
}
