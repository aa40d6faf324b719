package main

import (
	"log/slog"

	"github.com/yanqian/news-summarizer/internal/domain/session"
	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
	"github.com/yanqian/news-summarizer/internal/infra/clipboard"
	"github.com/yanqian/news-summarizer/internal/infra/config"
	"github.com/yanqian/news-summarizer/internal/infra/inference"
)

func provideInferenceClient(cfg *config.Config, logger *slog.Logger) *inference.Client {
	client := inference.NewClient(cfg.Inference.Endpoint, cfg.Inference.APIKey, cfg.Inference.Timeout)
	if cfg.Inference.APIKey == "" {
		logger.Warn("inference api key not set, upstream may reject requests", "endpoint", client.Endpoint())
	}
	return client
}

// provideSessionController builds the single server-side session. It talks to
// the upstream directly rather than looping through the proxy route.
func provideSessionController(cfg *config.Config, svc summarizer.Service, clip *clipboard.Memory, logger *slog.Logger) *session.Controller {
	ctrl := session.NewController(svc, clip, session.NotifierFunc(func(message string) {
		logger.Info("session notice", "message", message)
	}), logger)
	// Load validated the preset already.
	preset, _ := session.ParsePreset(cfg.Session.DefaultPreset)
	_ = ctrl.SetPreset(preset)
	return ctrl
}
