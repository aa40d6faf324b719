//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/news-summarizer/internal/bootstrap"
	"github.com/yanqian/news-summarizer/internal/domain/summarizer"
	"github.com/yanqian/news-summarizer/internal/infra/clipboard"
	"github.com/yanqian/news-summarizer/internal/infra/config"
	"github.com/yanqian/news-summarizer/internal/infra/inference"
	"github.com/yanqian/news-summarizer/internal/infra/tokenizer"
	httpiface "github.com/yanqian/news-summarizer/internal/interface/http"
	"github.com/yanqian/news-summarizer/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideInferenceClient,
		provideSessionController,
		clipboard.NewMemory,
		tokenizer.NewEstimator,
		wire.Bind(new(summarizer.Service), new(*inference.Client)),
		wire.Bind(new(httpiface.TokenCounter), new(*tokenizer.Estimator)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
