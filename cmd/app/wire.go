//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/prompt-optimizer/internal/bootstrap"
	"github.com/yanqian/prompt-optimizer/internal/domain/aioptimizer"
	"github.com/yanqian/prompt-optimizer/internal/domain/reduction"
	"github.com/yanqian/prompt-optimizer/internal/domain/report"
	"github.com/yanqian/prompt-optimizer/internal/domain/spelling"
	"github.com/yanqian/prompt-optimizer/internal/infra/config"
	"github.com/yanqian/prompt-optimizer/internal/infra/dictionary"
	httpiface "github.com/yanqian/prompt-optimizer/internal/interface/http"
	"github.com/yanqian/prompt-optimizer/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideCatalogue,
		reduction.NewClauseRemover,
		reduction.DefaultStopwords,
		provideTagger,
		reduction.NewService,
		provideTokenCounter,
		provideCostProfile,
		provideEstimator,
		report.NewBuilder,
		provideSpellingConfig,
		provideDictionary,
		wire.Bind(new(spelling.Dictionary), new(*dictionary.Dictionary)),
		provideWordStore,
		provideSpellingService,
		provideChatGPTClient,
		provideChatClient,
		provideEmbedder,
		provideAIOptimizerConfig,
		aioptimizer.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
