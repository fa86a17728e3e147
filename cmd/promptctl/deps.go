package main

import (
	"fmt"
	"log/slog"

	"github.com/yanqian/prompt-optimizer/internal/domain/energy"
	"github.com/yanqian/prompt-optimizer/internal/domain/reduction"
	"github.com/yanqian/prompt-optimizer/internal/domain/report"
	"github.com/yanqian/prompt-optimizer/internal/domain/spelling"
	"github.com/yanqian/prompt-optimizer/internal/infra/config"
	"github.com/yanqian/prompt-optimizer/internal/infra/dictionary"
	"github.com/yanqian/prompt-optimizer/internal/infra/postag"
	"github.com/yanqian/prompt-optimizer/internal/infra/tokenizer"
	"github.com/yanqian/prompt-optimizer/internal/infra/wordstore"
	"github.com/yanqian/prompt-optimizer/internal/interface/cli"
)

// buildDeps assembles the offline services. Custom dictionary words live in
// memory for the lifetime of one invocation.
func buildDeps(cfg *config.Config, logger *slog.Logger) (cli.Deps, error) {
	cat := reduction.DefaultCatalogue()
	if cfg.Reduction.CataloguePath != "" {
		loaded, err := reduction.LoadCatalogue(cfg.Reduction.CataloguePath)
		if err != nil {
			return cli.Deps{}, err
		}
		cat = loaded
	}
	remover, err := reduction.NewClauseRemover(cat)
	if err != nil {
		return cli.Deps{}, err
	}

	var strategies []reduction.Tagger
	if cfg.Reduction.Tagger == config.TaggerProse {
		strategies = append(strategies, postag.NewProseTagger())
	}
	stopwords := reduction.DefaultStopwords()
	reducer := reduction.NewService(remover, reduction.NewChainTagger(logger, strategies...), stopwords, logger)

	costs, err := energy.NewCostProfile(cfg.Energy.Costs)
	if err != nil {
		return cli.Deps{}, fmt.Errorf("energy costs: %w", err)
	}
	counter := energy.NewChainCounter(logger,
		tokenizer.NewModelEncoding(),
		tokenizer.NewFixedEncoding(cfg.Energy.BaseEncoding),
	)
	estimator := energy.NewEstimator(counter, costs, cfg.Energy.DefaultModel, logger)

	dict, err := dictionary.NewEnglish(cfg.Spelling.DictionaryPath)
	if err != nil {
		return cli.Deps{}, err
	}
	spellSvc := spelling.NewService(spelling.Config{
		MaxSuggestions:   cfg.Spelling.MaxSuggestions,
		BatchConcurrency: cfg.Spelling.BatchConcurrency,
	}, dict, wordstore.NewMemoryStore(), logger)

	return cli.Deps{
		Reports:   report.NewBuilder(reducer, estimator, logger),
		Estimator: estimator,
		Spelling:  spellSvc,
	}, nil
}
