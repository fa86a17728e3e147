package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/prompt-optimizer/internal/domain/aioptimizer"
	"github.com/yanqian/prompt-optimizer/internal/domain/energy"
	"github.com/yanqian/prompt-optimizer/internal/domain/reduction"
	"github.com/yanqian/prompt-optimizer/internal/domain/spelling"
	"github.com/yanqian/prompt-optimizer/internal/infra/config"
	"github.com/yanqian/prompt-optimizer/internal/infra/dictionary"
	"github.com/yanqian/prompt-optimizer/internal/infra/embedder"
	"github.com/yanqian/prompt-optimizer/internal/infra/llm/chatgpt"
	"github.com/yanqian/prompt-optimizer/internal/infra/postag"
	"github.com/yanqian/prompt-optimizer/internal/infra/tokenizer"
	"github.com/yanqian/prompt-optimizer/internal/infra/wordstore"
)

func provideCatalogue(cfg *config.Config, logger *slog.Logger) (reduction.Catalogue, error) {
	path := strings.TrimSpace(cfg.Reduction.CataloguePath)
	if path == "" {
		return reduction.DefaultCatalogue(), nil
	}
	cat, err := reduction.LoadCatalogue(path)
	if err != nil {
		return reduction.Catalogue{}, err
	}
	logger.Info("clause catalogue loaded", "path", path, "patterns", len(cat.Patterns()))
	return cat, nil
}

func provideTagger(cfg *config.Config, logger *slog.Logger) reduction.Tagger {
	if cfg.Reduction.Tagger == config.TaggerFallback {
		return reduction.NewChainTagger(logger)
	}
	tagger := postag.NewProseTagger()
	if err := tagger.Warm(); err != nil {
		logger.Warn("prose tagger unavailable, tagging every token as noun", "error", err)
		return reduction.NewChainTagger(logger)
	}
	return reduction.NewChainTagger(logger, tagger)
}

func provideTokenCounter(cfg *config.Config, logger *slog.Logger) energy.TokenCounter {
	return energy.NewChainCounter(logger,
		tokenizer.NewModelEncoding(),
		tokenizer.NewFixedEncoding(cfg.Energy.BaseEncoding),
	)
}

func provideCostProfile(cfg *config.Config) (*energy.CostProfile, error) {
	return energy.NewCostProfile(cfg.Energy.Costs)
}

func provideEstimator(cfg *config.Config, counter energy.TokenCounter, costs *energy.CostProfile, logger *slog.Logger) energy.Estimator {
	return energy.NewEstimator(counter, costs, cfg.Energy.DefaultModel, logger)
}

func provideSpellingConfig(cfg *config.Config) spelling.Config {
	return spelling.Config{
		MaxSuggestions:   cfg.Spelling.MaxSuggestions,
		BatchConcurrency: cfg.Spelling.BatchConcurrency,
	}
}

func provideDictionary(cfg *config.Config, logger *slog.Logger) (*dictionary.Dictionary, error) {
	if lang := cfg.Spelling.Language; lang != "" && lang != "en" {
		logger.Warn("only the english dictionary is bundled, using it", "language", lang)
	}
	return dictionary.NewEnglish(cfg.Spelling.DictionaryPath)
}

// provideWordStore prefers Valkey when enabled and reachable. The cleanup
// closes the Valkey client.
func provideWordStore(cfg *config.Config, logger *slog.Logger) (spelling.WordStore, func()) {
	noop := func() {}
	valkeyCfg := cfg.Spelling.Store.Valkey
	if !valkeyCfg.Enabled {
		return wordstore.NewMemoryStore(), noop
	}
	opt, err := buildValkeyOptions(valkeyCfg.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return wordstore.NewMemoryStore(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return wordstore.NewMemoryStore(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return wordstore.NewMemoryStore(), noop
	}
	logger.Info("spelling valkey store enabled", "addr", valkeyCfg.Addr)
	return wordstore.NewValkeyStore(client, cfg.Spelling.Store.Prefix), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}

// provideSpellingService also trains the dictionary with previously stored custom words.
func provideSpellingService(cfg spelling.Config, dict spelling.Dictionary, store spelling.WordStore, logger *slog.Logger) spelling.Service {
	svc := spelling.NewService(cfg, dict, store, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	n, err := svc.LoadCustomWords(ctx)
	if err != nil {
		logger.Warn("custom dictionary words not loaded", "error", err)
	} else if n > 0 {
		logger.Info("custom dictionary words loaded", "count", n)
	}
	return svc
}

// provideChatGPTClient returns nil without an API key; the AI optimizer then
// reports its models as not loaded.
func provideChatGPTClient(cfg *config.Config, logger *slog.Logger) *chatgpt.Client {
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		logger.Warn("llm api key not set, ai prompt optimizer disabled")
		return nil
	}
	client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Timeout)
	if err != nil {
		logger.Error("failed to create chatgpt client, ai prompt optimizer disabled", "error", err)
		return nil
	}
	return client
}

func provideChatClient(client *chatgpt.Client) aioptimizer.ChatClient {
	if client == nil {
		return nil
	}
	return client
}

func provideEmbedder(cfg *config.Config, client *chatgpt.Client, logger *slog.Logger) aioptimizer.Embedder {
	if cfg.AIOptimizer.Embedder == config.EmbedderHashing {
		return embedder.NewHashingEmbedder(0)
	}
	if client == nil {
		return nil
	}
	return embedder.NewChatGPTEmbedder(client, cfg.LLM.EmbeddingModel, logger)
}

func provideAIOptimizerConfig(cfg *config.Config) aioptimizer.Config {
	return aioptimizer.Config{
		Model:         cfg.LLM.Model,
		Temperature:   cfg.LLM.Temperature,
		SummaryPrompt: cfg.AIOptimizer.Prompt,
	}
}
