package aioptimizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/yanqian/prompt-optimizer/internal/domain/reduction"
	"github.com/yanqian/prompt-optimizer/internal/infra/llm/chatgpt"
	apperrors "github.com/yanqian/prompt-optimizer/pkg/errors"
	"github.com/yanqian/prompt-optimizer/pkg/metrics"
)

const defaultSummaryPrompt = "You condense prompts written for large language models. Keep every instruction and constraint, drop pleasantries and filler. Respond exactly as:\nSUMMARY:\n<summary>"

// Service exposes summarization and keyword compression.
type Service interface {
	Summarize(ctx context.Context, req Request) (SummaryResponse, error)
	ExtractKeywords(ctx context.Context, req Request) (KeywordResponse, error)
	Optimize(ctx context.Context, req Request) (OptimizeResponse, error)
	Health() HealthResponse
}

// ChatClient produces summaries.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// Embedder turns texts into vectors, one per input in order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

const modelsNotLoaded = "Models not loaded"

type service struct {
	cfg       Config
	client    ChatClient
	embedder  Embedder
	stopwords *reduction.Stopwords
	logger    *slog.Logger
}

// NewService is a wire provider for the AI optimizer. A nil client or embedder
// leaves the models unloaded and every operation fails with models_unavailable.
func NewService(cfg Config, client ChatClient, embedder Embedder, stopwords *reduction.Stopwords, logger *slog.Logger) Service {
	if strings.TrimSpace(cfg.SummaryPrompt) == "" {
		cfg.SummaryPrompt = defaultSummaryPrompt
	}
	return &service{
		cfg:       cfg,
		client:    client,
		embedder:  embedder,
		stopwords: stopwords,
		logger:    logger.With("component", "aioptimizer.service"),
	}
}

func (s *service) loaded() bool {
	return s.client != nil && s.embedder != nil
}

func (s *service) Health() HealthResponse {
	status := "unhealthy"
	if s.loaded() {
		status = "healthy"
	}
	return HealthResponse{Status: status, ModelsLoaded: s.loaded(), Version: Version}
}

func (s *service) prepare(req Request) (Request, error) {
	if !s.loaded() {
		return req, apperrors.Wrap(apperrors.CodeModelsUnavailable, modelsNotLoaded, nil)
	}
	req = req.withDefaults()
	switch n := utf8.RuneCountInString(req.Text); {
	case strings.TrimSpace(req.Text) == "":
		return req, apperrors.Wrap(apperrors.CodeInvalidInput, "text cannot be empty", nil)
	case n > MaxTextLength:
		return req, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("text exceeds %d characters", MaxTextLength), nil)
	case req.MinLength > req.MaxLength:
		return req, apperrors.Wrap(apperrors.CodeInvalidInput, "min_length must not exceed max_length", nil)
	}
	return req, nil
}

func (s *service) Summarize(ctx context.Context, req Request) (SummaryResponse, error) {
	req, err := s.prepare(req)
	if err != nil {
		return SummaryResponse{}, err
	}
	return s.summarize(ctx, req)
}

func (s *service) summarize(ctx context.Context, req Request) (SummaryResponse, error) {
	resp, err := s.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model:       s.cfg.Model,
		Messages:    s.buildMessages(req),
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return SummaryResponse{}, apperrors.Wrap(apperrors.CodeLLMError, "Summarization failed", err)
	}
	if len(resp.Choices) == 0 {
		return SummaryResponse{}, apperrors.Wrap(apperrors.CodeLLMError, "Summarization failed", errors.New("chatgpt returned no choices"))
	}

	content := resp.Choices[0].Message.Content
	s.logger.Debug("chatgpt response received", "content", content)

	summary, err := parseSummary(content)
	if err != nil {
		return SummaryResponse{}, apperrors.Wrap(apperrors.CodeLLMError, "Summarization failed", err)
	}
	summary = truncateWords(summary, req.MaxLength)

	originalLen := utf8.RuneCountInString(req.Text)
	summaryLen := utf8.RuneCountInString(summary)
	return SummaryResponse{
		Summary:          summary,
		OriginalLength:   originalLen,
		SummaryLength:    summaryLen,
		CompressionRatio: ratio(summaryLen, originalLen),
		TokenUsage:       usageOf(resp.Usage),
	}, nil
}

func (s *service) ExtractKeywords(ctx context.Context, req Request) (KeywordResponse, error) {
	req, err := s.prepare(req)
	if err != nil {
		return KeywordResponse{}, err
	}
	keywords, err := s.rankKeywords(ctx, req.Text, req.TopKeywords)
	if err != nil {
		return KeywordResponse{}, apperrors.Wrap(apperrors.CodeLLMError, "Keyword extraction failed", err)
	}
	return KeywordResponse{Keywords: keywords, Count: len(keywords)}, nil
}

func (s *service) Optimize(ctx context.Context, req Request) (OptimizeResponse, error) {
	req, err := s.prepare(req)
	if err != nil {
		return OptimizeResponse{}, err
	}

	summary, err := s.summarize(ctx, req)
	if err != nil {
		return OptimizeResponse{}, apperrors.Wrap(apperrors.CodeLLMError, "Optimization failed", err)
	}
	keywords, err := s.rankKeywords(ctx, req.Text, req.TopKeywords)
	if err != nil {
		return OptimizeResponse{}, apperrors.Wrap(apperrors.CodeLLMError, "Optimization failed", err)
	}

	compressed := strings.Join(keywords, " ")
	originalLen := utf8.RuneCountInString(req.Text)
	s.logger.Debug("prompt optimized",
		"original_length", originalLen,
		"summary_length", summary.SummaryLength,
		"keywords", len(keywords),
	)
	return OptimizeResponse{
		Original:       req.Text,
		OriginalLength: originalLen,
		Summarized:     summary.Summary,
		SummaryLength:  summary.SummaryLength,
		KeywordBased:   compressed,
		KeywordsCount:  len(keywords),
		CompressionRatios: CompressionRatios{
			Summary:  ratio(summary.SummaryLength, originalLen),
			Keywords: ratio(utf8.RuneCountInString(compressed), originalLen),
		},
		TokenUsage: summary.TokenUsage,
	}, nil
}

func (s *service) buildMessages(req Request) []chatgpt.Message {
	user := fmt.Sprintf("Text:\n%s\n\nConstraints:\n- Summary must be between %d and %d words.", req.Text, req.MinLength, req.MaxLength)
	return []chatgpt.Message{
		{Role: "system", Content: s.cfg.SummaryPrompt},
		{Role: "user", Content: user},
	}
}

func usageOf(u chatgpt.Usage) *metrics.TokenUsage {
	usage := metrics.TokenUsage{
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.TotalTokens,
	}
	if usage.IsZero() {
		return nil
	}
	return &usage
}

func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}
