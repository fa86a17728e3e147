package embedder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/yanqian/prompt-optimizer/internal/domain/aioptimizer"
	"github.com/yanqian/prompt-optimizer/internal/infra/llm/chatgpt"
)

// EmbeddingClient is the subset of the chatgpt client used here.
type EmbeddingClient interface {
	CreateEmbedding(ctx context.Context, req chatgpt.EmbeddingRequest) (chatgpt.EmbeddingResponse, error)
}

// ChatGPTEmbedder calls an OpenAI-compatible embeddings API.
type ChatGPTEmbedder struct {
	client         EmbeddingClient
	model          string
	maxBatchTokens int
	logger         *slog.Logger
}

// NewChatGPTEmbedder constructs an embedder backed by the ChatGPT client.
func NewChatGPTEmbedder(client EmbeddingClient, model string, logger *slog.Logger) *ChatGPTEmbedder {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatGPTEmbedder{
		client:         client,
		model:          strings.TrimSpace(model),
		maxBatchTokens: 200_000, // provider caps a request at 300k tokens
		logger:         logger.With("component", "embedder.chatgpt"),
	}
}

// Embed requests embeddings for the given texts, batching below the token cap.
func (e *ChatGPTEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	var (
		out         = make([][]float32, 0, len(texts))
		batch       []string
		batchTokens int
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		resp, err := e.client.CreateEmbedding(ctx, chatgpt.EmbeddingRequest{Model: e.model, Input: batch})
		if err != nil {
			return err
		}
		if len(resp.Data) != len(batch) {
			return fmt.Errorf("embedding result count mismatch: expected %d, got %d", len(batch), len(resp.Data))
		}
		for _, item := range resp.Data {
			vec := make([]float32, len(item.Embedding))
			copy(vec, item.Embedding)
			out = append(out, vec)
		}
		e.logger.Debug("embeddings received", "inputs", len(batch), "total_tokens", resp.Usage.TotalTokens)
		batch = batch[:0]
		batchTokens = 0
		return nil
	}

	for _, text := range texts {
		tokens := estimateTokens(text)
		if tokens > e.maxBatchTokens {
			return nil, fmt.Errorf("text too large for embedding request: estimated tokens=%d", tokens)
		}
		if batchTokens+tokens > e.maxBatchTokens && len(batch) > 0 {
			if err := flush(); err != nil {
				return nil, err
			}
		}
		batch = append(batch, text)
		batchTokens += tokens
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ aioptimizer.Embedder = (*ChatGPTEmbedder)(nil)

// estimateTokens over-estimates at one token per two runes, never below the word count.
func estimateTokens(text string) int {
	if text == "" {
		return 0
	}
	byRunes := (utf8.RuneCountInString(text) + 1) / 2
	if words := len(strings.Fields(text)); byRunes < words {
		return words
	}
	return byRunes
}
