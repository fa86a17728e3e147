package aioptimizer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/prompt-optimizer/internal/domain/reduction"
	"github.com/yanqian/prompt-optimizer/internal/infra/llm/chatgpt"
	apperrors "github.com/yanqian/prompt-optimizer/pkg/errors"
)

type stubChatClient struct {
	content string
	err     error
	last    chatgpt.ChatCompletionRequest
}

func (s *stubChatClient) CreateChatCompletion(_ context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error) {
	s.last = req
	if s.err != nil {
		return chatgpt.ChatCompletionResponse{}, s.err
	}
	return chatgpt.ChatCompletionResponse{
		Choices: []chatgpt.Choice{{Message: chatgpt.Message{Role: "assistant", Content: s.content}}},
		Usage:   chatgpt.Usage{PromptTokens: 40, CompletionTokens: 8, TotalTokens: 48},
	}, nil
}

// topicEmbedder scores texts on a few fixed topics so similarity is predictable.
type topicEmbedder struct {
	err error
}

var topics = []string{"solar", "energy", "storage"}

func (e topicEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, len(topics)+1)
		for j, topic := range topics {
			vec[j] = float32(strings.Count(strings.ToLower(text), topic))
		}
		vec[len(topics)] = 0.1
		out[i] = vec
	}
	return out, nil
}

func newTestService(client ChatClient, embedder Embedder) Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(Config{Model: "gpt-4o-mini"}, client, embedder, reduction.DefaultStopwords(), logger)
}

const solarText = "Solar energy storage lets homes keep solar energy for the night."

func TestService_Summarize(t *testing.T) {
	client := &stubChatClient{content: "SUMMARY:\nSolar storage keeps energy overnight."}
	svc := newTestService(client, topicEmbedder{})

	resp, err := svc.Summarize(context.Background(), Request{Text: solarText})
	require.NoError(t, err)
	require.Equal(t, "Solar storage keeps energy overnight.", resp.Summary)
	require.Equal(t, len(solarText), resp.OriginalLength)
	require.Equal(t, len(resp.Summary), resp.SummaryLength)
	require.InDelta(t, float64(resp.SummaryLength)/float64(resp.OriginalLength), resp.CompressionRatio, 1e-9)
	require.Equal(t, 48, resp.TokenUsage.TotalTokens)

	require.Equal(t, "gpt-4o-mini", client.last.Model)
	require.Contains(t, client.last.Messages[1].Content, "between 20 and 50 words")
}

func TestService_SummarizeTruncatesToMaxLength(t *testing.T) {
	client := &stubChatClient{content: "SUMMARY: " + strings.Repeat("word ", 30)}
	svc := newTestService(client, topicEmbedder{})

	resp, err := svc.Summarize(context.Background(), Request{Text: solarText, MaxLength: 20, MinLength: 10})
	require.NoError(t, err)
	require.Len(t, strings.Fields(resp.Summary), 20)
}

func TestService_SummarizeFailures(t *testing.T) {
	tests := []struct {
		name   string
		client *stubChatClient
	}{
		{name: "transport error", client: &stubChatClient{err: errors.New("timeout")}},
		{name: "empty reply", client: &stubChatClient{content: "   "}},
		{name: "empty summary", client: &stubChatClient{content: "SUMMARY:"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := newTestService(tt.client, topicEmbedder{}).Summarize(context.Background(), Request{Text: solarText})
			require.True(t, apperrors.IsCode(err, apperrors.CodeLLMError))
		})
	}
}

func TestService_ExtractKeywords(t *testing.T) {
	svc := newTestService(&stubChatClient{}, topicEmbedder{})

	resp, err := svc.ExtractKeywords(context.Background(), Request{Text: solarText, TopKeywords: 3})
	require.NoError(t, err)
	require.Equal(t, 3, resp.Count)
	require.Equal(t, []string{"solar energy", "energy storage", "solar"}, resp.Keywords)
}

func TestService_ExtractKeywordsEmbedderFailure(t *testing.T) {
	svc := newTestService(&stubChatClient{}, topicEmbedder{err: errors.New("quota")})

	_, err := svc.ExtractKeywords(context.Background(), Request{Text: solarText})
	require.True(t, apperrors.IsCode(err, apperrors.CodeLLMError))
}

func TestService_Optimize(t *testing.T) {
	client := &stubChatClient{content: "SUMMARY: Solar storage keeps energy overnight."}
	svc := newTestService(client, topicEmbedder{})

	resp, err := svc.Optimize(context.Background(), Request{Text: solarText, TopKeywords: 2})
	require.NoError(t, err)
	require.Equal(t, solarText, resp.Original)
	require.Equal(t, "solar energy energy storage", resp.KeywordBased)
	require.Equal(t, 2, resp.KeywordsCount)
	require.InDelta(t, float64(len(resp.KeywordBased))/float64(len(solarText)), resp.CompressionRatios.Keywords, 1e-9)
	require.InDelta(t, float64(resp.SummaryLength)/float64(len(solarText)), resp.CompressionRatios.Summary, 1e-9)
	require.NotNil(t, resp.TokenUsage)
}

func TestService_ModelsNotLoaded(t *testing.T) {
	svc := newTestService(nil, nil)

	health := svc.Health()
	require.Equal(t, HealthResponse{Status: "unhealthy", ModelsLoaded: false, Version: "1.0.0"}, health)

	_, err := svc.Optimize(context.Background(), Request{Text: solarText})
	require.True(t, apperrors.IsCode(err, apperrors.CodeModelsUnavailable))
	require.EqualError(t, err, "Models not loaded")

	_, err = svc.Summarize(context.Background(), Request{Text: solarText})
	require.True(t, apperrors.IsCode(err, apperrors.CodeModelsUnavailable))
}

func TestService_InvalidText(t *testing.T) {
	svc := newTestService(&stubChatClient{}, topicEmbedder{})
	require.Equal(t, "healthy", svc.Health().Status)

	_, err := svc.ExtractKeywords(context.Background(), Request{Text: "  "})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.Summarize(context.Background(), Request{Text: strings.Repeat("a", MaxTextLength+1)})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestService_LengthBounds(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{name: "defaults", req: Request{Text: solarText}},
		{name: "equal bounds", req: Request{Text: solarText, MinLength: 30, MaxLength: 30}},
		{name: "min above max", req: Request{Text: solarText, MinLength: 80, MaxLength: 40}, wantErr: true},
		{name: "min above default max", req: Request{Text: solarText, MinLength: 60}, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := &stubChatClient{content: "SUMMARY: Solar storage."}
			svc := newTestService(client, topicEmbedder{})

			_, err := svc.Summarize(context.Background(), tt.req)
			if tt.wantErr {
				require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
				require.EqualError(t, err, "min_length must not exceed max_length")
				require.Empty(t, client.last.Messages)
				return
			}
			require.NoError(t, err)
		})
	}
}
