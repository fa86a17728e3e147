package embedder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/prompt-optimizer/internal/infra/llm/chatgpt"
)

type stubEmbeddingClient struct {
	calls [][]string
	err   error
	short bool
}

func (s *stubEmbeddingClient) CreateEmbedding(_ context.Context, req chatgpt.EmbeddingRequest) (chatgpt.EmbeddingResponse, error) {
	s.calls = append(s.calls, append([]string(nil), req.Input...))
	if s.err != nil {
		return chatgpt.EmbeddingResponse{}, s.err
	}
	resp := chatgpt.EmbeddingResponse{}
	for i, in := range req.Input {
		if s.short && i == len(req.Input)-1 {
			break
		}
		resp.Data = append(resp.Data, chatgpt.Embedding{Index: i, Embedding: []float32{float32(len(in))}})
	}
	return resp, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestChatGPTEmbedder_Embed(t *testing.T) {
	client := &stubEmbeddingClient{}
	emb := NewChatGPTEmbedder(client, " text-embedding-3-small ", discardLogger())

	out, err := emb.Embed(context.Background(), []string{"ab", "abcd"})
	require.NoError(t, err)
	require.Equal(t, [][]float32{{2}, {4}}, out)
	require.Len(t, client.calls, 1)

	out, err = emb.Embed(context.Background(), nil)
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestChatGPTEmbedder_Batches(t *testing.T) {
	client := &stubEmbeddingClient{}
	emb := NewChatGPTEmbedder(client, "m", discardLogger())
	emb.maxBatchTokens = 10

	out, err := emb.Embed(context.Background(), []string{strings.Repeat("a", 12), strings.Repeat("b", 12), "c"})
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.Len(t, client.calls, 2)

	_, err = emb.Embed(context.Background(), []string{strings.Repeat("x", 40)})
	require.Error(t, err)
}

func TestChatGPTEmbedder_Errors(t *testing.T) {
	_, err := NewChatGPTEmbedder(&stubEmbeddingClient{err: errors.New("quota")}, "m", discardLogger()).
		Embed(context.Background(), []string{"a"})
	require.EqualError(t, err, "quota")

	_, err = NewChatGPTEmbedder(&stubEmbeddingClient{short: true}, "m", discardLogger()).
		Embed(context.Background(), []string{"a", "b"})
	require.ErrorContains(t, err, "count mismatch")
}

func TestHashingEmbedder(t *testing.T) {
	emb := NewHashingEmbedder(0)
	out, err := emb.Embed(context.Background(), []string{"Solar energy", "solar ENERGY", "", "quantum chromodynamics"})
	require.NoError(t, err)
	require.Len(t, out, 4)
	require.Len(t, out[0], 256)
	require.Equal(t, out[0], out[1])

	var norm float64
	for _, x := range out[0] {
		norm += float64(x) * float64(x)
	}
	require.InDelta(t, 1.0, norm, 1e-5)

	for _, x := range out[2] {
		require.Zero(t, x)
	}
}
