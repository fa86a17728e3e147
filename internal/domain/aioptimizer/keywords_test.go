package aioptimizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/prompt-optimizer/internal/domain/reduction"
)

func TestCandidatePhrases(t *testing.T) {
	stopwords := reduction.DefaultStopwords()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "stopwords removed before bigrams",
			text: "Explain the theory of relativity",
			want: []string{"explain", "explain theory", "theory", "theory relativity", "relativity"},
		},
		{
			name: "duplicates collapse",
			text: "robot robot robot",
			want: []string{"robot", "robot robot"},
		},
		{
			name: "single characters dropped",
			text: "a b c",
			want: nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, candidatePhrases(tt.text, stopwords.Contains))
		})
	}
}

func TestCosine(t *testing.T) {
	require.InDelta(t, 1.0, cosine([]float32{1, 2}, []float32{2, 4}), 1e-9)
	require.InDelta(t, 0.0, cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	require.Zero(t, cosine([]float32{0, 0}, []float32{1, 1}))
	require.Zero(t, cosine([]float32{1}, []float32{1, 2}))
}

func TestParseSummary(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr string
	}{
		{name: "marker", content: "SUMMARY:\nShort version.", want: "Short version."},
		{name: "lowercase marker", content: "summary: tiny", want: "tiny"},
		{name: "no marker", content: "Plain reply", want: "Plain reply"},
		{name: "multibyte prefix", content: "İİİ notes\nSummary: kısa özet", want: "kısa özet"},
		{name: "empty", content: " ", wantErr: "empty llm response"},
		{name: "empty section", content: "SUMMARY:  ", wantErr: "summary section empty"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseSummary(tt.content)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTruncateWords(t *testing.T) {
	require.Equal(t, "one two", truncateWords("one  two three", 2))
	require.Equal(t, "one two three", truncateWords("one two three", 0))
	require.Equal(t, "one", truncateWords(" one ", 5))
}
