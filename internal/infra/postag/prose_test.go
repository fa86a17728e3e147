package postag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/prompt-optimizer/internal/domain/reduction"
)

func TestProseTagger(t *testing.T) {
	tagger := NewProseTagger()
	require.NoError(t, tagger.Warm())

	tokens, err := tagger.Tag("write a short story about a robot?")
	require.NoError(t, err)

	words := make([]string, 0, len(tokens))
	tags := map[string]string{}
	for _, tok := range tokens {
		words = append(words, tok.Word)
		tags[tok.Word] = tok.Tag
	}
	require.Equal(t, []string{"write", "a", "short", "story", "about", "a", "robot", "?"}, words)
	require.True(t, strings.HasPrefix(tags["story"], "NN"))
	require.True(t, strings.HasPrefix(tags["robot"], "NN"))
	require.Equal(t, "DT", tags["a"])
	require.Equal(t, "IN", tags["about"])
	require.True(t, reduction.IsImportantTag(tags["short"]))
}

func TestProseTaggerEmpty(t *testing.T) {
	tokens, err := NewProseTagger().Tag("")
	require.NoError(t, err)
	require.Empty(t, tokens)
}
