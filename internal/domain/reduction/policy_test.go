package reduction

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPolicies_Reduce(t *testing.T) {
	stopwords := DefaultStopwords()

	robot := tokensOf("write", "VB", "a", "DT", "short", "JJ", "story", "NN",
		"about", "IN", "a", "DT", "robot", "NN", "?", ".")
	morning := tokensOf("in", "IN", "the", "DT", "morning", "NN", "run", "VB", "fast", "RB")
	mixed := tokensOf("oh", "UH", "there", "EX", "is", "VBZ", "every", "DT", "reason", "NN")

	tests := []struct {
		name    string
		variant Variant
		tokens  []TaggedToken
		want    []string
	}{
		{name: "conservative robot", variant: Conservative, tokens: robot, want: []string{"write", "short", "story", "robot"}},
		{name: "aggressive robot", variant: Aggressive, tokens: robot, want: []string{"write", "short", "story", "robot"}},
		{name: "balanced robot", variant: Balanced, tokens: robot, want: []string{"write", "a", "short", "story", "about", "a", "robot"}},
		{name: "balanced leading preposition", variant: Balanced, tokens: morning, want: []string{"the", "morning", "run", "fast"}},
		{name: "conservative keeps neutral", variant: Conservative, tokens: mixed, want: []string{"oh", "every", "reason"}},
		{name: "aggressive drops neutral", variant: Aggressive, tokens: mixed, want: []string{"reason"}},
		{name: "balanced", variant: Balanced, tokens: mixed, want: []string{"oh", "is", "every", "reason"}},
		{name: "empty", variant: Balanced, tokens: nil, want: []string{}},
		{name: "punctuation only", variant: Conservative, tokens: tokensOf("?", ".", "!", "."), want: []string{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			policy, ok := NewPolicy(tt.variant, stopwords)
			require.True(t, ok)
			got := policy.Reduce(tt.tokens)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Reduce() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewPolicyUnknown(t *testing.T) {
	_, ok := NewPolicy(Variant("terse"), DefaultStopwords())
	require.False(t, ok)
}

func TestAggressiveIsSubsequenceOfConservative(t *testing.T) {
	stopwords := DefaultStopwords()
	conservative, _ := NewPolicy(Conservative, stopwords)
	aggressive, _ := NewPolicy(Aggressive, stopwords)

	words := []string{"the", "robot", "runs", "of", "quickly", "and", "oh", "three", "it", "?"}
	tags := []string{"DT", "NN", "VBZ", "IN", "RB", "CC", "UH", "CD", "PRP", ".", "NNS", "JJ"}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		tokens := make([]TaggedToken, rng.Intn(12))
		for j := range tokens {
			tokens[j] = TaggedToken{Word: words[rng.Intn(len(words))], Tag: tags[rng.Intn(len(tags))]}
		}
		cons := conservative.Reduce(tokens)
		aggr := aggressive.Reduce(tokens)
		require.True(t, isSubsequence(aggr, cons), "tokens=%v conservative=%v aggressive=%v", tokens, cons, aggr)
		for _, w := range cons {
			require.False(t, stopwords.Contains(w))
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  Hello,   WORLD!  ", want: "hello, world!"},
		{in: "it's (great)", want: "its great"},
		{in: "Tabs\tand\nnewlines", want: "tabs and newlines"},
		{in: "state-of-the-art: yes; no?", want: "state-of-the-art: yes; no?"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}
