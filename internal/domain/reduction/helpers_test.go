package reduction

import (
	"io"
	"log/slog"
	"strings"
)

// lexiconTagger tags words from a fixed lexicon so tests do not depend on a
// statistical tagger. Unknown words are nouns, bare punctuation is ".".
type lexiconTagger map[string]string

func (l lexiconTagger) Tag(text string) ([]TaggedToken, error) {
	tokens, _ := FallbackTagger{}.Tag(text)
	for i, tok := range tokens {
		switch tag, ok := l[strings.ToLower(tok.Word)]; {
		case ok:
			tokens[i].Tag = tag
		case !isWord(tok.Word):
			tokens[i].Tag = "."
		}
	}
	return tokens, nil
}

var testLexicon = lexiconTagger{
	"write": "VB", "a": "DT", "an": "DT", "the": "DT", "short": "JJ",
	"story": "NN", "about": "IN", "robot": "NN", "in": "IN", "of": "IN",
	"morning": "NN", "run": "VB", "fast": "RB", "is": "VBZ", "every": "DT",
	"oh": "UH", "there": "EX", "me": "PRP", "you": "PRP", "and": "CC",
	"explain": "VB", "neural": "JJ", "networks": "NNS", "to": "TO",
	"code": "NN", "broken": "VBN", "summarize": "VB", "this": "DT", "article": "NN",
	"three": "CD", "tips": "NNS",
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func tokensOf(pairs ...string) []TaggedToken {
	out := make([]TaggedToken, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, TaggedToken{Word: pairs[i], Tag: pairs[i+1]})
	}
	return out
}

func isSubsequence(sub, seq []string) bool {
	j := 0
	for i := 0; i < len(seq) && j < len(sub); i++ {
		if seq[i] == sub[j] {
			j++
		}
	}
	return j == len(sub)
}
