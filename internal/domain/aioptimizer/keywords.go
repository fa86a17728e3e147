package aioptimizer

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

// Tokens of two or more word characters.
var keywordToken = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// candidatePhrases returns the distinct unigrams and bigrams of text in order
// of first appearance. Stopwords are dropped before bigrams are formed.
func candidatePhrases(text string, isStopword func(string) bool) []string {
	var tokens []string
	for _, tok := range keywordToken.FindAllString(strings.ToLower(text), -1) {
		if !isStopword(tok) {
			tokens = append(tokens, tok)
		}
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(phrase string) {
		if _, ok := seen[phrase]; ok {
			return
		}
		seen[phrase] = struct{}{}
		out = append(out, phrase)
	}
	for i, tok := range tokens {
		add(tok)
		if i+1 < len(tokens) {
			add(tok + " " + tokens[i+1])
		}
	}
	return out
}

// rankKeywords embeds the document with every candidate and returns the topN
// candidates closest to the document by cosine similarity.
func (s *service) rankKeywords(ctx context.Context, text string, topN int) ([]string, error) {
	candidates := candidatePhrases(text, s.stopwords.Contains)
	if len(candidates) == 0 {
		return []string{}, nil
	}

	vectors, err := s.embedder.Embed(ctx, append([]string{text}, candidates...))
	if err != nil {
		return nil, fmt.Errorf("embed candidates: %w", err)
	}
	if len(vectors) != len(candidates)+1 {
		return nil, fmt.Errorf("embedder returned %d vectors for %d inputs", len(vectors), len(candidates)+1)
	}

	type scored struct {
		phrase string
		score  float64
	}
	doc := vectors[0]
	ranked := make([]scored, len(candidates))
	for i, phrase := range candidates {
		ranked[i] = scored{phrase: phrase, score: cosine(doc, vectors[i+1])}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if topN > len(ranked) {
		topN = len(ranked)
	}
	out := make([]string, 0, topN)
	for _, r := range ranked[:topN] {
		out = append(out, r.phrase)
	}
	return out, nil
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
