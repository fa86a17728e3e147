package reduction

import (
	"errors"
	"log/slog"
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// DefaultTag is assigned to every token when no tagger strategy succeeds.
const DefaultTag = "NN"

// TaggedToken pairs a surface word with its Penn Treebank category.
type TaggedToken struct {
	Word string `json:"word"`
	Tag  string `json:"tag"`
}

// Tagger assigns a grammatical category to every token of a text, preserving order.
type Tagger interface {
	Tag(text string) ([]TaggedToken, error)
}

// TaggerFunc adapts a function into a Tagger.
type TaggerFunc func(text string) ([]TaggedToken, error)

// Tag implements Tagger.
func (f TaggerFunc) Tag(text string) ([]TaggedToken, error) {
	return f(text)
}

var errNoTagger = errors.New("no tagger strategy configured")

// ChainTagger tries each strategy in order and returns the first successful result.
// FallbackTagger never fails, so a chain ending with it always yields tokens.
type ChainTagger struct {
	strategies []Tagger
	logger     *slog.Logger
}

// NewChainTagger builds a chain that ends with FallbackTagger.
func NewChainTagger(logger *slog.Logger, strategies ...Tagger) *ChainTagger {
	chain := make([]Tagger, 0, len(strategies)+1)
	for _, s := range strategies {
		if s != nil {
			chain = append(chain, s)
		}
	}
	chain = append(chain, FallbackTagger{})
	return &ChainTagger{strategies: chain, logger: logger.With("component", "reduction.tagger")}
}

// Tag implements Tagger.
func (c *ChainTagger) Tag(text string) ([]TaggedToken, error) {
	text = norm.NFC.String(text)
	lastErr := errNoTagger
	for i, strategy := range c.strategies {
		tokens, err := strategy.Tag(text)
		if err == nil {
			if i > 0 {
				c.logger.Warn("pos tagging degraded", "strategy", i, "error", lastErr)
			}
			return tokens, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

var wordBoundaryToken = regexp.MustCompile(`[\p{L}\p{N}_]+(?:'[\p{L}]+)?|[^\s\p{L}\p{N}_]`)

// FallbackTagger splits on word boundaries and tags every token DefaultTag.
type FallbackTagger struct{}

// Tag implements Tagger.
func (FallbackTagger) Tag(text string) ([]TaggedToken, error) {
	words := wordBoundaryToken.FindAllString(text, -1)
	tokens := make([]TaggedToken, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, TaggedToken{Word: w, Tag: DefaultTag})
	}
	return tokens, nil
}
