package energy

import (
	"errors"
	"log/slog"
	"unicode/utf8"
)

var (
	// ErrUnsupportedModel reports that a strategy has no encoding for the model.
	ErrUnsupportedModel = errors.New("tokenizer: unsupported model")
	// ErrTokenizerUnavailable reports that a strategy could not tokenize at all.
	ErrTokenizerUnavailable = errors.New("tokenizer: unavailable")
)

// TokenCounter counts the tokens of a text under a model's encoding.
type TokenCounter interface {
	Count(text, model string) (int, error)
}

// TokenCounterFunc adapts a function into a TokenCounter.
type TokenCounterFunc func(text, model string) (int, error)

// Count implements TokenCounter.
func (f TokenCounterFunc) Count(text, model string) (int, error) {
	return f(text, model)
}

// CharEstimator approximates one token per four characters, rounded up.
type CharEstimator struct{}

// Count implements TokenCounter. It never fails.
func (CharEstimator) Count(text, _ string) (int, error) {
	return (utf8.RuneCountInString(text) + 3) / 4, nil
}

// ChainCounter tries each strategy in order. It always ends with CharEstimator
// and therefore never fails.
type ChainCounter struct {
	strategies []TokenCounter
	logger     *slog.Logger
}

// NewChainCounter builds a chain from the given strategies, skipping nils.
func NewChainCounter(logger *slog.Logger, strategies ...TokenCounter) *ChainCounter {
	chain := make([]TokenCounter, 0, len(strategies)+1)
	for _, s := range strategies {
		if s != nil {
			chain = append(chain, s)
		}
	}
	chain = append(chain, CharEstimator{})
	return &ChainCounter{strategies: chain, logger: logger.With("component", "energy.tokens")}
}

// Count implements TokenCounter.
func (c *ChainCounter) Count(text, model string) (int, error) {
	for i, strategy := range c.strategies {
		n, err := strategy.Count(text, model)
		if err == nil {
			return n, nil
		}
		c.logger.Debug("token strategy failed", "strategy", i, "model", model, "error", err)
	}
	// unreachable: CharEstimator never fails
	return CharEstimator{}.Count(text, model)
}
