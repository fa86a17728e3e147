package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/prompt-optimizer/internal/domain/energy"
	"github.com/yanqian/prompt-optimizer/internal/domain/reduction"
	apperrors "github.com/yanqian/prompt-optimizer/pkg/errors"
)

type stubReducer struct {
	analysis reduction.Analysis
	err      error
}

func (s stubReducer) Analyze(_ context.Context, prompt string) (reduction.Analysis, error) {
	if s.err != nil {
		return reduction.Analysis{}, s.err
	}
	a := s.analysis
	a.Original = prompt
	return a, nil
}

// wordCounter counts whitespace-separated words as tokens.
var wordCounter = energy.TokenCounterFunc(func(text, _ string) (int, error) {
	n := 0
	inWord := false
	for _, r := range text {
		if r == ' ' {
			inWord = false
			continue
		}
		if !inWord {
			n++
			inWord = true
		}
	}
	return n * 100, nil
})

func newTestBuilder(t *testing.T, reducer reduction.Service) Builder {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	costs, err := energy.NewCostProfile(energy.DefaultCosts())
	require.NoError(t, err)
	return NewBuilder(reducer, energy.NewEstimator(wordCounter, costs, "gpt-4", logger), logger)
}

func TestBuilder_Build(t *testing.T) {
	reducer := stubReducer{analysis: reduction.Analysis{
		Conservative: "write short story robot",
		Aggressive:   "write story robot",
		Balanced:     "write a short story about a robot",
	}}
	b := newTestBuilder(t, reducer)

	// 9 words -> 900 tokens -> 7.2 mWh under gpt-4.
	rep, err := b.Build(context.Background(), "could you please help me write a story robot", "")
	require.NoError(t, err)

	require.Equal(t, "gpt-4", rep.Model)
	require.Equal(t, "write story robot", rep.Aggressive)
	require.Equal(t, TokenCounts{Original: 900, Conservative: 400, Aggressive: 300, Balanced: 700}, rep.TokenCounts)
	require.Equal(t, 7.2, rep.OriginalEnergy)
	require.Equal(t, 4.0, rep.EnergySavedConservative)
	require.Equal(t, 4.8, rep.EnergySavedAggressive)
	require.Equal(t, 1.6, rep.EnergySavedBalanced)
	require.Equal(t, 0.0036, rep.CO2EmissionOriginal)
	require.Equal(t, 0.0012, rep.CO2EmissionAggressive)
}

func TestBuilder_NegativeSavingsAreKept(t *testing.T) {
	reducer := stubReducer{analysis: reduction.Analysis{
		Conservative: "one two three four",
		Aggressive:   "one",
		Balanced:     "one two",
	}}
	b := newTestBuilder(t, reducer)

	rep, err := b.Build(context.Background(), "one two", "gpt-3.5-turbo")
	require.NoError(t, err)
	require.Equal(t, "gpt-3.5-turbo", rep.Model)
	require.Equal(t, -0.4, rep.EnergySavedConservative)
	require.Equal(t, 0.2, rep.EnergySavedAggressive)
	require.Equal(t, 0.0, rep.EnergySavedBalanced)
}

func TestBuilder_PropagatesAnalysisFailure(t *testing.T) {
	reducer := stubReducer{err: apperrors.Wrap(apperrors.CodeAnalysisFailed, "pos tagging failed", errors.New("boom"))}
	b := newTestBuilder(t, reducer)

	_, err := b.Build(context.Background(), "text", "gpt-4")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeAnalysisFailed))
}
