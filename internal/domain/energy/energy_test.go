package energy

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/prompt-optimizer/pkg/util"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedCounter(n int) TokenCounter {
	return TokenCounterFunc(func(string, string) (int, error) { return n, nil })
}

func newTestEstimator(t *testing.T, counter TokenCounter) Estimator {
	t.Helper()
	costs, err := NewCostProfile(DefaultCosts())
	require.NoError(t, err)
	return NewEstimator(counter, costs, "gpt-4", discardLogger())
}

func TestEstimator_Formula(t *testing.T) {
	tests := []struct {
		name   string
		tokens int
		model  string
		wantWh float64
	}{
		{name: "gpt-4", tokens: 1000, model: "gpt-4", wantWh: 0.008},
		{name: "gpt-3.5", tokens: 500, model: "gpt-3.5-turbo", wantWh: 0.001},
		{name: "claude opus", tokens: 2000, model: "claude-3-opus", wantWh: 0.024},
		{name: "unknown model uses default", tokens: 1000, model: "mistral-large", wantWh: 0.005},
		{name: "zero tokens", tokens: 0, model: "gpt-4", wantWh: 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			est := newTestEstimator(t, fixedCounter(tt.tokens)).Estimate("ignored", tt.model)
			require.Equal(t, tt.tokens, est.Tokens)
			require.Equal(t, tt.model, est.Model)
			require.InDelta(t, tt.wantWh, est.EnergyWh, 1e-12)
			require.InDelta(t, tt.wantWh*1000, est.EnergyMWh, 1e-9)
			require.InDelta(t, tt.wantWh/1000*500, est.CO2Grams, 1e-12)
		})
	}
}

func TestEstimator_EmptyModelUsesDefault(t *testing.T) {
	svc := newTestEstimator(t, fixedCounter(1000))
	est := svc.Estimate("text", "")
	require.Equal(t, "gpt-4", est.Model)
	require.Equal(t, "gpt-4", svc.DefaultModel())
	require.InDelta(t, 8.0, est.EnergyMWh, 1e-9)
}

func TestEstimator_CO2IsModelIndependent(t *testing.T) {
	svc := newTestEstimator(t, fixedCounter(1234))
	for _, model := range []string{"gpt-4", "gpt-3.5-turbo", "claude-3-opus", "unknown"} {
		est := svc.Estimate("text", model)
		require.InDelta(t, est.EnergyWh/1000*500, est.CO2Grams, 1e-15, model)
	}
}

func TestEstimate_Rounded(t *testing.T) {
	for tokens := 0; tokens <= 5000; tokens += 37 {
		est := newTestEstimator(t, fixedCounter(tokens)).Estimate("x", "claude-3-opus")
		rounded := est.Rounded()
		require.Equal(t, util.Round(est.EnergyWh, 6), rounded.EnergyWh)
		require.Equal(t, util.Round(est.EnergyWh*1000, 3), rounded.EnergyMWh)
		require.Equal(t, util.Round(est.CO2Grams, 6), rounded.CO2Grams)
		require.Equal(t, est.Tokens, rounded.Tokens)
	}
}

func TestChainCounter(t *testing.T) {
	unsupported := TokenCounterFunc(func(string, string) (int, error) { return 0, ErrUnsupportedModel })
	unavailable := TokenCounterFunc(func(string, string) (int, error) { return 0, ErrTokenizerUnavailable })

	t.Run("first success wins", func(t *testing.T) {
		chain := NewChainCounter(discardLogger(), fixedCounter(3), fixedCounter(9))
		n, err := chain.Count("text", "gpt-4")
		require.NoError(t, err)
		require.Equal(t, 3, n)
	})

	t.Run("falls through typed failures", func(t *testing.T) {
		chain := NewChainCounter(discardLogger(), unsupported, fixedCounter(7))
		n, err := chain.Count("text", "claude-3-opus")
		require.NoError(t, err)
		require.Equal(t, 7, n)
	})

	t.Run("character estimate is the last resort", func(t *testing.T) {
		chain := NewChainCounter(discardLogger(), unsupported, nil, unavailable)
		n, err := chain.Count("abcdefghi", "claude-3-opus")
		require.NoError(t, err)
		require.Equal(t, 3, n)
	})
}

func TestCharEstimator(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "a", want: 1},
		{text: "abcd", want: 1},
		{text: "abcde", want: 2},
		{text: "日本語テキスト", want: 2},
	}
	for _, tt := range tests {
		n, err := CharEstimator{}.Count(tt.text, "any")
		require.NoError(t, err)
		require.Equal(t, tt.want, n, tt.text)
	}
}

func TestCostProfile(t *testing.T) {
	_, err := NewCostProfile(map[string]float64{"gpt-4": 0.008})
	require.Error(t, err)

	_, err = NewCostProfile(map[string]float64{DefaultModelKey: 0.005, "bad": -1})
	require.Error(t, err)

	profile, err := NewCostProfile(DefaultCosts())
	require.NoError(t, err)
	require.True(t, profile.Known("gpt-4"))
	require.False(t, profile.Known("llama"))
	require.False(t, profile.Known(DefaultModelKey))
	require.Equal(t, 0.005, profile.WhPer1K("llama"))
	require.Equal(t, []string{"claude-3-opus", "claude-3-sonnet", "claude-4-sonnet", "gpt-3.5-turbo", "gpt-4", "gpt-4-turbo"}, profile.Models())
}
