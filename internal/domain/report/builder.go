package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yanqian/prompt-optimizer/internal/domain/energy"
	"github.com/yanqian/prompt-optimizer/internal/domain/reduction"
	"github.com/yanqian/prompt-optimizer/pkg/util"
)

// Builder produces optimization reports.
type Builder interface {
	Build(ctx context.Context, prompt, model string) (Report, error)
}

type builder struct {
	reducer   reduction.Service
	estimator energy.Estimator
	logger    *slog.Logger
}

// NewBuilder is a wire provider for the report domain.
func NewBuilder(reducer reduction.Service, estimator energy.Estimator, logger *slog.Logger) Builder {
	return &builder{reducer: reducer, estimator: estimator, logger: logger.With("component", "report.builder")}
}

func (b *builder) Build(ctx context.Context, prompt, model string) (Report, error) {
	analysis, err := b.reducer.Analyze(ctx, prompt)
	if err != nil {
		return Report{}, fmt.Errorf("build report: %w", err)
	}
	if model == "" {
		model = b.estimator.DefaultModel()
	}

	original := b.estimator.Estimate(prompt, model)
	conservative := b.estimator.Estimate(analysis.Conservative, model)
	aggressive := b.estimator.Estimate(analysis.Aggressive, model)
	balanced := b.estimator.Estimate(analysis.Balanced, model)

	rep := Report{
		Analysis:                analysis,
		Model:                   model,
		EnergySavedBalanced:     saved(original, balanced),
		EnergySavedAggressive:   saved(original, aggressive),
		EnergySavedConservative: saved(original, conservative),
		OriginalEnergy:          original.Rounded().EnergyMWh,
		CO2EmissionOriginal:     original.Rounded().CO2Grams,
		CO2EmissionBalanced:     balanced.Rounded().CO2Grams,
		CO2EmissionAggressive:   aggressive.Rounded().CO2Grams,
		CO2EmissionConservative: conservative.Rounded().CO2Grams,
		TokenCounts: TokenCounts{
			Original:     original.Tokens,
			Conservative: conservative.Tokens,
			Aggressive:   aggressive.Tokens,
			Balanced:     balanced.Tokens,
		},
	}
	b.logger.Debug("report built",
		"model", model,
		"original_tokens", original.Tokens,
		"balanced_tokens", balanced.Tokens,
		"energy_saved_balanced", rep.EnergySavedBalanced,
	)
	return rep, nil
}

// saved is computed on unrounded figures and rounded to the mWh precision.
func saved(original, variant energy.Estimate) float64 {
	return util.Round(original.EnergyMWh-variant.EnergyMWh, 3)
}
