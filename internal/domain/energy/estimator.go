package energy

import (
	"log/slog"

	"github.com/yanqian/prompt-optimizer/pkg/util"
)

// Grid carbon intensity used for every model, in grams of CO2 per kWh.
const gramsCO2PerKWh = 500

// Estimate is the token, energy and carbon estimate for one text.
type Estimate struct {
	Tokens    int     `json:"tokens"`
	Model     string  `json:"model"`
	EnergyWh  float64 `json:"energy_wh"`
	EnergyMWh float64 `json:"energy_mwh"`
	CO2Grams  float64 `json:"co2_grams"`
}

// Rounded returns the presentation form: Wh and CO2 to 6 places, mWh to 3.
func (e Estimate) Rounded() Estimate {
	e.EnergyWh = util.Round(e.EnergyWh, 6)
	e.EnergyMWh = util.Round(e.EnergyMWh, 3)
	e.CO2Grams = util.Round(e.CO2Grams, 6)
	return e
}

// Estimator maps a text and a model to an Estimate. It never fails.
type Estimator interface {
	Estimate(text, model string) Estimate
	DefaultModel() string
}

type estimator struct {
	counter      TokenCounter
	costs        *CostProfile
	defaultModel string
	logger       *slog.Logger
}

// NewEstimator is a wire provider for the energy domain.
func NewEstimator(counter TokenCounter, costs *CostProfile, defaultModel string, logger *slog.Logger) Estimator {
	if defaultModel == "" {
		defaultModel = DefaultModelKey
	}
	return &estimator{
		counter:      counter,
		costs:        costs,
		defaultModel: defaultModel,
		logger:       logger.With("component", "energy.estimator"),
	}
}

func (e *estimator) DefaultModel() string {
	return e.defaultModel
}

// Estimate returns unrounded figures; callers round with Rounded at the boundary.
func (e *estimator) Estimate(text, model string) Estimate {
	if model == "" {
		model = e.defaultModel
	}
	tokens, err := e.counter.Count(text, model)
	if err != nil {
		tokens, _ = CharEstimator{}.Count(text, model)
	}
	if !e.costs.Known(model) {
		e.logger.Debug("no cost entry for model, using default", "model", model)
	}

	wh := float64(tokens) / 1000 * e.costs.WhPer1K(model)
	return Estimate{
		Tokens:    tokens,
		Model:     model,
		EnergyWh:  wh,
		EnergyMWh: wh * 1000,
		CO2Grams:  wh / 1000 * gramsCO2PerKWh,
	}
}
