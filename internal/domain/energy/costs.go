package energy

import (
	"fmt"
	"sort"
)

// DefaultModelKey is the mandatory cost-table entry used for unknown models.
const DefaultModelKey = "default"

// DefaultCosts returns the built-in energy cost table in Wh per 1000 tokens.
func DefaultCosts() map[string]float64 {
	return map[string]float64{
		"gpt-3.5-turbo":   0.002,
		"gpt-4":           0.008,
		"gpt-4-turbo":     0.006,
		"claude-3-sonnet": 0.005,
		"claude-3-opus":   0.012,
		"claude-4-sonnet": 0.005,
		DefaultModelKey:   0.005,
	}
}

// CostProfile maps model identifiers to Wh per 1000 tokens. It is read-only
// after construction.
type CostProfile struct {
	whPer1K map[string]float64
}

// NewCostProfile validates and copies a cost table.
func NewCostProfile(costs map[string]float64) (*CostProfile, error) {
	if _, ok := costs[DefaultModelKey]; !ok {
		return nil, fmt.Errorf("cost table must contain a %q entry", DefaultModelKey)
	}
	table := make(map[string]float64, len(costs))
	for model, cost := range costs {
		if cost < 0 {
			return nil, fmt.Errorf("cost for model %q must not be negative", model)
		}
		table[model] = cost
	}
	return &CostProfile{whPer1K: table}, nil
}

// WhPer1K returns the model's cost, falling back to the default entry.
func (p *CostProfile) WhPer1K(model string) float64 {
	if cost, ok := p.whPer1K[model]; ok {
		return cost
	}
	return p.whPer1K[DefaultModelKey]
}

// Known reports whether model has its own cost entry.
func (p *CostProfile) Known(model string) bool {
	if model == DefaultModelKey {
		return false
	}
	_, ok := p.whPer1K[model]
	return ok
}

// Models lists the models with explicit entries, sorted.
func (p *CostProfile) Models() []string {
	out := make([]string, 0, len(p.whPer1K))
	for model := range p.whPer1K {
		if model != DefaultModelKey {
			out = append(out, model)
		}
	}
	sort.Strings(out)
	return out
}
