package report

import "github.com/yanqian/prompt-optimizer/internal/domain/reduction"

// TokenCounts holds the token count of the original prompt and of each variant.
type TokenCounts struct {
	Original     int `json:"original"`
	Conservative int `json:"conservative"`
	Aggressive   int `json:"aggressive"`
	Balanced     int `json:"balanced"`
}

// Report combines a prompt analysis with energy and carbon figures. Energy is
// in mWh and CO2 in grams. Savings are signed: a variant that tokenizes longer
// than the original yields a negative saving.
type Report struct {
	reduction.Analysis

	Model                   string      `json:"model"`
	EnergySavedBalanced     float64     `json:"energy_saved_balanced"`
	EnergySavedAggressive   float64     `json:"energy_saved_aggressive"`
	EnergySavedConservative float64     `json:"energy_saved_conservative"`
	OriginalEnergy          float64     `json:"original_energy"`
	CO2EmissionOriginal     float64     `json:"co2emission_original"`
	CO2EmissionBalanced     float64     `json:"co2emission_balanced"`
	CO2EmissionAggressive   float64     `json:"co2emission_aggressive"`
	CO2EmissionConservative float64     `json:"co2emission_conservative"`
	TokenCounts             TokenCounts `json:"token_counts"`
}
