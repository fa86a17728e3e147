package aioptimizer

import "github.com/yanqian/prompt-optimizer/pkg/metrics"

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Request bounds and defaults.
const (
	MaxTextLength      = 10000
	DefaultMaxLength   = 50
	DefaultMinLength   = 20
	DefaultTopKeywords = 5
)

// Config configures the optimizer.
type Config struct {
	Model         string
	Temperature   float32
	SummaryPrompt string
}

// Request is the payload shared by the optimize, summarize and keywords endpoints.
// Zero lengths take the defaults.
type Request struct {
	Text        string `json:"text" binding:"required,max=10000"`
	MaxLength   int    `json:"max_length" binding:"omitempty,min=20,max=200"`
	MinLength   int    `json:"min_length" binding:"omitempty,min=10,max=100"`
	TopKeywords int    `json:"top_keywords" binding:"omitempty,min=1,max=20"`
}

func (r Request) withDefaults() Request {
	if r.MaxLength == 0 {
		r.MaxLength = DefaultMaxLength
	}
	if r.MinLength == 0 {
		r.MinLength = DefaultMinLength
	}
	if r.TopKeywords == 0 {
		r.TopKeywords = DefaultTopKeywords
	}
	return r
}

// SummaryResponse is the result of summarization. Lengths count characters.
type SummaryResponse struct {
	Summary          string              `json:"summary"`
	OriginalLength   int                 `json:"original_length"`
	SummaryLength    int                 `json:"summary_length"`
	CompressionRatio float64             `json:"compression_ratio"`
	TokenUsage       *metrics.TokenUsage `json:"tokenUsage,omitempty"`
}

// KeywordResponse lists extracted keyphrases, most relevant first.
type KeywordResponse struct {
	Keywords []string `json:"keywords"`
	Count    int      `json:"count"`
}

// CompressionRatios compare each compressed form with the original length.
type CompressionRatios struct {
	Summary  float64 `json:"summary"`
	Keywords float64 `json:"keywords"`
}

// OptimizeResponse combines summarization and keyword compression.
type OptimizeResponse struct {
	Original          string              `json:"original"`
	OriginalLength    int                 `json:"original_length"`
	Summarized        string              `json:"summarized"`
	SummaryLength     int                 `json:"summary_length"`
	KeywordBased      string              `json:"keyword_based"`
	KeywordsCount     int                 `json:"keywords_count"`
	CompressionRatios CompressionRatios   `json:"compression_ratios"`
	TokenUsage        *metrics.TokenUsage `json:"tokenUsage,omitempty"`
}

// HealthResponse reports whether the language models are available.
type HealthResponse struct {
	Status       string `json:"status"`
	ModelsLoaded bool   `json:"models_loaded"`
	Version      string `json:"version"`
}
