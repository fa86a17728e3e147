package spelling

// Response statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Config tunes the spell-check service.
type Config struct {
	MaxSuggestions   int
	BatchConcurrency int
}

// MisspelledWord is an unknown word with its suggested corrections.
type MisspelledWord struct {
	Word        string   `json:"misspelled_word"`
	Suggestions []string `json:"suggestions"`
	Position    int      `json:"position"`
}

// Data is the detailed outcome of checking one text.
type Data struct {
	OriginalText       string           `json:"original_text"`
	TotalWords         int              `json:"total_words"`
	MisspelledCount    int              `json:"misspelled_count"`
	MisspelledWords    []MisspelledWord `json:"misspelled_words"`
	AccuracyPercentage float64          `json:"accuracy_percentage"`
}

// Response is returned for every check, including rejected input.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    *Data  `json:"data"`
}

// Summary aggregates a batch.
type Summary struct {
	TotalTexts       int     `json:"total_texts"`
	SuccessfulChecks int     `json:"successful_checks"`
	TotalWords       int     `json:"total_words"`
	TotalMisspelled  int     `json:"total_misspelled"`
	OverallAccuracy  float64 `json:"overall_accuracy"`
}

// BatchResponse holds per-text results in request order.
type BatchResponse struct {
	Status  string     `json:"status"`
	Message string     `json:"message"`
	Results []Response `json:"results"`
	Summary *Summary   `json:"summary"`
}

func errorResponse(message string) Response {
	return Response{Status: StatusError, Message: message}
}
