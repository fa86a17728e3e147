package reduction

// StopwordHit is a token flagged as low-information, with the reason it was flagged.
type StopwordHit struct {
	Word   string `json:"word"`
	Tag    string `json:"tag"`
	Reason string `json:"reason"`
}

// ImportantWord is a content-bearing token.
type ImportantWord struct {
	Word string `json:"word"`
	Tag  string `json:"tag"`
}

// Analysis is the complete reduction result for one prompt. It is built once
// per request and never mutated afterwards.
type Analysis struct {
	Original               string              `json:"original"`
	Conservative           string              `json:"conservative"`
	Aggressive             string              `json:"aggressive"`
	Balanced               string              `json:"balanced"`
	RemovedClauses         []string            `json:"removed_clauses"`
	TextAfterClauseRemoval string              `json:"text_after_clause_removal"`
	POSAnalysis            map[string][]string `json:"pos_analysis"`
	StopwordsFound         []StopwordHit       `json:"stopwords_found"`
	ImportantWords         []ImportantWord     `json:"important_words"`
	Tokens                 []TaggedToken       `json:"-"`
}

// Variant returns the reduced text produced by the named policy.
func (a Analysis) Variant(v Variant) string {
	switch v {
	case Conservative:
		return a.Conservative
	case Aggressive:
		return a.Aggressive
	case Balanced:
		return a.Balanced
	default:
		return ""
	}
}
