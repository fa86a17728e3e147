package reduction

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/prompt-optimizer/pkg/errors"
)

// Service reduces prompts with every policy and reports diagnostics.
type Service interface {
	Analyze(ctx context.Context, prompt string) (Analysis, error)
}

type service struct {
	remover   *ClauseRemover
	tagger    Tagger
	stopwords *Stopwords
	policies  []Policy
	logger    *slog.Logger
}

// NewService is a wire provider for the reduction domain.
func NewService(remover *ClauseRemover, tagger Tagger, stopwords *Stopwords, logger *slog.Logger) Service {
	return &service{
		remover:   remover,
		tagger:    tagger,
		stopwords: stopwords,
		policies:  DefaultPolicies(stopwords),
		logger:    logger.With("component", "reduction.service"),
	}
}

func (s *service) Analyze(ctx context.Context, prompt string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, apperrors.Wrap(apperrors.CodeAnalysisFailed, "analysis cancelled", err)
	}

	stripped, removed := s.remover.Remove(prompt)

	diagnostic, err := s.tagger.Tag(stripped)
	if err != nil {
		return Analysis{}, apperrors.Wrap(apperrors.CodeAnalysisFailed, "pos tagging failed", err)
	}
	histogram, hits, important := s.breakdown(diagnostic)

	// Every policy starts from the same clause-stripped, normalized text, so
	// the tagging pass is shared between them.
	policyTokens, err := s.tagger.Tag(Normalize(stripped))
	if err != nil {
		return Analysis{}, apperrors.Wrap(apperrors.CodeAnalysisFailed, "pos tagging failed", err)
	}

	analysis := Analysis{
		Original:               prompt,
		RemovedClauses:         removed,
		TextAfterClauseRemoval: stripped,
		POSAnalysis:            histogram,
		StopwordsFound:         hits,
		ImportantWords:         important,
		Tokens:                 diagnostic,
	}
	for _, policy := range s.policies {
		reduced := strings.Join(policy.Reduce(policyTokens), " ")
		switch policy.Variant() {
		case Conservative:
			analysis.Conservative = reduced
		case Aggressive:
			analysis.Aggressive = reduced
		case Balanced:
			analysis.Balanced = reduced
		}
	}

	s.logger.Debug("prompt analyzed",
		"removed_clauses", len(removed),
		"tokens", len(diagnostic),
		"conservative_words", wordCount(analysis.Conservative),
		"aggressive_words", wordCount(analysis.Aggressive),
		"balanced_words", wordCount(analysis.Balanced),
	)
	return analysis, nil
}

func (s *service) breakdown(tokens []TaggedToken) (map[string][]string, []StopwordHit, []ImportantWord) {
	histogram := make(map[string][]string)
	hits := []StopwordHit{}
	important := []ImportantWord{}
	for _, tok := range tokens {
		histogram[tok.Tag] = append(histogram[tok.Tag], tok.Word)
		switch class := Classify(tok, s.stopwords); class {
		case PlainStopword, Filterable:
			hits = append(hits, StopwordHit{Word: tok.Word, Tag: tok.Tag, Reason: class.String()})
		case Important:
			important = append(important, ImportantWord{Word: tok.Word, Tag: tok.Tag})
		}
	}
	return histogram, hits, important
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
