package spelling

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/yanqian/prompt-optimizer/pkg/errors"
	"github.com/yanqian/prompt-optimizer/pkg/util"
)

// Dictionary is the spell-correction collaborator.
type Dictionary interface {
	Known(word string) bool
	Correction(word string) string
	Candidates(word string, n int) []string
	Train(words []string)
}

// WordStore persists custom dictionary words.
type WordStore interface {
	Add(ctx context.Context, words []string) error
	List(ctx context.Context) ([]string, error)
}

// Service exposes spell-check capabilities.
type Service interface {
	Check(ctx context.Context, text string) Response
	BatchCheck(ctx context.Context, texts []string) BatchResponse
	Suggestions(ctx context.Context, word string) []string
	AddWords(ctx context.Context, words []string) (int, error)
	LoadCustomWords(ctx context.Context) (int, error)
}

// Unicode-aware boundaries so letters glued to accented characters are not split out.
var wordPattern = regexp2.MustCompile(`\b[a-zA-Z]+\b`, regexp2.None)

type service struct {
	cfg    Config
	dict   Dictionary
	store  WordStore
	logger *slog.Logger
}

// NewService is a wire provider for the spelling domain.
func NewService(cfg Config, dict Dictionary, store WordStore, logger *slog.Logger) Service {
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = 5
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = 4
	}
	return &service{cfg: cfg, dict: dict, store: store, logger: logger.With("component", "spelling.service")}
}

type wordAt struct {
	word     string
	position int
}

// extractWords returns lowercased ASCII words with their character offsets.
func extractWords(text string) []wordAt {
	var out []wordAt
	m, err := wordPattern.FindStringMatch(text)
	for err == nil && m != nil {
		out = append(out, wordAt{word: strings.ToLower(m.String()), position: m.Index})
		m, err = wordPattern.FindNextMatch(m)
	}
	return out
}

func (s *service) Check(_ context.Context, text string) Response {
	if text == "" {
		return errorResponse("Invalid input: text must be a non-empty string")
	}
	words := extractWords(text)
	if len(words) == 0 {
		return errorResponse("No valid words found in the text")
	}

	misspelled := []MisspelledWord{}
	for _, w := range words {
		if s.dict.Known(w.word) {
			continue
		}
		misspelled = append(misspelled, MisspelledWord{
			Word:        w.word,
			Suggestions: s.suggest(w.word),
			Position:    w.position,
		})
	}

	total := len(words)
	accuracy := float64(total-len(misspelled)) / float64(total) * 100
	message := "No misspelled words found"
	if len(misspelled) > 0 {
		message = fmt.Sprintf("Found %d misspelled word(s)", len(misspelled))
	}
	return Response{
		Status:  StatusSuccess,
		Message: message,
		Data: &Data{
			OriginalText:       text,
			TotalWords:         total,
			MisspelledCount:    len(misspelled),
			MisspelledWords:    misspelled,
			AccuracyPercentage: util.Round(accuracy, 2),
		},
	}
}

func (s *service) BatchCheck(ctx context.Context, texts []string) BatchResponse {
	if len(texts) == 0 {
		return BatchResponse{
			Status:  StatusError,
			Message: "Invalid input: texts must be a non-empty list",
			Results: []Response{},
		}
	}

	results := make([]Response, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchConcurrency)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.Check(gctx, text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn("batch spell check aborted", "error", err)
		return BatchResponse{
			Status:  StatusError,
			Message: fmt.Sprintf("An error occurred during batch spell check: %v", err),
			Results: []Response{},
		}
	}

	summary := Summary{TotalTexts: len(texts)}
	for _, res := range results {
		if res.Status != StatusSuccess || res.Data == nil {
			continue
		}
		summary.SuccessfulChecks++
		summary.TotalWords += res.Data.TotalWords
		summary.TotalMisspelled += res.Data.MisspelledCount
	}
	if summary.TotalWords > 0 {
		correct := summary.TotalWords - summary.TotalMisspelled
		summary.OverallAccuracy = util.Round(float64(correct)/float64(summary.TotalWords)*100, 2)
	}
	return BatchResponse{
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Processed %d texts successfully", len(texts)),
		Results: results,
		Summary: &summary,
	}
}

func (s *service) Suggestions(_ context.Context, word string) []string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return []string{}
	}
	return s.suggest(word)
}

// suggest puts the best correction first and fills up with other candidates.
func (s *service) suggest(word string) []string {
	out := make([]string, 0, s.cfg.MaxSuggestions)
	best := s.dict.Correction(word)
	if best != "" && best != word {
		out = append(out, best)
	}
	for _, c := range s.dict.Candidates(word, s.cfg.MaxSuggestions+2) {
		if len(out) >= s.cfg.MaxSuggestions {
			break
		}
		if c == best || c == word {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (s *service) AddWords(ctx context.Context, words []string) (int, error) {
	cleaned := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		cleaned = append(cleaned, w)
	}
	if len(cleaned) == 0 {
		return 0, apperrors.Wrap(apperrors.CodeInvalidInput, "words cannot be empty", nil)
	}
	if err := s.store.Add(ctx, cleaned); err != nil {
		return 0, apperrors.Wrap(apperrors.CodeDictionaryError, "persist custom words", err)
	}
	s.dict.Train(cleaned)
	s.logger.Info("custom words added", "count", len(cleaned))
	return len(cleaned), nil
}

// LoadCustomWords trains the dictionary with every stored custom word.
func (s *service) LoadCustomWords(ctx context.Context) (int, error) {
	words, err := s.store.List(ctx)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeDictionaryError, "load custom words", err)
	}
	if len(words) > 0 {
		s.dict.Train(words)
	}
	return len(words), nil
}
