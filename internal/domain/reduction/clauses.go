package reduction

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	orphanedPunct = regexp.MustCompile(`\s*[,;]\s*`)
	leadingPunct  = regexp.MustCompile(`^\s*[,;.\-]\s*`)
	trailingPunct = regexp.MustCompile(`\s*[,;]\s*$`)
)

// ClauseMatch records one phrase matched during clause removal.
type ClauseMatch struct {
	Phrase  string
	Pattern string
}

type compiledPattern struct {
	source string
	re     *regexp2.Regexp
}

// ClauseRemover strips catalogue phrases from prompts. It is safe for concurrent use.
type ClauseRemover struct {
	patterns []compiledPattern
}

// NewClauseRemover compiles every catalogue pattern case-insensitively.
func NewClauseRemover(cat Catalogue) (*ClauseRemover, error) {
	sources := cat.Patterns()
	patterns := make([]compiledPattern, 0, len(sources))
	for _, src := range sources {
		re, err := regexp2.Compile(src, regexp2.IgnoreCase)
		if err != nil {
			return nil, fmt.Errorf("compile clause pattern %q: %w", src, err)
		}
		patterns = append(patterns, compiledPattern{source: src, re: re})
	}
	return &ClauseRemover{patterns: patterns}, nil
}

// Matches scans the lowercased text once per pattern and returns every hit.
// Hits are collected against the untouched text, so overlapping phrases are
// all reported even when an earlier pattern would already have consumed them.
func (r *ClauseRemover) Matches(text string) []ClauseMatch {
	lowered := strings.ToLower(text)
	var out []ClauseMatch
	for _, p := range r.patterns {
		m, err := p.re.FindStringMatch(lowered)
		for err == nil && m != nil {
			out = append(out, ClauseMatch{Phrase: m.String(), Pattern: p.source})
			m, err = p.re.FindNextMatch(m)
		}
	}
	return out
}

// Remove deletes catalogue phrases and tidies the remaining punctuation.
// The removed list is the reporting view of Matches.
func (r *ClauseRemover) Remove(text string) (string, []string) {
	removed := []string{}
	if text == "" {
		return "", removed
	}
	for _, m := range r.Matches(text) {
		removed = append(removed, m.Phrase)
	}

	stripped := text
	for _, p := range r.patterns {
		out, err := p.re.Replace(stripped, "", -1, -1)
		if err != nil {
			continue
		}
		stripped = out
	}
	return tidy(stripped), removed
}

func tidy(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = orphanedPunct.ReplaceAllString(text, " ")
	text = leadingPunct.ReplaceAllString(text, "")
	text = trailingPunct.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
