package reduction

import (
	"regexp"
	"strings"
	"unicode"
)

// Variant names one of the reduction policies.
type Variant string

const (
	Conservative Variant = "conservative"
	Aggressive   Variant = "aggressive"
	Balanced     Variant = "balanced"
)

// Policy maps a tagged token sequence to the retained words, preserving order.
type Policy interface {
	Variant() Variant
	Reduce(tokens []TaggedToken) []string
}

// DefaultPolicies returns the three policies in reporting order.
func DefaultPolicies(stopwords *Stopwords) []Policy {
	return []Policy{
		conservativePolicy{stopwords: stopwords},
		aggressivePolicy{stopwords: stopwords},
		balancedPolicy{stopwords: stopwords},
	}
}

// NewPolicy returns the policy for a variant, or false for unknown names.
func NewPolicy(v Variant, stopwords *Stopwords) (Policy, bool) {
	for _, p := range DefaultPolicies(stopwords) {
		if p.Variant() == v {
			return p, true
		}
	}
	return nil, false
}

type conservativePolicy struct {
	stopwords *Stopwords
}

func (conservativePolicy) Variant() Variant { return Conservative }

func (p conservativePolicy) Reduce(tokens []TaggedToken) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !isWord(tok.Word) {
			continue
		}
		if !p.stopwords.Contains(tok.Word) {
			out = append(out, tok.Word)
		}
	}
	return out
}

type aggressivePolicy struct {
	stopwords *Stopwords
}

func (aggressivePolicy) Variant() Variant { return Aggressive }

func (p aggressivePolicy) Reduce(tokens []TaggedToken) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !isWord(tok.Word) {
			continue
		}
		if !p.stopwords.Contains(tok.Word) && IsImportantTag(tok.Tag) {
			out = append(out, tok.Word)
		}
	}
	return out
}

type balancedPolicy struct {
	stopwords *Stopwords
}

func (balancedPolicy) Variant() Variant { return Balanced }

// Reduce keeps content words, prepositions once the output has started and
// determiners that introduce a content word.
func (p balancedPolicy) Reduce(tokens []TaggedToken) []string {
	out := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if !isWord(tok.Word) {
			continue
		}
		switch {
		case IsImportantTag(tok.Tag):
			out = append(out, tok.Word)
		case IsFilterableTag(tok.Tag):
			switch tok.Tag {
			case "IN":
				if len(out) > 0 {
					out = append(out, tok.Word)
				}
			case "DT":
				if i+1 < len(tokens) && IsImportantTag(tokens[i+1].Tag) {
					out = append(out, tok.Word)
				}
			}
		case !p.stopwords.Contains(tok.Word):
			out = append(out, tok.Word)
		}
	}
	return out
}

// isWord reports whether the token carries at least one letter or digit.
// Bare punctuation is never retained by a policy.
func isWord(word string) bool {
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

var disallowedChars = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.,!?:;]`)

// Normalize lowercases text, collapses whitespace and drops characters other
// than word characters, whitespace and - . , ! ? : ;
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
	return disallowedChars.ReplaceAllString(text, "")
}
