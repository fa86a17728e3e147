package reduction

import "strings"

// Classification is the derived status of a tagged token.
type Classification int

const (
	Neutral Classification = iota
	Important
	Filterable
	PlainStopword
)

func (c Classification) String() string {
	switch c {
	case Important:
		return "important"
	case Filterable:
		return "filterable_pos"
	case PlainStopword:
		return "stopword"
	default:
		return "neutral"
	}
}

// Content-bearing categories.
var importantTags = map[string]struct{}{
	"NN": {}, "NNS": {}, "NNP": {}, "NNPS": {},
	"VB": {}, "VBD": {}, "VBG": {}, "VBN": {}, "VBP": {}, "VBZ": {},
	"JJ": {}, "JJR": {}, "JJS": {},
	"RB": {}, "RBR": {}, "RBS": {},
	"CD": {},
	"FW": {},
}

// Function-word categories.
var filterableTags = map[string]struct{}{
	"DT":   {},
	"IN":   {},
	"CC":   {},
	"TO":   {},
	"PRP":  {},
	"PRP$": {},
	"WDT":  {},
	"WP":   {},
	"WP$":  {},
	"WRB":  {},
}

// IsImportantTag reports whether tag is a content-bearing category.
func IsImportantTag(tag string) bool {
	_, ok := importantTags[tag]
	return ok
}

// IsFilterableTag reports whether tag is a function-word category.
func IsFilterableTag(tag string) bool {
	_, ok := filterableTags[tag]
	return ok
}

// Classify derives a token's status. Stopword membership wins over a filterable tag.
func Classify(tok TaggedToken, stopwords *Stopwords) Classification {
	switch {
	case stopwords.Contains(tok.Word):
		return PlainStopword
	case IsFilterableTag(tok.Tag):
		return Filterable
	case IsImportantTag(tok.Tag):
		return Important
	default:
		return Neutral
	}
}

// Stopwords is the read-only union of a general stopword list and a custom list.
type Stopwords struct {
	words map[string]struct{}
}

// NewStopwords builds a lowercase lookup set from the given lists.
func NewStopwords(lists ...[]string) *Stopwords {
	words := make(map[string]struct{})
	for _, list := range lists {
		for _, w := range list {
			words[strings.ToLower(w)] = struct{}{}
		}
	}
	return &Stopwords{words: words}
}

// DefaultStopwords returns the English list unioned with the custom prompt list.
func DefaultStopwords() *Stopwords {
	return NewStopwords(englishStopwords, customStopwords)
}

// Contains reports case-insensitive membership.
func (s *Stopwords) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct stopwords.
func (s *Stopwords) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

var customStopwords = []string{
	"please", "kindly", "a", "an", "the", "such",
	"only", "own", "same", "so", "than", "too",
	"very", "about", "after", "all", "also", "any",
}

var englishStopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
	"you", "you're", "you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "she's", "her", "hers", "herself",
	"it", "it's", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "that'll", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until", "while",
	"of", "at", "by", "for", "with", "about", "against", "between", "into", "through",
	"during", "before", "after", "above", "below", "to", "from", "up", "down",
	"in", "out", "on", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how", "all", "any", "both", "each",
	"few", "more", "most", "other", "some", "such", "no", "nor", "not", "only",
	"own", "same", "so", "than", "too", "very", "s", "t", "can", "will", "just",
	"don", "don't", "should", "should've", "now", "d", "ll", "m", "o", "re", "ve", "y",
	"ain", "aren", "aren't", "couldn", "couldn't", "didn", "didn't", "doesn", "doesn't",
	"hadn", "hadn't", "hasn", "hasn't", "haven", "haven't", "isn", "isn't", "ma",
	"mightn", "mightn't", "mustn", "mustn't", "needn", "needn't", "shan", "shan't",
	"shouldn", "shouldn't", "wasn", "wasn't", "weren", "weren't", "won", "won't",
	"wouldn", "wouldn't",
}
