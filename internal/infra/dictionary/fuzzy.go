package dictionary

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sajari/fuzzy"

	"github.com/yanqian/prompt-optimizer/internal/domain/spelling"
)

// maxDistance bounds how far a correction may be from the input.
const maxDistance = 2

//go:embed en_frequency.txt
var englishFrequencies []byte

// WordCount is a dictionary entry with its corpus frequency.
type WordCount struct {
	Word  string
	Count int
}

// Dictionary adapts a sajari/fuzzy model to spelling.Dictionary. The fuzzy
// model locks internally; the known-word set has its own lock.
type Dictionary struct {
	model *fuzzy.Model

	mu    sync.RWMutex
	known map[string]struct{}
}

// New builds an empty dictionary. Delete keys are indexed one edit deep,
// which still reaches substitutions and transpositions.
func New() *Dictionary {
	model := fuzzy.NewModel()
	model.SetUseAutocomplete(false)
	model.SetThreshold(1)
	model.SetDepth(1)
	return &Dictionary{model: model, known: make(map[string]struct{})}
}

// NewEnglish builds a dictionary from the embedded English frequency list,
// plus the words of extraPath when it is set.
func NewEnglish(extraPath string) (*Dictionary, error) {
	d := New()
	entries, err := ReadFrequencies(bytes.NewReader(englishFrequencies))
	if err != nil {
		return nil, fmt.Errorf("read embedded word list: %w", err)
	}
	d.TrainCounts(entries)

	if extraPath != "" {
		f, err := os.Open(extraPath)
		if err != nil {
			return nil, fmt.Errorf("open dictionary file: %w", err)
		}
		defer f.Close()
		extra, err := ReadFrequencies(f)
		if err != nil {
			return nil, fmt.Errorf("read dictionary file: %w", err)
		}
		d.TrainCounts(extra)
	}
	return d, nil
}

// ReadFrequencies reads "word" or "word count" lines, skipping blanks and
// # comments. A missing count means 1.
func ReadFrequencies(r io.Reader) ([]WordCount, error) {
	var out []WordCount
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		entry := WordCount{Word: fields[0], Count: 1}
		if len(fields) > 1 {
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("line %d: invalid count %q", line, fields[1])
			}
			entry.Count = n
		}
		out = append(out, entry)
	}
	return out, scanner.Err()
}

// Known implements spelling.Dictionary.
func (d *Dictionary) Known(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.known[strings.ToLower(word)]
	return ok
}

// Correction implements spelling.Dictionary. It returns "" when nothing is close enough.
func (d *Dictionary) Correction(word string) string {
	ranked := d.rank(word)
	if len(ranked) == 0 {
		return ""
	}
	return ranked[0]
}

// Candidates implements spelling.Dictionary.
func (d *Dictionary) Candidates(word string, n int) []string {
	ranked := d.rank(word)
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

type candidate struct {
	term        string
	distance    int
	count       int
	firstLetter bool
}

// rank orders the model's potentials by edit distance, counting an adjacent
// transposition as one edit, then by frequency, then by a shared first letter.
func (d *Dictionary) rank(word string) []string {
	word = strings.ToLower(word)
	if word == "" {
		return nil
	}
	potentials := d.model.Potentials(word, true)
	cands := make([]candidate, 0, len(potentials))
	for term, p := range potentials {
		if term == word {
			continue
		}
		dist := osaDistance(word, term)
		if dist > maxDistance {
			continue
		}
		cands = append(cands, candidate{
			term:        term,
			distance:    dist,
			count:       p.Score,
			firstLetter: term[0] == word[0],
		})
	}
	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		if a.count != b.count {
			return a.count > b.count
		}
		if a.firstLetter != b.firstLetter {
			return a.firstLetter
		}
		return a.term < b.term
	})
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.term
	}
	return out
}

// osaDistance is the optimal string alignment distance over bytes.
func osaDistance(a, b string) int {
	prev2 := make([]int, len(b)+1)
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				cur[j] = min(cur[j], prev2[j-2]+1)
			}
		}
		prev2, prev, cur = prev, cur, prev2
	}
	return prev[len(b)]
}

// Train implements spelling.Dictionary. Custom words start with a count of one.
func (d *Dictionary) Train(words []string) {
	entries := make([]WordCount, 0, len(words))
	for _, w := range words {
		entries = append(entries, WordCount{Word: w, Count: 1})
	}
	d.TrainCounts(entries)
}

// TrainCounts adds entries with their frequencies. Words already known keep
// their first count.
func (d *Dictionary) TrainCounts(entries []WordCount) {
	fresh := make([]WordCount, 0, len(entries))
	d.mu.Lock()
	for _, e := range entries {
		w := strings.ToLower(strings.TrimSpace(e.Word))
		if w == "" {
			continue
		}
		if _, ok := d.known[w]; ok {
			continue
		}
		d.known[w] = struct{}{}
		fresh = append(fresh, WordCount{Word: w, Count: max(e.Count, 1)})
	}
	d.mu.Unlock()
	for _, e := range fresh {
		d.model.SetCount(e.Word, e.Count, true)
	}
}

// Len returns the number of known words.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.known)
}

var _ spelling.Dictionary = (*Dictionary)(nil)
