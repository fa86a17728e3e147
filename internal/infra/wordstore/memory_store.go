package wordstore

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/prompt-optimizer/internal/domain/spelling"
)

// MemoryStore keeps custom words in process memory for tests and dev.
type MemoryStore struct {
	mu    sync.RWMutex
	words map[string]struct{}
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{words: make(map[string]struct{})}
}

// Add implements spelling.WordStore.
func (s *MemoryStore) Add(_ context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range words {
		if w != "" {
			s.words[w] = struct{}{}
		}
	}
	return nil
}

// List implements spelling.WordStore. Words are returned sorted.
func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out, nil
}

var _ spelling.WordStore = (*MemoryStore)(nil)
