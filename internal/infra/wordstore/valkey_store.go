package wordstore

import (
	"context"
	"sort"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/prompt-optimizer/internal/domain/spelling"
)

// ValkeyStore persists custom words in a Valkey set so every replica trains
// the same dictionary.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "spelling"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Add implements spelling.WordStore.
func (s *ValkeyStore) Add(ctx context.Context, words []string) error {
	if len(words) == 0 {
		return nil
	}
	cmd := s.client.B().Sadd().Key(s.wordsKey()).Member(words...).Build()
	return s.client.Do(ctx, cmd).Error()
}

// List implements spelling.WordStore.
func (s *ValkeyStore) List(ctx context.Context) ([]string, error) {
	words, err := s.client.Do(ctx, s.client.B().Smembers().Key(s.wordsKey()).Build()).AsStrSlice()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	sort.Strings(words)
	return words, nil
}

func (s *ValkeyStore) wordsKey() string {
	return s.prefix + ":custom_words"
}

var _ spelling.WordStore = (*ValkeyStore)(nil)
