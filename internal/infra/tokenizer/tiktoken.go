package tokenizer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/yanqian/prompt-optimizer/internal/domain/energy"
)

// BaseEncoding is the general-purpose encoding used when a model has none.
const BaseEncoding = "cl100k_base"

// ModelEncoding counts tokens with the encoding registered for the model name.
// Encoders are cached per encoding, so the cache holds at most one entry for
// each encoding tiktoken knows. Unknown models are never stored.
type ModelEncoding struct {
	mu    sync.RWMutex
	cache map[string]*tiktoken.Tiktoken
}

// NewModelEncoding constructs the model-keyed strategy.
func NewModelEncoding() *ModelEncoding {
	return &ModelEncoding{cache: make(map[string]*tiktoken.Tiktoken)}
}

// Count implements energy.TokenCounter.
func (m *ModelEncoding) Count(text, model string) (int, error) {
	name, ok := encodingName(model)
	if !ok {
		return 0, fmt.Errorf("%w: %s", energy.ErrUnsupportedModel, model)
	}
	enc, err := m.encoder(name)
	if err != nil {
		return 0, err
	}
	return encode(enc, text)
}

func (m *ModelEncoding) encoder(name string) (*tiktoken.Tiktoken, error) {
	m.mu.RLock()
	enc, ok := m.cache[name]
	m.mu.RUnlock()
	if ok {
		return enc, nil
	}

	enc, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", energy.ErrTokenizerUnavailable, name, err)
	}
	m.mu.Lock()
	if cached, ok := m.cache[name]; ok {
		enc = cached
	} else {
		m.cache[name] = enc
	}
	m.mu.Unlock()
	return enc, nil
}

// encodingName resolves a model to its encoding the way tiktoken does: an
// exact entry first, then the longest matching prefix.
func encodingName(model string) (string, bool) {
	if name, ok := tiktoken.MODEL_TO_ENCODING[model]; ok {
		return name, true
	}
	var best, name string
	for prefix, enc := range tiktoken.MODEL_PREFIX_TO_ENCODING {
		if strings.HasPrefix(model, prefix) && len(prefix) > len(best) {
			best, name = prefix, enc
		}
	}
	return name, best != ""
}

// Len returns the number of cached encoders.
func (m *ModelEncoding) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}

// FixedEncoding counts tokens with one named encoding regardless of model.
type FixedEncoding struct {
	name string
	once sync.Once
	enc  *tiktoken.Tiktoken
	err  error
}

// NewFixedEncoding constructs a strategy for the named encoding, loaded on first use.
func NewFixedEncoding(name string) *FixedEncoding {
	return &FixedEncoding{name: name}
}

// Count implements energy.TokenCounter.
func (f *FixedEncoding) Count(text, _ string) (int, error) {
	f.once.Do(func() {
		enc, err := tiktoken.GetEncoding(f.name)
		if err != nil {
			f.err = fmt.Errorf("%w: load %s: %v", energy.ErrTokenizerUnavailable, f.name, err)
			return
		}
		f.enc = enc
	})
	if f.err != nil {
		return 0, f.err
	}
	return encode(f.enc, text)
}

// encode treats special-token text as ordinary input.
func encode(enc *tiktoken.Tiktoken, text string) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("%w: %v", energy.ErrTokenizerUnavailable, r)
		}
	}()
	return len(enc.Encode(text, nil, nil)), nil
}

var (
	_ energy.TokenCounter = (*ModelEncoding)(nil)
	_ energy.TokenCounter = (*FixedEncoding)(nil)
)
