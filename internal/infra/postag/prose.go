package postag

import (
	"fmt"
	"sync"

	"github.com/jdkato/prose/v2"

	"github.com/yanqian/prompt-optimizer/internal/domain/reduction"
)

// ProseTagger tags text with the averaged perceptron model shipped with prose.
// The model is loaded on first use and shared afterwards.
type ProseTagger struct {
	once    sync.Once
	model   *prose.Model
	loadErr error
}

// NewProseTagger constructs a tagger. Loading is deferred until Warm or Tag.
func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

// Warm loads the model eagerly.
func (p *ProseTagger) Warm() error {
	p.once.Do(func() {
		doc, err := p.document("warm up", nil)
		if err != nil {
			p.loadErr = fmt.Errorf("load prose model: %w", err)
			return
		}
		p.model = doc.Model
	})
	return p.loadErr
}

// Tag implements reduction.Tagger. Panics inside the tagger are reported as errors.
func (p *ProseTagger) Tag(text string) (tokens []reduction.TaggedToken, err error) {
	if err := p.Warm(); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			tokens, err = nil, fmt.Errorf("prose tagger panicked: %v", r)
		}
	}()

	doc, err := p.document(text, p.model)
	if err != nil {
		return nil, fmt.Errorf("prose tag: %w", err)
	}
	out := make([]reduction.TaggedToken, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		out = append(out, reduction.TaggedToken{Word: tok.Text, Tag: tok.Tag})
	}
	return out, nil
}

func (p *ProseTagger) document(text string, model *prose.Model) (*prose.Document, error) {
	opts := []prose.DocOpt{
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	}
	if model != nil {
		opts = append(opts, prose.UsingModel(model))
	}
	return prose.NewDocument(text, opts...)
}

var _ reduction.Tagger = (*ProseTagger)(nil)
