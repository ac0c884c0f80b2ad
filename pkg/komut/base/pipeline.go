// Package base is the lightweight first pass of the interpreter: tokens,
// span entities, a keyword intent guess, sentiment and surface context.
// It can be used on its own when the enhanced layer is not needed.
package base

import (
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/intent"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/sentiment"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/tokenize"
)

// Pipeline orchestrates the base flow:
// text → tokens → span entities → sentiment → intent → context
type Pipeline struct {
	tokenizer *tokenize.Tokenizer
}

// NewPipeline creates a base pipeline. A nil tokenizer means the default
// Turkish tokenizer.
func NewPipeline(tokenizer *tokenize.Tokenizer) *Pipeline {
	if tokenizer == nil {
		tokenizer = tokenize.New(nil)
	}
	return &Pipeline{tokenizer: tokenizer}
}

// Result is the outcome of the base pipeline.
type Result struct {
	Tokens    []string              `json:"tokens"`
	Entities  []Entity              `json:"entities"`
	Sentiment sentiment.Result      `json:"sentiment"`
	Intent    intent.Classification `json:"intent"`
	Context   Context               `json:"context"`
}

// Process runs text through the base pipeline.
func (p *Pipeline) Process(text string) Result {
	tokens := p.tokenizer.Tokenize(text)

	return Result{
		Tokens:    tokens,
		Entities:  ExtractEntities(text),
		Sentiment: sentiment.Analyze(tokens),
		Intent:    ClassifyIntent(tokens),
		Context:   ExtractContext(text),
	}
}

// Tokenizer returns the tokenizer the pipeline uses.
func (p *Pipeline) Tokenizer() *tokenize.Tokenizer {
	return p.tokenizer
}
