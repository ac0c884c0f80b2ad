// Package komut interprets free-form Turkish commands into a structured
// description of intent, entities, tone and follow-up suggestions.
//
// The interpreter is rule-based and deterministic: every score can be traced
// back to a keyword, phrase or pattern in its tables. A cheap base pipeline
// runs first; the enhanced layer adds typed entities, weighted intent
// scoring and tone analysis on top of it.
package komut

import (
	"time"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/base"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/entity"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/intent"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/suggest"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/tokenize"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/tone"
)

// Interpreter is the main command interpreter facade. It is read-only after
// New and safe for concurrent use.
type Interpreter struct {
	base      *base.Pipeline
	intents   *intent.Classifier
	extractor *entity.Extractor
	now       func() time.Time
}

// Options configures an Interpreter. Zero fields fall back to the built-in
// Turkish tables and the wall clock.
type Options struct {
	Tokenizer *tokenize.Tokenizer
	Intents   *intent.Classifier
	Extractor *entity.Extractor
	Now       func() time.Time
}

// New creates an Interpreter with the given dependencies.
func New(opts Options) *Interpreter {
	in := &Interpreter{
		base:      base.NewPipeline(opts.Tokenizer),
		intents:   opts.Intents,
		extractor: opts.Extractor,
		now:       opts.Now,
	}
	if in.intents == nil {
		in.intents = intent.Default()
	}
	if in.extractor == nil {
		in.extractor = entity.NewExtractor()
	}
	if in.now == nil {
		in.now = time.Now
	}
	return in
}

// InterpretBase runs only the base pipeline.
func (in *Interpreter) InterpretBase(text string) base.Result {
	return in.base.Process(text)
}

// Interpret runs the base pipeline, then the enhanced layer, and composes
// both into a Result.
func (in *Interpreter) Interpret(text string) Result {
	b := in.base.Process(text)

	classification := in.intents.Classify(text)
	entities := in.extractor.Extract(text, in.now())

	return Result{
		OriginalText:       text,
		Tokens:             b.Tokens,
		Entities:           b.Entities,
		Sentiment:          b.Sentiment,
		Intent:             classification,
		Context:            b.Context,
		StructuredEntities: entities,
		ContextAnalysis:    tone.Analyze(text),
		Suggestions:        suggest.Generate(classification.Primary, entities),
		Confidence:         ComposeConfidence(classification.Confidence, entities.Count(), text),
	}
}
