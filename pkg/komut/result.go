package komut

import (
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/base"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/entity"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/intent"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/sentiment"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/tone"
)

// Result is the interpretation of one command. Tokens, Entities, Sentiment
// and Context come from the base pipeline; the rest from the enhanced layer.
type Result struct {
	OriginalText       string                `json:"originalText"`
	Tokens             []string              `json:"tokens"`
	Entities           []base.Entity         `json:"entities"`
	Sentiment          sentiment.Result      `json:"sentiment"`
	Intent             intent.Classification `json:"intent"`
	Context            base.Context          `json:"context"`
	StructuredEntities entity.Set            `json:"structuredEntities"`
	ContextAnalysis    tone.Analysis         `json:"contextAnalysis"`
	Suggestions        []string              `json:"suggestions"`
	Confidence         float64               `json:"confidence"`
}
