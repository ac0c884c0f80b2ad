package tokenize

import (
	"strings"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/lexicon"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/stoplist"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/turkish"
)

// Tokenizer handles text tokenization and normalization
type Tokenizer struct {
	stops   *stoplist.Manager
	lexicon *lexicon.Lexicon // optional: canonical forms
}

// New creates a tokenizer over the given stopword manager. A nil manager
// means the built-in Turkish stopwords.
func New(stops *stoplist.Manager) *Tokenizer {
	if stops == nil {
		stops = stoplist.NewTurkish()
	}
	return &Tokenizer{stops: stops}
}

// NewTokenizer creates a tokenizer with an explicit stopword list.
func NewTokenizer(stopwords []string) *Tokenizer {
	lowered := make([]string, len(stopwords))
	for i, w := range stopwords {
		lowered[i] = turkish.Lower(w)
	}
	return &Tokenizer{stops: stoplist.NewManager(lowered)}
}

// SetLexicon assigns a lexicon; tokens are mapped to their canonical forms
// before the stopword check.
func (t *Tokenizer) SetLexicon(lex *lexicon.Lexicon) {
	t.lexicon = lex
}

// Tokenize lowercases text with Turkish rules, turns every rune that is not a
// word character or Turkish letter into a separator, and drops stopwords.
// Order and duplicates are preserved. The result is never nil.
func (t *Tokenizer) Tokenize(text string) []string {
	lowered := turkish.Lower(text)
	cleaned := strings.Map(func(r rune) rune {
		if turkish.IsWordRune(r) {
			return r
		}
		return ' '
	}, lowered)

	tokens := make([]string, 0, 8)
	for _, word := range strings.Fields(cleaned) {
		if t.lexicon != nil {
			word = t.lexicon.Normalize(word)
		}
		if t.stops.IsStop(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// Stopwords exposes the stopword manager.
func (t *Tokenizer) Stopwords() *stoplist.Manager {
	return t.stops
}
