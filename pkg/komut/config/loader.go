package config

import (
	"fmt"
	"strings"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/intent"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/internalerr"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/lexicon"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/stoplist"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/tokenize"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/turkish"
)

// Loader loads all configuration files and constructs components.
// Empty paths keep the built-in Turkish tables.
type Loader struct {
	StoplistPath string
	LexiconPath  string
	IntentsPath  string
}

// Components holds all loaded configuration components
type Components struct {
	Tokenizer *tokenize.Tokenizer
	Lexicon   *lexicon.Lexicon
	Intents   *intent.Classifier
}

// Load reads all configuration files and returns initialized components
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	// Stopwords extend the Turkish defaults
	stops := stoplist.NewTurkish()
	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		for _, term := range sl.Terms {
			stops.Add(turkish.Lower(strings.TrimSpace(term)))
		}
	}
	comp.Tokenizer = tokenize.New(stops)

	if l.LexiconPath != "" {
		lex, err := lexicon.LoadFromYAML(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		comp.Lexicon = lex
		comp.Tokenizer.SetLexicon(lex)
	}

	comp.Intents = intent.Default()
	if l.IntentsPath != "" {
		rules, err := LoadIntents(l.IntentsPath)
		if err != nil {
			return nil, fmt.Errorf("load intents: %w", err)
		}
		extended, err := comp.Intents.Extend(rules)
		if err != nil {
			return nil, fmt.Errorf("load intents: %w: %v", internalerr.ErrInvalidConfig, err)
		}
		comp.Intents = extended
	}

	return comp, nil
}
