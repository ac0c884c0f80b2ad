package lexicon

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/turkish"
)

// Lexicon maps inflected or colloquial Turkish forms onto a canonical token,
// e.g. "teşekkürler", "sağolun" → "teşekkür". Tokens are compared after
// Turkish lowercasing.
//
// A Lexicon is filled at configuration time and only read afterwards, so a
// single instance may be shared by concurrent tokenizers.
type Lexicon struct {
	// canonical -> all variants (canonical first)
	synonyms map[string][]string

	// variant -> canonical
	reverseIndex map[string]string
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{
		synonyms:     make(map[string][]string),
		reverseIndex: make(map[string]string),
	}
}

// LoadFromYAML loads synonym groups from a YAML file.
//
// Expected format:
//
//	synonyms:
//	  - canonical: teşekkür
//	    variants: [teşekkürler, sağol, sağolun]
//	  - canonical: listele
//	    variants: [listeler misin, sırala]
func LoadFromYAML(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config struct {
		Synonyms []struct {
			Canonical string   `yaml:"canonical"`
			Variants  []string `yaml:"variants"`
		} `yaml:"synonyms"`
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	lex := New()
	for _, entry := range config.Synonyms {
		if entry.Canonical == "" {
			continue
		}
		lex.AddSynonymGroup(entry.Canonical, entry.Variants)
	}
	return lex, nil
}

// AddSynonymGroup adds a synonym group. The canonical form is always the first
// entry of the group. Re-adding a canonical replaces its previous variants.
func (l *Lexicon) AddSynonymGroup(canonical string, variants []string) {
	canonical = turkish.Lower(canonical)

	if old, exists := l.synonyms[canonical]; exists {
		for _, v := range old {
			delete(l.reverseIndex, v)
		}
	}

	normalized := make([]string, 0, len(variants)+1)
	seen := map[string]bool{canonical: true}
	normalized = append(normalized, canonical)
	for _, v := range variants {
		v = turkish.Lower(v)
		if v == "" || seen[v] {
			continue
		}
		normalized = append(normalized, v)
		seen[v] = true
	}

	l.synonyms[canonical] = normalized
	for _, v := range normalized {
		l.reverseIndex[v] = canonical
	}
}

// Normalize returns the canonical form of a token, or the token itself.
func (l *Lexicon) Normalize(token string) string {
	if canonical, ok := l.reverseIndex[turkish.Lower(token)]; ok {
		return canonical
	}
	return token
}

// Variants returns every known form of token including the canonical one.
// Unknown tokens return a slice holding only the token.
func (l *Lexicon) Variants(token string) []string {
	token = turkish.Lower(token)
	if canonical, ok := l.reverseIndex[token]; ok {
		return l.synonyms[canonical]
	}
	return []string{token}
}

// HasSynonyms reports whether token belongs to a synonym group.
func (l *Lexicon) HasSynonyms(token string) bool {
	_, ok := l.reverseIndex[turkish.Lower(token)]
	return ok
}

// Stats returns statistics about the lexicon contents.
func (l *Lexicon) Stats() Stats {
	total := 0
	for _, variants := range l.synonyms {
		total += len(variants)
	}
	return Stats{SynonymGroups: len(l.synonyms), TotalVariants: total}
}

// Stats holds statistics about lexicon contents.
type Stats struct {
	SynonymGroups int
	TotalVariants int
}
