package base

import (
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/turkish"
)

// EntityType names a span type found by the base layer.
type EntityType string

const (
	Email  EntityType = "EMAIL"
	Phone  EntityType = "PHONE"
	Money  EntityType = "MONEY"
	Date   EntityType = "DATE"
	Number EntityType = "NUMBER"
)

// Entity is a typed span of the original text. Start and End are rune
// offsets, End exclusive.
type Entity struct {
	Type       EntityType `json:"type"`
	Value      string     `json:"value"`
	Start      int        `json:"start"`
	End        int        `json:"end"`
	Confidence float64    `json:"confidence"`
}

type spanRule struct {
	typ        EntityType
	re         *regexp.Regexp
	confidence float64
	fold       bool
}

// spanRules run in order; a later match that overlaps an accepted span is
// dropped, so a number inside a phone or amount is not reported twice.
var spanRules = []spanRule{
	{Email, regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`), 0.95, false},
	{Phone, regexp.MustCompile(`(?:\+90[\s-]?|0)?\(?[2-5]\d{2}\)?[\s.-]?\d{3}[\s.-]?\d{2}[\s.-]?\d{2}`), 0.9, false},
	{Money, regexp.MustCompile(`\d+(?:[.,]\d+)*\s*(?:tl|lira|₺|dolar|usd|\$|euro|avro|eur|€)`), 0.85, true},
	{Date, regexp.MustCompile(`\d{1,2}[./-]\d{1,2}[./-]\d{2,4}|bugün|yarın|dün`), 0.8, true},
	{Number, regexp.MustCompile(`\d+(?:[.,]\d+)*`), 0.6, false},
}

type span struct{ start, end int }

// ExtractEntities finds base entity spans in text, ordered by position.
func ExtractEntities(text string) []Entity {
	entities := make([]Entity, 0, 4)
	if text == "" {
		return entities
	}

	folded := turkish.Fold(text)
	var taken []span
	for _, r := range spanRules {
		src := text
		if r.fold {
			src = folded.Text
		}
		for _, m := range r.re.FindAllStringIndex(src, -1) {
			start, end := m[0], m[1]
			if r.fold {
				start, end = folded.Original(start), folded.Original(end)
			}
			if overlaps(taken, start, end) || !isolated(text, start, end) {
				continue
			}
			taken = append(taken, span{start, end})
			entities = append(entities, Entity{
				Type:       r.typ,
				Value:      text[start:end],
				Start:      utf8.RuneCountInString(text[:start]),
				End:        utf8.RuneCountInString(text[:end]),
				Confidence: r.confidence,
			})
		}
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Start < entities[j].Start
	})
	return entities
}

func overlaps(taken []span, start, end int) bool {
	for _, s := range taken {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}

// isolated reports whether the span is not glued to surrounding letters.
func isolated(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if turkish.IsWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if turkish.IsWordRune(r) {
			return false
		}
	}
	return true
}
