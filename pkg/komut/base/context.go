package base

import (
	"strings"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/turkish"
)

// TimeReference is the tense a command refers to.
type TimeReference string

const (
	Past    TimeReference = "past"
	Present TimeReference = "present"
	Future  TimeReference = "future"
)

// Context holds surface flags of a command.
type Context struct {
	IsQuestion    bool          `json:"isQuestion"`
	IsNegated     bool          `json:"isNegated"`
	HasPoliteness bool          `json:"hasPoliteness"`
	TimeReference TimeReference `json:"timeReference"`
}

var (
	questionWords = set(
		"mı", "mi", "mu", "mü", "mısın", "misin", "musun", "müsün",
		"mısınız", "misiniz", "musunuz", "müsünüz", "mıdır", "midir", "mudur", "müdür",
		"nasıl", "ne", "nedir", "nerede", "nereye", "nereden", "kim", "kime", "kimin",
		"hangi", "kaç", "neden", "niçin", "niye",
	)
	negationWords = set("değil", "yok", "hayır", "asla")
	negationParts = []string{"mıyor", "miyor", "muyor", "müyor", "madı", "medi", "mayacak", "meyecek", "mayın", "meyin"}
	politeStems   = []string{"lütfen", "rica", "teşekkür", "sağol", "zahmet", "mısınız", "misiniz", "musunuz", "müsünüz"}
	futureStems   = []string{"yarın", "gelecek", "önümüzdeki", "sonra", "haftaya", "ileride"}
	pastWords     = set("dün", "dünkü", "geçen", "geçenlerde", "önce", "önceki", "evvelsi", "geçmiş")
)

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// ExtractContext reads question, negation, politeness and tense markers
// from the full lowercased word sequence, stopwords included.
func ExtractContext(text string) Context {
	words := Words(text)
	ctx := Context{
		IsQuestion:    strings.Contains(text, "?") || anyWord(words, questionWords),
		IsNegated:     anyWord(words, negationWords) || anyContains(words, negationParts),
		HasPoliteness: anyPrefix(words, politeStems),
		TimeReference: Present,
	}
	switch {
	case anyPrefix(words, futureStems):
		ctx.TimeReference = Future
	case anyWord(words, pastWords):
		ctx.TimeReference = Past
	}
	return ctx
}

// Words lowercases text with Turkish rules and splits it on every rune that
// is not part of a word. Nothing is filtered.
func Words(text string) []string {
	return strings.FieldsFunc(turkish.Lower(text), func(r rune) bool {
		return !turkish.IsWordRune(r)
	})
}

func anyWord(words []string, set map[string]bool) bool {
	for _, w := range words {
		if set[w] {
			return true
		}
	}
	return false
}

func anyPrefix(words, prefixes []string) bool {
	for _, w := range words {
		for _, p := range prefixes {
			if strings.HasPrefix(w, p) {
				return true
			}
		}
	}
	return false
}

func anyContains(words, parts []string) bool {
	for _, w := range words {
		for _, p := range parts {
			if strings.Contains(w, p) {
				return true
			}
		}
	}
	return false
}
