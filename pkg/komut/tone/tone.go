// Package tone classifies how a command is phrased: how urgent, how
// emotional, how formal and how complex it is.
package tone

import (
	"strings"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/turkish"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

type Emotion string

const (
	EmotionPositive Emotion = "positive"
	EmotionNegative Emotion = "negative"
	EmotionNeutral  Emotion = "neutral"
)

type Formality string

const (
	Formal           Formality = "formal"
	Informal         Formality = "informal"
	FormalityNeutral Formality = "neutral"
)

type Complexity string

const (
	Simple           Complexity = "simple"
	ComplexityMedium Complexity = "medium"
	Complex          Complexity = "complex"
)

// Analysis is the tone of one command.
type Analysis struct {
	Urgency    Urgency    `json:"urgency"`
	Emotion    Emotion    `json:"emotion"`
	Formality  Formality  `json:"formality"`
	Complexity Complexity `json:"complexity"`
}

// Single-word cues match as word prefixes so suffixed forms count; cues
// with a space match as substrings of the lowercased text.
var (
	highUrgency   = []string{"acil", "hemen", "derhal", "ivedi", "bir an önce", "çok önemli", "yüksek öncelik", "şimdi"}
	mediumUrgency = []string{"önemli", "öncelik", "bugün", "yakında", "en kısa sürede", "bu hafta", "gerekli"}

	positiveCues = []string{"teşekkür", "sağol", "harika", "güzel", "mükemmel", "memnun", "sevin", "süper", "iyi", "başarılı", "tebrik"}
	negativeCues = []string{"sorun", "kötü", "berbat", "şikayet", "hata", "maalesef", "üzgün", "kızgın", "problem", "rezalet", "yanlış"}

	formalCues   = []string{"sayın", "efendim", "rica", "saygı", "lütfen", "arz ederim", "beyefendi", "hanımefendi", "misiniz", "mısınız", "musunuz", "müsünüz"}
	informalCues = []string{"selam", "naber", "kanka", "abi", "hadi", "hacı", "bi bak", "şunu bi"}
)

// Analyze runs the four classifications independently.
func Analyze(text string) Analysis {
	lowered := turkish.Lower(text)
	words := strings.FieldsFunc(lowered, func(r rune) bool {
		return !turkish.IsWordRune(r)
	})

	return Analysis{
		Urgency:    urgency(lowered, words),
		Emotion:    emotion(lowered, words),
		Formality:  formality(lowered, words),
		Complexity: complexity(text),
	}
}

func urgency(lowered string, words []string) Urgency {
	switch {
	case count(lowered, words, highUrgency) > 0:
		return UrgencyHigh
	case count(lowered, words, mediumUrgency) > 0:
		return UrgencyMedium
	}
	return UrgencyLow
}

func emotion(lowered string, words []string) Emotion {
	pos := count(lowered, words, positiveCues)
	neg := count(lowered, words, negativeCues)
	switch {
	case pos > neg:
		return EmotionPositive
	case neg > pos:
		return EmotionNegative
	}
	return EmotionNeutral
}

func formality(lowered string, words []string) Formality {
	switch {
	case count(lowered, words, formalCues) > 0:
		return Formal
	case count(lowered, words, informalCues) > 0:
		return Informal
	}
	return FormalityNeutral
}

// complexity grades by word and sentence counts. Sentences are the
// non-blank pieces between '.', '!' and '?'.
func complexity(text string) Complexity {
	wordCount := len(strings.Fields(text))
	sentences := 0
	for _, s := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}

	switch {
	case wordCount > 20 || sentences > 3:
		return Complex
	case wordCount > 10 || sentences > 1:
		return ComplexityMedium
	}
	return Simple
}

// count returns how many cue occurrences the text holds.
func count(lowered string, words []string, cues []string) int {
	n := 0
	for _, cue := range cues {
		if strings.Contains(cue, " ") {
			n += strings.Count(lowered, cue)
			continue
		}
		for _, w := range words {
			if strings.HasPrefix(w, cue) {
				n++
			}
		}
	}
	return n
}
