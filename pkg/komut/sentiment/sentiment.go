// Package sentiment scores a token sequence against fixed Turkish word lists.
package sentiment

import "math"

// Label is the polarity of a sentiment score.
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Threshold separates neutral from polar scores.
const Threshold = 0.1

// Result is the sentiment of one text.
type Result struct {
	Score      float64 `json:"score"`
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
}

var (
	positiveWords = set(
		"iyi", "güzel", "harika", "mükemmel", "süper", "teşekkür", "teşekkürler",
		"sağol", "sağolun", "başarılı", "memnun", "memnunum", "olumlu", "sevindim",
		"mutlu", "tebrikler", "şahane", "bravo", "hayırlı",
	)
	negativeWords = set(
		"kötü", "berbat", "sorun", "sorunlu", "hata", "hatalı", "problem", "yanlış",
		"şikayet", "memnuniyetsiz", "olumsuz", "maalesef", "üzgün", "başarısız",
		"rezalet", "eksik", "gecikme", "kızgın",
	)
	neutralWords = set(
		"normal", "tamam", "olur", "peki", "standart", "orta", "idare",
	)
)

// Analyze scores tokens. The score is (positive − negative) / matched,
// where matched also counts neutral words.
func Analyze(tokens []string) Result {
	var pos, neg, neu int
	for _, tok := range tokens {
		switch {
		case positiveWords[tok]:
			pos++
		case negativeWords[tok]:
			neg++
		case neutralWords[tok]:
			neu++
		}
	}

	total := pos + neg + neu
	if total == 0 {
		return Result{Score: 0, Label: Neutral, Confidence: 0.5}
	}

	score := float64(pos-neg) / float64(total)
	switch {
	case score > Threshold:
		return Result{Score: score, Label: Positive, Confidence: math.Abs(score)}
	case score < -Threshold:
		return Result{Score: score, Label: Negative, Confidence: math.Abs(score)}
	default:
		return Result{Score: score, Label: Neutral, Confidence: 0.5}
	}
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
