package base

import (
	"math"
	"sort"
	"strings"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/intent"
)

// keywordStems drive the base intent guess. A token hits a stem when it
// starts with it, so inflected forms ("ekleyin", "silinsin") count.
var keywordStems = []struct {
	label intent.Label
	stems []string
}{
	{intent.Create, []string{"ekle", "oluştur", "yeni", "kaydet", "aç"}},
	{intent.Read, []string{"göster", "listele", "bul", "ara", "getir"}},
	{intent.Update, []string{"güncelle", "değiştir", "düzenle"}},
	{intent.Delete, []string{"sil", "kaldır"}},
	{intent.Approve, []string{"onay"}},
	{intent.Reject, []string{"reddet", "red"}},
	{intent.Report, []string{"rapor", "istatistik", "özet"}},
	{intent.Navigate, []string{"git", "sayfa"}},
	{intent.Help, []string{"yardım"}},
}

// ClassifyIntent guesses an intent from token stems. Confidence grows with
// the number of hits: min(0.4 + 0.2*hits, 0.9).
func ClassifyIntent(tokens []string) intent.Classification {
	type hit struct {
		label intent.Label
		n     int
	}
	hits := make([]hit, 0, len(keywordStems))
	for _, ks := range keywordStems {
		n := 0
		for _, tok := range tokens {
			for _, stem := range ks.stems {
				if strings.HasPrefix(tok, stem) {
					n++
					break
				}
			}
		}
		if n > 0 {
			hits = append(hits, hit{ks.label, n})
		}
	}
	if len(hits) == 0 {
		return intent.UnknownClassification()
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].n > hits[j].n })

	alts := make([]intent.Alternative, 0, len(hits)-1)
	for _, h := range hits[1:] {
		alts = append(alts, intent.Alternative{Intent: h.label, Confidence: hitConfidence(h.n)})
	}
	return intent.Classification{
		Primary:      hits[0].label,
		Confidence:   hitConfidence(hits[0].n),
		Alternatives: alts,
	}
}

func hitConfidence(n int) float64 {
	return math.Min(0.4+0.2*float64(n), 0.9)
}
