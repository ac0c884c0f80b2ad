package entity

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/turkish"
)

// numberWords is ordered so that longer words are tried first when scanning
// glued forms like "yüzelli".
var numberWords = []struct {
	word  string
	value float64
}{
	{"milyar", 1e9},
	{"milyon", 1e6},
	{"yetmiş", 70},
	{"altmış", 60},
	{"seksen", 80},
	{"doksan", 90},
	{"dokuz", 9},
	{"sekiz", 8},
	{"yirmi", 20},
	{"sıfır", 0},
	{"otuz", 30},
	{"kırk", 40},
	{"elli", 50},
	{"yedi", 7},
	{"altı", 6},
	{"dört", 4},
	{"beş", 5},
	{"iki", 2},
	{"bir", 1},
	{"yüz", 100},
	{"bin", 1000},
	{"üç", 3},
	{"on", 10},
}

// ParseNumberWords sums the Turkish number words found in s. Unit and scale
// words are added, not multiplied: "iki yüz" is 102 and "üç bin" is 1003.
// ok is false when s holds no number word.
func ParseNumberWords(s string) (value float64, ok bool) {
	s = turkish.Lower(s)
	for len(s) > 0 {
		matched := false
		for _, nw := range numberWords {
			if strings.HasPrefix(s, nw.word) {
				value += nw.value
				s = s[len(nw.word):]
				ok, matched = true, true
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(s)
			s = s[size:]
		}
	}
	return value, ok
}

// parseDecimal reads a number written with Turkish or English separators:
// "1.000", "1.000,50", "12,5", "1,000.50". A single separator followed by
// exactly three digits is a thousands separator.
func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	dots := strings.Count(s, ".")
	commas := strings.Count(s, ",")

	switch {
	case dots > 0 && commas > 0:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case dots+commas > 1:
		s = strings.NewReplacer(".", "", ",", "").Replace(s)
	case dots+commas == 1:
		sep := strings.IndexAny(s, ".,")
		if len(s)-sep-1 == 3 {
			s = s[:sep] + s[sep+1:]
		} else {
			s = s[:sep] + "." + s[sep+1:]
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
