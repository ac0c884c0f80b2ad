// Package turkish holds the Turkish-specific text helpers shared by the
// interpreter packages: locale-aware lowercasing and letter classes.
package turkish

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower lowercases s with Turkish casing rules (İ→i, I→ı).
// A Caser keeps internal state, so one is built per call.
func Lower(s string) string {
	return cases.Lower(language.Turkish).String(s)
}

// IsLetter reports whether r is one of the Turkish-specific letters
// (ç ğ ı ö ş ü and their capitals, including İ).
func IsLetter(r rune) bool {
	return strings.ContainsRune("çğıöşüÇĞİÖŞÜ", r)
}

// IsWordRune reports whether r survives tokenization: an ASCII word
// character or a Turkish letter.
func IsWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	}
	return IsLetter(r)
}

// Folded is a Turkish-lowercased copy of a string that remembers where every
// byte of the copy came from, so matches can be mapped back to the original.
type Folded struct {
	Text   string
	origin []int // byte offset in the original for each byte of Text, plus len(original)
}

// Fold lowercases s rune by rune with unicode.TurkishCase.
func Fold(s string) Folded {
	var b strings.Builder
	b.Grow(len(s))
	origin := make([]int, 0, len(s)+1)
	for i, r := range s {
		lr := unicode.TurkishCase.ToLower(r)
		b.WriteRune(lr)
		for j := 0; j < utf8.RuneLen(lr); j++ {
			origin = append(origin, i)
		}
	}
	origin = append(origin, len(s))
	return Folded{Text: b.String(), origin: origin}
}

// Original maps a rune-aligned byte offset in the folded text back to the
// original text. Offsets at or past the end map to len(original).
func (f Folded) Original(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(f.origin) {
		return f.origin[len(f.origin)-1]
	}
	return f.origin[offset]
}
