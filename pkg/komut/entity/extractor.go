package entity

import (
	"regexp"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/turkish"
)

// rule is one row of the extraction table. Folded rules match against the
// Turkish-lowercased text; the span is mapped back so the verbatim slice of
// the original text is what gets normalized.
type rule struct {
	typ        Type
	re         *regexp.Regexp
	fold       bool
	group      int  // submatch holding the entity span, 0 for the whole match
	boundStart bool // reject when glued to a preceding letter/digit
	boundEnd   bool // reject when glued to a following letter/digit
}

const (
	decimalNum   = `\d{1,3}(?:[.,]\d{3})+(?:[.,]\d{1,2})?|\d+(?:[.,]\d{1,2})?`
	currencyWord = `türk lirası|tl|₺|lira|try|dolar|usd|\$|avro|euro|eur|€|sterlin|gbp|£`
	numberWord   = `milyar|milyon|yetmiş|altmış|seksen|doksan|dokuz|sekiz|yirmi|sıfır|otuz|kırk|elli|yedi|altı|dört|beş|iki|bir|yüz|bin|üç|on`
	upperWord    = `[A-ZÇĞİÖŞÜ][a-zçğıöşü]+`
	addressWord  = `[A-ZÇĞİÖŞÜ0-9][\p{L}0-9]*\.?\s+`
	streetKind   = `(?i:caddesi|cad\.|sokağı|sokak|sk\.|bulvarı|blv\.)`
)

var defaultRules = []rule{
	// money
	{typ: Money, fold: true, boundStart: true,
		re: regexp.MustCompile(`(?:` + decimalNum + `)\s*(?:` + currencyWord + `)`)},
	{typ: Money, fold: true, boundEnd: true,
		re: regexp.MustCompile(`[₺$€£]\s*(?:` + decimalNum + `)`)},
	{typ: Money, fold: true, boundStart: true,
		re: regexp.MustCompile(`(?:\d+(?:[.,]\d+)?\s*)?(?:(?:` + numberWord + `)\s*)+(?:türk lirası|tl|lira|dolar|avro|euro|sterlin)`)},

	// dates and times
	{typ: Date, fold: true, boundStart: true, boundEnd: true,
		re: regexp.MustCompile(`\d{1,2}[./-]\d{1,2}[./-]\d{4}`)},
	{typ: Date, fold: true, boundStart: true, boundEnd: true,
		re: regexp.MustCompile(`\d{1,2}\s+(?:ocak|şubat|mart|nisan|mayıs|haziran|temmuz|ağustos|eylül|ekim|kasım|aralık)'?[a-zçğıöşü]*(?:\s+\d{4})?`)},
	{typ: Date, fold: true, boundStart: true, boundEnd: true,
		re: regexp.MustCompile(`(?:\d+|bir|iki|üç|dört|beş|altı|yedi|on)\s+(?:gün|hafta|ay|yıl)\s+(?:sonra|önce)`)},
	{typ: Date, fold: true, boundStart: true, boundEnd: true,
		re: regexp.MustCompile(`(?:yarından sonra|önümüzdeki (?:hafta|ay|yıl)|gelecek (?:hafta|ay|yıl)|geçen (?:hafta|ay|yıl)|evvelsi gün|dünden önce|öbür gün|bu hafta|bu ay|haftaya|bugün|yarın|dün)(?:'?(?:kü|ki|den|dan|de|da|ne|na|e|a))?`)},
	{typ: Date, fold: true, boundStart: true, boundEnd: true,
		re: regexp.MustCompile(`(?:(?:gelecek|önümüzdeki|bu)\s+)?(?:pazartesi|salı|çarşamba|perşembe|cumartesi|cuma|pazar)(?:'?(?:ya|ye|yı|yi|dan|den|nda|nde|da|de|ta|te|a|e|ı|i|u|ü))?(?:\s+günü)?`)},
	{typ: Date, fold: true, boundStart: true, boundEnd: true,
		re: regexp.MustCompile(`(?:saat\s*)?\d{1,2}:\d{2}|saat\s*\d{1,2}(?:\.\d{2})?`)},

	// people
	{typ: Person, boundStart: true, boundEnd: true,
		re: regexp.MustCompile(upperWord + `(?:\s+` + upperWord + `){0,3}(?:\s+(?:[Bb]eyefendi|[Hh]anımefendi|[Bb]ey|[Hh]anım))?`)},

	// contact details
	{typ: Phone, boundStart: true, boundEnd: true,
		re: regexp.MustCompile(`(?:\+90[\s-]?|0)?\(?[2-5]\d{2}\)?[\s.-]?\d{3}[\s.-]?\d{2}[\s.-]?\d{2}`)},
	{typ: Email, boundStart: true,
		re: regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)},

	// addresses
	{typ: Address, boundStart: true,
		re: regexp.MustCompile(`(?:` + addressWord + `){1,3}(?i:mahallesi|mah\.|caddesi|cad\.|sokağı|sokak|sk\.|bulvarı|blv\.)` +
			`(?:\s+(?:` + addressWord + `){1,3}` + streetKind + `)?` +
			`(?:\s*(?i:no|numara)\s*[:.]?\s*\d+[a-zA-Z]?(?:\s*/\s*\d+)?)?`)},
	{typ: Address, group: 1,
		re: regexp.MustCompile(`(?i:adres(?:i|im)?)\s*:\s*([^\n;]+)`)},

	// priority
	{typ: Priority, fold: true, boundStart: true, boundEnd: true,
		re: regexp.MustCompile(`çok acil|acilen|acil|ivedilikle|ivedi|derhal|hemen|yüksek öncelikli|yüksek öncelik`)},
	{typ: Priority, fold: true, boundStart: true, boundEnd: true,
		re: regexp.MustCompile(`(?:orta|normal) öncelikli|(?:orta|normal) öncelik`)},
	{typ: Priority, fold: true, boundStart: true, boundEnd: true,
		re: regexp.MustCompile(`düşük öncelikli|düşük öncelik|acelesi yok|acele değil|önemsiz`)},
}

// Extractor applies the typed extraction table. It holds no per-call state
// and is safe for concurrent use.
type Extractor struct {
	rules []rule
}

// NewExtractor returns an extractor over the built-in table.
func NewExtractor() *Extractor {
	return &Extractor{rules: defaultRules}
}

var defaultExtractor = NewExtractor()

// Extract runs the default extractor, resolving relative dates against the
// current time.
func Extract(text string) Set {
	return defaultExtractor.Extract(text, time.Now())
}

// Extract finds every typed entity in text. Relative dates resolve against
// now. Matches of different types may overlap; repeated matches of one type
// are kept as they are.
func (e *Extractor) Extract(text string, now time.Time) Set {
	set := NewSet()
	if text == "" {
		return set
	}

	folded := turkish.Fold(text)
	for _, r := range e.rules {
		src := text
		if r.fold {
			src = folded.Text
		}
		for _, m := range r.re.FindAllStringSubmatchIndex(src, -1) {
			start, end := m[2*r.group], m[2*r.group+1]
			if start < 0 || start == end {
				continue
			}
			if r.fold {
				start, end = folded.Original(start), folded.Original(end)
			}
			if r.boundStart && !boundaryBefore(text, start) {
				continue
			}
			if r.boundEnd && !boundaryAfter(text, end) {
				continue
			}
			set.add(r.typ, text[start:end], now)
		}
	}
	return set
}

// add normalizes a matched span by its type tag and appends it.
func (s *Set) add(t Type, text string, now time.Time) {
	switch t {
	case Money:
		if v, ok := normalizeMoney(text); ok {
			s.Money = append(s.Money, v)
		}
	case Date:
		if v, ok := resolveDate(text, now); ok {
			s.Dates = append(s.Dates, v)
		}
	case Person:
		if v, ok := normalizePerson(text); ok {
			s.Persons = append(s.Persons, v)
		}
	case Phone:
		if v, ok := normalizePhone(text); ok {
			s.Phones = append(s.Phones, v)
		}
	case Email:
		s.Emails = append(s.Emails, normalizeEmail(text))
	case Address:
		if v, ok := normalizeAddress(text); ok {
			s.Addresses = append(s.Addresses, v)
		}
	case Priority:
		s.Priorities = append(s.Priorities, normalizePriority(text))
	}
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
