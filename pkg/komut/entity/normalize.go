package entity

import (
	"regexp"
	"strings"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/turkish"
)

// currencies maps currency spellings to ISO codes. Longer spellings come
// first so "türk lirası" is not read as "lira".
var currencies = []struct {
	spelling string
	code     string
}{
	{"türk lirası", "TRY"},
	{"lira", "TRY"},
	{"try", "TRY"},
	{"tl", "TRY"},
	{"₺", "TRY"},
	{"dolar", "USD"},
	{"usd", "USD"},
	{"$", "USD"},
	{"avro", "EUR"},
	{"euro", "EUR"},
	{"eur", "EUR"},
	{"€", "EUR"},
	{"sterlin", "GBP"},
	{"gbp", "GBP"},
	{"£", "GBP"},
}

var (
	digitsRe        = regexp.MustCompile(`\d+(?:[.,]\d+)*`)
	addressNumberRe = regexp.MustCompile(`(?i)(?:no|numara)\s*[:.]?\s*(\d+[a-zA-Z]?(?:\s*/\s*\d+)?)`)
	spaceRe         = regexp.MustCompile(`\s+`)
)

// commonWords are capitalized words that open or close a sentence or name an
// address part, never a person. Stored lowercased.
var commonWords = map[string]bool{
	"yeni": true, "ekle": true, "sil": true, "lütfen": true, "tüm": true, "bütün": true,
	"bu": true, "şu": true, "o": true, "acil": true, "rapor": true, "merhaba": true,
	"selam": true, "kayıt": true, "bağış": true, "hak": true, "sahibi": true,
	"başvuru": true, "talep": true, "göster": true, "listele": true, "güncelle": true,
	"onayla": true, "reddet": true, "yardım": true, "nasıl": true, "ne": true,
	"bugün": true, "yarın": true, "dün": true, "aylık": true, "haftalık": true,
	"yıllık": true, "günlük": true, "türk": true, "lirası": true, "lira": true,
	"mahallesi": true, "caddesi": true, "sokak": true, "sokağı": true, "bulvarı": true,
	"adres": true, "telefon": true, "pazartesi": true, "salı": true, "çarşamba": true,
	"perşembe": true, "cuma": true, "cumartesi": true, "pazar": true, "ocak": true,
	"şubat": true, "mart": true, "nisan": true, "mayıs": true, "haziran": true,
	"temmuz": true, "ağustos": true, "eylül": true, "ekim": true, "kasım": true,
	"aralık": true,
}

var honorifics = map[string]bool{
	"bey": true, "hanım": true, "beyefendi": true, "hanımefendi": true,
}

func normalizeMoney(text string) (MoneyValue, bool) {
	lowered := turkish.Lower(text)

	code := ""
	rest := lowered
	for _, c := range currencies {
		if i := strings.Index(lowered, c.spelling); i >= 0 {
			code = c.code
			rest = lowered[:i] + " " + lowered[i+len(c.spelling):]
			break
		}
	}
	if code == "" {
		return MoneyValue{}, false
	}

	var amount float64
	var hasDigits bool
	if d := digitsRe.FindString(rest); d != "" {
		amount, hasDigits = parseDecimal(d)
		rest = strings.Replace(rest, d, " ", 1)
	}
	words, hasWords := ParseNumberWords(rest)

	switch {
	case hasDigits && hasWords:
		amount *= words
	case hasWords:
		amount = words
	case !hasDigits:
		return MoneyValue{}, false
	}
	return MoneyValue{Text: text, Amount: amount, Currency: code}, true
}

func normalizePerson(text string) (PersonValue, bool) {
	words := strings.Fields(text)
	title := ""

	if n := len(words); n > 0 && honorifics[turkish.Lower(words[n-1])] {
		title = turkish.Lower(words[n-1])
		words = words[:n-1]
	}
	if len(words) > 0 && turkish.Lower(words[0]) == "sayın" {
		if title == "" {
			title = "sayın"
		}
		words = words[1:]
	}
	for len(words) > 0 && commonWords[turkish.Lower(words[0])] {
		words = words[1:]
	}
	for len(words) > 0 && commonWords[turkish.Lower(words[len(words)-1])] {
		words = words[:len(words)-1]
	}
	for _, w := range words {
		if commonWords[turkish.Lower(w)] {
			return PersonValue{}, false
		}
	}

	switch {
	case len(words) == 0:
		return PersonValue{}, false
	case len(words) == 1 && title == "":
		return PersonValue{}, false
	case len(words) == 1:
		return PersonValue{Text: text, FirstName: words[0], FullName: words[0], Title: title}, true
	}

	last := len(words) - 1
	return PersonValue{
		Text:      text,
		FirstName: strings.Join(words[:last], " "),
		LastName:  words[last],
		FullName:  strings.Join(words, " "),
		Title:     title,
	}, true
}

func normalizePhone(text string) (PhoneValue, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
	if len(digits) < 10 {
		return PhoneValue{}, false
	}
	return PhoneValue{Text: text, Number: digits}, true
}

func normalizeEmail(text string) EmailValue {
	return EmailValue{Text: text, Address: strings.ToLower(text)}
}

func normalizeAddress(text string) (AddressValue, bool) {
	full := strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
	for {
		first, rest, found := strings.Cut(full, " ")
		if !found || !commonWords[turkish.Lower(first)] || isAddressKind(first) {
			break
		}
		full = rest
	}
	full = strings.TrimRight(full, " .,;:")
	if full == "" {
		return AddressValue{}, false
	}

	out := AddressValue{Text: text, Full: full}
	if m := addressNumberRe.FindStringSubmatch(full); m != nil {
		out.Number = spaceRe.ReplaceAllString(m[1], "")
	}
	return out, true
}

func isAddressKind(word string) bool {
	switch turkish.Lower(word) {
	case "mahallesi", "caddesi", "sokak", "sokağı", "bulvarı":
		return true
	}
	return false
}

func normalizePriority(text string) PriorityValue {
	lowered := turkish.Lower(text)
	level := High
	switch {
	case strings.Contains(lowered, "düşük"), strings.Contains(lowered, "acele"), strings.Contains(lowered, "önemsiz"):
		level = Low
	case strings.Contains(lowered, "orta"), strings.Contains(lowered, "normal"):
		level = Medium
	}
	return PriorityValue{Text: text, Level: level}
}
