package entity

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/turkish"
)

// relativeShifts are year/month/day shifts keyed by phrase, longer phrases
// first so that "yarından sonra" wins over "yarın".
var relativeShifts = []struct {
	phrase              string
	years, months, days int
}{
	{"yarından sonra", 0, 0, 2},
	{"önümüzdeki hafta", 0, 0, 7},
	{"önümüzdeki ay", 0, 1, 0},
	{"önümüzdeki yıl", 1, 0, 0},
	{"gelecek hafta", 0, 0, 7},
	{"gelecek ay", 0, 1, 0},
	{"gelecek yıl", 1, 0, 0},
	{"geçen hafta", 0, 0, -7},
	{"geçen ay", 0, -1, 0},
	{"geçen yıl", -1, 0, 0},
	{"evvelsi gün", 0, 0, -2},
	{"dünden önce", 0, 0, -2},
	{"öbür gün", 0, 0, 2},
	{"bu hafta", 0, 0, 0},
	{"bu ay", 0, 0, 0},
	{"haftaya", 0, 0, 7},
	{"bugün", 0, 0, 0},
	{"yarın", 0, 0, 1},
	{"dün", 0, 0, -1},
}

var weekdays = []struct {
	name string
	day  time.Weekday
}{
	{"pazartesi", time.Monday},
	{"salı", time.Tuesday},
	{"çarşamba", time.Wednesday},
	{"perşembe", time.Thursday},
	{"cumartesi", time.Saturday},
	{"cuma", time.Friday},
	{"pazar", time.Sunday},
}

var months = map[string]time.Month{
	"ocak": time.January, "şubat": time.February, "mart": time.March,
	"nisan": time.April, "mayıs": time.May, "haziran": time.June,
	"temmuz": time.July, "ağustos": time.August, "eylül": time.September,
	"ekim": time.October, "kasım": time.November, "aralık": time.December,
}

var (
	countShiftRe = regexp.MustCompile(`^(\d+|[a-zçğıöşü]+)\s+(gün|hafta|ay|yıl)\s+(sonra|önce)`)
	numericRe    = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{4})$`)
	monthNameRe  = regexp.MustCompile(`^(\d{1,2})\s+(ocak|şubat|mart|nisan|mayıs|haziran|temmuz|ağustos|eylül|ekim|kasım|aralık)\S*(?:\s+(\d{4}))?`)
	clockRe      = regexp.MustCompile(`^(?:saat\s*)?(\d{1,2})(?:[:.](\d{2}))?`)
)

// midnight returns the start of now's day in now's location.
func midnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// ParseRelativeDate resolves a Turkish relative date expression against now
// and returns midnight of the resulting day. Anything it cannot read
// resolves to today.
func ParseRelativeDate(expr string, now time.Time) time.Time {
	d, _ := parseRelative(turkish.Lower(strings.TrimSpace(expr)), now)
	return d
}

// parseRelative reports the resolved day and the kind of expression used.
func parseRelative(expr string, now time.Time) (time.Time, DateKind) {
	today := midnight(now)

	for _, rs := range relativeShifts {
		if strings.HasPrefix(expr, rs.phrase) {
			return today.AddDate(rs.years, rs.months, rs.days), DateRelative
		}
	}

	if m := countShiftRe.FindStringSubmatch(expr); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			v, ok := ParseNumberWords(m[1])
			if !ok {
				return today, DateRelative
			}
			n = int(v)
		}
		if m[3] == "önce" {
			n = -n
		}
		switch m[2] {
		case "gün":
			return today.AddDate(0, 0, n), DateRelative
		case "hafta":
			return today.AddDate(0, 0, 7*n), DateRelative
		case "ay":
			return today.AddDate(0, n, 0), DateRelative
		case "yıl":
			return today.AddDate(n, 0, 0), DateRelative
		}
	}

	rest := expr
	nextWeek := false
	for _, prefix := range []string{"gelecek ", "önümüzdeki ", "bu "} {
		if strings.HasPrefix(rest, prefix) {
			nextWeek = prefix != "bu "
			rest = rest[len(prefix):]
			break
		}
	}
	for _, wd := range weekdays {
		if strings.HasPrefix(rest, wd.name) {
			ahead := (int(wd.day) - int(today.Weekday()) + 7) % 7
			if ahead == 0 && nextWeek {
				ahead = 7
			}
			return today.AddDate(0, 0, ahead), DateWeekday
		}
	}

	return today, DateRelative
}

// resolveDate turns a matched date expression into a DateValue.
// ok is false for clock times that are out of range.
func resolveDate(text string, now time.Time) (DateValue, bool) {
	expr := turkish.Lower(strings.TrimSpace(text))
	today := midnight(now)
	out := DateValue{Text: text}

	if m := numericRe.FindStringSubmatch(expr); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		out.Kind = DateAbsolute
		out.Date = validDate(year, time.Month(month), day, now.Location(), today)
		return out, true
	}

	if m := monthNameRe.FindStringSubmatch(expr); m != nil {
		day, _ := strconv.Atoi(m[1])
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		out.Kind = DateAbsolute
		out.Date = validDate(year, months[m[2]], day, now.Location(), today)
		return out, true
	}

	if strings.HasPrefix(expr, "saat") || strings.Contains(expr, ":") {
		m := clockRe.FindStringSubmatch(expr)
		if m == nil {
			return out, false
		}
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour > 23 || minute > 59 {
			return out, false
		}
		out.Kind = DateTime
		out.HasTime = true
		out.Date = today.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
		return out, true
	}

	out.Date, out.Kind = parseRelative(expr, now)
	return out, true
}

// validDate builds a date, falling back to today when the parts do not form
// a real calendar day (e.g. 31.02.2025).
func validDate(year int, month time.Month, day int, loc *time.Location, today time.Time) time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return today
	}
	return t
}
