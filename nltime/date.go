package nltime

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// dateCandidate is a calendar date with no time component.
type dateCandidate struct {
	year  int
	month time.Month
	day   int
}

var (
	dayOfMonthRE = regexp.MustCompile(`(\d{1,2})[号日]`)
	// The 周 in a week-offset prefix doubles as the weekday marker
	// (下周三, not 下周周三), so prefixed and bare forms are separate
	// branches.
	weekdayRE    = regexp.MustCompile(`(下下周|下周|这周|本周|上上周|上周)([一二三四五六七日天])|((?:周|星期|礼拜)[一二三四五六七日天])`)
	monthDayCNRE = regexp.MustCompile(`([一二三四五六七八九十\d]+)月([一二三四五六七八九十廿\d]+)[日号]`)
	monthDayNuRE = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})`)
)

// extractDate identifies a calendar date in the raw (pre-normalization)
// text. Tiers are tried in fixed precedence order and the first match wins:
// day-of-month shorthand, weekday with week offset, explicit month+day,
// named keywords.
func extractDate(text string, ref time.Time) (dateCandidate, bool) {
	if d, ok := extractDayOfMonth(text, ref); ok {
		return d, true
	}
	if d, ok := extractWeekday(text, ref); ok {
		return d, true
	}
	if d, ok := extractMonthDay(text, ref); ok {
		return d, true
	}
	return extractDateKeyword(text, ref)
}

// extractDayOfMonth handles bare N号/N日: the Nth day of the nearest
// non-past month. A day that has already passed, or that does not exist in
// the candidate month (2月30号), skips forward whole months instead of
// clamping.
func extractDayOfMonth(text string, ref time.Time) (dateCandidate, bool) {
	for _, idx := range dayOfMonthRE.FindAllStringSubmatchIndex(text, -1) {
		start, end := idx[2], idx[3]
		// 3月15日 belongs to the month+day tier; a digit prefix means the
		// match started inside a longer number.
		if prev, _ := utf8.DecodeLastRuneInString(text[:start]); prev == '月' || unicode.IsDigit(prev) {
			continue
		}
		day, _ := strconv.Atoi(text[start:end])
		if day < 1 || day > 31 {
			continue
		}
		year, month := ref.Year(), ref.Month()
		passed := day < ref.Day()
		for i := 0; i < 12; i++ {
			if (i > 0 || !passed) && validDate(year, month, day) {
				return dateCandidate{year, month, day}, true
			}
			month++
			if month > time.December {
				month = time.January
				year++
			}
		}
	}
	return dateCandidate{}, false
}

// extractWeekday handles weekday names with an optional week-offset prefix.
// Prefixed forms are anchored to the Monday of the reference week; the bare
// and 这周/本周 forms bind to the next occurrence when the named weekday is
// today or already past this week.
func extractWeekday(text string, ref time.Time) (dateCandidate, bool) {
	m := weekdayRE.FindStringSubmatch(text)
	if m == nil {
		return dateCandidate{}, false
	}
	token := m[3]
	if m[1] != "" {
		token = "周" + m[2]
	}
	target, ok := weekdayAliases[token]
	if !ok {
		return dateCandidate{}, false
	}
	current := mondayIndex(ref.Weekday())
	var t time.Time
	if weeks := weekPrefixes[m[1]]; weeks == 0 {
		diff := target - current
		if diff <= 0 {
			diff += 7
		}
		t = ref.AddDate(0, 0, diff)
	} else {
		monday := ref.AddDate(0, 0, -current)
		t = monday.AddDate(0, 0, weeks*7+target)
	}
	return dateCandidate{t.Year(), t.Month(), t.Day()}, true
}

// extractMonthDay handles explicit month+day forms: 3月15日, 三月十五号,
// and the numeric shorthands 3/15 and 3-15. The date resolves into the
// reference year and rolls to next year once it has strictly elapsed.
func extractMonthDay(text string, ref time.Time) (dateCandidate, bool) {
	if m := monthDayCNRE.FindStringSubmatch(text); m != nil {
		month, errM := strconv.Atoi(normalizeNumerals(m[1]))
		day, errD := strconv.Atoi(normalizeNumerals(m[2]))
		if errM == nil && errD == nil {
			if d, ok := resolveMonthDay(month, day, ref); ok {
				return d, true
			}
		}
	}
	if m := monthDayNuRE.FindStringSubmatch(text); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if d, ok := resolveMonthDay(month, day, ref); ok {
			return d, true
		}
	}
	return dateCandidate{}, false
}

func resolveMonthDay(month, day int, ref time.Time) (dateCandidate, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return dateCandidate{}, false
	}
	year := ref.Year()
	if !validDate(year, time.Month(month), day) {
		return dateCandidate{}, false
	}
	elapsed := month < int(ref.Month()) || (month == int(ref.Month()) && day < ref.Day())
	if elapsed {
		year++
		if !validDate(year, time.Month(month), day) {
			// 2月29日 may not exist next year; not a structured match.
			return dateCandidate{}, false
		}
	}
	return dateCandidate{year, time.Month(month), day}, true
}

// extractDateKeyword handles named relative days and month/year anchors.
func extractDateKeyword(text string, ref time.Time) (dateCandidate, bool) {
	for _, kw := range dateKeywords {
		if !strings.Contains(text, kw.word) {
			continue
		}
		switch kw.kind {
		case relDay:
			t := ref.AddDate(0, 0, kw.off)
			return dateCandidate{t.Year(), t.Month(), t.Day()}, true
		case monthAnchor:
			t := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, kw.off, 0)
			return dateCandidate{t.Year(), t.Month(), 1}, true
		case yearAnchor:
			return dateCandidate{ref.Year() + kw.off, time.January, 1}, true
		}
	}
	return dateCandidate{}, false
}

// hasDateKeyword reports whether the text names a date explicitly. Used by
// the combiner to suppress the next-day rollover for bare times.
func hasDateKeyword(text string) bool {
	for _, kw := range dateKeywords {
		if strings.Contains(text, kw.word) {
			return true
		}
	}
	return false
}

// mondayIndex converts time.Weekday (Sunday = 0) to the Monday = 0 indexing
// the weekday tables use.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// validDate reports whether day exists in the given month and year.
func validDate(year int, month time.Month, day int) bool {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return t.Month() == month && t.Day() == day
}
