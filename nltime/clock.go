package nltime

import (
	"regexp"
	"strconv"
	"strings"
)

// clockCandidate is a wall-clock time of day.
type clockCandidate struct {
	hour   int
	minute int
}

// clockPatterns are tried in order against the numeral-normalized text.
// Minute-bearing forms outrank hour-only forms so 3点30 never half-matches
// as 3点.
var clockPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})点(\d{1,2})分?`),
	regexp.MustCompile(`(\d{1,2})时(\d{1,2})分?`),
	regexp.MustCompile(`(\d{1,2}):(\d{2})`),
	regexp.MustCompile(`(\d{1,2})\.(\d{2})`),
	regexp.MustCompile(`(\d{1,2})点`),
	regexp.MustCompile(`(\d{1,2})时`),
}

// extractClock identifies an hour/minute component. Explicit digits come
// from the normalized text; time-of-day disambiguation (下午3点 → 15:00)
// reads the raw text, since period words survive normalization unchanged
// anyway but the pairing mirrors how dates are matched. A pattern yielding
// an out-of-range value is rejected and the search continues; nothing is
// ever clamped.
func extractClock(normalized, raw string) (clockCandidate, bool) {
	for _, re := range clockPatterns {
		m := re.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if len(m) > 2 && m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		hour = adjustHourForPeriod(hour, raw)
		if hour <= 23 && minute <= 59 {
			return clockCandidate{hour, minute}, true
		}
	}

	// No explicit digits: a bare period word still supplies its default hour.
	for _, p := range timePeriods {
		if strings.Contains(raw, p.word) {
			return clockCandidate{p.defaultHour, 0}, true
		}
	}
	if strings.Contains(raw, "子夜") {
		return clockCandidate{0, 0}, true
	}
	if strings.Contains(raw, "黄昏") {
		return clockCandidate{18, 0}, true
	}
	return clockCandidate{}, false
}

// adjustHourForPeriod applies the first time-of-day word found in the text
// to a 12-hour hour value: 下午/晚上 push morning hours into the afternoon,
// 中午 forces at least noon.
func adjustHourForPeriod(hour int, text string) int {
	for _, p := range timePeriods {
		if !strings.Contains(text, p.word) {
			continue
		}
		switch p.adjust {
		case adjustPM:
			if hour < 12 {
				hour += 12
			}
		case adjustNoon:
			if hour < 12 {
				hour = 12
			}
		}
		break
	}
	return hour
}
