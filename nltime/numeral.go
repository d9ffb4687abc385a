package nltime

import (
	"regexp"

	"golang.org/x/text/width"
)

// Fractional markers must be rewritten before raw numeral substitution:
// 三点半 becomes 三点30 first, then 3点30 — converting 三 to 3 first would
// leave 半 with nothing to attach to. Each pattern accepts both a
// Chinese-numeral and an already-Arabic hour prefix.
var (
	halfPastRE     = regexp.MustCompile(`([一二三四五六七八九十两]+|\d{1,2})点半`)
	quarterPastRE  = regexp.MustCompile(`([一二三四五六七八九十两]+|\d{1,2})点一刻`)
	threeQuarterRE = regexp.MustCompile(`([一二三四五六七八九十两]+|\d{1,2})点三刻`)
)

// normalizeNumerals rewrites Chinese numeral runs in text to Arabic digits.
// Deterministic and idempotent: input without Chinese numerals passes
// through unchanged.
func normalizeNumerals(text string) string {
	s := halfPastRE.ReplaceAllString(text, "${1}点30")
	s = quarterPastRE.ReplaceAllString(s, "${1}点15")
	s = threeQuarterRE.ReplaceAllString(s, "${1}点45")
	return numeralReplacer.Replace(s)
}

// foldWidth folds full-width (East Asian wide) digits and punctuation to
// their ASCII forms, so IME input like １５：３０ matches the same
// patterns as 15:30. CJK ideographs have no narrow mapping and are
// untouched.
func foldWidth(text string) string {
	return width.Narrow.String(text)
}
