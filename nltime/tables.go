package nltime

import (
	"sort"
	"strconv"
	"strings"
)

// dateKeywordKind classifies what a date keyword anchors to.
type dateKeywordKind int

const (
	relDay dateKeywordKind = iota
	monthAnchor
	yearAnchor
)

// dateKeyword maps a Chinese date word to its offset.
// For relDay the offset is in days, for monthAnchor in months
// (resolving to the first day of that month), for yearAnchor in years
// (resolving to January 1st).
type dateKeyword struct {
	word string
	kind dateKeywordKind
	off  int
}

// dateKeywords is checked in order; longer words that contain shorter ones
// (大前天 vs 前天, 大后天 vs 后天) must come first.
var dateKeywords = []dateKeyword{
	{"大前天", relDay, -3},
	{"大后天", relDay, 3},
	{"前天", relDay, -2},
	{"后天", relDay, 2},
	{"昨天", relDay, -1},
	{"今天", relDay, 0},
	{"今日", relDay, 0},
	{"明天", relDay, 1},
	{"明日", relDay, 1},
	{"上个月", monthAnchor, -1},
	{"这个月", monthAnchor, 0},
	{"本月", monthAnchor, 0},
	{"下个月", monthAnchor, 1},
	{"去年", yearAnchor, -1},
	{"今年", yearAnchor, 0},
	{"明年", yearAnchor, 1},
}

// weekPrefixes maps a week qualifier to its offset in whole weeks.
// 这周/本周 share the zero offset with the bare weekday form.
var weekPrefixes = map[string]int{
	"上上周": -2,
	"上周":  -1,
	"这周":  0,
	"本周":  0,
	"下周":  1,
	"下下周": 2,
}

// weekdayAliases resolves 周/星期/礼拜 weekday names to an index, Monday = 0.
var weekdayAliases = map[string]int{
	"周一": 0, "星期一": 0, "礼拜一": 0,
	"周二": 1, "星期二": 1, "礼拜二": 1,
	"周三": 2, "星期三": 2, "礼拜三": 2,
	"周四": 3, "星期四": 3, "礼拜四": 3,
	"周五": 4, "星期五": 4, "礼拜五": 4,
	"周六": 5, "星期六": 5, "礼拜六": 5,
	"周天": 6, "周日": 6, "星期日": 6, "星期天": 6, "礼拜日": 6, "礼拜天": 6,
}

// weekdayNamesCN renders a Monday-based weekday index back to Chinese.
// Shared between the date extractor tests and Format.
var weekdayNamesCN = []string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"}

// periodAdjust is the numeric transform a time-of-day word applies to an
// explicitly written hour.
type periodAdjust int

const (
	adjustNone periodAdjust = iota
	adjustPM                // add 12 to hours below 12
	adjustNoon              // force the hour to at least 12
)

// timePeriod describes a time-of-day word: how it disambiguates a 12-hour
// value, and which hour it supplies when no digits are present at all.
type timePeriod struct {
	word        string
	adjust      periodAdjust
	defaultHour int
}

// timePeriods is scanned in order; the first word found in the text wins.
var timePeriods = []timePeriod{
	{"凌晨", adjustNone, 2},
	{"早上", adjustNone, 7},
	{"上午", adjustNone, 10},
	{"中午", adjustNoon, 12},
	{"午间", adjustNoon, 12},
	{"下午", adjustPM, 15},
	{"傍晚", adjustPM, 18},
	{"晚上", adjustPM, 20},
	{"晚间", adjustPM, 20},
	{"夜间", adjustPM, 22},
	{"半夜", adjustNone, 0},
	{"深夜", adjustNone, 23},
}

// immediateKeywords resolve to the reference instant itself.
var immediateKeywords = []string{"即刻", "马上", "现在", "立刻"}

// chineseNumerals maps numeral tokens 0-59 to their values, including
// financial forms, 两, compound tens and the 廿 shorthand family.
var chineseNumerals = map[string]int{
	"零": 0, "〇": 0,
	"一": 1, "壹": 1,
	"二": 2, "贰": 2, "两": 2,
	"三": 3, "叁": 3,
	"四": 4, "肆": 4,
	"五": 5, "伍": 5,
	"六": 6, "陆": 6,
	"七": 7, "柒": 7,
	"八": 8, "捌": 8,
	"九": 9, "玖": 9,
	"十": 10, "拾": 10,
	"十一": 11, "十二": 12, "十三": 13, "十四": 14, "十五": 15,
	"十六": 16, "十七": 17, "十八": 18, "十九": 19,
	"二十": 20, "二十一": 21, "二十二": 22, "二十三": 23, "二十四": 24,
	"二十五": 25, "二十六": 26, "二十七": 27, "二十八": 28, "二十九": 29,
	"三十": 30, "三十一": 31, "三十二": 32, "三十三": 33, "三十四": 34,
	"三十五": 35, "三十六": 36, "三十七": 37, "三十八": 38, "三十九": 39,
	"四十": 40, "四十一": 41, "四十二": 42, "四十三": 43, "四十四": 44,
	"四十五": 45, "四十六": 46, "四十七": 47, "四十八": 48, "四十九": 49,
	"五十": 50, "五十一": 51, "五十二": 52, "五十三": 53, "五十四": 54,
	"五十五": 55, "五十六": 56, "五十七": 57, "五十八": 58, "五十九": 59,
	"廿": 20, "廿一": 21, "廿二": 22, "廿三": 23, "廿四": 24,
	"廿五": 25, "廿六": 26, "廿七": 27, "廿八": 28, "廿九": 29,
}

// numeralReplacer substitutes every Chinese numeral token with its decimal
// form in a single pass. Pairs are ordered by descending token length so the
// replacer's trie always takes the longest numeral at any position (十一
// never degenerates into 十 + 一), which also makes normalization idempotent.
var numeralReplacer = newNumeralReplacer()

func newNumeralReplacer() *strings.Replacer {
	tokens := make([]string, 0, len(chineseNumerals))
	for tok := range chineseNumerals {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		li, lj := len([]rune(tokens[i])), len([]rune(tokens[j]))
		if li != lj {
			return li > lj
		}
		return tokens[i] < tokens[j]
	})
	pairs := make([]string, 0, 2*len(tokens))
	for _, tok := range tokens {
		pairs = append(pairs, tok, strconv.Itoa(chineseNumerals[tok]))
	}
	return strings.NewReplacer(pairs...)
}
