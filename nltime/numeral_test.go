package nltime

import "testing"

func TestNormalizeNumerals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// Fractional markers run before digit substitution
		{"half past chinese", "三点半", "3点30"},
		{"half past arabic", "3点半", "3点30"},
		{"half past liang", "两点半", "2点30"},
		{"quarter past", "三点一刻", "3点15"},
		{"three quarters", "十点三刻", "10点45"},
		{"quarter past arabic", "9点一刻", "9点15"},

		// Longest numeral wins
		{"eleven", "十一点", "11点"},
		{"twenty three", "二十三", "23"},
		{"fifty nine", "五十九分", "59分"},
		{"ten alone", "十点", "10点"},
		{"nian shorthand", "廿三号", "23号"},
		{"nian alone", "廿号", "20号"},

		// Financial forms and liang
		{"financial", "壹点", "1点"},
		{"liang", "两点", "2点"},

		// Compounds inside larger text
		{"combined expression", "明天晚上十点半", "明天晚上10点30"},
		{"month day", "三月十五号", "3月15号"},

		// No-ops
		{"already arabic", "明天 15:00", "明天 15:00"},
		{"empty", "", ""},
		{"iso date untouched", "2026-02-14 15:00", "2026-02-14 15:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizeNumerals(tt.input)
			if result != tt.expected {
				t.Errorf("normalizeNumerals(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestNormalizeNumeralsIdempotent verifies re-running normalization on
// already-normalized input is a no-op.
func TestNormalizeNumeralsIdempotent(t *testing.T) {
	inputs := []string{"三点半", "下下周三下午三点半", "二十三号", "明天晚上十点", "15:30"}
	for _, in := range inputs {
		once := normalizeNumerals(in)
		twice := normalizeNumerals(once)
		if once != twice {
			t.Errorf("normalizeNumerals not idempotent on %q: %q -> %q", in, once, twice)
		}
	}
}

func TestFoldWidth(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"１５：３０", "15:30"},
		{"２０２６-０２-１４ １５:００", "2026-02-14 15:00"},
		{"明天下午三点", "明天下午三点"}, // ideographs have no narrow mapping
	}
	for _, tt := range tests {
		if got := foldWidth(tt.input); got != tt.expected {
			t.Errorf("foldWidth(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
