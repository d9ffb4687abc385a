package nltime

import (
	"testing"
	"time"
)

func TestApplyFutureBias(t *testing.T) {
	anchor := time.Date(2026, time.February, 14, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		result   time.Time
		text     string
		bias     Bias
		expected time.Time
	}{
		{
			"just-past ambiguous result moves forward",
			time.Date(2026, time.February, 14, 15, 0, 0, 0, time.UTC),
			"3点左右",
			BiasFuture,
			time.Date(2026, time.February, 15, 15, 0, 0, 0, time.UTC),
		},
		{
			"future result untouched",
			time.Date(2026, time.February, 15, 9, 0, 0, 0, time.UTC),
			"明早",
			BiasFuture,
			time.Date(2026, time.February, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			"explicit past marker blocks the roll",
			time.Date(2026, time.February, 13, 15, 0, 0, 0, time.UTC),
			"昨天下午",
			BiasFuture,
			time.Date(2026, time.February, 13, 15, 0, 0, 0, time.UTC),
		},
		{
			"far past untouched",
			time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			"元旦",
			BiasFuture,
			time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"no bias keeps literal reading",
			time.Date(2026, time.February, 14, 15, 0, 0, 0, time.UTC),
			"3点左右",
			BiasNone,
			time.Date(2026, time.February, 14, 15, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyFutureBias(tt.result, anchor, tt.text, tt.bias)
			if !got.Equal(tt.expected) {
				t.Errorf("applyFutureBias(%v, %q) = %v, want %v", tt.result, tt.text, got, tt.expected)
			}
		})
	}
}

func TestHasPastMarker(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"昨天下午", true},
		{"前天", true},
		{"上周的会", true},
		{"去年夏天", true},
		{"2 days ago", true},
		{"Last Monday", true},
		{"明天下午", false},
		{"3点", false},
	}
	for _, tt := range tests {
		if got := hasPastMarker(tt.text); got != tt.expected {
			t.Errorf("hasPastMarker(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}

// TestNewWhenFallback only checks construction and the not-found contract on
// garbage input; the library's own parsing quality is not under test here.
func TestNewWhenFallback(t *testing.T) {
	f := NewWhenFallback()
	if f == nil || f.parser == nil {
		t.Fatal("NewWhenFallback returned an unconfigured parser")
	}
	if _, ok := f.Parse("||||", BiasFuture, time.Now()); ok {
		t.Error("expected no result for non-temporal input")
	}
}

// TestWhenFallbackNeverPanics pins the not-found contract on inputs that
// trip when internally: a rule can match with no capture group, producing a
// negative slice bound inside the library. Such inputs must surface as
// Unresolved, never as a panic.
func TestWhenFallbackNeverPanics(t *testing.T) {
	f := NewWhenFallback()
	anchor := time.Date(2026, time.February, 11, 10, 0, 0, 0, time.UTC)

	inputs := []string{"||||", "|", "。。。|||。。。", "@@@@"}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parse(%q) panicked: %v", in, r)
				}
			}()
			if _, ok := f.Parse(in, BiasFuture, anchor); ok {
				t.Errorf("Parse(%q) unexpectedly found a result", in)
			}
		}()
	}
}
