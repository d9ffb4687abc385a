package nltime

import (
	"log/slog"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/olebedev/when/rules/zh"
)

// Bias tells a FallbackParser how to break past/future ambiguity.
type Bias int

const (
	// BiasNone takes the parser's literal interpretation.
	BiasNone Bias = iota
	// BiasFuture prefers the future reading of an ambiguous expression.
	BiasFuture
)

// FallbackParser is the last-resort collaborator consulted when the
// structured extraction stages find nothing. Implementations must treat
// unparseable input as a not-found outcome, never a panic.
type FallbackParser interface {
	Parse(text string, bias Bias, anchor time.Time) (time.Time, bool)
}

// WhenFallback adapts github.com/olebedev/when as a FallbackParser, with
// the Chinese rule pack first and English rules for mixed-language input.
type WhenFallback struct {
	parser *when.Parser
}

// NewWhenFallback builds the default fallback parser. The rule set is fixed
// at construction; the returned value is safe for concurrent use.
func NewWhenFallback() *WhenFallback {
	w := when.New(nil)
	w.Add(zh.All...)
	w.Add(en.All...)
	w.Add(common.All...)
	return &WhenFallback{parser: w}
}

// pastMarkers are words that make a past-dated interpretation explicit, in
// which case future bias must not rewrite the result.
var pastMarkers = []string{"昨", "前天", "上周", "上个月", "去年", "ago", "yesterday", "last"}

// Parse implements FallbackParser. when can panic on inputs where a rule
// matches without capturing anything (negative slice bound in its overlap
// handling); any such failure maps to the not-found outcome.
func (f *WhenFallback) Parse(text string, bias Bias, anchor time.Time) (t time.Time, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("fallback parser panicked", "text", text, "panic", r)
			t, ok = time.Time{}, false
		}
	}()
	r, err := f.parser.Parse(text, anchor)
	if err != nil || r == nil {
		return time.Time{}, false
	}
	return applyFutureBias(r.Time, anchor, text, bias), true
}

// applyFutureBias compensates for when having no future-preference switch:
// a result that landed just behind the anchor with no explicit past marker
// is an ambiguous time-of-day reading, so it moves to the next day.
func applyFutureBias(t, anchor time.Time, text string, bias Bias) time.Time {
	if bias == BiasFuture && t.Before(anchor) && anchor.Sub(t) < 24*time.Hour && !hasPastMarker(text) {
		return t.AddDate(0, 0, 1)
	}
	return t
}

func hasPastMarker(text string) bool {
	lower := strings.ToLower(text)
	for _, m := range pastMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
