// Package nltime resolves informal Chinese temporal expressions
// (明天下午三点, 下下周三, 22号, 三点半) into an absolute instant relative
// to a caller-supplied reference time.
//
// Resolution runs a fixed pipeline: fast-path matches for canonical forms,
// structured date and time extraction with ordered precedence tiers, a
// combine/rollover step, and finally an injected generic natural-language
// parser for anything the structured stages cannot claim. Every stage either
// commits a result or passes control on; there are no retries and no
// exceptions for unparseable input.
package nltime

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// compactRE recognizes the canonical 2024-02-12 15:00 form, anchored at the
// start of the expression.
var compactRE = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})\s+(\d{1,2}):(\d{2})`)

// Resolver turns free-form Chinese time expressions into instants. The zero
// configuration (New with no options) runs the structured stages only; wire
// a FallbackParser to also catch phrasings outside the structured grammar.
// A Resolver is immutable after construction and safe for concurrent use.
type Resolver struct {
	fallback FallbackParser
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFallback sets the last-resort natural-language parser consulted when
// no structured stage matches.
func WithFallback(p FallbackParser) Option {
	return func(r *Resolver) {
		r.fallback = p
	}
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// defaultResolver backs the package-level Resolve, with the when-based
// fallback wired in.
var defaultResolver = New(WithFallback(NewWhenFallback()))

// Resolve resolves expr against ref using a default Resolver. The second
// return value is false when the expression cannot be understood.
func Resolve(expr string, ref time.Time) (time.Time, bool) {
	return defaultResolver.Resolve(expr, ref)
}

// Resolve resolves a Chinese time expression against the reference instant
// ref. The result carries ref's location. Unresolvable input, including the
// empty string, yields (zero, false); Resolve never panics on any input.
func (r *Resolver) Resolve(expr string, ref time.Time) (time.Time, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return time.Time{}, false
	}
	expr = foldWidth(expr)

	// Fast paths: immediate-action keywords and the canonical compact form
	// short-circuit the extraction stages entirely.
	for _, kw := range immediateKeywords {
		if strings.Contains(expr, kw) {
			slog.Debug("resolved immediate keyword", "expr", expr)
			return ref, true
		}
	}
	if t, ok := parseCompact(expr, ref.Location()); ok {
		slog.Debug("resolved compact form", "expr", expr, "result", t)
		return t, true
	}

	date, hasDate := extractDate(expr, ref)
	clock, hasClock := extractClock(normalizeNumerals(expr), expr)

	switch {
	case hasDate && hasClock:
		t := at(date, clock, ref.Location())
		slog.Debug("resolved date and time", "expr", expr, "result", t)
		return t, true
	case hasDate:
		// Date without a time defaults to 09:00.
		t := at(date, clockCandidate{hour: 9}, ref.Location())
		slog.Debug("resolved date only", "expr", expr, "result", t)
		return t, true
	case hasClock:
		t := at(dateCandidate{ref.Year(), ref.Month(), ref.Day()}, clock, ref.Location())
		// A bare time already behind the reference means tomorrow, unless
		// the text named a date explicitly. At most one rollover.
		if !t.After(ref) && !hasDateKeyword(expr) {
			t = t.AddDate(0, 0, 1)
		}
		slog.Debug("resolved time only", "expr", expr, "result", t)
		return t, true
	}

	if r.fallback != nil {
		if t, ok := r.fallback.Parse(expr, BiasFuture, ref); ok {
			slog.Debug("resolved via fallback", "expr", expr, "result", t)
			return t, true
		}
	}
	return time.Time{}, false
}

// parseCompact parses the anchored YYYY-MM-DD HH:MM form. Out-of-range
// fields make this a non-match rather than an error.
func parseCompact(expr string, loc *time.Location) (time.Time, bool) {
	m := compactRE.FindStringSubmatch(expr)
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	if month < 1 || month > 12 || hour > 23 || minute > 59 {
		return time.Time{}, false
	}
	if !validDate(year, time.Month(month), day) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc), true
}

// at merges a date and a clock candidate into an instant.
func at(d dateCandidate, c clockCandidate, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, c.hour, c.minute, 0, 0, loc)
}
