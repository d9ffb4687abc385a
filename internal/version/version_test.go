package version

import (
	"strings"
	"testing"
)

func TestIsVersionGreaterOrEqualThan(t *testing.T) {
	tests := []struct {
		version  string
		target   string
		expected bool
	}{
		{"0.2.0", "0.1.0", true},
		{"0.2.0", "0.2.0", true},
		{"0.1.9", "0.2.0", false},
		{"1.0.0", "0.9.9", true},
		{"0.0.0-dev", "0.1.0", false},
		{"0.10.0", "0.9.0", true}, // semver, not lexicographic
	}

	for _, tt := range tests {
		if got := IsVersionGreaterOrEqualThan(tt.version, tt.target); got != tt.expected {
			t.Errorf("IsVersionGreaterOrEqualThan(%q, %q) = %v, want %v", tt.version, tt.target, got, tt.expected)
		}
	}
}

func TestString(t *testing.T) {
	if got := String(); !strings.HasPrefix(got, Version) {
		t.Errorf("String() = %q, want prefix %q", got, Version)
	}
	if got := StringFull(); !strings.Contains(got, "Version="+Version) {
		t.Errorf("StringFull() = %q, want it to contain Version=%s", got, Version)
	}
}
