package main

import (
	"testing"
	"time"
)

// TestFormatUptime checks human-readable durations.
func TestFormatUptime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{5 * time.Second, "5 seconds"},
		{1 * time.Second, "1 second"},
		{65 * time.Second, "1 minute, 5 seconds"},
		{3*time.Hour + 2*time.Minute + 1*time.Second, "3 hours, 2 minutes, 1 second"},
	}
	for _, tt := range tests {
		if got := formatUptime(tt.d); got != tt.want {
			t.Errorf("formatUptime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// TestGetEnvHelpers checks fallbacks and parsing.
func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STR", "hello")
	if got := getEnv("TEST_STR", "fallback"); got != "hello" {
		t.Errorf("getEnv = %q, want hello", got)
	}
	if got := getEnv("TEST_STR_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnv fallback = %q", got)
	}

	t.Setenv("TEST_INT", "42")
	if got := getEnvInt("TEST_INT", 7); got != 42 {
		t.Errorf("getEnvInt = %d, want 42", got)
	}
	t.Setenv("TEST_INT_BAD", "forty")
	if got := getEnvInt("TEST_INT_BAD", 7); got != 7 {
		t.Errorf("getEnvInt bad value = %d, want fallback 7", got)
	}

	t.Setenv("TEST_DUR", "90s")
	if got := getEnvDuration("TEST_DUR", time.Minute); got != 90*time.Second {
		t.Errorf("getEnvDuration = %v, want 90s", got)
	}
	t.Setenv("TEST_DUR_BAD", "soon")
	if got := getEnvDuration("TEST_DUR_BAD", time.Minute); got != time.Minute {
		t.Errorf("getEnvDuration bad value = %v, want fallback 1m", got)
	}
}

// TestParseLimit checks the positive-integer query parser.
func TestParseLimit(t *testing.T) {
	if got, err := parseLimit("5"); err != nil || got != 5 {
		t.Errorf("parseLimit(5) = %d, %v", got, err)
	}
	for _, bad := range []string{"0", "-3", "abc", ""} {
		if _, err := parseLimit(bad); err == nil {
			t.Errorf("parseLimit(%q) accepted", bad)
		}
	}
}
