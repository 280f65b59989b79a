// Package assert holds test helpers the go.arcalot.io/assert package does not cover.
package assert

import (
	"regexp"
	"testing"
)

// Matches checks if data matches the case-insensitive regular expression pattern.
func Matches[T ~string](t *testing.T, data T, pattern string) {
	t.Helper()
	if !regexp.MustCompile("(?i)" + pattern).MatchString(string(data)) {
		t.Fatalf("Expected '%s' to match /%s/i", data, pattern)
	}
}

// ErrorMatches checks if an error was provided and that its message matches the case-insensitive
// regular expression pattern.
func ErrorMatches(t *testing.T, err error, pattern string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected an error matching /%s/i, got none", pattern)
	}
	Matches(t, err.Error(), pattern)
}

// NoError2 checks if there was no error provided and returns a value.
func NoError2[T any](t *testing.T) func(T, error) T {
	return func(r T, err error) T {
		t.Helper()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		return r
	}
}
