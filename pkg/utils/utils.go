package utils

import (
	"log"
	"regexp"
	"strings"
)

// Logf prints consistent server logs.
func Logf(format string, v ...any) {
	log.Printf("[Fable] "+format, v...)
}

// ErrJSON produces a standard JSON error response.
func ErrJSON(msg string) map[string]any {
	return map[string]any{
		"success": false,
		"error":   msg,
	}
}

var nonSlugRX = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a title and collapses everything that is not a letter
// or digit into single dashes, for use in download filenames.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlugRX.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SanitizeFilename replaces path-dangerous characters with underscores.
func SanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return strings.TrimSpace(s)
}

// LimitStr returns a string truncated to n characters with "..." appended if longer.
func LimitStr(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
