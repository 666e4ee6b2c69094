package sanitizer

import "unicode/utf8"

const (
	// DefaultTruncateLimit is the number of characters kept by Truncate callers
	// that have no limit of their own.
	DefaultTruncateLimit = 100

	// TruncatedMarker is appended after the kept prefix of a truncated value.
	TruncatedMarker = "...[TRUNCATED]"
)

// MaxLength truncates a string to the specified maximum number of characters.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// Truncate keeps the first limit characters of s and appends TruncatedMarker
// when s is longer than limit. A limit <= 0 disables truncation.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	return MaxLength(s, limit) + TruncatedMarker
}
