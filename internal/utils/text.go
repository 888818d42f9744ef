package utils

import "unicode/utf8"

// Truncate shortens s to at most maxLength runes, marking the cut with "...".
func Truncate(s string, maxLength int) string {
	if s == "" {
		return "(empty)"
	}

	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxLength]) + "..."
}
