package utils

import "strings"

// TrimOrEmpty normalizes whitespace-only user input to the empty string.
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// StationCode extracts the code from inputs like "New Delhi (NDLS)";
// plain codes pass through upper-cased.
func StationCode(s string) string {
	s = strings.TrimSpace(s)
	if open := strings.LastIndex(s, "("); open >= 0 {
		if close := strings.LastIndex(s, ")"); close > open {
			return strings.ToUpper(strings.TrimSpace(s[open+1 : close]))
		}
	}
	return strings.ToUpper(s)
}
