package utils

import "strings"

// NormalizeAnswer prepares free-form chat text for answer comparison:
// trimmed, lower-cased, inner whitespace collapsed to single spaces.
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// DisplayName returns the best human-readable name for a player,
// preferring the Telegram username over the first name.
func DisplayName(username, firstName string) string {
	if username != "" {
		return username
	}
	return firstName
}
