package validators

import (
	"strings"
	"unicode/utf8"
)

// SanitizeString trims input and clips it to maxLen runes so multi-byte
// names are never cut mid-character. maxLen <= 0 disables clipping.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen <= 0 || utf8.RuneCountInString(trimmed) <= maxLen {
		return trimmed
	}
	return strings.TrimSpace(string([]rune(trimmed)[:maxLen]))
}
