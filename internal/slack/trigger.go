package slack

import (
	"strings"
	"unicode"
)

var advancePhrases = map[string]bool{
	"advance":     true,
	"advanced":    true,
	"adv":         true,
	"advance now": true,
	"we advanced": true,
}

// IsAdvanceTrigger reports whether a chat message asks for a manual
// advancement. The whole message must be one of the trigger phrases,
// ignoring case, surrounding punctuation and repeated spaces.
func IsAdvanceTrigger(text string) bool {
	text = strings.TrimFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	return advancePhrases[strings.Join(strings.Fields(text), " ")]
}
