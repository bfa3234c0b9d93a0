package utils

import (
	"strings"
	"unicode"
)

// NormalizePhone canonicalizes a phone number to the +7XXXXXXXXXX wire
// format. Rules run against the digit-only projection of the input:
// a leading 8 with 11 digits becomes +7, a leading 7 with 11 digits is
// prefixed with +, bare 10 digits get +7, anything else keeps its
// digits behind a +. Best effort, never errors, idempotent for
// already-canonical input.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case strings.HasPrefix(digits, "8") && len(digits) == 11:
		return "+7" + digits[1:]
	case strings.HasPrefix(digits, "7") && len(digits) == 11:
		return "+" + digits
	case len(digits) == 10:
		return "+7" + digits
	default:
		return "+" + digits
	}
}
