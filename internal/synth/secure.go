package synth

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsSecure is the validity predicate: length at least minLen, at least
// one uppercase letter, one digit, and one character from specials.
func IsSecure(password string, minLen int, specials string) bool {
	if utf8.RuneCountInString(password) < minLen {
		return false
	}

	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
		if strings.ContainsRune(specials, r) {
			hasSpecial = true
		}
	}

	return hasUpper && hasDigit && hasSpecial
}
