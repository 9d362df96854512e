package wordlist

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// FilterAlphabetic normalizes raw wordlist lines to NFC and keeps only
// words consisting entirely of letters. Apostrophes (common in the
// OpenTaal list, e.g. "a'tje") are rejected along with any other
// non-letter rune. Duplicates are preserved; the store deduplicates.
func FilterAlphabetic(lines []string) []string {
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		word := norm.NFC.String(strings.TrimSpace(line))
		if isSuitable(word) {
			words = append(words, word)
		}
	}
	return words
}

// WithinLengthRange keeps words whose rune count lies in [minLen, maxLen].
func WithinLengthRange(words []string, minLen, maxLen int) []string {
	var out []string
	for _, word := range words {
		length := utf8.RuneCountInString(word)
		if length >= minLen && length <= maxLen {
			out = append(out, word)
		}
	}
	return out
}

func isSuitable(word string) bool {
	if word == "" || strings.ContainsRune(word, '\'') {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
