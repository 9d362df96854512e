package synth

import (
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordSeparator joins the sampled words in every candidate.
const wordSeparator = "-"

// insertion strategies for the digit+special pair.
const (
	insertPrefix = iota
	insertSuffix
	insertMidWord
	insertInterWord
	insertStrategies
)

// buildCandidate constructs one password candidate: sample distinct
// words, capitalize one, join with hyphens, place a digit+special pair
// per a randomly chosen strategy, then pad with digits up to the minimum
// length. wordCount must already be clamped to len(vocab).
func buildCandidate(rng *rand.Rand, vocab []string, wordCount int, c Constraints) string {
	words := sampleWords(rng, vocab, wordCount)

	capIdx := rng.Intn(len(words))
	words[capIdx] = capitalize(words[capIdx])

	insert := randomDigit(rng) + randomSpecial(rng, c.Specials)

	var password string
	switch rng.Intn(insertStrategies) {
	case insertPrefix:
		password = insert + strings.Join(words, wordSeparator)
	case insertSuffix:
		password = strings.Join(words, wordSeparator) + insert
	case insertMidWord:
		wi := rng.Intn(len(words))
		words[wi] = splitInsert(words[wi], insert)
		password = strings.Join(words, wordSeparator)
	case insertInterWord:
		if len(words) > 1 {
			// Replace one hyphen with the digit+special pair.
			h := rng.Intn(len(words) - 1)
			password = strings.Join(words[:h+1], wordSeparator) +
				insert +
				strings.Join(words[h+1:], wordSeparator)
		} else {
			// No hyphen to replace; suffix behavior.
			password = strings.Join(words, wordSeparator) + insert
		}
	}

	// Padding digits are appended, never inserted mid-string.
	for utf8.RuneCountInString(password) < c.MinLength {
		password += randomDigit(rng)
	}

	return password
}

// sampleWords picks wordCount distinct words uniformly at random.
func sampleWords(rng *rand.Rand, vocab []string, wordCount int) []string {
	perm := rng.Perm(len(vocab))
	words := make([]string, wordCount)
	for i := 0; i < wordCount; i++ {
		words[i] = vocab[perm[i]]
	}
	return words
}

// capitalize upper-cases the first rune and leaves the rest unchanged.
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}

// splitInsert splits a word at its midpoint, index max(1, len/2), and
// inserts the pair between the halves.
func splitInsert(word, insert string) string {
	runes := []rune(word)
	mid := len(runes) / 2
	if mid < 1 {
		mid = 1
	}
	if mid > len(runes) {
		mid = len(runes)
	}
	return string(runes[:mid]) + insert + string(runes[mid:])
}

func randomDigit(rng *rand.Rand) string {
	return string(rune('0' + rng.Intn(10)))
}

func randomSpecial(rng *rand.Rand, specials string) string {
	set := []rune(specials)
	return string(set[rng.Intn(len(set))])
}
