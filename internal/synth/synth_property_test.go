//go:build property
// +build property

package synth

import (
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSynthesizerProperties tests generation laws over random vocabularies
// and constraints.
func TestSynthesizerProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	wordGen := gen.RegexMatch(`^[a-z]{4,8}$`)

	// Property: every generated password satisfies the security predicate.
	properties.Property("generated passwords are secure", prop.ForAll(
		func(words []string, minWords int, minLength int, seed int64) bool {
			vocab := dedupe(words)
			if len(vocab) < minWords {
				return true // Insufficient vocabulary is covered elsewhere
			}

			c := Constraints{
				MinWords:    minWords,
				MaxWords:    minWords + 1,
				MinLength:   minLength,
				Specials:    "!@#$",
				MaxAttempts: 20,
			}
			if c.Validate() != nil {
				return true
			}

			s := New(rand.New(rand.NewSource(seed)), nil)
			password, err := s.GenerateOne(vocab, c)
			if err != nil {
				return false
			}

			return IsSecure(password, c.MinLength, c.Specials)
		},
		gen.SliceOfN(8, wordGen),
		gen.IntRange(1, 4),
		gen.IntRange(1, 40),
		gen.Int64(),
	))

	// Property: the padding law - generated length never undercuts the
	// configured minimum.
	properties.Property("length at least minimum", prop.ForAll(
		func(words []string, minLength int, seed int64) bool {
			vocab := dedupe(words)
			if len(vocab) < 2 {
				return true
			}

			c := Constraints{
				MinWords:    2,
				MaxWords:    3,
				MinLength:   minLength,
				Specials:    "!@",
				MaxAttempts: 20,
			}

			s := New(rand.New(rand.NewSource(seed)), nil)
			password, err := s.GenerateOne(vocab, c)
			if err != nil {
				return false
			}

			return utf8.RuneCountInString(password) >= minLength
		},
		gen.SliceOfN(6, wordGen),
		gen.IntRange(1, 60),
		gen.Int64(),
	))

	// Property: same seed, same output.
	properties.Property("deterministic under a fixed source", prop.ForAll(
		func(words []string, seed int64) bool {
			vocab := dedupe(words)
			if len(vocab) < 3 {
				return true
			}

			c := Constraints{
				MinWords:    3,
				MaxWords:    3,
				MinLength:   10,
				Specials:    "!@",
				MaxAttempts: 20,
			}

			first, err1 := New(rand.New(rand.NewSource(seed)), nil).GenerateOne(vocab, c)
			second, err2 := New(rand.New(rand.NewSource(seed)), nil).GenerateOne(vocab, c)

			return err1 == nil && err2 == nil && first == second
		},
		gen.SliceOfN(5, wordGen),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	var out []string
	for _, word := range words {
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}
	return out
}
