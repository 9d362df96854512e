// Package synth implements the password synthesizer: candidate
// construction from a word vocabulary, the security predicate, and the
// bounded retry loop that wraps them.
package synth

import (
	"context"
	"math/rand"

	wachterrors "github.com/mbos/woordwacht/internal/errors"
	"github.com/mbos/woordwacht/internal/logging"
)

// Synthesizer produces passwords from a vocabulary under constraints.
// All randomness flows through the injected rng.
type Synthesizer struct {
	rng    *rand.Rand
	logger logging.Logger
}

// New creates a Synthesizer. A nil rng gets a crypto-seeded source; a
// nil logger discards diagnostics.
func New(rng *rand.Rand, logger logging.Logger) *Synthesizer {
	if rng == nil {
		rng = NewRand()
	}
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Synthesizer{
		rng:    rng,
		logger: logger.WithComponent("synth"),
	}
}

// GenerateOne builds a single candidate password. It fails with an
// insufficient-vocabulary error when fewer distinct words are available
// than the minimum word count. The candidate is not validated here; the
// retry loop owns validation.
func (s *Synthesizer) GenerateOne(vocab []string, c Constraints) (string, error) {
	if len(vocab) < c.MinWords {
		return "", wachterrors.NewVocabularyError(wachterrors.CodeInsufficientVocabulary,
			"insufficient vocabulary").
			WithContext("available", len(vocab)).
			WithContext("required", c.MinWords)
	}

	// max_word_count beyond the vocabulary size clamps silently.
	maxWords := c.MaxWords
	if maxWords > len(vocab) {
		maxWords = len(vocab)
	}

	wordCount := c.MinWords + s.rng.Intn(maxWords-c.MinWords+1)

	return buildCandidate(s.rng, vocab, wordCount, c), nil
}

// retryState is a state of the bounded retry machine. Transitions:
// Building -> Validating on each constructed candidate, Validating ->
// Accepted on a secure candidate or back to Building otherwise, Building
// -> Exhausted once the attempt budget is spent.
type retryState int

const (
	stateBuilding retryState = iota
	stateValidating
	stateAccepted
	stateExhausted
)

// errAttemptsExhausted marks a slot whose attempt budget ran out.
var errAttemptsExhausted = wachterrors.NewVocabularyError("attempts_exhausted",
	"no valid password within attempt budget")

// generateSlot runs the retry machine for one password slot.
func (s *Synthesizer) generateSlot(vocab []string, c Constraints) (string, error) {
	state := stateBuilding
	attempts := 0
	var candidate string

	for {
		switch state {
		case stateBuilding:
			if attempts >= c.MaxAttempts {
				state = stateExhausted
				continue
			}
			attempts++

			pw, err := s.GenerateOne(vocab, c)
			if err != nil {
				return "", err
			}
			candidate = pw
			state = stateValidating

		case stateValidating:
			if IsSecure(candidate, c.MinLength, c.Specials) {
				state = stateAccepted
			} else {
				state = stateBuilding
			}

		case stateAccepted:
			return candidate, nil

		case stateExhausted:
			return "", errAttemptsExhausted.WithContext("attempts", attempts)
		}
	}
}

// Skip records why one requested password slot produced nothing.
type Skip struct {
	Slot int
	Err  error
}

// Result is the outcome of a batch request. A shortfall is not an error:
// the batch may hold fewer passwords than requested, with one Skip per
// empty slot.
type Result struct {
	Passwords []string
	Skipped   []Skip
}

// GenerateBatch produces up to count passwords. Constraint validation
// failures abort before any generation; per-slot failures (insufficient
// vocabulary, exhausted attempts) are recorded as skips.
func (s *Synthesizer) GenerateBatch(ctx context.Context, vocab []string, c Constraints, count int) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}

	if c.MaxWords > len(vocab) && len(vocab) >= c.MinWords {
		s.logger.Debug(ctx, "maximum word count clamped to vocabulary size",
			"max_words", c.MaxWords, "vocabulary", len(vocab))
	}

	var result Result
	for slot := 0; slot < count; slot++ {
		password, err := s.generateSlot(vocab, c)
		if err != nil {
			s.logger.Warn(ctx, err, "skipping password slot", "slot", slot)
			result.Skipped = append(result.Skipped, Skip{Slot: slot, Err: err})
			continue
		}
		result.Passwords = append(result.Passwords, password)
	}

	return result, nil
}
