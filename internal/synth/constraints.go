package synth

import (
	wachterrors "github.com/mbos/woordwacht/internal/errors"
)

// Constraints is the immutable generation configuration. Validate must
// pass before any generation attempt; an empty special set or inverted
// bound is a configuration error, never a runtime surprise.
type Constraints struct {
	MinWords    int
	MaxWords    int
	MinLength   int
	Specials    string
	MaxAttempts int
}

// Validate checks the constraint combination.
func (c Constraints) Validate() error {
	if c.MinWords < 1 {
		return wachterrors.NewConfigError("nonpositive_word_count", "minimum word count must be at least 1")
	}
	if c.MinWords > c.MaxWords {
		return wachterrors.NewConfigError("word_count_bounds", "minimum word count exceeds maximum word count")
	}
	if c.MinLength < 1 {
		return wachterrors.NewConfigError("nonpositive_length", "minimum password length must be at least 1")
	}
	if len(c.Specials) == 0 {
		return wachterrors.NewConfigError("empty_specials", "special character set must not be empty")
	}
	if c.MaxAttempts < 1 {
		return wachterrors.NewConfigError("nonpositive_attempts", "maximum attempts must be at least 1")
	}
	return nil
}
