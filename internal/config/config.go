// Package config provides configuration management for woordwacht using
// Viper for flexible configuration loading from files, environment
// variables, and command-line flags.
//
// The configuration system supports YAML files and environment variable
// overrides with the WOORDWACHT_ prefix. Validation runs before any
// generation attempt: an invalid constraint combination is rejected here,
// never discovered mid-generation.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	wachterrors "github.com/mbos/woordwacht/internal/errors"
)

// DefaultWordlistURL is the OpenTaal Dutch wordlist, one word per line.
const DefaultWordlistURL = "https://raw.githubusercontent.com/OpenTaal/opentaal-wordlist/refs/heads/master/wordlist.txt"

// DefaultSpecials matches string.punctuation minus characters that tend
// to break copy/paste into shells.
const DefaultSpecials = "!@#$%^&*()_+=[]{}:;,./<>?"

type Config struct {
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator"`
	Source    SourceConfig    `mapstructure:"source" yaml:"source"`
	Cache     CacheConfig     `mapstructure:"cache" yaml:"cache"`
}

// GeneratorConfig maps 1:1 onto the synthesizer constraints plus the
// requested batch size.
type GeneratorConfig struct {
	Count       int    `mapstructure:"count" yaml:"count"`
	MinWords    int    `mapstructure:"min_words" yaml:"min_words"`
	MaxWords    int    `mapstructure:"max_words" yaml:"max_words"`
	MinLength   int    `mapstructure:"min_length" yaml:"min_length"`
	Specials    string `mapstructure:"specials" yaml:"specials"`
	MaxAttempts int    `mapstructure:"max_attempts" yaml:"max_attempts"`
}

type SourceConfig struct {
	URL            string `mapstructure:"url" yaml:"url"`
	MinWordLen     int    `mapstructure:"min_word_len" yaml:"min_word_len"`
	MaxWordLen     int    `mapstructure:"max_word_len" yaml:"max_word_len"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}

func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, wachterrors.NewInternalError("config_unmarshal", "failed to unmarshal configuration", err)
	}

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// applyDefaults fills in fields absent from every configuration source.
// An explicitly supplied zero is not "unset": it stays put so Validate
// rejects it with the matching nonpositive_* code.
func applyDefaults(config *Config) {
	if config.Generator.Count == 0 && !viper.IsSet("generator.count") {
		config.Generator.Count = 1
	}
	if config.Generator.MinWords == 0 && !viper.IsSet("generator.min_words") {
		config.Generator.MinWords = 3
	}
	if config.Generator.MaxWords == 0 && !viper.IsSet("generator.max_words") {
		config.Generator.MaxWords = 4
	}
	if config.Generator.MinLength == 0 && !viper.IsSet("generator.min_length") {
		config.Generator.MinLength = 10
	}
	if config.Generator.Specials == "" && !viper.IsSet("generator.specials") {
		config.Generator.Specials = DefaultSpecials
	}
	if config.Generator.MaxAttempts == 0 && !viper.IsSet("generator.max_attempts") {
		config.Generator.MaxAttempts = 20
	}

	if config.Source.URL == "" && !viper.IsSet("source.url") {
		config.Source.URL = DefaultWordlistURL
	}
	if config.Source.MinWordLen == 0 && !viper.IsSet("source.min_word_len") {
		config.Source.MinWordLen = 4
	}
	if config.Source.MaxWordLen == 0 && !viper.IsSet("source.max_word_len") {
		config.Source.MaxWordLen = 8
	}
	if config.Source.TimeoutSeconds == 0 && !viper.IsSet("source.timeout_seconds") {
		config.Source.TimeoutSeconds = 30
	}

	if !viper.IsSet("cache.enabled") {
		config.Cache.Enabled = true
	}
	if config.Cache.Path == "" {
		config.Cache.Path = defaultCachePath()
	}
}

// defaultCachePath places the word cache under the user cache directory,
// falling back to the working directory when none is known.
func defaultCachePath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "woordwacht", "words.json")
	}
	return ".woordwacht-words.json"
}

// Validate checks constraint combinations for correctness. Failures are
// configuration errors: fatal, reported before any generation attempt.
func Validate(config *Config) error {
	if err := validateGenerator(&config.Generator); err != nil {
		return err
	}
	return validateSource(&config.Source)
}

func validateGenerator(config *GeneratorConfig) error {
	if config.Count < 1 {
		return wachterrors.NewConfigError("nonpositive_count", "password count must be at least 1")
	}
	if config.MinWords < 1 {
		return wachterrors.NewConfigError("nonpositive_word_count", "minimum word count must be at least 1")
	}
	if config.MinWords > config.MaxWords {
		return wachterrors.NewConfigError("word_count_bounds", "minimum word count exceeds maximum word count")
	}
	if config.MinLength < 1 {
		return wachterrors.NewConfigError("nonpositive_length", "minimum password length must be at least 1")
	}
	if config.Specials == "" {
		return wachterrors.NewConfigError("empty_specials", "special character set must not be empty")
	}
	if config.MaxAttempts < 1 {
		return wachterrors.NewConfigError("nonpositive_attempts", "maximum attempts must be at least 1")
	}
	return nil
}

func validateSource(config *SourceConfig) error {
	if config.URL == "" {
		return wachterrors.NewConfigError("empty_url", "wordlist URL must not be empty")
	}
	if config.MinWordLen < 1 {
		return wachterrors.NewConfigError("nonpositive_word_len", "minimum word length must be at least 1")
	}
	if config.MinWordLen > config.MaxWordLen {
		return wachterrors.NewConfigError("word_len_bounds", "minimum word length exceeds maximum word length")
	}
	if config.TimeoutSeconds < 1 {
		return wachterrors.NewConfigError("nonpositive_timeout", "fetch timeout must be at least 1 second")
	}
	return nil
}
