package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mbos/woordwacht/internal/config"
	wachterrors "github.com/mbos/woordwacht/internal/errors"
	"github.com/mbos/woordwacht/internal/synth"
	"github.com/mbos/woordwacht/internal/wordcache"
	"github.com/mbos/woordwacht/internal/wordlist"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "g"},
	Short:   "Generate passwords",
	Long: `Generate one or more passwords from hyphen-joined Dutch words.

Each password contains one capitalized word, one digit and one special
character, and is padded with digits up to the minimum length. Passwords
are written to stdout one per line; diagnostics go to stderr.

Examples:
  woordwacht generate                      # one password
  woordwacht generate -n 5                 # five passwords
  woordwacht generate --min-words 4 --min-length 16
  woordwacht generate --specials '!@' --no-cache`,
	RunE: runGenerateCommand,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.IntP("count", "n", 1, "number of passwords to generate")
	flags.Int("min-words", 3, "minimum words per password")
	flags.Int("max-words", 4, "maximum words per password")
	flags.Int("min-length", 10, "minimum password length")
	flags.String("specials", config.DefaultSpecials, "special character set")
	flags.Int("max-attempts", 20, "attempts per password before giving up")
	flags.Int("min-word-len", 4, "minimum word length")
	flags.Int("max-word-len", 8, "maximum word length")
	flags.String("url", config.DefaultWordlistURL, "wordlist URL")
	flags.Int("timeout", 30, "wordlist fetch timeout in seconds")
	flags.String("cache-file", "", "word cache file path")
	flags.Bool("no-cache", false, "skip the persistent word cache")

	viper.BindPFlag("generator.count", flags.Lookup("count"))
	viper.BindPFlag("generator.min_words", flags.Lookup("min-words"))
	viper.BindPFlag("generator.max_words", flags.Lookup("max-words"))
	viper.BindPFlag("generator.min_length", flags.Lookup("min-length"))
	viper.BindPFlag("generator.specials", flags.Lookup("specials"))
	viper.BindPFlag("generator.max_attempts", flags.Lookup("max-attempts"))
	viper.BindPFlag("source.min_word_len", flags.Lookup("min-word-len"))
	viper.BindPFlag("source.max_word_len", flags.Lookup("max-word-len"))
	viper.BindPFlag("source.url", flags.Lookup("url"))
	viper.BindPFlag("source.timeout_seconds", flags.Lookup("timeout"))
	viper.BindPFlag("cache.path", flags.Lookup("cache-file"))
}

func runGenerateCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	noCache, _ := cmd.Flags().GetBool("no-cache")

	ctx := cmd.Context()
	logger := newLogger()

	var store wordcache.Store
	if cfg.Cache.Enabled && !noCache {
		store = wordcache.NewFileStore(cfg.Cache.Path)
	} else {
		store = wordcache.NewMemStore()
	}

	source := wordlist.New(wordlist.Options{
		URL:        cfg.Source.URL,
		MinWordLen: cfg.Source.MinWordLen,
		MaxWordLen: cfg.Source.MaxWordLen,
		Timeout:    time.Duration(cfg.Source.TimeoutSeconds) * time.Second,
	}, store, logger)

	vocab, err := source.Vocabulary(ctx)
	if err != nil {
		return err
	}
	if len(vocab) == 0 {
		return wachterrors.NewSourceError(wachterrors.CodeSourceUnavailable,
			"no words available within the configured length range", nil)
	}
	logger.Debug(ctx, "vocabulary ready", "words", len(vocab))

	synthesizer := synth.New(synth.NewRand(), logger)
	result, err := synthesizer.GenerateBatch(ctx, vocab, synth.Constraints{
		MinWords:    cfg.Generator.MinWords,
		MaxWords:    cfg.Generator.MaxWords,
		MinLength:   cfg.Generator.MinLength,
		Specials:    cfg.Generator.Specials,
		MaxAttempts: cfg.Generator.MaxAttempts,
	}, cfg.Generator.Count)
	if err != nil {
		return err
	}

	for _, password := range result.Passwords {
		fmt.Fprintln(cmd.OutOrStdout(), password)
	}

	if len(result.Skipped) > 0 {
		logger.Info(ctx, "batch shortfall",
			"requested", cfg.Generator.Count,
			"produced", len(result.Passwords),
			"skipped", len(result.Skipped))
	}

	if len(result.Passwords) == 0 {
		return wachterrors.NewVocabularyError(wachterrors.CodeInsufficientVocabulary,
			"no passwords could be generated")
	}
	return nil
}
