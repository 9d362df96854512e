package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mbos/woordwacht/internal/config"
	"github.com/mbos/woordwacht/internal/wordcache"
	"github.com/mbos/woordwacht/internal/wordlist"
)

// cacheCmd groups the word cache operator commands.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the local word cache",
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cache location, presence and word count",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := cacheStore()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Path:", cfg.Cache.Path)
		if !store.Exists() {
			fmt.Fprintln(cmd.OutOrStdout(), "Status: absent")
			return nil
		}

		if verr := store.Verify(); verr != nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Status: corrupt")
			fmt.Fprintln(cmd.OutOrStdout(), "Detail:", verr)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Status: ok")
		fmt.Fprintln(cmd.OutOrStdout(), "Words:", store.Len())
		return nil
	},
}

var cacheVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the cache integrity check",
	Long: `Run the cache integrity check and report the result. During normal
generation a failed check is recovered transparently by delete-and-
rebuild; this command surfaces the result explicitly and exits non-zero
on corruption.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := cacheStore()
		if err != nil {
			return err
		}

		if !store.Exists() {
			fmt.Fprintln(cmd.OutOrStdout(), "cache absent")
			return nil
		}
		if err := store.Verify(); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "cache ok")
		return nil
	},
}

var cacheRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Discard the cache and rebuild it from a fresh fetch",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := cacheStore()
		if err != nil {
			return err
		}

		if err := store.Discard(); err != nil {
			return err
		}

		source := wordlist.New(wordlist.Options{
			URL:        cfg.Source.URL,
			MinWordLen: cfg.Source.MinWordLen,
			MaxWordLen: cfg.Source.MaxWordLen,
			Timeout:    time.Duration(cfg.Source.TimeoutSeconds) * time.Second,
		}, store, newLogger())

		words, err := source.Vocabulary(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "cache rebuilt: %d words stored, %d within length range\n",
			store.Len(), len(words))
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the cache file",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := cacheStore()
		if err != nil {
			return err
		}

		if err := store.Discard(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "cache cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheVerifyCmd)
	cacheCmd.AddCommand(cacheRebuildCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

func cacheStore() (*config.Config, *wordcache.FileStore, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, wordcache.NewFileStore(cfg.Cache.Path), nil
}
