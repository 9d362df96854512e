// Package wordlist supplies the filtered vocabulary that passwords are
// composed from. Resolution order: persistent cache (after an integrity
// check), remote fetch, embedded builtin list.
package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	wachterrors "github.com/mbos/woordwacht/internal/errors"
	"github.com/mbos/woordwacht/internal/logging"
	"github.com/mbos/woordwacht/internal/wordcache"
)

// Options configures a Source.
type Options struct {
	// URL of the remote wordlist, one word per line.
	URL string

	// MinWordLen and MaxWordLen bound the lengths of words returned by
	// Vocabulary. Words outside the range stay in the cache; the range
	// applies at query time.
	MinWordLen int
	MaxWordLen int

	// Timeout bounds the whole fetch (connect and read).
	Timeout time.Duration

	// Client overrides the HTTP client; nil builds one from Timeout.
	Client *http.Client
}

// Source yields the filtered vocabulary backed by a word cache.
type Source struct {
	opts   Options
	client *http.Client
	store  wordcache.Store
	logger logging.Logger
}

// New creates a Source over the given store.
func New(opts Options, store wordcache.Store, logger logging.Logger) *Source {
	if logger == nil {
		logger = logging.NopLogger{}
	}

	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	return &Source{
		opts:   opts,
		client: client,
		store:  store,
		logger: logger.WithComponent("wordlist"),
	}
}

// Vocabulary returns all eligible words with length within the configured
// range. A corrupted cache is discarded and rebuilt from a fresh fetch; a
// failed fetch without a usable cache degrades to the builtin list. The
// returned error is a source-unavailable error only when every leg of
// that chain failed.
func (s *Source) Vocabulary(ctx context.Context) ([]string, error) {
	if s.store.Exists() {
		if err := s.store.Verify(); err != nil {
			s.logger.Warn(ctx, err, "cache failed integrity check, discarding",
				"recovery", "rebuild")
			if derr := s.store.Discard(); derr != nil {
				// Corruption recovery stays transparent: a discard that
				// fails still falls through to the fetch.
				s.logger.Warn(ctx, derr, "failed to discard corrupt cache")
			}
		} else {
			words, err := s.store.WordsInRange(s.opts.MinWordLen, s.opts.MaxWordLen)
			if err == nil && len(words) > 0 {
				s.logger.Debug(ctx, "vocabulary served from cache",
					"words", len(words))
				return words, nil
			}
		}
	}

	filtered, fetchErr := s.fetchFiltered(ctx)
	if fetchErr != nil {
		s.logger.Warn(ctx, fetchErr, "wordlist fetch failed, using builtin fallback")

		words := WithinLengthRange(FilterAlphabetic(BuiltinWords()), s.opts.MinWordLen, s.opts.MaxWordLen)
		if len(words) == 0 {
			return nil, wachterrors.NewSourceError(wachterrors.CodeSourceUnavailable,
				"remote fetch failed and neither cache nor builtin list yields words", fetchErr)
		}
		sort.Strings(words)
		return words, nil
	}

	if err := s.store.Rebuild(filtered); err != nil {
		// The fetch succeeded; a cache that cannot be written only costs
		// the next run a re-download.
		s.logger.Warn(ctx, err, "failed to persist word cache")
	} else {
		s.logger.Debug(ctx, "word cache rebuilt", "words", s.store.Len())
	}

	// Same deterministic order as a cache-served query.
	words := WithinLengthRange(filtered, s.opts.MinWordLen, s.opts.MaxWordLen)
	sort.Strings(words)
	return words, nil
}

// fetchFiltered downloads the wordlist and applies the alphabetic filter.
func (s *Source) fetchFiltered(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.opts.URL, nil)
	if err != nil {
		return nil, wachterrors.NewSourceError("fetch_request", "failed to build wordlist request", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, wachterrors.NewSourceError("fetch_transport", "wordlist request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, wachterrors.NewSourceError("fetch_status",
			fmt.Sprintf("wordlist request returned status %d", resp.StatusCode), nil)
	}

	var lines []string
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, wachterrors.NewSourceError("fetch_read", "failed to read wordlist body", err)
	}

	return FilterAlphabetic(lines), nil
}
