package wordlist

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wachterrors "github.com/mbos/woordwacht/internal/errors"
	"github.com/mbos/woordwacht/internal/wordcache"
)

func wordlistServer(t *testing.T, body string, hits *int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			*hits++
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestVocabularyFetchesAndCaches(t *testing.T) {
	hits := 0
	server := wordlistServer(t, "fiets\ntulp\nkaas\nwindmolen\nzo\na'tje\nx123\n", &hits)

	store := wordcache.NewMemStore()
	source := New(Options{URL: server.URL, MinWordLen: 4, MaxWordLen: 8}, store, nil)

	vocab, err := source.Vocabulary(context.Background())
	require.NoError(t, err)

	// Apostrophes and digits are filtered out entirely; "zo" (2) and
	// "windmolen" (9) are stored but fall outside the query range.
	assert.Equal(t, []string{"fiets", "kaas", "tulp"}, vocab)
	assert.Equal(t, 1, hits)
	assert.Equal(t, 5, store.Len())

	// Second call is served from the cache without refetching.
	vocab, err = source.Vocabulary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"fiets", "kaas", "tulp"}, vocab)
	assert.Equal(t, 1, hits)
}

func TestVocabularyFallbackOnFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	source := New(Options{URL: server.URL, MinWordLen: 4, MaxWordLen: 8}, wordcache.NewMemStore(), nil)

	vocab, err := source.Vocabulary(context.Background())
	require.NoError(t, err)

	// The builtin list survives the same filter.
	assert.NotEmpty(t, vocab)
	assert.Contains(t, vocab, "fiets")
	assert.NotContains(t, vocab, "stroopwafel") // 11 runes, outside range
}

func TestVocabularyFallbackOnTransportError(t *testing.T) {
	source := New(Options{
		URL:        "http://127.0.0.1:1/wordlist.txt",
		MinWordLen: 4,
		MaxWordLen: 8,
	}, wordcache.NewMemStore(), nil)

	vocab, err := source.Vocabulary(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, vocab)
}

func TestVocabularyCorruptCacheIsRebuilt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.json")

	// Seed a valid cache with stale words, then corrupt it.
	store := wordcache.NewFileStore(path)
	require.NoError(t, store.Rebuild([]string{"oudwoord", "stale"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[len(data)/2] ^= 0xff
	require.NoError(t, os.WriteFile(path, data, 0o644))

	hits := 0
	server := wordlistServer(t, "fiets\ntulp\nkaas\n", &hits)

	source := New(Options{URL: server.URL, MinWordLen: 4, MaxWordLen: 8},
		wordcache.NewFileStore(path), nil)

	vocab, err := source.Vocabulary(context.Background())
	require.NoError(t, err)

	// The corrupt cache was discarded and a fresh fetch happened; the
	// result reflects fresh data, not the stale words.
	assert.Equal(t, 1, hits)
	assert.Equal(t, []string{"fiets", "kaas", "tulp"}, vocab)
	assert.NotContains(t, vocab, "oudwoord")

	// The rebuilt cache verifies clean.
	assert.NoError(t, wordcache.NewFileStore(path).Verify())
}

// lockedStore reports corruption but refuses to be discarded, as on a
// read-only filesystem.
type lockedStore struct {
	*wordcache.MemStore
	discards int
}

func (s *lockedStore) Exists() bool {
	return true
}

func (s *lockedStore) Verify() error {
	return wachterrors.NewCacheError(wachterrors.CodeCacheCorruption, "checksum mismatch", nil)
}

func (s *lockedStore) Discard() error {
	s.discards++
	return fmt.Errorf("read-only file system")
}

func TestVocabularyFailedDiscardStillFetches(t *testing.T) {
	// A corrupt cache that cannot be removed must not block the fetch
	// leg of the fallback chain.
	hits := 0
	server := wordlistServer(t, "fiets\ntulp\nkaas\n", &hits)

	store := &lockedStore{MemStore: wordcache.NewMemStore()}
	source := New(Options{URL: server.URL, MinWordLen: 4, MaxWordLen: 8}, store, nil)

	vocab, err := source.Vocabulary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, store.discards)
	assert.Equal(t, 1, hits)
	assert.Equal(t, []string{"fiets", "kaas", "tulp"}, vocab)
}

func TestVocabularyValidCacheSkipsFetch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.json")

	store := wordcache.NewFileStore(path)
	require.NoError(t, store.Rebuild([]string{"fiets", "tulp", "kaas"}))

	hits := 0
	server := wordlistServer(t, "nietgebruikt\n", &hits)

	source := New(Options{URL: server.URL, MinWordLen: 4, MaxWordLen: 8},
		wordcache.NewFileStore(path), nil)

	vocab, err := source.Vocabulary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"fiets", "kaas", "tulp"}, vocab)
	assert.Equal(t, 0, hits)
}

func TestFilterAlphabetic(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "letters only",
			lines: []string{"fiets", "tulp"},
			want:  []string{"fiets", "tulp"},
		},
		{
			name:  "rejects apostrophes digits and empties",
			lines: []string{"a'tje", "x123", "", "  ", "kaas"},
			want:  []string{"kaas"},
		},
		{
			name:  "keeps accented letters",
			lines: []string{"café", "reünie"},
			want:  []string{"café", "reünie"},
		},
		{
			name:  "trims surrounding whitespace",
			lines: []string{" fiets \r"},
			want:  []string{"fiets"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterAlphabetic(tt.lines))
		})
	}
}

func TestWithinLengthRange(t *testing.T) {
	words := []string{"zo", "kaas", "windmolen", "café"}

	assert.Equal(t, []string{"kaas", "café"}, WithinLengthRange(words, 4, 8))
	assert.Equal(t, []string{"zo"}, WithinLengthRange(words, 1, 2))
	assert.Empty(t, WithinLengthRange(words, 20, 30))
}
