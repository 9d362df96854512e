package wordcache

import (
	"sort"
	"unicode/utf8"
)

// MemStore is an in-memory Store. It backs --no-cache runs and tests.
type MemStore struct {
	entries map[string]int
	touched bool
}

var _ Store = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string]int)}
}

// Exists reports whether the store has ever been written to.
func (ms *MemStore) Exists() bool {
	return ms.touched
}

// Verify always succeeds: memory cannot go stale within a process.
func (ms *MemStore) Verify() error {
	return nil
}

// Insert adds a word. Duplicates are a no-op.
func (ms *MemStore) Insert(word string) error {
	ms.touched = true
	ms.entries[word] = utf8.RuneCountInString(word)
	return nil
}

// WordsInRange returns stored words with length in [minLen, maxLen].
func (ms *MemStore) WordsInRange(minLen, maxLen int) ([]string, error) {
	var words []string
	for word, length := range ms.entries {
		if length >= minLen && length <= maxLen {
			words = append(words, word)
		}
	}
	sort.Strings(words)
	return words, nil
}

// Rebuild replaces the store contents.
func (ms *MemStore) Rebuild(words []string) error {
	ms.entries = make(map[string]int, len(words))
	for _, word := range words {
		ms.entries[word] = utf8.RuneCountInString(word)
	}
	ms.touched = true
	return nil
}

// Discard clears the store.
func (ms *MemStore) Discard() error {
	ms.entries = make(map[string]int)
	ms.touched = false
	return nil
}

// Len returns the number of stored words.
func (ms *MemStore) Len() int {
	return len(ms.entries)
}
