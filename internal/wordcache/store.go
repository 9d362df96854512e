// Package wordcache provides the persistent word store backing the word
// source. The store maps each word to its length and supports integrity
// verification with full delete-and-rebuild recovery.
//
// The store is a single-writer, single-reader resource per process. No
// locking is attempted against concurrent invocations; a torn write by a
// parallel run surfaces as a verification failure and is repaired by
// rebuild.
package wordcache

// Store is the abstract word store. Implementations must keep Insert
// idempotent: inserting a word that is already present is a no-op, not an
// error.
type Store interface {
	// Exists reports whether the store holds any persisted state.
	Exists() bool

	// Verify checks structural integrity. A nil return means the store
	// is usable; a cache-corruption error means it must be discarded and
	// rebuilt. Verify does not modify the store: calling it twice
	// without intervening writes yields the same result.
	Verify() error

	// Insert adds a word. Duplicate inserts are ignored.
	Insert(word string) error

	// WordsInRange returns all stored words whose length lies within
	// [minLen, maxLen], in deterministic order.
	WordsInRange(minLen, maxLen int) ([]string, error)

	// Rebuild replaces the entire store contents with the given words.
	Rebuild(words []string) error

	// Discard removes all persisted state. Discarding an absent store is
	// not an error.
	Discard() error

	// Len returns the number of stored words.
	Len() int
}
