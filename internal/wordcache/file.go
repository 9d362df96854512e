package wordcache

import (
	"encoding/json"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"
	"sort"
	"unicode"
	"unicode/utf8"

	wachterrors "github.com/mbos/woordwacht/internal/errors"
)

// File format constants.
const (
	// Magic identifies a woordwacht cache file.
	Magic = "WWC1"

	// FormatVersion is the current cache file format version.
	FormatVersion = 1
)

// fileImage is the on-disk representation: a small header plus the
// word→length entry table. Checksum is a CRC32 over the canonical entry
// serialization, so any mutation of the table invalidates the header.
type fileImage struct {
	Magic    string         `json:"magic"`
	Version  int            `json:"version"`
	Checksum uint32         `json:"checksum"`
	Entries  map[string]int `json:"entries"`
}

// FileStore is a Store persisted as a single checksummed JSON file.
type FileStore struct {
	path    string
	entries map[string]int
	loaded  bool
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a file store at the given path. The file is not
// touched until the first read or write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the location of the backing file.
func (fs *FileStore) Path() string {
	return fs.path
}

// Exists reports whether the backing file is present.
func (fs *FileStore) Exists() bool {
	info, err := os.Stat(fs.path)
	return err == nil && !info.IsDir()
}

// Verify checks magic, version, checksum, and per-entry consistency.
// It never modifies the file, so repeated calls agree.
func (fs *FileStore) Verify() error {
	img, err := fs.readImage()
	if err != nil {
		return err
	}

	if err := verifyImage(img); err != nil {
		return err
	}

	fs.entries = img.Entries
	fs.loaded = true
	return nil
}

// Insert adds a word and persists the store. Duplicates are a no-op.
func (fs *FileStore) Insert(word string) error {
	if err := fs.load(); err != nil {
		return err
	}

	length := utf8.RuneCountInString(word)
	if existing, ok := fs.entries[word]; ok {
		if existing != length {
			// Cannot happen through this API; tolerate by rewriting.
			fs.entries[word] = length
			return fs.save()
		}
		return nil
	}

	fs.entries[word] = length
	return fs.save()
}

// WordsInRange returns stored words with length in [minLen, maxLen],
// sorted for deterministic output.
func (fs *FileStore) WordsInRange(minLen, maxLen int) ([]string, error) {
	if err := fs.load(); err != nil {
		return nil, err
	}

	var words []string
	for word, length := range fs.entries {
		if length >= minLen && length <= maxLen {
			words = append(words, word)
		}
	}
	sort.Strings(words)
	return words, nil
}

// Rebuild replaces the store contents with the given words.
func (fs *FileStore) Rebuild(words []string) error {
	entries := make(map[string]int, len(words))
	for _, word := range words {
		entries[word] = utf8.RuneCountInString(word)
	}

	fs.entries = entries
	fs.loaded = true
	return fs.save()
}

// Discard removes the backing file.
func (fs *FileStore) Discard() error {
	fs.entries = nil
	fs.loaded = false

	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return wachterrors.NewCacheError("cache_discard", "failed to remove cache file", err)
	}
	return nil
}

// Len returns the number of stored words, 0 when the store is unreadable.
func (fs *FileStore) Len() int {
	if err := fs.load(); err != nil {
		return 0
	}
	return len(fs.entries)
}

func (fs *FileStore) load() error {
	if fs.loaded {
		return nil
	}

	if !fs.Exists() {
		fs.entries = make(map[string]int)
		fs.loaded = true
		return nil
	}

	img, err := fs.readImage()
	if err != nil {
		return err
	}
	if err := verifyImage(img); err != nil {
		return err
	}

	fs.entries = img.Entries
	fs.loaded = true
	return nil
}

func (fs *FileStore) readImage() (*fileImage, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		return nil, wachterrors.NewCacheError("cache_read", "failed to read cache file", err)
	}

	var img fileImage
	if err := json.Unmarshal(data, &img); err != nil {
		return nil, corruption(fmt.Sprintf("cache file is not valid JSON: %v", err))
	}
	return &img, nil
}

// save writes the store through a temp file and rename so readers never
// observe a half-written table.
func (fs *FileStore) save() error {
	img := &fileImage{
		Magic:    Magic,
		Version:  FormatVersion,
		Checksum: checksumEntries(fs.entries),
		Entries:  fs.entries,
	}

	data, err := json.Marshal(img)
	if err != nil {
		return wachterrors.NewCacheError("cache_encode", "failed to encode cache file", err)
	}

	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return wachterrors.NewCacheError("cache_mkdir", "failed to create cache directory", err)
	}

	tmp, err := os.CreateTemp(dir, ".wordcache-*")
	if err != nil {
		return wachterrors.NewCacheError("cache_write", "failed to create temp cache file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return wachterrors.NewCacheError("cache_write", "failed to write cache file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return wachterrors.NewCacheError("cache_write", "failed to close cache file", err)
	}

	if err := os.Rename(tmpName, fs.path); err != nil {
		os.Remove(tmpName)
		return wachterrors.NewCacheError("cache_write", "failed to replace cache file", err)
	}
	return nil
}

func verifyImage(img *fileImage) error {
	if img.Magic != Magic {
		return corruption("bad magic: not a woordwacht cache file")
	}
	if img.Version != FormatVersion {
		return corruption(fmt.Sprintf("unsupported cache format version %d", img.Version))
	}
	if img.Entries == nil {
		return corruption("missing entry table")
	}
	if got := checksumEntries(img.Entries); got != img.Checksum {
		return corruption(fmt.Sprintf("checksum mismatch: header %08x, computed %08x", img.Checksum, got))
	}

	for word, length := range img.Entries {
		if length != utf8.RuneCountInString(word) {
			return corruption(fmt.Sprintf("entry %q stores length %d", word, length))
		}
		if !isAlphabetic(word) {
			return corruption(fmt.Sprintf("entry %q is not alphabetic", word))
		}
	}
	return nil
}

// checksumEntries computes a CRC32 over the sorted "word=length" lines so
// the digest is independent of map iteration order.
func checksumEntries(entries map[string]int) uint32 {
	words := make([]string, 0, len(entries))
	for word := range entries {
		words = append(words, word)
	}
	sort.Strings(words)

	h := crc32.NewIEEE()
	for _, word := range words {
		fmt.Fprintf(h, "%s=%d\n", word, entries[word])
	}
	return h.Sum32()
}

func isAlphabetic(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func corruption(detail string) error {
	return wachterrors.NewCacheError(wachterrors.CodeCacheCorruption, detail, nil)
}
