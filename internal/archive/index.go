package archive

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/jchantrell/hogtool/internal/hog"
	"github.com/jchantrell/hogtool/internal/utils"
)

// ErrDirectoryNotFound is returned when the extraction target is missing or not a directory
var ErrDirectoryNotFound = errors.New("directory not found")

// Index is a case-insensitive collection of archive entries.
// Inserting a name that already exists replaces the previous entry.
type Index struct {
	mu      sync.RWMutex
	entries map[string]hog.Entry
}

// Row is one line of an index listing
type Row struct {
	Name      string
	Size      uint32
	Flags     uint32
	Timestamp uint32
	Origin    string
}

// HumanSize formats the row size with binary prefixes
func (r Row) HumanSize() string {
	return utils.FormatSize(int64(r.Size))
}

// New creates an empty index
func New() *Index {
	return &Index{entries: make(map[string]hog.Entry)}
}

// Insert adds e, replacing any entry with the same lowercase name
func (idx *Index) Insert(e hog.Entry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	key := e.Key()
	if prev, exists := idx.entries[key]; exists {
		slog.Debug("Replacing entry", "name", e.Name, "previous_origin", prev.Origin, "origin", e.Origin)
	}
	idx.entries[key] = e
}

// InsertResult inserts every entry of a decoded file in directory order
func (idx *Index) InsertResult(r *hog.Result) {
	if r == nil {
		return
	}
	for _, e := range r.Entries {
		idx.Insert(e)
	}
}

// Merge inserts the entries of several decoded files in the order given
func (idx *Index) Merge(results ...*hog.Result) {
	for _, e := range hog.Merge(results...) {
		idx.Insert(e)
	}
}

// Get looks up an entry by name, ignoring case
func (idx *Index) Get(name string) (hog.Entry, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	e, ok := idx.entries[hog.Key(name)]
	return e, ok
}

// Len returns the number of distinct entries
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.entries)
}

// Entries returns a snapshot of all entries sorted by lowercase name
func (idx *Index) Entries() []hog.Entry {
	idx.mu.RLock()
	keys := make([]string, 0, len(idx.entries))
	for key := range idx.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]hog.Entry, len(keys))
	for i, key := range keys {
		entries[i] = idx.entries[key]
	}
	idx.mu.RUnlock()

	return entries
}

// List returns display rows sorted by lowercase name
func (idx *Index) List() []Row {
	entries := idx.Entries()
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{
			Name:      e.Name,
			Size:      e.Size,
			Flags:     e.Flags,
			Timestamp: e.Timestamp,
			Origin:    e.Origin,
		}
	}
	return rows
}

// Encode serializes the index as a HOG archive
func (idx *Index) Encode() ([]byte, error) {
	return hog.Encode(idx.Entries())
}

// ExtractAll writes every entry to dir under its lowercase name and returns
// the number of files written. The directory must already exist.
func (idx *Index) ExtractAll(dir string) (int, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", dir, ErrDirectoryNotFound)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%s is not a directory: %w", dir, ErrDirectoryNotFound)
	}

	written := 0
	for _, e := range idx.Entries() {
		outputPath := filepath.Join(dir, filepath.Base(e.Key()))
		if err := os.WriteFile(outputPath, e.Content, 0644); err != nil {
			return written, fmt.Errorf("writing file %s: %w", outputPath, err)
		}
		written++

		slog.Debug("Extracted file", "name", e.Key(), "output", outputPath)
	}

	return written, nil
}
