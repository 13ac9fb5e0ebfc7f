package hog

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/jchantrell/hogtool/internal/binutil"
)

// Encode serializes entries into a HOG archive.
//
// Entries are written sorted by lowercase name so the output does not depend
// on insertion order. The input slice is not modified. Any entry that cannot
// be written aborts the whole encode.
func Encode(entries []Entry) ([]byte, error) {
	sorted := SortedByKey(entries)

	total := HeaderSize + DirEntrySize*len(sorted)
	dataOffset := total
	for i := range sorted {
		e := &sorted[i]
		if int(e.Size) != len(e.Content) {
			return nil, fmt.Errorf("entry %s declares %d bytes, has %d: %w", e.Name, e.Size, len(e.Content), ErrSizeMismatch)
		}
		total += len(e.Content)
	}

	w := binutil.NewWriter(total)
	w.WriteBytes([]byte(Tag))
	w.WriteU32(uint32(len(sorted)))
	w.WriteU32(uint32(dataOffset))
	w.Fill(ReservedFill, ReservedSize)

	for i := range sorted {
		e := &sorted[i]
		if err := w.WriteFixedString(e.Name, NameSize); err != nil {
			return nil, fmt.Errorf("writing directory entry %d: %w", i, err)
		}
		w.WriteU32(e.Flags)
		w.WriteU32(e.Size)
		w.WriteU32(e.Timestamp)
	}

	for i := range sorted {
		w.WriteBytes(sorted[i].Content)
	}

	slog.Debug("Encoded archive", "entries", len(sorted), "bytes", w.Len())

	return w.Bytes(), nil
}

// SortedByKey returns a copy of entries ordered by lowercase name
func SortedByKey(entries []Entry) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key() < sorted[j].Key()
	})
	return sorted
}
