package hog

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jchantrell/hogtool/internal/binutil"
)

// Decode parses data as a HOG archive.
//
// When the tag is not HOG2 and strict is false, the whole buffer becomes a
// single passthrough entry named originName. With strict set the same input
// fails with ErrInvalidMagic. Truncation anywhere fails the whole file.
func Decode(data []byte, originName string, strict bool) (*Result, error) {
	c := binutil.NewCursor(data)

	var h Header
	tag, err := c.ReadBytes(len(Tag))
	if err != nil || string(tag) != Tag {
		if !strict {
			return passthrough(data, originName), nil
		}
		return nil, fmt.Errorf("%s: expected tag %q, got %q: %w", originName, Tag, tag, ErrInvalidMagic)
	}
	copy(h.Tag[:], tag)

	if h.Count, err = c.ReadU32(); err != nil {
		return nil, fmt.Errorf("reading entry count: %w", err)
	}
	if h.DataOffset, err = c.ReadU32(); err != nil {
		return nil, fmt.Errorf("reading data offset: %w", err)
	}
	reserved, err := c.ReadBytes(ReservedSize)
	if err != nil {
		return nil, fmt.Errorf("reading reserved header bytes: %w", err)
	}
	copy(h.Reserved[:], reserved)

	// Guard the allocation below against a garbage count
	if need := int64(h.Count) * DirEntrySize; need > int64(c.Remaining()) {
		return nil, fmt.Errorf("directory of %d entries needs %d bytes, have %d: %w",
			h.Count, need, c.Remaining(), binutil.ErrTruncated)
	}

	slog.Debug("Reading archive", "origin", originName, "entries", h.Count, "data_offset", h.DataOffset)

	// The whole directory precedes the content region
	entries := make([]Entry, h.Count)
	for i := range entries {
		e := &entries[i]
		if e.Name, err = c.ReadFixedString(NameSize); err != nil {
			return nil, fmt.Errorf("reading name of entry %d: %w", i, err)
		}
		if e.Flags, err = c.ReadU32(); err != nil {
			return nil, fmt.Errorf("reading flags of entry %d (%s): %w", i, e.Name, err)
		}
		if e.Size, err = c.ReadU32(); err != nil {
			return nil, fmt.Errorf("reading size of entry %d (%s): %w", i, e.Name, err)
		}
		if e.Timestamp, err = c.ReadU32(); err != nil {
			return nil, fmt.Errorf("reading timestamp of entry %d (%s): %w", i, e.Name, err)
		}
		e.Origin = originName
	}

	for i := range entries {
		e := &entries[i]
		if e.Content, err = c.ReadBytes(int(e.Size)); err != nil {
			return nil, fmt.Errorf("reading content of entry %d (%s): %w", i, e.Name, err)
		}
	}

	if c.Remaining() > 0 {
		slog.Debug("Trailing bytes after archive content", "origin", originName, "bytes", c.Remaining())
	}

	return &Result{
		Kind:    KindArchive,
		Origin:  originName,
		Header:  &h,
		Entries: entries,
	}, nil
}

// DecodeFile decodes data read from path. Files with the .hog extension must
// be archives, anything else may be taken as a passthrough entry.
func DecodeFile(path string, data []byte) (*Result, error) {
	return Decode(data, filepath.Base(path), HasArchiveExtension(path))
}

// HasArchiveExtension reports whether path ends in .hog, ignoring case
func HasArchiveExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}

func passthrough(data []byte, name string) *Result {
	return &Result{
		Kind:   KindPassthrough,
		Origin: name,
		Entries: []Entry{{
			Name:    name,
			Size:    uint32(len(data)),
			Origin:  name,
			Content: data,
		}},
	}
}
