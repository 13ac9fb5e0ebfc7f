package hog

import (
	"errors"
	"strings"
)

const (
	// Tag is the magic value at the start of every HOG archive
	Tag = "HOG2"

	// NameSize is the width of the name field in a directory record
	NameSize = 36

	// ReservedSize is the width of the reserved region in the header
	ReservedSize = 56

	// HeaderSize is tag + count + data offset + reserved
	HeaderSize = 4 + 4 + 4 + ReservedSize

	// DirEntrySize is name + flags + size + timestamp
	DirEntrySize = NameSize + 4 + 4 + 4

	// ReservedFill is written into the reserved region when encoding
	ReservedFill = 0xFF

	// Extension marks files that must parse as archives
	Extension = ".hog"
)

var (
	// ErrInvalidMagic is returned when a file that must be an archive lacks the HOG2 tag
	ErrInvalidMagic = errors.New("invalid magic")

	// ErrSizeMismatch is returned when an entry's declared size disagrees with its content
	ErrSizeMismatch = errors.New("entry size does not match content")
)

// Header is the fixed archive preamble
type Header struct {
	Tag        [4]byte
	Count      uint32
	DataOffset uint32 // recorded on disk, never used for seeking
	Reserved   [ReservedSize]byte
}

// Entry is one file bundled in an archive
type Entry struct {
	Name      string // original case
	Flags     uint32
	Size      uint32
	Timestamp uint32
	Origin    string // archive or file the entry was read from
	Content   []byte
}

// Key returns the case-insensitive lookup key for the entry
func (e *Entry) Key() string {
	return Key(e.Name)
}

// Key normalizes a name for case-insensitive lookup
func Key(name string) string {
	return strings.ToLower(name)
}

// Kind distinguishes a parsed archive from a plain file taken as-is
type Kind int

const (
	KindArchive Kind = iota
	KindPassthrough
)

func (k Kind) String() string {
	switch k {
	case KindArchive:
		return "archive"
	case KindPassthrough:
		return "passthrough"
	default:
		return "unknown"
	}
}

// Result is the outcome of decoding one input file
type Result struct {
	Kind   Kind
	Origin string
	Header *Header // nil for passthrough results
	// Entries are in directory order; a passthrough result has exactly one
	Entries []Entry
}
