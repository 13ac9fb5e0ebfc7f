package binutil

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTruncated is returned when a read needs more bytes than remain in the buffer
	ErrTruncated = errors.New("truncated data")

	// ErrNameTooLong is returned when a string does not fit its fixed-width field
	ErrNameTooLong = errors.New("name too long")

	// ErrNotASCII is returned when a string to be written contains non-ASCII characters
	ErrNotASCII = errors.New("name is not ASCII")
)

// Cursor is a sequential little-endian reader over an in-memory buffer
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor creates a cursor positioned at the start of data
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current offset into the buffer
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the total size of the buffer
func (c *Cursor) Len() int {
	return len(c.data)
}

// Remaining returns the number of unread bytes
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// ReadBytes returns a copy of the next n bytes and advances the cursor
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	raw, err := c.next(n)
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, raw)
	return out, nil
}

// Skip advances the cursor by n bytes without copying them
func (c *Cursor) Skip(n int) error {
	_, err := c.next(n)
	return err
}

// ReadU8 reads a single byte
func (c *Cursor) ReadU8() (uint8, error) {
	raw, err := c.next(1)
	if err != nil {
		return 0, err
	}
	return raw[0], nil
}

// ReadU16 reads a little-endian 16-bit unsigned integer
func (c *Cursor) ReadU16() (uint16, error) {
	raw, err := c.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(raw), nil
}

// ReadU32 reads a little-endian 32-bit unsigned integer
func (c *Cursor) ReadU32() (uint32, error) {
	raw, err := c.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(raw), nil
}

// ReadFixedString reads an n-byte field and decodes it as ASCII.
// Non-ASCII bytes are dropped, trailing NULs and surrounding whitespace are trimmed.
func (c *Cursor) ReadFixedString(n int) (string, error) {
	raw, err := c.next(n)
	if err != nil {
		return "", err
	}
	return DecodeASCII(raw), nil
}

// ReadCString reads bytes up to a NUL terminator. The terminator is consumed
// but not returned.
func (c *Cursor) ReadCString() (string, error) {
	start := c.pos
	for i := start; i < len(c.data); i++ {
		if c.data[i] == 0 {
			c.pos = i + 1
			return DecodeASCII(c.data[start:i]), nil
		}
	}
	return "", fmt.Errorf("unterminated string at offset %d: %w", start, ErrTruncated)
}

func (c *Cursor) next(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read length %d at offset %d", n, c.pos)
	}
	if n > c.Remaining() {
		return nil, fmt.Errorf("need %d bytes at offset %d, have %d: %w", n, c.pos, c.Remaining(), ErrTruncated)
	}

	raw := c.data[c.pos : c.pos+n]
	c.pos += n
	return raw, nil
}

// DecodeASCII converts raw bytes to a string the way fixed-width names are
// stored on disk.
func DecodeASCII(raw []byte) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, b := range raw {
		if b < 0x80 {
			sb.WriteByte(b)
		}
	}

	return strings.TrimSpace(strings.TrimRight(sb.String(), "\x00"))
}
