package binutil

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Writer mirrors Cursor for building little-endian buffers
type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates a writer with capacity preallocated for size bytes
func NewWriter(size int) *Writer {
	w := &Writer{}
	w.buf.Grow(size)
	return w
}

// Bytes returns the bytes written so far
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far
func (w *Writer) Len() int {
	return w.buf.Len()
}

func (w *Writer) WriteBytes(p []byte) {
	w.buf.Write(p)
}

func (w *Writer) WriteU8(v uint8) {
	w.buf.WriteByte(v)
}

func (w *Writer) WriteU16(v uint16) {
	w.buf.Write(binary.LittleEndian.AppendUint16(nil, v))
}

func (w *Writer) WriteU32(v uint32) {
	w.buf.Write(binary.LittleEndian.AppendUint32(nil, v))
}

// Fill writes n copies of b
func (w *Writer) Fill(b byte, n int) {
	w.buf.Write(bytes.Repeat([]byte{b}, n))
}

// WriteFixedString writes s right-padded with zero bytes to exactly n bytes
func (w *Writer) WriteFixedString(s string, n int) error {
	field, err := EncodeFixedString(s, n)
	if err != nil {
		return err
	}
	w.buf.Write(field)
	return nil
}

// EncodeFixedString returns s as an n-byte zero-padded ASCII field
func EncodeFixedString(s string, n int) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return nil, fmt.Errorf("%q: %w", s, ErrNotASCII)
		}
	}
	if len(s) > n {
		return nil, fmt.Errorf("%q is %d bytes, field holds %d: %w", s, len(s), n, ErrNameTooLong)
	}

	field := make([]byte, n)
	copy(field, s)
	return field, nil
}
