package hog

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jchantrell/hogtool/internal/binutil"
)

func entry(name, content string) Entry {
	return Entry{Name: name, Size: uint32(len(content)), Content: []byte(content)}
}

func TestEncodeEmptyArchive(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	require.Len(t, data, HeaderSize)
	assert.Equal(t, 68, len(data))

	assert.Equal(t, Tag, string(data[:4]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(data[4:]))
	assert.Equal(t, uint32(68), binary.LittleEndian.Uint32(data[8:]))
	for _, b := range data[12:68] {
		require.Equal(t, byte(ReservedFill), b)
	}

	res, err := Decode(data, "empty.hog", true)
	require.NoError(t, err)
	assert.Equal(t, KindArchive, res.Kind)
	assert.Empty(t, res.Entries)
}

func TestEncodeOrdersByLowercaseName(t *testing.T) {
	entries := []Entry{
		entry("readme", "1234"),
		entry("A.TXT", "abc"),
	}
	entries[0].Flags = 7
	entries[0].Timestamp = 0x5F5E1000

	data, err := Encode(entries)
	require.NoError(t, err)

	require.Len(t, data, HeaderSize+2*DirEntrySize+7)
	assert.Equal(t, uint32(HeaderSize+2*DirEntrySize), binary.LittleEndian.Uint32(data[8:]))

	firstName := string(data[HeaderSize : HeaderSize+5])
	assert.Equal(t, "A.TXT", firstName)
	assert.Equal(t, "abc1234", string(data[HeaderSize+2*DirEntrySize:]))

	res, err := Decode(data, "out.hog", true)
	require.NoError(t, err)
	require.Len(t, res.Entries, 2)

	assert.Equal(t, "A.TXT", res.Entries[0].Name)
	assert.Equal(t, []byte("abc"), res.Entries[0].Content)
	assert.Equal(t, uint32(3), res.Entries[0].Size)

	assert.Equal(t, "readme", res.Entries[1].Name)
	assert.Equal(t, []byte("1234"), res.Entries[1].Content)
	assert.Equal(t, uint32(7), res.Entries[1].Flags)
	assert.Equal(t, uint32(0x5F5E1000), res.Entries[1].Timestamp)
	assert.Equal(t, "out.hog", res.Entries[1].Origin)

	// input slice untouched
	assert.Equal(t, "readme", entries[0].Name)
}

func TestRoundTripIndependentOfInsertionOrder(t *testing.T) {
	a := []Entry{entry("zeta.dat", "z"), entry("Alpha.ogf", "aaaa"), entry("mid.TXT", "")}
	b := []Entry{a[2], a[0], a[1]}

	encA, err := Encode(a)
	require.NoError(t, err)
	encB, err := Encode(b)
	require.NoError(t, err)
	assert.Equal(t, encA, encB)

	res, err := Decode(encA, "x.hog", true)
	require.NoError(t, err)
	names := []string{}
	for _, e := range res.Entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Alpha.ogf", "mid.TXT", "zeta.dat"}, names)
	assert.Empty(t, res.Entries[1].Content)
}

func TestNamePadding(t *testing.T) {
	full := strings.Repeat("N", NameSize)

	data, err := Encode([]Entry{entry(full, "x"), entry("short", "y")})
	require.NoError(t, err)

	res, err := Decode(data, "names.hog", true)
	require.NoError(t, err)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, full, res.Entries[0].Name)
	assert.Equal(t, "short", res.Entries[1].Name)

	_, err = Encode([]Entry{entry(full+"X", "x")})
	require.ErrorIs(t, err, binutil.ErrNameTooLong)
}

func TestEncodeSizeMismatch(t *testing.T) {
	e := entry("a", "abc")
	e.Size = 4
	_, err := Encode([]Entry{e})
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestDecodePassthrough(t *testing.T) {
	data := []byte("just some text")

	res, err := Decode(data, "notes.txt", false)
	require.NoError(t, err)
	assert.Equal(t, KindPassthrough, res.Kind)
	assert.Nil(t, res.Header)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "notes.txt", res.Entries[0].Name)
	assert.Equal(t, uint32(len(data)), res.Entries[0].Size)
	assert.Equal(t, data, res.Entries[0].Content)

	res, err = Decode([]byte{1}, "tiny.bin", false)
	require.NoError(t, err)
	assert.Equal(t, KindPassthrough, res.Kind)
}

func TestDecodeFile(t *testing.T) {
	_, err := DecodeFile("/data/EXTRA.HOG", []byte("not an archive"))
	require.ErrorIs(t, err, ErrInvalidMagic)

	res, err := DecodeFile("/data/level1.d3l", []byte("level"))
	require.NoError(t, err)
	assert.Equal(t, "level1.d3l", res.Entries[0].Name)
	assert.Equal(t, "level1.d3l", res.Origin)

	assert.True(t, HasArchiveExtension("a.Hog"))
	assert.False(t, HasArchiveExtension("a.hog.txt"))
}

func TestDecodeTruncated(t *testing.T) {
	data, err := Encode([]Entry{entry("one", "12345"), entry("two", "678")})
	require.NoError(t, err)

	cuts := []int{
		6,                               // inside count
		10,                              // inside data offset
		40,                              // inside reserved
		HeaderSize + 10,                 // inside first name
		HeaderSize + NameSize + 2,       // inside flags
		HeaderSize + 2*DirEntrySize - 1, // inside last timestamp
		len(data) - 1,                   // inside last content
	}
	for _, n := range cuts {
		res, err := Decode(data[:n], "cut.hog", true)
		require.ErrorIs(t, err, binutil.ErrTruncated, "cut at %d", n)
		assert.Nil(t, res)
	}
}

func TestDecodeRejectsHugeCount(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	binary.LittleEndian.PutUint32(data[4:], 0xFFFFFFFF)

	_, err = Decode(data, "huge.hog", true)
	require.ErrorIs(t, err, binutil.ErrTruncated)
}

func TestDecodeKeepsHeader(t *testing.T) {
	data, err := Encode([]Entry{entry("a", "b")})
	require.NoError(t, err)

	res, err := Decode(data, "h.hog", true)
	require.NoError(t, err)
	require.NotNil(t, res.Header)
	assert.Equal(t, uint32(1), res.Header.Count)
	assert.Equal(t, uint32(HeaderSize+DirEntrySize), res.Header.DataOffset)
	assert.Equal(t, byte(ReservedFill), res.Header.Reserved[55])
}

func TestMergeLastWriteWins(t *testing.T) {
	first := &Result{Entries: []Entry{entry("A.TXT", "old"), entry("b", "bee")}}
	second := &Result{Entries: []Entry{entry("a.txt", "new!"), entry("c", "sea")}}

	merged := Merge(first, nil, second)
	require.Len(t, merged, 3)
	assert.Equal(t, "a.txt", merged[0].Name)
	assert.Equal(t, []byte("new!"), merged[0].Content)
	assert.Equal(t, "b", merged[1].Name)
	assert.Equal(t, "c", merged[2].Name)

	reversed := Merge(second, first)
	assert.Equal(t, []byte("old"), reversed[0].Content)
}
