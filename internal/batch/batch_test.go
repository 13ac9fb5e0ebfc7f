package batch

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jchantrell/hogtool/internal/hog"
	"github.com/jchantrell/hogtool/internal/ogf"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestDecodeArchivesKeepsInputOrder(t *testing.T) {
	dir := t.TempDir()

	var paths []string
	for i := 0; i < 20; i++ {
		name := string(rune('a'+i)) + ".hog"
		data, err := hog.Encode([]hog.Entry{{Name: name + ".txt", Size: 1, Content: []byte{byte(i)}}})
		require.NoError(t, err)
		paths = append(paths, writeFile(t, dir, name, data))
	}
	paths = append(paths, writeFile(t, dir, "broken.HOG", []byte("nope")))
	paths = append(paths, writeFile(t, dir, "loose.txt", []byte("loose")))
	paths = append(paths, filepath.Join(dir, "missing.hog"))

	var calls atomic.Int32
	results, err := DecodeArchives(context.Background(), paths, 3, func(string) { calls.Add(1) })
	require.NoError(t, err)
	require.Len(t, results, len(paths))
	assert.Equal(t, int32(len(paths)), calls.Load())

	for i := 0; i < 20; i++ {
		require.NoError(t, results[i].Err)
		assert.Equal(t, paths[i], results[i].Path)
		assert.Equal(t, []byte{byte(i)}, results[i].Result.Entries[0].Content)
	}

	assert.ErrorIs(t, results[20].Err, hog.ErrInvalidMagic)
	require.NoError(t, results[21].Err)
	assert.Equal(t, hog.KindPassthrough, results[21].Result.Kind)
	assert.ErrorIs(t, results[22].Err, os.ErrNotExist)
}

func TestDecodeTextures(t *testing.T) {
	dir := t.TempDir()

	tex := []byte{0, 0, 'y', 'x', 0, 1}
	tex = append(tex, make([]byte, 9)...)
	tex = binary.LittleEndian.AppendUint16(tex, 1)
	tex = binary.LittleEndian.AppendUint16(tex, 1)
	tex = append(tex, 0, 0, 1, 0x00, 0xF0)

	paths := []string{
		writeFile(t, dir, "good.ogf", tex),
		writeFile(t, dir, "bad.ogf", []byte{1, 2, 3, 4}),
	}

	results, err := DecodeTextures(context.Background(), paths, 0, nil)
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "x", results[0].Texture.Name)
	assert.ErrorIs(t, results[1].Err, ogf.ErrUnsupportedTag)
}

func TestDecodeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DecodeArchives(ctx, []string{"a", "b"}, 1, nil)
	require.ErrorIs(t, err, context.Canceled)
}
