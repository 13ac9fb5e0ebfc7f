package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jchantrell/hogtool/internal/archive"
	"github.com/jchantrell/hogtool/internal/hog"
)

func TestPrintRows(t *testing.T) {
	var buf bytes.Buffer
	printRows(&buf, []archive.Row{
		{Name: "A.TXT", Size: 3, Flags: 1, Timestamp: 42, Origin: "d3.hog"},
		{Name: "readme", Size: 2048, Origin: "readme"},
	})

	out := buf.String()
	assert.Contains(t, out, "Found 2 entries (2.00KiB)")
	assert.Contains(t, out, "A.TXT")
	assert.Contains(t, out, "3.00B")
	assert.Contains(t, out, "2.00KiB")
	assert.Contains(t, out, "d3.hog")
}

func TestCombineCommand(t *testing.T) {
	dir := t.TempDir()

	first, err := hog.Encode([]hog.Entry{
		{Name: "A.TXT", Size: 3, Content: []byte("old")},
		{Name: "keep.dat", Size: 1, Content: []byte("k")},
	})
	require.NoError(t, err)
	firstPath := filepath.Join(dir, "first.hog")
	require.NoError(t, os.WriteFile(firstPath, first, 0644))

	loose := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(loose, []byte("new"), 0644))

	cfgPath := filepath.Join(dir, "hogtool.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("workers: 2\n"), 0644))

	out := filepath.Join(dir, "out.hog")
	rootCmd.SetArgs([]string{
		"combine", "-i", firstPath, "-i", loose, "-o", out,
		"--no-progress", "--log-level", "error", "--config", cfgPath,
	})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	res, err := hog.Decode(data, "out.hog", true)
	require.NoError(t, err)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, "a.txt", res.Entries[0].Name)
	assert.Equal(t, []byte("new"), res.Entries[0].Content)
	assert.Equal(t, "keep.dat", res.Entries[1].Name)
}
