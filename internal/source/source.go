// Package source turns command line inputs into the list of files to decode.
package source

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TextureExtension is the file extension picked up when expanding directories
const TextureExtension = ".ogf"

// FileExists reports whether path exists and is a regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirExists reports whether path exists and is a directory
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Resolve returns path if it exists, otherwise the same path with a lowercased
// file name. Game data lists often disagree with the case on disk.
func Resolve(path string) (string, bool) {
	if FileExists(path) {
		return path, true
	}

	lower := filepath.Join(filepath.Dir(path), strings.ToLower(filepath.Base(path)))
	if FileExists(lower) {
		return lower, true
	}

	return "", false
}

// ReadListFile reads one input path per line. Blank lines are skipped and
// paths that cannot be resolved are dropped with a warning.
func ReadListFile(listPath string) ([]string, error) {
	f, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("opening input list: %w", err)
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		path, ok := Resolve(line)
		if !ok {
			slog.Warn("Skipping file not found", "path", line, "list", listPath)
			continue
		}
		paths = append(paths, path)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input list: %w", err)
	}

	return paths, nil
}

// ExpandTextures replaces each directory in inputs with the texture files it
// directly contains, sorted by name. Plain files are kept as given.
func ExpandTextures(inputs []string) ([]string, error) {
	var paths []string
	for _, input := range inputs {
		switch {
		case DirExists(input):
			found, err := texturesIn(input)
			if err != nil {
				return nil, err
			}
			slog.Debug("Expanded directory", "path", input, "textures", len(found))
			paths = append(paths, found...)
		case FileExists(input):
			paths = append(paths, input)
		default:
			slog.Warn("Skipping input not found", "path", input)
		}
	}
	return paths, nil
}

func texturesIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.EqualFold(filepath.Ext(e.Name()), TextureExtension) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	return paths, nil
}
