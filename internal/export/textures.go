package export

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jchantrell/hogtool/internal/ogf"
	"github.com/jchantrell/hogtool/internal/source"
)

// ErrOutputNotFound is returned when the export directory does not exist
var ErrOutputNotFound = errors.New("output directory not found")

// Exporter writes decoded textures to disk as PNG files
type Exporter struct {
	outputDir string
}

// ProgressCallback is called after each texture is written
type ProgressCallback func(description string)

// NewExporter creates an exporter for an existing output directory
func NewExporter(outputDir string) (*Exporter, error) {
	if !source.DirExists(outputDir) {
		return nil, fmt.Errorf("%s: %w", outputDir, ErrOutputNotFound)
	}
	return &Exporter{outputDir: outputDir}, nil
}

// WriteTexture writes every mip level of tex and returns the files created
func (e *Exporter) WriteTexture(tex *ogf.Texture) ([]string, error) {
	paths := make([]string, 0, len(tex.Mips))
	for _, mip := range tex.Mips {
		outputPath := filepath.Join(e.outputDir, TextureFileName(tex, mip))
		if err := WritePNG(mip.Image, outputPath); err != nil {
			return paths, fmt.Errorf("writing mip level %d of %s: %w", mip.Level, tex.Name, err)
		}
		paths = append(paths, outputPath)

		slog.Debug("Wrote mip level", "texture", tex.Name, "level", mip.Level, "output", outputPath)
	}
	return paths, nil
}

// ExportTextures writes every texture in order. The first write failure stops
// the export.
func (e *Exporter) ExportTextures(textures []*ogf.Texture, progressCallback ProgressCallback) (int, error) {
	written := 0
	for _, tex := range textures {
		paths, err := e.WriteTexture(tex)
		written += len(paths)
		if err != nil {
			return written, err
		}
		if progressCallback != nil {
			progressCallback(tex.Name)
		}
	}
	return written, nil
}
