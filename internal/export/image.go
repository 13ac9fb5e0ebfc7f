package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/jchantrell/hogtool/internal/ogf"
)

// TextureFileName names the PNG for one mip level: <stem>_<width>_<height>.png.
// Once levels stop shrinking the level number is appended so clamped 1x1
// levels do not share a file.
func TextureFileName(tex *ogf.Texture, mip ogf.Mip) string {
	base := filepath.Base(strings.ReplaceAll(tex.Name, "\\", "/"))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == "/" {
		stem = "texture"
	}
	if prev := mip.Level - 1; prev >= 0 && prev < len(tex.Mips) &&
		tex.Mips[prev].Width == mip.Width && tex.Mips[prev].Height == mip.Height {
		return fmt.Sprintf("%s_%d_%d_%d.png", stem, mip.Width, mip.Height, mip.Level)
	}
	return fmt.Sprintf("%s_%d_%d.png", stem, mip.Width, mip.Height)
}

// WritePNG encodes img to outputPath
func WritePNG(img image.Image, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", outputPath, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outputPath, err)
	}

	return nil
}
