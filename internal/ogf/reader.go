package ogf

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/jchantrell/hogtool/internal/binutil"
)

const (
	headerPadding = 9
	sizePadding   = 2
)

// Decode parses an OGF texture and expands every mip level to NRGBA.
//
// Levels halve in each dimension, never dropping below 1. Each level's run
// lengths must add up to exactly width*height pixels; a run of 0 counts as 1.
func Decode(data []byte) (*Texture, error) {
	c := binutil.NewCursor(data)

	raw, err := c.ReadBytes(3)
	if err != nil {
		return nil, fmt.Errorf("reading tag: %w", err)
	}

	var tex Texture
	switch [3]byte(raw) {
	case tag1555:
		tex.Format = Format1555
	case tag4444:
		tex.Format = Format4444
	default:
		return nil, fmt.Errorf("tag % x: %w", raw, ErrUnsupportedTag)
	}

	if tex.Name, err = c.ReadCString(); err != nil {
		return nil, fmt.Errorf("reading texture name: %w", err)
	}

	levels, err := c.ReadU8()
	if err != nil {
		return nil, fmt.Errorf("reading mip level count: %w", err)
	}
	tex.Levels = int(levels)

	if err := c.Skip(headerPadding); err != nil {
		return nil, fmt.Errorf("reading header padding: %w", err)
	}

	w, err := c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("reading width: %w", err)
	}
	h, err := c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("reading height: %w", err)
	}
	tex.Width, tex.Height = int(w), int(h)

	if err := c.Skip(sizePadding); err != nil {
		return nil, fmt.Errorf("reading size padding: %w", err)
	}

	if tex.Levels > 0 && (tex.Width == 0 || tex.Height == 0) {
		return nil, fmt.Errorf("%s is %dx%d: %w", tex.Name, tex.Width, tex.Height, ErrEmptyTexture)
	}

	slog.Debug("Reading texture",
		"name", tex.Name,
		"format", tex.Format.String(),
		"levels", tex.Levels,
		"width", tex.Width,
		"height", tex.Height)

	tex.Mips = make([]Mip, 0, tex.Levels)
	width, height := tex.Width, tex.Height
	for level := 0; level < tex.Levels; level++ {
		img, err := decodeLevel(c, tex.Format, width, height)
		if err != nil {
			return nil, fmt.Errorf("decoding mip level %d (%dx%d): %w", level, width, height, err)
		}

		tex.Mips = append(tex.Mips, Mip{
			Level:  level,
			Width:  width,
			Height: height,
			Image:  img,
		})

		width = halve(width)
		height = halve(height)
	}

	return &tex, nil
}

func decodeLevel(c *binutil.Cursor, f Format, width, height int) (*image.NRGBA, error) {
	total := width * height

	// each run is 3 bytes and covers at most 255 pixels
	if need := (int64(total) + 254) / 255 * 3; need > int64(c.Remaining()) {
		return nil, fmt.Errorf("%d pixels need at least %d bytes, have %d: %w: %w",
			total, need, c.Remaining(), ErrCorruptRLE, binutil.ErrTruncated)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for pos := 0; pos < total; {
		run, err := c.ReadU8()
		if err != nil {
			return nil, fmt.Errorf("stream ended at pixel %d of %d: %w: %w", pos, total, ErrCorruptRLE, err)
		}
		packed, err := c.ReadU16()
		if err != nil {
			return nil, fmt.Errorf("stream ended inside run at pixel %d of %d: %w: %w", pos, total, ErrCorruptRLE, err)
		}

		length := int(run)
		if length == 0 {
			length = 1
		}
		if pos+length > total {
			return nil, fmt.Errorf("run of %d at pixel %d overshoots %d pixels: %w", length, pos, total, ErrCorruptRLE)
		}

		col := UnpackColor(f, packed)
		for i := pos; i < pos+length; i++ {
			img.SetNRGBA(i%width, i/width, col)
		}
		pos += length
	}

	return img, nil
}

func halve(dim int) int {
	if dim/2 < 1 {
		return 1
	}
	return dim / 2
}
