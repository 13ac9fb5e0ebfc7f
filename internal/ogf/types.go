package ogf

import (
	"errors"
	"image"
)

var (
	// ErrUnsupportedTag is returned when the 3-byte tag matches no known pixel format
	ErrUnsupportedTag = errors.New("unsupported tag")

	// ErrCorruptRLE is returned when a level's runs do not add up to width*height
	ErrCorruptRLE = errors.New("corrupt RLE stream")

	// ErrEmptyTexture is returned when the base level has a zero dimension
	ErrEmptyTexture = errors.New("texture has zero width or height")
)

// Format selects the bit layout of packed colors
type Format int

const (
	// Format1555 packs colors as arrrrrgggggbbbbb
	Format1555 Format = iota
	// Format4444 packs colors as aaaarrrrggggbbbb
	Format4444
)

var (
	tag1555 = [3]byte{0x00, 0x00, 'z'}
	tag4444 = [3]byte{0x00, 0x00, 'y'}
)

func (f Format) String() string {
	switch f {
	case Format1555:
		return "1555"
	case Format4444:
		return "4444"
	default:
		return "unknown"
	}
}

// Texture is one decoded OGF file
type Texture struct {
	Format Format
	Name   string // name embedded in the file header
	Levels int    // mip level count declared in the header
	Width  int    // level 0 width
	Height int    // level 0 height
	Mips   []Mip  // level 0 is full resolution
}

// Mip is one resolution level of a texture
type Mip struct {
	Level  int
	Width  int
	Height int
	Image  *image.NRGBA
}
