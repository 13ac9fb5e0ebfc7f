package ogf

import "image/color"

// UnpackColor expands a packed 16-bit color to 8 bits per channel.
// Each n-bit channel v scales as v*255/(2^n-1), rounded down.
func UnpackColor(f Format, packed uint16) color.NRGBA {
	switch f {
	case Format4444:
		return color.NRGBA{
			R: scale(packed>>8&0xF, 15),
			G: scale(packed>>4&0xF, 15),
			B: scale(packed&0xF, 15),
			A: scale(packed>>12&0xF, 15),
		}
	default:
		return color.NRGBA{
			R: scale(packed>>10&0x1F, 31),
			G: scale(packed>>5&0x1F, 31),
			B: scale(packed&0x1F, 31),
			A: scale(packed>>15&0x1, 1),
		}
	}
}

func scale(v, limit uint16) uint8 {
	return uint8(uint32(v) * 255 / uint32(limit))
}
