package canvas

import "image/color"

// RGBA packs four channels into a pixel, red in the high byte.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// RGB packs an opaque pixel.
func RGB(r, g, b uint8) uint32 {
	return RGBA(r, g, b, 0xff)
}

// Hex reads v as 0xRRGGBBAA when its high byte is set and as an opaque
// 0xRRGGBB otherwise.
func Hex(v uint32) uint32 {
	if v>>24 != 0 {
		return v
	}
	return v<<8 | 0xff
}

// Channels unpacks a pixel.
func Channels(px uint32) (r, g, b, a uint8) {
	return uint8(px >> 24), uint8(px >> 16), uint8(px >> 8), uint8(px)
}

func toNRGBA(px uint32) color.NRGBA {
	r, g, b, a := Channels(px)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
