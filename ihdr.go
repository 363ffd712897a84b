package png

import (
	"encoding/binary"
	"fmt"
	"slices"
)

// ColorType is the type of color of the image, as defined by the PNG format.
type ColorType uint8

const (
	ColorTypeGrayscale      = ColorType(0)
	ColorTypeTrueColor      = ColorType(2)
	ColorTypePaletted       = ColorType(3)
	ColorTypeGrayscaleAlpha = ColorType(4)
	ColorTypeTrueColorAlpha = ColorType(6)
)

// BitDepth is the bit depth of the image, as defined by the PNG format.
type BitDepth uint8

const (
	BitDepth1  = BitDepth(1)
	BitDepth2  = BitDepth(2)
	BitDepth4  = BitDepth(4)
	BitDepth8  = BitDepth(8)
	BitDepth16 = BitDepth(16)
)

// CompressionMethod is the compression method, as defined by the PNG format.
type CompressionMethod uint8

// FilterMethod is the filter method, as defined by the PNG format.
type FilterMethod uint8

// InterlaceMethod is the interlace method, as defined by the PNG format.
type InterlaceMethod uint8

const (
	InterlaceNone  = InterlaceMethod(0)
	InterlaceAdam7 = InterlaceMethod(1)
)

const ihdrLength = 13

// Largest width or height a PNG image may have.
const maxDimension = 1<<31 - 1

// Malformed or out of range image headers.
var (
	ErrIHDRWidthOverflow  = FormatError("IHDR width exceeds the PNG maximum")
	ErrIHDRHeightOverflow = FormatError("IHDR height exceeds the PNG maximum")
	ErrZeroWidth          = FormatError("IHDR width is zero")
	ErrZeroHeight         = FormatError("IHDR height is zero")
)

// Allowed bit depths per color type.
// https://www.w3.org/TR/png/#table111
var allowedDepths = map[ColorType][]BitDepth{
	ColorTypeGrayscale:      {BitDepth1, BitDepth2, BitDepth4, BitDepth8, BitDepth16},
	ColorTypeTrueColor:      {BitDepth8, BitDepth16},
	ColorTypePaletted:       {BitDepth1, BitDepth2, BitDepth4, BitDepth8},
	ColorTypeGrayscaleAlpha: {BitDepth8, BitDepth16},
	ColorTypeTrueColorAlpha: {BitDepth8, BitDepth16},
}

// Header is the image header chunk, as defined by the PNG format.
type Header struct {
	Width             uint32
	Height            uint32
	BitDepth          BitDepth
	ColorType         ColorType
	CompressionMethod CompressionMethod
	FilterMethod      FilterMethod
	InterlaceMethod   InterlaceMethod
}

// NewHeader returns the header of a non-interlaced 8-bit RGBA image, the
// only layout a canvas is encoded to.
func NewHeader(width, height uint32) (Header, error) {
	h := Header{
		Width:     width,
		Height:    height,
		BitDepth:  BitDepth8,
		ColorType: ColorTypeTrueColorAlpha,
	}
	if err := h.checkDimensions(); err != nil {
		return Header{}, err
	}
	return h, nil
}

// ParseHeader decodes an IHDR payload and validates it.
func ParseHeader(data []byte) (Header, error) {
	if len(data) != ihdrLength {
		return Header{}, ErrInvalidIHDR
	}
	h := Header{
		Width:             binary.BigEndian.Uint32(data[0:4]),
		Height:            binary.BigEndian.Uint32(data[4:8]),
		BitDepth:          BitDepth(data[8]),
		ColorType:         ColorType(data[9]),
		CompressionMethod: CompressionMethod(data[10]),
		FilterMethod:      FilterMethod(data[11]),
		InterlaceMethod:   InterlaceMethod(data[12]),
	}
	if err := h.Validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

func (h Header) checkDimensions() error {
	switch {
	case h.Width == 0:
		return ErrZeroWidth
	case h.Height == 0:
		return ErrZeroHeight
	case h.Width > maxDimension:
		return ErrIHDRWidthOverflow
	case h.Height > maxDimension:
		return ErrIHDRHeightOverflow
	}
	return nil
}

// Validate checks the header against the PNG format rules.
func (h Header) Validate() error {
	if err := h.checkDimensions(); err != nil {
		return err
	}
	depths, ok := allowedDepths[h.ColorType]
	if !ok {
		return FormatError(fmt.Sprintf("invalid color type %d", h.ColorType))
	}
	if !slices.Contains(depths, h.BitDepth) {
		return FormatError(fmt.Sprintf("bit depth %d not allowed for color type %d", h.BitDepth, h.ColorType))
	}
	if h.CompressionMethod != 0 {
		return FormatError(fmt.Sprintf("invalid compression method %d", h.CompressionMethod))
	}
	if h.FilterMethod != 0 {
		return FormatError(fmt.Sprintf("invalid filter method %d", h.FilterMethod))
	}
	if h.InterlaceMethod != InterlaceNone && h.InterlaceMethod != InterlaceAdam7 {
		return FormatError(fmt.Sprintf("invalid interlace method %d", h.InterlaceMethod))
	}
	return nil
}

// Dimensions returns the width and height.
func (h Header) Dimensions() (width, height uint32) {
	return h.Width, h.Height
}

// Bytes returns the 13-byte IHDR payload.
func (h Header) Bytes() []byte {
	buf := make([]byte, ihdrLength)
	binary.BigEndian.PutUint32(buf[0:4], h.Width)
	binary.BigEndian.PutUint32(buf[4:8], h.Height)
	buf[8] = byte(h.BitDepth)
	buf[9] = byte(h.ColorType)
	buf[10] = byte(h.CompressionMethod)
	buf[11] = byte(h.FilterMethod)
	buf[12] = byte(h.InterlaceMethod)
	return buf
}

// Chunk returns the header as an IHDR chunk.
func (h Header) Chunk() *Chunk {
	return NewChunk(TypeIHDR, h.Bytes())
}
