// Package png edits PNG files at the chunk level.
// It parses and serializes the chunk stream, verifying each chunk's CRC
// and type code, and can wrap a canvas of RGBA pixels into a complete
// image. Pixel filtering is limited to filter type 0 (none).
package png

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/fumin/pngme/canvas"
)

// Signature is the fixed 8-byte prefix of every PNG datastream.
const Signature = "\x89PNG\r\n\x1a\n"

// A FormatError reports that the input is not a valid PNG.
type FormatError string

func (e FormatError) Error() string { return "png: invalid format: " + string(e) }

// Malformed input.
var (
	ErrInvalidHeader  = FormatError("not a PNG file")
	ErrShortChunk     = FormatError("data is too short to be a valid chunk")
	ErrLengthMismatch = FormatError("chunk data does not match its declared length")
	ErrCRCMismatch    = FormatError("invalid checksum")
	ErrInvalidByte    = FormatError("chunk type contains a byte that is not an ASCII letter")
	ErrInvalidSegment = FormatError("chunk type must be exactly 4 bytes")
	ErrNotUTF8        = FormatError("chunk data is not UTF-8")
	ErrInvalidIHDR    = FormatError("IHDR chunk is missing or invalid")
)

// A PolicyError reports that the caller asked for something this package
// refuses to do, such as hiding data in a critical chunk.
type PolicyError string

func (e PolicyError) Error() string { return "png: " + string(e) }

var (
	ErrExpectNonCritical = PolicyError("expected a lowercase letter at position 1 (ancillary)")
	ErrExpectPrivate     = PolicyError("expected a lowercase letter at position 2 (private)")
	ErrExpectReservedBit = PolicyError("expected an uppercase letter at position 3 (reserved bit)")
	ErrChunkNotFound     = PolicyError("chunk not found")
)

// An UnsupportedError reports that the input uses a valid but unimplemented PNG feature.
type UnsupportedError string

func (e UnsupportedError) Error() string { return "png: unsupported feature: " + string(e) }

// Decode parses a whole PNG datastream. Decoding stops at the first
// malformed chunk; no partial document is returned.
func Decode(b []byte) (*Png, error) {
	if err := checkHeader(b); err != nil {
		return nil, err
	}

	p := &Png{}
	s := NewChunkStream(b[len(Signature):])
	for {
		c, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		p.chunks = append(p.chunks, c)
	}
	return p, nil
}

// DecodeReader reads r to the end and decodes the result.
func DecodeReader(r io.Reader) (*Png, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(b)
}

func checkHeader(b []byte) error {
	if len(b) < len(Signature) || !bytes.Equal(b[:len(Signature)], []byte(Signature)) {
		return ErrInvalidHeader
	}
	return nil
}

// ImageData returns the concatenated payloads of every IDAT chunk.
func (p *Png) ImageData() []byte {
	var data []byte
	for _, c := range p.chunks {
		if c.typ == TypeIDAT {
			data = append(data, c.data...)
		}
	}
	return data
}

// DecodeCanvas rebuilds the pixels of a non-interlaced 8-bit RGBA image
// whose scanlines all use filter type none.
func DecodeCanvas(p *Png) (*canvas.Canvas, error) {
	h, err := p.Header()
	if err != nil {
		return nil, err
	}
	if h.ColorType != ColorTypeTrueColorAlpha || h.BitDepth != BitDepth8 {
		return nil, UnsupportedError(fmt.Sprintf("bit depth %d, color type %d", h.BitDepth, h.ColorType))
	}
	if h.InterlaceMethod != InterlaceNone {
		return nil, UnsupportedError("interlaced image")
	}
	// One filter byte plus four bytes per pixel for each row. Width and
	// height are below 2^31, so this cannot overflow.
	size := (1 + 4*uint64(h.Width)) * uint64(h.Height)
	if size > math.MaxInt64 {
		return nil, UnsupportedError("image too large")
	}
	raw, err := DecompressLimit(p.ImageData(), int64(size))
	if errors.Is(err, ErrDataTooLarge) {
		return nil, FormatError("pixel data does not match the image size")
	}
	if err != nil {
		return nil, err
	}
	c, err := canvas.FromScanlines(h.Width, h.Height, raw)
	if errors.Is(err, canvas.ErrUnsupportedFilter) {
		return nil, UnsupportedError("scanline filter other than none")
	}
	if errors.Is(err, canvas.ErrDataLengthMismatch) {
		return nil, FormatError("pixel data does not match the image size")
	}
	return c, err
}
