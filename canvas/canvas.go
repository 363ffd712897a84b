// Package canvas is a rectangular RGBA pixel buffer with overflow-safe
// region addressing, used to build image data before it is wrapped in
// PNG chunks.
//
// Pixels are uint32 values holding red, green, blue and alpha from the
// high byte down. Region operations go through a RectSlice, an
// exclusive lease on the canvas: while a slice is held the canvas
// refuses a second slice and panics on direct access.
package canvas

import (
	"encoding/binary"
	"image"
	"image/color"
	"slices"
)

// An Error is a canvas construction or lease failure.
type Error string

func (e Error) Error() string { return "canvas: " + string(e) }

var (
	ErrZeroWidth          = Error("width is zero")
	ErrZeroHeight         = Error("height is zero")
	ErrDimensionOverflow  = Error("dimensions exceed the addressable size")
	ErrDataLengthMismatch = Error("data does not align to the image dimensions")
	ErrWidthMismatch      = Error("rows have different widths")
	ErrUnsupportedFilter  = Error("scanline uses a filter other than none")
	ErrLeased             = Error("canvas is leased to another slice")
)

// A Canvas owns width*height pixels stored row-major, plus one PNG
// filter type byte per row. The filter bytes are always 0.
type Canvas struct {
	width, height uint32
	pixels        []uint32
	filter        []byte
	leased        bool
}

func checkDimensions(width, height uint32) (int, error) {
	switch {
	case width == 0:
		return 0, ErrZeroWidth
	case height == 0:
		return 0, ErrZeroHeight
	case width > MaxCoord || height > MaxCoord:
		return 0, ErrDimensionOverflow
	}
	if _, ok := checkedScanlines(width, height); !ok {
		return 0, ErrDimensionOverflow
	}
	area, ok := checkedArea(width, height)
	if !ok {
		return 0, ErrDimensionOverflow
	}
	return area, nil
}

// New returns a width by height canvas filled with background.
func New(width, height, background uint32) (*Canvas, error) {
	area, err := checkDimensions(width, height)
	if err != nil {
		return nil, err
	}
	pixels := make([]uint32, area)
	if background != 0 {
		for i := range pixels {
			pixels[i] = background
		}
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: pixels,
		filter: make([]byte, height),
	}, nil
}

// FromPixels wraps row-major pixels, which the canvas takes ownership of.
func FromPixels(width, height uint32, pixels []uint32) (*Canvas, error) {
	area, err := checkDimensions(width, height)
	if err != nil {
		return nil, err
	}
	if len(pixels) != area {
		return nil, ErrDataLengthMismatch
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: pixels,
		filter: make([]byte, height),
	}, nil
}

// FromRows copies equally long rows into a new canvas.
func FromRows(rows [][]uint32) (*Canvas, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrZeroWidth
	}
	width := len(rows[0])
	if uint64(width) > MaxCoord || uint64(len(rows)) > MaxCoord {
		return nil, ErrDimensionOverflow
	}
	area, err := checkDimensions(uint32(width), uint32(len(rows)))
	if err != nil {
		return nil, err
	}
	pixels := make([]uint32, 0, area)
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrWidthMismatch
		}
		pixels = append(pixels, row...)
	}
	return FromPixels(uint32(width), uint32(len(rows)), pixels)
}

// FromScanlines parses the serialization produced by Bytes.
func FromScanlines(width, height uint32, raw []byte) (*Canvas, error) {
	area, err := checkDimensions(width, height)
	if err != nil {
		return nil, err
	}
	size, _ := checkedScanlines(width, height)
	if len(raw) != size {
		return nil, ErrDataLengthMismatch
	}
	c := &Canvas{
		width:  width,
		height: height,
		pixels: make([]uint32, 0, area),
		filter: make([]byte, height),
	}
	rowSize := 1 + 4*int(width)
	for y := 0; y < int(height); y++ {
		row := raw[y*rowSize : (y+1)*rowSize]
		if row[0] != 0 {
			return nil, ErrUnsupportedFilter
		}
		for i := 1; i < len(row); i += 4 {
			c.pixels = append(c.pixels, binary.BigEndian.Uint32(row[i:i+4]))
		}
	}
	return c, nil
}

func (c *Canvas) mustNotBeLeased() {
	if c.leased {
		panic("canvas: access while a slice holds the lease")
	}
}

func (c *Canvas) Width() uint32  { return c.width }
func (c *Canvas) Height() uint32 { return c.height }

// Len returns the number of pixels.
func (c *Canvas) Len() int { return len(c.pixels) }

// Rect returns the rectangle covering the whole canvas.
func (c *Canvas) Rect() Rect {
	return Rect{0, 0, c.width, c.height}
}

// Pixel returns the pixel at (x, y), or 0 outside the canvas.
func (c *Canvas) Pixel(x, y uint32) uint32 {
	c.mustNotBeLeased()
	if x >= c.width || y >= c.height {
		return 0
	}
	return c.pixels[int(y)*int(c.width)+int(x)]
}

// Pixels returns a copy of the pixel buffer.
func (c *Canvas) Pixels() []uint32 {
	c.mustNotBeLeased()
	return slices.Clone(c.pixels)
}

// Filter returns a copy of the per-row filter type bytes.
func (c *Canvas) Filter() []byte {
	c.mustNotBeLeased()
	return slices.Clone(c.filter)
}

// ResetFilter sets every row's filter type back to none.
func (c *Canvas) ResetFilter() {
	c.mustNotBeLeased()
	clear(c.filter)
}

// Bytes serializes the canvas as PNG scanlines: for each row, its filter
// byte followed by four bytes per pixel.
func (c *Canvas) Bytes() []byte {
	c.mustNotBeLeased()
	size, _ := checkedScanlines(c.width, c.height)
	b := make([]byte, 0, size)
	w := int(c.width)
	for y, ft := range c.filter {
		b = append(b, ft)
		for _, px := range c.pixels[y*w : (y+1)*w] {
			b = binary.BigEndian.AppendUint32(b, px)
		}
	}
	return b
}

// ColorModel, Bounds and At implement image.Image.
func (c *Canvas) ColorModel() color.Model { return color.NRGBAModel }

func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(c.width), int(c.height))
}

func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= int(c.width) || y >= int(c.height) {
		return color.NRGBA{}
	}
	return toNRGBA(c.Pixel(uint32(x), uint32(y)))
}

// Slice leases the part of r that lies on the canvas. The lease lasts
// until the slice is released.
func (c *Canvas) Slice(r Rect) (*RectSlice, error) {
	if c.leased {
		return nil, ErrLeased
	}
	c.leased = true
	return &RectSlice{c: c, rect: r.Constrain(c.width, c.height)}, nil
}

// Fill sets every pixel of r that lies on the canvas to px.
func (c *Canvas) Fill(r Rect, px uint32) error {
	s, err := c.Slice(r)
	if err != nil {
		return err
	}
	defer s.Release()
	s.Fill(px)
	return nil
}

// Copy copies the pixels of src so that its origin lands on (x, y).
// Parts that would fall off the canvas are skipped.
func (c *Canvas) Copy(src Rect, x, y uint32) error {
	return c.CopyEach(src, int64(x)-int64(src.x), int64(y)-int64(src.y), Replace)
}

// CopyEach combines the pixels of src into the region dx, dy away; see
// RectSlice.CopyEach.
func (c *Canvas) CopyEach(src Rect, dx, dy int64, fn Transform) error {
	s, err := c.Slice(src)
	if err != nil {
		return err
	}
	defer s.Release()
	s.CopyEach(dx, dy, fn)
	return nil
}

// Extract returns a new canvas holding a copy of the part of r that
// lies on c.
func (c *Canvas) Extract(r Rect) (*Canvas, error) {
	s, err := c.Slice(r)
	if err != nil {
		return nil, err
	}
	defer s.Release()
	return s.Extract()
}
