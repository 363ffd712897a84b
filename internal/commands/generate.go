package commands

import (
	"fmt"
	"os"
	"path/filepath"

	png "github.com/fumin/pngme"
	"github.com/fumin/pngme/canvas"
)

// A demo draws one demonstration image.
type demo struct {
	name string
	draw func() (*canvas.Canvas, error)
}

var demos = []demo{
	{name: "squares.png", draw: drawSquares},
	{name: "gradient.png", draw: drawGradient},
	{name: "blend.png", draw: drawBlend},
	{name: "frame.png", draw: drawFrame},
}

// Generate writes the demonstration images into dir, or into the
// configured generate.output_dir when dir is empty, and returns their
// paths.
func (r *Runner) Generate(dir string) ([]string, error) {
	if dir == "" {
		dir = r.Config.Generate.OutputDir
	}
	logger := r.Logger.With("command", "generate", "dir", dir)
	level := r.Config.CompressionLevel()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotWritten, err)
	}

	var paths []string
	for _, d := range demos {
		c, err := d.draw()
		if err != nil {
			return paths, fmt.Errorf("drawing %s: %w", d.name, err)
		}
		p, err := png.EncodeCanvas(c, level)
		if err != nil {
			return paths, fmt.Errorf("encoding %s: %w", d.name, err)
		}
		path := filepath.Join(dir, d.name)
		if err := writePng(path, p); err != nil {
			return paths, err
		}
		logger.Info("image written", "file", path, "width", c.Width(), "height", c.Height(), "compression", level.String())
		paths = append(paths, path)
	}
	return paths, nil
}

// drawSquares tiles a checkerboard of opaque squares.
func drawSquares() (*canvas.Canvas, error) {
	const size, cell = 256, 32
	c, err := canvas.New(size, size, canvas.Hex(0xffffff))
	if err != nil {
		return nil, err
	}
	colors := []uint32{canvas.Hex(0xe63946), canvas.Hex(0x457b9d), canvas.Hex(0x2a9d8f), canvas.Hex(0xf4a261)}
	for y := uint32(0); y < size/cell; y++ {
		for x := uint32(0); x < size/cell; x++ {
			if (x+y)%2 != 0 {
				continue
			}
			px := colors[(x/2+y)%uint32(len(colors))]
			if err := c.Fill(canvas.XYWH(x*cell, y*cell, cell, cell), px); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// drawGradient maps x to red and y to green.
func drawGradient() (*canvas.Canvas, error) {
	c, err := canvas.New(256, 256, 0)
	if err != nil {
		return nil, err
	}
	s, err := c.Slice(c.Rect())
	if err != nil {
		return nil, err
	}
	defer s.Release()
	s.Each(func(x, y, _ uint32) uint32 {
		return canvas.RGB(uint8(x), uint8(y), 0x80)
	})
	return c, nil
}

// drawBlend composites translucent squares with Over and inverts one
// corner with Xor.
func drawBlend() (*canvas.Canvas, error) {
	c, err := canvas.New(200, 200, canvas.Hex(0x1d3557))
	if err != nil {
		return nil, err
	}
	// A scratch strip along the bottom holds the translucent sources.
	scratch := canvas.XYWH(0, 180, 60, 20)
	if err := c.Fill(scratch, canvas.RGBA(0xff, 0x40, 0x40, 0x90)); err != nil {
		return nil, err
	}
	for i := int64(0); i < 4; i++ {
		if err := c.CopyEach(scratch, 20+i*35, -150+i*30, canvas.Over); err != nil {
			return nil, err
		}
	}
	if err := c.Fill(scratch, canvas.Hex(0x1d3557)); err != nil {
		return nil, err
	}
	// Xor the top right corner against itself shifted, clamped at the edge.
	if err := c.CopyEach(canvas.XYWH(120, 0, 80, 80), 40, 40, canvas.Xor); err != nil {
		return nil, err
	}
	return c, nil
}

// drawFrame draws a border with range-built rects and stamps a patch
// that partly falls off the canvas.
func drawFrame() (*canvas.Canvas, error) {
	const w, h = 160, 120
	c, err := canvas.New(w, h, canvas.Hex(0x264653))
	if err != nil {
		return nil, err
	}
	inner := canvas.FromRange(canvas.SpanInclusive(8, w-8), canvas.SpanInclusive(8, h-8))
	if err := c.Fill(inner, canvas.Hex(0xe9c46a)); err != nil {
		return nil, err
	}
	center := canvas.FromRange(canvas.Span(40, w-40), canvas.Span(30, h-30))
	if err := c.Fill(center, canvas.Hex(0xffffff)); err != nil {
		return nil, err
	}
	stamp, err := canvas.FromRows([][]uint32{
		{canvas.Hex(0xe76f51), canvas.Hex(0xffffff), canvas.Hex(0xe76f51)},
		{canvas.Hex(0xffffff), canvas.Hex(0xe76f51), canvas.Hex(0xffffff)},
		{canvas.Hex(0xe76f51), canvas.Hex(0xffffff), canvas.Hex(0xe76f51)},
	})
	if err != nil {
		return nil, err
	}
	s, err := c.Slice(canvas.XYWH(w-2, h-2, 3, 3))
	if err != nil {
		return nil, err
	}
	defer s.Release()
	// Only the top-left 2x2 of the stamp lands on the canvas.
	s.CopyFrom([]uint32{stamp.Pixel(0, 0), stamp.Pixel(1, 0), stamp.Pixel(0, 1), stamp.Pixel(1, 1)})
	return c, nil
}
