package png

import "github.com/fumin/pngme/canvas"

// EncodeCanvas wraps c into a complete image: an 8-bit RGBA header, one
// IDAT chunk holding the compressed scanlines and IEND.
func EncodeCanvas(c *canvas.Canvas, level CompressionLevel) (*Png, error) {
	h, err := NewHeader(c.Width(), c.Height())
	if err != nil {
		return nil, err
	}
	data, err := Compress(c.Bytes(), level)
	if err != nil {
		return nil, err
	}
	if len(data) > MaxChunkLength {
		return nil, UnsupportedError("image data larger than one IDAT chunk")
	}
	return FromChunks(h.Chunk(), DataChunk(data), EndChunk()), nil
}
