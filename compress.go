package png

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// CompressionLevel tells the encoder how to trade compression speed
// for image size.
type CompressionLevel int

const (
	DefaultCompression CompressionLevel = 0
	NoCompression      CompressionLevel = -1
	BestSpeed          CompressionLevel = -2
	BestCompression    CompressionLevel = -3
)

var (
	ErrCompress     = errors.New("png: compressing image data failed")
	ErrDecompress   = errors.New("png: decompressing image data failed")
	ErrDataTooLarge = errors.New("png: image data inflates past its limit")
)

func (l CompressionLevel) zlib() int {
	switch l {
	case NoCompression:
		return zlib.NoCompression
	case BestSpeed:
		return zlib.BestSpeed
	case BestCompression:
		return zlib.BestCompression
	default:
		return zlib.DefaultCompression
	}
}

func (l CompressionLevel) String() string {
	switch l {
	case NoCompression:
		return "none"
	case BestSpeed:
		return "speed"
	case BestCompression:
		return "best"
	default:
		return "default"
	}
}

// ParseCompressionLevel parses the names produced by String.
func ParseCompressionLevel(name string) (CompressionLevel, error) {
	switch name {
	case "", "default":
		return DefaultCompression, nil
	case "none":
		return NoCompression, nil
	case "speed":
		return BestSpeed, nil
	case "best":
		return BestCompression, nil
	}
	return DefaultCompression, fmt.Errorf("unknown compression level %q", name)
}

// Compress returns data as a zlib stream.
func Compress(data []byte, level CompressionLevel) ([]byte, error) {
	var buf bytes.Buffer
	z, err := zlib.NewWriterLevel(&buf, level.zlib())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompress, err)
	}
	if _, err := z.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompress, err)
	}
	if err := z.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompress, err)
	}
	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream.
func Decompress(data []byte) ([]byte, error) {
	return inflate(data, -1)
}

// DecompressLimit inflates a zlib stream that must not exceed limit
// bytes. Inflation stops as soon as the limit is passed and
// ErrDataTooLarge is returned.
func DecompressLimit(data []byte, limit int64) ([]byte, error) {
	if limit < 0 {
		return nil, ErrDataTooLarge
	}
	return inflate(data, limit)
}

func inflate(data []byte, limit int64) ([]byte, error) {
	z, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	defer z.Close()
	var r io.Reader = z
	if limit >= 0 {
		r = io.LimitReader(z, limit+1)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	if limit >= 0 && int64(len(out)) > limit {
		return nil, ErrDataTooLarge
	}
	return out, nil
}
