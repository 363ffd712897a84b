package png

import (
	"bytes"
	"errors"
	"testing"
)

func TestCompressRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("scanline\x00\xff"), 1000)
	for _, level := range []CompressionLevel{DefaultCompression, NoCompression, BestSpeed, BestCompression} {
		z, err := Compress(data, level)
		if err != nil {
			t.Fatalf("%s: %+v", level, err)
		}
		if level != NoCompression && len(z) >= len(data) {
			t.Fatalf("%s: %d >= %d", level, len(z), len(data))
		}
		back, err := Decompress(z)
		if err != nil {
			t.Fatalf("%s: %+v", level, err)
		}
		if !bytes.Equal(back, data) {
			t.Fatalf("%s: round trip mismatch", level)
		}
	}
}

func TestDecompressInvalid(t *testing.T) {
	if _, err := Decompress([]byte("definitely not zlib")); !errors.Is(err, ErrDecompress) {
		t.Fatalf("%+v", err)
	}
	z, err := Compress([]byte("truncated stream"), BestCompression)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if _, err := Decompress(z[:len(z)-6]); !errors.Is(err, ErrDecompress) {
		t.Fatalf("%+v", err)
	}
}

func TestDecompressLimit(t *testing.T) {
	data := make([]byte, 1<<20)
	z, err := Compress(data, BestCompression)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	out, err := DecompressLimit(z, int64(len(data)))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(out) != len(data) {
		t.Fatalf("%d", len(out))
	}
	if _, err := DecompressLimit(z, int64(len(data)-1)); err != ErrDataTooLarge {
		t.Fatalf("%+v", err)
	}
	if _, err := DecompressLimit(z, 5); err != ErrDataTooLarge {
		t.Fatalf("%+v", err)
	}
}

func TestParseCompressionLevel(t *testing.T) {
	for _, level := range []CompressionLevel{DefaultCompression, NoCompression, BestSpeed, BestCompression} {
		got, err := ParseCompressionLevel(level.String())
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if got != level {
			t.Fatalf("%s %s", got, level)
		}
	}
	if got, err := ParseCompressionLevel(""); err != nil || got != DefaultCompression {
		t.Fatalf("%s %+v", got, err)
	}
	if _, err := ParseCompressionLevel("fastest"); err == nil {
		t.Fatalf("accepted unknown level")
	}
}
