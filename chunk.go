package png

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"unicode/utf8"
)

// MaxChunkLength is the largest chunk payload PNG allows.
const MaxChunkLength = 1<<31 - 1

// chunkOverhead is the length, type and CRC fields around the payload.
const chunkOverhead = 12

// A Chunk is one length-prefixed, CRC-suffixed record of a PNG
// datastream. Chunks are immutable; to change one, remove it from its
// Png and append a new one.
type Chunk struct {
	typ  ChunkType
	data []byte
	crc  uint32
}

// NewChunk builds a chunk of type t around data, which the chunk takes
// ownership of. It panics if data is longer than MaxChunkLength.
func NewChunk(t ChunkType, data []byte) *Chunk {
	if len(data) > MaxChunkLength {
		panic(fmt.Sprintf("png: chunk data length %d exceeds maximum of %d bytes", len(data), MaxChunkLength))
	}
	return &Chunk{typ: t, data: data, crc: checksum(t, data)}
}

// EndChunk returns an IEND chunk.
func EndChunk() *Chunk {
	return NewChunk(TypeIEND, nil)
}

// DataChunk returns an IDAT chunk holding compressed image data.
func DataChunk(data []byte) *Chunk {
	return NewChunk(TypeIDAT, data)
}

func checksum(t ChunkType, data []byte) uint32 {
	crc := crc32.NewIEEE()
	crc.Write(t[:])
	crc.Write(data)
	return crc.Sum32()
}

// ParseChunk decodes exactly one chunk from b, which must hold nothing
// but that chunk. The length, checksum and type are verified in that
// order and the first failure is returned.
func ParseChunk(b []byte) (*Chunk, error) {
	if len(b) < chunkOverhead {
		return nil, ErrShortChunk
	}
	length := binary.BigEndian.Uint32(b[:4])
	crcOffset := len(b) - 4
	data := b[8:crcOffset]
	if uint64(length) != uint64(len(data)) {
		return nil, ErrLengthMismatch
	}
	if crc32.ChecksumIEEE(b[4:crcOffset]) != binary.BigEndian.Uint32(b[crcOffset:]) {
		return nil, ErrCRCMismatch
	}
	t, err := ChunkTypeFromBytes([4]byte(b[4:8]))
	if err != nil {
		return nil, err
	}
	return &Chunk{
		typ:  t,
		data: append([]byte(nil), data...),
		crc:  binary.BigEndian.Uint32(b[crcOffset:]),
	}, nil
}

// Length returns the payload length.
func (c *Chunk) Length() uint32 { return uint32(len(c.data)) }

// Type returns the chunk type.
func (c *Chunk) Type() ChunkType { return c.typ }

// Data returns the payload. Callers must not modify it.
func (c *Chunk) Data() []byte { return c.data }

// CRC returns the CRC-32 of the type and payload.
func (c *Chunk) CRC() uint32 { return c.crc }

// Text returns the payload as a string if it is valid UTF-8.
func (c *Chunk) Text() (string, error) {
	if !utf8.Valid(c.data) {
		return "", ErrNotUTF8
	}
	return string(c.data), nil
}

// Bytes returns the chunk in its wire layout.
func (c *Chunk) Bytes() []byte {
	b := make([]byte, 0, chunkOverhead+len(c.data))
	b = binary.BigEndian.AppendUint32(b, c.Length())
	b = append(b, c.typ[:]...)
	b = append(b, c.data...)
	return binary.BigEndian.AppendUint32(b, c.crc)
}

// WriteTo encodes the chunk to the io.Writer.  This supports the
// io.WriterTo interface.
func (c *Chunk) WriteTo(w io.Writer) (int64, error) {
	header := [8]byte{}
	footer := [4]byte{}
	binary.BigEndian.PutUint32(header[:4], c.Length())
	copy(header[4:], c.typ[:])
	binary.BigEndian.PutUint32(footer[:], c.crc)

	hl, err := w.Write(header[:])
	if err != nil {
		return int64(hl), err
	}
	bl, err := w.Write(c.data)
	if err != nil {
		return int64(hl + bl), err
	}
	fl, err := w.Write(footer[:])
	return int64(hl + bl + fl), err
}

// String renders the type and length, followed by the payload when it
// is readable text.
func (c *Chunk) String() string {
	s := fmt.Sprintf("%s (%d)", c.typ, c.Length())
	text, err := c.Text()
	if err != nil {
		return s
	}
	if text == "" {
		text = "<empty>"
	}
	return s + ": " + text
}
