package png

import (
	"encoding/binary"
	"io"
)

// Stream state.
const (
	ssStreaming = iota
	ssTainted
)

// A ChunkStream yields the chunks of a buffer one at a time.
//
// Chunk boundaries are only known from the length fields, and PNG has no
// resynchronization markers, so the first malformed chunk taints the
// stream: its error is returned once and every later call to Next
// returns io.EOF.
type ChunkStream struct {
	buf    []byte
	offset int
	state  int
}

// NewChunkStream returns a stream over b, which must not include the
// PNG signature.
func NewChunkStream(b []byte) *ChunkStream {
	return &ChunkStream{buf: b}
}

// Next returns the next chunk, or io.EOF when the buffer is exhausted
// or the stream is tainted.
func (s *ChunkStream) Next() (*Chunk, error) {
	if s.state == ssTainted {
		return nil, io.EOF
	}
	rest := s.buf[s.offset:]
	if len(rest) == 0 {
		return nil, io.EOF
	}
	if len(rest) < chunkOverhead {
		return nil, s.taint(ErrShortChunk)
	}

	// The full span is consumed whatever the CRC says.
	span := uint64(binary.BigEndian.Uint32(rest[:4])) + chunkOverhead
	if uint64(len(rest)) < span {
		return nil, s.taint(ErrShortChunk)
	}
	s.offset += int(span)

	c, err := ParseChunk(rest[:span])
	if err != nil {
		return nil, s.taint(err)
	}
	return c, nil
}

// Offset returns the number of bytes consumed so far.
func (s *ChunkStream) Offset() int { return s.offset }

// Tainted reports whether a malformed chunk stopped the stream.
func (s *ChunkStream) Tainted() bool { return s.state == ssTainted }

func (s *ChunkStream) taint(err error) error {
	s.state = ssTainted
	return err
}
