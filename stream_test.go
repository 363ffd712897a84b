package png

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

func testChunks() []*Chunk {
	return []*Chunk{
		NewChunk(ChunkType{'F', 'r', 'S', 't'}, []byte("I am the first chunk")),
		NewChunk(ChunkType{'m', 'i', 'D', 'l'}, []byte("I am another chunk")),
		NewChunk(ChunkType{'L', 'A', 'S', 't'}, []byte("I am the last chunk")),
	}
}

func concatChunks(chunks ...*Chunk) []byte {
	var buf bytes.Buffer
	for _, c := range chunks {
		buf.Write(c.Bytes())
	}
	return buf.Bytes()
}

func TestChunkStreamSingle(t *testing.T) {
	s := NewChunkStream(rawChunk(11, "ItEr", "Hello World", 3520753346))
	c, err := s.Next()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if text, _ := c.Text(); c.Type().String() != "ItEr" || text != "Hello World" {
		t.Fatalf("%v", c)
	}
	if _, err := s.Next(); err != io.EOF {
		t.Fatalf("%+v", err)
	}
	if s.Offset() != 23 || s.Tainted() {
		t.Fatalf("%d %t", s.Offset(), s.Tainted())
	}
}

func TestChunkStreamValid(t *testing.T) {
	want := testChunks()
	s := NewChunkStream(concatChunks(want...))
	for i, w := range want {
		c, err := s.Next()
		if err != nil {
			t.Fatalf("%d: %+v", i, err)
		}
		if !bytes.Equal(c.Bytes(), w.Bytes()) {
			t.Fatalf("%d: %v %v", i, c, w)
		}
	}
	if _, err := s.Next(); err != io.EOF {
		t.Fatalf("%+v", err)
	}
}

func TestChunkStreamTaints(t *testing.T) {
	chunks := testChunks()
	b := concatChunks(chunks...)
	// Corrupt the first payload byte of the middle chunk.
	b[len(chunks[0].Bytes())+8] ^= 0x20

	s := NewChunkStream(b)
	c, err := s.Next()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if c.Type() != chunks[0].Type() {
		t.Fatalf("%v", c)
	}
	if _, err := s.Next(); err != ErrCRCMismatch {
		t.Fatalf("%+v", err)
	}
	if !s.Tainted() {
		t.Fatalf("not tainted")
	}
	// The intact last chunk is never yielded.
	for i := 0; i < 3; i++ {
		if c, err := s.Next(); err != io.EOF {
			t.Fatalf("%v %+v", c, err)
		}
	}
}

func TestChunkStreamLengthPastEnd(t *testing.T) {
	b := binary.BigEndian.AppendUint32(nil, 12345678)
	b = append(b, "RuSt"...)
	b = append(b, "only a few bytes"...)
	s := NewChunkStream(b)
	if _, err := s.Next(); err != ErrShortChunk {
		t.Fatalf("%+v", err)
	}
	if _, err := s.Next(); err != io.EOF {
		t.Fatalf("%+v", err)
	}
}

func TestChunkStreamTrailingBytes(t *testing.T) {
	b := append(concatChunks(testChunks()[0]), 0, 0, 0)
	s := NewChunkStream(b)
	if _, err := s.Next(); err != nil {
		t.Fatalf("%+v", err)
	}
	if _, err := s.Next(); err != ErrShortChunk {
		t.Fatalf("%+v", err)
	}
}

func TestChunkStreamEmpty(t *testing.T) {
	s := NewChunkStream(nil)
	if _, err := s.Next(); err != io.EOF {
		t.Fatalf("%+v", err)
	}
	if s.Tainted() {
		t.Fatalf("tainted")
	}
}
