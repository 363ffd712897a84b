package png

import (
	"bytes"
	"io"
	"slices"
	"strings"
)

// essential are the chunk types Scrub never removes: the critical
// chunks plus the ancillary chunks that change how pixels are rendered.
var essential = []ChunkType{
	TypeIHDR, TypePLTE, TypeIDAT, TypeIEND,
	TypeTRNS, TypeGAMA, TypeCHRM, TypeSRGB, TypeICCP, TypeSBIT,
}

// A Png is an ordered list of chunks.
//
// The container does not enforce chunk ordering rules beyond keeping
// new chunks ahead of IEND in AppendChunk; a well-formed image starts with IHDR and
// ends with IEND.
type Png struct {
	chunks []*Chunk
}

// FromChunks builds a Png holding chunks in the given order.
func FromChunks(chunks ...*Chunk) *Png {
	return &Png{chunks: slices.Clone(chunks)}
}

// Chunks returns the chunks in order.
func (p *Png) Chunks() []*Chunk {
	return slices.Clone(p.chunks)
}

// ChunkByType returns the first chunk of type t, or nil.
func (p *Png) ChunkByType(t ChunkType) *Chunk {
	for _, c := range p.chunks {
		if c.typ == t {
			return c
		}
	}
	return nil
}

// AppendChunk adds c just before the first IEND chunk, wherever it is,
// or at the end if the image has no IEND yet.
func (p *Png) AppendChunk(c *Chunk) {
	i := slices.IndexFunc(p.chunks, func(c *Chunk) bool { return c.typ == TypeIEND })
	if i < 0 {
		p.chunks = append(p.chunks, c)
		return
	}
	p.chunks = slices.Insert(p.chunks, i, c)
}

// RemoveChunk removes the first chunk of type t and returns it.
func (p *Png) RemoveChunk(t ChunkType) (*Chunk, error) {
	i := slices.IndexFunc(p.chunks, func(c *Chunk) bool { return c.typ == t })
	if i < 0 {
		return nil, ErrChunkNotFound
	}
	c := p.chunks[i]
	p.chunks = slices.Delete(p.chunks, i, i+1)
	return c, nil
}

// Scrub removes every chunk that is not needed to render the image,
// except those whose type is listed in keep. It returns the types of
// the removed chunks in stream order.
func (p *Png) Scrub(keep ...ChunkType) []ChunkType {
	var removed []ChunkType
	kept := p.chunks[:0]
	for _, c := range p.chunks {
		if slices.Contains(essential, c.typ) || slices.Contains(keep, c.typ) {
			kept = append(kept, c)
			continue
		}
		removed = append(removed, c.typ)
	}
	clear(p.chunks[len(kept):])
	p.chunks = kept
	return removed
}

// Header parses the IHDR chunk.
func (p *Png) Header() (Header, error) {
	c := p.ChunkByType(TypeIHDR)
	if c == nil {
		return Header{}, ErrInvalidIHDR
	}
	return ParseHeader(c.data)
}

// Bytes returns the encoded datastream.
func (p *Png) Bytes() []byte {
	var buf bytes.Buffer
	p.WriteTo(&buf)
	return buf.Bytes()
}

// WriteTo writes the signature followed by every chunk.  This supports
// the io.WriterTo interface.
func (p *Png) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, Signature)
	total := int64(n)
	if err != nil {
		return total, err
	}
	for _, c := range p.chunks {
		m, err := c.WriteTo(w)
		total += m
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String lists the chunks one per line.
func (p *Png) String() string {
	var sb strings.Builder
	for i, c := range p.chunks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
