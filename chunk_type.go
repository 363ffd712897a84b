package png

import "strings"

// A ChunkType is the 4-byte chunk type code, as defined by the PNG format.
// Each byte is an ASCII letter and bit 5 (the lowercase bit) of each
// byte carries one property of the chunk.
// https://www.w3.org/TR/png/#5Chunk-naming-conventions
type ChunkType [4]byte

const propertyBit = 1 << 5

// Chunk types used by this package.
var (
	TypeIHDR = ChunkType{'I', 'H', 'D', 'R'}
	TypePLTE = ChunkType{'P', 'L', 'T', 'E'}
	TypeIDAT = ChunkType{'I', 'D', 'A', 'T'}
	TypeIEND = ChunkType{'I', 'E', 'N', 'D'}
	TypeTRNS = ChunkType{'t', 'R', 'N', 'S'}
	TypeGAMA = ChunkType{'g', 'A', 'M', 'A'}
	TypeCHRM = ChunkType{'c', 'H', 'R', 'M'}
	TypeSRGB = ChunkType{'s', 'R', 'G', 'B'}
	TypeICCP = ChunkType{'i', 'C', 'C', 'P'}
	TypeSBIT = ChunkType{'s', 'B', 'I', 'T'}
)

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// ChunkTypeFromBytes validates b as a chunk type.
func ChunkTypeFromBytes(b [4]byte) (ChunkType, error) {
	for _, c := range b {
		if !isLetter(c) {
			return ChunkType{}, ErrInvalidByte
		}
	}
	return ChunkType(b), nil
}

// ParseChunkType parses a 4 character chunk type such as "tEXt".
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, ErrInvalidSegment
	}
	var b [4]byte
	copy(b[:], s)
	return ChunkTypeFromBytes(b)
}

// IsValid reports whether every byte is an ASCII letter.
func (t ChunkType) IsValid() bool {
	for _, c := range t {
		if !isLetter(c) {
			return false
		}
	}
	return true
}

// IsCritical reports whether decoders must understand the chunk to
// render the image.
func (t ChunkType) IsCritical() bool { return t[0]&propertyBit == 0 }

// IsPublic reports whether the type is one of the publicly registered PNG types.
func (t ChunkType) IsPublic() bool { return t[1]&propertyBit == 0 }

// IsReservedBitValid reports whether the reserved bit is clear, which
// conforming chunk types require.
func (t ChunkType) IsReservedBitValid() bool { return t[2]&propertyBit == 0 }

// IsSafeToCopy reports whether editors that do not recognize the chunk
// may copy it after modifying critical chunks.
func (t ChunkType) IsSafeToCopy() bool { return t[3]&propertyBit != 0 }

// Checked returns an error unless t is an ancillary, private chunk type
// with a valid reserved bit, the only kind of chunk a user message may
// be stored in without harming the image.
func (t ChunkType) Checked() error {
	switch {
	case t.IsCritical():
		return ErrExpectNonCritical
	case t.IsPublic():
		return ErrExpectPrivate
	case !t.IsReservedBitValid():
		return ErrExpectReservedBit
	}
	return nil
}

func (t ChunkType) String() string {
	return strings.ToValidUTF8(string(t[:]), "\uFFFD")
}
