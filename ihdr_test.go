package png

import (
	"errors"
	"testing"
)

func TestNewHeader(t *testing.T) {
	h, err := NewHeader(640, 480)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if h.BitDepth != BitDepth8 || h.ColorType != ColorTypeTrueColorAlpha || h.InterlaceMethod != InterlaceNone {
		t.Fatalf("%+v", h)
	}
	want := []byte{0, 0, 2, 128, 0, 0, 1, 224, 8, 6, 0, 0, 0}
	if got := h.Bytes(); string(got) != string(want) {
		t.Fatalf("%v", got)
	}

	back, err := ParseHeader(h.Chunk().Data())
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if back != h {
		t.Fatalf("%+v %+v", back, h)
	}
}

func TestNewHeaderDimensions(t *testing.T) {
	tests := []struct {
		w, h uint32
		err  error
	}{
		{w: 0, h: 1, err: ErrZeroWidth},
		{w: 1, h: 0, err: ErrZeroHeight},
		{w: 1 << 31, h: 1, err: ErrIHDRWidthOverflow},
		{w: 1, h: 1 << 31, err: ErrIHDRHeightOverflow},
	}
	for _, test := range tests {
		if _, err := NewHeader(test.w, test.h); err != test.err {
			t.Fatalf("%dx%d: %+v", test.w, test.h, err)
		}
	}
	if _, err := NewHeader(1<<31-1, 1<<31-1); err != nil {
		t.Fatalf("%+v", err)
	}
}

func TestParseHeaderInvalid(t *testing.T) {
	valid := Header{Width: 3, Height: 2, BitDepth: BitDepth8, ColorType: ColorTypeTrueColor}
	if _, err := ParseHeader(valid.Bytes()); err != nil {
		t.Fatalf("%+v", err)
	}
	if _, err := ParseHeader(valid.Bytes()[:12]); err != ErrInvalidIHDR {
		t.Fatalf("%+v", err)
	}

	mutations := map[string]func(h *Header){
		"color type":         func(h *Header) { h.ColorType = 5 },
		"bit depth":          func(h *Header) { h.BitDepth = BitDepth4 },
		"compression method": func(h *Header) { h.CompressionMethod = 1 },
		"filter method":      func(h *Header) { h.FilterMethod = 1 },
		"interlace method":   func(h *Header) { h.InterlaceMethod = 2 },
	}
	for name, mutate := range mutations {
		h := valid
		mutate(&h)
		var fe FormatError
		if _, err := ParseHeader(h.Bytes()); !errors.As(err, &fe) {
			t.Fatalf("%s: %+v", name, err)
		}
	}

	h := valid
	h.Width = 0
	if _, err := ParseHeader(h.Bytes()); err != ErrZeroWidth {
		t.Fatalf("%+v", err)
	}
}

func TestHeaderPalettedDepths(t *testing.T) {
	for _, d := range []BitDepth{BitDepth1, BitDepth2, BitDepth4, BitDepth8} {
		h := Header{Width: 1, Height: 1, BitDepth: d, ColorType: ColorTypePaletted}
		if err := h.Validate(); err != nil {
			t.Fatalf("%d: %+v", d, err)
		}
	}
	h := Header{Width: 1, Height: 1, BitDepth: BitDepth16, ColorType: ColorTypePaletted}
	if err := h.Validate(); err == nil {
		t.Fatalf("16-bit palette accepted")
	}
}
