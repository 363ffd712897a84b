package canvas

// A Transform combines a source pixel with the destination pixel it is
// copied onto.
type Transform func(src, dst uint32) uint32

// Replace overwrites the destination.
func Replace(src, _ uint32) uint32 { return src }

// Xor combines both pixels bitwise, alpha included.
func Xor(src, dst uint32) uint32 { return src ^ dst }

// Over composites src over dst with straight (non-premultiplied)
// alpha. An opaque src replaces dst and a fully transparent one keeps it.
func Over(src, dst uint32) uint32 {
	sr, sg, sb, sa := Channels(src)
	switch sa {
	case 0xff:
		return src
	case 0:
		return dst
	}
	dr, dg, db, da := Channels(dst)
	// Weight of dst once src covers it, rounded.
	dw := (uint32(da)*(0xff-uint32(sa)) + 0x7f) / 0xff
	a := uint32(sa) + dw
	if a == 0 {
		return 0
	}
	blend := func(s, d uint8) uint8 {
		return uint8((uint32(s)*uint32(sa) + uint32(d)*dw + a/2) / a)
	}
	return RGBA(blend(sr, dr), blend(sg, dg), blend(sb, db), uint8(a))
}

// A RectSlice is a view of one rectangular region of a Canvas. It holds
// the canvas's exclusive lease until Release is called; using a released
// slice panics.
type RectSlice struct {
	c    *Canvas
	rect Rect
}

func (s *RectSlice) canvas() *Canvas {
	if s.c == nil {
		panic("canvas: use of released slice")
	}
	return s.c
}

// Release returns the lease to the canvas. It is safe to call twice.
func (s *RectSlice) Release() {
	if s.c != nil {
		s.c.leased = false
		s.c = nil
	}
}

// Rect returns the region, already clamped to the canvas.
func (s *RectSlice) Rect() Rect { return s.rect }

func (s *RectSlice) Width() uint32  { return s.rect.Width() }
func (s *RectSlice) Height() uint32 { return s.rect.Height() }

func (s *RectSlice) index() regionIndex {
	return newRegionIndex(s.rect, s.canvas().width)
}

// Fill sets every pixel of the region to px.
func (s *RectSlice) Fill(px uint32) {
	pixels := s.canvas().pixels
	it := s.index()
	for i, _, _, ok := it.next(); ok; i, _, _, ok = it.next() {
		pixels[i] = px
	}
}

// CopyFrom overwrites the region in row-major order from src and
// returns the number of pixels written. Extra source pixels are
// ignored; a short source leaves the rest of the region untouched.
func (s *RectSlice) CopyFrom(src []uint32) int {
	pixels := s.canvas().pixels
	it := s.index()
	n := 0
	for i, _, _, ok := it.next(); ok && n < len(src); i, _, _, ok = it.next() {
		pixels[i] = src[n]
		n++
	}
	return n
}

// CopyEach copies the region to the one dx, dy away, setting each
// destination pixel to fn(source, destination). The destination is
// clamped to the canvas and the source shrinks with it, so both always
// have the same size. Sources are read before any destination is
// written, which makes overlapping copies safe.
func (s *RectSlice) CopyEach(dx, dy int64, fn Transform) {
	c := s.canvas()
	dst := s.rect.Offset(dx, dy).Constrain(c.width, c.height)
	src := dst.Offset(-dx, -dy).Intersect(s.rect)
	if src.Empty() {
		return
	}
	dst = src.Offset(dx, dy)

	buf := make([]uint32, 0, src.Area())
	it := newRegionIndex(src, c.width)
	for i, _, _, ok := it.next(); ok; i, _, _, ok = it.next() {
		buf = append(buf, c.pixels[i])
	}
	it = newRegionIndex(dst, c.width)
	for k, i := 0, 0; k < len(buf); k++ {
		i, _, _, _ = it.next()
		c.pixels[i] = fn(buf[k], c.pixels[i])
	}
}

// Each replaces every pixel of the region with fn(x, y, pixel).
func (s *RectSlice) Each(fn func(x, y, px uint32) uint32) {
	pixels := s.canvas().pixels
	it := s.index()
	for i, x, y, ok := it.next(); ok; i, x, y, ok = it.next() {
		pixels[i] = fn(uint32(x), uint32(y), pixels[i])
	}
}

// Pixels returns a copy of the region in row-major order.
func (s *RectSlice) Pixels() []uint32 {
	pixels := s.canvas().pixels
	out := make([]uint32, 0, s.rect.Area())
	it := s.index()
	for i, _, _, ok := it.next(); ok; i, _, _, ok = it.next() {
		out = append(out, pixels[i])
	}
	return out
}

// Rows returns a copy of the region split into rows.
func (s *RectSlice) Rows() [][]uint32 {
	flat := s.Pixels()
	w := int(s.rect.Width())
	if w == 0 {
		return nil
	}
	rows := make([][]uint32, 0, len(flat)/w)
	for len(flat) > 0 {
		rows = append(rows, flat[:w:w])
		flat = flat[w:]
	}
	return rows
}

// Extract copies the region into a new canvas. An empty region cannot
// form a canvas and reports ErrZeroWidth or ErrZeroHeight.
func (s *RectSlice) Extract() (*Canvas, error) {
	return FromPixels(s.rect.Width(), s.rect.Height(), s.Pixels())
}
