package canvas

import "fmt"

// A Rect is an axis-aligned rectangle of pixels from (X, Y) inclusive
// to (X2, Y2) exclusive. Rects are always normalized so that X <= X2
// and Y <= Y2, and no coordinate exceeds MaxCoord.
type Rect struct {
	x, y, x2, y2 uint32
}

// NewRect returns the rectangle spanned by the two corners. Inverted
// corners are swapped and coordinates above MaxCoord saturate.
func NewRect(x, y, x2, y2 uint32) Rect {
	x, y = min(x, MaxCoord), min(y, MaxCoord)
	x2, y2 = min(x2, MaxCoord), min(y2, MaxCoord)
	return Rect{min(x, x2), min(y, y2), max(x, x2), max(y, y2)}
}

// XYWH returns the rectangle with origin (x, y) and the given size,
// truncated at MaxCoord.
func XYWH(x, y, width, height uint32) Rect {
	x, y = min(x, MaxCoord), min(y, MaxCoord)
	return Rect{x, y, satAdd(x, width), satAdd(y, height)}
}

// FromRange returns the rectangle covering the column range xr and the
// row range yr.
func FromRange(xr, yr Range) Rect {
	return NewRect(xr.Start.start(), yr.Start.start(), xr.End.end(), yr.End.end())
}

func (r Rect) X() uint32  { return r.x }
func (r Rect) Y() uint32  { return r.y }
func (r Rect) X2() uint32 { return r.x2 }
func (r Rect) Y2() uint32 { return r.y2 }

func (r Rect) Width() uint32  { return r.x2 - r.x }
func (r Rect) Height() uint32 { return r.y2 - r.y }

// Area returns the number of pixels covered.
func (r Rect) Area() uint64 {
	return uint64(r.Width()) * uint64(r.Height())
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.x == r.x2 || r.y == r.y2
}

// Contains reports whether pixel (x, y) lies inside r.
func (r Rect) Contains(x, y uint32) bool {
	return r.x <= x && x < r.x2 && r.y <= y && y < r.y2
}

// Constrain clamps every corner to a width by height canvas. The result
// may be empty when r lies entirely outside it.
func (r Rect) Constrain(width, height uint32) Rect {
	return Rect{min(r.x, width), min(r.y, height), min(r.x2, width), min(r.y2, height)}
}

// Offset moves r by (dx, dy). Coordinates that would leave
// [0, MaxCoord] saturate, so the size of the result is derived from the
// shifted span and may be smaller than r's.
func (r Rect) Offset(dx, dy int64) Rect {
	return NewRect(shift(r.x, dx), shift(r.y, dy), shift(r.x2, dx), shift(r.y2, dy))
}

// Pos moves r so that its origin is (x, y).
func (r Rect) Pos(x, y uint32) Rect {
	return r.Offset(int64(x)-int64(r.x), int64(y)-int64(r.y))
}

// Intersect returns the largest rectangle contained by both r and o.
// Disjoint rectangles give an empty rect at the clamped origin.
func (r Rect) Intersect(o Rect) Rect {
	x, y := max(r.x, o.x), max(r.y, o.y)
	x2, y2 := min(r.x2, o.x2), min(r.y2, o.y2)
	return Rect{x, y, max(x, x2), max(y, y2)}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.x, r.y, r.x2, r.y2)
}
