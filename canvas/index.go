package canvas

// regionIndex walks the pixels of a rect row by row and yields their
// offsets into a row-major buffer with the given stride.
type regionIndex struct {
	stride int
	x, x2  int
	y2     int
	px, py int
}

func newRegionIndex(r Rect, stride uint32) regionIndex {
	it := regionIndex{
		stride: int(stride),
		x:      int(r.x),
		x2:     int(r.x2),
		y2:     int(r.y2),
		px:     int(r.x),
		py:     int(r.y),
	}
	if r.Empty() {
		it.py = it.y2
	}
	return it
}

// next returns the buffer offset and coordinates of the next pixel.
func (it *regionIndex) next() (i, x, y int, ok bool) {
	if it.py >= it.y2 {
		return 0, 0, 0, false
	}
	i, x, y = it.py*it.stride+it.px, it.px, it.py
	it.px++
	if it.px >= it.x2 {
		it.px = it.x
		it.py++
	}
	return i, x, y, true
}
