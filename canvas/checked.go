package canvas

// MaxCoord is the largest coordinate a Rect can hold. Keeping every
// coordinate at or below it lets coordinate sums and differences be
// computed in int64 without overflow.
const MaxCoord = 1 << 31

const maxInt = int(^uint(0) >> 1)

// satAdd returns a+b, saturated at MaxCoord.
func satAdd(a, b uint32) uint32 {
	s := uint64(a) + uint64(b)
	if s > MaxCoord {
		return MaxCoord
	}
	return uint32(s)
}

// satSub returns a-b, saturated at 0.
func satSub(a, b uint32) uint32 {
	if b >= a {
		return 0
	}
	return a - b
}

// clampCoord narrows v into [0, MaxCoord].
func clampCoord(v int64) uint32 {
	switch {
	case v < 0:
		return 0
	case v > MaxCoord:
		return MaxCoord
	}
	return uint32(v)
}

// shift returns v+d narrowed into [0, MaxCoord]. Deltas beyond
// ±MaxCoord are cut short first so the int64 sum cannot wrap.
func shift(v uint32, d int64) uint32 {
	switch {
	case d > MaxCoord:
		d = MaxCoord
	case d < -MaxCoord:
		d = -MaxCoord
	}
	return clampCoord(int64(v) + d)
}

// checkedArea returns w*h as an int, or false if the product does not
// fit in the address space.
func checkedArea(w, h uint32) (int, bool) {
	a := uint64(w) * uint64(h)
	if a > uint64(maxInt) {
		return 0, false
	}
	return int(a), true
}

// checkedScanlines returns the size of the scanline serialization of a
// w by h canvas: one filter byte plus four bytes per pixel for each row.
func checkedScanlines(w, h uint32) (int, bool) {
	row := 1 + 4*uint64(w)
	if h != 0 && row > uint64(maxInt)/uint64(h) {
		return 0, false
	}
	return int(row * uint64(h)), true
}
