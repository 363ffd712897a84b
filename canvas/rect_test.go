package canvas

import (
	"math"
	"testing"
)

func TestNewRectNormalizes(t *testing.T) {
	r := NewRect(10, 20, 0, 5)
	if r != NewRect(0, 5, 10, 20) {
		t.Fatalf("%v", r)
	}
	if r.X() != 0 || r.Y() != 5 || r.X2() != 10 || r.Y2() != 20 {
		t.Fatalf("%v", r)
	}
	if r.Width() != 10 || r.Height() != 15 || r.Area() != 150 {
		t.Fatalf("%d %d %d", r.Width(), r.Height(), r.Area())
	}

	big := NewRect(0, 0, math.MaxUint32, 5)
	if big.X2() != MaxCoord {
		t.Fatalf("%v", big)
	}
	if big.Area() != 5*MaxCoord {
		t.Fatalf("%d", big.Area())
	}
}

func TestXYWHSaturates(t *testing.T) {
	r := XYWH(MaxCoord-1, 0, 10, 1)
	if r.X2() != MaxCoord || r.Width() != 1 {
		t.Fatalf("%v", r)
	}
	if XYWH(math.MaxUint32, 0, 1, 1).X() != MaxCoord {
		t.Fatalf("x not clamped")
	}
}

func TestFromRange(t *testing.T) {
	tests := []struct {
		name   string
		xr, yr Range
		want   Rect
	}{
		{name: "exclusive", xr: Span(0, 100), yr: Span(0, 100), want: NewRect(0, 0, 99, 99)},
		{name: "inclusive", xr: SpanInclusive(10, 110), yr: SpanInclusive(10, 110), want: NewRect(10, 10, 110, 110)},
		{name: "full", xr: Full(), yr: Full(), want: NewRect(0, 0, MaxCoord, MaxCoord)},
		{name: "from", xr: From(5), yr: From(7), want: NewRect(5, 7, MaxCoord, MaxCoord)},
		{name: "to", xr: To(10), yr: ToInclusive(10), want: NewRect(0, 0, 9, 10)},
		{name: "inverted", xr: Span(10, 0), yr: SpanInclusive(8, 2), want: NewRect(0, 2, 10, 8)},
		{
			name: "excluded start",
			xr:   Range{Start: Bound{Excluded, 3}, End: Bound{Included, 8}},
			yr:   Range{Start: Bound{Excluded, MaxCoord}, End: Bound{}},
			want: NewRect(4, MaxCoord, 8, MaxCoord),
		},
	}
	for _, test := range tests {
		if got := FromRange(test.xr, test.yr); got != test.want {
			t.Fatalf("%s: %v %v", test.name, got, test.want)
		}
	}
	if r := FromRange(SpanInclusive(10, 110), Span(0, 100)); r.Width() != 100 || r.Height() != 99 {
		t.Fatalf("%v", r)
	}
}

func TestConstrain(t *testing.T) {
	r := XYWH(10, 10, 20, 20).Constrain(15, 25)
	if r != NewRect(10, 10, 15, 25) {
		t.Fatalf("%v", r)
	}
	if r.Constrain(15, 25) != r {
		t.Fatalf("not idempotent")
	}

	outside := XYWH(30, 30, 5, 5).Constrain(15, 25)
	if !outside.Empty() || outside.Area() != 0 {
		t.Fatalf("%v", outside)
	}

	full := FromRange(Full(), Full()).Constrain(640, 480)
	if full != NewRect(0, 0, 640, 480) {
		t.Fatalf("%v", full)
	}
}

func TestOffset(t *testing.T) {
	r := XYWH(5, 5, 10, 10)
	if got := r.Offset(3, -2); got != XYWH(8, 3, 10, 10) {
		t.Fatalf("%v", got)
	}
	// Moving past zero cuts the rect short.
	if got := r.Offset(-10, 0); got != NewRect(0, 5, 5, 15) {
		t.Fatalf("%v", got)
	}
	if got := r.Offset(-100, -100); !got.Empty() {
		t.Fatalf("%v", got)
	}
	if got := r.Offset(math.MaxInt64, 0); got.X() != MaxCoord || !got.Empty() {
		t.Fatalf("%v", got)
	}
	if got := r.Offset(math.MinInt64, 0); got.X2() != 0 {
		t.Fatalf("%v", got)
	}
}

func TestPos(t *testing.T) {
	r := XYWH(5, 5, 10, 10)
	if got := r.Pos(0, 0); got != XYWH(0, 0, 10, 10) {
		t.Fatalf("%v", got)
	}
	if got := r.Pos(100, 7); got != XYWH(100, 7, 10, 10) {
		t.Fatalf("%v", got)
	}
	if got := r.Pos(MaxCoord-4, 0); got.Width() != 4 {
		t.Fatalf("%v", got)
	}
}

func TestIntersectContains(t *testing.T) {
	a, b := XYWH(0, 0, 10, 10), XYWH(5, 5, 10, 10)
	if got := a.Intersect(b); got != XYWH(5, 5, 5, 5) {
		t.Fatalf("%v", got)
	}
	if got := a.Intersect(XYWH(20, 20, 5, 5)); !got.Empty() {
		t.Fatalf("%v", got)
	}
	if !a.Contains(0, 0) || !a.Contains(9, 9) || a.Contains(10, 9) || a.Contains(9, 10) {
		t.Fatalf("contains")
	}
	if a.String() != "(0,0)-(10,10)" {
		t.Fatalf("%s", a)
	}
}
