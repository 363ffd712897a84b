package canvas

// BoundKind says how a Bound treats its value.
type BoundKind uint8

const (
	Unbounded BoundKind = iota
	Included
	Excluded
)

// A Bound is one end of a Range.
type Bound struct {
	Kind  BoundKind
	Value uint32
}

// A Range is a span of columns or rows. An unbounded start means 0 and
// an unbounded end means MaxCoord. A start past the end is not an error;
// FromRange swaps them.
type Range struct {
	Start, End Bound
}

// Span is start..end with end excluded.
func Span(start, end uint32) Range {
	return Range{Bound{Included, start}, Bound{Excluded, end}}
}

// SpanInclusive is start..=end.
func SpanInclusive(start, end uint32) Range {
	return Range{Bound{Included, start}, Bound{Included, end}}
}

// From is start.. with no upper limit.
func From(start uint32) Range {
	return Range{Bound{Included, start}, Bound{}}
}

// To is ..end with end excluded.
func To(end uint32) Range {
	return Range{Bound{}, Bound{Excluded, end}}
}

// ToInclusive is ..=end.
func ToInclusive(end uint32) Range {
	return Range{Bound{}, Bound{Included, end}}
}

// Full is the unbounded range.
func Full() Range {
	return Range{}
}

func (b Bound) start() uint32 {
	switch b.Kind {
	case Included:
		return b.Value
	case Excluded:
		return satAdd(b.Value, 1)
	}
	return 0
}

// end maps the bound to a rect edge. An excluded end steps back one
// pixel, so Span(0, 100) is 99 pixels wide while SpanInclusive(0, 100)
// is 100.
func (b Bound) end() uint32 {
	switch b.Kind {
	case Included:
		return b.Value
	case Excluded:
		return satSub(b.Value, 1)
	}
	return MaxCoord
}
