package token

import "github.com/alecthomas/participle/v2/lexer"

// Range is a half-open byte-offset interval [Begin, End) into the
// decoded source. Every token and every AST node carries at least one.
type Range struct {
	Begin int
	End   int
}

// Join returns the smallest range covering both r and other. Either side
// may be a zero Range{} (no-op identity) produced by an absent sub-range.
func (r Range) Join(other Range) Range {
	if r == (Range{}) {
		return other
	}
	if other == (Range{}) {
		return r
	}
	out := r
	if other.Begin < out.Begin {
		out.Begin = other.Begin
	}
	if other.End > out.End {
		out.End = other.End
	}
	return out
}

// JoinAll folds Join across every non-zero range supplied, in order.
func JoinAll(ranges ...Range) Range {
	var out Range
	for _, r := range ranges {
		out = out.Join(r)
	}
	return out
}

// Size returns the number of bytes the range spans.
func (r Range) Size() int { return r.End - r.Begin }

// Empty reports whether the range spans no bytes.
func (r Range) Empty() bool { return r.Begin == r.End }

// WithPositions pairs a byte Range with projected line/column endpoints.
// The participle lexer.Position type is reused here (rather than invented)
// so that any grammar driver already depending on participle for other
// languages gets a position shape it already knows how to render.
type WithPositions struct {
	Range    Range
	Begin    lexer.Position
	End      lexer.Position
}
