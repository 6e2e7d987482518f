// Package source holds the decoded byte buffer the lexer scans and the
// cursor bookkeeping (pbeg/ptok/pcur/pend, line starts) it needs to turn
// byte offsets into token ranges and line/column positions.
package source

import (
	"sort"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/gorbylang/rubylex/token"
)

// EOF is returned by Nextc once the buffer is exhausted. It is never a
// valid byte value (byte is 0-255), matching the teacher's sentinel style
// in parser/lexer/lexer.go's `const eof = -1`.
const EOF = -1

// Buffer holds decoded source bytes and tracks the four cursors named in
// spec §4.1: pbeg (always 0, kept for symmetry with the source-of-truth
// naming), ptok (start of the token being built), pcur (scan position)
// and pend (len(bytes)). Invariant: pbeg <= ptok <= pcur <= pend.
type Buffer struct {
	Filename string

	bytes []byte
	pbeg  int
	ptok  int
	pcur  int
	pend  int

	lineStarts []int // byte offset of the first byte of each logical line
	eofp       bool
	pushedBack []int // not used by any Buffer method; Pushback moves pcur directly
}

// NewBuffer wraps src (already decoded to UTF-8/Latin-1/etc by the
// caller per the magic-comment rule) in a Buffer ready for scanning; it
// does no decoding of its own.
func NewBuffer(filename string, src []byte) *Buffer {
	b := &Buffer{
		Filename:   filename,
		bytes:      src,
		pend:       len(src),
		lineStarts: []int{0},
	}
	return b
}

// Pos returns the current scan cursor (pcur).
func (b *Buffer) Pos() int { return b.pcur }

// TokenStart returns ptok, the start of the token currently being built.
func (b *Buffer) TokenStart() int { return b.ptok }

// Len returns pend, the total byte length of the source.
func (b *Buffer) Len() int { return b.pend }

// AtEOF reports whether Nextc has already returned EOF.
func (b *Buffer) AtEOF() bool { return b.eofp }

// TokenFlush resets ptok to pcur, marking the end of the previous token
// and the start of the next one.
func (b *Buffer) TokenFlush() { b.ptok = b.pcur }

// Nextc advances pcur by one byte and returns it, or EOF when exhausted.
// Crossing a '\n' records the start of the following line. Nextc never
// regresses pcur once EOF has been returned.
func (b *Buffer) Nextc() int {
	if b.pcur >= b.pend {
		b.eofp = true
		return EOF
	}
	c := int(b.bytes[b.pcur])
	b.pcur++
	if c == '\n' {
		b.lineStarts = append(b.lineStarts, b.pcur)
	}
	return c
}

// Pushback reverses the last Nextc call. The argument is accepted (and
// ignored beyond the EOF sentinel check) for symmetry with the
// source-of-truth `pushback(c)` signature; callers push back more than
// one byte by calling it repeatedly, as the lexer's heredoc and
// continuation rewinds do for whole runs of bytes.
func (b *Buffer) Pushback(c int) {
	if c == EOF || b.pcur == 0 {
		return
	}
	if int(b.bytes[b.pcur-1]) == '\n' {
		if n := len(b.lineStarts); n > 0 && b.lineStarts[n-1] == b.pcur {
			b.lineStarts = b.lineStarts[:n-1]
		}
	}
	b.pcur--
	b.eofp = false
}

// Peek returns the byte n positions ahead of pcur (0 = the next byte to
// be read by Nextc) without consuming anything, or EOF past the end.
func (b *Buffer) Peek(n int) int {
	p := b.pcur + n
	if p < 0 || p >= b.pend {
		return EOF
	}
	return int(b.bytes[p])
}

// PeekN is an alias for Peek kept for parity with spec §4.1's `peek_n`.
func (b *Buffer) PeekN(n int) int { return b.Peek(n) }

// GotoEOL advances pcur to just before the next '\n', or to pend if none
// remains.
func (b *Buffer) GotoEOL() {
	for b.pcur < b.pend && b.bytes[b.pcur] != '\n' {
		b.pcur++
	}
}

// WasBOL reports whether pcur sits at the first byte of a logical line.
func (b *Buffer) WasBOL() bool {
	if b.pcur == 0 {
		return true
	}
	return b.pcur-1 < b.pend && b.bytes[b.pcur-1] == '\n'
}

// WasBOLBefore reports whether the byte just consumed by the most recent
// Nextc call was itself the first byte of its line, i.e. whether pcur-1
// was a beginning-of-line position before that byte was read.
func (b *Buffer) WasBOLBefore() bool {
	if b.pcur <= 1 {
		return true
	}
	return b.bytes[b.pcur-2] == '\n'
}

// IsWordMatch reports whether the bytes at pcur spell word followed by a
// byte that cannot continue an identifier (or EOF).
func (b *Buffer) IsWordMatch(word string) bool {
	n := len(word)
	if b.pcur+n > b.pend {
		return false
	}
	if string(b.bytes[b.pcur:b.pcur+n]) != word {
		return false
	}
	if b.pcur+n == b.pend {
		return true
	}
	next := b.bytes[b.pcur+n]
	return !isIdentByte(next)
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c >= 0x80
}

// SubstrAt borrows the slice [begin, end) of the decoded source.
func (b *Buffer) SubstrAt(begin, end int) string {
	if begin < 0 {
		begin = 0
	}
	if end > b.pend {
		end = b.pend
	}
	if begin >= end {
		return ""
	}
	return string(b.bytes[begin:end])
}

// CurrentTokenText returns SubstrAt(ptok, pcur), the raw bytes of the
// token currently being scanned.
func (b *Buffer) CurrentTokenText() string { return b.SubstrAt(b.ptok, b.pcur) }

// RangeFromTok returns the Range [ptok, pcur).
func (b *Buffer) RangeFromTok() token.Range { return token.Range{Begin: b.ptok, End: b.pcur} }

// LineColForPos binary-searches the recorded line-start offsets and
// returns a 1-based participle lexer.Position for byte offset p.
func (b *Buffer) LineColForPos(p int) lexer.Position {
	idx := sort.Search(len(b.lineStarts), func(i int) bool { return b.lineStarts[i] > p }) - 1
	if idx < 0 {
		idx = 0
	}
	line := idx + 1
	col := p - b.lineStarts[idx] + 1
	return lexer.Position{Filename: b.Filename, Offset: p, Line: line, Column: col}
}

// Bytes exposes the full decoded buffer, e.g. for diagnostics that need
// to slice context around a range.
func (b *Buffer) Bytes() []byte { return b.bytes }
