// Package strterm implements the parked sublexer state (spec §3 "StrTerm",
// §4.3) that next_token delegates to whenever a string, symbol, word-list,
// regexp or heredoc literal is in progress.
package strterm

// Func is the bitset of string-literal flavors a StringLiteral StrTerm
// can carry simultaneously (e.g. str_dquote|str_label for a `"foo":` in
// label position).
type Func uint16

const (
	StrSquote Func = 1 << iota
	StrDquote
	StrXquote
	StrRegexp
	StrSword
	StrDword
	StrSsym
	StrDsym
	StrLabel
)

func (f Func) Has(bit Func) bool { return f&bit != 0 }

// Interpolates reports whether this flavor opens `#{`/`#@`/`#$`
// interpolation, i.e. everything except the single-quoted family.
func (f Func) Interpolates() bool {
	return f.Has(StrDquote) || f.Has(StrDsym) || f.Has(StrXquote) || f.Has(StrRegexp) || f.Has(StrDword)
}

// Kind discriminates the two StrTerm variants named in spec §3.
type Kind int

const (
	KindStringLiteral Kind = iota
	KindHeredocLiteral
)

// Term is the tagged StrTerm record. Only the fields relevant to Kind
// are meaningful; this mirrors the "one sum type with per-variant
// payload" shape used for ast.Node rather than an interface with two
// dynamic implementations, since nothing here needs virtual dispatch.
type Term struct {
	Kind Kind

	// StringLiteral fields.
	Func    Func
	Paren   int // matching open char, 0 if the terminator is unparenthesized
	End     int // closing character
	Nesting int // depth of balanced Paren/End pairs seen so far

	// HeredocEnd is room for the closing delimiter location of a heredoc
	// body owned by this literal; no constructor or lexer path sets it,
	// so it stays zero.
	HeredocEnd int

	// HeredocLiteral fields.
	ID       string // the tag bytes, e.g. "EOF" in <<~EOF
	Squiggly bool   // <<~ : dedent the body
	Dash     bool   // <<- : allow indented terminator, no dedent

	// BodyBegin caches the squiggly dedent column computed once, the
	// first time this term's body is scanned; BodyEnd is nonzero once
	// BodyBegin holds a valid value (0 is itself a valid dedent amount).
	BodyBegin int
	BodyEnd   int

	// SavedPTok, SavedPCur and SavedLine store the outer lexer position
	// given to NewHeredocLiteral; the lexer passes zeros and never reads
	// them back, resuming after the terminator line instead.
	SavedPTok  int
	SavedPCur  int
	SavedLine  int
	QuoteStyle byte // '"', '\'', '`', or 0 for a bare identifier tag
}

// NewStringLiteral builds a StringLiteral StrTerm.
func NewStringLiteral(fn Func, paren, end int) *Term {
	return &Term{Kind: KindStringLiteral, Func: fn, Paren: paren, End: end}
}

// NewHeredocLiteral builds a HeredocLiteral StrTerm.
func NewHeredocLiteral(id string, squiggly, dash bool, quote byte, savedPTok, savedPCur, savedLine int) *Term {
	return &Term{
		Kind:       KindHeredocLiteral,
		ID:         id,
		Squiggly:   squiggly,
		Dash:       dash,
		QuoteStyle: quote,
		SavedPTok:  savedPTok,
		SavedPCur:  savedPCur,
		SavedLine:  savedLine,
	}
}

// IsHeredoc reports whether this term is the HeredocLiteral variant.
func (t *Term) IsHeredoc() bool { return t != nil && t.Kind == KindHeredocLiteral }
