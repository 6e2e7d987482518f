package lexer

import (
	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/source"
	"github.com/gorbylang/rubylex/strterm"
	"github.com/gorbylang/rubylex/token"
)

// matchingCloser maps an opening delimiter to its closer for %-literals
// and %w/%i/%q/%Q family (spec §4.3).
func matchingCloser(open int) int {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	case '<':
		return '>'
	default:
		return open
	}
}

// lexStringBegin handles a plain `"`, `'` or `` ` `` opener outside of
// any %-literal form.
func (l *Lexer) lexStringBegin(quote byte) token.Token {
	l.buf.Nextc() // consume the opening quote
	var fn strterm.Func
	switch quote {
	case '\'':
		fn = strterm.StrSquote
	case '`':
		fn = strterm.StrXquote
	default:
		fn = strterm.StrDquote
	}
	term := strterm.NewStringLiteral(fn, 0, int(quote))
	l.strterm = term
	l.setState(EXPR_BEG)
	if fn.Has(strterm.StrXquote) {
		return l.emitRaw(token.TXSTRING_BEG)
	}
	return l.emitRaw(token.TSTRING_BEG)
}

// lexRegexpBegin opens a `/…/` regexp literal.
func (l *Lexer) lexRegexpBegin() token.Token {
	l.buf.Nextc() // consume '/'
	term := strterm.NewStringLiteral(strterm.StrRegexp, 0, '/')
	l.strterm = term
	l.setState(EXPR_BEG)
	return l.emitRaw(token.TREGEXP_BEG)
}

// lexPercentLiteral dispatches the `%`, `%q`, `%Q`, `%w`, `%W`, `%i`,
// `%I`, `%r`, `%s` family (spec §4.3 "Word lists" and the generic
// `%`-literal opener).
func (l *Lexer) lexPercentLiteral() token.Token {
	l.buf.Nextc() // consume '%'
	letter := 0
	c := l.buf.Peek(0)
	if isLetter(c) {
		letter = c
		l.buf.Nextc()
	}
	opener := l.buf.Nextc()
	closer := matchingCloser(opener)

	var fn strterm.Func
	var kind token.Kind
	switch letter {
	case 'q':
		fn, kind = strterm.StrSquote, token.TSTRING_BEG
	case 'Q', 0:
		fn, kind = strterm.StrDquote, token.TSTRING_BEG
	case 'w':
		fn, kind = strterm.StrSword, token.TQWORDS_BEG
	case 'W':
		fn, kind = strterm.StrDword, token.TWORDS_BEG
	case 'i':
		fn, kind = strterm.StrSsym | strterm.StrSword, token.TQSYMBOLS_BEG
	case 'I':
		fn, kind = strterm.StrDsym | strterm.StrDword, token.TSYMBOLS_BEG
	case 'r':
		fn, kind = strterm.StrRegexp, token.TREGEXP_BEG
	case 's':
		fn, kind = strterm.StrSsym, token.TSYMBEG
	default:
		fn, kind = strterm.StrDquote, token.TSTRING_BEG
	}

	paren := 0
	if closer != opener {
		paren = opener
	}
	term := strterm.NewStringLiteral(fn, paren, closer)
	l.strterm = term
	l.setState(EXPR_BEG)
	return l.emitRaw(kind)
}

func isLetter(c int) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

// parseString resumes a parked StringLiteral StrTerm (spec §4.3). It
// reads content until an unescaped terminator, opening `#{`/`#@`/`#$`
// interpolation when the flavor allows it.
func (l *Lexer) parseString(term *strterm.Term) token.Token {
	l.buf.TokenFlush()
	// A run of plain content is scanned byte-by-byte so balanced
	// Paren/End pairs inside an arbitrary-delimiter %-literal nest
	// correctly (e.g. %q(a(b)c)).
	var content []byte
	for {
		c := l.buf.Peek(0)
		switch {
		case c == source.EOF:
			l.diags.Err(diagnostic.Message{Kind: diagnostic.UnterminatedString}, l.buf.RangeFromTok())
			l.strterm = nil
			return l.finishStringContent(content, term)

		case term.Paren != 0 && c == term.Paren:
			term.Nesting++
			content = append(content, byte(c))
			l.buf.Nextc()

		case c == term.End:
			if term.Nesting > 0 {
				term.Nesting--
				content = append(content, byte(c))
				l.buf.Nextc()
				continue
			}
			if len(content) > 0 {
				return l.finishStringContent(content, term)
			}
			l.buf.Nextc()
			return l.finishStringTerminator(term)

		case c == '\\':
			l.buf.Nextc()
			if term.Func.Interpolates() {
				decoded := l.decodeEscape()
				content = append(content, decoded...)
			} else {
				nc := l.buf.Nextc()
				if nc == term.End || nc == '\\' || (term.Paren != 0 && nc == term.Paren) {
					content = append(content, byte(nc))
				} else {
					content = append(content, '\\')
					if nc != source.EOF {
						content = append(content, byte(nc))
					}
				}
			}

		case c == '#' && term.Func.Interpolates() && (l.buf.Peek(1) == '{' || l.buf.Peek(1) == '@' || l.buf.Peek(1) == '$'):
			if len(content) > 0 {
				return l.finishStringContent(content, term)
			}
			return l.openInterpolation(term)

		default:
			content = append(content, byte(c))
			l.buf.Nextc()
		}
	}
}

func (l *Lexer) finishStringContent(content []byte, term *strterm.Term) token.Token {
	l.strterm = term
	return l.emit(token.TSTRING_CONTENT, string(content))
}

func (l *Lexer) finishStringTerminator(term *strterm.Term) token.Token {
	l.strterm = nil
	kind := token.TSTRING_END
	if term.Func.Has(strterm.StrRegexp) {
		kind = token.TREGEXP_END
		l.setState(EXPR_END)
		tok := l.emitRaw(kind)
		return l.lexRegexpOptions(tok)
	}
	if term.Func.Has(strterm.StrLabel) && l.isLabelHere() {
		l.buf.Nextc()
		l.setState(EXPR_ARG | EXPR_LABELED)
		return l.emitRaw(token.TLABEL_END)
	}
	l.setState(EXPR_END)
	return l.emitRaw(kind)
}

// lexRegexpOptions consumes the run of letters after a closing '/' as
// regexp options, surfaced as a single TREGEXP_OPT token following
// TREGEXP_END.
func (l *Lexer) lexRegexpOptions(end token.Token) token.Token {
	// end is returned unchanged; the option letters, if any, are parked
	// in pendingRegexpOpt and handed back as TREGEXP_OPT by the next
	// NextToken call.
	l.buf.TokenFlush()
	for isLetter(l.buf.Peek(0)) {
		l.buf.Nextc()
	}
	if l.buf.Pos() == l.buf.TokenStart() {
		return end
	}
	opts := l.buf.CurrentTokenText()
	l.pendingRegexpOpt = &opts
	return end
}

// openInterpolation handles `#{`, `#@name`, `#$name` inside an
// interpolating string flavor.
func (l *Lexer) openInterpolation(term *strterm.Term) token.Token {
	if l.buf.Peek(1) == '{' {
		l.buf.Nextc() // '#'
		l.buf.Nextc() // '{'
		l.interpStack = append(l.interpStack, term)
		l.braceNestStack = append(l.braceNestStack, l.scope.BraceNest)
		l.scope.BraceNest = 0
		l.strterm = nil
		l.setState(EXPR_BEG)
		l.scope.Cond.Push(false)
		l.scope.Cmdarg.Push(false)
		return l.emitRaw(token.TSTRING_DBEG)
	}
	// `#@ivar` / `#@@cvar` / `#$gvar`: single-token variable interpolation.
	l.buf.Nextc() // '#'
	for {
		c := l.buf.Peek(0)
		if c == source.EOF || isSpaceByte(c) || c == '"' || c == term.End {
			break
		}
		l.buf.Nextc()
		if !isIdentCont(l.buf.Peek(0)) && c != '@' && c != '$' {
			break
		}
	}
	l.strterm = term
	l.setState(EXPR_BEG)
	return l.emitRaw(token.TSTRING_DVAR)
}

// popInterp restores the StrTerm parked by openInterpolation once the
// matching `}` is reached at brace_nest == 0.
func (l *Lexer) popInterp() {
	l.scope.Cond.Lexpop()
	l.scope.Cmdarg.Lexpop()

	if n := len(l.braceNestStack); n > 0 {
		l.scope.BraceNest = l.braceNestStack[n-1]
		l.braceNestStack = l.braceNestStack[:n-1]
	} else {
		l.scope.BraceNest = 0
	}

	n := len(l.interpStack)
	if n == 0 {
		l.setState(EXPR_END)
		return
	}
	term := l.interpStack[n-1]
	l.interpStack = l.interpStack[:n-1]
	l.strterm = term
	l.setState(EXPR_BEG)
}

// decodeEscape decodes one backslash escape sequence inside a
// dquote-family literal: standard C escapes plus \xHH, \uHHHH, \u{...},
// \cX/\C-X/\M-X control/meta combinations (spec §4.3).
func (l *Lexer) decodeEscape() []byte {
	c := l.buf.Nextc()
	switch c {
	case 'n':
		return []byte{'\n'}
	case 't':
		return []byte{'\t'}
	case 'r':
		return []byte{'\r'}
	case 's':
		return []byte{' '}
	case '0':
		return []byte{0}
	case 'a':
		return []byte{7}
	case 'b':
		return []byte{8}
	case 'e':
		return []byte{27}
	case 'f':
		return []byte{12}
	case 'v':
		return []byte{11}
	case 'x':
		return l.decodeHexEscape(2)
	case 'u':
		return l.decodeUnicodeEscape()
	case 'c':
		return l.decodeControlEscape()
	case 'C':
		if l.buf.Peek(0) == '-' {
			l.buf.Nextc()
		}
		return l.decodeControlEscape()
	case 'M':
		if l.buf.Peek(0) == '-' {
			l.buf.Nextc()
		}
		inner := l.decodeEscape()
		if len(inner) == 1 {
			inner[0] |= 0x80
		}
		return inner
	case '\n':
		return nil
	case source.EOF:
		return nil
	default:
		return []byte{byte(c)}
	}
}

func (l *Lexer) decodeHexEscape(maxDigits int) []byte {
	val := 0
	n := 0
	for n < maxDigits && isHexDigit(l.buf.Peek(0)) {
		val = val*16 + hexVal(l.buf.Nextc())
		n++
	}
	return []byte{byte(val)}
}

func (l *Lexer) decodeUnicodeEscape() []byte {
	if l.buf.Peek(0) == '{' {
		l.buf.Nextc()
		var out []byte
		for {
			for isSpaceByte(l.buf.Peek(0)) {
				l.buf.Nextc()
			}
			if l.buf.Peek(0) == '}' || l.buf.Peek(0) == source.EOF {
				break
			}
			val := 0
			for isHexDigit(l.buf.Peek(0)) {
				val = val*16 + hexVal(l.buf.Nextc())
			}
			out = append(out, runeToUTF8(val)...)
		}
		if l.buf.Peek(0) == '}' {
			l.buf.Nextc()
		}
		return out
	}
	val := 0
	for n := 0; n < 4 && isHexDigit(l.buf.Peek(0)); n++ {
		val = val*16 + hexVal(l.buf.Nextc())
	}
	return runeToUTF8(val)
}

func (l *Lexer) decodeControlEscape() []byte {
	c := l.buf.Nextc()
	if c == '\\' {
		inner := l.decodeEscape()
		if len(inner) == 1 {
			c = int(inner[0])
		}
	}
	return []byte{byte(c & 0x9f)}
}

// consumeEscapeByte is used by the `?\x` character-literal dispatcher,
// which only needs to advance past the escape, not decode its value.
func (l *Lexer) consumeEscapeByte() {
	l.decodeEscape()
}

func isHexDigit(c int) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c int) int {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func runeToUTF8(r int) []byte {
	return []byte(string(rune(r)))
}
