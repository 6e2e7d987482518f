package lexer

import (
	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/source"
	"github.com/gorbylang/rubylex/strterm"
	"github.com/gorbylang/rubylex/token"
)

// operatorSymbols lists every punctuation sequence that forms a bare
// operator symbol (`:+`, `:<=>`, `:[]=`, ...), longest first so the scan
// below can match greedily.
var operatorSymbols = []string{
	"[]=", "[]", "<=>", "===", "==", "=~", "!~", "!=",
	"<<", ">>", "<=", ">=", "**", "+@", "-@",
	"+", "-", "*", "/", "%", "<", ">", "!", "~", "&", "|", "^",
}

// lexColon implements spec §4.2 "Colons": `::`, a plain `:` (ternary),
// and the `:symbol` / `:"symbol"` bare-and-interpolated symbol forms.
func (l *Lexer) lexColon() token.Token {
	last := l.state
	l.buf.Nextc() // consume ':'

	if l.buf.Peek(0) == ':' {
		l.buf.Nextc()
		if last.IsBeg() || last.Has(EXPR_CLASS) || (last.IsArg() && l.spaceSeen) {
			l.setState(EXPR_BEG)
			return l.emitRaw(token.TCOLON3)
		}
		l.afterOperatorState(last)
		return l.emitRaw(token.TCOLON2)
	}

	if !last.IsBeg() && !last.Has(EXPR_FNAME) && !(last.IsArg() && l.spaceSeen) {
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TCOLON)
	}

	c := l.buf.Peek(0)
	switch {
	case c == '\'':
		l.buf.Nextc()
		term := strterm.NewStringLiteral(strterm.StrSquote|strterm.StrSsym, 0, int(c))
		l.strterm = term
		l.setState(EXPR_FNAME)
		return l.emitRaw(token.TSYMBEG)
	case c == '"':
		l.buf.Nextc()
		term := strterm.NewStringLiteral(strterm.StrDquote|strterm.StrDsym, 0, int(c))
		l.strterm = term
		l.setState(EXPR_FNAME)
		return l.emitRaw(token.TSYMBEG)
	case isIdentStart(c) || c == '@' || c == '$':
		return l.lexBareSymbol()
	default:
		for _, op := range operatorSymbols {
			if l.matchesPunctSeq(op) {
				for range op {
					l.buf.Nextc()
				}
				l.setState(EXPR_END)
				return l.emit(token.TSYMBOL, op)
			}
		}
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TCOLON)
	}
}

func (l *Lexer) matchesPunctSeq(seq string) bool {
	for i := 0; i < len(seq); i++ {
		if l.buf.Peek(i) != int(seq[i]) {
			return false
		}
	}
	return true
}

// lexBareSymbol scans `:identifier`, `:Constant!`, `:@ivar`, `:@@cvar`,
// `:$gvar` as a single TSYMBOL token.
func (l *Lexer) lexBareSymbol() token.Token {
	if l.buf.Peek(0) == '@' {
		l.buf.Nextc()
		if l.buf.Peek(0) == '@' {
			l.buf.Nextc()
		}
	} else if l.buf.Peek(0) == '$' {
		l.buf.Nextc()
	}
	for isIdentCont(l.buf.Peek(0)) {
		l.buf.Nextc()
	}
	if c := l.buf.Peek(0); c == '!' || c == '?' || c == '=' {
		if !(c == '=' && (l.buf.Peek(1) == '=' || l.buf.Peek(1) == '~' || l.buf.Peek(1) == '>')) {
			l.buf.Nextc()
		}
	}
	l.setState(EXPR_END)
	return l.emitRaw(token.TSYMBOL)
}

// lexInstanceOrClassVar implements spec §4.2 "`@`/`@@` variables".
func (l *Lexer) lexInstanceOrClassVar() token.Token {
	l.buf.Nextc() // consume '@'
	kind := token.TIVAR
	if l.buf.Peek(0) == '@' {
		l.buf.Nextc()
		kind = token.TCVAR
	}
	if !isIdentStart(l.buf.Peek(0)) {
		l.setState(EXPR_END)
		return l.emitRaw(kind)
	}
	for isIdentCont(l.buf.Peek(0)) {
		l.buf.Nextc()
	}
	l.setState(EXPR_END)
	return l.emitRaw(kind)
}

// lexGlobalVar implements spec §4.2 "`$` globals", including the
// special one-byte names (`$~`, `$&`, `` $` ``, `$'`, `$+`, `$0`..`$9`)
// and the nth-ref overflow check against MAX_NTH_REF (2^30 - 1).
func (l *Lexer) lexGlobalVar() token.Token {
	l.buf.Nextc() // consume '$'
	c := l.buf.Peek(0)

	switch c {
	case '~', '&', '`', '\'', '+', '*', '$', '?', '!', '@', '/', '\\', ';', ',', '.', '=', ':', '<', '>', '"':
		l.buf.Nextc()
		l.setState(EXPR_END)
		return l.emitRaw(token.TGVAR)
	case source.EOF:
		l.setState(EXPR_END)
		return l.emitRaw(token.TGVAR)
	}

	if isDigit(c) {
		for isDigit(l.buf.Peek(0)) {
			l.buf.Nextc()
		}
		l.setState(EXPR_END)
		return l.checkNthRefOverflow()
	}

	for isIdentCont(l.buf.Peek(0)) {
		l.buf.Nextc()
	}
	l.setState(EXPR_END)
	return l.emitRaw(token.TGVAR)
}

// maxNthRef is 2^30 - 1, the largest nth-ref MRI accepts before folding
// the reference to nil with a warning (spec §4.2, §6 NthRefIsTooBig).
const maxNthRef = 1<<30 - 1

func (l *Lexer) checkNthRefOverflow() token.Token {
	text := l.buf.CurrentTokenText()
	val := 0
	overflow := false
	for i := 1; i < len(text); i++ { // skip leading '$'
		val = val*10 + int(text[i]-'0')
		if val > maxNthRef {
			overflow = true
		}
	}
	if overflow {
		l.diags.Warn(diagnostic.Message{Kind: diagnostic.NthRefIsTooBig, Name: text}, l.buf.RangeFromTok())
	}
	return l.emitRaw(token.TNTH_REF)
}
