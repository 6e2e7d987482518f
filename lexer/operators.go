package lexer

import (
	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/source"
	"github.com/gorbylang/rubylex/strterm"
	"github.com/gorbylang/rubylex/token"
)

// warnBalanced implements spec §4.2 "Ambiguity warnings": warns
// AmbiguousOperator exactly when the prior state is not
// CLASS|DOT|FNAME|ENDFN, space_seen is true, and the lookahead is
// non-space.
func (l *Lexer) warnBalanced(lastState State, op, interpretedAs string) {
	if lastState.HasAny(EXPR_CLASS|EXPR_DOT|EXPR_FNAME|EXPR_ENDFN) {
		return
	}
	if !l.spaceSeen {
		return
	}
	if isSpaceByte(l.buf.Peek(0)) {
		return
	}
	l.diags.Warn(diagnostic.Message{Kind: diagnostic.AmbiguousOperator, Operator: op, InterpretedAs: interpretedAs}, l.buf.RangeFromTok())
}

func (l *Lexer) afterOperatorState(lastState State) {
	if lastState.IsAfterOperator() {
		l.setState(EXPR_ARG)
	} else {
		l.setState(EXPR_BEG)
	}
}

// lexOperator dispatches the punctuation/operator cluster (spec §4.2).
func (l *Lexer) lexOperator() token.Token {
	last := l.state
	spaceSeen := l.spaceSeen
	c := l.buf.Nextc()

	switch c {
	case '*':
		return l.lexStar(last, spaceSeen)
	case '+':
		return l.lexPlus(last, spaceSeen)
	case '-':
		return l.lexMinus(last, spaceSeen)
	case '?':
		return l.lexQmark(last)
	case '/':
		return l.lexSlash(last, spaceSeen)
	case '.':
		return l.lexDot(last)
	case '(':
		return l.lexLparen(last, spaceSeen)
	case '[':
		return l.lexLbrack(last, spaceSeen)
	case '{':
		return l.lexLbrace(last)
	case ')':
		l.scope.Cond.Pop()
		l.scope.Cmdarg.Pop()
		l.scope.ParenNest--
		l.setState(EXPR_ENDFN)
		return l.emitRaw(token.TRPAREN)
	case ']':
		l.scope.Cond.Pop()
		l.scope.Cmdarg.Pop()
		l.scope.ParenNest--
		l.setState(EXPR_END)
		return l.emitRaw(token.TRBRACK)
	case '}':
		if l.scope.BraceNest == 0 {
			return l.closeStringInterpolation()
		}
		l.scope.Cond.Pop()
		l.scope.Cmdarg.Pop()
		l.scope.BraceNest--
		l.setState(EXPR_END)
		return l.emitRaw(token.TRCURLY)
	case ',':
		l.setState(EXPR_BEG | EXPR_LABEL)
		return l.emitRaw(token.TCOMMA)
	case ';':
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TSEMI)
	case '%':
		return l.lexPercent(last, spaceSeen)
	case '&':
		return l.lexAmp(last, spaceSeen)
	case '|':
		return l.lexPipe(last)
	case '^':
		if l.buf.Peek(0) == '=' {
			l.buf.Nextc()
			l.setState(EXPR_BEG)
			return l.emitRaw(token.TOP_ASGN)
		}
		l.afterOperatorState(last)
		return l.emitRaw(token.TCARET)
	case '~':
		l.afterOperatorState(last)
		return l.emitRaw(token.TTILDE)
	case '!':
		return l.lexBang(last)
	case '=':
		return l.lexEquals(last)
	case '<':
		return l.lexLtOperator(last, spaceSeen)
	case '>':
		return l.lexGt(last)
	case '\\':
		return l.emitRaw(token.TBACKSLASH)
	default:
		l.diags.Err(diagnostic.Message{Kind: diagnostic.InvalidChar, Byte: byte(c)}, l.buf.RangeFromTok())
		l.buf.TokenFlush()
		return l.dispatch()
	}
}

func (l *Lexer) lexStar(last State, spaceSeen bool) token.Token {
	if l.buf.Peek(0) == '*' {
		l.buf.Nextc()
		if l.buf.Peek(0) == '=' {
			l.buf.Nextc()
			l.setState(EXPR_BEG)
			return l.emitRaw(token.TOP_ASGN)
		}
		if last.IsSpacearg(spaceSeen, l.buf.Peek(0)) {
			l.diags.Warn(diagnostic.Message{Kind: diagnostic.DStarInterpretedAsArgPrefix}, l.buf.RangeFromTok())
			l.setState(EXPR_ARG | EXPR_LABEL)
			return l.emitRaw(token.TDSTAR)
		}
		if last.IsBeg() {
			l.setState(EXPR_ARG | EXPR_LABEL)
			return l.emitRaw(token.TDSTAR)
		}
		l.warnBalanced(last, "**", "argument prefix")
		l.afterOperatorState(last)
		return l.emitRaw(token.TPOW)
	}
	if l.buf.Peek(0) == '=' {
		l.buf.Nextc()
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TOP_ASGN)
	}
	if last.IsSpacearg(spaceSeen, l.buf.Peek(0)) {
		l.diags.Warn(diagnostic.Message{Kind: diagnostic.StarInterpretedAsArgPrefix}, l.buf.RangeFromTok())
		l.setState(EXPR_ARG | EXPR_LABEL)
		return l.emitRaw(token.TSTAR)
	}
	if last.IsBeg() {
		l.setState(EXPR_ARG | EXPR_LABEL)
		return l.emitRaw(token.TSTAR)
	}
	l.warnBalanced(last, "*", "argument prefix")
	l.afterOperatorState(last)
	return l.emitRaw(token.TSTAR2)
}

func (l *Lexer) lexPlus(last State, spaceSeen bool) token.Token {
	if l.buf.Peek(0) == '=' {
		l.buf.Nextc()
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TOP_ASGN)
	}
	unary := last.IsBeg() || (last.IsSpacearg(spaceSeen, l.buf.Peek(0)))
	if unary {
		if isDigit(l.buf.Peek(0)) {
			l.setState(EXPR_BEG)
			return l.lexNumeric() // the '+' already begins the token, so it stays in the literal's text
		}
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TUPLUS)
	}
	l.warnBalanced(last, "+", "unary operator")
	l.afterOperatorState(last)
	return l.emitRaw(token.TPLUS)
}

func (l *Lexer) lexMinus(last State, spaceSeen bool) token.Token {
	if l.buf.Peek(0) == '=' {
		l.buf.Nextc()
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TOP_ASGN)
	}
	if l.buf.Peek(0) == '>' {
		l.buf.Nextc()
		l.setState(EXPR_ARG)
		l.scope.LparBeg = -2 // marker consumed by `(` right after `->`
		return l.emitRaw(token.TLAMBDA)
	}
	unary := last.IsBeg() || last.IsSpacearg(spaceSeen, l.buf.Peek(0))
	if unary {
		if isDigit(l.buf.Peek(0)) {
			l.setState(EXPR_BEG)
			return l.lexNumericUnary(token.TUMINUS_NUM)
		}
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TUMINUS)
	}
	l.warnBalanced(last, "-", "unary operator")
	l.afterOperatorState(last)
	return l.emitRaw(token.TMINUS)
}

func (l *Lexer) lexQmark(last State) token.Token {
	// parse_qmark: character literal vs ternary, per spec §4.2 "?".
	if last.IsEnd() {
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TEH)
	}
	c := l.buf.Peek(0)
	if c == source.EOF || isSpaceByte(c) {
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TEH)
	}
	if isIdentCont(c) && isIdentCont(l.buf.Peek(1)) {
		// `?abc` is ambiguous: not a single-char literal, fall back to ternary.
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TEH)
	}
	l.buf.Nextc()
	if c == '\\' {
		l.consumeEscapeByte()
	}
	l.setState(EXPR_END)
	return l.emitRaw(token.TCHAR)
}

func (l *Lexer) lexSlash(last State, spaceSeen bool) token.Token {
	if last.IsBeg() || (last.IsSpacearg(spaceSeen, l.buf.Peek(0))) {
		return l.lexRegexpBegin()
	}
	if l.buf.Peek(0) == '=' {
		l.buf.Nextc()
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TOP_ASGN)
	}
	l.warnBalanced(last, "/", "regexp literal")
	l.afterOperatorState(last)
	return l.emitRaw(token.TDIVIDE)
}

func (l *Lexer) lexDot(last State) token.Token {
	if l.buf.Peek(0) == '.' {
		l.buf.Nextc()
		if l.buf.Peek(0) == '.' {
			l.buf.Nextc()
			if l.buf.Peek(0) == source.EOF || l.buf.Peek(0) == '\n' {
				l.diags.Warn(diagnostic.Message{Kind: diagnostic.TripleDotAtEol}, l.buf.RangeFromTok())
			}
			l.setState(EXPR_BEG)
			if last.IsBeg() {
				return l.emitRaw(token.TBDOT3)
			}
			return l.emitRaw(token.TDOT3)
		}
		l.setState(EXPR_BEG)
		if last.IsBeg() {
			return l.emitRaw(token.TBDOT2)
		}
		return l.emitRaw(token.TDOT2)
	}
	if isDigit(l.buf.Peek(0)) {
		l.diags.Err(diagnostic.Message{Kind: diagnostic.NoDigitsAfterDot}, l.buf.RangeFromTok())
	}
	l.setState(EXPR_DOT)
	return l.emitRaw(token.TDOT)
}

func (l *Lexer) lexLparen(last State, spaceSeen bool) token.Token {
	var kind token.Kind
	switch {
	case last.HasAny(EXPR_BEG_ANY):
		kind = token.TLPAREN
	case spaceSeen && last.IsArg():
		kind = token.TLPAREN_ARG
	default:
		kind = token.TLPAREN2
	}
	if l.scope.LparBeg == -2 {
		l.scope.LparBeg = l.scope.ParenNest
	}
	l.scope.ParenNest++
	l.scope.Cond.Push(false)
	l.scope.Cmdarg.Push(false)
	l.setState(EXPR_BEG | EXPR_LABEL)
	return l.emitRaw(kind)
}

func (l *Lexer) lexLbrack(last State, spaceSeen bool) token.Token {
	var kind token.Kind
	if last.IsAfterOperator() {
		kind = token.TLBRACK2
	} else if last.IsBeg() || (last.IsArg() && spaceSeen) {
		kind = token.TLBRACK
	} else {
		kind = token.TAREF
	}
	l.scope.ParenNest++
	l.scope.Cond.Push(false)
	l.scope.Cmdarg.Push(false)
	l.setState(EXPR_BEG | EXPR_LABEL)
	return l.emitRaw(kind)
}

func (l *Lexer) lexLbrace(last State) token.Token {
	var kind token.Kind
	switch {
	case l.scope.LparBeg >= 0 && l.scope.LparBeg == l.scope.ParenNest:
		l.scope.LparBeg = -1
		kind = token.TLAMBEG
	case last.Has(EXPR_LABELED):
		kind = token.TLBRACE_ARG
	case last.HasAny(EXPR_ARG_ANY):
		kind = token.TLBRACE_ARG
	case last.HasAny(EXPR_END_ANY | EXPR_CLASS):
		kind = token.TLCURLY
	default:
		kind = token.TLBRACE
	}
	l.scope.BraceNest++
	l.scope.Cond.Push(false)
	l.scope.Cmdarg.Push(false)
	l.setState(EXPR_BEG)
	return l.emitRaw(kind)
}

func (l *Lexer) lexPercent(last State, spaceSeen bool) token.Token {
	if last.IsBeg() || (last.IsSpacearg(spaceSeen, l.buf.Peek(0))) {
		return l.lexPercentLiteral()
	}
	if l.buf.Peek(0) == '=' {
		l.buf.Nextc()
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TOP_ASGN)
	}
	l.afterOperatorState(last)
	return l.emitRaw(token.TPERCENT)
}

func (l *Lexer) lexAmp(last State, spaceSeen bool) token.Token {
	if l.buf.Peek(0) == '&' {
		l.buf.Nextc()
		if l.buf.Peek(0) == '=' {
			l.buf.Nextc()
			l.setState(EXPR_BEG)
			return l.emitRaw(token.TOP_ASGN)
		}
		l.afterOperatorState(last)
		return l.emitRaw(token.TANDOP)
	}
	if l.buf.Peek(0) == '.' {
		l.buf.Nextc()
		l.setState(EXPR_DOT)
		return l.emitRaw(token.TANDDOT)
	}
	if l.buf.Peek(0) == '=' {
		l.buf.Nextc()
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TOP_ASGN)
	}
	if last.IsSpacearg(spaceSeen, l.buf.Peek(0)) {
		l.diags.Warn(diagnostic.Message{Kind: diagnostic.AmpersandInterpretedAsArgPrefix}, l.buf.RangeFromTok())
		l.setState(EXPR_ARG)
		return l.emitRaw(token.TAMPER)
	}
	if last.IsBeg() {
		l.setState(EXPR_ARG)
		return l.emitRaw(token.TAMPER)
	}
	l.warnBalanced(last, "&", "argument prefix")
	l.afterOperatorState(last)
	return l.emitRaw(token.TAMPER2)
}

func (l *Lexer) lexPipe(last State) token.Token {
	if l.buf.Peek(0) == '|' {
		l.buf.Nextc()
		if l.buf.Peek(0) == '=' {
			l.buf.Nextc()
			l.setState(EXPR_BEG)
			return l.emitRaw(token.TOP_ASGN)
		}
		l.afterOperatorState(last)
		return l.emitRaw(token.TOROP)
	}
	if l.buf.Peek(0) == '=' {
		l.buf.Nextc()
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TOP_ASGN)
	}
	l.afterOperatorState(last)
	return l.emitRaw(token.TPIPE)
}

func (l *Lexer) lexBang(last State) token.Token {
	if l.buf.Peek(0) == '=' {
		l.buf.Nextc()
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TNEQ)
	}
	if l.buf.Peek(0) == '~' {
		l.buf.Nextc()
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TNMATCH)
	}
	l.setState(EXPR_BEG)
	return l.emitRaw(token.TBANG)
}

func (l *Lexer) lexEquals(last State) token.Token {
	if l.buf.WasBOL() && l.buf.IsWordMatch("begin") {
		// handled earlier in dispatch's '=begin' special case; this
		// branch does nothing.
	}
	if l.buf.Peek(0) == '=' {
		l.buf.Nextc()
		if l.buf.Peek(0) == '=' {
			l.buf.Nextc()
			l.setState(EXPR_BEG)
			return l.emitRaw(token.TEQQ)
		}
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TEQ)
	}
	if l.buf.Peek(0) == '~' {
		l.buf.Nextc()
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TMATCH)
	}
	if l.buf.Peek(0) == '>' {
		l.buf.Nextc()
		l.setState(EXPR_BEG)
		return l.emitRaw(token.TASSOC)
	}
	l.setState(EXPR_BEG)
	return l.emitRaw(token.TEQL)
}

func (l *Lexer) lexGt(last State) token.Token {
	if l.buf.Peek(0) == '=' {
		l.buf.Nextc()
		l.afterOperatorState(last)
		return l.emitRaw(token.TGEQ)
	}
	if l.buf.Peek(0) == '>' {
		l.buf.Nextc()
		if l.buf.Peek(0) == '=' {
			l.buf.Nextc()
			l.setState(EXPR_BEG)
			return l.emitRaw(token.TOP_ASGN)
		}
		l.afterOperatorState(last)
		return l.emitRaw(token.TRSHFT)
	}
	l.afterOperatorState(last)
	return l.emitRaw(token.TGT)
}

// lexLtOperator handles plain `<` comparisons and `<<` once heredoc
// recognition (lexLt in heredoc.go) has declined.
func (l *Lexer) lexLtOperator(last State, spaceSeen bool) token.Token {
	if l.buf.Peek(0) == '=' {
		l.buf.Nextc()
		if l.buf.Peek(0) == '>' {
			l.buf.Nextc()
			l.afterOperatorState(last)
			return l.emitRaw(token.TCMP)
		}
		l.afterOperatorState(last)
		return l.emitRaw(token.TLEQ)
	}
	if l.buf.Peek(0) == '<' {
		l.buf.Nextc()
		if l.buf.Peek(0) == '=' {
			l.buf.Nextc()
			l.setState(EXPR_BEG)
			return l.emitRaw(token.TOP_ASGN)
		}
		l.afterOperatorState(last)
		return l.emitRaw(token.TLSHFT)
	}
	l.afterOperatorState(last)
	return l.emitRaw(token.TLT)
}

// closeStringInterpolation handles `}` at brace_nest == 0 (spec §4.2,
// §8.10): it closes a `#{...}` interpolation rather than a literal
// brace, restoring the StrTerm that was parked when `#{` opened it.
func (l *Lexer) closeStringInterpolation() token.Token {
	tok := l.emitRaw(token.TSTRING_DEND)
	l.popInterp()
	return tok
}

func (l *Lexer) lexNumericUnary(kind token.Kind) token.Token {
	tok := l.lexNumeric()
	tok.Kind = kind
	return tok
}
