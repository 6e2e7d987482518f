package lexer

import (
	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/token"
)

// lexNumeric implements spec §4.2 "Numeric literals": integers in base
// 2/8/10/16 with `_` digit separators, floats with an exponent, and the
// trailing `r`/`i` rational/imaginary suffixes (composable as `1ri`).
func (l *Lexer) lexNumeric() token.Token {
	isFloat := false
	c := l.buf.Peek(0)

	if c == '0' {
		l.buf.Nextc()
		switch l.buf.Peek(0) {
		case 'x', 'X':
			l.buf.Nextc()
			l.consumeDigits(isHexDigit)
			return l.finishNumeric(token.TINTEGER, false)
		case 'b', 'B':
			l.buf.Nextc()
			l.consumeDigits(isBinDigit)
			return l.finishNumeric(token.TINTEGER, false)
		case 'o', 'O':
			l.buf.Nextc()
			l.consumeDigits(isOctDigit)
			return l.finishNumeric(token.TINTEGER, false)
		case 'd', 'D':
			l.buf.Nextc()
			l.consumeDigits(isDigit)
			return l.finishNumeric(token.TINTEGER, false)
		case '_', '0', '1', '2', '3', '4', '5', '6', '7':
			l.consumeDigits(isOctDigit)
			if l.buf.Peek(0) == '.' && isDigit(l.buf.Peek(1)) {
				break // falls through to decimal/float scanning below
			}
			if l.buf.Peek(0) != '8' && l.buf.Peek(0) != '9' {
				return l.finishNumeric(token.TINTEGER, false)
			}
		}
	}

	l.consumeDigits(isDigit)

	if l.buf.Peek(0) == '.' && isDigit(l.buf.Peek(1)) {
		isFloat = true
		l.buf.Nextc()
		l.consumeDigits(isDigit)
	} else if l.buf.Peek(0) == '.' && !isDigit(l.buf.Peek(1)) {
		// `1.` with no following digit: the dot belongs to the next
		// token (a method call like `1.to_s`), diagnosed once here and
		// left unconsumed.
		l.diags.Err(diagnostic.Message{Kind: diagnostic.FractionAfterNumeric}, l.buf.RangeFromTok())
	}

	if c2 := l.buf.Peek(0); c2 == 'e' || c2 == 'E' {
		save := l.buf.Pos()
		l.buf.Nextc()
		if s := l.buf.Peek(0); s == '+' || s == '-' {
			l.buf.Nextc()
		}
		if isDigit(l.buf.Peek(0)) {
			isFloat = true
			l.consumeDigits(isDigit)
		} else {
			for l.buf.Pos() > save {
				l.buf.Pushback(int(l.buf.Bytes()[l.buf.Pos()-1]))
			}
		}
	}

	kind := token.TINTEGER
	if isFloat {
		kind = token.TFLOAT
	}
	return l.finishNumeric(kind, isFloat)
}

// finishNumeric consumes the optional `r` (rational) and `i`
// (imaginary) suffixes, which may combine as `ri`, then emits.
func (l *Lexer) finishNumeric(kind token.Kind, isFloat bool) token.Token {
	rational := false
	if l.buf.Peek(0) == 'r' && !isIdentCont(l.buf.Peek(1)) {
		l.buf.Nextc()
		rational = true
	}
	imaginary := false
	if l.buf.Peek(0) == 'i' && !isIdentCont(l.buf.Peek(1)) {
		l.buf.Nextc()
		imaginary = true
	}

	switch {
	case imaginary:
		kind = token.TIMAGINARY
	case rational:
		kind = token.TRATIONAL
	}
	_ = isFloat

	l.setState(EXPR_END)
	return l.emitRaw(kind)
}

func (l *Lexer) consumeDigits(pred func(int) bool) {
	lastWasUnderscore := false
	for {
		c := l.buf.Peek(0)
		if c == '_' {
			if lastWasUnderscore {
				break
			}
			lastWasUnderscore = true
			l.buf.Nextc()
			continue
		}
		if !pred(c) {
			break
		}
		lastWasUnderscore = false
		l.buf.Nextc()
	}
}

func isBinDigit(c int) bool { return c == '0' || c == '1' }
func isOctDigit(c int) bool { return c >= '0' && c <= '7' }
