package lexer

import (
	"bytes"

	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/source"
	"github.com/gorbylang/rubylex/strterm"
	"github.com/gorbylang/rubylex/token"
)

// lexLt implements spec §4.2 "Heredocs": attempts to recognize
// `<<~ID`, `<<-ID`, `<<ID`, `<<"ID"`, `<<'ID'` and `<<`ID`` at the head
// of a `<` token, falling back to the ordinary `<`/`<<`/`<=`/`<=>`
// operator family (lexLtOperator) when the shape does not match or the
// surrounding state forbids it (spec §8.9 "ambiguous `<<`").
func (l *Lexer) lexLt() token.Token {
	last := l.state
	spaceSeen := l.spaceSeen
	l.buf.Nextc() // consume the first '<'

	if l.canBeHeredocBegin(last, spaceSeen) && l.buf.Peek(0) == '<' {
		if tok, ok := l.tryHeredocBegin(); ok {
			return tok
		}
	}

	return l.lexLtOperator(last, spaceSeen)
}

// canBeHeredocBegin restricts heredoc recognition in two cases only:
// right after `.`/`&.` (EXPR_DOT, so `a.<<(b)` is a method call), and in
// an argument state when a space both precedes and follows the `<<`
// (`foo << x`). Otherwise `foo <<HEREDOC` and `foo<<HEREDOC` both
// open a heredoc.
func (l *Lexer) canBeHeredocBegin(last State, spaceSeen bool) bool {
	if last.Has(EXPR_DOT) {
		return false
	}
	if last.IsArg() && spaceSeen && isSpaceByte(l.buf.Peek(1)) {
		return false
	}
	return true
}

// tryHeredocBegin attempts to scan `<ID`, `-ID`, `~ID`, `'ID'`, `"ID"`
// or `` `ID` `` immediately after the `<<` already consumed by lexLt. On
// failure it leaves the buffer exactly as found and returns ok=false so
// the caller can reinterpret the bytes as the shift/heredoc-less `<<`
// operator.
func (l *Lexer) tryHeredocBegin() (token.Token, bool) {
	save := l.buf.Pos()
	l.buf.Nextc() // consume the second '<'

	squiggly, dash := false, false
	switch l.buf.Peek(0) {
	case '~':
		squiggly = true
		l.buf.Nextc()
	case '-':
		dash = true
		l.buf.Nextc()
	}

	var quote byte
	switch l.buf.Peek(0) {
	case '\'', '"', '`':
		quote = byte(l.buf.Peek(0))
		l.buf.Nextc()
	}

	if !isIdentStart(l.buf.Peek(0)) && !(quote != 0 && isDigit(l.buf.Peek(0))) {
		l.rewindTo(save)
		return token.Token{}, false
	}

	idStart := l.buf.Pos()
	for isIdentCont(l.buf.Peek(0)) {
		l.buf.Nextc()
	}
	id := l.buf.SubstrAt(idStart, l.buf.Pos())

	if quote != 0 {
		if l.buf.Peek(0) != int(quote) {
			l.rewindTo(save)
			return token.Token{}, false
		}
		l.buf.Nextc()
	}

	term := strterm.NewHeredocLiteral(id, squiggly, dash, quote, 0, 0, 0)
	l.heredocQueue = append(l.heredocQueue, term)
	l.setState(EXPR_END)
	return l.emitRaw(token.TSTRING_BEG), true
}

// rewindTo pushes bytes back onto the buffer until Pos() == target,
// used when a speculative heredoc scan fails.
func (l *Lexer) rewindTo(target int) {
	for l.buf.Pos() > target {
		l.buf.Pushback(int(l.buf.Bytes()[l.buf.Pos()-1]))
	}
}

// hereDocument scans the body of the heredoc at the front of
// heredocQueue. It is invoked once NextToken notices l.strterm is the
// HeredocLiteral variant, which lexNewline arranges by moving the front
// of heredocQueue into l.strterm at the newline ending the opening line.
func (l *Lexer) hereDocument() token.Token {
	term := l.strterm
	l.buf.TokenFlush()

	if term.Squiggly && term.BodyEnd == 0 {
		term.BodyBegin = l.computeSquigglyIndent(term)
		term.BodyEnd = 1 // marks BodyBegin as populated
	}

	interpolates := term.QuoteStyle != '\''
	var content []byte

	for {
		if l.buf.Peek(0) == source.EOF {
			l.diags.Err(diagnostic.Message{Kind: diagnostic.UnterminatedHeredocID, Name: term.ID}, l.buf.RangeFromTok())
			return l.finishHeredoc(content, term)
		}

		if l.atHeredocTerminator(term) {
			if len(content) > 0 {
				return l.emitHeredocContent(content, term)
			}
			l.buf.TokenFlush()
			l.consumeHeredocTerminatorLine(term)
			return l.finishHeredoc(nil, term)
		}

		if interpolates && l.buf.Peek(0) == '\\' {
			l.buf.Nextc()
			content = append(content, l.decodeEscape()...)
			continue
		}

		if interpolates && l.buf.Peek(0) == '#' && (l.buf.Peek(1) == '{' || l.buf.Peek(1) == '@' || l.buf.Peek(1) == '$') {
			if len(content) > 0 {
				return l.emitHeredocContent(content, term)
			}
			return l.openInterpolation(term)
		}

		content = append(content, byte(l.buf.Nextc()))
	}
}

func (l *Lexer) emitHeredocContent(content []byte, term *strterm.Term) token.Token {
	if term.Squiggly {
		content = dedent(content, heredocIndent(term))
	}
	l.strterm = term
	return l.emit(token.TSTRING_CONTENT, string(content))
}

func (l *Lexer) finishHeredoc(content []byte, term *strterm.Term) token.Token {
	if len(content) > 0 {
		return l.emitHeredocContent(content, term)
	}
	l.heredocQueue = l.heredocQueue[1:]
	if len(l.heredocQueue) > 0 {
		l.strterm = l.heredocQueue[0]
	} else {
		l.strterm = nil
	}
	l.setState(EXPR_END)
	return l.emitRaw(token.TSTRING_END)
}

// atHeredocTerminator reports whether the bytes starting at the current
// beginning-of-line position spell the delimiter line: optional leading
// whitespace (allowed for `<<-`/`<<~`, required absent otherwise) then
// term.ID then end-of-line.
func (l *Lexer) atHeredocTerminator(term *strterm.Term) bool {
	if !l.buf.WasBOL() {
		return false
	}
	p := l.buf.Pos()
	n := 0
	if term.Dash || term.Squiggly {
		for l.buf.Peek(n) == ' ' || l.buf.Peek(n) == '\t' {
			n++
		}
	}
	id := term.ID
	for i := 0; i < len(id); i++ {
		if l.buf.Peek(n+i) != int(id[i]) {
			return false
		}
	}
	after := l.buf.Peek(n + len(id))
	_ = p
	return after == '\n' || after == source.EOF
}

func (l *Lexer) consumeHeredocTerminatorLine(term *strterm.Term) {
	for isSpaceByte(l.buf.Peek(0)) {
		l.buf.Nextc()
	}
	for range term.ID {
		l.buf.Nextc()
	}
	if l.buf.Peek(0) == '\n' {
		l.buf.Nextc()
	}
}

// heredocIndent returns the dedent column computed once per heredoc by
// computeSquigglyIndent and cached in term.BodyBegin.
func heredocIndent(term *strterm.Term) int {
	return term.BodyBegin
}

// computeSquigglyIndent looks ahead from the current cursor (the first
// byte of the heredoc body) to the terminator line, without consuming
// anything, and returns the minimal leading space/tab run shared by
// every non-blank body line (spec §4.3 "Squiggly heredocs" dedent rule;
// tabs count as one column each, matching MRI's do_heredoc).
func (l *Lexer) computeSquigglyIndent(term *strterm.Term) int {
	minIndent := -1
	pos := 0
	for {
		n := 0
		for l.buf.Peek(pos+n) == ' ' || l.buf.Peek(pos+n) == '\t' {
			n++
		}
		id := term.ID
		match := true
		for i := 0; i < len(id); i++ {
			if l.buf.Peek(pos+n+i) != int(id[i]) {
				match = false
				break
			}
		}
		after := l.buf.Peek(pos + n + len(id))
		if match && (after == '\n' || after == source.EOF) {
			break
		}

		blank := l.buf.Peek(pos+n) == '\n' || l.buf.Peek(pos+n) == source.EOF
		if !blank && (minIndent == -1 || n < minIndent) {
			minIndent = n
		}

		p := pos
		for l.buf.Peek(p) != '\n' && l.buf.Peek(p) != source.EOF {
			p++
		}
		if l.buf.Peek(p) == source.EOF {
			break
		}
		pos = p + 1
	}
	if minIndent < 0 {
		minIndent = 0
	}
	return minIndent
}

func dedent(content []byte, n int) []byte {
	if n <= 0 {
		return content
	}
	lines := bytes.Split(content, []byte("\n"))
	for i, line := range lines {
		cut := 0
		for cut < len(line) && cut < n && (line[cut] == ' ' || line[cut] == '\t') {
			cut++
		}
		lines[i] = line[cut:]
	}
	return bytes.Join(lines, []byte("\n"))
}
