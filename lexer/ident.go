package lexer

import "github.com/gorbylang/rubylex/token"

// lexIdentifier implements spec §4.2 "Identifiers": consume identifier
// bytes, then disambiguate FID/keyword/label/plain identifier.
func (l *Lexer) lexIdentifier() token.Token {
	startsUpper := isUpper(l.buf.Peek(0))
	for {
		c := l.buf.Peek(0)
		if !isIdentCont(c) {
			break
		}
		l.buf.Nextc()
	}

	// Trailing `!`/`?` promote to TFID unless a single `=` follows: `foo!=`
	// lexes as `foo` then `!=`, while `foo?==` keeps `foo?` and leaves
	// `==` for the next token.
	isPredicateOrBang := false
	if c := l.buf.Peek(0); c == '!' || c == '?' {
		if !(l.buf.Peek(1) == '=' && l.buf.Peek(2) != '=') {
			l.buf.Nextc()
			isPredicateOrBang = true
		}
	}

	name := l.buf.CurrentTokenText()

	// Trailing `=` promotes to TIDENTIFIER (setter name) only in
	// EXPR_FNAME, and not when followed by `~`, `>`, or `=`, except for
	// `==>` (`foo==` lexes as `foo`, `==`; `foo==>` as `foo=`, `=>`).
	if l.state.Has(EXPR_FNAME) && !isPredicateOrBang {
		if c := l.buf.Peek(0); c == '=' {
			n1, n2 := l.buf.Peek(1), l.buf.Peek(2)
			if n1 != '~' && n1 != '>' && !(n1 == '=' && n2 != '>') {
				l.buf.Nextc()
				name = l.buf.CurrentTokenText()
			}
		}
	}

	if numparamDepth, ok := parseNumparamName(name); ok {
		if isNum := l.scope.Numparam.Register(numparamDepth); isNum {
			l.setState(EXPR_END | EXPR_LABEL)
			return l.emit(token.TIDENTIFIER, name)
		}
	}

	if kw, ok := keywords[name]; ok && !l.state.Has(EXPR_DOT) {
		return l.lexKeyword(name, kw)
	}

	if !isPredicateOrBang && l.isLabelHere() {
		l.buf.Nextc() // consume the ':'
		l.setState(EXPR_ARG | EXPR_LABELED)
		return l.emit(token.TLABEL, name)
	}

	if startsUpper {
		l.afterIdentifierState(name)
		if isPredicateOrBang {
			return l.emit(token.TFID, name)
		}
		return l.emit(token.TCONSTANT, name)
	}

	if isPredicateOrBang {
		l.setState(EXPR_ARG)
		return l.emit(token.TFID, name)
	}

	l.afterIdentifierState(name)
	return l.emit(token.TIDENTIFIER, name)
}

// afterIdentifierState applies "After any identifier, if it matches a
// declared local, state becomes EXPR_END|EXPR_LABEL" (spec §4.2), else
// falls back to the arithmetic/operator default for non-declared names.
func (l *Lexer) afterIdentifierState(name string) {
	if l.scope.Static.IsDeclared(name) {
		l.setState(EXPR_END | EXPR_LABEL)
		return
	}
	if l.state.HasAny(EXPR_BEG_ANY | EXPR_ARG_ANY | EXPR_DOT) {
		if l.scope.Cmdarg.IsActive() {
			l.setState(EXPR_CMDARG)
		} else {
			l.setState(EXPR_ARG)
		}
		return
	}
	if l.state.Has(EXPR_FNAME) {
		l.setState(EXPR_ENDFN)
		return
	}
	l.setState(EXPR_END)
}

// isLabelHere reports whether the identifier just scanned is followed by
// a single `:` (not `::`) in a position where is_label_possible holds;
// no separate method-call-context check is made.
func (l *Lexer) isLabelHere() bool {
	if l.buf.Peek(0) != ':' || l.buf.Peek(1) == ':' {
		return false
	}
	return l.state.IsLabelPossible(l.cmdState)
}

// lexKeyword applies a reserved word's state transition, with `do`'s
// three-way disambiguation (spec §4.2, §8.9): a `do` following a `(`
// whose lpar_beg == paren_nest is KDO_LAMBDA; inside an active cond
// stack it is KDO_COND; with the cmdarg stack active and a state before
// `do` other than EXPR_CMDARG it is KDO_BLOCK; otherwise plain KDO.
// `if`/`unless`/`while`/`until` after an end state or EXPR_LABELED
// produce their *_MOD kinds.
func (l *Lexer) lexKeyword(name string, kw keyword) token.Token {
	lastState := l.state
	l.setState(kw.stateAfter)

	if name == "do" {
		switch {
		case l.scope.LparBeg >= 0 && l.scope.LparBeg == l.scope.ParenNest:
			l.scope.LparBeg = -1
			l.setState(EXPR_BEG)
			return l.emit(token.KDO_LAMBDA, name)
		case l.scope.Cond.IsActive():
			l.setState(EXPR_BEG)
			return l.emit(token.KDO_COND, name)
		case l.scope.Cmdarg.IsActive() && !lastState.Has(EXPR_CMDARG):
			l.setState(EXPR_BEG)
			return l.emit(token.KDO_BLOCK, name)
		default:
			l.setState(EXPR_BEG)
			return l.emit(token.KDO, name)
		}
	}

	switch name {
	case "if", "unless", "while", "until":
		if lastState.IsEnd() || lastState.HasAny(EXPR_LABELED) {
			modKind := map[string]token.Kind{
				"if": token.KIF_MOD, "unless": token.KUNLESS_MOD,
				"while": token.KWHILE_MOD, "until": token.KUNTIL_MOD,
			}[name]
			return l.emit(modKind, name)
		}
	}

	return l.emit(kw.kind, name)
}

func isUpper(c int) bool { return c >= 'A' && c <= 'Z' }

// parseNumparamName reports whether name is exactly `_1`.._9` and, if so,
// the numbered parameter it names.
func parseNumparamName(name string) (int, bool) {
	if len(name) != 2 || name[0] != '_' {
		return 0, false
	}
	if name[1] < '1' || name[1] > '9' {
		return 0, false
	}
	return int(name[1] - '0'), true
}
