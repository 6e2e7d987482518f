// Package lexer implements the hand-written dispatch state machine
// described in spec §4.2: it tokenizes a grammar whose lexical level is
// context-sensitive, interleaving with the string/heredoc sublexer
// (package strterm) and consulting the scope stacks (package env).
package lexer

import (
	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/env"
	"github.com/gorbylang/rubylex/source"
	"github.com/gorbylang/rubylex/strterm"
	"github.com/gorbylang/rubylex/token"
)

// Lexer owns every piece of mutable lexical state: the Source Buffer,
// the Scope Stacks, a possibly-pending StrTerm and the diagnostic sink.
// It is not safe for concurrent use; two Lexers sharing no handles may
// run on separate goroutines (spec §5 "Shared resources").
type Lexer struct {
	buf   *source.Buffer
	scope *env.Scope
	diags *diagnostic.Bag

	state State

	strterm *strterm.Term
	// heredocQueue holds HeredocLiteral terms still waiting for their
	// body to be scanned once the current logical line ends; entries
	// are processed FIFO, since `a(<<~A, <<~B)` defers both in order.
	heredocQueue []*strterm.Term
	// interpStack parks the enclosing StrTerm(s) while `#{...}` content
	// is being tokenized normally; braceNestStack saves the enclosing
	// scope's BraceNest so it can be restored once the interpolation
	// closes (scope.BraceNest itself is reset to 0 for the nested
	// region, so a literal brace opened inside `#{...}` nests against 0,
	// not against whatever brace depth enclosed the string literal).
	interpStack    []*strterm.Term
	braceNestStack []int

	spaceSeen    bool
	commandStart bool
	cmdState     bool
	tokenSeen    bool

	sawCR        bool // SlashRAtMiddleOfLine already warned once
	inKwarg      bool
	pendingNL    bool
	lastNonSpace int // not written or read by any lexer method

	// lastToken is the most recently emitted token's Kind; emit records
	// it, and no dispatch rule reads it.
	lastToken token.Kind

	// pendingRegexpOpt holds the option letters (e.g. "im") collected
	// immediately after a closing '/' so the next NextToken call can
	// surface them as their own TREGEXP_OPT token.
	pendingRegexpOpt *string
}

// New creates a Lexer over buf, sharing scope and diags with whatever
// else (builder, other Lexer instances for nested contexts) needs them.
func New(buf *source.Buffer, scope *env.Scope, diags *diagnostic.Bag) *Lexer {
	return &Lexer{
		buf:          buf,
		scope:        scope,
		diags:        diags,
		state:        EXPR_BEG,
		commandStart: true,
	}
}

// Diagnostics exposes the shared diagnostic bag.
func (l *Lexer) Diagnostics() *diagnostic.Bag { return l.diags }

// State returns the lexer's current EXPR_* bitset, for tests that pin
// exact state transitions per dispatch case (spec §9).
func (l *Lexer) State() State { return l.state }

func (l *Lexer) setState(s State) { l.state = s }

// NextToken is the single entry point the grammar driver calls. It
// either resumes a pending StrTerm or runs the main dispatch loop.
func (l *Lexer) NextToken() token.Token {
	if l.pendingRegexpOpt != nil {
		opts := *l.pendingRegexpOpt
		l.pendingRegexpOpt = nil
		return token.Token{Kind: token.TREGEXP_OPT, Value: opts, Loc: l.buf.RangeFromTok()}
	}

	if l.strterm != nil {
		if l.strterm.IsHeredoc() {
			return l.hereDocument()
		}
		return l.parseString(l.strterm)
	}

	l.cmdState = l.commandStart
	l.commandStart = false
	l.tokenSeen = true

	return l.dispatch()
}

// emit builds a Token of kind k spanning [ptok, pcur) with value text,
// then flushes ptok so the next call starts a fresh token.
func (l *Lexer) emit(k token.Kind, value string) token.Token {
	loc := l.buf.RangeFromTok()
	tok := token.Token{Kind: k, Value: value, Loc: loc}
	l.buf.TokenFlush()
	l.spaceSeen = false
	l.lastToken = k
	return tok
}

func (l *Lexer) emitRaw(k token.Kind) token.Token {
	return l.emit(k, l.buf.CurrentTokenText())
}

func (l *Lexer) emitEOF() token.Token {
	return token.Token{Kind: token.END_OF_INPUT, Loc: token.Range{Begin: l.buf.Pos(), End: l.buf.Pos()}}
}

// dispatch is the relooping dispatcher on the leading byte of the
// current token (spec §4.2).
func (l *Lexer) dispatch() token.Token {
	for {
		l.buf.TokenFlush()
		c := l.buf.Nextc()

		switch {
		case c == source.EOF:
			return l.emitEOF()

		case c == ' ' || c == '\t' || c == '\f' || c == '\v':
			l.spaceSeen = true
			continue

		case c == '\r':
			if l.buf.Peek(0) == '\n' {
				l.spaceSeen = true
				continue
			}
			if !l.sawCR {
				l.sawCR = true
				l.diags.Warn(diagnostic.Message{Kind: diagnostic.SlashRAtMiddleOfLine}, l.buf.RangeFromTok())
			}
			l.spaceSeen = true
			continue

		case c == '\\' && l.buf.Peek(0) == '\n':
			l.buf.Nextc()
			l.spaceSeen = true
			continue

		case c == '\n':
			if tok, ok := l.lexNewline(); ok {
				return tok
			}
			continue

		case c == '#':
			l.handleComment()
			continue

		case c == '=' && l.buf.WasBOLBefore() && l.buf.IsWordMatch("begin"):
			l.skipEmbeddedDocument()
			continue

		default:
			l.buf.Pushback(c)
			return l.dispatchToken()
		}
	}
}

// dispatchToken handles everything that produces an actual token: the
// operator cluster, identifiers, numerics, variable sigils and string
// openers. The leading byte has been pushed back so each sub-dispatcher
// can re-consume it with its own lookahead logic.
func (l *Lexer) dispatchToken() token.Token {
	c := l.buf.Peek(0)
	switch {
	case c == source.EOF:
		l.buf.Nextc()
		return l.emitEOF()
	case isDigit(c):
		return l.lexNumeric()
	case c == '"', c == '\'', c == '`':
		return l.lexStringBegin(byte(c))
	case c == ':':
		return l.lexColon()
	case c == '@':
		return l.lexInstanceOrClassVar()
	case c == '$':
		return l.lexGlobalVar()
	case c == '<':
		return l.lexLt()
	case isIdentStart(c):
		return l.lexIdentifier()
	default:
		return l.lexOperator()
	}
}

// lexNewline implements spec §4.2 "Newlines": a '\n' is emitted as TNL
// only when the prior state is not continuation-eligible, folding
// trailing `&.`/`.` continuations into the same logical line. When a
// heredoc is queued, its body starts right after this newline: the term
// becomes l.strterm and no continuation folding is attempted.
func (l *Lexer) lexNewline() (token.Token, bool) {
	suppress := l.state.HasAny(EXPR_BEG|EXPR_CLASS|EXPR_FNAME|EXPR_DOT) && !l.state.Has(EXPR_LABELED)
	if l.state.HasAny(EXPR_ARG) && l.state.Has(EXPR_LABELED) {
		suppress = false
	}

	if len(l.heredocQueue) > 0 && len(l.interpStack) == 0 {
		l.strterm = l.heredocQueue[0]
		l.commandStart = true
		l.setState(EXPR_BEG)
		if suppress && !l.inKwarg {
			return l.hereDocument(), true
		}
		return l.emit(token.TNL, "\n"), true
	}

	if l.tryFoldContinuation() {
		return token.Token{}, false
	}

	l.commandStart = true
	l.setState(EXPR_BEG)

	if l.inKwarg {
		return l.emit(token.TNL, "\n"), true
	}
	if suppress {
		return token.Token{}, false
	}
	return l.emit(token.TNL, "\n"), true
}

// tryFoldContinuation looks past the newline just consumed for a run of
// whitespace followed by a leading '.' or '&.' and, if found, consumes
// the whitespace, leaving the '.' or '&.' for the next token, so the two
// lines read as one logical line.
func (l *Lexer) tryFoldContinuation() bool {
	save := l.buf.Pos()
	for {
		c := l.buf.Peek(0)
		if c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v' {
			l.buf.Nextc()
			continue
		}
		break
	}
	if l.buf.Peek(0) == '.' && l.buf.Peek(1) != '.' {
		return true
	}
	if l.buf.Peek(0) == '&' && l.buf.Peek(1) == '.' {
		return true
	}
	// Not a continuation: undo the whitespace skip so it is re-scanned
	// normally (it will just set space_seen again).
	for l.buf.Pos() > save {
		l.buf.Pushback(int(l.buf.Bytes()[l.buf.Pos()-1]))
	}
	return false
}

func isDigit(c int) bool { return c >= '0' && c <= '9' }

func isIdentStart(c int) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentCont(c int) bool { return isIdentStart(c) || isDigit(c) }
