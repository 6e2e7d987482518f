package lexer

import (
	"io"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/env"
	"github.com/gorbylang/rubylex/source"
	"github.com/gorbylang/rubylex/token"
)

// Next implements participle's lexer.Lexer interface, letting a grammar
// driver built on participle consume tokens from this lexer directly
// without going through NextToken's native token.Token shape. Every
// token.Kind except END_OF_INPUT becomes its own participle
// lexer.TokenType, keyed by the Kind's String() name via Symbols below;
// END_OF_INPUT is reported as participle's lexer.EOF.
func (l *Lexer) Next() (lexer.Token, error) {
	tok := l.NextToken()
	pos := l.buf.LineColForPos(tok.Loc.Begin)
	typ := lexer.TokenType(tok.Kind)
	if tok.Kind == token.END_OF_INPUT {
		typ = lexer.EOF
	}
	return lexer.Token{
		Type:  typ,
		Value: tok.Value,
		Pos:   pos,
	}, nil
}

// Definition adapts the lexer into participle's lexer.Definition
// interface, so `participle.Build` can take *Definition directly as its
// lexer.Definition option the same way a hand-rolled lexer.Lexer is
// wired into a larger grammar elsewhere in the ecosystem.
type Definition struct{}

// Lex builds a fresh *Lexer over filename/r's full contents. r's bytes
// are assumed already decoded to the encoding the magic comment (or
// UTF-8 default) names; Definition does no decoding of its own.
func (d *Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexBytes(filename, data)
}

// LexString builds a *Lexer over an in-memory string.
func (d *Definition) LexString(filename string, input string) (lexer.Lexer, error) {
	return d.LexBytes(filename, []byte(input))
}

// LexBytes builds a *Lexer over an in-memory byte slice.
func (d *Definition) LexBytes(filename string, input []byte) (lexer.Lexer, error) {
	buf := source.NewBuffer(filename, input)
	scope := env.NewScope()
	diags := &diagnostic.Bag{}
	return New(buf, scope, diags), nil
}

// Symbols implements lexer.Definition, naming every token.Kind by its
// String() spelling so grammar rules can reference tokens by name (e.g.
// `@TIDENTIFIER`) the way participle grammars conventionally do.
func (d *Definition) Symbols() map[string]lexer.TokenType {
	out := make(map[string]lexer.TokenType, token.KindCount)
	for k := token.Kind(0); k < token.KindCount; k++ {
		out[k.String()] = lexer.TokenType(k)
	}
	return out
}
