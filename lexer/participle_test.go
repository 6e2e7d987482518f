package lexer_test

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorbylang/rubylex/token"

	rubylexer "github.com/gorbylang/rubylex/lexer"
)

func TestDefinitionLexStringAndNext(t *testing.T) {
	def := &rubylexer.Definition{}
	l, err := def.LexString("t.rb", "foo")
	require.NoError(t, err)

	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, lexer.TokenType(token.TIDENTIFIER), tok.Type)
	assert.Equal(t, "foo", tok.Value)

	tok, err = l.Next()
	require.NoError(t, err)
	assert.Equal(t, lexer.EOF, tok.Type)
}

func TestDefinitionLexReadsFromReader(t *testing.T) {
	def := &rubylexer.Definition{}
	l, err := def.Lex("t.rb", strings.NewReader("1 + 2"))
	require.NoError(t, err)

	var kinds []lexer.TokenType
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		kinds = append(kinds, tok.Type)
		if tok.Type == lexer.EOF {
			break
		}
	}
	assert.Equal(t, []lexer.TokenType{
		lexer.TokenType(token.TINTEGER),
		lexer.TokenType(token.TPLUS),
		lexer.TokenType(token.TINTEGER),
		lexer.EOF,
	}, kinds)
}

func TestDefinitionSymbolsCoversEveryKind(t *testing.T) {
	def := &rubylexer.Definition{}
	symbols := def.Symbols()
	assert.Equal(t, lexer.TokenType(token.TIDENTIFIER), symbols["TIDENTIFIER"])
	assert.Equal(t, lexer.TokenType(token.KIF), symbols["KIF"])
	assert.NotContains(t, symbols, "KindCount")
}

func TestDefinitionLexBytesPopulatesPosition(t *testing.T) {
	def := &rubylexer.Definition{}
	l, err := def.LexBytes("t.rb", []byte("a\nb"))
	require.NoError(t, err)

	tok, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, tok.Pos.Line)

	tok, err = l.Next() // skip past the newline handling to the second identifier
	require.NoError(t, err)
	for tok.Type != lexer.TokenType(token.TIDENTIFIER) && tok.Type != lexer.EOF {
		tok, err = l.Next()
		require.NoError(t, err)
	}
	if tok.Type == lexer.TokenType(token.TIDENTIFIER) {
		assert.Equal(t, 2, tok.Pos.Line)
	}
}
