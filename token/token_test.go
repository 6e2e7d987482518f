package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gorbylang/rubylex/token"
)

func TestRangeJoin(t *testing.T) {
	a := token.Range{Begin: 2, End: 5}
	b := token.Range{Begin: 0, End: 3}
	assert.Equal(t, token.Range{Begin: 0, End: 5}, a.Join(b))
	assert.Equal(t, token.Range{Begin: 0, End: 5}, b.Join(a))

	assert.Equal(t, a, a.Join(token.Range{}))
	assert.Equal(t, a, token.Range{}.Join(a))
}

func TestJoinAll(t *testing.T) {
	got := token.JoinAll(
		token.Range{Begin: 10, End: 12},
		token.Range{},
		token.Range{Begin: 1, End: 3},
	)
	assert.Equal(t, token.Range{Begin: 1, End: 12}, got)
	assert.Equal(t, token.Range{}, token.JoinAll())
}

func TestRangeSizeAndEmpty(t *testing.T) {
	r := token.Range{Begin: 4, End: 9}
	assert.Equal(t, 5, r.Size())
	assert.False(t, r.Empty())

	empty := token.Range{Begin: 3, End: 3}
	assert.True(t, empty.Empty())
	assert.Equal(t, 0, empty.Size())
}

func TestTokenEOF(t *testing.T) {
	assert.True(t, token.Token{Kind: token.END_OF_INPUT}.EOF())
	assert.False(t, token.Token{Kind: token.TIDENTIFIER}.EOF())
}

func TestTokenStringTruncatesLongValues(t *testing.T) {
	tok := token.Token{Kind: token.TSTRING_CONTENT, Value: "short", Loc: token.Range{Begin: 0, End: 5}}
	assert.Contains(t, tok.String(), `"short"`)

	long := token.Token{Kind: token.TSTRING_CONTENT, Value: "0123456789012345678901234567890", Loc: token.Range{Begin: 0, End: 30}}
	s := long.String()
	assert.Contains(t, s, "...")
	assert.NotContains(t, s, "0123456789012345678901234567890")
}

func TestTokenStringOmitsValueWhenEmpty(t *testing.T) {
	tok := token.Token{Kind: token.TPLUS, Loc: token.Range{Begin: 1, End: 2}}
	assert.Equal(t, "TPLUS@1..2", tok.String())
}
