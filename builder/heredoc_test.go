package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gorbylang/rubylex/ast"
	"github.com/gorbylang/rubylex/token"
)

func TestHeredocBuildsHeredocNodeWithDistinctRanges(t *testing.T) {
	b := newBuilder()
	parts := []ast.Node{{Type: ast.Str, Value: "hello\n"}}
	headLoc := token.Range{Begin: 0, End: 6}
	bodyLoc := token.Range{Begin: 7, End: 13}
	endLoc := token.Range{Begin: 13, End: 16}

	n := b.Heredoc(parts, false, headLoc, bodyLoc, endLoc)
	assert.Equal(t, ast.Heredoc, n.Type)
	assert.Equal(t, bodyLoc, n.RangeOf("heredoc_body_l"))
	assert.Equal(t, endLoc, n.RangeOf("heredoc_end_l"))
	assert.Equal(t, token.Range{Begin: 0, End: 16}, n.Expression())
	assert.Equal(t, parts, n.Children)
}

func TestHeredocXheredocBuildsXHeredocNode(t *testing.T) {
	b := newBuilder()
	n := b.Heredoc(nil, true, token.Range{}, token.Range{}, token.Range{})
	assert.Equal(t, ast.XHeredoc, n.Type)
}
