package builder

import (
	"github.com/gorbylang/rubylex/ast"
	"github.com/gorbylang/rubylex/token"
)

// Heredoc implements spec §4.4's heredoc tree shaping: the lexer
// produces a flat run of TSTRING_CONTENT/interpolation tokens for the
// body plus a separate terminator location; the builder wraps them into
// a Heredoc (or XHeredoc, for a backtick heredoc) node whose
// heredoc_body_l spans just the body text and heredoc_end_l spans the
// terminator line, distinct from expression_l which spans the whole
// `<<~EOF ... EOF` construct starting at the opening delimiter.
func (b *Builder) Heredoc(parts []ast.Node, xheredoc bool, headLoc, bodyLoc, endLoc token.Range) ast.Node {
	typ := ast.Heredoc
	if xheredoc {
		typ = ast.XHeredoc
	}
	return ast.Node{
		Type:     typ,
		Children: parts,
		Loc: map[string]token.Range{
			"expression_l":   joinLoc(headLoc, bodyLoc, endLoc),
			"heredoc_body_l": bodyLoc,
			"heredoc_end_l":  endLoc,
		},
	}
}
