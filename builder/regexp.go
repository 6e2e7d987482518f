package builder

import (
	"github.com/gorbylang/rubylex/ast"
	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/token"
)

// Regexp builds a Regexp node from its already-lexed body and option
// text, running it through the wired static-regexp Engine (spec §4.4,
// §9 Open Question on engine availability): a single-part, non-
// interpolated body is validated eagerly, and syntax errors surface as
// RegexError; named captures are recorded on the node so
// MatchWithLvasgn can declare them without recompiling.
func (b *Builder) Regexp(parts []ast.Node, options string, loc token.Range) ast.Node {
	n := ast.Node{Type: ast.Regexp, Value: options, Children: parts, Loc: map[string]token.Range{"expression_l": loc}}
	if len(parts) == 1 && parts[0].Type == ast.Str {
		result, err := b.RegexpEngine.CompileStatic(parts[0].Value, options)
		if err != nil {
			b.Diags.Err(diagnostic.Message{Kind: diagnostic.RegexError, Description: err.Error()}, loc)
			return n
		}
		n.Captures = result.NamedCaptures
	}
	return n
}

// MatchWithLvasgn implements spec §4.4/§8 S6: `str =~ /re/` where the
// regexp's named captures are statically known declares each capture
// name as a local variable in the current scope, and builds the
// MatchWithLvasgn node carrying both operands.
func (b *Builder) MatchWithLvasgn(lhs, rhs ast.Node, loc token.Range) ast.Node {
	if rhs.Type == ast.Regexp {
		for _, name := range rhs.Captures {
			b.Scope.Static.Declare(name)
		}
	}
	return ast.Node{
		Type:     ast.MatchWithLvasgn,
		Children: []ast.Node{lhs, rhs},
		Loc:      map[string]token.Range{"expression_l": loc, "operator_l": loc},
	}
}
