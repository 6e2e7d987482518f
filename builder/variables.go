package builder

import (
	"strings"

	"github.com/gorbylang/rubylex/ast"
	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/token"
)

// specialGlobalNames are the single-byte-sigil globals spec §4.4 names
// as illegal assignment targets alongside self/nil/true/false/__FILE__
// etc.
var specialGlobalNames = map[string]bool{
	"$~": true, "$&": true, "$`": true, "$'": true, "$+": true,
}

// Accessible implements spec §4.4 "accessible(Lvar)": a bare identifier
// resolves to a local read if declared, else rewrites to an implicit
// zero-argument Send. Matching the top of current_arg_stack is a
// CircularArgumentReference error, but the node is still returned (the
// diagnostic does not suppress output, matching the Warning-level
// treatment given everywhere else a name simply shadows itself).
func (b *Builder) Accessible(name string, loc token.Range) ast.Node {
	if name == b.Scope.CurrentArg() {
		b.Diags.Err(diagnostic.Message{Kind: diagnostic.CircularArgumentReference, Name: name}, loc)
	}
	if b.Scope.Static.IsDeclared(name) {
		return ast.Node{Type: ast.Lvar, Name: name, Declared: true, Loc: map[string]token.Range{"expression_l": loc}}
	}
	return ast.Node{Type: ast.Send, Name: name, Loc: map[string]token.Range{
		"expression_l": loc,
		"selector_l":   loc,
	}}
}

// Assignable implements spec §4.4 "assignable(node)": maps an rvalue
// node to its assignment-variant twin, declaring locals and rejecting
// the handful of syntactically-illegal targets. ok=false means a
// diagnostic was recorded and the caller should treat this production
// as failed (spec §7's error sentinel); a node type with no assignment
// form also yields ok=false, without a diagnostic.
func (b *Builder) Assignable(n ast.Node) (ast.Node, bool) {
	switch n.Name {
	case "__FILE__":
		b.Diags.Err(diagnostic.Message{Kind: diagnostic.CantAssignToFile}, n.Expression())
		return ast.Node{}, false
	case "__LINE__":
		b.Diags.Err(diagnostic.Message{Kind: diagnostic.CantAssignToLine}, n.Expression())
		return ast.Node{}, false
	case "__ENCODING__":
		b.Diags.Err(diagnostic.Message{Kind: diagnostic.CantAssignToEncoding}, n.Expression())
		return ast.Node{}, false
	}
	switch n.Type {
	case ast.Lvar, ast.Send:
		if isNumparamName(n.Name) {
			b.Diags.Err(diagnostic.Message{Kind: diagnostic.CantAssignToNumparam, Name: n.Name}, n.Expression())
			return ast.Node{}, false
		}
		b.Scope.Static.Declare(n.Name)
		n.Type = ast.Lvasgn
		return n, true
	case ast.Ivar:
		n.Type = ast.Ivasgn
		return n, true
	case ast.Gvar:
		if specialGlobalNames[n.Name] || isNthRefName(n.Name) {
			b.Diags.Err(diagnostic.Message{Kind: diagnostic.CantSetVariable, Name: n.Name}, n.Expression())
			return ast.Node{}, false
		}
		n.Type = ast.Gvasgn
		return n, true
	case ast.Cvar:
		n.Type = ast.Cvasgn
		return n, true
	case ast.Const:
		// Dynamic-constant-assignment (assigning a Const inside a
		// def/block body) needs def/class nesting info only the grammar
		// driver tracks; it calls DynamicConstantAssignment directly
		// when that context applies.
		n.Type = ast.Casgn
		return n, true
	case ast.Self:
		b.Diags.Err(diagnostic.Message{Kind: diagnostic.CantAssignToSelf}, n.Expression())
		return ast.Node{}, false
	case ast.Nil:
		b.Diags.Err(diagnostic.Message{Kind: diagnostic.CantAssignToNil}, n.Expression())
		return ast.Node{}, false
	case ast.True:
		b.Diags.Err(diagnostic.Message{Kind: diagnostic.CantAssignToTrue}, n.Expression())
		return ast.Node{}, false
	case ast.False:
		b.Diags.Err(diagnostic.Message{Kind: diagnostic.CantAssignToFalse}, n.Expression())
		return ast.Node{}, false
	default:
		return ast.Node{}, false
	}
}

func isNumparamName(name string) bool {
	return len(name) == 2 && name[0] == '_' && name[1] >= '1' && name[1] <= '9'
}

func isNthRefName(name string) bool {
	if len(name) < 2 || name[0] != '$' {
		return false
	}
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// OpAssign implements spec §4.4 "op_assign": `lhs op= rhs` rewrites to
// AndAsgn/OrAsgn for `&&=`/`||=`, else OpAsgn carrying the trimmed
// operator. An Index lhs becomes an IndexAsgn carrying the trimmed
// operator, whose Children are the index's children followed by rhs; it
// is not wrapped in an OpAsgn and has no empty value slot.
func (b *Builder) OpAssign(lhs ast.Node, op string, rhs ast.Node, loc token.Range) (ast.Node, bool) {
	switch op {
	case "&&=":
		return ast.Node{Type: ast.AndAsgn, Children: []ast.Node{lhs, rhs}, Loc: map[string]token.Range{"expression_l": loc}}, true
	case "||=":
		return ast.Node{Type: ast.OrAsgn, Children: []ast.Node{lhs, rhs}, Loc: map[string]token.Range{"expression_l": loc}}, true
	}
	trimmed := strings.TrimSuffix(op, "=")
	if lhs.Type == ast.Index {
		return ast.Node{
			Type:     ast.IndexAsgn,
			Operator: trimmed,
			Children: append(append([]ast.Node{}, lhs.Children...), rhs),
			Loc:      map[string]token.Range{"expression_l": loc, "operator_l": loc},
		}, true
	}
	return ast.Node{
		Type:     ast.OpAsgn,
		Operator: trimmed,
		Children: []ast.Node{lhs, rhs},
		Loc:      map[string]token.Range{"expression_l": loc, "operator_l": loc},
	}, true
}
