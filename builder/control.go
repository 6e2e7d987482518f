package builder

import (
	"github.com/gorbylang/rubylex/ast"
	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/token"
)

// DynamicConstantAssignment records spec §4.4's dynamic-constant-
// assignment error; the grammar driver calls this directly once it
// knows n.Type == ast.Const is being assigned inside a def or block
// body, since Builder has no nesting-context of its own.
func (b *Builder) DynamicConstantAssignment(n ast.Node) {
	b.Diags.Err(diagnostic.Message{Kind: diagnostic.DynamicConstantAssignment}, n.Expression())
}

// CheckCondition implements spec §4.4's condition-position rewrite: a
// single-statement Begin unwraps to its statement, And/Or recurse into
// both operands, Irange/Erange in condition position become flip-flops,
// and a bare Regexp becomes an implicit $_ match.
func (b *Builder) CheckCondition(n ast.Node) ast.Node {
	switch n.Type {
	case ast.Begin:
		if len(n.Children) == 1 {
			return b.CheckCondition(n.Children[0])
		}
		return n
	case ast.And:
		n.Children[0] = b.CheckCondition(n.Children[0])
		n.Children[1] = b.CheckCondition(n.Children[1])
		return n
	case ast.Or:
		n.Children[0] = b.CheckCondition(n.Children[0])
		n.Children[1] = b.CheckCondition(n.Children[1])
		return n
	case ast.Irange:
		n.Type = ast.IFlipFlop
		return n
	case ast.Erange:
		n.Type = ast.EFlipFlop
		return n
	case ast.Regexp:
		return ast.Node{Type: ast.MatchCurrentLine, Children: []ast.Node{n}, Loc: n.Loc}
	default:
		return n
	}
}

// ValueExpr implements spec §4.4's value_expr check: a node used where a
// value is required (assignment rhs, argument, condition branch merged
// with a non-void sibling) must not be IsVoidValue. Returns ok=false
// after recording VoidValueExpression.
func (b *Builder) ValueExpr(n ast.Node) bool {
	if n.IsVoidValue() {
		b.Diags.Err(diagnostic.Message{Kind: diagnostic.VoidValueExpression}, n.Expression())
		return false
	}
	return true
}

// Block implements spec §4.4's block-attachment checks: a literal block
// on a call that is already carrying a block-pass argument
// (`f(&blk) { }`) is BlockAndBlockArgGiven; `yield { }` is
// BlockGivenToYield (yield cannot itself take a literal block, unlike a
// method call). methodCall is the Send/CSend/Yield/ZSuper/Super node the
// block attaches to; numargs selects Block vs the numbered-parameter
// Numblock variant.
//
// `return foo do end`/`next foo do end`/`break foo do end` reduce the
// jump keyword around its argument before the `do...end` block is seen,
// so methodCall here is the jump node, not the call. The block must
// still attach to the wrapped call, and the jump must end up wrapping
// the resulting block rather than the block wrapping the jump. `redo`
// and `retry` take no argument and never reach this path.
func (b *Builder) Block(methodCall ast.Node, args, body ast.Node, numblock bool, loc token.Range) (ast.Node, bool) {
	switch methodCall.Type {
	case ast.Return, ast.Break, ast.Next:
		if len(methodCall.Children) == 1 {
			inner, ok := b.Block(methodCall.Children[0], args, body, numblock, loc)
			if !ok {
				return ast.Node{}, false
			}
			jump := methodCall
			jump.Children = []ast.Node{inner}
			jump.Loc = map[string]token.Range{"expression_l": token.JoinAll(methodCall.Expression(), loc)}
			return jump, true
		}
	}

	if methodCall.Type == ast.Yield {
		b.Diags.Err(diagnostic.Message{Kind: diagnostic.BlockGivenToYield}, methodCall.Expression())
		return ast.Node{}, false
	}
	for _, c := range methodCall.Children {
		if c.Type == ast.BlockPass {
			b.Diags.Err(diagnostic.Message{Kind: diagnostic.BlockAndBlockArgGiven}, methodCall.Expression())
			return ast.Node{}, false
		}
	}
	typ := ast.Block
	if numblock {
		typ = ast.Numblock
	}
	return ast.Node{
		Type:     typ,
		Children: []ast.Node{methodCall, args, body},
		Loc:      map[string]token.Range{"expression_l": loc},
	}, true
}
