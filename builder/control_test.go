package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorbylang/rubylex/ast"
	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/token"
)

func TestDynamicConstantAssignment(t *testing.T) {
	b := newBuilder()
	b.DynamicConstantAssignment(ast.Node{Type: ast.Casgn, Loc: map[string]token.Range{"expression_l": {Begin: 0, End: 3}}})
	require.True(t, b.Diags.HasErrors())
	assert.Equal(t, diagnostic.DynamicConstantAssignment, b.Diags.All()[0].Message.Kind)
}

func TestCheckConditionUnwrapsSingleStatementBegin(t *testing.T) {
	b := newBuilder()
	inner := ast.Node{Type: ast.Lvar, Name: "x"}
	n := b.CheckCondition(ast.Node{Type: ast.Begin, Children: []ast.Node{inner}})
	assert.Equal(t, ast.Lvar, n.Type)
}

func TestCheckConditionLeavesMultiStatementBeginAlone(t *testing.T) {
	b := newBuilder()
	n := ast.Node{Type: ast.Begin, Children: []ast.Node{{Type: ast.Lvar}, {Type: ast.Lvar}}}
	got := b.CheckCondition(n)
	assert.Equal(t, ast.Begin, got.Type)
}

func TestCheckConditionRecursesIntoAndOr(t *testing.T) {
	b := newBuilder()
	n := ast.Node{Type: ast.And, Children: []ast.Node{
		{Type: ast.Irange},
		{Type: ast.Erange},
	}}
	got := b.CheckCondition(n)
	assert.Equal(t, ast.IFlipFlop, got.Children[0].Type)
	assert.Equal(t, ast.EFlipFlop, got.Children[1].Type)
}

func TestCheckConditionRangesBecomeFlipFlops(t *testing.T) {
	b := newBuilder()
	assert.Equal(t, ast.IFlipFlop, b.CheckCondition(ast.Node{Type: ast.Irange}).Type)
	assert.Equal(t, ast.EFlipFlop, b.CheckCondition(ast.Node{Type: ast.Erange}).Type)
}

func TestCheckConditionBareRegexpBecomesMatchCurrentLine(t *testing.T) {
	b := newBuilder()
	re := ast.Node{Type: ast.Regexp, Value: "im"}
	got := b.CheckCondition(re)
	assert.Equal(t, ast.MatchCurrentLine, got.Type)
	require.Len(t, got.Children, 1)
	assert.Equal(t, re, got.Children[0])
}

func TestCheckConditionPassesOtherNodesThrough(t *testing.T) {
	b := newBuilder()
	n := ast.Node{Type: ast.Send, Name: "foo"}
	assert.Equal(t, n, b.CheckCondition(n))
}

func TestValueExprRejectsVoidValue(t *testing.T) {
	b := newBuilder()
	ok := b.ValueExpr(ast.Node{Type: ast.Return, Loc: map[string]token.Range{"expression_l": {Begin: 0, End: 1}}})
	assert.False(t, ok)
	require.True(t, b.Diags.HasErrors())
	assert.Equal(t, diagnostic.VoidValueExpression, b.Diags.All()[0].Message.Kind)
}

func TestValueExprAcceptsOrdinaryNode(t *testing.T) {
	b := newBuilder()
	assert.True(t, b.ValueExpr(ast.Node{Type: ast.Lvar, Name: "x"}))
	assert.False(t, b.Diags.HasErrors())
}

func TestBlockRejectsBlockOnYield(t *testing.T) {
	b := newBuilder()
	methodCall := ast.Node{Type: ast.Yield, Loc: map[string]token.Range{"expression_l": {Begin: 0, End: 5}}}
	_, ok := b.Block(methodCall, ast.Node{Type: ast.Args}, ast.Node{Type: ast.Int}, false, token.Range{Begin: 0, End: 10})
	require.False(t, ok)
	assert.Equal(t, diagnostic.BlockGivenToYield, b.Diags.All()[0].Message.Kind)
}

func TestBlockRejectsBlockAndBlockPass(t *testing.T) {
	b := newBuilder()
	methodCall := ast.Node{
		Type:     ast.Send,
		Name:     "f",
		Children: []ast.Node{{Type: ast.BlockPass}},
		Loc:      map[string]token.Range{"expression_l": {Begin: 0, End: 5}},
	}
	_, ok := b.Block(methodCall, ast.Node{Type: ast.Args}, ast.Node{Type: ast.Int}, false, token.Range{Begin: 0, End: 10})
	require.False(t, ok)
	assert.Equal(t, diagnostic.BlockAndBlockArgGiven, b.Diags.All()[0].Message.Kind)
}

func TestBlockBuildsBlockOrNumblock(t *testing.T) {
	b := newBuilder()
	methodCall := ast.Node{Type: ast.Send, Name: "each"}
	args := ast.Node{Type: ast.Args}
	body := ast.Node{Type: ast.Int}

	n, ok := b.Block(methodCall, args, body, false, token.Range{Begin: 0, End: 10})
	require.True(t, ok)
	assert.Equal(t, ast.Block, n.Type)
	require.Len(t, n.Children, 3)

	n, ok = b.Block(methodCall, args, body, true, token.Range{Begin: 0, End: 10})
	require.True(t, ok)
	assert.Equal(t, ast.Numblock, n.Type)
}

func TestBlockOnJumpWrapsCallNotJump(t *testing.T) {
	b := newBuilder()
	call := ast.Node{Type: ast.Send, Name: "each", Loc: map[string]token.Range{"expression_l": {Begin: 7, End: 11}}}
	jump := ast.Node{
		Type:     ast.Return,
		Children: []ast.Node{call},
		Loc:      map[string]token.Range{"expression_l": {Begin: 0, End: 11}},
	}
	args := ast.Node{Type: ast.Args}
	body := ast.Node{Type: ast.Int}

	n, ok := b.Block(jump, args, body, false, token.Range{Begin: 12, End: 20})
	require.True(t, ok)
	assert.Equal(t, ast.Return, n.Type)
	require.Len(t, n.Children, 1)

	block := n.Children[0]
	assert.Equal(t, ast.Block, block.Type)
	require.Len(t, block.Children, 3)
	assert.Equal(t, call, block.Children[0])
	assert.Equal(t, args, block.Children[1])
	assert.Equal(t, body, block.Children[2])
	assert.Equal(t, token.Range{Begin: 0, End: 20}, n.Expression())
}
