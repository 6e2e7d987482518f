package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorbylang/rubylex/ast"
	"github.com/gorbylang/rubylex/builder"
	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/env"
	"github.com/gorbylang/rubylex/token"
)

func newBuilder() *builder.Builder {
	return builder.New(env.NewScope(), &diagnostic.Bag{})
}

func TestAccessibleResolvesDeclaredLocal(t *testing.T) {
	b := newBuilder()
	b.Scope.Static.Declare("x")
	n := b.Accessible("x", token.Range{Begin: 0, End: 1})
	assert.Equal(t, ast.Lvar, n.Type)
	assert.Equal(t, "x", n.Name)
	assert.False(t, b.Diags.HasErrors())
}

func TestAccessibleRewritesUndeclaredNameToSend(t *testing.T) {
	b := newBuilder()
	n := b.Accessible("foo", token.Range{Begin: 0, End: 3})
	assert.Equal(t, ast.Send, n.Type)
	assert.Equal(t, "foo", n.Name)
	assert.Equal(t, token.Range{Begin: 0, End: 3}, n.RangeOf("selector_l"))
}

func TestAccessibleFlagsCircularArgumentReference(t *testing.T) {
	b := newBuilder()
	b.Scope.PushCurrentArg("a")
	b.Accessible("a", token.Range{Begin: 0, End: 1})
	require.True(t, b.Diags.HasErrors())
	assert.Equal(t, diagnostic.CircularArgumentReference, b.Diags.All()[0].Message.Kind)
}

func TestAssignableLvarDeclaresAndRewrites(t *testing.T) {
	b := newBuilder()
	n, ok := b.Assignable(ast.Node{Type: ast.Lvar, Name: "x", Loc: map[string]token.Range{"expression_l": {Begin: 0, End: 1}}})
	require.True(t, ok)
	assert.Equal(t, ast.Lvasgn, n.Type)
	assert.True(t, b.Scope.Static.IsDeclared("x"))
}

func TestAssignableRejectsNumparamName(t *testing.T) {
	b := newBuilder()
	_, ok := b.Assignable(ast.Node{Type: ast.Lvar, Name: "_1", Loc: map[string]token.Range{"expression_l": {}}})
	require.False(t, ok)
	assert.Equal(t, diagnostic.CantAssignToNumparam, b.Diags.All()[0].Message.Kind)
}

func TestAssignableIvarCvarGvarConst(t *testing.T) {
	tests := []struct {
		name string
		in   ast.Type
		want ast.Type
	}{
		{"ivar", ast.Ivar, ast.Ivasgn},
		{"cvar", ast.Cvar, ast.Cvasgn},
		{"const", ast.Const, ast.Casgn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuilder()
			n, ok := b.Assignable(ast.Node{Type: tt.in, Name: "X", Loc: map[string]token.Range{"expression_l": {}}})
			require.True(t, ok)
			assert.Equal(t, tt.want, n.Type)
		})
	}
}

func TestAssignableRejectsSpecialGlobals(t *testing.T) {
	b := newBuilder()
	_, ok := b.Assignable(ast.Node{Type: ast.Gvar, Name: "$~", Loc: map[string]token.Range{"expression_l": {}}})
	require.False(t, ok)
	assert.Equal(t, diagnostic.CantSetVariable, b.Diags.All()[0].Message.Kind)
}

func TestAssignableRejectsNthRefGlobal(t *testing.T) {
	b := newBuilder()
	_, ok := b.Assignable(ast.Node{Type: ast.Gvar, Name: "$1", Loc: map[string]token.Range{"expression_l": {}}})
	require.False(t, ok)
	assert.Equal(t, diagnostic.CantSetVariable, b.Diags.All()[0].Message.Kind)
}

func TestAssignableAcceptsOrdinaryGvar(t *testing.T) {
	b := newBuilder()
	n, ok := b.Assignable(ast.Node{Type: ast.Gvar, Name: "$stdout", Loc: map[string]token.Range{"expression_l": {}}})
	require.True(t, ok)
	assert.Equal(t, ast.Gvasgn, n.Type)
}

func TestAssignableRejectsSelfNilTrueFalse(t *testing.T) {
	tests := []struct {
		typ  ast.Type
		kind diagnostic.MessageKind
	}{
		{ast.Self, diagnostic.CantAssignToSelf},
		{ast.Nil, diagnostic.CantAssignToNil},
		{ast.True, diagnostic.CantAssignToTrue},
		{ast.False, diagnostic.CantAssignToFalse},
	}
	for _, tt := range tests {
		b := newBuilder()
		_, ok := b.Assignable(ast.Node{Type: tt.typ, Loc: map[string]token.Range{"expression_l": {}}})
		require.False(t, ok)
		assert.Equal(t, tt.kind, b.Diags.All()[0].Message.Kind)
	}
}

func TestAssignableRejectsPseudoConstants(t *testing.T) {
	tests := []struct {
		name string
		kind diagnostic.MessageKind
	}{
		{"__FILE__", diagnostic.CantAssignToFile},
		{"__LINE__", diagnostic.CantAssignToLine},
		{"__ENCODING__", diagnostic.CantAssignToEncoding},
	}
	for _, tt := range tests {
		b := newBuilder()
		_, ok := b.Assignable(ast.Node{Type: ast.Send, Name: tt.name, Loc: map[string]token.Range{"expression_l": {}}})
		require.False(t, ok)
		assert.Equal(t, tt.kind, b.Diags.All()[0].Message.Kind)
	}
}

func TestOpAssignAndOrRewrite(t *testing.T) {
	b := newBuilder()
	lhs := ast.Node{Type: ast.Lvasgn, Name: "x"}
	rhs := ast.Node{Type: ast.Int, Value: "1"}

	n, ok := b.OpAssign(lhs, "&&=", rhs, token.Range{Begin: 0, End: 5})
	require.True(t, ok)
	assert.Equal(t, ast.AndAsgn, n.Type)

	n, ok = b.OpAssign(lhs, "||=", rhs, token.Range{Begin: 0, End: 5})
	require.True(t, ok)
	assert.Equal(t, ast.OrAsgn, n.Type)
}

func TestOpAssignGenericTrimsOperator(t *testing.T) {
	b := newBuilder()
	lhs := ast.Node{Type: ast.Lvasgn, Name: "x"}
	rhs := ast.Node{Type: ast.Int, Value: "1"}
	n, ok := b.OpAssign(lhs, "+=", rhs, token.Range{Begin: 0, End: 5})
	require.True(t, ok)
	assert.Equal(t, ast.OpAsgn, n.Type)
	assert.Equal(t, "+", n.Operator)
	require.Len(t, n.Children, 2)
}

func TestOpAssignIndexLhsBuildsIndexAsgn(t *testing.T) {
	b := newBuilder()
	lhs := ast.Node{Type: ast.Index, Children: []ast.Node{{Type: ast.Lvar, Name: "arr"}, {Type: ast.Int, Value: "0"}}}
	rhs := ast.Node{Type: ast.Int, Value: "1"}
	n, ok := b.OpAssign(lhs, "+=", rhs, token.Range{Begin: 0, End: 5})
	require.True(t, ok)
	assert.Equal(t, ast.IndexAsgn, n.Type)
	assert.Equal(t, "+", n.Operator)
	require.Len(t, n.Children, 3)
	assert.Equal(t, rhs, n.Children[2])
}
