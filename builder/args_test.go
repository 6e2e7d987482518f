package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorbylang/rubylex/ast"
	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/token"
)

func TestCheckDuplicateArgumentFlagsRepeatedNames(t *testing.T) {
	b := newBuilder()
	args := []ast.Node{
		{Type: ast.Arg, Name: "a", Loc: map[string]token.Range{"expression_l": {Begin: 0, End: 1}}},
		{Type: ast.Arg, Name: "b", Loc: map[string]token.Range{"expression_l": {Begin: 2, End: 3}}},
		{Type: ast.Arg, Name: "a", Loc: map[string]token.Range{"expression_l": {Begin: 4, End: 5}}},
	}
	b.CheckDuplicateArgument(args)
	require.True(t, b.Diags.HasErrors())
	assert.Equal(t, diagnostic.DuplicatedArgumentName, b.Diags.All()[0].Message.Kind)
	assert.Len(t, b.Diags.All(), 1)
}

func TestCheckDuplicateArgumentExemptsUnderscorePrefixed(t *testing.T) {
	b := newBuilder()
	args := []ast.Node{
		{Type: ast.Arg, Name: "_x", Loc: map[string]token.Range{"expression_l": {Begin: 0, End: 1}}},
		{Type: ast.Arg, Name: "_x", Loc: map[string]token.Range{"expression_l": {Begin: 2, End: 3}}},
	}
	b.CheckDuplicateArgument(args)
	assert.False(t, b.Diags.HasErrors())
}

func TestCheckDuplicateArgumentSkipsUnnamedArgs(t *testing.T) {
	b := newBuilder()
	args := []ast.Node{
		{Type: ast.Restarg, Name: ""},
		{Type: ast.Restarg, Name: ""},
	}
	b.CheckDuplicateArgument(args)
	assert.False(t, b.Diags.HasErrors())
}

func TestDeclarePatternVariableFlagsDuplicateAndDeclares(t *testing.T) {
	b := newBuilder()
	b.Scope.BeginPattern()
	loc := token.Range{Begin: 0, End: 1}
	b.DeclarePatternVariable("x", loc)
	assert.False(t, b.Diags.HasErrors())
	assert.True(t, b.Scope.Static.IsDeclared("x"))

	b.DeclarePatternVariable("x", loc)
	require.True(t, b.Diags.HasErrors())
	assert.Equal(t, diagnostic.DuplicateVariableName, b.Diags.All()[0].Message.Kind)
}

func TestDeclarePatternHashKeyFlagsDuplicateAndInvalidName(t *testing.T) {
	b := newBuilder()
	b.Scope.BeginPattern()
	loc := token.Range{Begin: 0, End: 1}

	b.DeclarePatternHashKey("k", loc)
	assert.False(t, b.Diags.HasErrors())

	b.DeclarePatternHashKey("k", loc)
	require.True(t, b.Diags.HasErrors())
	assert.Equal(t, diagnostic.DuplicateKeyName, b.Diags.All()[0].Message.Kind)
}

func TestDeclarePatternHashKeyRejectsInvalidLocalName(t *testing.T) {
	b := newBuilder()
	b.Scope.BeginPattern()
	b.DeclarePatternHashKey("Foo", token.Range{Begin: 0, End: 3})
	require.True(t, b.Diags.HasErrors())
	assert.Equal(t, diagnostic.KeyMustBeValidAsLocalVariable, b.Diags.All()[0].Message.Kind)
}

func TestCheckReservedForNumparamAllowsOrdinaryNames(t *testing.T) {
	b := newBuilder()
	assert.True(t, b.CheckReservedForNumparam("x", token.Range{}))
	assert.False(t, b.Diags.HasErrors())
}

func TestCheckReservedForNumparamRejectsWhenBlockAlreadyUsesNumparams(t *testing.T) {
	b := newBuilder()
	b.Scope.Numparam.Push(true)
	b.Scope.Numparam.Register(1)
	ok := b.CheckReservedForNumparam("_1", token.Range{Begin: 0, End: 2})
	assert.False(t, ok)
	require.True(t, b.Diags.HasErrors())
	assert.Equal(t, diagnostic.ReservedForNumparam, b.Diags.All()[0].Message.Kind)
}

func TestCheckReservedForNumparamAllowsWhenBlockHasNotUsedNumparamsYet(t *testing.T) {
	b := newBuilder()
	b.Scope.Numparam.Push(true)
	ok := b.CheckReservedForNumparam("_1", token.Range{Begin: 0, End: 2})
	assert.True(t, ok)
	assert.False(t, b.Diags.HasErrors())
}

func TestCheckAssignmentToNumparamRejectsNumparamNames(t *testing.T) {
	b := newBuilder()
	b.Scope.Numparam.Push(true)
	b.Scope.Numparam.Register(2)
	ok := b.CheckAssignmentToNumparam("_2", token.Range{Begin: 0, End: 2})
	assert.False(t, ok)
	assert.Equal(t, diagnostic.CantAssignToNumparam, b.Diags.All()[0].Message.Kind)
}

func TestCheckAssignmentToNumparamAllowsOrdinaryNames(t *testing.T) {
	b := newBuilder()
	assert.True(t, b.CheckAssignmentToNumparam("x", token.Range{}))
	assert.False(t, b.Diags.HasErrors())
}

func TestRegisterNumparamUseOutsideBlockIsNotNumparam(t *testing.T) {
	b := newBuilder()
	assert.False(t, b.RegisterNumparamUse("_1"))
}

func TestRegisterNumparamUseInsideDynamicBlockRegisters(t *testing.T) {
	b := newBuilder()
	b.Scope.Numparam.Push(true)
	assert.True(t, b.RegisterNumparamUse("_3"))
	assert.True(t, b.Scope.Numparam.HasNumparams())
	assert.Equal(t, 3, b.Scope.Numparam.Pop())
}

func TestRegisterNumparamUseRejectsNonNumparamNames(t *testing.T) {
	b := newBuilder()
	b.Scope.Numparam.Push(true)
	assert.False(t, b.RegisterNumparamUse("foo"))
}
