package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorbylang/rubylex/ast"
	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/regexpstatic"
	"github.com/gorbylang/rubylex/token"
)

type fakeEngine struct {
	result regexpstatic.Result
	err    error
}

func (f fakeEngine) CompileStatic(source, options string) (regexpstatic.Result, error) {
	return f.result, f.err
}

func TestRegexpWithNoEngineLeavesCapturesNil(t *testing.T) {
	b := newBuilder()
	parts := []ast.Node{{Type: ast.Str, Value: "(?<name>\\w+)"}}
	n := b.Regexp(parts, "", token.Range{Begin: 0, End: 10})
	assert.Equal(t, ast.Regexp, n.Type)
	assert.Nil(t, n.Captures)
	assert.False(t, b.Diags.HasErrors())
}

func TestRegexpWithEngineRecordsNamedCaptures(t *testing.T) {
	b := newBuilder()
	b.RegexpEngine = fakeEngine{result: regexpstatic.Result{NamedCaptures: []string{"name", "age"}}}
	parts := []ast.Node{{Type: ast.Str, Value: "(?<name>\\w+) (?<age>\\d+)"}}
	n := b.Regexp(parts, "", token.Range{Begin: 0, End: 10})
	assert.Equal(t, []string{"name", "age"}, n.Captures)
	assert.False(t, b.Diags.HasErrors())
}

func TestRegexpWithEngineErrorRecordsRegexError(t *testing.T) {
	b := newBuilder()
	b.RegexpEngine = fakeEngine{err: errors.New("unmatched (")}
	parts := []ast.Node{{Type: ast.Str, Value: "("}}
	n := b.Regexp(parts, "", token.Range{Begin: 0, End: 1})
	require.True(t, b.Diags.HasErrors())
	assert.Equal(t, diagnostic.RegexError, b.Diags.All()[0].Message.Kind)
	assert.Equal(t, "unmatched (", b.Diags.All()[0].Message.Description)
	assert.Nil(t, n.Captures)
}

func TestRegexpSkipsValidationWhenInterpolated(t *testing.T) {
	b := newBuilder()
	b.RegexpEngine = fakeEngine{result: regexpstatic.Result{NamedCaptures: []string{"ignored"}}}
	parts := []ast.Node{{Type: ast.Str, Value: "a"}, {Type: ast.Lvar, Name: "x"}}
	n := b.Regexp(parts, "", token.Range{Begin: 0, End: 1})
	assert.Nil(t, n.Captures, "a multi-part (interpolated) body is not statically known, so no engine call is made")
}

func TestMatchWithLvasgnDeclaresNamedCaptures(t *testing.T) {
	b := newBuilder()
	lhs := ast.Node{Type: ast.Str, Value: "input"}
	rhs := ast.Node{Type: ast.Regexp, Captures: []string{"name"}}
	n := b.MatchWithLvasgn(lhs, rhs, token.Range{Begin: 0, End: 10})
	assert.Equal(t, ast.MatchWithLvasgn, n.Type)
	assert.True(t, b.Scope.Static.IsDeclared("name"))
}

func TestMatchWithLvasgnWithNonRegexpRhsDeclaresNothing(t *testing.T) {
	b := newBuilder()
	lhs := ast.Node{Type: ast.Str, Value: "input"}
	rhs := ast.Node{Type: ast.Lvar, Name: "pattern"}
	b.MatchWithLvasgn(lhs, rhs, token.Range{Begin: 0, End: 10})
	assert.False(t, b.Scope.Static.IsDeclared("pattern"))
}
