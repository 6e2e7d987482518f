// Package testutil collects small assertion helpers for tests that drive
// the lexer and builder: a one-call tokenize-to-slice helper, a
// node-shape assertion, and a depth-first node finder. The module's own
// test files do not import it.
package testutil

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gorbylang/rubylex/ast"
	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/env"
	"github.com/gorbylang/rubylex/lexer"
	"github.com/gorbylang/rubylex/source"
	"github.com/gorbylang/rubylex/token"
)

// MustTokenize lexes src to completion and requires zero Error-level
// diagnostics, returning every token up to and including END_OF_INPUT.
// Tests that expect a diagnostic should drive the Lexer directly
// instead of using this helper.
func MustTokenize(t *testing.T, src string) ([]token.Token, *diagnostic.Bag) {
	t.Helper()
	buf := source.NewBuffer(t.Name(), []byte(src))
	scope := env.NewScope()
	diags := &diagnostic.Bag{}
	l := lexer.New(buf, scope, diags)

	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.END_OF_INPUT {
			break
		}
	}
	require.False(t, diags.HasErrors(), "MustTokenize got unexpected error diagnostics for %q: %+v", src, diags.All())
	return toks, diags
}

// Kinds projects a token slice down to just its Kind values, for
// concise expected-sequence assertions.
func Kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

// AssertNodeType fails the test unless node.Type equals expected.
func AssertNodeType(t *testing.T, expected ast.Type, node ast.Node) {
	t.Helper()
	if node.Type != expected {
		t.Errorf("AssertNodeType: expected %v, got %v (node %+v)", expected, node.Type, node)
	}
}

// FindNodeByName performs a depth-first search of n and its Children
// for the first node whose Name matches, failing the test if none is
// found.
func FindNodeByName(t *testing.T, n ast.Node, name string) *ast.Node {
	t.Helper()
	found := findNodeByName(&n, name)
	require.NotNilf(t, found, "FindNodeByName: no node named %q found in tree", name)
	return found
}

func findNodeByName(n *ast.Node, name string) *ast.Node {
	if n.Name == name {
		return n
	}
	for i := range n.Children {
		if found := findNodeByName(&n.Children[i], name); found != nil {
			return found
		}
	}
	if n.Receiver != nil {
		if found := findNodeByName(n.Receiver, name); found != nil {
			return found
		}
	}
	return nil
}

// AssertDeepEqual wraps reflect.DeepEqual with a readable failure
// message, used for comparing small Range/Loc maps in table-driven
// tests where testify's ObjectsAreEqual would otherwise hide the diff.
func AssertDeepEqual(t *testing.T, want, got interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		require.FailNow(t, "AssertDeepEqual failed", append([]interface{}{"want", want, "got", got}, msgAndArgs...)...)
	}
}
