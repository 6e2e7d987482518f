// Package builder implements spec §4.4: the grammar's reduction actions
// call exactly one Builder method per production, each of which
// allocates the corresponding ast.Node variant, computes its range map,
// validates static semantics against the shared Scope, and returns the
// node (or the error sentinel, spec §7's "Result<Node, ()>" carried
// into Go as `(ast.Node, bool)`).
package builder

import (
	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/env"
	"github.com/gorbylang/rubylex/regexpstatic"
	"github.com/gorbylang/rubylex/token"
)

// Builder owns no state of its own beyond the handles named in spec
// §4.4: scope (static_env, cond/cmdarg, current_arg_stack,
// max_numparam_stack, pattern_variables/pattern_hash_keys all live on
// Scope) and the diagnostic sink, both shared by reference with
// whatever Lexer is feeding the same grammar driver.
type Builder struct {
	Scope        *env.Scope
	Diags        *diagnostic.Bag
	RegexpEngine regexpstatic.Engine
}

// New returns a Builder sharing scope and diags with a Lexer (or with
// another Builder, for nested method/block bodies using the same
// StaticEnvironment stack).
func New(scope *env.Scope, diags *diagnostic.Bag) *Builder {
	return &Builder{Scope: scope, Diags: diags, RegexpEngine: regexpstatic.NoEngine{}}
}

func joinLoc(ranges ...token.Range) token.Range { return token.JoinAll(ranges...) }
