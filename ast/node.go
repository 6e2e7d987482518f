// Package ast defines the tagged-variant AST Node type built by package
// builder (spec §3 "AST Node", §9 "Tagged variants instead of dynamic
// dispatch"). A single Node struct carries every syntactic category;
// only the fields relevant to its Type are populated, mirroring the
// same one-struct-many-variants shape already used by strterm.Term.
package ast

import "github.com/gorbylang/rubylex/token"

// Type discriminates the syntactic category of a Node.
type Type int

const (
	// Literals
	Int Type = iota
	Float
	Rational
	Imaginary
	Str
	Sym
	XStr
	Regexp
	Array
	Hash
	Pair
	Self
	Nil
	True
	False
	NthRefNode
	BackRefNode

	// Variables and assignment
	Lvar
	Ivar
	Cvar
	Gvar
	Const
	Lvasgn
	Ivasgn
	Cvasgn
	Gvasgn
	Casgn
	Masgn
	Mlhs
	OpAsgn
	AndAsgn
	OrAsgn
	IndexAsgn
	Index

	// Calls and blocks
	Send
	CSend
	Block
	Numblock
	Args
	Arg
	Optarg
	Restarg
	Kwarg
	Kwoptarg
	Kwrestarg
	Blockarg
	Procarg0
	BlockPass
	Splat
	Kwsplat
	Yield
	Super
	ZSuper
	Defined

	// Booleans and control flow
	And
	Or
	Not
	If
	While
	Until
	For
	Case
	When
	CaseMatch
	InPattern
	Begin
	KwBegin
	Return
	Break
	Next
	Redo
	Retry

	// Definitions
	Class
	SClass
	Module
	Def
	Defs
	Alias
	Undef

	// Ranges and flip-flops
	Irange
	Erange
	IFlipFlop
	EFlipFlop

	// Pattern/regexp matching
	MatchCurrentLine
	MatchWithLvasgn

	// Heredocs
	Heredoc
	XHeredoc
)

// Node is the tagged-variant tree element. Children are owned
// exclusively by their parent (spec §9 "Owned trees, no
// back-pointers"); there are no parent or sibling pointers anywhere in
// the tree.
type Node struct {
	Type Type

	// Loc maps every syntactically meaningful sub-range to its name
	// (spec §3: "expression_l plus specific sub-ranges (operator_l,
	// keyword_l, begin_l, end_l, name_l, ...)"). "expression_l" is
	// always present and covers every other entry plus every child's
	// expression range.
	Loc map[string]token.Range

	// Name carries identifier/keyword/method spelling: variable and
	// constant names, send method names, def names, class/module names.
	Name string

	// Value carries literal payload text: numeric literal text (with
	// underscores/prefixes already normalized), string/symbol/regexp
	// decoded content, regexp option letters.
	Value string

	// Operator carries the trimmed operator spelling for OpAsgn
	// (`+=` → `+`) and the raw comparison/logical operator for nodes
	// that need to echo it (kept for diagnostics and round-tripping).
	Operator string

	// Declared reports, for Lvar/Arg-family nodes, whether the builder
	// found the name already present in StaticEnvironment at the point
	// of use, versus newly declaring it.
	Declared bool

	// Receiver is Send/CSend's method-call target; nil for an implicit
	// self receiver.
	Receiver *Node

	// Captures holds a Regexp node's statically-known named-capture
	// group names, in left-to-right order, once a static-regexp engine
	// has validated the pattern; nil when no engine was wired in or the
	// body was not statically known (spec §4.4, §9).
	Captures []string

	// Children holds every node-typed child in left-to-right syntactic
	// order: Send/CSend arguments, Array/Hash/Mlhs elements, Pair's
	// [key, value], If's [cond, then, else], Block's [call, args, body],
	// Def's [args, body], Case's [subject, when..., else], etc. The
	// exact slot meaning is documented per constructor in builder/.
	Children []Node
}

// Expression returns the node's mandatory expression_l range.
func (n *Node) Expression() token.Range { return n.Loc["expression_l"] }

// RangeOf returns the named sub-range, or the zero Range if the node's
// variant does not carry one under that name.
func (n *Node) RangeOf(name string) token.Range { return n.Loc[name] }

// IsVoidValue reports whether n is one of the structurally void-valued
// forms the builder's value_expr/void_value check rejects (spec §4.4).
func (n *Node) IsVoidValue() bool {
	if n == nil {
		return false
	}
	switch n.Type {
	case Return, Break, Next, Redo, Retry:
		return true
	case Begin:
		if len(n.Children) == 1 {
			return n.Children[0].IsVoidValue()
		}
		return false
	case And, Or:
		return len(n.Children) == 2 && n.Children[0].IsVoidValue()
	case If:
		if len(n.Children) != 3 {
			return false
		}
		return n.Children[1].IsVoidValue() && n.Children[2].IsVoidValue()
	default:
		return false
	}
}
