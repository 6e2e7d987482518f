package builder

import (
	"github.com/gorbylang/rubylex/ast"
	"github.com/gorbylang/rubylex/diagnostic"
	"github.com/gorbylang/rubylex/token"
)

// argNameCollides implements spec §4.4's arg_name_collides: two formal
// argument names collide only on exact string equality, and a name
// starting with `_` never collides with anything (conventional "unused"
// marker).
func argNameCollides(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a[0] == '_' || b[0] == '_' {
		return false
	}
	return a == b
}

// CheckDuplicateArgument scans a formal-argument list (Arg, Optarg,
// Restarg, Kwarg, Kwoptarg, Kwrestarg, Blockarg nodes, in declaration
// order) and records DuplicatedArgumentName for every name colliding
// with one already seen.
func (b *Builder) CheckDuplicateArgument(args []ast.Node) {
	seen := make([]string, 0, len(args))
	for _, arg := range args {
		if arg.Name == "" {
			continue
		}
		for _, prior := range seen {
			if argNameCollides(prior, arg.Name) {
				b.Diags.Err(diagnostic.Message{Kind: diagnostic.DuplicatedArgumentName}, arg.Expression())
				break
			}
		}
		seen = append(seen, arg.Name)
	}
}

// DeclarePatternVariable implements spec §4.4's pattern-matching
// variable binding: records name as bound within the current `case/in`
// alternative and reports DuplicateVariableName if it was already
// bound earlier in the same alternative.
func (b *Builder) DeclarePatternVariable(name string, loc token.Range) {
	if b.Scope.DeclarePatternVariable(name) {
		b.Diags.Err(diagnostic.Message{Kind: diagnostic.DuplicateVariableName}, loc)
	}
	b.Scope.Static.Declare(name)
}

// DeclarePatternHashKey implements spec §4.4's hash-pattern key check:
// a hash pattern's keys must be distinct, and each key must look like a
// valid local variable name (since a `{key:}` shorthand binds a local
// of that name).
func (b *Builder) DeclarePatternHashKey(key string, loc token.Range) {
	if b.Scope.DeclarePatternHashKey(key) {
		b.Diags.Err(diagnostic.Message{Kind: diagnostic.DuplicateKeyName}, loc)
	}
	if !isValidLocalVariableName(key) {
		b.Diags.Err(diagnostic.Message{Kind: diagnostic.KeyMustBeValidAsLocalVariable}, loc)
	}
}

func isValidLocalVariableName(name string) bool {
	if name == "" {
		return false
	}
	c := name[0]
	if !(c == '_' || (c >= 'a' && c <= 'z') || c >= 0x80) {
		return false
	}
	for i := 1; i < len(name); i++ {
		c := name[i]
		if !(c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c >= 0x80) {
			return false
		}
	}
	return true
}

// CheckReservedForNumparam implements spec §4.4's
// check_reserved_for_numparam: inside a block whose body already uses
// an implicit numbered parameter (_1.._9), declaring an explicit local
// or argument with that same name is an error, since it would collide
// with the implicit binding.
func (b *Builder) CheckReservedForNumparam(name string, loc token.Range) bool {
	if !isNumparamName(name) {
		return true
	}
	if b.Scope.Numparam.HasNumparams() {
		b.Diags.Err(diagnostic.Message{Kind: diagnostic.ReservedForNumparam, Name: name}, loc)
		return false
	}
	return true
}

// CheckAssignmentToNumparam implements spec §4.4's
// check_assignment_to_numparam: assigning to _1.._9 inside a block body
// that uses numbered parameters is rejected, mirroring
// CheckReservedForNumparam but raised from the assignment site instead
// of the declaration site.
func (b *Builder) CheckAssignmentToNumparam(name string, loc token.Range) bool {
	if !isNumparamName(name) {
		return true
	}
	if !b.Scope.Numparam.HasNumparams() {
		return true
	}
	b.Diags.Err(diagnostic.Message{Kind: diagnostic.CantAssignToNumparam, Name: name}, loc)
	return false
}

// RegisterNumparamUse implements the companion half of the numparam
// bookkeeping: for a name matching _1.._9 it records the index in the
// innermost numparam frame, keeping the highest index used so
// CheckReservedForNumparam can tell a block is numparam-bearing.
// Accessible does not call it; the caller resolving the identifier
// does. Reports whether the innermost
// frame is a dynamic block at all (false outside any block, where _1
// is just an ordinary local).
func (b *Builder) RegisterNumparamUse(name string) bool {
	if !isNumparamName(name) {
		return false
	}
	idx := int(name[1] - '0')
	return b.Scope.Numparam.Register(idx)
}
