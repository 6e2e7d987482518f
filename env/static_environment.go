// Package env holds the mutable scope state shared by reference between
// the lexer and the builder: StaticEnvironment, the cond/cmdarg bit
// stacks, paren/brace nesting counters and the numparam bookkeeping
// (spec §3 "Scope Stacks").
package env

// forwardArgs is the sentinel StaticEnvironment.Declare uses to record
// that a `...` forward-parameters parameter was seen, mirroring
// static_environment.rs's FORWARD_ARGS constant.
const forwardArgs = "FORWARD_ARGS"

// StaticEnvironment tracks which local variable names are currently
// declared, with a stack of saved sets so block/def boundaries can push
// and restore scopes.
type StaticEnvironment struct {
	variables map[string]struct{}
	stack     []map[string]struct{}
}

// NewStaticEnvironment returns an empty environment.
func NewStaticEnvironment() *StaticEnvironment {
	return &StaticEnvironment{variables: map[string]struct{}{}}
}

// Reset clears all declared names and the saved-scope stack.
func (e *StaticEnvironment) Reset() {
	e.variables = map[string]struct{}{}
	e.stack = nil
}

// ExtendStatic pushes the current scope and starts a fresh, empty one.
// Used entering a method/class/module body, where outer locals are not
// visible.
func (e *StaticEnvironment) ExtendStatic() {
	e.stack = append(e.stack, e.variables)
	e.variables = map[string]struct{}{}
}

// ExtendDynamic pushes a copy of the current scope and keeps it active.
// Used entering a block, where outer locals remain visible but new
// declarations must not leak back out.
func (e *StaticEnvironment) ExtendDynamic() {
	copied := make(map[string]struct{}, len(e.variables))
	for k := range e.variables {
		copied[k] = struct{}{}
	}
	e.stack = append(e.stack, copied)
}

// Unextend pops the most recently pushed scope, discarding whatever was
// declared since the matching Extend* call.
func (e *StaticEnvironment) Unextend() {
	n := len(e.stack)
	if n == 0 {
		e.variables = map[string]struct{}{}
		return
	}
	e.variables = e.stack[n-1]
	e.stack = e.stack[:n-1]
}

// Declare records name as a known local variable in the current scope.
func (e *StaticEnvironment) Declare(name string) { e.variables[name] = struct{}{} }

// IsDeclared reports whether name is a known local in the current scope.
func (e *StaticEnvironment) IsDeclared(name string) bool {
	_, ok := e.variables[name]
	return ok
}

// DeclareForwardArgs records that a `...` forward-args parameter was
// declared in the current scope.
func (e *StaticEnvironment) DeclareForwardArgs() { e.Declare(forwardArgs) }

// DeclaredForwardArgs reports whether `...` was declared in scope.
func (e *StaticEnvironment) DeclaredForwardArgs() bool { return e.IsDeclared(forwardArgs) }
