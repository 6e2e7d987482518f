package env

// Scope bundles the remaining single-instance pieces of spec §3's Scope
// Stacks that are not their own type: the cond/cmdarg bit stacks, the
// paren/brace nesting counters, lpar_beg, the current_arg stack and the
// per-pattern variable/hash-key sets used by the builder while
// validating a `case/in` pattern.
type Scope struct {
	Static *StaticEnvironment
	Cond   BitStack
	Cmdarg BitStack

	ParenNest int
	BraceNest int
	// LparBeg records paren_nest at the point a `(` was opened directly
	// after a lambda arrow, so the lexer can tell a `do` immediately
	// following belongs to that lambda (KDO_LAMBDA) rather than a loop.
	LparBeg int

	Numparam MaxNumparamStack

	currentArg []string

	patternVariables map[string]struct{}
	patternHashKeys  map[string]struct{}
}

// NewScope returns a ready-to-use Scope with its own StaticEnvironment.
func NewScope() *Scope {
	return &Scope{Static: NewStaticEnvironment(), LparBeg: -1}
}

// PushCurrentArg records the name of the formal argument currently being
// parsed (so `def f(a = a)` can diagnose CircularArgumentReference).
func (s *Scope) PushCurrentArg(name string) { s.currentArg = append(s.currentArg, name) }

// PopCurrentArg discards the innermost current_arg entry.
func (s *Scope) PopCurrentArg() {
	if n := len(s.currentArg); n > 0 {
		s.currentArg = s.currentArg[:n-1]
	}
}

// CurrentArg returns the innermost current_arg name, or "" if none.
func (s *Scope) CurrentArg() string {
	if n := len(s.currentArg); n > 0 {
		return s.currentArg[n-1]
	}
	return ""
}

// BeginPattern resets the per-pattern bookkeeping for a new `case/in`
// alternative.
func (s *Scope) BeginPattern() {
	s.patternVariables = map[string]struct{}{}
	s.patternHashKeys = map[string]struct{}{}
}

// DeclarePatternVariable records name as bound by the pattern being
// matched and reports whether it was already bound (a duplicate).
func (s *Scope) DeclarePatternVariable(name string) (duplicate bool) {
	if s.patternVariables == nil {
		s.patternVariables = map[string]struct{}{}
	}
	_, duplicate = s.patternVariables[name]
	s.patternVariables[name] = struct{}{}
	return duplicate
}

// DeclarePatternHashKey records key as used as a hash-pattern key and
// reports whether it was already used (a duplicate).
func (s *Scope) DeclarePatternHashKey(key string) (duplicate bool) {
	if s.patternHashKeys == nil {
		s.patternHashKeys = map[string]struct{}{}
	}
	_, duplicate = s.patternHashKeys[key]
	s.patternHashKeys[key] = struct{}{}
	return duplicate
}
