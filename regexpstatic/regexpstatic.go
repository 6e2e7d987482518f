// Package regexpstatic specifies, at the interface only, the optional
// static-regexp engine spec.md names as an external collaborator (§1
// "Deliberately out of scope... the optional static-regexp engine").
// The builder consults an Engine to validate syntax and extract named
// captures for statically-known regexp bodies (no interpolation); when
// no Engine is wired in, validation is a no-op and capture extraction
// returns none, exactly as spec §4.4 and §9's Open Questions require.
package regexpstatic

// Engine is implemented by whatever static-regexp compiler a caller
// chooses to wire in. CompileStatic is given the regexp body text
// (without delimiters) and its option letters, and reports either the
// named captures it declares, in left-to-right order, or an error
// description suitable for diagnostic.Message{Kind: RegexError}.
type Engine interface {
	CompileStatic(source, options string) (Result, error)
}

// Result is what a successful static compile yields.
type Result struct {
	// NamedCaptures lists the `(?<name>...)` group names, in the order
	// they appear in the pattern. Builder.MatchWithLvasgn declares each
	// as a local at the surrounding `=~` site (spec §4.4, §8 S6).
	NamedCaptures []string
}

// NoEngine is the zero-value Engine: CompileStatic always succeeds with
// no captures, matching spec §9's "when no static-regexp engine is
// available... validation is a no-op and capture extraction returns
// none."
type NoEngine struct{}

func (NoEngine) CompileStatic(source, options string) (Result, error) {
	return Result{}, nil
}
