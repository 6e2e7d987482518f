package token

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Token is the triple the lexer hands to the grammar driver: a symbolic
// Kind, the exact byte slice (or decoded payload, for string fragments)
// and a Range. Tokens are transient: produced by the lexer, consumed by
// the grammar, dropped once the builder has extracted name/value.
type Token struct {
	Kind  Kind
	Value string
	Loc   Range

	// Pos is room for the Begin endpoint of Loc projected to line/column.
	// NextToken leaves it as the zero Position and nothing in this module
	// fills it in; the participle adapter's Next computes the position of
	// the participle token it returns instead.
	Pos lexer.Position
}

// EOF reports whether t terminates the stream.
func (t Token) EOF() bool { return t.Kind == END_OF_INPUT }

func (t Token) String() string {
	if t.Value == "" {
		return fmt.Sprintf("%s@%d..%d", t.Kind, t.Loc.Begin, t.Loc.End)
	}
	val := t.Value
	if len(val) > 24 {
		val = val[:21] + "..."
	}
	return fmt.Sprintf("%s(%q)@%d..%d", t.Kind, val, t.Loc.Begin, t.Loc.End)
}
