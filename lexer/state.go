package lexer

// State is the bitset over the EXPR_* masks that selects how the
// dispatcher interprets otherwise-identical byte sequences (spec §3
// "Lexer State"). It is the single most load-bearing piece of dynamic
// state in the whole lexer.
type State uint16

const (
	EXPR_BEG State = 1 << iota
	EXPR_END
	EXPR_ENDARG
	EXPR_ENDFN
	EXPR_ARG
	EXPR_CMDARG
	EXPR_MID
	EXPR_FNAME
	EXPR_DOT
	EXPR_CLASS
	EXPR_LABEL
	EXPR_LABELED
	EXPR_FITEM
)

// Composite masks, named exactly as spec §3 names them.
const (
	EXPR_ARG_ANY = EXPR_ARG | EXPR_CMDARG
	EXPR_BEG_ANY = EXPR_BEG | EXPR_MID | EXPR_CLASS
	EXPR_END_ANY = EXPR_END | EXPR_ENDARG | EXPR_ENDFN
	EXPR_NONE    = State(0)
)

// Has reports whether every bit in mask is set.
func (s State) Has(mask State) bool { return s&mask == mask }

// HasAny reports whether any bit in mask is set.
func (s State) HasAny(mask State) bool { return s&mask != 0 }

// Set returns mask as the new state. It replaces the state
// the way the source-of-truth lexer's `set_lex_state` does: the bits not
// named in mask are cleared, except composite "keep DOT/LABEL" calls
// explicitly OR the two states together at the call site.
func Set(mask State) State { return mask }

// IsBeg is the *is_beg* predicate: in any of BEG_ANY|LABEL|LABELED|FITEM.
func (s State) IsBeg() bool {
	return s.HasAny(EXPR_BEG_ANY|EXPR_LABEL|EXPR_LABELED|EXPR_FITEM)
}

// IsArg is the *is_arg* predicate: in ARG_ANY.
func (s State) IsArg() bool { return s.HasAny(EXPR_ARG_ANY) }

// IsEnd is the *is_end* predicate: in END|ENDARG|ENDFN.
func (s State) IsEnd() bool { return s.HasAny(EXPR_END_ANY) }

// IsAfterOperator is the *is_after_operator* predicate: in FNAME|DOT.
func (s State) IsAfterOperator() bool { return s.HasAny(EXPR_FNAME | EXPR_DOT) }

// IsSpacearg is the *is_spacearg(c)* predicate: is_arg && space_seen &&
// the lookahead byte c is not itself a space.
func (s State) IsSpacearg(spaceSeen bool, c int) bool {
	return s.IsArg() && spaceSeen && !isSpaceByte(c)
}

// IsLabelPossible is the *is_label_possible(cmd_state)* predicate:
// (BEG|LABEL && !cmd_state) || ARG_ANY.
func (s State) IsLabelPossible(cmdState bool) bool {
	if s.HasAny(EXPR_BEG|EXPR_LABEL) && !cmdState {
		return true
	}
	return s.HasAny(EXPR_ARG_ANY)
}

func isSpaceByte(c int) bool {
	switch c {
	case ' ', '\t', '\f', '\v', '\r':
		return true
	}
	return false
}
