package lexer

import "github.com/gorbylang/rubylex/token"

// keyword describes one reserved word's lexer behavior: the token kind
// it produces and the EXPR_* state to install afterwards (spec §4.2
// "Identifiers"; grounded on original_source/src/lexer/parse_ident.rs's
// keyword-table-driven dispatch).
// The `if`/`unless`/`while`/`until` entries give the statement-form
// kinds; lexKeyword emits KIF_MOD/KUNLESS_MOD/KWHILE_MOD/KUNTIL_MOD
// instead when the state before the keyword is an end state or carries
// EXPR_LABELED.
type keyword struct {
	kind       token.Kind
	stateAfter State
}

var keywords = map[string]keyword{
	"class":       {kind: token.KCLASS, stateAfter: EXPR_CLASS},
	"module":      {kind: token.KMODULE, stateAfter: EXPR_BEG},
	"def":         {kind: token.KDEF, stateAfter: EXPR_FNAME},
	"undef":       {kind: token.KUNDEF, stateAfter: EXPR_FNAME},
	"begin":       {kind: token.KBEGIN, stateAfter: EXPR_BEG},
	"end":         {kind: token.KEND, stateAfter: EXPR_END},
	"if":          {kind: token.KIF, stateAfter: EXPR_BEG},
	"unless":      {kind: token.KUNLESS, stateAfter: EXPR_BEG},
	"then":        {kind: token.KTHEN, stateAfter: EXPR_BEG},
	"elsif":       {kind: token.KELSIF, stateAfter: EXPR_BEG},
	"else":        {kind: token.KELSE, stateAfter: EXPR_BEG},
	"case":        {kind: token.KCASE, stateAfter: EXPR_BEG},
	"when":        {kind: token.KWHEN, stateAfter: EXPR_BEG},
	"while":       {kind: token.KWHILE, stateAfter: EXPR_BEG},
	"until":       {kind: token.KUNTIL, stateAfter: EXPR_BEG},
	"for":         {kind: token.KFOR, stateAfter: EXPR_BEG},
	"in":          {kind: token.KIN, stateAfter: EXPR_BEG},
	"return":      {kind: token.KRETURN, stateAfter: EXPR_MID},
	"yield":       {kind: token.KYIELD, stateAfter: EXPR_ARG},
	"super":       {kind: token.KSUPER, stateAfter: EXPR_ARG},
	"self":        {kind: token.KSELF, stateAfter: EXPR_END},
	"nil":         {kind: token.KNIL, stateAfter: EXPR_END},
	"true":        {kind: token.KTRUE, stateAfter: EXPR_END},
	"false":       {kind: token.KFALSE, stateAfter: EXPR_END},
	"and":         {kind: token.KAND, stateAfter: EXPR_BEG},
	"or":          {kind: token.KOR, stateAfter: EXPR_BEG},
	"not":         {kind: token.KNOT, stateAfter: EXPR_ARG},
	"break":       {kind: token.KBREAK, stateAfter: EXPR_MID},
	"next":        {kind: token.KNEXT, stateAfter: EXPR_MID},
	"redo":        {kind: token.KREDO, stateAfter: EXPR_END},
	"retry":       {kind: token.KRETRY, stateAfter: EXPR_END},
	"alias":       {kind: token.KALIAS, stateAfter: EXPR_FNAME},
	"defined?":    {kind: token.KDEFINED, stateAfter: EXPR_ARG},
	"BEGIN":       {kind: token.KBEGIN_UPPER, stateAfter: EXPR_END},
	"END":         {kind: token.KEND_UPPER, stateAfter: EXPR_END},
	"__LINE__":    {kind: token.K__LINE__, stateAfter: EXPR_END},
	"__FILE__":    {kind: token.K__FILE__, stateAfter: EXPR_END},
	"__ENCODING__": {kind: token.K__ENCODING__, stateAfter: EXPR_END},
	"do":          {kind: token.KDO, stateAfter: EXPR_BEG}, // resolved further in lexIdentifier
}
