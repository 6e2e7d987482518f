// Package diagnostic defines the Warning/Error records the lexer and
// builder emit (spec §6 "Diagnostic record", §7 "Error handling design").
package diagnostic

import "github.com/gorbylang/rubylex/token"

// Level distinguishes a recoverable observation from one that forces the
// producing grammar reduction to return the error sentinel.
type Level int

const (
	Warning Level = iota
	Error
)

func (l Level) String() string {
	if l == Error {
		return "error"
	}
	return "warning"
}

// MessageKind enumerates every distinct diagnostic class named in spec §6.
type MessageKind int

const (
	InvalidSymbol MessageKind = iota
	DynamicConstantAssignment
	CantAssignToSelf
	CantAssignToNil
	CantAssignToTrue
	CantAssignToFalse
	CantAssignToFile
	CantAssignToLine
	CantAssignToEncoding
	CantSetVariable
	CircularArgumentReference
	DuplicatedArgumentName
	DuplicateVariableName
	DuplicateKeyName
	ReservedForNumparam
	CantAssignToNumparam
	BlockAndBlockArgGiven
	BlockGivenToYield
	VoidValueExpression
	SymbolLiteralWithInterpolation
	KeyMustBeValidAsLocalVariable
	NthRefIsTooBig
	EmbeddedDocumentMeetsEof
	InvalidChar
	AmbiguousOperator
	AmbiguousFirstArgument
	SlashRAtMiddleOfLine
	DStarInterpretedAsArgPrefix
	StarInterpretedAsArgPrefix
	AmpersandInterpretedAsArgPrefix
	TripleDotAtEol
	FractionAfterNumeric
	NoDigitsAfterDot
	ParenthesesIerpretedAsArglist
	RegexError
	UnsupportedEncoding
	UnterminatedString
	UnterminatedHeredocID
)

// Message is the tagged diagnostic payload. Only the fields relevant to
// Kind are populated; unused string fields stay "".
type Message struct {
	Kind          MessageKind
	Encoding      string
	Name          string
	Operator      string
	InterpretedAs string
	Byte          byte
	Description   string
}

// Text renders a Message the way a CLI or test failure message would
// want to see it: short, stable, grep-able.
func (m Message) Text() string {
	switch m.Kind {
	case InvalidSymbol:
		return "invalid symbol in encoding " + m.Encoding
	case DynamicConstantAssignment:
		return "dynamic constant assignment"
	case CantAssignToSelf:
		return "can't change the value of self"
	case CantAssignToNil:
		return "can't assign to nil"
	case CantAssignToTrue:
		return "can't assign to true"
	case CantAssignToFalse:
		return "can't assign to false"
	case CantAssignToFile:
		return "can't assign to __FILE__"
	case CantAssignToLine:
		return "can't assign to __LINE__"
	case CantAssignToEncoding:
		return "can't assign to __ENCODING__"
	case CantSetVariable:
		return "can't set variable " + m.Name
	case CircularArgumentReference:
		return "circular argument reference - " + m.Name
	case DuplicatedArgumentName:
		return "duplicated argument name"
	case DuplicateVariableName:
		return "duplicate variable name"
	case DuplicateKeyName:
		return "duplicate key name"
	case ReservedForNumparam:
		return "_1 is reserved for numbered parameter: " + m.Name
	case CantAssignToNumparam:
		return "_1 is reserved for numbered parameter: " + m.Name
	case BlockAndBlockArgGiven:
		return "both block argument and literal block are given"
	case BlockGivenToYield:
		return "block given to yield"
	case VoidValueExpression:
		return "void value expression"
	case SymbolLiteralWithInterpolation:
		return "symbol literal with interpolation is not allowed"
	case KeyMustBeValidAsLocalVariable:
		return "key must be valid as local variables"
	case NthRefIsTooBig:
		return "`" + m.Name + "' is too big for a number variable, always nil"
	case EmbeddedDocumentMeetsEof:
		return "embedded document meets end of file"
	case InvalidChar:
		return "invalid character"
	case AmbiguousOperator:
		return "ambiguous " + m.Operator + "; interpreted as " + m.InterpretedAs
	case AmbiguousFirstArgument:
		return "ambiguous first argument; put parentheses or a space even after " + m.Operator
	case SlashRAtMiddleOfLine:
		return "\\r at middle of line"
	case DStarInterpretedAsArgPrefix:
		return "`**' interpreted as argument prefix"
	case StarInterpretedAsArgPrefix:
		return "`*' interpreted as argument prefix"
	case AmpersandInterpretedAsArgPrefix:
		return "`&' interpreted as argument prefix"
	case TripleDotAtEol:
		return "... at EOL, should be parenthesized"
	case FractionAfterNumeric:
		return "unexpected fraction part after numeric literal"
	case NoDigitsAfterDot:
		return "no .<digit> floating literal anymore; put 0 before dot"
	case ParenthesesIerpretedAsArglist:
		return "parentheses after method name is interpreted as an argument list, not a decomposed argument"
	case RegexError:
		return m.Description
	case UnsupportedEncoding:
		return "unsupported encoding " + m.Encoding
	case UnterminatedString:
		return "unterminated string meets end of file"
	case UnterminatedHeredocID:
		return "unterminated heredoc identifier"
	default:
		return "diagnostic"
	}
}

// Diagnostic pairs a Level, Message and the Range it was raised at.
type Diagnostic struct {
	Level   Level
	Message Message
	Loc     token.Range
}

// Bag accumulates diagnostics in emission order, per spec §5 "Ordering".
type Bag struct {
	items []Diagnostic
}

// Add appends one diagnostic.
func (b *Bag) Add(level Level, msg Message, loc token.Range) {
	b.items = append(b.items, Diagnostic{Level: level, Message: msg, Loc: loc})
}

// Warn is shorthand for Add(Warning, ...).
func (b *Bag) Warn(msg Message, loc token.Range) { b.Add(Warning, msg, loc) }

// Err is shorthand for Add(Error, ...).
func (b *Bag) Err(msg Message, loc token.Range) { b.Add(Error, msg, loc) }

// All returns every diagnostic recorded so far, in emission order.
func (b *Bag) All() []Diagnostic { return b.items }

// HasErrors reports whether any Error-level diagnostic was recorded.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Level == Error {
			return true
		}
	}
	return false
}
