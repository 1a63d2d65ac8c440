package report

import (
	"fmt"

	"cminus/source"
)

// Kind is the closed enumeration of diagnostic kinds a C-minus compilation
// can produce. The message templates in messageFor are this port's wording.
type Kind int

const (
	LexerBadNumber Kind = iota
	LexerBadChar
	LexerUnclosedComment

	ParserExpectedToken // args: [0] Category
	ParserExpectedType
	ParserExpectedExpression
	ParserExpectedStatement
	ParserNumberTooBig

	SemaRedefinition         // args: [0] SymbolName (string)
	SemaUndeclaredIdentifier // args: [0] SymbolName (string)
	SemaFunIsNotAFun
	SemaVarIsNotAVar
	SemaVarCannotBeVoid
)

// Severity classifies how a diagnostic should affect the compilation's exit
// code. Every Kind above is currently Error severity; the enum exists so a
// future warning-producing diagnostic can be added without changing
// Manager's API.
type Severity int

const (
	Error Severity = iota
	Warning
)

// Diagnostic is a single reported compiler message.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Loc      source.Location
	Args     []interface{}
}

// Message renders the diagnostic's human-readable text, substituting Args
// into the template for its Kind.
func (d *Diagnostic) Message() string {
	return fmt.Sprintf(messageFor(d.Kind), d.Args...)
}

func messageFor(k Kind) string {
	switch k {
	case LexerBadNumber:
		return "malformed number literal"
	case LexerBadChar:
		return "unexpected character"
	case LexerUnclosedComment:
		return "unclosed comment"
	case ParserExpectedToken:
		return "expected %v"
	case ParserExpectedType:
		return "expected a type ('int' or 'void')"
	case ParserExpectedExpression:
		return "expected an expression"
	case ParserExpectedStatement:
		return "expected a statement"
	case ParserNumberTooBig:
		return "number literal is too big for a 32-bit integer"
	case SemaRedefinition:
		return "redefinition of '%s'"
	case SemaUndeclaredIdentifier:
		return "use of undeclared identifier '%s'"
	case SemaFunIsNotAFun:
		return "called object is not a function"
	case SemaVarIsNotAVar:
		return "referenced object is not a variable"
	case SemaVarCannotBeVoid:
		return "variable cannot have type 'void'"
	default:
		return "unknown diagnostic"
	}
}

func severityFor(k Kind) Severity {
	// No diagnostic kind in the current design is a warning; every kind
	// above halts a successful compilation. Kept as a function (rather than
	// inlined into Diagnostic construction) so adding a warning kind later
	// is a one-line change here.
	return Error
}
