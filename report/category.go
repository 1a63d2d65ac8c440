package report

// Category classifies a scanned word. It lives in report, not syntax,
// because a diagnostic argument may need to name an expected category
// (report.Kind ParserExpectedToken) and report must not import syntax to do
// so — the original C++ implementation resolves the same layering question
// by forward-declaring `enum class Category` in diagnostics.hpp ahead of its
// real definition in scanner.hpp.
type Category int

const (
	Identifier Category = iota
	Number

	Else
	If
	Int
	Return
	Void
	While

	Plus
	Minus
	Star
	Slash
	Less
	LessEqual
	Greater
	GreaterEqual
	Equal
	NotEqual
	Assign
	Semicolon
	Comma
	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	OpenCurly
	CloseCurly

	Eof
)

var categoryNames = map[Category]string{
	Identifier:   "identifier",
	Number:       "number",
	Else:         "'else'",
	If:           "'if'",
	Int:          "'int'",
	Return:       "'return'",
	Void:         "'void'",
	While:        "'while'",
	Plus:         "'+'",
	Minus:        "'-'",
	Star:         "'*'",
	Slash:        "'/'",
	Less:         "'<'",
	LessEqual:    "'<='",
	Greater:      "'>'",
	GreaterEqual: "'>='",
	Equal:        "'=='",
	NotEqual:     "'!='",
	Assign:       "'='",
	Semicolon:    "';'",
	Comma:        "','",
	OpenParen:    "'('",
	CloseParen:   "')'",
	OpenBracket:  "'['",
	CloseBracket: "']'",
	OpenCurly:    "'{'",
	CloseCurly:   "'}'",
	Eof:          "end of file",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown token"
}
