package syntax

import (
	"cminus/report"
	"cminus/source"
)

// Word is a single classified lexeme produced by the Scanner.
type Word struct {
	Category report.Category
	Lexeme   source.Range
}

// IsAnyOf reports whether w's category matches any of cats.
func (w Word) IsAnyOf(cats ...report.Category) bool {
	for _, c := range cats {
		if w.Category == c {
			return true
		}
	}
	return false
}

// keywords maps the identifier spelling of each keyword to its category.
// Populated once; post-match lookup against this table is how the scanner
// distinguishes keywords from ordinary identifiers.
var keywords = map[string]report.Category{
	"else":   report.Else,
	"if":     report.If,
	"int":    report.Int,
	"return": report.Return,
	"void":   report.Void,
	"while":  report.While,
}
