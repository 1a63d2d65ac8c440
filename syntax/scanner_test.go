package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cminus/report"
	"cminus/source"
)

func scanAll(t *testing.T, text string) ([]Word, *report.Manager) {
	file := source.New("t.cm", []byte(text))
	mgr := report.New(file, report.LogLevelSilent)
	s := NewScanner(file, mgr)

	var words []Word
	for {
		w := s.NextWord()
		words = append(words, w)
		if w.Category == report.Eof {
			break
		}
	}
	return words, mgr
}

func TestScannerKeywordsAndIdentifiers(t *testing.T) {
	words, mgr := scanAll(t, "int ifx while whilex")
	assert.False(t, mgr.AnyErrors())

	cats := []report.Category{}
	for _, w := range words {
		cats = append(cats, w.Category)
	}
	assert.Equal(t,
		[]report.Category{report.Int, report.Identifier, report.While, report.Identifier, report.Eof},
		cats,
	)
}

func TestScannerNumberAdjacentLetterIsBadNumber(t *testing.T) {
	_, mgr := scanAll(t, "int a = 12x;")
	assert.True(t, mgr.AnyErrors())
}

func TestScannerUnclosedCommentReportsAtEOF(t *testing.T) {
	_, mgr := scanAll(t, "/* never closed")
	assert.True(t, mgr.AnyErrors())
}

func TestScannerOperators(t *testing.T) {
	words, mgr := scanAll(t, "<= >= == != < > = + - * /")
	assert.False(t, mgr.AnyErrors())

	want := []report.Category{
		report.LessEqual, report.GreaterEqual, report.Equal, report.NotEqual,
		report.Less, report.Greater, report.Assign,
		report.Plus, report.Minus, report.Star, report.Slash,
		report.Eof,
	}
	var got []report.Category
	for _, w := range words {
		got = append(got, w.Category)
	}
	assert.Equal(t, want, got)
}

func TestScannerBadCharIsSkippedAndReported(t *testing.T) {
	words, mgr := scanAll(t, "a @ b")
	assert.True(t, mgr.AnyErrors())

	var cats []report.Category
	for _, w := range words {
		cats = append(cats, w.Category)
	}
	assert.Equal(t, []report.Category{report.Identifier, report.Identifier, report.Eof}, cats)
}

// Lexeme ranges must be strictly monotonic and non-overlapping.
func TestScannerLexemesAreMonotonicAndNonOverlapping(t *testing.T) {
	words, _ := scanAll(t, "int main ( void ) { return 0 ; }")

	var prevEnd source.Location
	for _, w := range words {
		if w.Category == report.Eof {
			continue
		}
		assert.GreaterOrEqual(t, int(w.Lexeme.Begin), int(prevEnd))
		prevEnd = w.Lexeme.End()
	}
}
