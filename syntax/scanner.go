package syntax

import (
	"cminus/report"
	"cminus/source"
)

// Scanner turns a File's character stream into a stream of Words. It never
// fails destructively: on bad input it reports a diagnostic through its
// Manager and resynchronizes by skipping the offending character(s). This
// mirrors the peek/eat/mark/makeToken structure of
// chai/bootstrap/syntax/lexer.go, narrowed to C-minus's much smaller
// grammar and operating over an already-loaded source.File rather than a
// bufio.Reader.
type Scanner struct {
	file *source.File
	mgr  *report.Manager

	pos       source.Location
	markedPos source.Location
}

// NewScanner creates a Scanner over file, reporting lexical errors to mgr.
func NewScanner(file *source.File, mgr *report.Manager) *Scanner {
	return &Scanner{file: file, mgr: mgr}
}

// NextWord returns the next word in the stream, or a Category: Eof word
// forever once the input is exhausted.
func (s *Scanner) NextWord() Word {
	for {
		c := s.peek()

		switch {
		case c == 0 && s.atEnd():
			s.mark()
			return s.makeWord(report.Eof)
		case isSpace(c):
			s.eat()
		case c == '/' && s.peekAt(1) == '*':
			if !s.skipComment() {
				s.mark()
				return s.makeWord(report.Eof)
			}
		case isLetter(c):
			return s.lexIdentOrKeyword()
		case isDigit(c):
			return s.lexNumber()
		default:
			return s.lexOperator()
		}
	}
}

// -----------------------------------------------------------------------------

func (s *Scanner) atEnd() bool {
	return int(s.pos) >= s.file.Len()
}

func (s *Scanner) peek() byte {
	return s.peekAt(0)
}

func (s *Scanner) peekAt(n int) byte {
	loc := s.pos + source.Location(n)
	if int(loc) > s.file.Len() {
		return 0
	}
	return s.file.ByteAt(loc)
}

func (s *Scanner) eat() byte {
	c := s.file.ByteAt(s.pos)
	s.pos++
	return c
}

func (s *Scanner) mark() {
	s.markedPos = s.pos
}

func (s *Scanner) lexeme() source.Range {
	return source.Range{Begin: s.markedPos, Len: int(s.pos - s.markedPos)}
}

func (s *Scanner) makeWord(cat report.Category) Word {
	return Word{Category: cat, Lexeme: s.lexeme()}
}

// -----------------------------------------------------------------------------

// skipComment consumes a /* ... */ comment, having already confirmed the
// opening "/*". Nested comments are not supported. Returns
// false if EOF was reached before the comment closed, in which case a
// lexer_unclosed_comment diagnostic has already been reported.
func (s *Scanner) skipComment() bool {
	s.mark()
	s.eat() // '/'
	s.eat() // '*'

	for {
		if s.atEnd() {
			s.mgr.Report(s.markedPos, report.LexerUnclosedComment)
			return false
		}

		if s.peek() == '*' && s.peekAt(1) == '/' {
			s.eat()
			s.eat()
			return true
		}

		s.eat()
	}
}

// lexIdentOrKeyword lexes [A-Za-z][A-Za-z]*. A digit terminates the
// identifier rather than joining it.
func (s *Scanner) lexIdentOrKeyword() Word {
	s.mark()

	for isLetter(s.peek()) {
		s.eat()
	}

	text := s.file.Text(s.lexeme())
	if cat, ok := keywords[text]; ok {
		return s.makeWord(cat)
	}
	return s.makeWord(report.Identifier)
}

// lexNumber lexes [0-9]+. An identifier-char immediately following the
// digit run is a bad number; the scanner still consumes the letters so a
// later well-formed token is not corrupted by a partial consume.
func (s *Scanner) lexNumber() Word {
	s.mark()

	for isDigit(s.peek()) {
		s.eat()
	}

	if isLetter(s.peek()) {
		for isLetter(s.peek()) || isDigit(s.peek()) {
			s.eat()
		}
		s.mgr.Report(s.markedPos, report.LexerBadNumber)
		return s.makeWord(report.Number)
	}

	return s.makeWord(report.Number)
}

// symbolCategories maps every recognized one- or two-character operator or
// punctuation spelling to its category.
var symbolCategories = map[string]report.Category{
	"+": report.Plus, "-": report.Minus, "*": report.Star, "/": report.Slash,
	";": report.Semicolon, ",": report.Comma,
	"(": report.OpenParen, ")": report.CloseParen,
	"[": report.OpenBracket, "]": report.CloseBracket,
	"{": report.OpenCurly, "}": report.CloseCurly,
	"=": report.Assign,
	"<": report.Less, ">": report.Greater,
	"<=": report.LessEqual, ">=": report.GreaterEqual,
	"==": report.Equal, "!=": report.NotEqual,
}

// lexOperator lexes a single operator/punctuation token, trying the
// two-character spelling before falling back to one character, mirroring
// lexPunctOrOper's "try build, fall back" loop. Any character that matches
// neither is lexer_bad_char and is skipped by itself.
func (s *Scanner) lexOperator() Word {
	s.mark()
	c := s.eat()

	if two, ok := symbolCategories[string(c)+string(s.peek())]; ok {
		s.eat()
		return s.makeWord(two)
	}

	if one, ok := symbolCategories[string(c)]; ok {
		return s.makeWord(one)
	}

	s.mgr.Report(s.markedPos, report.LexerBadChar)
	return s.NextWord()
}

// -----------------------------------------------------------------------------

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
