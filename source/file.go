// Package source owns the immutable source text of a C-minus compilation and
// translates between byte offsets and (line, column) positions for
// diagnostics.
package source

import (
	"io/ioutil"
	"sort"
)

// eofSentinel is appended to every loaded buffer so the scanner can treat
// "one past the last byte" the same way it treats any other position instead
// of special-casing a nil check on every peek.
const eofSentinel = 0

// File owns the text of a single C-minus source file. A File is immutable
// once constructed: every Location and Range handed out remains valid for as
// long as the File itself is reachable.
type File struct {
	// Path is the path the file was loaded from, used only for display.
	Path string

	// text is the raw source bytes plus a trailing sentinel byte.
	text []byte

	// lineStarts[i] is the byte offset of the first character of line i
	// (zero-indexed).
	lineStarts []int
}

// Load reads path and wraps it in a File.
func Load(path string) (*File, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return New(path, data), nil
}

// New builds a File directly from in-memory text, useful for tests and for
// drivers that already have the bytes in hand.
func New(path string, text []byte) *File {
	buf := make([]byte, len(text)+1)
	copy(buf, text)
	buf[len(text)] = eofSentinel

	f := &File{Path: path, text: buf}
	f.indexLines()
	return f
}

func (f *File) indexLines() {
	f.lineStarts = []int{0}
	for i, b := range f.text {
		if b == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
}

// Len returns the number of real source bytes, excluding the sentinel.
func (f *File) Len() int {
	return len(f.text) - 1
}

// ByteAt returns the byte at loc, or the sentinel value if loc is the
// one-past-the-end position.
func (f *File) ByteAt(loc Location) byte {
	return f.text[loc]
}

// Text returns the source text spanned by r, excluding the sentinel.
func (f *File) Text(r Range) string {
	return string(f.text[r.Begin:r.End()])
}

// LineCol returns the zero-indexed (line, column) of loc.
func (f *File) LineCol(loc Location) (line, col int) {
	off := int(loc)
	line = sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > off
	}) - 1
	col = off - f.lineStarts[line]
	return
}

// LineText returns the text of the given zero-indexed line, without its
// trailing newline.
func (f *File) LineText(line int) string {
	if line < 0 || line >= len(f.lineStarts) {
		return ""
	}

	start := f.lineStarts[line]
	end := len(f.text) - 1
	if line+1 < len(f.lineStarts) {
		end = f.lineStarts[line+1] - 1
	}

	for end > start && (f.text[end-1] == '\n' || f.text[end-1] == '\r') {
		end--
	}

	return string(f.text[start:end])
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int {
	return len(f.lineStarts)
}
