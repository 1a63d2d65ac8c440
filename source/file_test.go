package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineCol(t *testing.T) {
	f := New("t.cm", []byte("int a;\nint b;\n"))

	line, col := f.LineCol(0)
	assert.Equal(t, 0, line)
	assert.Equal(t, 0, col)

	// 'i' of the second line's "int"
	secondLineStart := Location(7)
	line, col = f.LineCol(secondLineStart)
	assert.Equal(t, 1, line)
	assert.Equal(t, 0, col)
}

func TestLineText(t *testing.T) {
	f := New("t.cm", []byte("int a;\nint b;\n"))

	assert.Equal(t, "int a;", f.LineText(0))
	assert.Equal(t, "int b;", f.LineText(1))
	assert.Equal(t, "", f.LineText(99))
}

func TestTextRoundTrip(t *testing.T) {
	text := "int main(void) { return 0; }"
	f := New("t.cm", []byte(text))

	assert.Equal(t, text, f.Text(Range{Begin: 0, Len: f.Len()}))
}

func TestRangeOver(t *testing.T) {
	a := Range{Begin: 2, Len: 3} // [2,5)
	b := Range{Begin: 10, Len: 2} // [10,12)

	r := RangeOver(a, b)
	assert.Equal(t, Location(2), r.Begin)
	assert.Equal(t, Location(12), r.End())
}
