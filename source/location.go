package source

// Location is an opaque handle to a position in a File: a byte offset. It is
// a plain int rather than a pointer into the buffer (as the original C++
// implementation uses) since Go slices may move on reallocation; File.text
// never grows after construction, but keeping Location value-comparable and
// independent of the backing array keeps it trivially copyable regardless.
type Location int

// Range is a contiguous, non-empty-or-empty run of source text: a lexeme, an
// identifier, a whole expression. Both fields are plain ints, matching the
// cheap value semantics of the original's std::string_view-based
// SourceRange.
type Range struct {
	Begin Location
	Len   int
}

// End returns the location one past the last character of the range.
func (r Range) End() Location {
	return r.Begin + Location(r.Len)
}

// RangeOver returns the smallest range spanning both a and b.
func RangeOver(a, b Range) Range {
	begin := a.Begin
	end := a.End()

	if b.Begin < begin {
		begin = b.Begin
	}
	if b.End() > end {
		end = b.End()
	}

	return Range{Begin: begin, Len: int(end - begin)}
}
