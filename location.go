// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package strindex

import "go4.org/mem"

// A LineCol describes the line number and column offset of a position in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

// A Location describes the complete location of a range of source text,
// including line and column offsets for both endpoints.
type Location struct {
	Range
	First, Last LineCol
}

// Locate resolves r against the contents of buf, reporting the line and
// column of both endpoints. Lines are delimited by '\n'. An endpoint past
// the end of buf resolves as if it were at the end of buf.
func Locate(buf mem.RO, r Range) Location {
	return Location{
		Range: r,
		First: lineCol(buf, r.start.Int()),
		Last:  lineCol(buf, r.end.Int()),
	}
}

func lineCol(buf mem.RO, pos int) LineCol {
	if pos > buf.Len() {
		pos = buf.Len()
	}
	line, lineStart := 1, 0
	for {
		i := mem.IndexByte(buf.SliceFrom(lineStart), '\n')
		if i < 0 || lineStart+i >= pos {
			break
		}
		line++
		lineStart += i + 1
	}
	return LineCol{Line: line, Column: pos - lineStart}
}
