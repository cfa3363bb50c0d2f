// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package strindex

import (
	"cmp"
	"fmt"

	"go4.org/mem"
)

// A Range is a half-open interval [start, end) of byte offsets within a
// string. A Range is always non-decreasing: every constructor checks that
// start ≤ end and panics on violation, so holders of a Range never need to
// re-validate it. The zero value is the empty range at offset 0.
//
// Violating the ordering invariant in process is a bug in the caller, and the
// panic is deliberate. External data is different: the JSON decoder reports
// the same violation as an ordinary error.
type Range struct {
	start, end Offset
}

// Between returns the range [start, end). It panics if end < start.
func Between(start, end Offset) Range {
	if end < start {
		panic(fmt.Sprintf("invalid string range %v..%v", start, end))
	}
	return Range{start: start, end: end}
}

// To returns the range [0, end), which is valid for any end.
func To(end Offset) Range { return Range{end: end} }

// Start returns the inclusive start offset of r.
func (r Range) Start() Offset { return r.start }

// End returns the exclusive end offset of r.
func (r Range) End() Offset { return r.end }

// Len returns the length of r in bytes.
func (r Range) Len() Offset { return r.end - r.start }

// IsEmpty reports whether r has equal start and end points.
func (r Range) IsEmpty() bool { return r.start == r.end }

// ContainsOffset reports whether o lies within r. The start of r is within
// r, the end is not.
func (r Range) ContainsOffset(o Offset) bool {
	return r.start <= o && o < r.end
}

// Contains reports whether o lies entirely within r. Endpoints may coincide,
// so a range always contains itself.
func (r Range) Contains(o Range) bool {
	return r.start <= o.start && o.end <= r.end
}

// IsDisjoint reports whether r and o share no position. Ranges that merely
// touch end-to-start are disjoint. A nonempty range is never disjoint from
// itself.
func (r Range) IsDisjoint(o Range) bool {
	return r.end <= o.start || o.end <= r.start
}

// WithStart returns r with its start replaced. It panics if start > r.End().
func (r Range) WithStart(start Offset) Range { return Between(start, r.end) }

// WithEnd returns r with its end replaced. It panics if end < r.Start().
func (r Range) WithEnd(end Offset) Range { return Between(r.start, end) }

// Intersect returns the intersection of r and o, and reports whether it
// exists. Ranges that touch end-to-start intersect in a valid empty range;
// the intersection does not exist only when a gap separates r and o.
func (r Range) Intersect(o Range) (Range, bool) {
	start, end := max(r.start, o.start), min(r.end, o.end)
	if start > end {
		return Range{}, false
	}
	return Range{start: start, end: end}, true
}

// Overlap returns the intersection of r and o, and reports whether it has
// positive length. Unlike Intersect, ranges that merely touch do not
// overlap.
func (r Range) Overlap(o Range) (Range, bool) {
	start, end := max(r.start, o.start), min(r.end, o.end)
	if start >= end {
		return Range{}, false
	}
	return Range{start: start, end: end}, true
}

// Merge returns the smallest range containing both r and o. The result
// spans any gap between them; it is a bounding union, not a set union.
func (r Range) Merge(o Range) Range {
	return Range{start: min(r.start, o.start), end: max(r.end, o.end)}
}

// Compare returns -1, 0, or +1 to indicate whether r is ordered before,
// equal to, or after o. Ranges order lexicographically by (start, end).
func (r Range) Compare(o Range) int {
	if v := cmp.Compare(r.start, o.start); v != 0 {
		return v
	}
	return cmp.Compare(r.end, o.end)
}

// Slice returns the subview buf[start:end] addressed by r. The view borrows
// the contents of buf; nothing is copied. Slice panics if r extends past the
// end of buf. The caller is responsible for ensuring the endpoints of r fall
// on UTF-8 boundaries of buf.
func (r Range) Slice(buf mem.RO) mem.RO {
	return buf.SliceTo(r.end.Int()).SliceFrom(r.start.Int())
}

// SliceString returns the substring s[start:end] addressed by r. It panics
// if r extends past the end of s.
func (r Range) SliceString(s string) string {
	return s[r.start:r.end]
}

func (r Range) String() string { return fmt.Sprintf("%v..%v", r.start, r.end) }
