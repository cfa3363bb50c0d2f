// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package strindex defines compact value types for addressing substrings of
// text: a byte Offset into a string, and a half-open Range of offsets that is
// guaranteed by construction to be non-decreasing (start ≤ end).
//
// Neither type stores or refers to string content. They are coordinates only,
// intended for token spans, parse-tree extents, and similar bookkeeping where
// raw integer pairs would force every consumer to re-check ordering.
//
// # Offsets
//
// An Offset is a byte position, counted from the start of some string and
// stored in 32 bits. The package assumes text shorter than 4 GiB; measuring a
// longer string with StringLen panics. Convert to and from the raw integer
// with ordinary Go conversions:
//
//	o := strindex.Offset(25)
//	n := uint32(o)
//
// Plain Add and Sub wrap at the 32-bit boundary like the uint32 they are
// built on. Use CheckedAdd and CheckedSub when an operand may be near the
// boundary:
//
//	if sum, ok := o.CheckedAdd(p); ok {
//	   // sum is valid
//	}
//
// # Ranges
//
// A Range is the half-open interval [start, end). Every constructor checks
// start ≤ end and panics on violation; a caller that holds a Range never
// needs to re-validate it. A range with start == end is valid and empty.
//
//	r := strindex.Between(5, 10)
//	r.Len()     // 5
//	r.IsEmpty() // false
//
// Ranges combine with Intersect, Overlap, and Merge, and test each other with
// Contains and IsDisjoint. Ranges that merely touch end-to-start share no
// position: they are disjoint, yet their intersection is a valid empty range.
// Overlap draws that distinction, reporting only intersections of positive
// length.
//
// # Encoding
//
// Both types implement json.Marshaler and json.Unmarshaler. An Offset is a
// bare integer; a Range is an object with "start" and "end" members, and its
// decoder also accepts a two-element array [start, end]. Decoding is the one
// boundary where ordering cannot be trusted, so the decoder re-checks the
// invariant and reports a plain error rather than panicking:
//
//	var r strindex.Range
//	err := json.Unmarshal([]byte(`{"start":10,"end":0}`), &r)
//	// err: invalid string range 10..0
//
// ParseRange and ParseOffset accept the same forms written as HuJSON, with
// comments and trailing commas.
package strindex
