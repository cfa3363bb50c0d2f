// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package strindex

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

// An Offset is a byte position within a string, stored as a 32-bit integer on
// the assumption that the library only deals with text shorter than 4 GiB.
// The zero value is the start of the string. Offsets are ordered and compared
// by their integer value.
type Offset uint32

// FromInt converts a machine-sized integer to an Offset. It reports an error
// if n is negative or does not fit in 32 bits.
func FromInt(n int) (Offset, error) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("offset value out of range: %d", n)
	}
	return Offset(n), nil
}

// RuneLen returns the Offset equal to the UTF-8 encoded length of r, from 1
// to 4 bytes. An invalid rune measures as the replacement rune does, matching
// how Go encodes it into a string.
func RuneLen(r rune) Offset {
	n := utf8.RuneLen(r)
	if n < 0 {
		n = utf8.RuneLen(utf8.RuneError)
	}
	return Offset(n)
}

// StringLen returns the Offset equal to the length of s in bytes.
// It panics if the length of s does not fit in 32 bits.
func StringLen(s string) Offset {
	if uint64(len(s)) >= math.MaxUint32 {
		panic("string index too large")
	}
	return Offset(len(s))
}

// Int returns o as a machine-sized integer.
func (o Offset) Int() int { return int(o) }

// Add returns o + n. The sum wraps at the 32-bit boundary; use CheckedAdd
// when an operand may be near the boundary.
func (o Offset) Add(n Offset) Offset { return o + n }

// Sub returns o - n. The difference wraps below zero; use CheckedSub when n
// may exceed o.
func (o Offset) Sub(n Offset) Offset { return o - n }

// CheckedAdd returns o + n and true, or zero and false if the sum does not
// fit in 32 bits.
func (o Offset) CheckedAdd(n Offset) (Offset, bool) {
	if n > math.MaxUint32-o {
		return 0, false
	}
	return o + n, true
}

// CheckedSub returns o - n and true, or zero and false if n exceeds o.
func (o Offset) CheckedSub(n Offset) (Offset, bool) {
	if n > o {
		return 0, false
	}
	return o - n, true
}

// RangeFor returns the range of length n starting at o.
func (o Offset) RangeFor(n Offset) Range { return Range{start: o, end: o + n} }

// RangeTo returns the range from o to end. It panics if end < o.
func (o Offset) RangeTo(end Offset) Range { return Between(o, end) }

// UnitRange returns the empty range at o.
func (o Offset) UnitRange() Range { return Range{start: o, end: o} }

func (o Offset) String() string { return strconv.FormatUint(uint64(o), 10) }
