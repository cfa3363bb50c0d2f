// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package strindex_test

import (
	"math"
	"testing"

	"github.com/creachadair/strindex"
)

func TestFromInt(t *testing.T) {
	tests := []struct {
		input int
		want  strindex.Offset
		ok    bool
	}{
		{0, 0, true},
		{1, 1, true},
		{25, 25, true},
		{math.MaxUint32, math.MaxUint32, true},
		{-1, 0, false},
		{math.MaxUint32 + 1, 0, false},
	}
	for _, test := range tests {
		got, err := strindex.FromInt(test.input)
		if test.ok && err != nil {
			t.Errorf("FromInt(%d): unexpected error: %v", test.input, err)
		} else if !test.ok && err == nil {
			t.Errorf("FromInt(%d): got %v, want error", test.input, got)
		}
		if got != test.want {
			t.Errorf("FromInt(%d): got %v, want %v", test.input, got, test.want)
		}
	}
}

func TestRuneLen(t *testing.T) {
	tests := []struct {
		input rune
		want  strindex.Offset
	}{
		{'a', 1},
		{'÷', 2},
		{'メ', 3},
		{'😂', 4},
		{-1, 3},       // invalid rune, measures as the replacement rune
		{0x110000, 3}, // out of range, likewise
	}
	for _, test := range tests {
		if got := strindex.RuneLen(test.input); got != test.want {
			t.Errorf("RuneLen(%q): got %v, want %v", test.input, got, test.want)
		}
	}
}

func TestStringLen(t *testing.T) {
	tests := []struct {
		input string
		want  strindex.Offset
	}{
		{"", 0},
		{"abc", 3},
		{"メカジキ", 12},
		{"a😂b", 6},
	}
	for _, test := range tests {
		if got := strindex.StringLen(test.input); got != test.want {
			t.Errorf("StringLen(%q): got %v, want %v", test.input, got, test.want)
		}
	}
}

func TestCheckedArithmetic(t *testing.T) {
	const maxOffset = strindex.Offset(math.MaxUint32)

	t.Run("Add", func(t *testing.T) {
		tests := []struct {
			a, b, want strindex.Offset
			ok         bool
		}{
			{0, 0, 0, true},
			{1, 2, 3, true},
			{maxOffset, 0, maxOffset, true},
			{maxOffset - 1, 1, maxOffset, true},
			{maxOffset, 1, 0, false},
			{maxOffset, maxOffset, 0, false},
		}
		for _, test := range tests {
			got, ok := test.a.CheckedAdd(test.b)
			if got != test.want || ok != test.ok {
				t.Errorf("%v.CheckedAdd(%v): got (%v, %v), want (%v, %v)",
					test.a, test.b, got, ok, test.want, test.ok)
			}
		}
	})
	t.Run("Sub", func(t *testing.T) {
		tests := []struct {
			a, b, want strindex.Offset
			ok         bool
		}{
			{0, 0, 0, true},
			{3, 2, 1, true},
			{maxOffset, maxOffset, 0, true},
			{0, 1, 0, false},
			{5, 10, 0, false},
		}
		for _, test := range tests {
			got, ok := test.a.CheckedSub(test.b)
			if got != test.want || ok != test.ok {
				t.Errorf("%v.CheckedSub(%v): got (%v, %v), want (%v, %v)",
					test.a, test.b, got, ok, test.want, test.ok)
			}
		}
	})
}

// Plain Add and Sub wrap at the 32-bit boundary. This is documented caller
// beware, but make sure the behavior holds.
func TestUncheckedWrapping(t *testing.T) {
	const maxOffset = strindex.Offset(math.MaxUint32)

	if got := maxOffset.Add(1); got != 0 {
		t.Errorf("%v.Add(1): got %v, want 0", maxOffset, got)
	}
	if got := strindex.Offset(0).Sub(1); got != maxOffset {
		t.Errorf("0.Sub(1): got %v, want %v", got, maxOffset)
	}
	if got := strindex.Offset(10).Add(15); got != 25 {
		t.Errorf("10.Add(15): got %v, want 25", got)
	}
	if got := strindex.Offset(10).Sub(4); got != 6 {
		t.Errorf("10.Sub(4): got %v, want 6", got)
	}
}

func TestOffsetString(t *testing.T) {
	tests := []struct {
		input strindex.Offset
		want  string
	}{
		{0, "0"}, {1, "1"}, {25, "25"}, {math.MaxUint32, "4294967295"},
	}
	for _, test := range tests {
		if got := test.input.String(); got != test.want {
			t.Errorf("Offset(%d).String: got %q, want %q", uint32(test.input), got, test.want)
		}
	}
}

func TestRangeBuilders(t *testing.T) {
	point := strindex.Offset(5)

	if got, want := point.RangeFor(10), strindex.Between(5, 15); got != want {
		t.Errorf("%v.RangeFor(10): got %v, want %v", point, got, want)
	}
	if got, want := point.RangeTo(20), strindex.Between(5, 20); got != want {
		t.Errorf("%v.RangeTo(20): got %v, want %v", point, got, want)
	}
	if got, want := point.UnitRange(), point.RangeTo(point); got != want {
		t.Errorf("%v.UnitRange: got %v, want %v", point, got, want)
	}
	if !point.UnitRange().IsEmpty() {
		t.Errorf("%v.UnitRange: got nonempty, want empty", point)
	}
}
