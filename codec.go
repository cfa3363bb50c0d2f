// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package strindex

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/tailscale/hujson"
)

// MarshalJSON implements json.Marshaler. An Offset encodes as a bare
// unsigned integer.
func (o Offset) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(o), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler. The input must be an unsigned
// integer no larger than 32 bits.
func (o *Offset) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseUint(string(data), 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("offset value out of range: %s", data)
	} else if err != nil {
		return fmt.Errorf("cannot decode %s as an offset", data)
	}
	*o = Offset(v)
	return nil
}

// MarshalJSON implements json.Marshaler. A Range encodes as an object with
// "start" and "end" members:
//
//	{"start":10,"end":25}
func (r Range) MarshalJSON() ([]byte, error) {
	return fmt.Appendf(nil, `{"start":%d,"end":%d}`, r.start, r.end), nil
}

// UnmarshalJSON implements json.Unmarshaler. The input may be an object with
// exactly the members "start" and "end" in either order, or an array of
// exactly two offsets in the order start, end.
//
// Decoded offsets are untrusted, so unlike the in-process constructors the
// decoder reports an ordering violation as an error, not a panic.
func (r *Range) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	var start, end Offset
	if d, ok := tok.(json.Delim); !ok {
		return fmt.Errorf("cannot decode %v as a string range", tok)
	} else if d == '{' {
		err = decodeRangeObject(dec, &start, &end)
	} else if d == '[' {
		err = decodeRangeArray(dec, &start, &end)
	} else {
		return fmt.Errorf("cannot decode %v as a string range", d)
	}
	if err != nil {
		return err
	}

	// Assign the fields directly and check ordering here, rather than
	// panicking in Between.
	out := Range{start: start, end: end}
	if end < start {
		return fmt.Errorf("invalid string range %v", out)
	}
	*r = out
	return nil
}

func decodeRangeObject(dec *json.Decoder, start, end *Offset) error {
	var hasStart, hasEnd bool
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch key := tok.(string); key {
		case "start":
			if hasStart {
				return errors.New(`duplicate field "start"`)
			} else if err := dec.Decode(start); err != nil {
				return err
			}
			hasStart = true
		case "end":
			if hasEnd {
				return errors.New(`duplicate field "end"`)
			} else if err := dec.Decode(end); err != nil {
				return err
			}
			hasEnd = true
		default:
			return fmt.Errorf(`unknown field %q (expected "start" or "end")`, key)
		}
	}
	if !hasStart {
		return errors.New(`missing field "start"`)
	} else if !hasEnd {
		return errors.New(`missing field "end"`)
	}
	_, err := dec.Token() // discard closing "}"
	return err
}

func decodeRangeArray(dec *json.Decoder, start, end *Offset) error {
	if !dec.More() {
		return errors.New("missing range element 0 (start)")
	} else if err := dec.Decode(start); err != nil {
		return err
	}
	if !dec.More() {
		return errors.New("missing range element 1 (end)")
	} else if err := dec.Decode(end); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("extra elements after range end")
	}
	_, err := dec.Token() // discard closing "]"
	return err
}

// ParseRange decodes a Range from data, which may be written as HuJSON, with
// comments and trailing commas. The value itself takes the same forms
// accepted by UnmarshalJSON.
func ParseRange(data []byte) (Range, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return Range{}, err
	}
	var r Range
	if err := json.Unmarshal(std, &r); err != nil {
		return Range{}, err
	}
	return r, nil
}

// ParseOffset decodes an Offset from data, which may be written as HuJSON.
func ParseOffset(data []byte) (Offset, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return 0, err
	}
	var o Offset
	if err := json.Unmarshal(std, &o); err != nil {
		return 0, err
	}
	return o, nil
}
