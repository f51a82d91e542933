package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind identifies which scalar a Value carries.
type ValueKind int

const (
	KindInt ValueKind = iota
	KindString
	KindBool
)

// Value is a scalar sampled into a coverpoint or declared on a discrete bin.
// It is a closed tagged union over the three scalar kinds the coverage model
// supports; the kind is fixed at construction. Only KindInt values participate
// in range matching and transition tracking.
type Value struct {
	kind ValueKind
	i    int64
	s    string
	b    bool
}

// IntValue wraps an integer sample.
func IntValue(v int64) Value { return Value{kind: KindInt, i: v} }

// StringValue wraps a string sample.
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// BoolValue wraps a boolean sample.
func BoolValue(v bool) Value { return Value{kind: KindBool, b: v} }

// Kind returns the scalar kind.
func (v Value) Kind() ValueKind { return v.kind }

// Int returns the integer payload and whether the value is an integer.
func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindString:
		return v.s == o.s
	case KindBool:
		return v.b == o.b
	}
	return false
}

// String renders the payload for log and error messages.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return "<invalid>"
}

// MarshalJSON encodes the value as a bare JSON scalar, matching the
// persisted schema where a discrete bin's value is a raw number, string,
// or boolean.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return json.Marshal(v.i)
	case KindString:
		return json.Marshal(v.s)
	case KindBool:
		return json.Marshal(v.b)
	}
	return nil, fmt.Errorf("value has invalid kind %d", v.kind)
}

// UnmarshalJSON decodes a bare JSON scalar into the matching kind.
// Non-integer numbers are rejected; the schema's scalar set is closed.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch t := tok.(type) {
	case bool:
		*v = BoolValue(t)
	case string:
		*v = StringValue(t)
	case json.Number:
		n, err := strconv.ParseInt(t.String(), 10, 64)
		if err != nil {
			return fmt.Errorf("discrete value %q is not an integer: %w", t.String(), err)
		}
		*v = IntValue(n)
	default:
		return fmt.Errorf("unsupported discrete value %s", string(data))
	}
	return nil
}
