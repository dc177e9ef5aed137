package space

import (
	"fmt"
	"strconv"
)

// Kind identifies the scalar type of a Value.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a small immutable tagged scalar. It is the only value type that
// domains hold and instances carry.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

// IntVal wraps an integer.
func IntVal(v int64) Value { return Value{kind: KindInt, i: v} }

// FloatVal wraps a float.
func FloatVal(v float64) Value { return Value{kind: KindFloat, f: v} }

// BoolVal wraps a boolean.
func BoolVal(v bool) Value { return Value{kind: KindBool, b: v} }

// StringVal wraps a string.
func StringVal(v string) Value { return Value{kind: KindString, s: v} }

// Kind reports the scalar type of the value.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer payload. Calling it on a non-int value is a
// programmer error and panics.
func (v Value) Int() int64 {
	if v.kind != KindInt {
		panic(fmt.Sprintf("space: Int() called on %s value", v.kind))
	}
	return v.i
}

// Float returns the float payload.
func (v Value) Float() float64 {
	if v.kind != KindFloat {
		panic(fmt.Sprintf("space: Float() called on %s value", v.kind))
	}
	return v.f
}

// Bool returns the boolean payload.
func (v Value) Bool() bool {
	if v.kind != KindBool {
		panic(fmt.Sprintf("space: Bool() called on %s value", v.kind))
	}
	return v.b
}

// Str returns the string payload.
func (v Value) Str() string {
	if v.kind != KindString {
		panic(fmt.Sprintf("space: Str() called on %s value", v.kind))
	}
	return v.s
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(o Value) bool { return v == o }

// String renders the payload for tokens and error messages.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	default:
		return "<invalid>"
	}
}
