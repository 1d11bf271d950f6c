// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a generic ordered tree representation for JSON
// values, and a parser that constructs trees from JSON source.
//
// Unlike the map-based representation used by encoding/json, an ast.Object
// records its members in the order they occurred in the input. Callers that
// re-serialize a tree get the members back in that same order, which is what
// makes lossless round-trips of partially-understood documents possible.
package ast

import (
	"fmt"
	"strconv"

	"github.com/softweave/jbind/internal/escape"
)

// A Value is an arbitrary JSON value. The concrete type of a Value is one of
// Object, Array, String, Number, Bool, or Null.
type Value interface {
	// JSON renders the value as compact JSON text.
	JSON() string

	// Clone returns a deep copy of the value sharing no mutable structure
	// with the original.
	Clone() Value
}

// An Object is an ordered collection of key-value members.
// Member order is significant and is preserved by Clone and JSON.
type Object []*Member

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Find returns the first member of o whose key exactly equals key, or nil.
// Members whose values have been detached are not considered.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key && m.Value != nil {
			return m
		}
	}
	return nil
}

// Index returns the position of the first member of o whose key exactly
// equals key, or -1.
func (o Object) Index(key string) int {
	for i, m := range o {
		if m.Key == key && m.Value != nil {
			return i
		}
	}
	return -1
}

// Detach removes the value of the first member matching key from o and
// returns it, or returns nil if no member matches. The member slot remains
// in o with an empty key and no value, so o is no longer a faithful
// rendering of its source document after a successful Detach.
func (o Object) Detach(key string) Value {
	m := o.Find(key)
	if m == nil {
		return nil
	}
	v := m.Value
	m.Key, m.Value = "", nil
	return v
}

// Len reports the number of members of o, including detached slots.
func (o Object) Len() int { return len(o) }

func (o Object) JSON() string {
	buf := []byte{'{'}
	n := 0
	for _, m := range o {
		if m.Value == nil {
			continue // detached
		}
		if n > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, m.json()...)
		n++
	}
	return string(append(buf, '}'))
}

func (o Object) Clone() Value {
	if o == nil {
		return Object(nil)
	}
	out := make(Object, 0, len(o))
	for _, m := range o {
		c := &Member{Key: m.Key}
		if m.Value != nil {
			c.Value = m.Value.Clone()
		}
		out = append(out, c)
	}
	return out
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

func (m *Member) json() string {
	return string(escape.Quote(m.Key)) + ":" + m.Value.JSON()
}

// Field constructs an object member with the given key and value.
// The value must be a type accepted by ToValue.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// An Array is an ordered sequence of values.
type Array []Value

// Len reports the number of elements of a.
func (a Array) Len() int { return len(a) }

func (a Array) JSON() string {
	buf := []byte{'['}
	for i, v := range a {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, v.JSON()...)
	}
	return string(append(buf, ']'))
}

func (a Array) Clone() Value {
	if a == nil {
		return Array(nil)
	}
	out := make(Array, len(a))
	for i, v := range a {
		out[i] = v.Clone()
	}
	return out
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// A String is a string value. Its text is stored unescaped.
type String string

func (s String) JSON() string   { return string(escape.Quote(string(s))) }
func (s String) Clone() Value   { return s }
func (s String) String() string { return string(s) }

// A Number is a numeric value. The original source text of the number is
// preserved verbatim, so re-encoding a Number is byte-stable even for inputs
// that do not survive a float64 round-trip.
type Number string

func (n Number) JSON() string   { return string(n) }
func (n Number) Clone() Value   { return n }
func (n Number) String() string { return string(n) }

// Float64 returns the value of n as a float64. It panics if the stored text
// is not a valid JSON number.
func (n Number) Float64() float64 {
	v, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		panic(err)
	}
	return v
}

// Int64 returns the value of n as an int64. It panics if the stored text is
// not a valid integer.
func (n Number) Int64() int64 {
	v, err := strconv.ParseInt(string(n), 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Bool) Clone() Value   { return b }
func (b Bool) String() string { return b.JSON() }

// Null represents the JSON null constant.
type Null struct{}

func (Null) JSON() string   { return "null" }
func (n Null) Clone() Value { return n }
func (Null) String() string { return "null" }

// ToValue converts a string, int, int64, float64, bool, nil, or Value into a
// Value. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case string:
		return String(t)
	case int:
		return Number(strconv.Itoa(t))
	case int64:
		return Number(strconv.FormatInt(t, 10))
	case float64:
		return Number(strconv.FormatFloat(t, 'g', -1, 64))
	case bool:
		return Bool(t)
	case nil:
		return Null{}
	default:
		panic(fmt.Sprintf("invalid value %[1]T (%[1]v)", v))
	}
}

// Path traverses a sequence of object keys and array offsets starting from v
// and returns the value reached, or an error describing where traversal
// stopped. Each path element must be a string (an object key) or an int (an
// array offset, negative values counting back from the end).
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for i, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(Object)
			if !ok {
				return nil, fmt.Errorf("path %d: got %T, want object", i, cur)
			}
			m := obj.Find(t)
			if m == nil {
				return nil, fmt.Errorf("path %d: key %q not found", i, t)
			}
			cur = m.Value
		case int:
			arr, ok := cur.(Array)
			if !ok {
				return nil, fmt.Errorf("path %d: got %T, want array", i, cur)
			}
			pos := t
			if pos < 0 {
				pos += len(arr)
			}
			if pos < 0 || pos >= len(arr) {
				return nil, fmt.Errorf("path %d: offset %d out of range (0..%d)", i, t, len(arr))
			}
			cur = arr[pos]
		default:
			return nil, fmt.Errorf("path %d: invalid element %[2]T (%[2]v)", i, elt)
		}
	}
	return cur, nil
}
