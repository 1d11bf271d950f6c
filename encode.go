// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jbind

import (
	"fmt"

	"github.com/softweave/jbind/ast"
)

// An Emitter receives a stream of document structure events from Encode.
// If a method reports an error, encoding stops and the error is returned to
// the caller wrapped in an *EmitError. Emission is not transactional: an
// emitter that fails mid-stream may already have produced a partial
// document.
type Emitter interface {
	// Begin a new object.
	BeginObject() error

	// End the most-recently-opened object.
	EndObject() error

	// Begin a new array.
	BeginArray() error

	// End the most-recently-opened array.
	EndArray() error

	// Report the key of the next object member. Key is called exactly once
	// before the member's value events.
	Key(name string) error

	// Report scalar values.
	Bool(v bool) error
	String(s string) error
	Number(text string) error
	Null() error
}

// Encode writes rec to e as a JSON object. Known fields are written in
// schema order; a field is written only when present, unless
// opt.EmitAllKnown is set, in which case absent fields are written with
// their kind's zero value. Residual members, if any, follow the known
// fields in their stored order, so a decode/encode round trip preserves
// unknown keys byte for byte (after known keys, in original relative order).
func Encode(rec *Record, e Emitter, opt Options) error {
	if rec == nil {
		return fmt.Errorf("encode: nil record")
	}
	return encodeType(rec.typ, rec, e, opt)
}

// encodeType writes rec, which may be nil to mean an all-absent record of
// type t. A nil record can still produce output under opt.EmitAllKnown.
func encodeType(t *Type, rec *Record, e Emitter, opt Options) error {
	if err := e.BeginObject(); err != nil {
		return &EmitError{err: err}
	}
	for i := range t.Fields {
		f := &t.Fields[i]
		var s *slot
		if rec != nil {
			s = &rec.slots[i]
		}
		if (s == nil || !s.present) && !opt.EmitAllKnown {
			continue
		}
		if err := e.Key(f.Name); err != nil {
			return &EmitError{Field: f.Name, err: err}
		}
		if err := encodeField(f, s, e, opt); err != nil {
			return err
		}
	}
	if rec != nil {
		for _, m := range rec.residual {
			if m.Value == nil {
				continue
			}
			if err := e.Key(m.Key); err != nil {
				return &EmitError{Field: m.Key, err: err}
			}
			if err := emitTree(m.Value, e); err != nil {
				return &EmitError{Field: m.Key, err: err}
			}
		}
	}
	if err := e.EndObject(); err != nil {
		return &EmitError{err: err}
	}
	return nil
}

// encodeField writes the value of one field. A nil or absent slot stands
// for the kind's zero value; callers only pass one when opt.EmitAllKnown.
func encodeField(f *Field, s *slot, e Emitter, opt Options) error {
	present := s != nil && s.present
	fail := func(err error) error { return &EmitError{Field: f.Name, err: err} }

	switch f.Kind {
	case Bool:
		v := present && s.b
		if err := e.Bool(v); err != nil {
			return fail(err)
		}

	case String:
		var v string
		if present {
			v = s.s
		}
		if err := e.String(v); err != nil {
			return fail(err)
		}

	case Strings:
		if err := e.BeginArray(); err != nil {
			return fail(err)
		}
		if present {
			for _, elt := range s.list {
				if err := e.String(elt); err != nil {
					return fail(err)
				}
			}
		}
		if err := e.EndArray(); err != nil {
			return fail(err)
		}

	case Object:
		var sub *Record
		if present {
			sub = s.rec
		}
		return encodeType(f.Elem, sub, e, opt)

	case Objects:
		if err := e.BeginArray(); err != nil {
			return fail(err)
		}
		if present {
			for _, sub := range s.recs {
				if err := encodeType(f.Elem, sub, e, opt); err != nil {
					return err
				}
			}
		}
		if err := e.EndArray(); err != nil {
			return fail(err)
		}

	default:
		return fmt.Errorf("field %q: invalid kind %v", f.Name, f.Kind)
	}
	return nil
}

// emitTree replays an ast value verbatim as emitter events. Residual
// subtrees pass through here, so their member order and number text are
// preserved exactly.
func emitTree(v ast.Value, e Emitter) error {
	switch t := v.(type) {
	case ast.Object:
		if err := e.BeginObject(); err != nil {
			return err
		}
		for _, m := range t {
			if m.Value == nil {
				continue
			}
			if err := e.Key(m.Key); err != nil {
				return err
			}
			if err := emitTree(m.Value, e); err != nil {
				return err
			}
		}
		return e.EndObject()
	case ast.Array:
		if err := e.BeginArray(); err != nil {
			return err
		}
		for _, elt := range t {
			if err := emitTree(elt, e); err != nil {
				return err
			}
		}
		return e.EndArray()
	case ast.String:
		return e.String(string(t))
	case ast.Number:
		return e.Number(string(t))
	case ast.Bool:
		return e.Bool(bool(t))
	case ast.Null:
		return e.Null()
	default:
		return fmt.Errorf("unknown value %[1]T (%[1]v)", v)
	}
}
