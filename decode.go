// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jbind

import (
	"fmt"

	"github.com/softweave/jbind/ast"
)

// Decode converts a parsed tree into a record of type t. A nil tree, or a
// tree that is not an object, decodes to a record with every field absent;
// either way, required fields are still enforced, and the first missing
// required field in schema order is reported as a *MissingFieldError.
//
// Malformed values degrade rather than fail: a non-string value in a String
// field decodes as "", a non-array in a Strings field as absent. Nested
// decode failures propagate, and no partially built record escapes.
//
// When opt.CaptureUnknown is set, members of v with no matching field are
// moved into the record's residual and their slots in v are emptied, so v is
// no longer a complete rendering of its document. When opt.StrictWarn is set
// and at least one unknown key was seen, a single warning line is written to
// opt.Diag; the outcome of the decode is unchanged.
func Decode(v ast.Value, t *Type, opt Options) (*Record, error) {
	rec := New(t)
	obj, _ := v.(ast.Object) // anything else decodes as "no fields matched"

	for i := range t.Fields {
		f := &t.Fields[i]
		m := obj.Find(f.Name)
		if m == nil {
			if f.Required {
				Release(rec)
				return nil, &MissingFieldError{Type: t.Name, Field: f.Name}
			}
			continue
		}
		if err := decodeField(&rec.slots[i], f, m.Value, opt); err != nil {
			Release(rec)
			return nil, err
		}
	}

	if opt.CaptureUnknown || opt.StrictWarn {
		unknown := captureUnknown(rec, obj, t, opt.CaptureUnknown)
		if opt.StrictWarn && unknown > 0 && opt.Diag != nil {
			fmt.Fprintf(opt.Diag, "WARNING: unknown key found\n")
		}
	}
	return rec, nil
}

// decodeField fills s from value according to the descriptor f.
func decodeField(s *slot, f *Field, value ast.Value, opt Options) error {
	switch f.Kind {
	case Bool:
		// Only a literal true or false marks the field present; any other
		// shape leaves the tri-state at absent.
		if b, ok := value.(ast.Bool); ok {
			s.present, s.b = true, bool(b)
		}

	case String:
		s.present = true
		if str, ok := value.(ast.String); ok {
			s.s = string(str)
		}

	case Strings:
		arr, ok := value.(ast.Array)
		if !ok {
			return nil
		}
		// Length is recorded by the slice itself; an empty array stays
		// present so it survives a round trip.
		list := make([]string, len(arr))
		for i, elt := range arr {
			if str, ok := elt.(ast.String); ok {
				list[i] = string(str)
			}
		}
		s.present, s.list = true, list

	case Object:
		sub, err := Decode(value, f.Elem, opt)
		if err != nil {
			return err
		}
		s.present, s.rec = true, sub

	case Objects:
		arr, ok := value.(ast.Array)
		if !ok {
			return nil
		}
		recs := make([]*Record, 0, len(arr))
		for _, elt := range arr {
			sub, err := Decode(elt, f.Elem, opt)
			if err != nil {
				for _, r := range recs {
					Release(r)
				}
				return err
			}
			recs = append(recs, sub)
		}
		s.present, s.recs = true, recs

	default:
		return fmt.Errorf("field %q: invalid kind %v", f.Name, f.Kind)
	}
	return nil
}

// captureUnknown counts the members of obj not named by any field of t.
// When capture is set it also moves them, in order, into the residual of
// rec, emptying the source slots so obj does not retain a second owner.
func captureUnknown(rec *Record, obj ast.Object, t *Type, capture bool) (unknown int) {
	var resi ast.Object
	for _, m := range obj {
		if m.Value == nil || t.field(m.Key) != nil {
			continue
		}
		unknown++
		if capture {
			resi = append(resi, &ast.Member{Key: m.Key, Value: m.Value})
			m.Key, m.Value = "", nil // detach
		}
	}
	if len(resi) > 0 {
		rec.residual = resi
	}
	return unknown
}
