// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jbind

import "github.com/softweave/jbind/ast"

// Clone returns a deep copy of rec sharing no mutable structure with the
// original: strings, slices, nested records, and the residual tree are all
// copied. Mutating or releasing the clone never affects rec, and vice versa.
// Clone of a nil record returns nil.
func Clone(rec *Record) *Record {
	if rec == nil {
		return nil
	}
	out := New(rec.typ)
	for i := range rec.slots {
		s := &rec.slots[i]
		if !s.present {
			continue
		}
		d := &out.slots[i]
		d.present, d.b, d.s = true, s.b, s.s
		if s.list != nil {
			d.list = append([]string{}, s.list...)
		}
		if s.rec != nil {
			d.rec = Clone(s.rec)
		}
		if s.recs != nil {
			d.recs = make([]*Record, len(s.recs))
			for j, sub := range s.recs {
				d.recs[j] = Clone(sub)
			}
		}
	}
	if rec.residual != nil {
		out.residual = rec.residual.Clone().(ast.Object)
	}
	return out
}

// Release returns rec to its all-absent state, recursively releasing nested
// records and discarding the residual tree. Release is idempotent: calling
// it again on an already-released record, or on nil, is a no-op. It is safe
// to call on any record, including one left over from a failed decode.
func Release(rec *Record) {
	if rec == nil {
		return
	}
	for i := range rec.slots {
		s := &rec.slots[i]
		if s.rec != nil {
			Release(s.rec)
		}
		for _, sub := range s.recs {
			Release(sub)
		}
		*s = slot{}
	}
	rec.residual = nil
}
