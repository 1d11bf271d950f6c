// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jbind

import (
	"fmt"

	"github.com/softweave/jbind/ast"
)

// A Record is a typed view of a JSON object, described by a Type. Each field
// of the schema has a slot that is either absent or holds a value of the
// field's kind; a boolean slot distinguishes absent from false. A Record may
// also carry a residual: the object members of its source document that no
// field descriptor recognized, kept in their original relative order.
//
// All structure reachable from a Record is owned by it exclusively. Decode,
// Clone, and the Set accessors maintain that invariant; see Clone and
// Release for the lifecycle consequences.
type Record struct {
	typ      *Type
	slots    []slot
	residual ast.Object
}

// A slot holds the present-or-absent value of one field. Only the member
// matching the field's kind is meaningful, and only when present is true.
type slot struct {
	present bool

	b    bool
	s    string
	list []string
	rec  *Record
	recs []*Record
}

// New constructs an all-absent record of type t.
func New(t *Type) *Record {
	return &Record{typ: t, slots: make([]slot, len(t.Fields))}
}

// Type returns the schema of r.
func (r *Record) Type() *Type { return r.typ }

// index returns the field position of the named field. It panics if the
// type of r has no such field; accessing an unknown field is a programmer
// error, not an input error.
func (r *Record) index(name string) int {
	for i := range r.typ.Fields {
		if r.typ.Fields[i].Name == name {
			return i
		}
	}
	panic(fmt.Sprintf("type %s has no field %q", r.typ.Name, name))
}

// slot returns the slot and descriptor for the named field, which must
// exist and have the given kind.
func (r *Record) slot(name string, want Kind) (*slot, *Field) {
	i := r.index(name)
	f := &r.typ.Fields[i]
	if f.Kind != want {
		panic(fmt.Sprintf("field %q has kind %v, not %v", name, f.Kind, want))
	}
	return &r.slots[i], f
}

// IsSet reports whether the named field is present in r.
// It panics if the type of r has no such field.
func (r *Record) IsSet(name string) bool { return r.slots[r.index(name)].present }

// Bool reports the value of the named Bool field and whether it is present.
// An absent field reports (false, false), distinct from a present false,
// which reports (false, true).
func (r *Record) Bool(name string) (value, ok bool) {
	s, _ := r.slot(name, Bool)
	return s.b, s.present
}

// SetBool sets the named Bool field present with the given value.
func (r *Record) SetBool(name string, v bool) {
	s, _ := r.slot(name, Bool)
	s.present, s.b = true, v
}

// String reports the value of the named String field and whether it is
// present.
func (r *Record) String(name string) (value string, ok bool) {
	s, _ := r.slot(name, String)
	return s.s, s.present
}

// SetString sets the named String field present with the given value.
func (r *Record) SetString(name, v string) {
	s, _ := r.slot(name, String)
	s.present, s.s = true, v
}

// Strings reports the value of the named Strings field and whether it is
// present. A present field may hold an empty (but non-nil) slice; the
// distinction survives encoding. The returned slice is owned by r.
func (r *Record) Strings(name string) (value []string, ok bool) {
	s, _ := r.slot(name, Strings)
	return s.list, s.present
}

// SetStrings sets the named Strings field present, copying vs. A nil vs is
// stored as an empty slice.
func (r *Record) SetStrings(name string, vs []string) {
	s, _ := r.slot(name, Strings)
	s.present, s.list = true, append([]string{}, vs...)
}

// Record returns the nested record of the named Object field, or nil when
// the field is absent. The returned record is owned by r.
func (r *Record) Record(name string) *Record {
	s, _ := r.slot(name, Object)
	return s.rec
}

// SetRecord sets the named Object field to rec, which must be of the field's
// element type and becomes owned by r. A nil rec clears the field.
func (r *Record) SetRecord(name string, rec *Record) {
	s, f := r.slot(name, Object)
	if rec == nil {
		s.present, s.rec = false, nil
		return
	}
	if rec.typ != f.Elem {
		panic(fmt.Sprintf("field %q wants type %s, got %s", name, f.Elem.Name, rec.typ.Name))
	}
	s.present, s.rec = true, rec
}

// Records reports the nested records of the named Objects field and whether
// it is present. The returned slice and its records are owned by r.
func (r *Record) Records(name string) (value []*Record, ok bool) {
	s, _ := r.slot(name, Objects)
	return s.recs, s.present
}

// SetRecords sets the named Objects field present with the given records,
// which must all be of the field's element type and become owned by r.
func (r *Record) SetRecords(name string, recs []*Record) {
	s, f := r.slot(name, Objects)
	for _, rec := range recs {
		if rec.typ != f.Elem {
			panic(fmt.Sprintf("field %q wants type %s, got %s", name, f.Elem.Name, rec.typ.Name))
		}
	}
	s.present, s.recs = true, append([]*Record{}, recs...)
}

// Clear marks the named field absent, discarding any value it held.
// It panics if the type of r has no such field.
func (r *Record) Clear(name string) { r.slots[r.index(name)] = slot{} }

// Residual returns the unknown-key members captured when r was decoded, or
// nil. The tree is owned by r and is released with it.
func (r *Record) Residual() ast.Object { return r.residual }

// SetResidual replaces the residual of r. The tree becomes owned by r.
func (r *Record) SetResidual(o ast.Object) { r.residual = o }
