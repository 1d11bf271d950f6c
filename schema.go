// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jbind

import (
	"fmt"
	"sort"
)

// A Kind identifies the semantic type of a schema field.
type Kind int8

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid kind

	Bool    // tri-state boolean: absent, true, or false
	String  // optional string
	Strings // array of strings, present even when empty
	Object  // nested record
	Objects // array of nested records
)

var kindStr = [...]string{
	Invalid: "invalid",
	Bool:    "bool",
	String:  "string",
	Strings: "strings",
	Object:  "object",
	Objects: "objects",
}

func (k Kind) String() string {
	v := int(k)
	if v <= 0 || v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Field describes one recognized key of a record type: its wire name, its
// kind, whether a decode must fail when the key is missing, and, for nested
// kinds, the schema of the nested type. A Field is immutable once its Type
// is in use and may be shared freely across records and goroutines.
type Field struct {
	Name     string // the key as it appears on the wire
	Kind     Kind
	Required bool
	Elem     *Type // element schema for Object and Objects, nil otherwise
}

// A Type is the ordered field schema of one record type. Decode and Encode
// visit the Fields in slice order, which fixes both required-field error
// ordering and the order of known keys in output.
type Type struct {
	Name   string
	Fields []Field
}

// field returns the descriptor of the named field, or nil.
func (t *Type) field(name string) *Field {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i]
		}
	}
	return nil
}

// A Registry maps type names to their schemas. It is the resolution point
// for the nested-type handles used by schema files.
//
// A Registry is safe for concurrent use after all Register calls have
// completed.
type Registry struct {
	types map[string]*Type
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry { return &Registry{types: make(map[string]*Type)} }

// Register adds t to the registry. It reports an error if a type with the
// same name is already registered, or if t has no name.
func (r *Registry) Register(t *Type) error {
	if t.Name == "" {
		return fmt.Errorf("register: type has no name")
	}
	if _, ok := r.types[t.Name]; ok {
		return fmt.Errorf("register: duplicate type %q", t.Name)
	}
	r.types[t.Name] = t
	return nil
}

// Lookup returns the schema registered under name, or nil.
func (r *Registry) Lookup(name string) *Type { return r.types[name] }

// Names returns the registered type names in lexicographic order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
