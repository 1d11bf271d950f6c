// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package schemafile loads jbind type registries from YAML documents.
// Since YAML is a superset of JSON, plain JSON schema files work unchanged.
//
// A schema file maps type names to ordered field lists:
//
//	types:
//	  cgroup:
//	    fields:
//	      - name: v1
//	        kind: bool
//	      - name: v2
//	        kind: bool
//	  seccomp:
//	    fields:
//	      - name: enabled
//	        kind: bool
//	      - name: actions
//	        kind: strings
//	  features:
//	    fields:
//	      - name: cgroup
//	        kind: object
//	        elem: cgroup
//
// Field order within a type is significant: it fixes the order of known keys
// in encoded output and the order in which required-field errors are
// reported. Nested types are referenced by name and resolved after the whole
// file is read, so a type may refer to itself or to types defined later in
// the file.
package schemafile

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/softweave/jbind"
)

// fileDoc is the top-level shape of a schema file.
type fileDoc struct {
	Types map[string]typeDef `yaml:"types"`
}

type typeDef struct {
	Fields []fieldDef `yaml:"fields"`
}

type fieldDef struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Required bool   `yaml:"required"`
	Elem     string `yaml:"elem"`
}

// Load reads a schema file from r and returns the registry of the types it
// defines.
func Load(r io.Reader) (*jbind.Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return LoadBytes(data)
}

// LoadBytes is Load on a byte slice.
func LoadBytes(data []byte) (*jbind.Registry, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema file: %w", err)
	}
	if len(doc.Types) == 0 {
		return nil, fmt.Errorf("schema file: no types defined")
	}

	// First pass: create a handle for every type so nested references can
	// resolve regardless of definition order.
	reg := jbind.NewRegistry()
	for name := range doc.Types {
		if err := reg.Register(&jbind.Type{Name: name}); err != nil {
			return nil, fmt.Errorf("schema file: %w", err)
		}
	}

	// Second pass: populate fields and resolve element references.
	for name, def := range doc.Types {
		t := reg.Lookup(name)
		for i, fd := range def.Fields {
			if fd.Name == "" {
				return nil, fmt.Errorf("type %s: field %d has no name", name, i)
			}
			kind, err := parseKind(fd.Kind)
			if err != nil {
				return nil, fmt.Errorf("type %s, field %q: %w", name, fd.Name, err)
			}
			f := jbind.Field{Name: fd.Name, Kind: kind, Required: fd.Required}
			switch kind {
			case jbind.Object, jbind.Objects:
				if fd.Elem == "" {
					return nil, fmt.Errorf("type %s, field %q: kind %v requires elem", name, fd.Name, kind)
				}
				f.Elem = reg.Lookup(fd.Elem)
				if f.Elem == nil {
					return nil, fmt.Errorf("type %s, field %q: unknown elem type %q", name, fd.Name, fd.Elem)
				}
			default:
				if fd.Elem != "" {
					return nil, fmt.Errorf("type %s, field %q: elem is only valid for nested kinds", name, fd.Name)
				}
			}
			t.Fields = append(t.Fields, f)
		}
	}
	return reg, nil
}

func parseKind(s string) (jbind.Kind, error) {
	switch s {
	case "bool":
		return jbind.Bool, nil
	case "string":
		return jbind.String, nil
	case "strings":
		return jbind.Strings, nil
	case "object":
		return jbind.Object, nil
	case "objects":
		return jbind.Objects, nil
	}
	return jbind.Invalid, fmt.Errorf("unknown kind %q", s)
}
