// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jbind

import "fmt"

// MissingFieldError is the concrete type of errors reported by Decode when a
// required field is absent from the input.
type MissingFieldError struct {
	Type  string // the name of the record type being decoded
	Field string // the wire name of the missing field
}

// Error satisfies the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("type %s: missing required field %q", e.Type, e.Field)
}

// EmitError is the concrete type of errors reported by Encode when the
// underlying emitter fails. It wraps the emitter's error.
type EmitError struct {
	Field string // the field being emitted, or "" for structural tokens

	err error
}

// Error satisfies the error interface.
func (e *EmitError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("emit: %v", e.err)
	}
	return fmt.Sprintf("emit field %q: %v", e.Field, e.err)
}

// Unwrap supports error wrapping.
func (e *EmitError) Unwrap() error { return e.err }
