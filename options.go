// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jbind

import "io"

// Options control the behavior of a single decode or encode call. The zero
// value is ready for use: no unknown-key capture, no diagnostics, and output
// containing only the fields actually present.
//
// Options are call-scoped. There is no process-wide configuration, and an
// Options value is never retained by the records it produces.
type Options struct {
	// CaptureUnknown moves object keys with no matching field descriptor out
	// of the source tree into the record's residual, preserving their
	// original relative order. The source tree is mutated by the move and is
	// no longer a complete rendering of its document afterward.
	CaptureUnknown bool

	// StrictWarn writes a one-line diagnostic to Diag when a decode
	// encounters at least one unknown key. The decode outcome is unchanged;
	// unknown keys are never an error. StrictWarn and CaptureUnknown are
	// independent options.
	StrictWarn bool

	// Diag receives StrictWarn diagnostics. When nil, diagnostics are
	// discarded.
	Diag io.Writer

	// EmitAllKnown makes Encode write every field the schema knows about,
	// substituting the kind's zero value for absent fields: false for
	// booleans, "" for strings, [] for arrays, and a recursively defaulted
	// object for nested records.
	EmitAllKnown bool

	// CollapseEmptyArrays makes the indenting text emitter render an empty
	// array as "[]" on one line instead of an expanded pair of brackets.
	// Round-trip values are unaffected.
	CollapseEmptyArrays bool
}
