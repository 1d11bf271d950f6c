// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jbind converts between generic JSON trees and strongly-typed
// records according to a declarative per-type field schema, preserving any
// input the schema does not recognize.
//
// # Schemas
//
// A Type is an ordered list of Field descriptors, each giving a wire name, a
// Kind, a required flag, and (for nested kinds) the element Type. Schemas
// are plain data: they are built once, shared freely, and drive all four
// core operations, so adding a record type means adding a table rather than
// code. The schemafile subpackage loads whole registries of types from YAML
// or JSON documents.
//
// # Decoding and residuals
//
// Decode walks a parsed tree (see the ast subpackage) against a schema and
// produces a Record:
//
//	rec, err := jbind.Decode(tree, cgroupType, jbind.Options{CaptureUnknown: true})
//
// Boolean fields are tri-state: absent is distinguishable from false. With
// CaptureUnknown set, object keys the schema does not name are moved out of
// the source tree into the record's residual, in their original order.
// Encode writes them back after the known fields, so documents round-trip
// without loss even when the schema only understands part of them.
//
// # Encoding
//
// Encode streams a record into an Emitter. The TreeEmitter builds a new
// ast.Value; the TextEmitter writes JSON text, compact or indented:
//
//	err := jbind.Encode(rec, jbind.NewTextEmitter(w, opt), opt)
//
// # Lifecycle
//
// Clone deep-copies a record with no shared ownership, and Release returns
// one to its all-absent state. Both operate on records alone and never touch
// a tree other than the record's own residual.
//
// The package keeps no global state: every call is parameterized by an
// Options value, and calls on disjoint records and trees may run
// concurrently without coordination.
package jbind
