// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jbind

import (
	"io"
	"strings"

	"github.com/softweave/jbind/ast"
	"github.com/softweave/jbind/internal/escape"
)

// A TreeEmitter is an Emitter that assembles the emitted events into an
// ast.Value. Its methods never report errors.
type TreeEmitter struct {
	stack []treeFrame
	root  ast.Value
	done  bool
}

type treeFrame struct {
	obj   ast.Object
	arr   ast.Array
	isObj bool
	key   string
}

// NewTreeEmitter constructs an empty TreeEmitter.
func NewTreeEmitter() *TreeEmitter { return new(TreeEmitter) }

// Value returns the assembled tree, or nil if no complete value has been
// emitted yet.
func (e *TreeEmitter) Value() ast.Value {
	if !e.done {
		return nil
	}
	return e.root
}

// attach adds v to the innermost open container, or records it as the root
// when no container is open.
func (e *TreeEmitter) attach(v ast.Value) {
	if len(e.stack) == 0 {
		e.root, e.done = v, true
		return
	}
	top := &e.stack[len(e.stack)-1]
	if top.isObj {
		top.obj = append(top.obj, &ast.Member{Key: top.key, Value: v})
	} else {
		top.arr = append(top.arr, v)
	}
}

func (e *TreeEmitter) BeginObject() error {
	e.stack = append(e.stack, treeFrame{obj: ast.Object{}, isObj: true})
	return nil
}

func (e *TreeEmitter) EndObject() error {
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	e.attach(top.obj)
	return nil
}

func (e *TreeEmitter) BeginArray() error {
	e.stack = append(e.stack, treeFrame{arr: ast.Array{}})
	return nil
}

func (e *TreeEmitter) EndArray() error {
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	e.attach(top.arr)
	return nil
}

func (e *TreeEmitter) Key(name string) error {
	e.stack[len(e.stack)-1].key = name
	return nil
}

func (e *TreeEmitter) Bool(v bool) error        { e.attach(ast.Bool(v)); return nil }
func (e *TreeEmitter) String(s string) error    { e.attach(ast.String(s)); return nil }
func (e *TreeEmitter) Number(text string) error { e.attach(ast.Number(text)); return nil }
func (e *TreeEmitter) Null() error              { e.attach(ast.Null{}); return nil }

// EncodeTree encodes rec into a newly built tree.
func EncodeTree(rec *Record, opt Options) (ast.Value, error) {
	te := NewTreeEmitter()
	if err := Encode(rec, te, opt); err != nil {
		return nil, err
	}
	return te.Value(), nil
}

// A TextEmitter is an Emitter that writes JSON text to an io.Writer. By
// default output is compact; call SetIndent to produce multi-line output.
type TextEmitter struct {
	w        io.Writer
	indent   string
	collapse bool
	stack    []textFrame
}

type textFrame struct {
	isObj bool
	n     int // members or elements written so far
}

// NewTextEmitter constructs a TextEmitter writing compact output to w.
// The emitter honors opt.CollapseEmptyArrays when indentation is enabled.
func NewTextEmitter(w io.Writer, opt Options) *TextEmitter {
	return &TextEmitter{w: w, collapse: opt.CollapseEmptyArrays}
}

// SetIndent switches e to multi-line output, indenting each nesting level by
// one copy of unit. An empty unit restores compact output.
func (e *TextEmitter) SetIndent(unit string) { e.indent = unit }

func (e *TextEmitter) write(s string) error {
	_, err := io.WriteString(e.w, s)
	return err
}

// newline writes a line break and indentation for the given depth.
// In compact mode it writes nothing.
func (e *TextEmitter) newline(depth int) error {
	if e.indent == "" {
		return nil
	}
	return e.write("\n" + strings.Repeat(e.indent, depth))
}

// valueSep writes whatever separates the next value from its predecessor:
// nothing at the root or after a key, a comma and possibly a line break
// between array elements.
func (e *TextEmitter) valueSep() error {
	if len(e.stack) == 0 {
		return nil
	}
	top := &e.stack[len(e.stack)-1]
	if top.isObj {
		return nil // Key already wrote the separator
	}
	if top.n > 0 {
		if err := e.write(","); err != nil {
			return err
		}
	}
	top.n++
	return e.newline(len(e.stack))
}

func (e *TextEmitter) BeginObject() error {
	if err := e.valueSep(); err != nil {
		return err
	}
	e.stack = append(e.stack, textFrame{isObj: true})
	return e.write("{")
}

func (e *TextEmitter) EndObject() error {
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	if top.n > 0 {
		if err := e.newline(len(e.stack)); err != nil {
			return err
		}
	}
	return e.write("}")
}

func (e *TextEmitter) BeginArray() error {
	if err := e.valueSep(); err != nil {
		return err
	}
	e.stack = append(e.stack, textFrame{})
	return e.write("[")
}

func (e *TextEmitter) EndArray() error {
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]

	// An empty array expands across two lines unless collapsed.
	if top.n > 0 || (e.indent != "" && !e.collapse) {
		if err := e.newline(len(e.stack)); err != nil {
			return err
		}
	}
	return e.write("]")
}

func (e *TextEmitter) Key(name string) error {
	top := &e.stack[len(e.stack)-1]
	if top.n > 0 {
		if err := e.write(","); err != nil {
			return err
		}
	}
	top.n++
	if err := e.newline(len(e.stack)); err != nil {
		return err
	}
	if err := e.write(string(escape.Quote(name))); err != nil {
		return err
	}
	if e.indent != "" {
		return e.write(": ")
	}
	return e.write(":")
}

func (e *TextEmitter) Bool(v bool) error {
	if err := e.valueSep(); err != nil {
		return err
	}
	if v {
		return e.write("true")
	}
	return e.write("false")
}

func (e *TextEmitter) String(s string) error {
	if err := e.valueSep(); err != nil {
		return err
	}
	return e.write(string(escape.Quote(s)))
}

func (e *TextEmitter) Number(text string) error {
	if err := e.valueSep(); err != nil {
		return err
	}
	return e.write(text)
}

func (e *TextEmitter) Null() error {
	if err := e.valueSep(); err != nil {
		return err
	}
	return e.write("null")
}

// Format encodes rec to w as indented JSON text, two spaces per level.
func Format(w io.Writer, rec *Record, opt Options) error {
	e := NewTextEmitter(w, opt)
	e.SetIndent("  ")
	return Encode(rec, e, opt)
}

// FormatToString encodes rec as indented JSON text and returns the result.
// It panics if rec cannot be encoded.
func FormatToString(rec *Record, opt Options) string {
	var sb strings.Builder
	if err := Format(&sb, rec, opt); err != nil {
		panic(err)
	}
	return sb.String()
}
