// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"

	"github.com/softweave/jbind/ast"
)

func TestObject(t *testing.T) {
	obj := ast.Object{
		ast.Field("name", "apple"),
		ast.Field("count", 3),
		ast.Field("ripe", true),
	}

	t.Run("Find", func(t *testing.T) {
		if m := obj.Find("count"); m == nil {
			t.Error("Find count: not found")
		} else if got := m.Value.JSON(); got != "3" {
			t.Errorf("Find count: got %q, want 3", got)
		}
		if m := obj.Find("nonesuch"); m != nil {
			t.Errorf("Find nonesuch: got %v, want nil", m)
		}
	})

	t.Run("Index", func(t *testing.T) {
		if got := obj.Index("ripe"); got != 2 {
			t.Errorf("Index ripe: got %d, want 2", got)
		}
		if got := obj.Index("worm"); got != -1 {
			t.Errorf("Index worm: got %d, want -1", got)
		}
	})

	t.Run("JSON", func(t *testing.T) {
		const want = `{"name":"apple","count":3,"ripe":true}`
		if got := obj.JSON(); got != want {
			t.Errorf("JSON: got %#q, want %#q", got, want)
		}
	})
}

func TestDetach(t *testing.T) {
	obj := ast.Object{
		ast.Field("keep", 1),
		ast.Field("move", "x"),
		ast.Field("also", true),
	}
	v := obj.Detach("move")
	if v == nil {
		t.Fatal("Detach move: got nil")
	}
	if got := v.JSON(); got != `"x"` {
		t.Errorf("Detached value: got %#q, want %#q", got, `"x"`)
	}

	// The detached slot must no longer be findable or rendered.
	if m := obj.Find("move"); m != nil {
		t.Errorf("Find move after detach: got %v, want nil", m)
	}
	const want = `{"keep":1,"also":true}`
	if got := obj.JSON(); got != want {
		t.Errorf("JSON after detach: got %#q, want %#q", got, want)
	}

	// Detaching again finds nothing.
	if v := obj.Detach("move"); v != nil {
		t.Errorf("Second detach: got %v, want nil", v)
	}
}

func TestClone(t *testing.T) {
	obj := ast.Object{
		ast.Field("list", ast.Array{ast.String("a"), ast.Number("1.50")}),
		ast.Field("sub", ast.Object{ast.Field("deep", nil)}),
	}
	cp := obj.Clone().(ast.Object)

	if diff := cmp.Diff(cp.JSON(), obj.JSON()); diff != "" {
		t.Errorf("Clone JSON (-got, +want):\n%s", diff)
	}

	// Mutating the clone must not affect the original.
	cp.Find("sub").Value.(ast.Object).Find("deep").Value = ast.Bool(true)
	cp.Detach("list")
	if got, want := obj.JSON(), `{"list":["a",1.50],"sub":{"deep":null}}`; got != want {
		t.Errorf("Original after clone mutation: got %#q, want %#q", got, want)
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  string
	}{
		{nil, "null"},
		{true, "true"},
		{false, "false"},
		{"hi \"you\"", `"hi \"you\""`},
		{42, "42"},
		{int64(-7), "-7"},
		{1.25, "1.25"},
		{ast.Array{ast.Bool(false)}, "[false]"},
	}
	for _, tc := range tests {
		if got := ast.ToValue(tc.input).JSON(); got != tc.want {
			t.Errorf("ToValue(%v).JSON(): got %#q, want %#q", tc.input, got, tc.want)
		}
	}

	t.Run("Invalid", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
	})
}

func TestNumber(t *testing.T) {
	if got := ast.Number("0.30000000000000004").JSON(); got != "0.30000000000000004" {
		t.Errorf("Number JSON: got %q, text not preserved", got)
	}
	if got := ast.Number("25").Int64(); got != 25 {
		t.Errorf("Int64: got %d, want 25", got)
	}
	if got := ast.Number("2.5").Float64(); got != 2.5 {
		t.Errorf("Float64: got %v, want 2.5", got)
	}
	mtest.MustPanic(t, func() { ast.Number("bogus").Float64() })
}

func TestPath(t *testing.T) {
	v, err := ast.ParseBytes([]byte(`{
	  "list": [{"x": 1}, {"x": 2}],
	  "y": {"hello": "there"}
	}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		name string
		path []any
		want string
		fail bool
	}{
		{"NilInput", nil, v.JSON(), false},
		{"NoMatch", []any{"nonesuch"}, "", true},
		{"WrongType", []any{11}, "", true},
		{"ArrayPos", []any{"list", 1, "x"}, "2", false},
		{"ArrayNeg", []any{"list", -2, "x"}, "1", false},
		{"ArrayRange", []any{"list", 25}, "", true},
		{"ObjPath", []any{"y", "hello"}, `"there"`, false},
		{"BadElement", []any{"y", 3.5}, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ast.Path(v, tc.path...)
			if err != nil {
				if !tc.fail {
					t.Fatalf("Path: unexpected error: %v", err)
				}
				t.Logf("Got expected error: %v", err)
				return
			} else if tc.fail {
				t.Fatalf("Path: got %v, want error", got)
			}
			if diff := cmp.Diff(got.JSON(), tc.want); diff != "" {
				t.Errorf("Wrong result (-got, +want):\n%s", diff)
			}
		})
	}
}
