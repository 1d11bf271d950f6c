// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jbind_test

import (
	"io"
	"testing"

	"github.com/softweave/jbind"
	"github.com/softweave/jbind/ast"
)

const benchDoc = `{
  "ociVersionMin": "1.0.0",
  "cgroup": {"v1": false, "v2": true, "systemd": true, "rdma": false},
  "seccomp": {"enabled": true, "actions": ["allow", "errno", "kill", "log", "notify", "trace", "trap"]},
  "devices": [{"type": "b", "path": "/dev/sda"}, {"type": "c", "path": "/dev/null"}],
  "mountOptions": ["ro", "nosuid", "nodev"],
  "vendor.example/extension": {"level": 3, "flags": [true, false]}
}`

func BenchmarkDecode(b *testing.B) {
	opt := jbind.Options{CaptureUnknown: true}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		// Capture detaches from the source, so each pass needs a fresh tree.
		b.StopTimer()
		tree, err := ast.ParseBytes([]byte(benchDoc))
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()

		rec, err := jbind.Decode(tree, featuresType, opt)
		if err != nil {
			b.Fatal(err)
		}
		jbind.Release(rec)
	}
}

func BenchmarkEncode(b *testing.B) {
	tree, err := ast.ParseBytes([]byte(benchDoc))
	if err != nil {
		b.Fatal(err)
	}
	rec, err := jbind.Decode(tree, featuresType, jbind.Options{CaptureUnknown: true})
	if err != nil {
		b.Fatal(err)
	}
	e := jbind.NewTextEmitter(io.Discard, jbind.Options{})

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := jbind.Encode(rec, e, jbind.Options{}); err != nil {
			b.Fatal(err)
		}
	}
}
