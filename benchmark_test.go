package xgxexception

import (
	"errors"
	"fmt"
	"testing"

	"github.com/xgx-io/xgx-exception/typetag"
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = New("boom")
	}
}

func BenchmarkNestAt(b *testing.B) {
	s := Site{File: "/src/app/load.go", Function: "app.Load", Line: 12}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e := NewAt(s, "root")
		e = NestAt(e, s, "ctx")
		e.Release()
	}
}

func BenchmarkStringComplete(b *testing.B) {
	s := Site{File: "/src/app/load.go", Function: "app.Load", Line: 12}
	e := NewAt(s, "root")
	for i := 0; i < 8; i++ {
		e = NestTypedAt(typetag.RuntimeError, e, s, "layer")
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.StringComplete()
	}
}

func BenchmarkNestedWalk(b *testing.B) {
	s := Site{File: "/src/app/load.go", Function: "app.Load", Line: 12}
	e := NewAt(s, "root")
	for i := 0; i < 8; i++ {
		e = NestAt(e, s, "layer")
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for cur := e; cur.HasNested(); cur = cur.Nested() {
		}
	}
}

func BenchmarkFromError(b *testing.B) {
	err := fmt.Errorf("outer: %w", fmt.Errorf("mid: %w", errors.New("leaf")))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		FromError(err).Release()
	}
}
