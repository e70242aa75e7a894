package prefixid_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/prefixid"
)

func benchRegistry(b *testing.B) *prefixid.Registry[string] {
	b.Helper()
	reg, err := prefixid.Build([]prefixid.Def[string]{
		{Type: "user", Prefix: "user"},
		{Type: "post", Prefix: "post", Length: 12},
		{Type: "team", Prefix: "tm", Length: 6},
	})
	if err != nil {
		b.Fatal(err)
	}
	return reg
}

func BenchmarkCreate(b *testing.B) {
	reg := benchRegistry(b)

	for b.Loop() {
		if _, err := reg.Create("user"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCreate_NanoID(b *testing.B) {
	reg, err := prefixid.Build([]prefixid.Def[string]{
		{Type: "user", Prefix: "user"},
	}, prefixid.WithGenerator(prefixid.NewNanoIDGenerator()))
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		if _, err := reg.Create("user"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsValid(b *testing.B) {
	reg := benchRegistry(b)
	id, err := reg.Create("post")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for b.Loop() {
		if !reg.IsValid(id) {
			b.Fatal("expected valid identifier")
		}
	}
}

func BenchmarkTypeOf(b *testing.B) {
	reg := benchRegistry(b)
	id, err := reg.Create("user")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for b.Loop() {
		if _, ok := reg.TypeOf(id); !ok {
			b.Fatal("expected known type")
		}
	}
}

func BenchmarkFindAll(b *testing.B) {
	reg := benchRegistry(b)

	var sb strings.Builder
	for range 50 {
		userID, err := reg.Create("user")
		if err != nil {
			b.Fatal(err)
		}
		sb.WriteString("some filler text around ")
		sb.WriteString(userID.String())
		sb.WriteString(" and more words ")
	}
	text := sb.String()

	b.ResetTimer()
	for b.Loop() {
		if got := reg.FindAll(text); len(got) != 50 {
			b.Fatalf("expected 50 matches, got %d", len(got))
		}
	}
}
