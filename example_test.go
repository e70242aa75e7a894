package prefixid_test

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/prefixid"
)

// Example demonstrates declaring identifier types and the lifecycle of an
// identifier: create, validate, decode. A deterministic generator keeps the
// output stable; production code would rely on the default crypto/rand
// generator instead.
func Example() {
	ids, err := prefixid.Build([]prefixid.Def[string]{
		{Type: "user", Prefix: "user"},
		{Type: "post", Prefix: "post", Length: 12},
	}, prefixid.WithGenerator(func(length int) (string, error) {
		return strings.Repeat("x", length), nil
	}))
	if err != nil {
		panic(err)
	}

	userID, err := ids.Create("user")
	if err != nil {
		panic(err)
	}
	fmt.Println(userID)
	fmt.Println(ids.IsValid(userID))

	typ, ok := ids.TypeOf(userID)
	fmt.Println(typ, ok)

	// Output:
	// user_xxxxxxxx
	// true
	// user true
}

// Example_findAll demonstrates extracting every identifier embedded in free
// text, in order of appearance and with duplicates preserved.
func Example_findAll() {
	ids := prefixid.MustBuild([]prefixid.Def[string]{
		{Type: "user", Prefix: "user"},
		{Type: "post", Prefix: "post", Length: 12},
	})

	found := ids.FindAll("by user_aaaaaaaa on post_bbbbbbbbbbbb and user_aaaaaaaa")
	for _, id := range found {
		fmt.Println(id)
	}

	// Output:
	// user_aaaaaaaa
	// post_bbbbbbbbbbbb
	// user_aaaaaaaa
}

// Example_isType demonstrates reusable type predicates, handy for filtering.
func Example_isType() {
	ids := prefixid.MustBuild([]prefixid.Def[string]{
		{Type: "user", Prefix: "user"},
		{Type: "post", Prefix: "post", Length: 12},
	})

	isUser := ids.IsType("user")
	for _, id := range []prefixid.ID{"user_aaaaaaaa", "post_bbbbbbbbbbbb"} {
		fmt.Println(id, isUser(id))
	}

	// Output:
	// user_aaaaaaaa true
	// post_bbbbbbbbbbbb false
}
